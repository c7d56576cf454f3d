// Package app provides router configuration.
package app

import (
	"github.com/snowyaya/box-picker-api/config"
	"github.com/snowyaya/box-picker-api/internal/http"
	"github.com/snowyaya/box-picker-api/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(packer service.BoxPacker, cfg config.Config) *RouterComponents {
	handler := http.NewHandler(packer)
	healthHandler := http.NewHealthHandler()

	// The service cannot pack anything without box definitions
	healthHandler.RegisterChecker("catalog", http.HealthCheckerFunc(func() error {
		if packer.Catalog().Len() == 0 {
			return service.ErrEmptyCatalog
		}
		return nil
	}))

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		JWTSecret:         []byte(cfg.Auth.JWTSecretKey),
		EnableIdempotency: cfg.Server.IdempotencyEnabled,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
