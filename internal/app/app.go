// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"
	"github.com/snowyaya/box-picker-api/config"
	"github.com/snowyaya/box-picker-api/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize business services
	serviceComponents := InitializeServices(cfg.Catalog)

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents.Packer, cfg)

	return http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config)
}
