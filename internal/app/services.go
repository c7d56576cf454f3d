// Package app provides service initialization.
package app

import (
	"github.com/rs/zerolog/log"
	"github.com/snowyaya/box-picker-api/config"
	"github.com/snowyaya/box-picker-api/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Packer service.BoxPacker
}

// InitializeServices initializes business logic services.
// A catalog file that cannot be loaded is logged and skipped so the
// service still starts with the built-in catalog.
func InitializeServices(cfg config.CatalogConfig) *ServiceComponents {
	var opts []service.Option

	if cfg.File != "" {
		catalog, err := service.LoadCatalogFile(cfg.File)
		if err != nil {
			log.Error().Err(err).Str("file", cfg.File).
				Msg("Failed to load box catalog - continuing with the built-in catalog")
		} else {
			log.Info().Str("file", cfg.File).Int("boxes", catalog.Len()).
				Msg("Loaded box catalog")
			opts = append(opts, service.WithCatalog(catalog))
		}
	}

	packer := service.NewBoxPackerService(opts...)

	return &ServiceComponents{
		Packer: packer,
	}
}
