// Package main is the entry point for the box-picker-api application.
//
// @title           Box Picker API
// @version         1.0.0
// @description     API for selecting shipping boxes for sets of items.
//
//	This service checks items against a box catalog using axis-aligned rotations,
//	prefers the single smallest box that fits an order, and falls back to a
//	greedy multi-box split when no single box can hold everything.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/snowyaya/box-picker-api
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer token. Type "Bearer" followed by a space and the JWT.
//
// @tag.name        Packing
// @tag.description Box selection operations
//
// @tag.name        Boxes
// @tag.description Box catalog operations
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/snowyaya/box-picker-api/docs" // swagger docs

	"github.com/rs/zerolog/log"
	"github.com/snowyaya/box-picker-api/config"
	"github.com/snowyaya/box-picker-api/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port,
		app.WithShutdownTimeout(cfg.Server.ShutdownTimeout))

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
