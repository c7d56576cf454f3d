package http

import (
	"github.com/gin-gonic/gin"
	"github.com/snowyaya/box-picker-api/internal/service"
)

// PackRoutes handles packing route registration.
type PackRoutes struct {
	handler      *Handler
	boxesHandler *BoxesHandler
}

// NewPackRoutes creates a new PackRoutes instance.
func NewPackRoutes(packer service.BoxPacker) *PackRoutes {
	return &PackRoutes{
		handler:      NewHandler(packer),
		boxesHandler: NewBoxesHandler(packer),
	}
}

// RegisterPublicRoutes registers packing routes (when auth is disabled).
func (r *PackRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/pack", r.handler.PackItems)
	rg.GET("/boxes", r.boxesHandler.GetBoxes)
}

// RegisterProtectedRoutes registers packing routes on an authenticated group.
// The endpoints are the same as the public ones; the group carries the auth
// middleware.
func (r *PackRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, cfg *RouterConfig) {
	r.RegisterPublicRoutes(protected)
}

// GetHandler returns the underlying pack handler.
func (r *PackRoutes) GetHandler() *Handler {
	return r.handler
}
