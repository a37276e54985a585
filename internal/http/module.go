package http

import (
	"homeverse_backend/platform/config"
	"homeverse_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

// Module is a bounded context (valuation, interior, finance, history) that
// mounts its own routes.
type Module interface {
	Name() string
	RegisterRoutes(ctx *RouterContext)
}

// RouterContext is passed to every module's RegisterRoutes.
type RouterContext struct {
	Engine *gin.Engine
	// V1 is /api/v1 behind the per-IP rate limiter.
	V1     *gin.RouterGroup
	Config config.HTTPConfig
}

// Mount registers modules in order.
func Mount(ctx *RouterContext, log *logger.Logger, modules ...Module) {
	for _, m := range modules {
		m.RegisterRoutes(ctx)
		log.Debug("module routes registered", "module", m.Name())
	}
}
