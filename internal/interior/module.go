// Package interior provides the interior design bounded context module.
package interior

import (
	apphttp "homeverse_backend/internal/http"
	"homeverse_backend/internal/interior/domain"
	"homeverse_backend/internal/interior/handler"
	"homeverse_backend/internal/interior/service"
	"homeverse_backend/platform/logger"
	"homeverse_backend/platform/validator"
)

// Module is the interior bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the interior module.
func NewModule(catalog *domain.Catalog, val *validator.Validator, log *logger.Logger) *Module {
	if catalog == nil {
		catalog = domain.DefaultCatalog()
	}
	svc := service.New(catalog, log)
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "interior"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts interior routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/interior")
	group.GET("/catalog", m.handler.GetCatalog)
	group.POST("/estimate", m.handler.Estimate)
	group.POST("/recommendations", m.handler.Recommend)
}

var _ apphttp.Module = (*Module)(nil)
