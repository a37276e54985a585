// Package valuation provides the property valuation bounded context module.
package valuation

import (
	apphttp "homeverse_backend/internal/http"
	"homeverse_backend/internal/valuation/handler"
	"homeverse_backend/internal/valuation/service"
	"homeverse_backend/platform/validator"
)

// Module is the valuation bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the valuation module.
func NewModule(deps service.Deps, val *validator.Validator) *Module {
	svc := service.New(deps)
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "valuation"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts valuation and reference data routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/valuations", m.handler.Valuate)
	ctx.V1.POST("/valuations/compare", m.handler.Compare)

	ctx.V1.GET("/zones", m.handler.ListZones)
	ctx.V1.GET("/zones/resolve", m.handler.ResolveZone)
	ctx.V1.GET("/landmarks", m.handler.ListLandmarks)
	ctx.V1.GET("/localities", m.handler.ListLocalities)
	ctx.V1.GET("/catalog/options", m.handler.Options)
}

var _ apphttp.Module = (*Module)(nil)
