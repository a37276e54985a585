// Package history provides the search history and estimate archive module.
package history

import (
	"homeverse_backend/internal/events"
	"homeverse_backend/internal/history/handler"
	"homeverse_backend/internal/history/service"
	apphttp "homeverse_backend/internal/http"
)

// Module is the history bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates the history module and subscribes it to completed estimates.
func NewModule(svc *service.Service, bus events.Bus) *Module {
	events.On(bus, svc.HandleEstimateCompleted)
	return &Module{
		handler: handler.New(svc),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "history"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts history and archive routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/history", m.handler.List)
	ctx.V1.DELETE("/history", m.handler.Clear)
	ctx.V1.GET("/estimates/:id", m.handler.GetEstimate)
	ctx.V1.GET("/estimates/:id/qr.png", m.handler.ShareQR)
}

var _ apphttp.Module = (*Module)(nil)
