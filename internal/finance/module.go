// Package finance provides the finance utilities bounded context module.
package finance

import (
	"homeverse_backend/internal/finance/handler"
	"homeverse_backend/internal/finance/service"
	apphttp "homeverse_backend/internal/http"
	"homeverse_backend/internal/valuation/domain"
	"homeverse_backend/platform/validator"
)

// Module is the finance bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the finance module.
func NewModule(ds *domain.Dataset, val *validator.Validator) *Module {
	svc := service.New(ds)
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "finance"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts finance routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/finance")
	group.POST("/emi", m.handler.EMI)
	group.POST("/roi", m.handler.ROI)
	group.POST("/investment-analysis", m.handler.Investment)
	group.GET("/market-trends", m.handler.MarketTrends)
	group.GET("/historical", m.handler.Historical)
	group.GET("/format", m.handler.Format)
}

var _ apphttp.Module = (*Module)(nil)
