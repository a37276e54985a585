package handler

import (
	"net/http"

	"homeverse_backend/internal/interior/service"
	"homeverse_backend/internal/interior/transport"
	"homeverse_backend/platform/httpkit"
	"homeverse_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for interior design.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new interior handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// GetCatalog returns paints, flooring, furniture, labor rates and templates.
// GET /api/v1/interior/catalog
func (h *Handler) GetCatalog(c *gin.Context) {
	httpkit.OK(c, h.svc.Catalog())
}

// Estimate prices an interior selection.
// POST /api/v1/interior/estimate
func (h *Handler) Estimate(c *gin.Context) {
	var req transport.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.Fields(err))
		return
	}

	result, err := h.svc.Estimate(req.Sqft, req.SelectionRequest)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Recommend returns design recommendations.
// POST /api/v1/interior/recommendations
func (h *Handler) Recommend(c *gin.Context) {
	var req transport.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.Fields(err))
		return
	}

	result, err := h.svc.Recommendations(req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
