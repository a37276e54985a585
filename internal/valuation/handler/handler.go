package handler

import (
	"net/http"

	"homeverse_backend/internal/valuation/service"
	"homeverse_backend/internal/valuation/transport"
	"homeverse_backend/platform/httpkit"
	"homeverse_backend/platform/sanitize"
	"homeverse_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for valuations and market reference data.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new valuation handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Valuate prices a property.
// POST /api/v1/valuations
func (h *Handler) Valuate(c *gin.Context) {
	var req transport.ValuationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	req.Location = sanitize.Text(req.Location)
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.Fields(err))
		return
	}

	resp, err := h.svc.Valuate(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}

// Compare prices several properties side by side.
// POST /api/v1/valuations/compare
func (h *Handler) Compare(c *gin.Context) {
	var req transport.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	for i := range req.Properties {
		req.Properties[i].Location = sanitize.Text(req.Properties[i].Location)
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.Fields(err))
		return
	}

	resp, err := h.svc.Compare(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}

// ListZones returns every zone.
// GET /api/v1/zones
func (h *Handler) ListZones(c *gin.Context) {
	httpkit.OK(c, gin.H{"zones": h.svc.Zones()})
}

// ListLandmarks returns landmark names.
// GET /api/v1/landmarks
func (h *Handler) ListLandmarks(c *gin.Context) {
	httpkit.OK(c, gin.H{"landmarks": h.svc.Landmarks()})
}

// ListLocalities returns locality names for autocomplete.
// GET /api/v1/localities
func (h *Handler) ListLocalities(c *gin.Context) {
	httpkit.OK(c, gin.H{"localities": h.svc.Localities()})
}

// ResolveZone maps a location to a zone.
// GET /api/v1/zones/resolve?q=
func (h *Handler) ResolveZone(c *gin.Context) {
	var q transport.ResolveQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	httpkit.OK(c, h.svc.Resolve(sanitize.Text(q.Q)))
}

// Options returns the selectable property factors.
// GET /api/v1/catalog/options
func (h *Handler) Options(c *gin.Context) {
	httpkit.OK(c, h.svc.Options())
}
