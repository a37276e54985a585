package handler

import (
	"net/http"

	"homeverse_backend/internal/history/service"
	"homeverse_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler handles HTTP requests for search history and archived estimates.
type Handler struct {
	svc *service.Service
}

const msgInvalidEstimateID = "invalid estimate id"

// New creates a new history handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// List returns recent searches.
// GET /api/v1/history
func (h *Handler) List(c *gin.Context) {
	entries, err := h.svc.List(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"history": entries})
}

// Clear removes all recent searches.
// DELETE /api/v1/history
func (h *Handler) Clear(c *gin.Context) {
	if httpkit.HandleError(c, h.svc.Clear(c.Request.Context())) {
		return
	}
	c.Status(http.StatusNoContent)
}

// GetEstimate returns an archived estimate.
// GET /api/v1/estimates/:id
func (h *Handler) GetEstimate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidEstimateID, nil)
		return
	}

	est, err := h.svc.GetEstimate(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, est)
}

// ShareQR renders a QR code for an archived estimate.
// GET /api/v1/estimates/:id/qr.png
func (h *Handler) ShareQR(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidEstimateID, nil)
		return
	}

	png, err := h.svc.ShareQR(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "image/png", png)
}
