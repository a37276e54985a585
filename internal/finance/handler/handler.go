package handler

import (
	"net/http"

	"homeverse_backend/internal/finance/service"
	"homeverse_backend/internal/finance/transport"
	"homeverse_backend/platform/httpkit"
	"homeverse_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for finance utilities.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"

	defaultHoldingPeriod = 5
)

// New creates a new finance handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// EMI computes a loan instalment.
// POST /api/v1/finance/emi
func (h *Handler) EMI(c *gin.Context) {
	var req transport.EMIRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.svc.EMI(req.Principal, req.AnnualRate, req.TenureYears)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.EMIResponse{
		MonthlyEMI:             result.MonthlyEMI,
		TotalAmount:            result.TotalAmount,
		TotalInterest:          result.TotalInterest,
		Principal:              result.Principal,
		FormattedMonthlyEMI:    service.FormatINR(float64(result.MonthlyEMI)),
		FormattedTotalAmount:   service.FormatINR(float64(result.TotalAmount)),
		FormattedTotalInterest: service.FormatINR(float64(result.TotalInterest)),
	})
}

// ROI computes the return on a purchase.
// POST /api/v1/finance/roi
func (h *Handler) ROI(c *gin.Context) {
	var req transport.ROIRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if req.HoldingPeriod == 0 {
		req.HoldingPeriod = defaultHoldingPeriod
	}

	result, err := h.svc.ROI(req.PurchasePrice, req.HoldingPeriod, req.Zone)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Investment analyses a purchase.
// POST /api/v1/finance/investment-analysis
func (h *Handler) Investment(c *gin.Context) {
	var req transport.InvestmentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.svc.Investment(req.Price, req.Zone)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// MarketTrends returns the monthly trend for a zone.
// GET /api/v1/finance/market-trends
func (h *Handler) MarketTrends(c *gin.Context) {
	var q transport.TrendsQuery
	if !h.bindQuery(c, &q) {
		return
	}

	result, err := h.svc.MarketTrends(q.Zone)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Historical returns yearly averages for a zone.
// GET /api/v1/finance/historical
func (h *Handler) Historical(c *gin.Context) {
	var q transport.HistoricalQuery
	if !h.bindQuery(c, &q) {
		return
	}

	data, err := h.svc.Historical(q.Zone, q.Years)
	if httpkit.HandleError(c, err) {
		return
	}
	zone := q.Zone
	if zone == "" {
		zone = h.svc.DefaultZone()
	}
	httpkit.OK(c, transport.HistoricalResponse{Zone: zone, Data: data})
}

// Format renders an amount in rupees.
// GET /api/v1/finance/format
func (h *Handler) Format(c *gin.Context) {
	var q transport.FormatQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	httpkit.OK(c, transport.FormatResponse{Amount: q.Amount, Formatted: service.FormatINR(q.Amount)})
}

func (h *Handler) bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.Fields(err))
		return false
	}
	return true
}

func (h *Handler) bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.Fields(err))
		return false
	}
	return true
}
