// Package transport defines the finance request and response shapes.
package transport

import "homeverse_backend/internal/finance/service"

// EMIRequest asks for a loan instalment.
type EMIRequest struct {
	Principal   float64 `json:"principal" validate:"required,gt=0"`
	AnnualRate  float64 `json:"annualRate" validate:"gte=0,lte=50"`
	TenureYears float64 `json:"tenureYears" validate:"required,gt=0,lte=40"`
}

// EMIResponse adds display strings to an EMI result.
type EMIResponse struct {
	MonthlyEMI             int64  `json:"monthlyEMI"`
	TotalAmount            int64  `json:"totalAmount"`
	TotalInterest          int64  `json:"totalInterest"`
	Principal              int64  `json:"principal"`
	FormattedMonthlyEMI    string `json:"formattedMonthlyEMI"`
	FormattedTotalAmount   string `json:"formattedTotalAmount"`
	FormattedTotalInterest string `json:"formattedTotalInterest"`
}

// ROIRequest asks for the return on a purchase.
type ROIRequest struct {
	PurchasePrice float64 `json:"purchasePrice" validate:"required,gt=0"`
	HoldingPeriod int     `json:"holdingPeriod" validate:"omitempty,min=1,max=30"`
	Zone          string  `json:"zone" validate:"omitempty,max=64"`
}

// InvestmentRequest asks for an investment analysis.
type InvestmentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
	Zone  string  `json:"zone" validate:"omitempty,max=64"`
}

// TrendsQuery selects a zone.
type TrendsQuery struct {
	Zone string `form:"zone" validate:"omitempty,max=64"`
}

// HistoricalQuery selects a zone and a number of years.
type HistoricalQuery struct {
	Zone  string `form:"zone" validate:"omitempty,max=64"`
	Years int    `form:"years" validate:"omitempty,min=1,max=20"`
}

// HistoricalResponse wraps yearly points with their zone.
type HistoricalResponse struct {
	Zone string              `json:"zone"`
	Data []service.YearPoint `json:"data"`
}

// FormatQuery is an amount to render.
type FormatQuery struct {
	Amount float64 `form:"amount" binding:"required"`
}

// FormatResponse is a rendered amount.
type FormatResponse struct {
	Amount    float64 `json:"amount"`
	Formatted string  `json:"formatted"`
}
