package service

import (
	"math"

	"homeverse_backend/platform/apperr"
)

// EMIResult is a loan amortisation summary; every amount is rounded.
type EMIResult struct {
	MonthlyEMI    int64 `json:"monthlyEMI"`
	TotalAmount   int64 `json:"totalAmount"`
	TotalInterest int64 `json:"totalInterest"`
	Principal     int64 `json:"principal"`
}

// ComputeEMI returns the equated monthly instalment for a loan.
// A zero rate repays the principal in equal parts. A non-positive tenure or
// negative rate or principal is a validation error.
func ComputeEMI(principal, annualRatePercent, tenureYears float64) (EMIResult, error) {
	if principal < 0 || math.IsNaN(principal) || math.IsInf(principal, 0) {
		return EMIResult{}, apperr.Validation("principal must be a non-negative number").WithOp("finance.ComputeEMI")
	}
	if tenureYears <= 0 || math.IsNaN(tenureYears) {
		return EMIResult{}, apperr.Validation("tenure must be greater than zero").WithOp("finance.ComputeEMI")
	}
	if annualRatePercent < 0 || math.IsNaN(annualRatePercent) {
		return EMIResult{}, apperr.Validation("interest rate must not be negative").WithOp("finance.ComputeEMI")
	}

	months := tenureYears * 12
	var emi float64
	if annualRatePercent == 0 {
		emi = principal / months
	} else {
		r := annualRatePercent / 12 / 100
		growth := math.Pow(1+r, months)
		emi = principal * r * growth / (growth - 1)
	}

	total := emi * months
	return EMIResult{
		MonthlyEMI:    int64(math.Round(emi)),
		TotalAmount:   int64(math.Round(total)),
		TotalInterest: int64(math.Round(total - principal)),
		Principal:     int64(math.Round(principal)),
	}, nil
}
