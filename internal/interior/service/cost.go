package service

import (
	"math"

	"homeverse_backend/internal/interior/domain"
)

const (
	// wallAreaFactor approximates paintable wall area per unit of floor area.
	wallAreaFactor = 2.5
	// accentShare is the portion of wall area painted in the accent color.
	accentShare = 0.15
)

// CostBreakdown itemises an interior estimate. Components are unrounded;
// Total is rounded once over their sum.
type CostBreakdown struct {
	WallArea      float64
	PaintCost     float64
	AccentCost    float64
	FlooringCost  float64
	FurnitureCost float64
	LaborCost     float64
	Total         int64
}

// ComputeInteriorCost returns the rounded total for a selection.
func ComputeInteriorCost(area float64, sel domain.Selection, labor domain.LaborRates) int64 {
	return ComputeBreakdown(area, sel, labor).Total
}

// ComputeBreakdown prices paint, accent wall, flooring, furniture and labor.
func ComputeBreakdown(area float64, sel domain.Selection, labor domain.LaborRates) CostBreakdown {
	wallArea := area * wallAreaFactor

	paint := wallArea * sel.WallColor.PricePerSqft
	accent := 0.0
	if sel.AccentColor != nil {
		accent = wallArea * accentShare * sel.AccentColor.PricePerSqft
	}
	flooring := area * sel.Flooring.PricePerSqft

	furniture := 0.0
	for _, l := range sel.Furniture {
		furniture += l.UnitPrice * float64(l.Quantity)
	}

	laborCost := labor.Painting*wallArea +
		labor.Flooring*area +
		labor.ElectricalFlat +
		labor.PlumbingFlat +
		labor.CarpentryFlat

	return CostBreakdown{
		WallArea:      wallArea,
		PaintCost:     paint,
		AccentCost:    accent,
		FlooringCost:  flooring,
		FurnitureCost: furniture,
		LaborCost:     laborCost,
		Total:         int64(math.Round(paint + accent + flooring + furniture + laborCost)),
	}
}
