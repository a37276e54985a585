package service

import (
	"math"

	"homeverse_backend/internal/valuation/domain"
)

// rentalYield is the assumed gross annual rent as a share of property value.
const rentalYield = 0.03

// YearReturn is the position after holding for Year years.
type YearReturn struct {
	Year        int   `json:"year"`
	Value       int64 `json:"value"`
	Rent        int64 `json:"rent"`
	TotalReturn int64 `json:"totalReturn"`
}

// RentalIncome summarises rent over the holding period.
type RentalIncome struct {
	AnnualRent  int64   `json:"annualRent"`
	TotalRent   int64   `json:"totalRent"`
	ROIWithRent float64 `json:"roiWithRent"`
}

// ROIResult is the return on a purchase held for a number of years.
type ROIResult struct {
	Zone              string       `json:"zone"`
	PurchasePrice     float64      `json:"purchasePrice"`
	HoldingPeriod     int          `json:"holdingPeriod"`
	FutureValue       int64        `json:"futureValue"`
	TotalAppreciation int64        `json:"totalAppreciation"`
	TotalROI          float64      `json:"totalROI"`
	AnnualROI         float64      `json:"annualROI"`
	RentalIncome      RentalIncome `json:"rentalIncome"`
	BreakdownByYear   []YearReturn `json:"breakdownByYear"`
}

// ComputeROI compounds the zone's growth rate over the holding period and
// adds flat rental income. years must be positive.
func ComputeROI(price float64, years int, zone domain.Zone) ROIResult {
	g := zone.GrowthRate / 100
	future := price * math.Pow(1+g, float64(years))
	appreciation := future - price
	totalROI := appreciation / price * 100

	annualRent := price * rentalYield
	totalRent := annualRent * float64(years)

	breakdown := make([]YearReturn, 0, years)
	for y := 1; y <= years; y++ {
		value := price * math.Pow(1+g, float64(y))
		rent := annualRent * float64(y)
		breakdown = append(breakdown, YearReturn{
			Year:        y,
			Value:       int64(value),
			Rent:        int64(rent),
			TotalReturn: int64(value - price + rent),
		})
	}

	return ROIResult{
		Zone:              zone.Key,
		PurchasePrice:     price,
		HoldingPeriod:     years,
		FutureValue:       int64(future),
		TotalAppreciation: int64(appreciation),
		TotalROI:          roundTo(totalROI, 2),
		AnnualROI:         roundTo(totalROI/float64(years), 2),
		RentalIncome: RentalIncome{
			AnnualRent:  int64(annualRent),
			TotalRent:   int64(totalRent),
			ROIWithRent: roundTo((appreciation+totalRent)/price*100, 2),
		},
		BreakdownByYear: breakdown,
	}
}

// Projection is the projected value after Year years.
type Projection struct {
	Year         int     `json:"year"`
	Value        int64   `json:"value"`
	Appreciation int64   `json:"appreciation"`
	ROI          float64 `json:"roi"`
}

// RentalAnalysis is the rent view of an investment.
type RentalAnalysis struct {
	ExpectedAnnualRent  int64   `json:"expectedAnnualRent"`
	ExpectedMonthlyRent int64   `json:"expectedMonthlyRent"`
	RentalYield         float64 `json:"rentalYield"`
	PaybackPeriod       float64 `json:"paybackPeriod"`
}

// Recommendation is the buy/hold advice attached to a score.
type Recommendation struct {
	Rating  string `json:"rating"`
	Message string `json:"message"`
	Action  string `json:"action"`
}

// InvestmentAnalysis is a ten year outlook for a property in a zone.
type InvestmentAnalysis struct {
	PropertyPrice   float64        `json:"propertyPrice"`
	Zone            string         `json:"zone"`
	ZoneName        string         `json:"zoneName"`
	GrowthRate      float64        `json:"growthRate"`
	DemandIndex     float64        `json:"demandIndex"`
	SupplyIndex     float64        `json:"supplyIndex"`
	Projections     []Projection   `json:"projections"`
	RentalAnalysis  RentalAnalysis `json:"rentalAnalysis"`
	InvestmentScore float64        `json:"investmentScore"`
	Recommendation  Recommendation `json:"recommendation"`
}

// AnalyzeInvestment projects value growth for ten years and scores the zone.
func AnalyzeInvestment(price float64, zone domain.Zone) InvestmentAnalysis {
	g := zone.GrowthRate / 100
	projections := make([]Projection, 0, 10)
	for y := 1; y <= 10; y++ {
		future := price * math.Pow(1+g, float64(y))
		appreciation := future - price
		projections = append(projections, Projection{
			Year:         y,
			Value:        int64(future),
			Appreciation: int64(appreciation),
			ROI:          roundTo(appreciation/price*100, 2),
		})
	}

	annualRent := price * rentalYield
	score := InvestmentScore(zone)

	return InvestmentAnalysis{
		PropertyPrice: price,
		Zone:          zone.Key,
		ZoneName:      zone.Name,
		GrowthRate:    zone.GrowthRate,
		DemandIndex:   zone.DemandIndex,
		SupplyIndex:   zone.SupplyIndex,
		Projections:   projections,
		RentalAnalysis: RentalAnalysis{
			ExpectedAnnualRent:  int64(annualRent),
			ExpectedMonthlyRent: int64(annualRent / 12),
			RentalYield:         rentalYield * 100,
			PaybackPeriod:       roundTo(100/(rentalYield*100), 1),
		},
		InvestmentScore: score,
		Recommendation:  RecommendFor(score),
	}
}

// InvestmentScore rates a zone out of 100 from growth, demand and spare supply.
func InvestmentScore(zone domain.Zone) float64 {
	growth := math.Min(zone.GrowthRate*4, 60)
	demand := zone.DemandIndex * 0.25
	supply := (100 - zone.SupplyIndex) * 0.15
	return roundTo(math.Min(growth+demand+supply, 100), 1)
}

// RecommendFor maps a score to advice.
func RecommendFor(score float64) Recommendation {
	switch {
	case score >= 85:
		return Recommendation{
			Rating:  "Excellent",
			Message: "Highly recommended for investment. Strong growth potential and high demand.",
			Action:  "BUY",
		}
	case score >= 70:
		return Recommendation{
			Rating:  "Good",
			Message: "Good investment opportunity with steady growth expected.",
			Action:  "CONSIDER",
		}
	case score >= 55:
		return Recommendation{
			Rating:  "Average",
			Message: "Moderate investment potential. Consider other locations for better returns.",
			Action:  "HOLD",
		}
	default:
		return Recommendation{
			Rating:  "Below Average",
			Message: "Limited growth potential. Not recommended for short-term investment.",
			Action:  "WAIT",
		}
	}
}

// roundTo rounds half to even at the given number of decimals.
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.RoundToEven(v*p) / p
}
