package service

import (
	"hash/fnv"
	"math"
	"strconv"
	"time"

	"homeverse_backend/internal/valuation/domain"
)

// TrendPoint is the average rate for one month.
type TrendPoint struct {
	Month        string `json:"month"`
	AvgPrice     int64  `json:"avgPrice"`
	Transactions int    `json:"transactions"`
}

// PriceRange is the typical spread of rates in a zone.
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Forecast projects the zone rate forward.
type Forecast struct {
	Next6Months  int64   `json:"next6Months"`
	Next12Months int64   `json:"next12Months"`
	Confidence   float64 `json:"confidence"`
}

// MarketTrends is a twelve month history plus a forecast for one zone.
type MarketTrends struct {
	Zone            string       `json:"zone"`
	ZoneName        string       `json:"zoneName"`
	CurrentAvgPrice float64      `json:"currentAvgPrice"`
	YearlyGrowth    float64      `json:"yearlyGrowth"`
	QuarterlyGrowth float64      `json:"quarterlyGrowth"`
	DemandIndex     float64      `json:"demandIndex"`
	SupplyIndex     float64      `json:"supplyIndex"`
	PriceRange      PriceRange   `json:"priceRange"`
	TopLocalities   []string     `json:"topLocalities"`
	Historical      []TrendPoint `json:"historical"`
	Forecast        Forecast     `json:"forecast"`
}

// forecastConfidence is the fixed confidence reported with every forecast.
const forecastConfidence = 87.5

// BuildMarketTrends back-projects the zone's growth over the last twelve
// months. Transaction counts are derived from the zone and month so that
// repeated calls agree.
func BuildMarketTrends(zone domain.Zone, now time.Time) MarketTrends {
	base := zone.BaseRate
	points := make([]TrendPoint, 0, 12)
	for i := 12; i >= 1; i-- {
		month := now.AddDate(0, 0, -30*i).Format("2006-01")
		points = append(points, TrendPoint{
			Month:        month,
			AvgPrice:     int64(base * (1 - float64(i)*zone.GrowthRate/1200)),
			Transactions: 50 + spread(zone.Key, month, 100),
		})
	}

	top := zone.Localities
	if len(top) > 3 {
		top = top[:3]
	}

	return MarketTrends{
		Zone:            zone.Key,
		ZoneName:        zone.Name,
		CurrentAvgPrice: base,
		YearlyGrowth:    zone.GrowthRate,
		QuarterlyGrowth: roundTo(zone.GrowthRate/4, 2),
		DemandIndex:     zone.DemandIndex,
		SupplyIndex:     zone.SupplyIndex,
		PriceRange: PriceRange{
			Min: int64(base * 0.8),
			Max: int64(base * 1.3),
		},
		TopLocalities: append([]string(nil), top...),
		Historical:    points,
		Forecast: Forecast{
			Next6Months:  int64(base * (1 + zone.GrowthRate/200)),
			Next12Months: int64(base * (1 + zone.GrowthRate/100)),
			Confidence:   forecastConfidence,
		},
	}
}

// YearPoint is the average rate for one calendar year.
type YearPoint struct {
	Year         int   `json:"year"`
	AvgPrice     int64 `json:"avgPrice"`
	MinPrice     int64 `json:"minPrice"`
	MaxPrice     int64 `json:"maxPrice"`
	Transactions int   `json:"transactions"`
}

// HistoricalPrices discounts the current rate by the growth rate for each of
// the previous years, oldest first.
func HistoricalPrices(zone domain.Zone, years int, now time.Time) []YearPoint {
	g := zone.GrowthRate / 100
	out := make([]YearPoint, 0, years)
	for y := years; y >= 1; y-- {
		price := zone.BaseRate / math.Pow(1+g, float64(y))
		year := now.Year() - y
		out = append(out, YearPoint{
			Year:         year,
			AvgPrice:     int64(price),
			MinPrice:     int64(price * 0.85),
			MaxPrice:     int64(price * 1.15),
			Transactions: 500 + spread(zone.Key, strconv.Itoa(year), 1000),
		})
	}
	return out
}

func spread(zone, period string, n uint32) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(zone))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(period))
	return int(h.Sum32() % n)
}
