package service

import (
	"math"
	"math/rand/v2"

	"homeverse_backend/internal/valuation/domain"
)

// RandomSource yields values uniformly distributed in [0, 1).
type RandomSource interface {
	Float64() float64
}

// FixedRandom always returns the same draw. 0.5 disables the price variation.
type FixedRandom float64

func (f FixedRandom) Float64() float64 { return float64(f) }

type globalRandom struct{}

func (globalRandom) Float64() float64 { return rand.Float64() }

// DefaultRandom draws from the process-wide generator and is safe for concurrent use.
var DefaultRandom RandomSource = globalRandom{}

// maxVariation is the full width of the random band around the base price.
const maxVariation = 0.05

var bedroomFactors = map[string]float64{
	"1":  0.85,
	"2":  1.0,
	"3":  1.15,
	"4":  1.30,
	"5+": 1.45,
}

// BedroomOptions lists the accepted bedroom keys in display order.
var BedroomOptions = []string{"1", "2", "3", "4", "5+"}

// PriceEngine is the local rule-based estimator.
type PriceEngine struct {
	ds       *domain.Dataset
	resolver *ZoneResolver
	rnd      RandomSource
}

// NewPriceEngine creates an engine. A nil rnd uses DefaultRandom.
func NewPriceEngine(ds *domain.Dataset, resolver *ZoneResolver, rnd RandomSource) *PriceEngine {
	if rnd == nil {
		rnd = DefaultRandom
	}
	return &PriceEngine{ds: ds, resolver: resolver, rnd: rnd}
}

// ComputePrice prices a property. Missing or non-positive multipliers are
// treated as neutral; it never fails.
func (e *PriceEngine) ComputePrice(cfg domain.PropertyConfig) domain.PriceBreakdown {
	match := e.resolver.ResolveZone(cfg.Location)
	zone := e.ds.ZoneOrDefault(match.Zone)

	bedroom := bedroomFactor(cfg.Bedrooms)
	typeFactor := neutralIfUnset(cfg.TypeMultiplier)
	ageFactor := neutralIfUnset(cfg.AgeMultiplier)
	floor := floorFactor(cfg.Floor)

	amenities := 1.0
	flat := 0.0
	for _, a := range cfg.Amenities {
		amenities *= a.Factor()
		flat += a.FlatCost()
	}

	landmark := e.resolver.LandmarkMultiplier(cfg.Location)

	rate := zone.BaseRate * bedroom * typeFactor * ageFactor * floor * amenities * landmark
	basePrice := cfg.Area * rate
	variation := basePrice * maxVariation * (e.rnd.Float64() - 0.5)

	// FinalPrice is whole rupees, so fractional flat costs round half away
	// from zero. AdditionalFlatCosts keeps the exact sum.
	return domain.PriceBreakdown{
		FinalPrice:          int64(math.Round(basePrice+variation)) + int64(math.Round(flat)),
		PricePerAreaUnit:    int64(math.Round(rate)),
		BaseRate:            zone.BaseRate,
		CalculatedRate:      rate,
		BedroomFactor:       bedroom,
		PropertyTypeFactor:  typeFactor,
		AgeFactor:           ageFactor,
		FloorFactor:         floor,
		AmenitiesFactor:     amenities,
		LandmarkFactor:      landmark,
		TotalArea:           cfg.Area,
		BasePrice:           basePrice,
		Variation:           variation,
		AdditionalFlatCosts: flat,
		ZoneInfo:            match,
	}
}

func bedroomFactor(key string) float64 {
	if f, ok := bedroomFactors[key]; ok {
		return f
	}
	return 1.0
}

func neutralIfUnset(v float64) float64 {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 1.0
	}
	return v
}

func floorFactor(f domain.Floor) float64 {
	if f.IsGround() {
		return 0.95
	}
	level, ok := f.Level()
	switch {
	case !ok:
		return 1.0
	case level >= 8:
		return 1.10
	case level >= 4:
		return 1.05
	default:
		// level 0 and below count as unset
		return 1.0
	}
}
