// Package transport defines the valuation request and response shapes.
package transport

import (
	"time"

	interiortransport "homeverse_backend/internal/interior/transport"
	"homeverse_backend/internal/valuation/domain"

	"github.com/google/uuid"
)

// OptionRef selects a categorical factor by id, by explicit multiplier, or both.
// A positive explicit multiplier wins; a zero or negative one is ignored.
type OptionRef struct {
	ID         string   `json:"id,omitempty" validate:"omitempty,max=64"`
	Multiplier *float64 `json:"multiplier,omitempty" validate:"omitempty,lte=10"`
}

// AmenityRef selects an amenity by id or describes it inline with either a
// flat price or a price impact multiplier. Non-positive prices and impacts
// count as unset; an amenity with nothing usable is neutral.
type AmenityRef struct {
	ID          string   `json:"id,omitempty" validate:"omitempty,max=64"`
	PriceImpact *float64 `json:"priceImpact,omitempty" validate:"omitempty,lte=10"`
	Price       *float64 `json:"price,omitempty"`
}

// ValuationRequest is a property to price.
type ValuationRequest struct {
	Location       string                              `json:"location" validate:"required,min=2,max=200"`
	Bedrooms       string                              `json:"bedrooms" validate:"required,oneof=1 2 3 4 5+"`
	Sqft           float64                             `json:"sqft" validate:"required,gte=300,lte=100000"`
	PropertyType   *OptionRef                          `json:"propertyType,omitempty"`
	BuildingAge    *OptionRef                          `json:"buildingAge,omitempty"`
	Floor          domain.Floor                        `json:"floor"`
	Amenities      []AmenityRef                        `json:"amenities" validate:"omitempty,max=20,dive"`
	InteriorDesign *interiortransport.SelectionRequest `json:"interiorDesign,omitempty"`
}

// CompareRequest prices several properties side by side.
type CompareRequest struct {
	Properties []ValuationRequest `json:"properties" validate:"required,min=1,max=10,dive"`
}

// ZoneInfoResponse describes the matched zone.
type ZoneInfoResponse struct {
	DetectedZone    string  `json:"detectedZone"`
	ZoneName        string  `json:"zoneName"`
	Confidence      string  `json:"confidence"`
	MatchedLocality string  `json:"matchedLocality,omitempty"`
	MatchedLandmark string  `json:"matchedLandmark,omitempty"`
	GrowthRate      float64 `json:"growthRate"`
	DemandIndex     float64 `json:"demandIndex"`
}

// BreakdownResponse lists every factor behind a price. Remote estimates only
// fill the fields the predictor returns.
type BreakdownResponse struct {
	BaseRate           float64            `json:"baseRate"`
	CalculatedRate     float64            `json:"calculatedRate,omitempty"`
	BedroomFactor      float64            `json:"bedroomFactor,omitempty"`
	PropertyTypeFactor float64            `json:"propertyTypeFactor,omitempty"`
	AgeFactor          float64            `json:"ageFactor,omitempty"`
	FloorFactor        float64            `json:"floorFactor,omitempty"`
	AmenitiesFactor    float64            `json:"amenitiesFactor,omitempty"`
	LandmarkFactor     float64            `json:"landmarkFactor,omitempty"`
	TotalArea          float64            `json:"totalArea"`
	BasePrice          float64            `json:"basePrice,omitempty"`
	Variation          float64            `json:"variation"`
	AdditionalCosts    float64            `json:"additionalCosts"`
	MLPrediction       int64              `json:"mlPrediction,omitempty"`
	FeatureImportance  map[string]float64 `json:"featureImportance,omitempty"`
}

// PredictionResponse is one priced property.
type PredictionResponse struct {
	Price          int64             `json:"price"`
	PricePerSqft   int64             `json:"pricePerSqft"`
	FormattedPrice string            `json:"formattedPrice"`
	Source         string            `json:"source"`
	Breakdown      BreakdownResponse `json:"breakdown"`
	ZoneInfo       ZoneInfoResponse  `json:"zoneInfo"`
}

// ValuationResponse is the result of POST /valuations.
type ValuationResponse struct {
	ID uuid.UUID `json:"id"`
	PredictionResponse
	InteriorCost      *int64    `json:"interiorCost,omitempty"`
	TotalWithInterior *int64    `json:"totalWithInterior,omitempty"`
	FormattedTotal    string    `json:"formattedTotal,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Comparison pairs a request with its prediction.
type Comparison struct {
	Property   ValuationRequest   `json:"property"`
	Prediction PredictionResponse `json:"prediction"`
}

// CompareInsights summarises a comparison.
type CompareInsights struct {
	AvgPrice       int64   `json:"avgPrice"`
	MinPrice       int64   `json:"minPrice"`
	MaxPrice       int64   `json:"maxPrice"`
	PriceVariation float64 `json:"priceVariation"`
	BestValue      string  `json:"bestValue"`
	Premium        string  `json:"premium"`
}

// CompareResponse is the result of POST /valuations/compare.
type CompareResponse struct {
	Comparisons []Comparison    `json:"comparisons"`
	Insights    CompareInsights `json:"insights"`
}

// ZoneResponse describes one zone.
type ZoneResponse struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	BaseRate    float64  `json:"baseRate"`
	Localities  []string `json:"localities"`
	GrowthRate  float64  `json:"growthRate"`
	DemandIndex float64  `json:"demandIndex"`
	SupplyIndex float64  `json:"supplyIndex"`
}

// ResolveQuery is a location to resolve.
type ResolveQuery struct {
	Q string `form:"q" binding:"required,min=2,max=200"`
}

// AmenityOption is a catalog amenity.
type AmenityOption struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	PriceImpact float64 `json:"priceImpact,omitempty"`
}

// OptionsResponse lists the selectable property factors.
type OptionsResponse struct {
	Bedrooms      []string        `json:"bedrooms"`
	PropertyTypes []domain.Option `json:"propertyTypes"`
	BuildingAges  []domain.Option `json:"buildingAges"`
	Amenities     []AmenityOption `json:"amenities"`
}
