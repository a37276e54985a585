package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// AmenityKind tags how an amenity affects the price.
type AmenityKind int

const (
	// AmenityMultiplier scales the per-sqft rate.
	AmenityMultiplier AmenityKind = iota
	// AmenityFlatCost is added to the final price.
	AmenityFlatCost
)

// Amenity contributes either a flat cost or a rate multiplier, never both.
type Amenity struct {
	ID    string
	Name  string
	Kind  AmenityKind
	Value float64
}

// MultiplierAmenity builds an amenity that scales the rate.
func MultiplierAmenity(id, name string, factor float64) Amenity {
	return Amenity{ID: id, Name: name, Kind: AmenityMultiplier, Value: factor}
}

// FlatCostAmenity builds an amenity that adds a lump sum.
func FlatCostAmenity(id, name string, cost float64) Amenity {
	return Amenity{ID: id, Name: name, Kind: AmenityFlatCost, Value: cost}
}

// Factor is the multiplicative impact; 1.0 for flat-cost or malformed amenities.
func (a Amenity) Factor() float64 {
	if a.Kind != AmenityMultiplier || a.Value <= 0 {
		return 1.0
	}
	return a.Value
}

// FlatCost is the additive impact; 0 for multiplier or malformed amenities.
func (a Amenity) FlatCost() float64 {
	if a.Kind != AmenityFlatCost || a.Value < 0 {
		return 0
	}
	return a.Value
}

type floorKind uint8

const (
	floorUnset floorKind = iota
	floorGround
	floorLevel
)

// Floor is "ground", a numbered level, or unset.
type Floor struct {
	kind  floorKind
	level int
}

// GroundFloor is the ground floor.
func GroundFloor() Floor { return Floor{kind: floorGround} }

// FloorLevel is a numbered floor above ground.
func FloorLevel(n int) Floor { return Floor{kind: floorLevel, level: n} }

// IsSet reports whether a floor was given.
func (f Floor) IsSet() bool { return f.kind != floorUnset }

// IsGround reports whether this is the ground floor.
func (f Floor) IsGround() bool { return f.kind == floorGround }

// Level returns the numbered level and whether one is set.
func (f Floor) Level() (int, bool) { return f.level, f.kind == floorLevel }

// MarshalJSON renders "ground", a number, or null.
func (f Floor) MarshalJSON() ([]byte, error) {
	switch f.kind {
	case floorGround:
		return []byte(`"ground"`), nil
	case floorLevel:
		return []byte(strconv.Itoa(f.level)), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts "ground", integers, numeric strings and "10+".
func (f *Floor) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = Floor{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseFloor(s)
		if err != nil {
			return err
		}
		*f = parsed
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("floor: %w", err)
	}
	*f = FloorLevel(int(n))
	return nil
}

// ParseFloor parses the textual floor forms used by the wizard.
func ParseFloor(s string) (Floor, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "":
		return Floor{}, nil
	case "ground", "g":
		return GroundFloor(), nil
	}
	n, err := strconv.Atoi(strings.TrimSuffix(s, "+"))
	if err != nil {
		return Floor{}, fmt.Errorf("floor: invalid value %q", s)
	}
	return FloorLevel(n), nil
}

// PropertyConfig is the input to a single price computation.
type PropertyConfig struct {
	Location       string
	Bedrooms       string
	Area           float64
	TypeMultiplier float64
	AgeMultiplier  float64
	Floor          Floor
	Amenities      []Amenity
}

// ZoneMatch is the outcome of zone resolution.
type ZoneMatch struct {
	Zone            string
	ZoneName        string
	Confidence      Confidence
	MatchedLocality string
	MatchedLandmark string
}

// PriceBreakdown carries the final price and every factor that produced it.
type PriceBreakdown struct {
	FinalPrice          int64
	PricePerAreaUnit    int64
	BaseRate            float64
	CalculatedRate      float64
	BedroomFactor       float64
	PropertyTypeFactor  float64
	AgeFactor           float64
	FloorFactor         float64
	AmenitiesFactor     float64
	LandmarkFactor      float64
	TotalArea           float64
	BasePrice           float64
	Variation           float64
	AdditionalFlatCosts float64
	ZoneInfo            ZoneMatch
}

// Source values for Estimate.
const (
	SourceRemote = "remote"
	SourceLocal  = "local"
)

// ModelInsights is the extra detail a remote predictor may return.
type ModelInsights struct {
	MLPrediction      int64
	FeatureImportance map[string]float64
	ModelUsed         string
	Accuracy          string
}

// Estimate is a priced property, from the remote predictor or the local engine.
type Estimate struct {
	Breakdown PriceBreakdown
	Source    string
	Insights  *ModelInsights
}
