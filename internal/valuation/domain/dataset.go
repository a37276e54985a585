// Package domain holds the valuation reference data and the value types the
// pricing engines operate on. Datasets are built once and never mutated.
package domain

import (
	"fmt"
	"strings"
)

// Confidence describes how a location was matched to a zone.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Zone is a market segment with a base price per square foot.
type Zone struct {
	Key         string
	Name        string
	BaseRate    float64
	Localities  []string
	Keywords    []string
	GrowthRate  float64 // annual appreciation, percent
	DemandIndex float64
	SupplyIndex float64
}

// Landmark adds a premium to locations that mention it.
type Landmark struct {
	Name       string
	Zone       string
	Multiplier float64
}

// Option is a selectable categorical factor (property type, building age).
type Option struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

// Dataset is the complete reference data for one market.
type Dataset struct {
	Market        string
	DefaultZone   string
	Zones         []Zone
	Landmarks     []Landmark
	PropertyTypes []Option
	BuildingAges  []Option
	Amenities     []Amenity
}

// Zone looks up a zone by key.
func (d *Dataset) Zone(key string) (Zone, bool) {
	for _, z := range d.Zones {
		if z.Key == key {
			return z, true
		}
	}
	return Zone{}, false
}

// ZoneOrDefault returns the zone for key, or the default zone when key is unknown.
func (d *Dataset) ZoneOrDefault(key string) Zone {
	if z, ok := d.Zone(key); ok {
		return z
	}
	z, _ := d.Zone(d.DefaultZone)
	return z
}

// PropertyType looks up a property type option.
func (d *Dataset) PropertyType(id string) (Option, bool) {
	return findOption(d.PropertyTypes, id)
}

// BuildingAge looks up a building age option.
func (d *Dataset) BuildingAge(id string) (Option, bool) {
	return findOption(d.BuildingAges, id)
}

// Amenity looks up a catalog amenity.
func (d *Dataset) Amenity(id string) (Amenity, bool) {
	for _, a := range d.Amenities {
		if a.ID == id {
			return a, true
		}
	}
	return Amenity{}, false
}

// Localities returns every locality across all zones in dataset order,
// including duplicates that appear in more than one zone.
func (d *Dataset) Localities() []string {
	var out []string
	for _, z := range d.Zones {
		out = append(out, z.Localities...)
	}
	return out
}

// Validate checks the structural rules the engines rely on.
func (d *Dataset) Validate() error {
	if len(d.Zones) == 0 {
		return fmt.Errorf("dataset %q: no zones", d.Market)
	}
	seen := make(map[string]struct{}, len(d.Zones))
	for _, z := range d.Zones {
		if strings.TrimSpace(z.Key) == "" {
			return fmt.Errorf("dataset %q: zone with empty key", d.Market)
		}
		if _, dup := seen[z.Key]; dup {
			return fmt.Errorf("dataset %q: duplicate zone %q", d.Market, z.Key)
		}
		seen[z.Key] = struct{}{}
		if z.BaseRate <= 0 {
			return fmt.Errorf("zone %q: base rate must be positive", z.Key)
		}
	}
	if _, ok := seen[d.DefaultZone]; !ok {
		return fmt.Errorf("dataset %q: default zone %q not defined", d.Market, d.DefaultZone)
	}
	for _, lm := range d.Landmarks {
		if _, ok := seen[lm.Zone]; !ok {
			return fmt.Errorf("landmark %q: unknown zone %q", lm.Name, lm.Zone)
		}
		if lm.Multiplier <= 0 {
			return fmt.Errorf("landmark %q: multiplier must be positive", lm.Name)
		}
	}
	return nil
}

func findOption(opts []Option, id string) (Option, bool) {
	for _, o := range opts {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}
