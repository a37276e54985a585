package domain

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type datasetFile struct {
	Market        string         `yaml:"market"`
	DefaultZone   string         `yaml:"defaultZone"`
	Zones         []zoneFile     `yaml:"zones"`
	Landmarks     []landmarkFile `yaml:"landmarks"`
	PropertyTypes []optionFile   `yaml:"propertyTypes"`
	BuildingAges  []optionFile   `yaml:"buildingAges"`
	Amenities     []amenityFile  `yaml:"amenities"`
}

type zoneFile struct {
	Key         string   `yaml:"key"`
	Name        string   `yaml:"name"`
	BaseRate    float64  `yaml:"baseRate"`
	Localities  []string `yaml:"localities"`
	Keywords    []string `yaml:"keywords"`
	GrowthRate  float64  `yaml:"growthRate"`
	DemandIndex float64  `yaml:"demandIndex"`
	SupplyIndex float64  `yaml:"supplyIndex"`
}

type landmarkFile struct {
	Name       string  `yaml:"name"`
	Zone       string  `yaml:"zone"`
	Multiplier float64 `yaml:"multiplier"`
}

type optionFile struct {
	ID         string  `yaml:"id"`
	Name       string  `yaml:"name"`
	Multiplier float64 `yaml:"multiplier"`
}

type amenityFile struct {
	ID         string  `yaml:"id"`
	Name       string  `yaml:"name"`
	FlatCost   float64 `yaml:"flatCost"`
	Multiplier float64 `yaml:"multiplier"`
}

// LoadDataset reads a dataset from a YAML file. Sections left out of the file
// are taken from the built-in Nagpur dataset.
func LoadDataset(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return ParseDataset(raw)
}

// ParseDataset decodes a YAML dataset document.
func ParseDataset(raw []byte) (*Dataset, error) {
	var file datasetFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	ds := Nagpur()
	if file.Market != "" {
		ds.Market = file.Market
	}
	if file.DefaultZone != "" {
		ds.DefaultZone = file.DefaultZone
	}
	if len(file.Zones) > 0 {
		ds.Zones = make([]Zone, 0, len(file.Zones))
		for _, z := range file.Zones {
			ds.Zones = append(ds.Zones, Zone{
				Key:         z.Key,
				Name:        z.Name,
				BaseRate:    z.BaseRate,
				Localities:  z.Localities,
				Keywords:    z.Keywords,
				GrowthRate:  z.GrowthRate,
				DemandIndex: z.DemandIndex,
				SupplyIndex: z.SupplyIndex,
			})
		}
	}
	if len(file.Landmarks) > 0 {
		ds.Landmarks = make([]Landmark, 0, len(file.Landmarks))
		for _, lm := range file.Landmarks {
			ds.Landmarks = append(ds.Landmarks, Landmark(lm))
		}
	}
	if len(file.PropertyTypes) > 0 {
		ds.PropertyTypes = toOptions(file.PropertyTypes)
	}
	if len(file.BuildingAges) > 0 {
		ds.BuildingAges = toOptions(file.BuildingAges)
	}
	if len(file.Amenities) > 0 {
		ds.Amenities = make([]Amenity, 0, len(file.Amenities))
		for _, a := range file.Amenities {
			switch {
			case a.FlatCost != 0 && a.Multiplier != 0:
				return nil, fmt.Errorf("amenity %q: set either flatCost or multiplier, not both", a.ID)
			case a.FlatCost != 0:
				ds.Amenities = append(ds.Amenities, FlatCostAmenity(a.ID, a.Name, a.FlatCost))
			default:
				ds.Amenities = append(ds.Amenities, MultiplierAmenity(a.ID, a.Name, a.Multiplier))
			}
		}
	}

	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

func toOptions(in []optionFile) []Option {
	out := make([]Option, 0, len(in))
	for _, o := range in {
		out = append(out, Option(o))
	}
	return out
}
