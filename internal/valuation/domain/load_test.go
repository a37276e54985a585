package domain

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNagpurIsValid(t *testing.T) {
	if err := Nagpur().Validate(); err != nil {
		t.Fatalf("built-in dataset invalid: %v", err)
	}
}

func TestParseDataset_OverridesSections(t *testing.T) {
	raw := []byte(`
market: testville
defaultZone: core
zones:
  - key: core
    name: Core
    baseRate: 6000
    localities: [Old Town]
    keywords: [old]
    growthRate: 8
  - key: edge
    name: Edge
    baseRate: 3000
landmarks:
  - name: Clock Tower
    zone: core
    multiplier: 1.1
amenities:
  - id: garage
    name: Garage
    flatCost: 200000
  - id: sauna
    name: Sauna
    multiplier: 1.02
`)

	ds, err := ParseDataset(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Market != "testville" || ds.DefaultZone != "core" || len(ds.Zones) != 2 {
		t.Fatalf("unexpected dataset %+v", ds)
	}
	if z, ok := ds.Zone("core"); !ok || z.BaseRate != 6000 || z.Localities[0] != "Old Town" {
		t.Fatalf("unexpected core zone %+v", z)
	}
	if len(ds.PropertyTypes) != 5 {
		t.Fatalf("expected property types from defaults, got %d", len(ds.PropertyTypes))
	}
	garage, ok := ds.Amenity("garage")
	if !ok || garage.FlatCost() != 200000 || garage.Factor() != 1.0 {
		t.Fatalf("unexpected garage %+v", garage)
	}
	sauna, ok := ds.Amenity("sauna")
	if !ok || sauna.Factor() != 1.02 || sauna.FlatCost() != 0 {
		t.Fatalf("unexpected sauna %+v", sauna)
	}
}

func TestParseDataset_Errors(t *testing.T) {
	cases := map[string]string{
		"bad yaml":             "zones: [",
		"unknown default zone": "defaultZone: nowhere\n",
		"landmark bad zone":    "landmarks:\n  - name: X\n    zone: nowhere\n    multiplier: 1.1\n",
		"zero base rate":       "defaultZone: a\nzones:\n  - key: a\n    baseRate: 0\n",
		"duplicate zone":       "defaultZone: a\nzones:\n  - key: a\n    baseRate: 1\n  - key: a\n    baseRate: 2\n",
		"amenity both kinds":   "amenities:\n  - id: x\n    flatCost: 10\n    multiplier: 1.1\n",
	}
	for name, raw := range cases {
		if _, err := ParseDataset([]byte(raw)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "market.yaml")
	if err := os.WriteFile(path, []byte("market: nagpur-test\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	ds, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Market != "nagpur-test" || len(ds.Zones) != 6 {
		t.Fatalf("unexpected dataset %+v", ds)
	}

	if _, err := LoadDataset(filepath.Join(t.TempDir(), "missing.yaml")); err == nil || !strings.Contains(err.Error(), "read dataset") {
		t.Fatalf("expected read error, got %v", err)
	}
}
