package service

import (
	"testing"

	"homeverse_backend/internal/valuation/domain"
)

func TestResolveZone(t *testing.T) {
	r := NewZoneResolver(domain.Nagpur())

	cases := []struct {
		name       string
		location   string
		zone       string
		confidence domain.Confidence
		locality   string
		landmark   string
	}{
		{"locality", "Sitabuldi", "central", domain.ConfidenceHigh, "Sitabuldi", ""},
		{"locality authored first wins", "Dharampeth near Futala Lake", "central", domain.ConfidenceHigh, "Dharampeth", ""},
		{"case insensitive", "  SITABULDI MAIN ROAD ", "central", domain.ConfidenceHigh, "Sitabuldi", ""},
		{"landmark", "Futala Lake Road", "west", domain.ConfidenceHigh, "", "Futala Lake"},
		{"landmark central", "near VCA Stadium", "central", domain.ConfidenceHigh, "", "VCA Stadium"},
		{"keyword", "Hanuman Temple Road", "west", domain.ConfidenceMedium, "", ""},
		{"locality south", "hingna midc", "south", domain.ConfidenceHigh, "Hingna", ""},
		{"default", "Mumbai", "central", domain.ConfidenceLow, "", ""},
		{"empty", "", "central", domain.ConfidenceLow, "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := r.ResolveZone(tc.location)
			if m.Zone != tc.zone {
				t.Fatalf("expected zone %q, got %q", tc.zone, m.Zone)
			}
			if m.Confidence != tc.confidence {
				t.Fatalf("expected confidence %q, got %q", tc.confidence, m.Confidence)
			}
			if m.MatchedLocality != tc.locality {
				t.Fatalf("expected locality %q, got %q", tc.locality, m.MatchedLocality)
			}
			if m.MatchedLandmark != tc.landmark {
				t.Fatalf("expected landmark %q, got %q", tc.landmark, m.MatchedLandmark)
			}
		})
	}
}

func TestResolveZone_Deterministic(t *testing.T) {
	r := NewZoneResolver(domain.Nagpur())
	first := r.ResolveZone("Ambazari Lake view")
	for i := 0; i < 10; i++ {
		if got := r.ResolveZone("Ambazari Lake view"); got != first {
			t.Fatalf("expected %+v, got %+v", first, got)
		}
	}
}

func TestLandmarkMultiplier(t *testing.T) {
	r := NewZoneResolver(domain.Nagpur())

	cases := map[string]float64{
		"flat near futala lake": 1.20,
		"Seminary Hills":        1.25,
		"Sadar Bazaar":          1.08,
		"VCA Stadium and AIIMS": 1.15,
		"Sitabuldi":             1.0,
		"":                      1.0,
	}
	for loc, want := range cases {
		if got := r.LandmarkMultiplier(loc); got != want {
			t.Fatalf("%q: expected %v, got %v", loc, want, got)
		}
	}
}
