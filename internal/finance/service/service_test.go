package service

import (
	"testing"
	"time"

	"homeverse_backend/internal/valuation/domain"
	"homeverse_backend/platform/apperr"
)

func newTestService() *Service {
	svc := New(domain.Nagpur())
	svc.now = func() time.Time { return time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC) }
	return svc
}

func TestService_ROIValidation(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name  string
		price float64
		years int
		zone  string
		kind  apperr.Kind
	}{
		{name: "zero years", price: 1000000, years: 0, kind: apperr.KindValidation},
		{name: "too many years", price: 1000000, years: 31, kind: apperr.KindValidation},
		{name: "zero price", price: 0, years: 5, kind: apperr.KindValidation},
		{name: "unknown zone", price: 1000000, years: 5, zone: "mars", kind: apperr.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ROI(tt.price, tt.years, tt.zone)
			if !apperr.Is(err, tt.kind) {
				t.Fatalf("expected kind %v, got %v", tt.kind, err)
			}
		})
	}
}

func TestService_EmptyZoneUsesDefault(t *testing.T) {
	svc := newTestService()

	roi, err := svc.ROI(1000000, 5, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if roi.Zone != "central" {
		t.Fatalf("expected central, got %s", roi.Zone)
	}

	inv, err := svc.Investment(5000000, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.ZoneName != "Central Nagpur" {
		t.Fatalf("expected Central Nagpur, got %s", inv.ZoneName)
	}
}

func TestService_Historical(t *testing.T) {
	svc := newTestService()

	def, err := svc.Historical("south", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(def) != 5 || def[len(def)-1].Year != 2025 {
		t.Fatalf("expected five years ending 2025, got %+v", def)
	}

	longest, err := svc.Historical("south", 20)
	if err != nil || len(longest) != 20 {
		t.Fatalf("expected 20 years, got %d (%v)", len(longest), err)
	}

	if _, err := svc.Historical("south", 21); !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.Historical("nowhere", 5); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestService_MarketTrends(t *testing.T) {
	svc := newTestService()

	got, err := svc.MarketTrends("east")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Zone != "east" || len(got.Historical) != 12 {
		t.Fatalf("unexpected trends %+v", got)
	}
	if got.Forecast.Confidence != 87.5 {
		t.Fatalf("unexpected forecast %+v", got.Forecast)
	}

	if _, err := svc.MarketTrends("mars"); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
