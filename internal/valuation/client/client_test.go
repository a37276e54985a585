package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"homeverse_backend/internal/valuation/domain"
	"homeverse_backend/platform/logger"
)

func testConfig() domain.PropertyConfig {
	return domain.PropertyConfig{
		Location:       "Dhantoli",
		Bedrooms:       "3",
		Area:           1200,
		TypeMultiplier: 1.15,
		Floor:          domain.GroundFloor(),
		Amenities: []domain.Amenity{
			domain.FlatCostAmenity("parking", "Covered Parking", 150000),
			domain.MultiplierAmenity("gym", "Gymnasium", 1.03),
		},
	}
}

func TestPredict_Success(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict-ml" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{
			"success": true,
			"prediction": {
				"price": 6500000,
				"pricePerSqft": 5416,
				"breakdown": {"baseRate": 4800, "mlPrediction": 6350000, "additionalCosts": 150000,
					"featureImportance": {"sqft": 0.6}},
				"zoneInfo": {"detectedZone": "west", "zoneName": "West Nagpur", "confidence": "high",
					"matchedLocality": "Dhantoli"},
				"mlInsights": {"modelUsed": "gbr", "accuracy": "91%"}
			}
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, logger.Discard())
	est, err := c.Predict(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if est.Source != domain.SourceRemote {
		t.Fatalf("expected remote source, got %q", est.Source)
	}
	if est.Breakdown.FinalPrice != 6500000 || est.Breakdown.PricePerAreaUnit != 5416 {
		t.Fatalf("unexpected breakdown %+v", est.Breakdown)
	}
	if est.Breakdown.ZoneInfo.Zone != "west" || est.Breakdown.ZoneInfo.MatchedLocality != "Dhantoli" {
		t.Fatalf("unexpected zone info %+v", est.Breakdown.ZoneInfo)
	}
	if est.Insights == nil || est.Insights.MLPrediction != 6350000 || est.Insights.FeatureImportance["sqft"] != 0.6 {
		t.Fatalf("unexpected insights %+v", est.Insights)
	}

	if received["floor"] != "ground" {
		t.Fatalf("expected floor ground, got %v", received["floor"])
	}
	if bt, ok := received["buildingAge"].(map[string]any); !ok || bt["multiplier"] != 1.0 {
		t.Fatalf("expected neutral building age, got %v", received["buildingAge"])
	}
	amenities, ok := received["amenities"].([]any)
	if !ok || len(amenities) != 2 {
		t.Fatalf("expected 2 amenities, got %v", received["amenities"])
	}
	parking := amenities[0].(map[string]any)
	if parking["price"] != 150000.0 {
		t.Fatalf("expected parking price, got %v", parking)
	}
	gym := amenities[1].(map[string]any)
	if gym["priceImpact"] != 1.03 {
		t.Fatalf("expected gym price impact, got %v", gym)
	}
}

func TestPredict_Failures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"server error", http.StatusInternalServerError, `{}`, ErrStatus},
		{"rejected", http.StatusOK, `{"success": false, "error": "model not loaded"}`, ErrRejected},
		{"not json", http.StatusOK, `<html>`, ErrMalformed},
		{"missing prediction", http.StatusOK, `{"success": true}`, ErrMalformed},
		{"zero price", http.StatusOK, `{"success": true, "prediction": {"price": 0}}`, ErrMalformed},
		{"sub-rupee price", http.StatusOK, `{"success": true, "prediction": {"price": 0.4}}`, ErrMalformed},
		{"negative price", http.StatusOK, `{"success": true, "prediction": {"price": -4500000}}`, ErrMalformed},
		{"overflowing price", http.StatusOK, `{"success": true, "prediction": {"price": 1e30}}`, ErrMalformed},
		{"price past int64", http.StatusOK, `{"success": true, "prediction": {"price": 9.3e18}}`, ErrMalformed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL, time.Second, logger.Discard()).Predict(context.Background(), testConfig())
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPredict_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	_, err := New(srv.URL, 50*time.Millisecond, logger.Discard()).Predict(context.Background(), testConfig())
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "running"}`))
	}))
	defer srv.Close()

	if err := New(srv.URL, time.Second, logger.Discard()).Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
