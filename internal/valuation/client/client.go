// Package client provides the HTTP client for the remote ML price predictor.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"homeverse_backend/internal/valuation/domain"
	"homeverse_backend/platform/logger"
)

var (
	// ErrTransport is returned when the predictor could not be reached.
	ErrTransport = errors.New("predictor transport failure")
	// ErrStatus is returned for non-2xx responses.
	ErrStatus = errors.New("predictor returned non-success status")
	// ErrRejected is returned when the predictor answers success=false.
	ErrRejected = errors.New("predictor rejected request")
	// ErrMalformed is returned when the response cannot be used.
	ErrMalformed = errors.New("predictor response malformed")
)

const maxResponseBytes = 1 << 20

// Client talks to the predictor's /predict-ml endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *logger.Logger
}

// New creates a predictor client. A non-positive timeout means 10 seconds.
func New(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		log:        log,
	}
}

// Predict asks the remote model to price cfg. Exactly one attempt is made.
func (c *Client) Predict(ctx context.Context, cfg domain.PropertyConfig) (domain.Estimate, error) {
	body, err := json.Marshal(newAPIRequest(cfg))
	if err != nil {
		return domain.Estimate{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict-ml", bytes.NewReader(body))
	if err != nil {
		return domain.Estimate{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug("predictor request failed", "error", err)
		return domain.Estimate{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return domain.Estimate{}, fmt.Errorf("%w: status %d", ErrStatus, resp.StatusCode)
	}

	var payload apiResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return domain.Estimate{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if !payload.Success {
		return domain.Estimate{}, fmt.Errorf("%w: %s", ErrRejected, payload.Error)
	}
	if payload.Prediction == nil {
		return domain.Estimate{}, fmt.Errorf("%w: missing price", ErrMalformed)
	}
	if !validPrice(payload.Prediction.Price) {
		return domain.Estimate{}, fmt.Errorf("%w: price %v out of range", ErrMalformed, payload.Prediction.Price)
	}

	return payload.Prediction.toDomain(cfg), nil
}

// Ping checks that the predictor reports itself as running.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ping failed: status %d", resp.StatusCode)
	}

	var status struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&status); err != nil {
		return fmt.Errorf("ping decode: %w", err)
	}
	if status.Status != "running" {
		return fmt.Errorf("ping failed: status %q", status.Status)
	}
	return nil
}

type apiMultiplier struct {
	Multiplier float64 `json:"multiplier"`
}

type apiAmenity struct {
	ID          string  `json:"id,omitempty"`
	PriceImpact float64 `json:"priceImpact,omitempty"`
	Price       float64 `json:"price,omitempty"`
}

type apiRequest struct {
	Location     string        `json:"location"`
	Bedrooms     string        `json:"bedrooms"`
	Sqft         float64       `json:"sqft"`
	PropertyType apiMultiplier `json:"propertyType"`
	BuildingAge  apiMultiplier `json:"buildingAge"`
	Floor        domain.Floor  `json:"floor"`
	Amenities    []apiAmenity  `json:"amenities"`
}

func newAPIRequest(cfg domain.PropertyConfig) apiRequest {
	amenities := make([]apiAmenity, 0, len(cfg.Amenities))
	for _, a := range cfg.Amenities {
		item := apiAmenity{ID: a.ID}
		if a.Kind == domain.AmenityFlatCost {
			item.Price = a.FlatCost()
		} else {
			item.PriceImpact = a.Factor()
		}
		amenities = append(amenities, item)
	}
	return apiRequest{
		Location:     cfg.Location,
		Bedrooms:     cfg.Bedrooms,
		Sqft:         cfg.Area,
		PropertyType: apiMultiplier{Multiplier: orOne(cfg.TypeMultiplier)},
		BuildingAge:  apiMultiplier{Multiplier: orOne(cfg.AgeMultiplier)},
		Floor:        cfg.Floor,
		Amenities:    amenities,
	}
}

func orOne(v float64) float64 {
	if v <= 0 {
		return 1.0
	}
	return v
}

type apiResponse struct {
	Success    bool           `json:"success"`
	Error      string         `json:"error"`
	Prediction *apiPrediction `json:"prediction"`
}

type apiPrediction struct {
	Price        float64 `json:"price"`
	PricePerSqft float64 `json:"pricePerSqft"`
	Breakdown    struct {
		BaseRate          float64            `json:"baseRate"`
		MLPrediction      float64            `json:"mlPrediction"`
		AdditionalCosts   float64            `json:"additionalCosts"`
		FeatureImportance map[string]float64 `json:"featureImportance"`
	} `json:"breakdown"`
	ZoneInfo struct {
		DetectedZone    string `json:"detectedZone"`
		ZoneName        string `json:"zoneName"`
		Confidence      string `json:"confidence"`
		MatchedLocality string `json:"matchedLocality"`
		MatchedLandmark string `json:"matchedLandmark"`
	} `json:"zoneInfo"`
	MLInsights struct {
		ModelUsed string `json:"modelUsed"`
		Accuracy  string `json:"accuracy"`
	} `json:"mlInsights"`
}

func (p *apiPrediction) toDomain(cfg domain.PropertyConfig) domain.Estimate {
	return domain.Estimate{
		Source: domain.SourceRemote,
		Breakdown: domain.PriceBreakdown{
			FinalPrice:          int64(math.Round(p.Price)),
			PricePerAreaUnit:    toRupees(p.PricePerSqft),
			BaseRate:            p.Breakdown.BaseRate,
			TotalArea:           cfg.Area,
			AdditionalFlatCosts: p.Breakdown.AdditionalCosts,
			ZoneInfo: domain.ZoneMatch{
				Zone:            p.ZoneInfo.DetectedZone,
				ZoneName:        p.ZoneInfo.ZoneName,
				Confidence:      domain.Confidence(p.ZoneInfo.Confidence),
				MatchedLocality: p.ZoneInfo.MatchedLocality,
				MatchedLandmark: p.ZoneInfo.MatchedLandmark,
			},
		},
		Insights: &domain.ModelInsights{
			MLPrediction:      toRupees(p.Breakdown.MLPrediction),
			FeatureImportance: p.Breakdown.FeatureImportance,
			ModelUsed:         p.MLInsights.ModelUsed,
			Accuracy:          p.MLInsights.Accuracy,
		},
	}
}

// validPrice accepts finite prices of at least one rupee that fit in an int64.
func validPrice(v float64) bool {
	return !math.IsNaN(v) && v >= 1 && v < math.MaxInt64
}

// toRupees rounds an auxiliary figure, mapping anything unrepresentable to 0.
func toRupees(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) >= math.MaxInt64 {
		return 0
	}
	return int64(math.Round(v))
}
