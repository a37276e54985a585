package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"homeverse_backend/internal/events"
	financesvc "homeverse_backend/internal/finance/service"
	interiortransport "homeverse_backend/internal/interior/transport"
	"homeverse_backend/internal/valuation/client"
	"homeverse_backend/internal/valuation/domain"
	"homeverse_backend/internal/valuation/transport"
	"homeverse_backend/platform/apperr"
	"homeverse_backend/platform/logger"
	"homeverse_backend/platform/metrics"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Predictor prices a property remotely.
type Predictor interface {
	Predict(ctx context.Context, cfg domain.PropertyConfig) (domain.Estimate, error)
}

// InteriorEstimator prices an interior design selection for a floor area.
type InteriorEstimator interface {
	Total(area float64, sel interiortransport.SelectionRequest) (int64, error)
}

const compareConcurrency = 4

// Service orchestrates valuations: remote prediction with local fallback,
// the optional interior add-on, and estimate events.
type Service struct {
	ds        *domain.Dataset
	resolver  *ZoneResolver
	engine    *PriceEngine
	predictor Predictor
	interior  InteriorEstimator
	bus       events.Bus
	log       *logger.Logger
	now       func() time.Time
}

// Deps groups the collaborators of Service. Predictor, Interior and Bus are optional.
type Deps struct {
	Dataset   *domain.Dataset
	Random    RandomSource
	Predictor Predictor
	Interior  InteriorEstimator
	Bus       events.Bus
	Log       *logger.Logger
}

// New creates a valuation service.
func New(deps Deps) *Service {
	resolver := NewZoneResolver(deps.Dataset)
	return &Service{
		ds:        deps.Dataset,
		resolver:  resolver,
		engine:    NewPriceEngine(deps.Dataset, resolver, deps.Random),
		predictor: deps.Predictor,
		interior:  deps.Interior,
		bus:       deps.Bus,
		log:       deps.Log,
		now:       time.Now,
	}
}

// Resolver exposes the zone resolver.
func (s *Service) Resolver() *ZoneResolver {
	return s.resolver
}

// ConfigFrom turns a request into an engine input. Catalog ids are resolved
// against the dataset; explicit multipliers and prices take precedence.
func (s *Service) ConfigFrom(req transport.ValuationRequest) (domain.PropertyConfig, error) {
	cfg := domain.PropertyConfig{
		Location: req.Location,
		Bedrooms: req.Bedrooms,
		Area:     req.Sqft,
		Floor:    req.Floor,
	}

	var err error
	if cfg.TypeMultiplier, err = s.optionMultiplier("property type", req.PropertyType, s.ds.PropertyType); err != nil {
		return domain.PropertyConfig{}, err
	}
	if cfg.AgeMultiplier, err = s.optionMultiplier("building age", req.BuildingAge, s.ds.BuildingAge); err != nil {
		return domain.PropertyConfig{}, err
	}

	cfg.Amenities = make([]domain.Amenity, 0, len(req.Amenities))
	for i, ref := range req.Amenities {
		a, err := s.amenity(i, ref)
		if err != nil {
			return domain.PropertyConfig{}, err
		}
		cfg.Amenities = append(cfg.Amenities, a)
	}
	return cfg, nil
}

func (s *Service) optionMultiplier(label string, ref *transport.OptionRef, lookup func(string) (domain.Option, bool)) (float64, error) {
	if ref == nil {
		return 0, nil
	}
	if ref.Multiplier != nil && *ref.Multiplier > 0 {
		return *ref.Multiplier, nil
	}
	if ref.ID == "" {
		return 0, nil
	}
	opt, ok := lookup(ref.ID)
	if !ok {
		return 0, apperr.Validation(fmt.Sprintf("unknown %s %q", label, ref.ID))
	}
	return opt.Multiplier, nil
}

func (s *Service) amenity(i int, ref transport.AmenityRef) (domain.Amenity, error) {
	hasPrice := ref.Price != nil && *ref.Price > 0
	hasImpact := ref.PriceImpact != nil && *ref.PriceImpact > 0
	switch {
	case hasPrice && hasImpact && *ref.PriceImpact != 1:
		return domain.Amenity{}, apperr.Validation(fmt.Sprintf("amenity %d: set either price or priceImpact, not both", i))
	case hasPrice:
		return domain.FlatCostAmenity(ref.ID, ref.ID, *ref.Price), nil
	case hasImpact:
		return domain.MultiplierAmenity(ref.ID, ref.ID, *ref.PriceImpact), nil
	case ref.ID == "":
		return domain.MultiplierAmenity("", "", 1.0), nil
	}
	a, ok := s.ds.Amenity(ref.ID)
	if !ok {
		return domain.Amenity{}, apperr.Validation(fmt.Sprintf("unknown amenity %q", ref.ID))
	}
	return a, nil
}

// Predict prices cfg with the remote predictor when one is configured and
// falls back to the local engine on any remote failure. It never fails.
func (s *Service) Predict(ctx context.Context, cfg domain.PropertyConfig) domain.Estimate {
	if s.predictor != nil {
		est, err := s.predictor.Predict(ctx, cfg)
		if err == nil {
			s.fillZoneInfo(&est, cfg)
			metrics.EstimateProduced(domain.SourceRemote)
			return est
		}
		s.log.WithContext(ctx).PredictionFallback(cfg.Location, err)
		metrics.PredictorFallback(fallbackReason(err))
	}

	metrics.EstimateProduced(domain.SourceLocal)
	return domain.Estimate{Breakdown: s.engine.ComputePrice(cfg), Source: domain.SourceLocal}
}

func (s *Service) fillZoneInfo(est *domain.Estimate, cfg domain.PropertyConfig) {
	if _, ok := s.ds.Zone(est.Breakdown.ZoneInfo.Zone); ok {
		return
	}
	est.Breakdown.ZoneInfo = s.resolver.ResolveZone(cfg.Location)
}

func fallbackReason(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, client.ErrTransport):
		return "transport"
	case errors.Is(err, client.ErrStatus):
		return "status"
	case errors.Is(err, client.ErrRejected):
		return "rejected"
	case errors.Is(err, client.ErrMalformed):
		return "malformed"
	default:
		return "other"
	}
}

// Valuate prices a property, adds the optional interior estimate and publishes
// an EstimateCompleted event.
func (s *Service) Valuate(ctx context.Context, req transport.ValuationRequest) (transport.ValuationResponse, error) {
	cfg, err := s.ConfigFrom(req)
	if err != nil {
		return transport.ValuationResponse{}, err
	}

	est := s.Predict(ctx, cfg)
	resp := transport.ValuationResponse{
		ID:                 uuid.New(),
		PredictionResponse: s.toPrediction(est),
		CreatedAt:          s.now().UTC(),
	}

	if req.InteriorDesign != nil {
		if s.interior == nil {
			return transport.ValuationResponse{}, apperr.Unavailable("interior estimates are not available")
		}
		cost, err := s.interior.Total(req.Sqft, *req.InteriorDesign)
		if err != nil {
			return transport.ValuationResponse{}, err
		}
		total := resp.Price + cost
		resp.InteriorCost = &cost
		resp.TotalWithInterior = &total
		resp.FormattedTotal = financesvc.FormatINR(float64(total))
	}

	s.publish(ctx, req, resp)
	return resp, nil
}

func (s *Service) publish(ctx context.Context, req transport.ValuationRequest, resp transport.ValuationResponse) {
	if s.bus == nil {
		return
	}
	reqJSON, err := json.Marshal(req)
	if err != nil {
		s.log.Error("failed to encode valuation request", "error", err)
		return
	}
	respJSON, err := json.Marshal(resp)
	if err != nil {
		s.log.Error("failed to encode valuation result", "error", err)
		return
	}

	evt := events.EstimateCompleted{
		BaseEvent:         events.NewBaseEventAt(resp.CreatedAt),
		EstimateID:        resp.ID,
		Location:          req.Location,
		Bedrooms:          req.Bedrooms,
		Sqft:              req.Sqft,
		Zone:              resp.ZoneInfo.DetectedZone,
		Confidence:        resp.ZoneInfo.Confidence,
		FinalPrice:        resp.Price,
		PricePerSqft:      resp.PricePerSqft,
		Source:            resp.Source,
		InteriorCost:      resp.InteriorCost,
		TotalWithInterior: resp.TotalWithInterior,
		Request:           reqJSON,
		Result:            respJSON,
	}
	if err := s.bus.PublishSync(ctx, evt); err != nil {
		s.log.WithContext(ctx).Warn("estimate event handlers failed", "estimateId", resp.ID, "error", err)
	}
}

// Compare prices up to ten properties concurrently and summarises them.
func (s *Service) Compare(ctx context.Context, req transport.CompareRequest) (transport.CompareResponse, error) {
	cfgs := make([]domain.PropertyConfig, len(req.Properties))
	for i, p := range req.Properties {
		cfg, err := s.ConfigFrom(p)
		if err != nil {
			return transport.CompareResponse{}, apperr.Wrap(apperr.KindValidation, fmt.Sprintf("properties[%d]: %v", i, err), err)
		}
		cfgs[i] = cfg
	}

	out := make([]transport.Comparison, len(cfgs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(compareConcurrency)
	for i := range cfgs {
		g.Go(func() error {
			est := s.Predict(gctx, cfgs[i])
			out[i] = transport.Comparison{Property: req.Properties[i], Prediction: s.toPrediction(est)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return transport.CompareResponse{}, err
	}

	return transport.CompareResponse{Comparisons: out, Insights: compareInsights(out)}, nil
}

func compareInsights(items []transport.Comparison) transport.CompareInsights {
	if len(items) == 0 {
		return transport.CompareInsights{}
	}
	var sum float64
	minIdx, maxIdx := 0, 0
	for i, it := range items {
		p := it.Prediction.Price
		sum += float64(p)
		if p < items[minIdx].Prediction.Price {
			minIdx = i
		}
		if p > items[maxIdx].Prediction.Price {
			maxIdx = i
		}
	}
	mean := sum / float64(len(items))
	minPrice := items[minIdx].Prediction.Price
	maxPrice := items[maxIdx].Prediction.Price

	var variation float64
	if mean > 0 {
		variation = math.RoundToEven(float64(maxPrice-minPrice)/mean*100*100) / 100
	}
	return transport.CompareInsights{
		AvgPrice:       int64(mean),
		MinPrice:       minPrice,
		MaxPrice:       maxPrice,
		PriceVariation: variation,
		BestValue:      locationOrUnknown(items[minIdx].Property.Location),
		Premium:        locationOrUnknown(items[maxIdx].Property.Location),
	}
}

func locationOrUnknown(loc string) string {
	if loc == "" {
		return "Unknown"
	}
	return loc
}

func (s *Service) toPrediction(est domain.Estimate) transport.PredictionResponse {
	b := est.Breakdown
	zone := s.ds.ZoneOrDefault(b.ZoneInfo.Zone)
	out := transport.PredictionResponse{
		Price:          b.FinalPrice,
		PricePerSqft:   b.PricePerAreaUnit,
		FormattedPrice: financesvc.FormatINR(float64(b.FinalPrice)),
		Source:         est.Source,
		Breakdown: transport.BreakdownResponse{
			BaseRate:           b.BaseRate,
			CalculatedRate:     b.CalculatedRate,
			BedroomFactor:      b.BedroomFactor,
			PropertyTypeFactor: b.PropertyTypeFactor,
			AgeFactor:          b.AgeFactor,
			FloorFactor:        b.FloorFactor,
			AmenitiesFactor:    b.AmenitiesFactor,
			LandmarkFactor:     b.LandmarkFactor,
			TotalArea:          b.TotalArea,
			BasePrice:          b.BasePrice,
			Variation:          b.Variation,
			AdditionalCosts:    b.AdditionalFlatCosts,
		},
		ZoneInfo: transport.ZoneInfoResponse{
			DetectedZone:    b.ZoneInfo.Zone,
			ZoneName:        b.ZoneInfo.ZoneName,
			Confidence:      string(b.ZoneInfo.Confidence),
			MatchedLocality: b.ZoneInfo.MatchedLocality,
			MatchedLandmark: b.ZoneInfo.MatchedLandmark,
			GrowthRate:      zone.GrowthRate,
			DemandIndex:     zone.DemandIndex,
		},
	}
	if est.Insights != nil {
		out.Breakdown.MLPrediction = est.Insights.MLPrediction
		out.Breakdown.FeatureImportance = est.Insights.FeatureImportance
	}
	return out
}

// Zones lists every zone in dataset order.
func (s *Service) Zones() []transport.ZoneResponse {
	out := make([]transport.ZoneResponse, 0, len(s.ds.Zones))
	for _, z := range s.ds.Zones {
		out = append(out, transport.ZoneResponse{
			Key:         z.Key,
			Name:        z.Name,
			BaseRate:    z.BaseRate,
			Localities:  append([]string(nil), z.Localities...),
			GrowthRate:  z.GrowthRate,
			DemandIndex: z.DemandIndex,
			SupplyIndex: z.SupplyIndex,
		})
	}
	return out
}

// Landmarks lists landmark names sorted alphabetically.
func (s *Service) Landmarks() []string {
	out := make([]string, 0, len(s.ds.Landmarks))
	for _, lm := range s.ds.Landmarks {
		out = append(out, lm.Name)
	}
	sort.Strings(out)
	return out
}

// Localities lists every distinct locality sorted alphabetically.
func (s *Service) Localities() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, l := range s.ds.Localities() {
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Resolve reports the zone a location maps to.
func (s *Service) Resolve(location string) transport.ZoneInfoResponse {
	m := s.resolver.ResolveZone(location)
	zone := s.ds.ZoneOrDefault(m.Zone)
	return transport.ZoneInfoResponse{
		DetectedZone:    m.Zone,
		ZoneName:        m.ZoneName,
		Confidence:      string(m.Confidence),
		MatchedLocality: m.MatchedLocality,
		MatchedLandmark: m.MatchedLandmark,
		GrowthRate:      zone.GrowthRate,
		DemandIndex:     zone.DemandIndex,
	}
}

// Options lists the selectable property factors.
func (s *Service) Options() transport.OptionsResponse {
	amenities := make([]transport.AmenityOption, 0, len(s.ds.Amenities))
	for _, a := range s.ds.Amenities {
		opt := transport.AmenityOption{ID: a.ID, Name: a.Name, Price: a.FlatCost()}
		if a.Kind == domain.AmenityMultiplier {
			opt.PriceImpact = a.Factor()
		}
		amenities = append(amenities, opt)
	}
	return transport.OptionsResponse{
		Bedrooms:      append([]string(nil), BedroomOptions...),
		PropertyTypes: append([]domain.Option(nil), s.ds.PropertyTypes...),
		BuildingAges:  append([]domain.Option(nil), s.ds.BuildingAges...),
		Amenities:     amenities,
	}
}
