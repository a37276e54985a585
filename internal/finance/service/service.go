// Package service implements the derived financial utilities that consume a
// valuation: currency display, EMI, ROI, investment analysis and market trends.
package service

import (
	"time"

	"homeverse_backend/internal/valuation/domain"
	"homeverse_backend/platform/apperr"
)

const (
	defaultHistoryYears = 5
	maxHistoryYears     = 20
	maxHoldingYears     = 30
)

// Service binds the finance calculations to a market dataset.
type Service struct {
	ds  *domain.Dataset
	now func() time.Time
}

// New creates a finance service.
func New(ds *domain.Dataset) *Service {
	return &Service{ds: ds, now: time.Now}
}

// zone resolves a zone key; an empty key means the default zone.
func (s *Service) zone(key string) (domain.Zone, error) {
	if key == "" {
		return s.ds.ZoneOrDefault(s.ds.DefaultZone), nil
	}
	z, ok := s.ds.Zone(key)
	if !ok {
		return domain.Zone{}, apperr.NotFound("unknown zone: " + key)
	}
	return z, nil
}

// EMI computes a loan instalment.
func (s *Service) EMI(principal, ratePercent, tenureYears float64) (EMIResult, error) {
	return ComputeEMI(principal, ratePercent, tenureYears)
}

// ROI computes return on a purchase held for years in a zone.
func (s *Service) ROI(price float64, years int, zoneKey string) (ROIResult, error) {
	if years < 1 || years > maxHoldingYears {
		return ROIResult{}, apperr.Validation("holding period must be between 1 and 30 years")
	}
	if price <= 0 {
		return ROIResult{}, apperr.Validation("purchase price must be positive")
	}
	z, err := s.zone(zoneKey)
	if err != nil {
		return ROIResult{}, err
	}
	return ComputeROI(price, years, z), nil
}

// Investment analyses a purchase in a zone.
func (s *Service) Investment(price float64, zoneKey string) (InvestmentAnalysis, error) {
	if price <= 0 {
		return InvestmentAnalysis{}, apperr.Validation("price must be positive")
	}
	z, err := s.zone(zoneKey)
	if err != nil {
		return InvestmentAnalysis{}, err
	}
	return AnalyzeInvestment(price, z), nil
}

// MarketTrends returns the twelve month trend for a zone.
func (s *Service) MarketTrends(zoneKey string) (MarketTrends, error) {
	z, err := s.zone(zoneKey)
	if err != nil {
		return MarketTrends{}, err
	}
	return BuildMarketTrends(z, s.now()), nil
}

// Historical returns yearly averages; years defaults to 5 and is capped at 20.
func (s *Service) Historical(zoneKey string, years int) ([]YearPoint, error) {
	if years == 0 {
		years = defaultHistoryYears
	}
	if years < 0 || years > maxHistoryYears {
		return nil, apperr.Validation("years must be between 1 and 20")
	}
	z, err := s.zone(zoneKey)
	if err != nil {
		return nil, err
	}
	return HistoricalPrices(z, years, s.now()), nil
}

// DefaultZone is the zone used when a request names none.
func (s *Service) DefaultZone() string {
	return s.ds.DefaultZone
}
