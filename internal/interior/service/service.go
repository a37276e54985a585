// Package service implements interior design pricing and recommendations.
package service

import (
	"fmt"
	"math"

	financesvc "homeverse_backend/internal/finance/service"
	"homeverse_backend/internal/interior/domain"
	"homeverse_backend/internal/interior/transport"
	"homeverse_backend/platform/apperr"
	"homeverse_backend/platform/logger"
)

// Service resolves catalog selections and prices them.
type Service struct {
	catalog *domain.Catalog
	log     *logger.Logger
}

// New creates a new interior service over an immutable catalog.
func New(catalog *domain.Catalog, log *logger.Logger) *Service {
	return &Service{catalog: catalog, log: log}
}

// Catalog returns the full interior catalog.
func (s *Service) Catalog() transport.CatalogResponse {
	return transport.CatalogResponse{
		WallColors:   s.catalog.WallColors,
		AccentColors: s.catalog.AccentColors,
		Flooring:     s.catalog.Flooring,
		Furniture:    s.catalog.Rooms,
		Labor:        s.catalog.Labor,
		Templates:    s.catalog.Templates,
	}
}

// Resolve turns catalog ids into a priced selection. Repeated furniture ids are
// merged; a missing quantity counts as one.
func (s *Service) Resolve(req transport.SelectionRequest) (domain.Selection, error) {
	wall, ok := s.catalog.WallColor(req.WallColor)
	if !ok {
		return domain.Selection{}, apperr.Validation(fmt.Sprintf("unknown wall color %q", req.WallColor))
	}
	flooring, ok := s.catalog.FlooringOption(req.Flooring)
	if !ok {
		return domain.Selection{}, apperr.Validation(fmt.Sprintf("unknown flooring %q", req.Flooring))
	}

	sel := domain.Selection{WallColor: wall, Flooring: flooring}
	if req.AccentColor != "" {
		accent, ok := s.catalog.AccentColor(req.AccentColor)
		if !ok {
			return domain.Selection{}, apperr.Validation(fmt.Sprintf("unknown accent color %q", req.AccentColor))
		}
		sel.AccentColor = &accent
	}

	lines, err := s.lines(req.Furniture)
	if err != nil {
		return domain.Selection{}, err
	}
	sel.Furniture = domain.NewCart(lines).Items()
	return sel, nil
}

// Estimate prices a selection for a floor area.
func (s *Service) Estimate(area float64, req transport.SelectionRequest) (transport.CostBreakdownResponse, error) {
	sel, err := s.Resolve(req)
	if err != nil {
		return transport.CostBreakdownResponse{}, err
	}
	b := ComputeBreakdown(area, sel, s.catalog.Labor)
	s.log.Debug("interior estimate computed", "sqft", area, "total", b.Total)

	furniture := make([]transport.FurnitureLine, 0, len(sel.Furniture))
	for _, l := range sel.Furniture {
		furniture = append(furniture, transport.FurnitureLine{ID: l.ItemID, Quantity: l.Quantity})
	}

	return transport.CostBreakdownResponse{
		WallArea:      b.WallArea,
		PaintCost:     roundInt(b.PaintCost),
		AccentCost:    roundInt(b.AccentCost),
		FlooringCost:  roundInt(b.FlooringCost),
		FurnitureCost: roundInt(b.FurnitureCost),
		LaborCost:     roundInt(b.LaborCost),
		Total:         b.Total,
		Formatted:     financesvc.FormatINR(float64(b.Total)),
		Furniture:     furniture,
	}, nil
}

// Total prices a selection and returns only the rounded total.
func (s *Service) Total(area float64, req transport.SelectionRequest) (int64, error) {
	sel, err := s.Resolve(req)
	if err != nil {
		return 0, err
	}
	return ComputeInteriorCost(area, sel, s.catalog.Labor), nil
}

// Recommendations suggests colors, essentials, styles and packages.
func (s *Service) Recommendations(req transport.RecommendationRequest) (transport.RecommendationResponse, error) {
	lines, err := s.lines(req.Furniture)
	if err != nil {
		return transport.RecommendationResponse{}, err
	}
	cart := domain.NewCart(lines)

	ids := make([]string, 0, cart.Len())
	for _, l := range cart.Items() {
		ids = append(ids, l.ItemID)
	}

	return Recommend(RecommendInput{
		Sqft:          req.Sqft,
		PropertyType:  req.PropertyType,
		WallColor:     req.WallColor,
		ItemIDs:       ids,
		FurnitureCost: cart.Total(),
		Budget:        req.Budget,
	}), nil
}

func (s *Service) lines(in []transport.FurnitureLine) ([]domain.LineItem, error) {
	out := make([]domain.LineItem, 0, len(in))
	for _, f := range in {
		item, ok := s.catalog.Furniture(f.ID)
		if !ok {
			return nil, apperr.Validation(fmt.Sprintf("unknown furniture item %q", f.ID))
		}
		qty := f.Quantity
		if qty <= 0 {
			qty = 1
		}
		out = append(out, domain.LineItem{ItemID: item.ID, Name: item.Name, UnitPrice: item.Price, Quantity: qty})
	}
	return out, nil
}

func roundInt(v float64) int64 {
	return int64(math.Round(v))
}
