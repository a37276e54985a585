package service

import (
	"testing"

	"homeverse_backend/internal/interior/domain"
	"homeverse_backend/internal/interior/transport"
	"homeverse_backend/platform/apperr"
	"homeverse_backend/platform/logger"
)

func newTestService() *Service {
	return New(domain.DefaultCatalog(), logger.Discard())
}

func TestResolve_MergesRepeatedFurniture(t *testing.T) {
	svc := newTestService()

	sel, err := svc.Resolve(transport.SelectionRequest{
		WallColor:   "gray",
		AccentColor: "teal",
		Flooring:    "wood",
		Furniture: []transport.FurnitureLine{
			{ID: "chair"},
			{ID: "chair", Quantity: 2},
			{ID: "rug", Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.WallColor.PricePerSqft != 20 || sel.Flooring.PricePerSqft != 150 {
		t.Fatalf("unexpected paint/flooring %+v", sel)
	}
	if sel.AccentColor == nil || sel.AccentColor.ID != "teal" {
		t.Fatalf("expected teal accent, got %+v", sel.AccentColor)
	}
	if len(sel.Furniture) != 2 || sel.Furniture[0].Quantity != 3 {
		t.Fatalf("expected 3 chairs and a rug, got %+v", sel.Furniture)
	}
}

func TestResolve_UnknownIDs(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name string
		req  transport.SelectionRequest
	}{
		{name: "wall", req: transport.SelectionRequest{WallColor: "plaid", Flooring: "tile"}},
		{name: "flooring", req: transport.SelectionRequest{WallColor: "white", Flooring: "lava"}},
		{name: "accent", req: transport.SelectionRequest{WallColor: "white", Flooring: "tile", AccentColor: "white"}},
		{
			name: "furniture",
			req: transport.SelectionRequest{
				WallColor: "white",
				Flooring:  "tile",
				Furniture: []transport.FurnitureLine{{ID: "hammock"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Resolve(tt.req)
			if !apperr.Is(err, apperr.KindValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestEstimate_ItemisedResponse(t *testing.T) {
	svc := newTestService()

	got, err := svc.Estimate(1000, transport.SelectionRequest{
		WallColor: "white",
		Flooring:  "tile",
		Furniture: []transport.FurnitureLine{{ID: "coffee-table", Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Total != 265000 || got.LaborCost != 139500 || got.PaintCost != 37500 {
		t.Fatalf("unexpected breakdown %+v", got)
	}
	if got.Formatted != "₹2.65 L" {
		t.Fatalf("expected ₹2.65 L, got %q", got.Formatted)
	}
	if len(got.Furniture) != 1 || got.Furniture[0].ID != "coffee-table" {
		t.Fatalf("unexpected furniture lines %+v", got.Furniture)
	}

	total, err := svc.Total(1000, transport.SelectionRequest{
		WallColor: "white",
		Flooring:  "tile",
		Furniture: []transport.FurnitureLine{{ID: "coffee-table"}},
	})
	if err != nil || total != got.Total {
		t.Fatalf("Total = %d, %v; want %d", total, err, got.Total)
	}
}

func TestRecommendations_UsesCatalogPrices(t *testing.T) {
	svc := newTestService()

	rec, err := svc.Recommendations(transport.RecommendationRequest{
		Sqft:      100,
		WallColor: "cream",
		Furniture: []transport.FurnitureLine{
			{ID: "king-bed", Quantity: 2},
			{ID: "wardrobe", Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 2*45000 + 2*40000 = 170000, above 30% of 100*5000
	if len(rec.BudgetAlternatives) != 1 || rec.BudgetAlternatives[0].Savings != 51000 {
		t.Fatalf("unexpected alternatives %+v", rec.BudgetAlternatives)
	}
	if len(rec.ColorSchemes) != 1 || rec.ColorSchemes[0].Accent != "maroon" {
		t.Fatalf("unexpected schemes %+v", rec.ColorSchemes)
	}

	_, err = svc.Recommendations(transport.RecommendationRequest{
		Sqft:      100,
		Furniture: []transport.FurnitureLine{{ID: "hammock"}},
	})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCatalog_ExposesAllSections(t *testing.T) {
	cat := newTestService().Catalog()

	if len(cat.WallColors) != 7 || len(cat.AccentColors) != 4 || len(cat.Flooring) != 5 {
		t.Fatalf("unexpected paint/flooring counts %d/%d/%d", len(cat.WallColors), len(cat.AccentColors), len(cat.Flooring))
	}
	if len(cat.Furniture) != 5 || len(cat.Templates) != 4 {
		t.Fatalf("unexpected rooms/templates %d/%d", len(cat.Furniture), len(cat.Templates))
	}
	if cat.Labor.CarpentryFlat != 20000 {
		t.Fatalf("unexpected labor %+v", cat.Labor)
	}
}
