package service

import (
	"testing"

	"homeverse_backend/internal/interior/domain"
)

func testLabor() domain.LaborRates {
	return domain.LaborRates{
		Painting:       25,
		Flooring:       30,
		ElectricalFlat: 15000,
		PlumbingFlat:   12000,
		CarpentryFlat:  20000,
	}
}

func TestComputeBreakdown_ReferenceSelection(t *testing.T) {
	sel := domain.Selection{
		WallColor: domain.PaintColor{ID: "white", PricePerSqft: 15},
		Flooring:  domain.FlooringOption{ID: "tile", PricePerSqft: 80},
		Furniture: []domain.LineItem{{ItemID: "coffee-table", UnitPrice: 8000, Quantity: 1}},
	}

	b := ComputeBreakdown(1000, sel, testLabor())

	if b.WallArea != 2500 {
		t.Fatalf("expected wall area 2500, got %v", b.WallArea)
	}
	if b.PaintCost != 37500 {
		t.Fatalf("expected paint 37500, got %v", b.PaintCost)
	}
	if b.AccentCost != 0 {
		t.Fatalf("expected no accent cost, got %v", b.AccentCost)
	}
	if b.FlooringCost != 80000 {
		t.Fatalf("expected flooring 80000, got %v", b.FlooringCost)
	}
	if b.FurnitureCost != 8000 {
		t.Fatalf("expected furniture 8000, got %v", b.FurnitureCost)
	}
	// 25*2500 + 30*1000 + 15000 + 12000 + 20000
	if b.LaborCost != 139500 {
		t.Fatalf("expected labor 139500, got %v", b.LaborCost)
	}
	if b.Total != 265000 {
		t.Fatalf("expected total 265000, got %d", b.Total)
	}
	if got := ComputeInteriorCost(1000, sel, testLabor()); got != b.Total {
		t.Fatalf("ComputeInteriorCost = %d, breakdown total = %d", got, b.Total)
	}
}

func TestComputeBreakdown_AccentIsFifteenPercentOfWalls(t *testing.T) {
	base := domain.Selection{
		WallColor: domain.PaintColor{ID: "white", PricePerSqft: 15},
		Flooring:  domain.FlooringOption{ID: "tile", PricePerSqft: 80},
	}
	withAccent := base
	withAccent.AccentColor = &domain.PaintColor{ID: "navy", PricePerSqft: 30}

	plain := ComputeBreakdown(1000, base, testLabor())
	accented := ComputeBreakdown(1000, withAccent, testLabor())

	if accented.AccentCost != 11250 {
		t.Fatalf("expected accent cost 11250, got %v", accented.AccentCost)
	}
	if accented.Total-plain.Total != 11250 {
		t.Fatalf("expected accent to add 11250, got %d", accented.Total-plain.Total)
	}
}

func TestComputeBreakdown_FurnitureQuantities(t *testing.T) {
	sel := domain.Selection{
		WallColor: domain.PaintColor{PricePerSqft: 0},
		Flooring:  domain.FlooringOption{PricePerSqft: 0},
		Furniture: []domain.LineItem{
			{ItemID: "chair", UnitPrice: 8000, Quantity: 3},
			{ItemID: "rug", UnitPrice: 8000, Quantity: 1},
		},
	}

	b := ComputeBreakdown(0, sel, domain.LaborRates{})
	if b.FurnitureCost != 32000 || b.Total != 32000 {
		t.Fatalf("expected furniture-only total 32000, got %+v", b)
	}
}

func TestComputeBreakdown_RoundsOnceOverSum(t *testing.T) {
	sel := domain.Selection{
		WallColor: domain.PaintColor{PricePerSqft: 0.16},
		Flooring:  domain.FlooringOption{PricePerSqft: 0.4},
		Furniture: []domain.LineItem{{ItemID: "x", UnitPrice: 0.4, Quantity: 1}},
	}

	// three components of ~0.4 each round to zero individually
	b := ComputeBreakdown(1, sel, domain.LaborRates{})
	if b.Total != 1 {
		t.Fatalf("expected total 1, got %d", b.Total)
	}
}
