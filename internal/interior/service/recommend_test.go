package service

import (
	"testing"
)

func TestRecommend_EmptySelection(t *testing.T) {
	rec := Recommend(RecommendInput{Sqft: 1000, PropertyType: "apartment", WallColor: "white"})

	if len(rec.ColorSchemes) != 1 || rec.ColorSchemes[0].Accent != "navy" {
		t.Fatalf("expected navy scheme for white walls, got %+v", rec.ColorSchemes)
	}
	if len(rec.Furniture) != 3 {
		t.Fatalf("expected sofa, coffee table and bed suggestions, got %+v", rec.Furniture)
	}
	if rec.Furniture[0].Item != "Sofa" || rec.Furniture[0].Priority != "high" {
		t.Fatalf("unexpected first suggestion %+v", rec.Furniture[0])
	}
	if len(rec.Styles) != 1 || rec.Styles[0].Name != "Modern Minimalist" {
		t.Fatalf("unexpected styles %+v", rec.Styles)
	}
	if len(rec.BudgetAlternatives) != 0 || len(rec.CompleteLook) != 0 || len(rec.Packages) != 0 {
		t.Fatalf("expected no alternatives, looks or packages, got %+v", rec)
	}
}

func TestRecommend_SlicesNeverNil(t *testing.T) {
	rec := Recommend(RecommendInput{})

	if rec.ColorSchemes == nil || rec.Styles == nil || rec.BudgetAlternatives == nil ||
		rec.CompleteLook == nil || rec.Packages == nil || rec.Furniture == nil {
		t.Fatalf("expected empty slices, got %+v", rec)
	}
	if len(rec.ColorSchemes) != 0 || len(rec.Styles) != 0 {
		t.Fatalf("unknown color and type should yield nothing, got %+v", rec)
	}
}

func TestRecommend_SelectedEssentialsSuppressSuggestions(t *testing.T) {
	rec := Recommend(RecommendInput{
		Sqft:    1000,
		ItemIDs: []string{"sofa-2seat", "coffee-table", "queen-bed"},
	})

	if len(rec.Furniture) != 0 {
		t.Fatalf("expected no essentials, got %+v", rec.Furniture)
	}
}

func TestRecommend_BudgetAlternative(t *testing.T) {
	// 100 sqft budgets 500000, 30% of which is 150000
	under := Recommend(RecommendInput{Sqft: 100, FurnitureCost: 150000})
	if len(under.BudgetAlternatives) != 0 {
		t.Fatalf("expected no alternative at the threshold, got %+v", under.BudgetAlternatives)
	}

	over := Recommend(RecommendInput{Sqft: 100, FurnitureCost: 200000})
	if len(over.BudgetAlternatives) != 1 {
		t.Fatalf("expected one alternative, got %+v", over.BudgetAlternatives)
	}
	if over.BudgetAlternatives[0].Savings != 60000 {
		t.Fatalf("expected savings 60000, got %d", over.BudgetAlternatives[0].Savings)
	}
}

func TestRecommend_CompleteLook(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want []string
	}{
		{name: "seating without tables", ids: []string{"sofa-3seat"}, want: []string{"Coffee Table"}},
		{name: "tables without seating", ids: []string{"dining-table-6"}, want: []string{"Dining Chairs"}},
		{name: "both", ids: []string{"sofa-3seat", "coffee-table"}, want: nil},
		{
			name: "many items without plants",
			ids:  []string{"sofa-3seat", "coffee-table", "tv-unit", "rug"},
			want: []string{"Indoor Plants Set"},
		},
		{
			name: "many items with plants",
			ids:  []string{"sofa-3seat", "coffee-table", "tv-unit", "plants"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Recommend(RecommendInput{Sqft: 1000, ItemIDs: tt.ids})
			if len(rec.CompleteLook) != len(tt.want) {
				t.Fatalf("expected %v, got %+v", tt.want, rec.CompleteLook)
			}
			for i, item := range tt.want {
				if rec.CompleteLook[i].Item != item {
					t.Fatalf("expected %q at %d, got %q", item, i, rec.CompleteLook[i].Item)
				}
			}
		})
	}
}

func TestRecommend_PackageBands(t *testing.T) {
	tests := []struct {
		budget float64
		want   string
	}{
		{budget: 0, want: ""},
		{budget: 250000, want: "Starter Home Package"},
		{budget: 300000, want: "Modern Living Package"},
		{budget: 499999, want: "Modern Living Package"},
		{budget: 500000, want: "Premium Package"},
		{budget: 2000000, want: "Premium Package"},
	}

	for _, tt := range tests {
		rec := Recommend(RecommendInput{Sqft: 1000, Budget: tt.budget})
		if tt.want == "" {
			if len(rec.Packages) != 0 {
				t.Fatalf("budget %v: expected no packages, got %+v", tt.budget, rec.Packages)
			}
			continue
		}
		if len(rec.Packages) != 1 || rec.Packages[0].Name != tt.want {
			t.Fatalf("budget %v: expected %q, got %+v", tt.budget, tt.want, rec.Packages)
		}
	}
}
