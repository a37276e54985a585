package service

import (
	"math"
	"strings"

	"homeverse_backend/internal/interior/transport"
)

// budgetPerSqft approximates the total furnishing budget per square foot.
const budgetPerSqft = 5000

var colorSchemes = map[string]transport.ColorScheme{
	"white": {
		Name:        "Minimalist Modern",
		Accent:      "navy",
		Furniture:   []string{"sofa-3seat", "coffee-table", "tv-unit"},
		Description: "Clean white walls pair perfectly with navy accents and modern furniture",
	},
	"cream": {
		Name:        "Warm Traditional",
		Accent:      "maroon",
		Furniture:   []string{"sofa-3seat", "bookshelf", "coffee-table"},
		Description: "Cream walls create a cozy atmosphere with maroon accents",
	},
	"gray": {
		Name:        "Industrial Chic",
		Accent:      "teal",
		Furniture:   []string{"sofa-2seat", "side-table", "floor-lamp"},
		Description: "Gray walls with teal accents for a contemporary industrial look",
	},
	"blue": {
		Name:        "Coastal Retreat",
		Accent:      "gold",
		Furniture:   []string{"sofa-2seat", "coffee-table", "plants"},
		Description: "Light blue walls with gold accents bring a seaside feel",
	},
}

var styles = map[string]transport.StyleSuggestion{
	"apartment": {
		Name:        "Modern Minimalist",
		Description: "Clean lines and space-efficient furniture perfect for apartments",
		Colors:      []string{"white", "gray", "beige"},
	},
	"villa": {
		Name:        "Luxury Contemporary",
		Description: "Premium furniture and elegant color schemes for spacious villas",
		Colors:      []string{"cream", "gold", "navy"},
	},
	"independent": {
		Name:        "Traditional Elegance",
		Description: "Classic furniture with warm colors for independent houses",
		Colors:      []string{"cream", "maroon"},
	},
}

type packageBand struct {
	pkg      transport.Package
	min, max float64 // budget band, max exclusive; 0 means unbounded
}

var packages = []packageBand{
	{max: 300000, pkg: transport.Package{
		Name:   "Starter Home Package",
		Budget: "₹2-3L",
		Items: []transport.PricedOption{
			{Name: "2-Seater Sofa", Price: 25000},
			{Name: "Coffee Table", Price: 8000},
			{Name: "Queen Bed", Price: 35000},
			{Name: "Wardrobe", Price: 40000},
			{Name: "Dining Table (4-seater)", Price: 30000},
		},
		Total:       138000,
		Description: "Essential furniture for a comfortable start",
	}},
	{min: 300000, max: 500000, pkg: transport.Package{
		Name:   "Modern Living Package",
		Budget: "₹4-5L",
		Items: []transport.PricedOption{
			{Name: "3-Seater Sofa", Price: 35000},
			{Name: "Coffee Table", Price: 8000},
			{Name: "TV Unit", Price: 15000},
			{Name: "King Bed", Price: 45000},
			{Name: "Wardrobe", Price: 40000},
			{Name: "Dining Table (6-seater)", Price: 40000},
			{Name: "Study Table", Price: 15000},
		},
		Total:       198000,
		Description: "Complete furnishing for modern living",
	}},
	{min: 500000, pkg: transport.Package{
		Name:   "Premium Package",
		Budget: "₹6L+",
		Items: []transport.PricedOption{
			{Name: "3-Seater Sofa Premium", Price: 50000},
			{Name: "Coffee Table Premium", Price: 15000},
			{Name: "TV Unit Premium", Price: 25000},
			{Name: "King Bed Premium", Price: 60000},
			{Name: "Wardrobe Premium", Price: 55000},
			{Name: "Dining Table Premium", Price: 50000},
			{Name: "Bar Cabinet", Price: 20000},
			{Name: "Premium Kitchen", Price: 300000},
		},
		Total:       575000,
		Description: "Luxury furnishing with premium materials",
	}},
}

// RecommendInput is what the rules look at.
type RecommendInput struct {
	Sqft          float64
	PropertyType  string
	WallColor     string
	ItemIDs       []string
	FurnitureCost float64
	// Budget selects curated packages; zero skips them.
	Budget float64
}

// Recommend builds rule-based design suggestions.
func Recommend(in RecommendInput) transport.RecommendationResponse {
	rec := transport.RecommendationResponse{
		ColorSchemes:       []transport.ColorScheme{},
		Furniture:          []transport.FurnitureSuggestion{},
		Styles:             []transport.StyleSuggestion{},
		BudgetAlternatives: []transport.BudgetAlternative{},
		CompleteLook:       []transport.LookSuggestion{},
		Packages:           []transport.Package{},
	}

	ids := in.ItemIDs
	if scheme, ok := colorSchemes[in.WallColor]; ok {
		rec.ColorSchemes = append(rec.ColorSchemes, scheme)
	}

	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}

	if !selected["sofa-3seat"] && !selected["sofa-2seat"] {
		rec.Furniture = append(rec.Furniture, transport.FurnitureSuggestion{
			Category: "Living Room",
			Item:     "Sofa",
			Reason:   "Essential seating for your living room",
			Priority: "high",
			Options: []transport.PricedOption{
				{ID: "sofa-3seat", Name: "3-Seater Sofa", Price: 35000},
				{ID: "sofa-2seat", Name: "2-Seater Sofa", Price: 25000},
			},
		})
	}
	if !selected["coffee-table"] {
		rec.Furniture = append(rec.Furniture, transport.FurnitureSuggestion{
			Category: "Living Room",
			Item:     "Coffee Table",
			Reason:   "Complete your seating area",
			Priority: "medium",
			Options:  []transport.PricedOption{{ID: "coffee-table", Name: "Coffee Table", Price: 8000}},
		})
	}
	if !selected["king-bed"] && !selected["queen-bed"] {
		rec.Furniture = append(rec.Furniture, transport.FurnitureSuggestion{
			Category: "Bedroom",
			Item:     "Bed",
			Reason:   "Essential for your bedroom",
			Priority: "high",
			Options: []transport.PricedOption{
				{ID: "king-bed", Name: "King Size Bed", Price: 45000},
				{ID: "queen-bed", Name: "Queen Size Bed", Price: 35000},
			},
		})
	}

	if style, ok := styles[in.PropertyType]; ok {
		rec.Styles = append(rec.Styles, style)
	}

	budget := in.Sqft * budgetPerSqft
	if in.FurnitureCost > budget*0.3 {
		rec.BudgetAlternatives = append(rec.BudgetAlternatives, transport.BudgetAlternative{
			Message: "Your furniture selection is premium. Here are budget-friendly alternatives:",
			Savings: int64(math.Round(in.FurnitureCost * 0.3)),
			Alternatives: []transport.Alternative{
				{Original: "King Bed", Alternative: "Queen Bed", Savings: 10000},
				{Original: "3-Seater Sofa", Alternative: "2-Seater Sofa", Savings: 10000},
			},
		})
	}

	hasSeating, hasTables := false, false
	for _, id := range ids {
		if strings.Contains(id, "sofa") {
			hasSeating = true
		}
		if strings.Contains(id, "table") {
			hasTables = true
		}
	}
	if hasSeating && !hasTables {
		rec.CompleteLook = append(rec.CompleteLook, transport.LookSuggestion{
			Item: "Coffee Table", Reason: "Complement your seating area", Price: 8000,
		})
	}
	if hasTables && !hasSeating {
		rec.CompleteLook = append(rec.CompleteLook, transport.LookSuggestion{
			Item: "Dining Chairs", Reason: "Essential for your dining table", Price: 18000,
		})
	}
	if len(ids) > 3 && !selected["plants"] {
		rec.CompleteLook = append(rec.CompleteLook, transport.LookSuggestion{
			Item: "Indoor Plants Set", Reason: "Add life and freshness to your space", Price: 3000,
		})
	}

	for _, band := range packages {
		if in.Budget <= 0 {
			break
		}
		if in.Budget >= band.min && (band.max == 0 || in.Budget < band.max) {
			rec.Packages = append(rec.Packages, band.pkg)
		}
	}

	return rec
}
