// Package transport defines the interior design request and response shapes.
package transport

import "homeverse_backend/internal/interior/domain"

// FurnitureLine references a catalog item and how many of it.
type FurnitureLine struct {
	ID       string `json:"id" validate:"required,max=64"`
	Quantity int    `json:"quantity" validate:"omitempty,min=1,max=100"`
}

// SelectionRequest is a design choice by catalog id.
type SelectionRequest struct {
	WallColor   string          `json:"wallColor" validate:"required,max=64"`
	AccentColor string          `json:"accentColor,omitempty" validate:"omitempty,max=64"`
	Flooring    string          `json:"flooring" validate:"required,max=64"`
	Furniture   []FurnitureLine `json:"furniture" validate:"omitempty,max=100,dive"`
}

// EstimateRequest prices a selection for a floor area.
type EstimateRequest struct {
	Sqft float64 `json:"sqft" validate:"required,gt=0,lte=100000"`
	SelectionRequest
}

// RecommendationRequest asks for design suggestions.
type RecommendationRequest struct {
	Sqft         float64         `json:"sqft" validate:"required,gt=0,lte=100000"`
	PropertyType string          `json:"propertyType,omitempty" validate:"omitempty,max=64"`
	WallColor    string          `json:"wallColor,omitempty" validate:"omitempty,max=64"`
	Furniture    []FurnitureLine `json:"furniture" validate:"omitempty,max=100,dive"`
	Budget       float64         `json:"budget,omitempty" validate:"omitempty,gt=0"`
}

// CostBreakdownResponse itemises an interior estimate.
type CostBreakdownResponse struct {
	WallArea      float64         `json:"wallArea"`
	PaintCost     int64           `json:"paintCost"`
	AccentCost    int64           `json:"accentCost"`
	FlooringCost  int64           `json:"flooringCost"`
	FurnitureCost int64           `json:"furnitureCost"`
	LaborCost     int64           `json:"laborCost"`
	Total         int64           `json:"total"`
	Formatted     string          `json:"formatted"`
	Furniture     []FurnitureLine `json:"furniture"`
}

// ColorScheme suggests an accent to go with the chosen wall color.
type ColorScheme struct {
	Name        string   `json:"name"`
	Accent      string   `json:"accent"`
	Furniture   []string `json:"furniture"`
	Description string   `json:"description"`
}

// PricedOption is a named item with a price.
type PricedOption struct {
	ID    string  `json:"id,omitempty"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// FurnitureSuggestion points at a missing essential.
type FurnitureSuggestion struct {
	Category string         `json:"category"`
	Item     string         `json:"item"`
	Reason   string         `json:"reason"`
	Priority string         `json:"priority"`
	Options  []PricedOption `json:"options"`
}

// StyleSuggestion is a style that suits the property type.
type StyleSuggestion struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Colors      []string `json:"colors"`
}

// Alternative is a cheaper swap for a selected piece.
type Alternative struct {
	Original    string  `json:"original"`
	Alternative string  `json:"alternative"`
	Savings     float64 `json:"savings"`
}

// BudgetAlternative is offered when furniture spend is high for the area.
type BudgetAlternative struct {
	Message      string        `json:"message"`
	Savings      int64         `json:"savings"`
	Alternatives []Alternative `json:"alternatives"`
}

// LookSuggestion completes a partially furnished room.
type LookSuggestion struct {
	Item   string  `json:"item"`
	Reason string  `json:"reason"`
	Price  float64 `json:"price"`
}

// Package is a curated furniture bundle for a budget band.
type Package struct {
	Name        string         `json:"name"`
	Budget      string         `json:"budget"`
	Items       []PricedOption `json:"items"`
	Total       float64        `json:"total"`
	Description string         `json:"description"`
}

// RecommendationResponse groups every kind of suggestion.
type RecommendationResponse struct {
	ColorSchemes       []ColorScheme         `json:"colorSchemes"`
	Furniture          []FurnitureSuggestion `json:"furniture"`
	Styles             []StyleSuggestion     `json:"styles"`
	BudgetAlternatives []BudgetAlternative   `json:"budgetAlternatives"`
	CompleteLook       []LookSuggestion      `json:"completeLook"`
	Packages           []Package             `json:"packages"`
}

// CatalogResponse is the full interior catalog.
type CatalogResponse struct {
	WallColors   []domain.PaintColor     `json:"wallColors"`
	AccentColors []domain.PaintColor     `json:"accentColors"`
	Flooring     []domain.FlooringOption `json:"flooring"`
	Furniture    []domain.Room           `json:"furniture"`
	Labor        domain.LaborRates       `json:"labor"`
	Templates    []domain.RoomTemplate   `json:"templates"`
}
