// Package domain holds the interior design catalog and the furniture cart.
package domain

// PaintColor is a wall or accent paint priced per square foot of wall.
type PaintColor struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Hex          string  `json:"color"`
	PricePerSqft float64 `json:"pricePerSqft"`
}

// FlooringOption is a floor finish priced per square foot of floor.
type FlooringOption struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	PricePerSqft float64 `json:"pricePerSqft"`
}

// FurnitureItem is a catalog piece of furniture or decor.
type FurnitureItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// Room groups the furniture offered for one room.
type Room struct {
	Key   string          `json:"key"`
	Items []FurnitureItem `json:"items"`
}

// LaborRates are the installation costs applied to every interior estimate.
type LaborRates struct {
	Painting       float64 `json:"painting"`   // per sqft of wall
	Flooring       float64 `json:"flooring"`   // per sqft of floor
	ElectricalFlat float64 `json:"electrical"` // flat
	PlumbingFlat   float64 `json:"plumbing"`   // flat
	CarpentryFlat  float64 `json:"carpentry"`  // flat
}

// RoomTemplate is a typical layout for an apartment size.
type RoomTemplate struct {
	Key       string   `json:"key"`
	Rooms     []string `json:"rooms"`
	TotalArea float64  `json:"totalArea"`
}

// Catalog is the complete, immutable interior reference data.
type Catalog struct {
	WallColors   []PaintColor
	AccentColors []PaintColor
	Flooring     []FlooringOption
	Rooms        []Room
	Labor        LaborRates
	Templates    []RoomTemplate
}

// WallColor looks up a wall paint.
func (c *Catalog) WallColor(id string) (PaintColor, bool) { return findPaint(c.WallColors, id) }

// AccentColor looks up an accent paint.
func (c *Catalog) AccentColor(id string) (PaintColor, bool) { return findPaint(c.AccentColors, id) }

// FlooringOption looks up a floor finish.
func (c *Catalog) FlooringOption(id string) (FlooringOption, bool) {
	for _, f := range c.Flooring {
		if f.ID == id {
			return f, true
		}
	}
	return FlooringOption{}, false
}

// Furniture looks up a furniture item in any room.
func (c *Catalog) Furniture(id string) (FurnitureItem, bool) {
	for _, r := range c.Rooms {
		for _, it := range r.Items {
			if it.ID == id {
				return it, true
			}
		}
	}
	return FurnitureItem{}, false
}

func findPaint(colors []PaintColor, id string) (PaintColor, bool) {
	for _, p := range colors {
		if p.ID == id {
			return p, true
		}
	}
	return PaintColor{}, false
}

// DefaultCatalog returns a fresh copy of the built-in catalog.
func DefaultCatalog() *Catalog {
	return &Catalog{
		WallColors: []PaintColor{
			{ID: "white", Name: "Pure White", Hex: "#FFFFFF", PricePerSqft: 15},
			{ID: "cream", Name: "Warm Cream", Hex: "#F5F5DC", PricePerSqft: 18},
			{ID: "gray", Name: "Modern Gray", Hex: "#9E9E9E", PricePerSqft: 20},
			{ID: "blue", Name: "Sky Blue", Hex: "#87CEEB", PricePerSqft: 22},
			{ID: "green", Name: "Mint Green", Hex: "#98FF98", PricePerSqft: 22},
			{ID: "beige", Name: "Sandy Beige", Hex: "#F5F5DC", PricePerSqft: 18},
			{ID: "lavender", Name: "Soft Lavender", Hex: "#E6E6FA", PricePerSqft: 25},
		},
		AccentColors: []PaintColor{
			{ID: "navy", Name: "Navy Blue", Hex: "#000080", PricePerSqft: 30},
			{ID: "maroon", Name: "Deep Maroon", Hex: "#800000", PricePerSqft: 30},
			{ID: "teal", Name: "Teal", Hex: "#008080", PricePerSqft: 28},
			{ID: "gold", Name: "Golden Yellow", Hex: "#FFD700", PricePerSqft: 35},
		},
		Flooring: []FlooringOption{
			{ID: "tile", Name: "Ceramic Tiles", PricePerSqft: 80},
			{ID: "wood", Name: "Wooden Flooring", PricePerSqft: 150},
			{ID: "marble", Name: "Marble", PricePerSqft: 200},
			{ID: "vinyl", Name: "Vinyl Flooring", PricePerSqft: 60},
			{ID: "carpet", Name: "Carpet", PricePerSqft: 50},
		},
		Rooms: []Room{
			{Key: "livingRoom", Items: []FurnitureItem{
				{ID: "sofa-3seat", Name: "3-Seater Sofa", Price: 35000, Category: "seating"},
				{ID: "sofa-2seat", Name: "2-Seater Sofa", Price: 25000, Category: "seating"},
				{ID: "coffee-table", Name: "Coffee Table", Price: 8000, Category: "table"},
				{ID: "tv-unit", Name: "TV Unit", Price: 15000, Category: "storage"},
				{ID: "bookshelf", Name: "Bookshelf", Price: 12000, Category: "storage"},
				{ID: "side-table", Name: "Side Table", Price: 5000, Category: "table"},
				{ID: "ottoman", Name: "Ottoman", Price: 6000, Category: "seating"},
				{ID: "floor-lamp", Name: "Floor Lamp", Price: 3000, Category: "lighting"},
			}},
			{Key: "bedroom", Items: []FurnitureItem{
				{ID: "king-bed", Name: "King Size Bed", Price: 45000, Category: "bed"},
				{ID: "queen-bed", Name: "Queen Size Bed", Price: 35000, Category: "bed"},
				{ID: "wardrobe", Name: "Wardrobe", Price: 40000, Category: "storage"},
				{ID: "bedside-table", Name: "Bedside Table", Price: 7000, Category: "table"},
				{ID: "dresser", Name: "Dresser with Mirror", Price: 25000, Category: "storage"},
				{ID: "study-table", Name: "Study Table", Price: 15000, Category: "table"},
				{ID: "chair", Name: "Study Chair", Price: 8000, Category: "seating"},
			}},
			{Key: "dining", Items: []FurnitureItem{
				{ID: "dining-table-6", Name: "6-Seater Dining Table", Price: 40000, Category: "table"},
				{ID: "dining-table-4", Name: "4-Seater Dining Table", Price: 30000, Category: "table"},
				{ID: "dining-chairs", Name: "Dining Chairs (Set of 6)", Price: 18000, Category: "seating"},
				{ID: "crockery-unit", Name: "Crockery Unit", Price: 25000, Category: "storage"},
				{ID: "bar-cabinet", Name: "Bar Cabinet", Price: 20000, Category: "storage"},
			}},
			{Key: "kitchen", Items: []FurnitureItem{
				{ID: "modular-basic", Name: "Basic Modular Kitchen", Price: 150000, Category: "kitchen"},
				{ID: "modular-premium", Name: "Premium Modular Kitchen", Price: 300000, Category: "kitchen"},
				{ID: "kitchen-island", Name: "Kitchen Island", Price: 50000, Category: "kitchen"},
			}},
			{Key: "decor", Items: []FurnitureItem{
				{ID: "wall-art", Name: "Wall Art (Set of 3)", Price: 5000, Category: "decor"},
				{ID: "curtains", Name: "Curtains (Per Window)", Price: 4000, Category: "decor"},
				{ID: "rug", Name: "Area Rug", Price: 8000, Category: "decor"},
				{ID: "plants", Name: "Indoor Plants (Set)", Price: 3000, Category: "decor"},
				{ID: "mirror", Name: "Decorative Mirror", Price: 6000, Category: "decor"},
				{ID: "cushions", Name: "Cushion Set (5 pcs)", Price: 2500, Category: "decor"},
			}},
		},
		Labor: LaborRates{
			Painting:       25,
			Flooring:       30,
			ElectricalFlat: 15000,
			PlumbingFlat:   12000,
			CarpentryFlat:  20000,
		},
		Templates: []RoomTemplate{
			{Key: "1BHK", Rooms: []string{"Living Room", "Bedroom", "Kitchen"}, TotalArea: 600},
			{Key: "2BHK", Rooms: []string{"Living Room", "Master Bedroom", "Bedroom 2", "Kitchen", "Dining"}, TotalArea: 900},
			{Key: "3BHK", Rooms: []string{"Living Room", "Master Bedroom", "Bedroom 2", "Bedroom 3", "Kitchen", "Dining"}, TotalArea: 1200},
			{Key: "4BHK", Rooms: []string{"Living Room", "Master Bedroom", "Bedroom 2", "Bedroom 3", "Bedroom 4", "Kitchen", "Dining", "Study"}, TotalArea: 1600},
		},
	}
}
