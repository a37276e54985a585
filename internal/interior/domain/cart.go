package domain

// LineItem is one furniture entry in a cart. ItemID is unique within a cart.
type LineItem struct {
	ItemID    string  `json:"id"`
	Name      string  `json:"name,omitempty"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Cart is an ordered set of furniture line items.
// The zero value is an empty cart. Not safe for concurrent use.
type Cart struct {
	items []LineItem
}

// NewCart builds a cart from existing lines, merging repeated ids and
// dropping lines with a non-positive quantity.
func NewCart(lines []LineItem) *Cart {
	c := &Cart{}
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		if i := c.index(l.ItemID); i >= 0 {
			c.items[i].Quantity += l.Quantity
			continue
		}
		c.items = append(c.items, l)
	}
	return c
}

// Add increments the quantity of item, appending it with quantity 1 if absent.
func (c *Cart) Add(item FurnitureItem) {
	if i := c.index(item.ID); i >= 0 {
		c.items[i].Quantity++
		return
	}
	c.items = append(c.items, LineItem{ItemID: item.ID, Name: item.Name, UnitPrice: item.Price, Quantity: 1})
}

// Remove decrements the quantity of id and drops the line when it reaches
// zero. Removing an id that is not in the cart does nothing.
func (c *Cart) Remove(id string) {
	i := c.index(id)
	if i < 0 {
		return
	}
	c.items[i].Quantity--
	if c.items[i].Quantity <= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len is the number of distinct line items.
func (c *Cart) Len() int { return len(c.items) }

// Has reports whether id is in the cart.
func (c *Cart) Has(id string) bool { return c.index(id) >= 0 }

// Total is the sum of unit price times quantity.
func (c *Cart) Total() float64 {
	var sum float64
	for _, l := range c.items {
		sum += l.UnitPrice * float64(l.Quantity)
	}
	return sum
}

func (c *Cart) index(id string) int {
	for i, l := range c.items {
		if l.ItemID == id {
			return i
		}
	}
	return -1
}

// Selection is a complete interior design choice. Accent is optional.
type Selection struct {
	WallColor   PaintColor
	AccentColor *PaintColor
	Flooring    FlooringOption
	Furniture   []LineItem
}
