package models

// CartLine is one product entry in a cart with its quantity.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// Cart is the ordered collection of a customer's cart lines. At most one
// line exists per distinct product id.
type Cart struct {
	Items []CartLine `json:"items"`
}

// AddItem merges p into the cart: an existing line for the same product id
// gets its quantity incremented by one, otherwise a new line with quantity 1
// is appended.
func (c *Cart) AddItem(p Product) {
	for i := range c.Items {
		if c.Items[i].ID == p.ID {
			if c.Items[i].Quantity < 1 {
				c.Items[i].Quantity = 1
			}
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, CartLine{Product: p, Quantity: 1})
}

// RemoveItem drops the line matching productID, if present.
func (c *Cart) RemoveItem(productID string) {
	kept := c.Items[:0]
	for _, line := range c.Items {
		if line.ID != productID {
			kept = append(kept, line)
		}
	}
	c.Items = kept
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// Total sums price times quantity over all lines. A zero quantity counts
// as 1.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.Items {
		quantity := line.Quantity
		if quantity < 1 {
			quantity = 1
		}
		total += line.Price * float64(quantity)
	}
	return total
}

// Snapshot returns a deep copy of the cart lines, so an order keeps its
// items even if the live cart changes afterwards.
func (c *Cart) Snapshot() []CartLine {
	items := make([]CartLine, len(c.Items))
	copy(items, c.Items)
	return items
}
