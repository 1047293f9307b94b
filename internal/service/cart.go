package service

import "shopfront/internal/domain"

// Shipping business rules: orders above the threshold ship free, anything
// else pays the flat fee, and an empty cart ships nothing.
const (
	FreeShippingThreshold = 150.0
	FlatShippingFee       = 15.0
)

// CartItem pairs a live product with the chosen quantity. The product is
// snapshotted into immutable order items only at checkout.
type CartItem struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Cart is the session-scoped working set of a shopper. It lives in memory
// only, is confined to a single session, and holds at most one entry per
// product id in insertion order. Visible mirrors the slide-in cart panel
// state the UI reacts to.
type Cart struct {
	items   []CartItem
	visible bool
}

// NewCart creates an empty, hidden cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add puts the product in the cart. If an entry with the same product id
// already exists its quantity is incremented by one instead of a duplicate
// entry being appended. Adding always marks the cart visible so the UI
// opens the cart panel.
func (c *Cart) Add(product domain.Product) {
	c.visible = true

	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, CartItem{Product: product, Quantity: 1})
}

// Remove deletes the entry matching productID. Removing an absent product
// is a no-op.
func (c *Cart) Remove(productID int) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

// SetQuantity updates the quantity of the entry matching productID.
// Quantities below 1 are rejected without mutation; dropping an entry is
// Remove's job, not a decrement-to-zero side effect.
func (c *Cart) SetQuantity(productID, quantity int) {
	if quantity < 1 {
		return
	}
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Items returns a copy of the cart entries in insertion order.
func (c *Cart) Items() []CartItem {
	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// ItemCount returns the total number of units across all entries.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Subtotal sums price × quantity over all entries.
func (c *Cart) Subtotal() float64 {
	total := 0.0
	for _, item := range c.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// ShippingCost returns the shipping fee for a given subtotal: zero for an
// empty cart, zero strictly above the free-shipping threshold, the flat
// fee otherwise. A subtotal exactly at the threshold still pays the fee.
func ShippingCost(subtotal float64) float64 {
	if subtotal == 0 || subtotal > FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}

// Total returns subtotal plus shipping.
func (c *Cart) Total() float64 {
	subtotal := c.Subtotal()
	return subtotal + ShippingCost(subtotal)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Visible reports whether the cart panel should be shown.
func (c *Cart) Visible() bool {
	return c.visible
}

// SetVisible toggles the cart panel state.
func (c *Cart) SetVisible(visible bool) {
	c.visible = visible
}
