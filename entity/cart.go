package entity

// CartItem is one line of a cart. Name and UnitPrice are captured from
// the catalog at the moment the item is added, so the line keeps the
// price the student saw even if staff edit the menu afterwards.
type CartItem struct {
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	UnitPrice  int64  `json:"unitPrice"`
	Quantity   int    `json:"quantity"`
}

// Cart holds one user's selection. It lives in memory only; sessions do
// not share carts and nothing is persisted across restarts. At most one
// line exists per menu item id, and every line has Quantity >= 1.
type Cart struct {
	UserID uint       `json:"userId"`
	Items  []CartItem `json:"items"`
}

// TotalItems sums the quantities of all lines.
func (c *Cart) TotalItems() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// TotalAmount sums unit price times quantity over all lines. Recomputed
// on every call; the cart never caches totals.
func (c *Cart) TotalAmount() int64 {
	var sum int64
	for _, it := range c.Items {
		sum += it.UnitPrice * int64(it.Quantity)
	}
	return sum
}
