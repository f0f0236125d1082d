package models

type CartItem struct {
	CartItemID int64   `json:"cartItemId"`
	ItemID     int64   `json:"itemId"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unitPrice"`
	Quantity   int     `json:"quantity"`
	Subtotal   float64 `json:"subtotal"`
	ImageUrl   string  `json:"imageUrl,omitempty"`
}

// Cart mirrors the server-side cart. Subtotals and the total are computed by
// the backend and never recalculated here.
type Cart struct {
	CartID     int64      `json:"cartId"`
	UserID     int64      `json:"userId"`
	Items      []CartItem `json:"items"`
	TotalPrice float64    `json:"totalPrice"`
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemCount is the total number of units across all cart lines.
func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Line returns the cart line with the given cart item id, if present.
func (c Cart) Line(cartItemID int64) (CartItem, bool) {
	for _, item := range c.Items {
		if item.CartItemID == cartItemID {
			return item, true
		}
	}
	return CartItem{}, false
}
