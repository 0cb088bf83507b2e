package models

// CartItem is one line of a shopping cart. The invariant maintained by the
// cart store is one line per product ID with Quantity >= 1.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
}

// CartTotals is the derived money summary of a cart. It is recomputed on
// every read and never persisted.
type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}
