package models

// CartLine is one product's accumulated quantity in the sale being built.
// It is posted as-is to the sales endpoint, which reads name, price and quantity.
type CartLine struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
