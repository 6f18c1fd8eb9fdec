package models

type Sale struct {
	ID    int     `json:"id"`
	Total float64 `json:"total"`
	// CreatedAt is kept as sent by the API: an ISO-8601 timestamp that may lack a zone.
	CreatedAt string     `json:"created_at"`
	Items     []SaleItem `json:"items"`
}

type SaleItem struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price,omitempty"`
}
