package models

// PosView is everything the POS screen renders, already filtered and formatted.
type PosView struct {
	UserID        int        `json:"user_id,omitempty"`
	SearchTerm    string     `json:"search_term"`
	Products      []Product  `json:"products"`
	Cart          []CartLine `json:"cart"`
	CartEmpty     bool       `json:"cart_empty"`
	Total         string     `json:"total"`
	Sales         []Sale     `json:"sales"`
	Prompt        Prompt     `json:"prompt"`
	PaymentAmount string     `json:"payment_amount,omitempty"`
}
