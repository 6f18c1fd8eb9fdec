package models

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthFormRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type CreateProductRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type AddProductForm struct {
	Name  string   `form:"name" binding:"required"`
	Price *float64 `form:"price" binding:"required,gte=0"`
}

type PaymentForm struct {
	PaymentAmount string `form:"payment_amount"`
}

type SearchQuery struct {
	Q *string `form:"q"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
