package models

type PromptKind string

const (
	PromptNone    PromptKind = ""
	PromptConfirm PromptKind = "confirm"
	PromptAlert   PromptKind = "alert"
)

type ConfirmAction string

const (
	ActionDeleteProduct ConfirmAction = "delete_product"
	ActionCheckout      ConfirmAction = "checkout"
)

// Prompt is the single modal slot of a workspace. Kind selects which of the
// remaining fields are meaningful, so a confirmation and an alert can never be
// open at the same time.
type Prompt struct {
	Kind             PromptKind    `json:"kind"`
	Message          string        `json:"message,omitempty"`
	ShowPaymentInput bool          `json:"show_payment_input,omitempty"`
	Action           ConfirmAction `json:"action,omitempty"`
	ProductID        int           `json:"product_id,omitempty"`
}

func NoPrompt() Prompt {
	return Prompt{Kind: PromptNone}
}

func AlertPrompt(message string) Prompt {
	return Prompt{Kind: PromptAlert, Message: message}
}

func DeleteProductPrompt(message string, productID int) Prompt {
	return Prompt{Kind: PromptConfirm, Message: message, Action: ActionDeleteProduct, ProductID: productID}
}

func CheckoutPrompt(message string) Prompt {
	return Prompt{Kind: PromptConfirm, Message: message, ShowPaymentInput: true, Action: ActionCheckout}
}

func (p Prompt) IsOpen() bool    { return p.Kind != PromptNone }
func (p Prompt) IsConfirm() bool { return p.Kind == PromptConfirm }
func (p Prompt) IsAlert() bool   { return p.Kind == PromptAlert }
