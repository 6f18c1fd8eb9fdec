package services

import (
	"sync"

	"pos-client/models"
)

// Workspace is the whole UI state of one browser session. Callers hold the
// lock for the duration of a request, so every operation sees a consistent
// state and mutations from the same browser are applied one at a time.
type Workspace struct {
	mu sync.Mutex

	Token         string
	Auth          models.AuthForm
	Products      []models.Product
	Sales         []models.Sale
	Cart          *Cart
	SearchTerm    string
	PaymentAmount string
	Prompt        models.Prompt
}

func NewWorkspace() *Workspace {
	w := &Workspace{}
	w.reset()
	return w
}

func (w *Workspace) Lock()   { w.mu.Lock() }
func (w *Workspace) Unlock() { w.mu.Unlock() }

func (w *Workspace) reset() {
	w.Token = ""
	w.Auth = models.NewAuthForm()
	w.Products = []models.Product{}
	w.Sales = []models.Sale{}
	w.Cart = NewCart()
	w.SearchTerm = ""
	w.PaymentAmount = ""
	w.Prompt = models.NoPrompt()
}

func (w *Workspace) Authenticated() bool {
	return w.Token != ""
}

func (w *Workspace) ShowAlert(message string) {
	w.Prompt = models.AlertPrompt(message)
}

func (w *Workspace) ClosePrompt() {
	w.Prompt = models.NoPrompt()
}
