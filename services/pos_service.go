package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"pos-client/models"
	"pos-client/utils"
)

const (
	productsLoadFailedMessage  = "Error al cargar los productos."
	salesLoadFailedMessage     = "Error al cargar el historial de ventas."
	productAddFailedMessage    = "Error al agregar el producto."
	productDeleteFailedMessage = "Error al eliminar el producto."
	deleteProductQuestion      = "¿Estás seguro de que quieres eliminar este producto?"
	invalidPaymentMessage      = "El monto pagado es inválido o insuficiente."
	saleFailedMessage          = "Hubo un error al registrar la venta."
)

type PosService struct {
	api PosAPI
	now func() time.Time
}

func NewPosService(api PosAPI) *PosService {
	return &PosService{api: api, now: time.Now}
}

// StartSession stores the token returned by a login and loads the catalog and
// the sales history.
func (s *PosService) StartSession(ctx context.Context, w *Workspace, token string) {
	w.Token = token
	w.Auth = models.NewAuthForm()
	w.ClosePrompt()
	s.Refresh(ctx, w)
}

func (s *PosService) Logout(w *Workspace) {
	w.reset()
}

// CheckSession logs the workspace out when its token carries an expiry that
// has passed. It reports whether the session is still usable.
func (s *PosService) CheckSession(w *Workspace) bool {
	if !w.Authenticated() {
		return false
	}
	if utils.TokenExpired(w.Token, s.now()) {
		log.Println("Session token expired, logging out")
		w.reset()
		w.Auth.Notice = sessionExpiredNotice
		return false
	}
	return true
}

// Refresh re-runs both reads. A failure in one does not prevent the other.
func (s *PosService) Refresh(ctx context.Context, w *Workspace) {
	s.FetchProducts(ctx, w)
	s.FetchSales(ctx, w)
}

func (s *PosService) FetchProducts(ctx context.Context, w *Workspace) error {
	products, err := s.api.ListProducts(ctx, w.Token)
	if err != nil {
		logFetchError("products", err)
		w.ShowAlert(productsLoadFailedMessage)
		return err
	}
	w.Products = products
	return nil
}

func (s *PosService) FetchSales(ctx context.Context, w *Workspace) error {
	sales, err := s.api.ListSales(ctx, w.Token)
	if err != nil {
		logFetchError("sales", err)
		w.ShowAlert(salesLoadFailedMessage)
		return err
	}
	w.Sales = sales
	return nil
}

func logFetchError(what string, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		log.Printf("Error fetching %s: %d %s: %s", what, apiErr.Status, apiErr.StatusText, apiErr.Message)
		return
	}
	log.Printf("Fetching %s failed: %v", what, err)
}

// AddProduct asks the server to create a product and reloads the catalog. The
// new product only appears once the reload succeeds.
func (s *PosService) AddProduct(ctx context.Context, w *Workspace, name string, price float64) error {
	_, err := s.api.CreateProduct(ctx, w.Token, models.CreateProductRequest{Name: name, Price: price})
	if err != nil {
		log.Printf("Creating product %q failed: %v", name, err)
		w.ShowAlert(productAddFailedMessage)
		return err
	}
	return s.FetchProducts(ctx, w)
}

func (s *PosService) RequestDeleteProduct(w *Workspace, productID int) {
	w.Prompt = models.DeleteProductPrompt(deleteProductQuestion, productID)
}

func (s *PosService) deleteProduct(ctx context.Context, w *Workspace, productID int) error {
	w.ClosePrompt()
	if err := s.api.DeleteProduct(ctx, w.Token, productID); err != nil {
		log.Printf("Deleting product %d failed: %v", productID, err)
		w.ShowAlert(productDeleteFailedMessage)
		return err
	}
	return s.FetchProducts(ctx, w)
}

// AddToCart adds one unit of a catalog product, or of a product already in
// the cart that has since left the catalog.
func (s *PosService) AddToCart(w *Workspace, productID int) error {
	if product, ok := findProduct(w.Products, productID); ok {
		w.Cart.Add(product)
		return nil
	}
	if line, ok := w.Cart.Line(productID); ok {
		w.Cart.Add(models.Product{ID: line.ID, Name: line.Name, Price: line.Price})
		return nil
	}
	return ErrProductNotFound
}

// DecreaseCartLine takes one unit off a cart line, dropping it at zero.
func (s *PosService) DecreaseCartLine(w *Workspace, productID int) error {
	return w.Cart.Decrease(productID)
}

func (s *PosService) RemoveCartLine(w *Workspace, productID int) {
	w.Cart.Remove(productID)
}

// RequestCheckout opens the payment prompt. It does nothing on an empty cart.
func (s *PosService) RequestCheckout(w *Workspace) {
	if w.Cart.IsEmpty() {
		return
	}
	message := fmt.Sprintf("Total de la venta: $%s. Ingrese el monto pagado.", utils.FormatMoney(w.Cart.Total()))
	w.Prompt = models.CheckoutPrompt(message)
}

func (s *PosService) checkout(ctx context.Context, w *Workspace) error {
	if w.Cart.IsEmpty() {
		w.ClosePrompt()
		return nil
	}

	change, err := ValidatePayment(w.PaymentAmount, w.Cart.Total())
	if err != nil {
		w.ShowAlert(invalidPaymentMessage)
		return err
	}
	w.ClosePrompt()

	if _, err := s.api.CreateSale(ctx, w.Token, w.Cart.Lines()); err != nil {
		log.Printf("Creating sale failed: %v", err)
		w.ShowAlert(saleFailedMessage)
		return err
	}

	w.Cart.Clear()
	w.PaymentAmount = ""

	// The change due must stay on screen even when the history reload fails.
	message := fmt.Sprintf("Venta registrada con éxito. Cambio a dar: $%s", utils.FormatMoney(change))
	if err := s.FetchSales(ctx, w); err != nil {
		message += " " + salesLoadFailedMessage
	}
	w.ShowAlert(message)
	return nil
}

// Confirm resolves the open confirmation prompt. paymentAmount is the content
// of the payment field and is only read by the checkout prompt.
func (s *PosService) Confirm(ctx context.Context, w *Workspace, paymentAmount string) error {
	if !w.Prompt.IsConfirm() {
		return nil
	}
	if w.Prompt.ShowPaymentInput {
		w.PaymentAmount = paymentAmount
	}

	switch w.Prompt.Action {
	case models.ActionDeleteProduct:
		return s.deleteProduct(ctx, w, w.Prompt.ProductID)
	case models.ActionCheckout:
		return s.checkout(ctx, w)
	}
	w.ClosePrompt()
	return nil
}

// Cancel closes a confirmation prompt without performing its action.
func (s *PosService) Cancel(w *Workspace) {
	if w.Prompt.IsConfirm() {
		w.ClosePrompt()
	}
}

func (s *PosService) CloseAlert(w *Workspace) {
	if w.Prompt.IsAlert() {
		w.ClosePrompt()
	}
}

func (s *PosService) View(w *Workspace) models.PosView {
	view := models.PosView{
		SearchTerm:    w.SearchTerm,
		Products:      FilterProducts(w.Products, w.SearchTerm),
		Cart:          w.Cart.Lines(),
		CartEmpty:     w.Cart.IsEmpty(),
		Total:         utils.FormatMoney(w.Cart.Total()),
		Sales:         w.Sales,
		Prompt:        w.Prompt,
		PaymentAmount: w.PaymentAmount,
	}
	if id, ok := utils.TokenUserID(w.Token); ok {
		view.UserID = id
	}
	return view
}
