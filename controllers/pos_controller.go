package controllers

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"strconv"

	"pos-client/middleware"
	"pos-client/models"
	"pos-client/services"

	"github.com/gin-gonic/gin"
)

type PosController struct {
	Pos *services.PosService
}

func backToPos(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

func productIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// Index godoc
// @Summary POS screen
// @Description Render catalog, cart, sales history and any open prompt. The q parameter replaces the search term.
// @Tags POS
// @Produce html
// @Param q query string false "Search term"
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (ctrl *PosController) Index(c *gin.Context) {
	workspace := middleware.Workspace(c)

	var query models.SearchQuery
	if err := c.ShouldBindQuery(&query); err == nil && query.Q != nil {
		workspace.SearchTerm = *query.Q
	}

	c.HTML(http.StatusOK, "pos.html", ctrl.Pos.View(workspace))
}

// State godoc
// @Summary POS state
// @Description Return the same view model the POS screen renders.
// @Tags POS
// @Produce json
// @Success 200 {object} models.Response{data=models.PosView}
// @Failure 401 {object} models.ErrorResponse
// @Router /pos/state [get]
func (ctrl *PosController) State(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "POS state retrieved",
		Data:    ctrl.Pos.View(middleware.Workspace(c)),
	})
}

// Refresh godoc
// @Summary Reload catalog and history
// @Tags POS
// @Success 303 {string} string "Redirect to /"
// @Router /pos/refresh [post]
func (ctrl *PosController) Refresh(c *gin.Context) {
	ctrl.Pos.Refresh(c.Request.Context(), middleware.Workspace(c))
	backToPos(c)
}

// AddProduct godoc
// @Summary Add product
// @Description Create a product on the POS API, then reload the catalog.
// @Tags Products
// @Accept x-www-form-urlencoded
// @Param name formData string true "Product name"
// @Param price formData number true "Product price"
// @Success 303 {string} string "Redirect to /"
// @Router /pos/products [post]
func (ctrl *PosController) AddProduct(c *gin.Context) {
	workspace := middleware.Workspace(c)

	var form models.AddProductForm
	if err := c.ShouldBind(&form); err != nil {
		log.Printf("Rejected product form: %v", err)
		workspace.ShowAlert("Nombre y precio válido son obligatorios.")
		backToPos(c)
		return
	}

	ctrl.Pos.AddProduct(c.Request.Context(), workspace, form.Name, *form.Price)
	backToPos(c)
}

// DeleteProduct godoc
// @Summary Ask to delete a product
// @Description Open the delete confirmation. Nothing is sent until the prompt is confirmed.
// @Tags Products
// @Param id path int true "Product ID"
// @Success 303 {string} string "Redirect to /"
// @Router /pos/products/{id}/delete [post]
func (ctrl *PosController) DeleteProduct(c *gin.Context) {
	if id, ok := productIDParam(c); ok {
		ctrl.Pos.RequestDeleteProduct(middleware.Workspace(c), id)
	}
	backToPos(c)
}

// AddToCart godoc
// @Summary Add one unit to the cart
// @Tags Cart
// @Param id path int true "Product ID"
// @Success 303 {string} string "Redirect to /"
// @Router /pos/cart/{id}/add [post]
func (ctrl *PosController) AddToCart(c *gin.Context) {
	id, ok := productIDParam(c)
	if ok {
		if err := ctrl.Pos.AddToCart(middleware.Workspace(c), id); err != nil {
			log.Printf("Add to cart ignored for product %d: %v", id, err)
		}
	}
	backToPos(c)
}

// DecreaseCartLine godoc
// @Summary Remove one unit from a cart line
// @Tags Cart
// @Param id path int true "Product ID"
// @Success 303 {string} string "Redirect to /"
// @Router /pos/cart/{id}/decrease [post]
func (ctrl *PosController) DecreaseCartLine(c *gin.Context) {
	id, ok := productIDParam(c)
	if ok {
		if err := ctrl.Pos.DecreaseCartLine(middleware.Workspace(c), id); errors.Is(err, services.ErrLineNotFound) {
			log.Printf("Decrease ignored, product %d is not in the cart", id)
		}
	}
	backToPos(c)
}

// RemoveCartLine godoc
// @Summary Remove a cart line
// @Tags Cart
// @Param id path int true "Product ID"
// @Success 303 {string} string "Redirect to /"
// @Router /pos/cart/{id}/remove [post]
func (ctrl *PosController) RemoveCartLine(c *gin.Context) {
	if id, ok := productIDParam(c); ok {
		ctrl.Pos.RemoveCartLine(middleware.Workspace(c), id)
	}
	backToPos(c)
}

// Checkout godoc
// @Summary Start checkout
// @Description Open the payment prompt showing the cart total. Ignored when the cart is empty.
// @Tags Checkout
// @Success 303 {string} string "Redirect to /"
// @Router /pos/checkout [post]
func (ctrl *PosController) Checkout(c *gin.Context) {
	ctrl.Pos.RequestCheckout(middleware.Workspace(c))
	backToPos(c)
}

// ConfirmPrompt godoc
// @Summary Confirm the open prompt
// @Description Run the pending action: delete the product, or validate the payment and register the sale.
// @Tags Checkout
// @Accept x-www-form-urlencoded
// @Param payment_amount formData string false "Amount paid (checkout only)"
// @Success 303 {string} string "Redirect to /"
// @Router /pos/prompt/confirm [post]
func (ctrl *PosController) ConfirmPrompt(c *gin.Context) {
	var form models.PaymentForm
	if err := c.ShouldBind(&form); err != nil {
		log.Printf("Rejected payment form: %v", err)
	}

	ctrl.Pos.Confirm(c.Request.Context(), middleware.Workspace(c), form.PaymentAmount)
	backToPos(c)
}

// CancelPrompt godoc
// @Summary Cancel the open confirmation
// @Tags Checkout
// @Success 303 {string} string "Redirect to /"
// @Router /pos/prompt/cancel [post]
func (ctrl *PosController) CancelPrompt(c *gin.Context) {
	ctrl.Pos.Cancel(middleware.Workspace(c))
	backToPos(c)
}

// CloseAlert godoc
// @Summary Acknowledge the open alert
// @Tags Checkout
// @Success 303 {string} string "Redirect to /"
// @Router /pos/alert/close [post]
func (ctrl *PosController) CloseAlert(c *gin.Context) {
	ctrl.Pos.CloseAlert(middleware.Workspace(c))
	backToPos(c)
}

// ExportSales godoc
// @Summary Export sales history
// @Description Download the loaded sales history as an Excel workbook.
// @Tags Sales
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "ventas.xlsx"
// @Failure 500 {object} models.ErrorResponse
// @Router /pos/sales/export [get]
func (ctrl *PosController) ExportSales(c *gin.Context) {
	var buf bytes.Buffer
	if err := services.WriteSalesWorkbook(&buf, middleware.Workspace(c).Sales); err != nil {
		log.Printf("Sales export failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to build sales export",
			Error:   err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=ventas.xlsx")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
