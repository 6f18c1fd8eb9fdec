package services

import (
	"context"

	"pos-client/models"
)

// fakeAPI records calls and answers with canned data or errors.
type fakeAPI struct {
	token       string
	loginErr    error
	registerErr error

	products    []models.Product
	productsErr error
	sales       []models.Sale
	salesErr    error

	createProductErr error
	deleteErr        error
	createSaleErr    error

	loginCalls        []models.Credentials
	registerCalls     []models.Credentials
	listProductsCalls int
	listSalesCalls    int
	createdProducts   []models.CreateProductRequest
	deletedIDs        []int
	createdSales      [][]models.CartLine
	tokensSeen        []string
}

func (f *fakeAPI) Login(ctx context.Context, creds models.Credentials) (string, error) {
	f.loginCalls = append(f.loginCalls, creds)
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.token, nil
}

func (f *fakeAPI) Register(ctx context.Context, creds models.Credentials) (string, error) {
	f.registerCalls = append(f.registerCalls, creds)
	if f.registerErr != nil {
		return "", f.registerErr
	}
	return "Usuario registrado exitosamente", nil
}

func (f *fakeAPI) ListProducts(ctx context.Context, token string) ([]models.Product, error) {
	f.listProductsCalls++
	f.tokensSeen = append(f.tokensSeen, token)
	if f.productsErr != nil {
		return nil, f.productsErr
	}
	return append([]models.Product{}, f.products...), nil
}

func (f *fakeAPI) CreateProduct(ctx context.Context, token string, req models.CreateProductRequest) (*models.Product, error) {
	f.createdProducts = append(f.createdProducts, req)
	if f.createProductErr != nil {
		return nil, f.createProductErr
	}
	p := models.Product{ID: len(f.products) + 1, Name: req.Name, Price: req.Price}
	f.products = append(f.products, p)
	return &p, nil
}

func (f *fakeAPI) DeleteProduct(ctx context.Context, token string, id int) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return f.deleteErr
}

func (f *fakeAPI) ListSales(ctx context.Context, token string) ([]models.Sale, error) {
	f.listSalesCalls++
	if f.salesErr != nil {
		return nil, f.salesErr
	}
	return append([]models.Sale{}, f.sales...), nil
}

func (f *fakeAPI) CreateSale(ctx context.Context, token string, lines []models.CartLine) (*models.Sale, error) {
	f.createdSales = append(f.createdSales, lines)
	if f.createSaleErr != nil {
		return nil, f.createSaleErr
	}
	sale := models.Sale{ID: len(f.sales) + 1, CreatedAt: "2025-01-02T10:00:00"}
	for _, l := range lines {
		sale.Total += l.Price * float64(l.Quantity)
		sale.Items = append(sale.Items, models.SaleItem{ProductName: l.Name, Quantity: l.Quantity, Price: l.Price})
	}
	f.sales = append(f.sales, sale)
	return &sale, nil
}

var _ PosAPI = (*fakeAPI)(nil)
