package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pos-client/models"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// PosAPI is the remote POS server as seen by the client.
type PosAPI interface {
	Login(ctx context.Context, creds models.Credentials) (string, error)
	Register(ctx context.Context, creds models.Credentials) (string, error)
	ListProducts(ctx context.Context, token string) ([]models.Product, error)
	CreateProduct(ctx context.Context, token string, req models.CreateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, token string, id int) error
	ListSales(ctx context.Context, token string) ([]models.Sale, error)
	CreateSale(ctx context.Context, token string, lines []models.CartLine) (*models.Sale, error)
}

type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient builds a client for the API at baseURL. A zero timeout leaves
// deadlines to the transport and the caller's context.
func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *APIClient) Login(ctx context.Context, creds models.Credentials) (string, error) {
	var resp models.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/login", "", creds, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *APIClient) Register(ctx context.Context, creds models.Credentials) (string, error) {
	var resp models.MessageResponse
	if err := c.do(ctx, http.MethodPost, "/api/register", "", creds, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *APIClient) ListProducts(ctx context.Context, token string) ([]models.Product, error) {
	products := []models.Product{}
	if err := c.do(ctx, http.MethodGet, "/api/products", token, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *APIClient) CreateProduct(ctx context.Context, token string, req models.CreateProductRequest) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodPost, "/api/products", token, req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *APIClient) DeleteProduct(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, "/api/products/"+strconv.Itoa(id), token, nil, nil)
}

func (c *APIClient) ListSales(ctx context.Context, token string) ([]models.Sale, error) {
	sales := []models.Sale{}
	if err := c.do(ctx, http.MethodGet, "/api/sales", token, nil, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (c *APIClient) CreateSale(ctx context.Context, token string, lines []models.CartLine) (*models.Sale, error) {
	var sale models.Sale
	if err := c.do(ctx, http.MethodPost, "/api/sales", token, lines, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

func (c *APIClient) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnreachable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{
		Status:     resp.StatusCode,
		StatusText: strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))),
		Message:    unreadableBodyMessage,
	}
	if apiErr.StatusText == "" {
		apiErr.StatusText = http.StatusText(resp.StatusCode)
	}

	var body models.MessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
	}
	return apiErr
}
