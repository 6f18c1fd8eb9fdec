package routes

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"pos-client/models"
	"pos-client/repositories"
	"pos-client/services"
	"pos-client/views"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookie = "pos_session"

// posBackend stands in for the POS API.
type posBackend struct {
	mu       sync.Mutex
	products []models.Product
	sales    []models.Sale
	received [][]models.CartLine
}

func (b *posBackend) handler() http.Handler {
	r := gin.New()
	r.POST("/api/login", func(c *gin.Context) {
		var creds models.Credentials
		c.ShouldBindJSON(&creds)
		if creds.Password != "password" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Credenciales Invalidas"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": "fake-jwt-token"})
	})
	authed := r.Group("/api", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "Bearer fake-jwt-token" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is missing!"})
		}
	})
	authed.GET("/products", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		c.JSON(http.StatusOK, b.products)
	})
	authed.GET("/sales", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		c.JSON(http.StatusOK, b.sales)
	})
	authed.POST("/sales", func(c *gin.Context) {
		var lines []models.CartLine
		if err := c.ShouldBindJSON(&lines); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Faltan datos"})
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		b.received = append(b.received, lines)
		sale := models.Sale{ID: len(b.sales) + 1, CreatedAt: "2025-01-02T10:00:00"}
		for _, l := range lines {
			sale.Total += l.Price * float64(l.Quantity)
			sale.Items = append(sale.Items, models.SaleItem{ProductName: l.Name, Quantity: l.Quantity})
		}
		b.sales = append(b.sales, sale)
		c.JSON(http.StatusCreated, sale)
	})
	return r
}

type browser struct {
	t      *testing.T
	router *gin.Engine
	cookie *http.Cookie
}

func (b *browser) do(method, path string, form url.Values, accept string) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	if b.cookie != nil {
		req.AddCookie(b.cookie)
	}

	w := httptest.NewRecorder()
	b.router.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.Name == testCookie {
			b.cookie = c
		}
	}
	return w
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(http.MethodGet, path, nil, "")
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	if form == nil {
		form = url.Values{}
	}
	return b.do(http.MethodPost, path, form, "")
}

func (b *browser) state() models.PosView {
	w := b.do(http.MethodGet, "/pos/state", nil, "application/json")
	require.Equal(b.t, http.StatusOK, w.Code)

	var resp struct {
		Success bool           `json:"success"`
		Data    models.PosView `json:"data"`
	}
	require.NoError(b.t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(b.t, resp.Success)
	return resp.Data
}

func setupRouter(t *testing.T, backend *posBackend) (*gin.Engine, *repositories.SessionRepository) {
	return setupRouterWithSessions(t, backend, repositories.NewSessionRepository(time.Hour, 0))
}

func setupRouterWithSessions(t *testing.T, backend *posBackend, sessions *repositories.SessionRepository) (*gin.Engine, *repositories.SessionRepository) {
	gin.SetMode(gin.TestMode)

	api := httptest.NewServer(backend.handler())
	t.Cleanup(api.Close)

	templates, err := views.Load()
	require.NoError(t, err)

	router := gin.New()
	router.SetHTMLTemplate(templates)
	SetupRoutes(router, Options{
		API:        services.NewAPIClient(api.URL, 5*time.Second),
		Sessions:   sessions,
		CookieName: testCookie,
	})
	return router, sessions
}

func login(t *testing.T, router *gin.Engine) *browser {
	b := &browser{t: t, router: router}
	w := b.post("/login", url.Values{"username": {"testuser"}, "password": {"password"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))
	return b
}

func TestUnauthenticatedRequests(t *testing.T) {
	router, _ := setupRouter(t, &posBackend{})
	b := &browser{t: t, router: router}

	w := b.get("/")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	require.NotNil(t, b.cookie, "a session cookie is issued on first contact")
	assert.True(t, b.cookie.HttpOnly)

	w = b.do(http.MethodGet, "/pos/state", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = b.get("/login")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Iniciar Sesión")
}

func TestLoginFailureShowsServerMessage(t *testing.T) {
	router, _ := setupRouter(t, &posBackend{})
	b := &browser{t: t, router: router}

	w := b.post("/login", url.Values{"username": {"wronguser"}, "password": {"wrongpass"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = b.get("/login")
	assert.Contains(t, w.Body.String(), "Credenciales Invalidas")

	b.post("/login/toggle", nil)
	w = b.get("/login")
	assert.Contains(t, w.Body.String(), "Registrarse")
	assert.NotContains(t, w.Body.String(), "Credenciales Invalidas")
}

func TestCheckoutFlow(t *testing.T) {
	backend := &posBackend{products: []models.Product{
		{ID: 1, Name: "Coffee", Price: 2.50},
		{ID: 2, Name: "Bagel", Price: 1.75},
	}, sales: []models.Sale{}}
	router, _ := setupRouter(t, backend)
	b := login(t, router)

	w := b.get("/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Coffee - $2.50")
	assert.Contains(t, w.Body.String(), "Total: $0.00")

	b.post("/pos/cart/1/add", nil)
	b.post("/pos/cart/1/add", nil)
	b.post("/pos/cart/2/add", nil)
	b.post("/pos/cart/2/remove", nil)

	view := b.state()
	assert.Equal(t, []models.CartLine{{ID: 1, Name: "Coffee", Price: 2.5, Quantity: 2}}, view.Cart)
	assert.Equal(t, "5.00", view.Total)

	b.post("/pos/checkout", nil)
	view = b.state()
	require.True(t, view.Prompt.IsConfirm())
	assert.Equal(t, "Total de la venta: $5.00. Ingrese el monto pagado.", view.Prompt.Message)

	w = b.post("/pos/prompt/confirm", url.Values{"payment_amount": {"5.00"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	w = b.get("/")
	assert.Contains(t, w.Body.String(), "Venta registrada con éxito. Cambio a dar: $0.00")
	assert.Contains(t, w.Body.String(), "Venta #1")

	view = b.state()
	assert.Empty(t, view.Cart)
	assert.Len(t, view.Sales, 1)
	require.Len(t, backend.received, 1)
	assert.Equal(t, 2, backend.received[0][0].Quantity)

	b.post("/pos/alert/close", nil)
	assert.False(t, b.state().Prompt.IsOpen())
}

func TestSearchKeepsCatalog(t *testing.T) {
	backend := &posBackend{products: []models.Product{
		{ID: 1, Name: "Coffee", Price: 2.50},
		{ID: 2, Name: "Bagel", Price: 1.75},
	}}
	router, _ := setupRouter(t, backend)
	b := login(t, router)

	w := b.get("/?q=bag")
	assert.Contains(t, w.Body.String(), "Bagel")
	assert.NotContains(t, w.Body.String(), "Coffee")

	w = b.get("/")
	assert.NotContains(t, w.Body.String(), "Coffee", "the search term sticks until replaced")

	w = b.get("/?q=")
	assert.Contains(t, w.Body.String(), "Coffee")
}

func TestSessionsAreIsolated(t *testing.T) {
	backend := &posBackend{products: []models.Product{{ID: 1, Name: "Coffee", Price: 2.50}}}
	router, sessions := setupRouter(t, backend)

	alice := login(t, router)
	bob := login(t, router)
	alice.post("/pos/cart/1/add", nil)

	assert.Len(t, alice.state().Cart, 1)
	assert.Empty(t, bob.state().Cart)
	assert.Equal(t, 2, sessions.Count())
}

func TestLogout(t *testing.T) {
	router, sessions := setupRouter(t, &posBackend{})
	b := login(t, router)
	oldCookie := b.cookie

	w := b.post("/logout", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	require.NotNil(t, b.cookie)
	assert.NotEqual(t, oldCookie.Value, b.cookie.Value, "logout issues a fresh session")
	assert.Equal(t, 1, sessions.Count(), "the old workspace is dropped")

	w = b.get("/")
	assert.Equal(t, http.StatusSeeOther, w.Code)

	stale := &browser{t: t, router: router, cookie: oldCookie}
	w = stale.get("/")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.NotEqual(t, oldCookie.Value, stale.cookie.Value)
}

func TestCookielessRequestsStayBounded(t *testing.T) {
	router, sessions := setupRouterWithSessions(t, &posBackend{}, repositories.NewSessionRepository(time.Hour, 100))

	for i := 0; i < 5000; i++ {
		b := &browser{t: t, router: router}
		b.post("/login/toggle", nil)
	}

	assert.LessOrEqual(t, sessions.Count(), 100)
}

func TestExportSales(t *testing.T) {
	backend := &posBackend{sales: []models.Sale{{ID: 1, Total: 5, CreatedAt: "2025-01-02T10:00:00"}}}
	router, _ := setupRouter(t, backend)
	b := login(t, router)

	w := b.get("/pos/sales/export")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename=ventas.xlsx", w.Header().Get("Content-Disposition"))
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestHealth(t *testing.T) {
	router, _ := setupRouter(t, &posBackend{})
	b := &browser{t: t, router: router}

	w := b.get("/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestCartDecreaseThroughRoutes(t *testing.T) {
	backend := &posBackend{products: []models.Product{{ID: 1, Name: "Coffee", Price: 2.50}}}
	router, _ := setupRouter(t, backend)
	b := login(t, router)

	b.post("/pos/cart/1/add", nil)
	b.post("/pos/cart/1/add", nil)
	b.post("/pos/cart/1/decrease", nil)
	assert.Equal(t, 1, b.state().Cart[0].Quantity)

	b.post("/pos/cart/1/decrease", nil)
	w := b.post("/pos/cart/1/decrease", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Empty(t, b.state().Cart)
}

func TestConfirmWithUnreadablePaymentForm(t *testing.T) {
	var logs bytes.Buffer
	log.SetOutput(&logs)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	backend := &posBackend{products: []models.Product{{ID: 1, Name: "Coffee", Price: 2.50}}}
	router, _ := setupRouter(t, backend)
	b := login(t, router)
	b.post("/pos/cart/1/add", nil)
	b.post("/pos/checkout", nil)

	req := httptest.NewRequest(http.MethodPost, "/pos/prompt/confirm", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(b.cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, logs.String(), "Rejected payment form")
	assert.Empty(t, backend.received)

	view := b.state()
	assert.Equal(t, "El monto pagado es inválido o insuficiente.", view.Prompt.Message)
	assert.Len(t, view.Cart, 1)
}
