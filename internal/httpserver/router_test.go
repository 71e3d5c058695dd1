package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"luxestore-be/internal/auth"
	"luxestore-be/internal/catalog"
	"luxestore-be/internal/order"
	"luxestore-be/internal/review"
	"luxestore-be/internal/state"
	"luxestore-be/internal/user"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockCatalog struct{ mock.Mock }

func (m *mockCatalog) Browse(ctx context.Context, f catalog.Filter, page, pageSize int) (catalog.Page, error) {
	args := m.Called(ctx, f, page, pageSize)
	return args.Get(0).(catalog.Page), args.Error(1)
}

func (m *mockCatalog) Get(ctx context.Context, id string) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*catalog.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalog) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if cats, ok := args.Get(0).([]string); ok {
		return cats, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockOrders struct{ mock.Mock }

func (m *mockOrders) Create(ctx context.Context, userID string, lines []state.CartLine) (*order.Order, error) {
	args := m.Called(ctx, userID, lines)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrders) ListByUser(ctx context.Context, userID string) ([]order.Order, error) {
	args := m.Called(ctx, userID)
	if orders, ok := args.Get(0).([]order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockReviews struct{ mock.Mock }

func (m *mockReviews) Create(ctx context.Context, productID, userID string, rating int, comment string) (*review.Review, error) {
	args := m.Called(ctx, productID, userID, rating, comment)
	if rv, ok := args.Get(0).(*review.Review); ok {
		return rv, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReviews) ListByProduct(ctx context.Context, productID string) ([]review.Review, error) {
	args := m.Called(ctx, productID)
	if reviews, ok := args.Get(0).([]review.Review); ok {
		return reviews, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockUsers struct{ mock.Mock }

func (m *mockUsers) Register(ctx context.Context, email, password, fullName string) (string, *user.User, error) {
	args := m.Called(ctx, email, password, fullName)
	if u, ok := args.Get(1).(*user.User); ok {
		return args.String(0), u, args.Error(2)
	}
	return args.String(0), nil, args.Error(2)
}

func (m *mockUsers) Login(ctx context.Context, email, password string) (string, *user.User, error) {
	args := m.Called(ctx, email, password)
	if u, ok := args.Get(1).(*user.User); ok {
		return args.String(0), u, args.Error(2)
	}
	return args.String(0), nil, args.Error(2)
}

type testEnv struct {
	router  *gin.Engine
	catalog *mockCatalog
	orders  *mockOrders
	reviews *mockReviews
	users   *mockUsers
	tokens  *auth.Manager
}

func newTestEnv() *testEnv {
	env := &testEnv{
		catalog: new(mockCatalog),
		orders:  new(mockOrders),
		reviews: new(mockReviews),
		users:   new(mockUsers),
		tokens:  auth.NewManager("test-secret"),
	}
	env.router = buildRouter(Deps{
		Catalog:        env.catalog,
		Orders:         env.orders,
		Reviews:        env.reviews,
		Users:          env.users,
		Sessions:       state.NewManager(""),
		Tokens:         env.tokens,
		AllowedOrigins: []string{"http://localhost:3000"},
	})
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) bearer(t *testing.T, userID string) map[string]string {
	t.Helper()
	token, err := e.tokens.Generate(userID, userID+"@example.com")
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func deviceHeaders(id string) map[string]string {
	return map[string]string{"X-Device-ID": id}
}

func testProduct(id string, price float64) *catalog.Product {
	return &catalog.Product{
		ID:       id,
		Name:     "Product " + id,
		Price:    price,
		Category: "Watches",
		Stock:    5,
	}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthz(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyz(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/readyz", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyzDegraded(t *testing.T) {
	router := buildRouter(Deps{
		Sessions: state.NewManager(""),
		Tokens:   auth.NewManager("test-secret"),
		Ping:     func(context.Context) error { return errors.New("db down") },
	})

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestListProducts(t *testing.T) {
	env := newTestEnv()
	env.catalog.On("Browse", mock.Anything,
		catalog.Filter{Search: "watch", Sort: catalog.SortPriceLow},
		2, catalog.DefaultPageSize,
	).Return(catalog.Page{
		Items:      []catalog.Product{*testProduct("p1", 100)},
		Total:      13,
		Page:       2,
		PageSize:   catalog.DefaultPageSize,
		TotalPages: 2,
	}, nil)

	rec := env.do(t, http.MethodGet, "/api/products?search=watch&sort=price-low&page=2", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.EqualValues(t, 13, body["total"])
	assert.EqualValues(t, 2, body["total_pages"])
	env.catalog.AssertExpectations(t)
}

func TestGetProductNotFound(t *testing.T) {
	env := newTestEnv()
	env.catalog.On("Get", mock.Anything, "missing").Return(nil, catalog.ErrProductNotFound)

	rec := env.do(t, http.MethodGet, "/api/products/missing", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProductRecordsRecentlyViewed(t *testing.T) {
	env := newTestEnv()
	env.catalog.On("Get", mock.Anything, "p1").Return(testProduct("p1", 100), nil)

	rec := env.do(t, http.MethodGet, "/api/products/p1", nil, deviceHeaders("d1"))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/recently-viewed", nil, deviceHeaders("d1"))
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Len(t, body["items"], 1)

	// A different device saw nothing.
	rec = env.do(t, http.MethodGet, "/api/recently-viewed", nil, deviceHeaders("d2"))
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Empty(t, body["items"])
}

func TestCartRequiresAuth(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/cart", nil, deviceHeaders("d1"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInvalidTokenRejected(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/products", nil,
		map[string]string{"Authorization": "Bearer garbage"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCartFlow(t *testing.T) {
	env := newTestEnv()
	env.catalog.On("Get", mock.Anything, "p1").Return(testProduct("p1", 100), nil)
	headers := env.bearer(t, "u1")

	rec := env.do(t, http.MethodPost, "/api/cart/items",
		gin.H{"product_id": "p1"}, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.EqualValues(t, 1, body["count"])
	assert.EqualValues(t, 100, body["total"])

	rec = env.do(t, http.MethodPatch, "/api/cart/items/p1",
		gin.H{"quantity": 3}, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.EqualValues(t, 3, body["count"])
	assert.EqualValues(t, 300, body["total"])

	rec = env.do(t, http.MethodDelete, "/api/cart/items/p1", nil, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.EqualValues(t, 0, body["count"])
}

func TestAddToCartUnknownProduct(t *testing.T) {
	env := newTestEnv()
	env.catalog.On("Get", mock.Anything, "ghost").Return(nil, catalog.ErrProductNotFound)

	rec := env.do(t, http.MethodPost, "/api/cart/items",
		gin.H{"product_id": "ghost"}, env.bearer(t, "u1"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWishlistToggle(t *testing.T) {
	env := newTestEnv()
	env.catalog.On("Get", mock.Anything, "p1").Return(testProduct("p1", 100), nil)
	headers := env.bearer(t, "u1")

	rec := env.do(t, http.MethodPost, "/api/wishlist/toggle",
		gin.H{"product_id": "p1"}, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["in_wishlist"])

	rec = env.do(t, http.MethodPost, "/api/wishlist/toggle",
		gin.H{"product_id": "p1"}, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, false, body["in_wishlist"])
}

func TestComparisonCapacity(t *testing.T) {
	env := newTestEnv()
	for i := 1; i <= 5; i++ {
		id := fmt.Sprintf("p%d", i)
		env.catalog.On("Get", mock.Anything, id).Return(testProduct(id, 100), nil)
	}
	headers := deviceHeaders("d1")

	for i := 1; i <= 4; i++ {
		rec := env.do(t, http.MethodPost, fmt.Sprintf("/api/comparison/items/p%d", i), nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := env.do(t, http.MethodPost, "/api/comparison/items/p5", nil, headers)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Re-adding a product already in the full tray is not an error.
	rec = env.do(t, http.MethodPost, "/api/comparison/items/p1", nil, headers)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/comparison", nil, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Len(t, body["products"], 4)
	assert.Equal(t, true, body["isOpen"])
}

func TestComparisonClearClosesTray(t *testing.T) {
	env := newTestEnv()
	env.catalog.On("Get", mock.Anything, "p1").Return(testProduct("p1", 100), nil)
	headers := deviceHeaders("d1")

	rec := env.do(t, http.MethodPost, "/api/comparison/items/p1", nil, headers)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/comparison", nil, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Empty(t, body["products"])
	assert.Equal(t, false, body["isOpen"])
}

func TestCreateOrderClearsCart(t *testing.T) {
	env := newTestEnv()
	env.catalog.On("Get", mock.Anything, "p1").Return(testProduct("p1", 100), nil)
	env.orders.On("Create", mock.Anything, "u1", mock.Anything).
		Return(&order.Order{ID: "o1", UserID: "u1", Status: order.StatusPending, Total: 100}, nil)
	headers := env.bearer(t, "u1")

	rec := env.do(t, http.MethodPost, "/api/cart/items", gin.H{"product_id": "p1"}, headers)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/orders", nil, headers)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/cart", nil, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.EqualValues(t, 0, body["count"])
}

func TestCreateOrderEmptyCart(t *testing.T) {
	env := newTestEnv()
	env.orders.On("Create", mock.Anything, "u1", mock.Anything).
		Return(nil, order.ErrCartEmpty)

	rec := env.do(t, http.MethodPost, "/api/orders", nil, env.bearer(t, "u1"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateReviewInvalidRating(t *testing.T) {
	env := newTestEnv()
	env.catalog.On("Get", mock.Anything, "p1").Return(testProduct("p1", 100), nil)
	env.reviews.On("Create", mock.Anything, "p1", "u1", 9, "").
		Return(nil, review.ErrInvalidRating)

	rec := env.do(t, http.MethodPost, "/api/products/p1/reviews",
		gin.H{"rating": 9}, env.bearer(t, "u1"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv()
	env.users.On("Register", mock.Anything, "a@b.com", "password123", "A B").
		Return("", nil, user.ErrEmailExists)

	rec := env.do(t, http.MethodPost, "/api/auth/register",
		gin.H{"email": "a@b.com", "password": "password123", "full_name": "A B"}, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginBadCredentials(t *testing.T) {
	env := newTestEnv()
	env.users.On("Login", mock.Anything, "a@b.com", "wrong").
		Return("", nil, user.ErrInvalidCredentials)

	rec := env.do(t, http.MethodPost, "/api/auth/login",
		gin.H{"email": "a@b.com", "password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSignedInUserSharesStateAcrossDevices(t *testing.T) {
	env := newTestEnv()
	env.catalog.On("Get", mock.Anything, "p1").Return(testProduct("p1", 100), nil)
	headers := env.bearer(t, "u1")

	rec := env.do(t, http.MethodPost, "/api/cart/items", gin.H{"product_id": "p1"}, headers)
	require.Equal(t, http.StatusOK, rec.Code)

	// The token identifies the owner even when a device header is present.
	withDevice := map[string]string{
		"Authorization": headers["Authorization"],
		"X-Device-ID":   "other-device",
	}
	rec = env.do(t, http.MethodGet, "/api/cart", nil, withDevice)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.EqualValues(t, 1, body["count"])
}
