package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/abgdnv/bookstore/internal/cart"
	"github.com/abgdnv/bookstore/internal/catalog"
	"github.com/abgdnv/bookstore/internal/middleware"
	"github.com/abgdnv/bookstore/internal/order"
	"github.com/abgdnv/bookstore/internal/store"
	"github.com/abgdnv/bookstore/pkg/server"
	"github.com/lestrrat-go/jwx/v3/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubVerifier accepts any token and returns a fixed jwt.Token.
type stubVerifier struct {
	token jwt.Token
	err   error
}

func (s stubVerifier) Verify(_ context.Context, _ string) (jwt.Token, error) {
	return s.token, s.err
}

// newTestServer stands up the full router with an in-memory store and a stub
// verifier resolving every bearer token to user-123.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	token, err := jwt.NewBuilder().
		Subject("user-123").
		Issuer("test-issuer").
		IssuedAt(time.Now()).
		Expiration(time.Now().Add(time.Hour)).
		Build()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	kv := store.NewInMemoryStore()
	cartSvc := cart.NewService(kv)
	handler := NewHandler(
		catalog.NewService(kv),
		cartSvc,
		order.NewService(kv, cartSvc),
		nil, // user service is not exercised here; signup talks to a live IdP
		logger,
	)

	mux := server.NewChiRouter(logger)
	handler.RegisterRoutes(mux, middleware.AuthMiddleware(stubVerifier{token: token}, logger))

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func doRequest(t *testing.T, ts *httptest.Server, method, path, body string, authorized bool) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if authorized {
		req.Header.Set("Authorization", "Bearer test-token")
	}
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, payload
}

func Test_InitBooks_Idempotent(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doRequest(t, ts, http.MethodGet, "/init-books", "", false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var first map[string]any
	require.NoError(t, json.Unmarshal(body, &first))
	assert.Equal(t, "Books initialized successfully", first["message"])
	assert.Equal(t, float64(22), first["count"])

	resp, body = doRequest(t, ts, http.MethodGet, "/init-books", "", false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var second map[string]any
	require.NoError(t, json.Unmarshal(body, &second))
	assert.Equal(t, "Books already initialized", second["message"])

	// exactly one copy of the catalog
	_, body = doRequest(t, ts, http.MethodGet, "/books", "", false)
	var books []catalog.Book
	require.NoError(t, json.Unmarshal(body, &books))
	assert.Len(t, books, 22)
}

func Test_FindBookByID(t *testing.T) {
	ts := newTestServer(t)
	doRequest(t, ts, http.MethodGet, "/init-books", "", false)

	t.Run("Success - book found", func(t *testing.T) {
		resp, body := doRequest(t, ts, http.MethodGet, "/books/3", "", false)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var book catalog.Book
		require.NoError(t, json.Unmarshal(body, &book))
		assert.Equal(t, "The Lord of the Rings", book.Title)
	})

	t.Run("Error - unknown id", func(t *testing.T) {
		resp, body := doRequest(t, ts, http.MethodGet, "/books/nonexistent", "", false)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.JSONEq(t, `{"error":"Book not found"}`, string(body))
	})
}

func Test_SearchBooks(t *testing.T) {
	ts := newTestServer(t)
	doRequest(t, ts, http.MethodGet, "/init-books", "", false)

	resp, body := doRequest(t, ts, http.MethodGet, "/search?q=fantasy", "", false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var results []catalog.Book
	require.NoError(t, json.Unmarshal(body, &results))
	require.NotEmpty(t, results)
	for _, b := range results {
		matched := strings.Contains(strings.ToLower(b.Title), "fantasy") ||
			strings.Contains(strings.ToLower(b.Author), "fantasy") ||
			strings.Contains(strings.ToLower(b.Genre), "fantasy")
		assert.True(t, matched, "book %s does not match query", b.ID)
	}
}

func Test_Cart_RequiresAuth(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doRequest(t, ts, http.MethodGet, "/cart", "", false)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, string(body))
}

func Test_Cart_AddAccumulatesQuantity(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := doRequest(t, ts, http.MethodPost, "/cart", `{"bookId":"3","quantity":2}`, true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = doRequest(t, ts, http.MethodPost, "/cart", `{"bookId":"3","quantity":1}`, true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doRequest(t, ts, http.MethodGet, "/cart", "", true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[{"bookId":"3","quantity":3}]`, string(body))
}

func Test_Cart_AddRejectsNonPositiveQuantity(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := doRequest(t, ts, http.MethodPost, "/cart", `{"bookId":"3","quantity":0}`, true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func Test_Cart_UpdateAbsentIsNoOp(t *testing.T) {
	ts := newTestServer(t)

	doRequest(t, ts, http.MethodPost, "/cart", `{"bookId":"1","quantity":2}`, true)

	resp, body := doRequest(t, ts, http.MethodPut, "/cart/99", `{"quantity":5}`, true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[{"bookId":"1","quantity":2}]`, string(body))
}

func Test_Cart_RemoveIsIdempotent(t *testing.T) {
	ts := newTestServer(t)

	doRequest(t, ts, http.MethodPost, "/cart", `{"bookId":"1","quantity":2}`, true)

	resp, body := doRequest(t, ts, http.MethodDelete, "/cart/1", "", true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))

	resp, body = doRequest(t, ts, http.MethodDelete, "/cart/1", "", true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))
}

func Test_CreateOrder_ChecksOutAndClearsCart(t *testing.T) {
	ts := newTestServer(t)

	doRequest(t, ts, http.MethodPost, "/cart", `{"bookId":"1","quantity":2}`, true)

	checkout := `{"items":[{"bookId":"1","title":"X","quantity":2,"price":2500}],"total":5000,"shippingAddress":"221B Baker Street"}`
	resp, body := doRequest(t, ts, http.MethodPost, "/orders", checkout, true)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created order.Order
	require.NoError(t, json.Unmarshal(body, &created))
	assert.True(t, strings.HasPrefix(created.ID, "order-"))
	assert.Equal(t, "user-123", created.UserID)
	assert.Equal(t, int64(5000), created.Total)
	assert.Equal(t, order.StatusPending, created.Status)

	// cart is empty after checkout
	resp, body = doRequest(t, ts, http.MethodGet, "/cart", "", true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))

	// the order is in the history
	resp, body = doRequest(t, ts, http.MethodGet, "/orders", "", true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var orders []order.Order
	require.NoError(t, json.Unmarshal(body, &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, created.ID, orders[0].ID)
}

func Test_CreateOrder_RequiresItems(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := doRequest(t, ts, http.MethodPost, "/orders", `{"items":[],"total":0,"shippingAddress":"x"}`, true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
