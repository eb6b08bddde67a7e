// Package rest provides the HTTP handlers for the bookstore API.
package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/abgdnv/bookstore/internal/cart"
	"github.com/abgdnv/bookstore/internal/catalog"
	"github.com/abgdnv/bookstore/internal/middleware"
	"github.com/abgdnv/bookstore/internal/order"
	"github.com/abgdnv/bookstore/internal/user"
	"github.com/abgdnv/bookstore/pkg/web"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	catalog  *catalog.Service
	carts    *cart.Service
	orders   *order.Service
	users    *user.Service
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new instance of the bookstore API with the provided services.
func NewHandler(catalogSvc *catalog.Service, cartSvc *cart.Service, orderSvc *order.Service, userSvc *user.Service, logger *slog.Logger) *Handler {
	return &Handler{
		catalog:  catalogSvc,
		carts:    cartSvc,
		orders:   orderSvc,
		users:    userSvc,
		validate: validator.New(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the bookstore service.
// Cart and order routes require a verified bearer token.
func (h *Handler) RegisterRoutes(r *chi.Mux, authMw func(http.Handler) http.Handler) {
	r.Get("/init-books", h.InitBooks)
	r.Get("/books", h.ListBooks)
	r.Get("/books/{id}", h.FindBookByID)
	r.Get("/search", h.SearchBooks)
	r.Post("/signup", h.Signup)

	r.Group(func(r chi.Router) {
		r.Use(authMw)
		r.Get("/cart", h.GetCart)
		r.Post("/cart", h.AddToCart)
		r.Put("/cart/{bookId}", h.UpdateCartItem)
		r.Delete("/cart/{bookId}", h.RemoveFromCart)
		r.Post("/orders", h.CreateOrder)
		r.Get("/orders", h.ListOrders)
	})

	r.Get("/healthz", h.HealthCheck)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}

// userID extracts the authenticated user ID from the request context.
// Responds 401 and returns false if the ID is missing.
func (h *Handler) userID(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger) (string, bool) {
	userID := middleware.ContextUserID(r.Context())
	if userID == "" {
		web.RespondError(w, mLogger, http.StatusUnauthorized, "Unauthorized")
		return "", false
	}
	return userID, true
}

// respondValidationError maps a validator error to a 400 response with
// field-specific messages, in the same shape for every mutating endpoint.
func (h *Handler) respondValidationError(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		errorResponse := make(map[string]string)
		for _, fieldErr := range validationErrors {
			errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
		}
		mLogger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
		web.RespondJSON(w, mLogger, http.StatusBadRequest, map[string]any{"validation_errors": errorResponse})
		return
	}
	mLogger.ErrorContext(r.Context(), "Error validating request body", "error", err)
	web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
}
