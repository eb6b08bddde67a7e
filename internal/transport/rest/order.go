package rest

import (
	"encoding/json"
	"net/http"

	"github.com/abgdnv/bookstore/internal/order"
	"github.com/abgdnv/bookstore/pkg/web"
)

// CreateOrder records an order from the checkout request and clears the
// user's cart. Line items and total are recorded as supplied by the caller.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	userID, ok := h.userID(w, r, mLogger)
	if !ok {
		return
	}

	var dto order.CreateDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		h.respondValidationError(w, r, mLogger, err)
		return
	}

	created, err := h.orders.Create(r.Context(), userID, dto)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error creating order", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to create order")
		return
	}
	mLogger.InfoContext(r.Context(), "Order created", "ID", created.ID, "total", created.Total)
	web.RespondJSON(w, mLogger, http.StatusCreated, created)
}

// ListOrders returns the authenticated user's order history.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	userID, ok := h.userID(w, r, mLogger)
	if !ok {
		return
	}

	orders, err := h.orders.ListByUser(r.Context(), userID)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving orders", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, orders)
}
