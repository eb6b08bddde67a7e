package rest

import (
	"encoding/json"
	"net/http"

	"github.com/abgdnv/bookstore/pkg/web"
	"github.com/go-chi/chi/v5"
)

// CartAddDto represents the data transfer object for adding an item to the cart.
type CartAddDto struct {
	BookID   string `json:"bookId"   validate:"required"`
	Quantity int32  `json:"quantity" validate:"required,min=1"`
}

// CartUpdateDto represents the data transfer object for updating a cart item quantity.
type CartUpdateDto struct {
	Quantity int32 `json:"quantity" validate:"required,min=1"`
}

// GetCart returns the authenticated user's cart.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	userID, ok := h.userID(w, r, mLogger)
	if !ok {
		return
	}

	items, err := h.carts.Get(r.Context(), userID)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving cart", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, items)
}

// AddToCart adds a quantity of a book to the cart, merging with any existing
// entry for the same book. Returns the full updated cart.
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	userID, ok := h.userID(w, r, mLogger)
	if !ok {
		return
	}

	var dto CartAddDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		h.respondValidationError(w, r, mLogger, err)
		return
	}

	items, err := h.carts.Add(r.Context(), userID, dto.BookID, dto.Quantity)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error adding to cart", "bookId", dto.BookID, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to add to cart")
		return
	}
	mLogger.DebugContext(r.Context(), "Item added to cart", "bookId", dto.BookID, "quantity", dto.Quantity)
	web.RespondJSON(w, mLogger, http.StatusOK, items)
}

// UpdateCartItem sets the quantity for an existing cart entry. An absent
// entry makes the call a silent no-op; the cart is returned unchanged.
func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	userID, ok := h.userID(w, r, mLogger)
	if !ok {
		return
	}
	bookID := chi.URLParam(r, "bookId")

	var dto CartUpdateDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		h.respondValidationError(w, r, mLogger, err)
		return
	}

	items, err := h.carts.Update(r.Context(), userID, bookID, dto.Quantity)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error updating cart", "bookId", bookID, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to update cart")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, items)
}

// RemoveFromCart deletes a cart entry. Removing an absent entry is a no-op.
func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	userID, ok := h.userID(w, r, mLogger)
	if !ok {
		return
	}
	bookID := chi.URLParam(r, "bookId")

	items, err := h.carts.Remove(r.Context(), userID, bookID)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error removing from cart", "bookId", bookID, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to remove from cart")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, items)
}
