// Package order provides checkout and the per-user order history.
package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abgdnv/bookstore/internal/cart"
	"github.com/abgdnv/bookstore/internal/store"
	"github.com/google/uuid"
)

// StatusPending is the only order status the system produces; no further
// transitions are implemented.
const StatusPending = "pending"

// LineItem is an order line. Title and price are copied from the caller at
// checkout time, decoupling historical orders from future catalog changes.
type LineItem struct {
	BookID   string `json:"bookId"`
	Title    string `json:"title"`
	Quantity int32  `json:"quantity"`
	Price    int64  `json:"price"`
}

// Order is an immutable snapshot created from a cart at checkout.
type Order struct {
	ID              string     `json:"id"`
	UserID          string     `json:"userId"`
	Items           []LineItem `json:"items"`
	Total           int64      `json:"total"`
	ShippingAddress string     `json:"shippingAddress"`
	Status          string     `json:"status"`
	CreatedAt       string     `json:"createdAt"`
}

// CreateDto carries the checkout request. Line items and total are supplied
// by the caller and recorded verbatim; the service does not recompute the
// total from catalog prices.
type CreateDto struct {
	Items           []LineItem `json:"items" validate:"required,gt=0,dive"`
	Total           int64      `json:"total" validate:"min=0"`
	ShippingAddress string     `json:"shippingAddress" validate:"required"`
}

// Service implements order operations over the key-value store.
type Service struct {
	kv    store.KVStore
	carts *cart.Service
	now   func() time.Time
}

// NewService creates a new order service backed by the provided store.
func NewService(kv store.KVStore, carts *cart.Service) *Service {
	return &Service{
		kv:    kv,
		carts: carts,
		now:   time.Now,
	}
}

// Create builds an order from the checkout request, appends it to the user's
// order history and clears the user's cart. There is no rollback if the cart
// clear fails after the history write; the narrow inconsistency window is
// accepted.
func (s *Service) Create(ctx context.Context, userID string, dto CreateDto) (*Order, error) {
	orders, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	order := Order{
		ID:              "order-" + uuid.NewString(),
		UserID:          userID,
		Items:           dto.Items,
		Total:           dto.Total,
		ShippingAddress: dto.ShippingAddress,
		Status:          StatusPending,
		CreatedAt:       s.now().UTC().Format(time.RFC3339),
	}

	orders = append(orders, order)
	if err := s.kv.Set(ctx, key(userID), orders); err != nil {
		return nil, fmt.Errorf("failed to store order history for user %s: %w", userID, err)
	}

	if err := s.carts.Clear(ctx, userID); err != nil {
		return nil, fmt.Errorf("order %s recorded but cart clear failed: %w", order.ID, err)
	}

	return &order, nil
}

// ListByUser returns the user's order history, oldest first. A user with no
// orders gets an empty slice.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	return s.load(ctx, userID)
}

func (s *Service) load(ctx context.Context, userID string) ([]Order, error) {
	var orders []Order
	err := s.kv.Get(ctx, key(userID), &orders)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return []Order{}, nil
		}
		return nil, fmt.Errorf("failed to fetch orders for user %s: %w", userID, err)
	}
	if orders == nil {
		orders = []Order{}
	}
	return orders, nil
}

func key(userID string) string {
	return "orders:" + userID
}
