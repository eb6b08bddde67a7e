// Package cart provides the per-user shopping cart aggregate.
//
// A cart is a single JSON array stored under "cart:<userID>". Every mutation
// is a read-modify-write of the whole array with no locking between the read
// and the write; two concurrent mutations on the same user's cart race and
// the last writer wins. This is an accepted property of the whole-value
// persistence model.
package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/abgdnv/bookstore/internal/store"
)

// Item is a single cart entry. A cart never holds two entries for the same
// book; insertion order is preserved.
type Item struct {
	BookID   string `json:"bookId"`
	Quantity int32  `json:"quantity"`
}

// Service implements cart operations over the key-value store.
type Service struct {
	kv store.KVStore
}

// NewService creates a new cart service backed by the provided store.
func NewService(kv store.KVStore) *Service {
	return &Service{kv: kv}
}

// Get returns the user's current cart. A user who has never added anything
// gets an empty cart, not an error.
func (s *Service) Get(ctx context.Context, userID string) ([]Item, error) {
	return s.load(ctx, userID)
}

// Add increments the quantity of an existing entry for bookID, or appends a
// new entry if none exists. Returns the full updated cart.
func (s *Service) Add(ctx context.Context, userID, bookID string, quantity int32) ([]Item, error) {
	items, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].BookID == bookID {
			items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		items = append(items, Item{BookID: bookID, Quantity: quantity})
	}

	if err := s.save(ctx, userID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Update sets the quantity of an existing entry. If no entry exists for
// bookID the cart is returned unchanged; the operation does not create one.
func (s *Service) Update(ctx context.Context, userID, bookID string, quantity int32) ([]Item, error) {
	items, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].BookID == bookID {
			items[i].Quantity = quantity
			if err := s.save(ctx, userID, items); err != nil {
				return nil, err
			}
			break
		}
	}
	return items, nil
}

// Remove deletes the entry for bookID if present. Removing an absent entry is
// a no-op, not an error. Returns the resulting cart.
func (s *Service) Remove(ctx context.Context, userID, bookID string) ([]Item, error) {
	items, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated := make([]Item, 0, len(items))
	for _, item := range items {
		if item.BookID != bookID {
			updated = append(updated, item)
		}
	}

	if err := s.save(ctx, userID, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Clear empties the user's cart unconditionally.
func (s *Service) Clear(ctx context.Context, userID string) error {
	return s.save(ctx, userID, []Item{})
}

func (s *Service) load(ctx context.Context, userID string) ([]Item, error) {
	var items []Item
	err := s.kv.Get(ctx, Key(userID), &items)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return []Item{}, nil
		}
		return nil, fmt.Errorf("failed to fetch cart for user %s: %w", userID, err)
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

func (s *Service) save(ctx context.Context, userID string, items []Item) error {
	if err := s.kv.Set(ctx, Key(userID), items); err != nil {
		return fmt.Errorf("failed to store cart for user %s: %w", userID, err)
	}
	return nil
}

// Key returns the storage key holding the given user's cart.
func Key(userID string) string {
	return "cart:" + userID
}
