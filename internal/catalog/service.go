// Package catalog provides the book catalog: a fixed set of records seeded
// once and served read-only afterwards.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abgdnv/bookstore/internal/store"
)

// ErrBookNotFound is returned when no book exists with the requested id.
var ErrBookNotFound = errors.New("book not found")

const (
	booksKey       = "books"
	initializedKey = "books_initialized"
)

// Book represents an immutable catalog record.
type Book struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Genre       string  `json:"genre"`
	Price       int64   `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Stock       int32   `json:"stock"`
	Rating      float64 `json:"rating"`
	Reviews     int32   `json:"reviews"`
}

// Service implements catalog operations over the key-value store.
type Service struct {
	kv store.KVStore
}

// NewService creates a new catalog service backed by the provided store.
func NewService(kv store.KVStore) *Service {
	return &Service{kv: kv}
}

// SeedResult reports the outcome of a Seed call.
type SeedResult struct {
	AlreadyInitialized bool
	Count              int
}

// Seed populates the catalog with the fixed book list. It is idempotent: a
// persisted sentinel flag makes repeated calls a no-op. The check and the set
// are not guarded by a cross-request lock; two concurrent seeds may both pass
// the check, but the seed content is deterministic so the double write is
// benign.
func (s *Service) Seed(ctx context.Context) (*SeedResult, error) {
	var initialized bool
	err := s.kv.Get(ctx, initializedKey, &initialized)
	if err != nil && !errors.Is(err, store.ErrKeyNotFound) {
		return nil, fmt.Errorf("failed to read seed flag: %w", err)
	}
	if initialized {
		return &SeedResult{AlreadyInitialized: true}, nil
	}

	if err := s.kv.Set(ctx, booksKey, seedBooks); err != nil {
		return nil, fmt.Errorf("failed to store catalog: %w", err)
	}
	if err := s.kv.Set(ctx, initializedKey, true); err != nil {
		return nil, fmt.Errorf("failed to store seed flag: %w", err)
	}
	return &SeedResult{Count: len(seedBooks)}, nil
}

// List returns every seeded book. Returns an empty slice if the catalog has
// not been seeded yet.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	books, err := s.books(ctx)
	if err != nil {
		return nil, err
	}
	return books, nil
}

// FindByID retrieves a single book by its id.
// Returns ErrBookNotFound if no book exists with the given id.
func (s *Service) FindByID(ctx context.Context, id string) (*Book, error) {
	books, err := s.books(ctx)
	if err != nil {
		return nil, err
	}
	for i := range books {
		if books[i].ID == id {
			return &books[i], nil
		}
	}
	return nil, ErrBookNotFound
}

// Search returns every book whose title, author or genre contains the query,
// case-insensitively. An empty query matches the whole catalog.
func (s *Service) Search(ctx context.Context, query string) ([]Book, error) {
	books, err := s.books(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(query)
	results := make([]Book, 0, len(books))
	for _, book := range books {
		if strings.Contains(strings.ToLower(book.Title), query) ||
			strings.Contains(strings.ToLower(book.Author), query) ||
			strings.Contains(strings.ToLower(book.Genre), query) {
			results = append(results, book)
		}
	}
	return results, nil
}

func (s *Service) books(ctx context.Context) ([]Book, error) {
	var books []Book
	err := s.kv.Get(ctx, booksKey, &books)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return []Book{}, nil
		}
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	return books, nil
}
