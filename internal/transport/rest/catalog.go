package rest

import (
	"errors"
	"net/http"

	"github.com/abgdnv/bookstore/internal/catalog"
	"github.com/abgdnv/bookstore/pkg/web"
	"github.com/go-chi/chi/v5"
)

// InitBooks seeds the catalog. The operation is idempotent; a second call
// reports that the catalog is already initialized.
func (h *Handler) InitBooks(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	result, err := h.catalog.Seed(r.Context())
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error initializing books", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to initialize books")
		return
	}
	if result.AlreadyInitialized {
		web.RespondJSON(w, mLogger, http.StatusOK, map[string]any{"message": "Books already initialized"})
		return
	}
	mLogger.InfoContext(r.Context(), "Catalog seeded", "count", result.Count)
	web.RespondJSON(w, mLogger, http.StatusOK, map[string]any{
		"message": "Books initialized successfully",
		"count":   result.Count,
	})
}

// ListBooks returns every book in the catalog, unfiltered and unpaginated.
func (h *Handler) ListBooks(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	books, err := h.catalog.List(r.Context())
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving book list", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch books")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, books)
}

// FindBookByID retrieves a book by its ID.
func (h *Handler) FindBookByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id := chi.URLParam(r, "id")

	found, err := h.catalog.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrBookNotFound) {
			mLogger.WarnContext(r.Context(), "Book not found", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, "Book not found")
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving book", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch book")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// SearchBooks performs a case-insensitive substring search over title, author
// and genre. The client short-circuits empty queries, but an empty q here
// simply matches the whole catalog.
func (h *Handler) SearchBooks(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	query := r.URL.Query().Get("q")

	results, err := h.catalog.Search(r.Context(), query)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error searching books", "query", query, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to search books")
		return
	}
	mLogger.DebugContext(r.Context(), "Search completed", "query", query, "count", len(results))
	web.RespondJSON(w, mLogger, http.StatusOK, results)
}
