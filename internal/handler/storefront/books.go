// Package storefront contains the HTTP handlers for the shopper-facing API:
// browsing the catalog, managing the cart, and driving the AI search and
// vibe features.
package storefront

import (
	"net/http"

	"github.com/dukerupert/novella/internal/catalog"
	"github.com/dukerupert/novella/internal/domain"
	"github.com/dukerupert/novella/internal/handler"
)

// BookHandler serves the catalog browsing endpoints.
type BookHandler struct {
	catalog *catalog.Catalog
	search  domain.SearchService
}

// NewBookHandler creates a book handler.
// The search service lets book detail lookups resolve AI-recommended books
// that live only in the session's current search results.
func NewBookHandler(c *catalog.Catalog, search domain.SearchService) *BookHandler {
	return &BookHandler{catalog: c, search: search}
}

// List handles GET /api/books. An optional ?category= query filters the
// catalog; "All" or no category returns everything.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	books := h.catalog.Filter(category)
	handler.JSON(w, http.StatusOK, map[string]any{
		"books":    books,
		"category": normalizedCategory(category),
	})
}

// Categories handles GET /api/categories.
func (h *BookHandler) Categories(w http.ResponseWriter, r *http.Request) {
	handler.JSON(w, http.StatusOK, map[string]any{
		"categories": catalog.Categories,
	})
}

// Detail handles GET /api/books/{id}. Catalog books are looked up first;
// failing that, the session's current search results are consulted so that
// AI-recommended books have a detail view too.
func (h *BookHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	book, ok := h.resolve(r, id)
	if !ok {
		handler.Error(w, domain.NotFound("storefront.BookDetail", "Book", id))
		return
	}

	handler.JSON(w, http.StatusOK, map[string]any{"book": book})
}

// resolve finds a book by ID in the catalog or, for a session with search
// results, in those results.
func (h *BookHandler) resolve(r *http.Request, id string) (domain.Book, bool) {
	if book, ok := h.catalog.Get(id); ok {
		return book, true
	}
	if sid := sessionID(r); sid != "" {
		return h.search.Result(r.Context(), sid, id)
	}
	return domain.Book{}, false
}

func normalizedCategory(category string) string {
	if category == "" {
		return "All"
	}
	return category
}
