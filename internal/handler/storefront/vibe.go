package storefront

import (
	"net/http"

	"github.com/dukerupert/novella/internal/catalog"
	"github.com/dukerupert/novella/internal/cookie"
	"github.com/dukerupert/novella/internal/domain"
	"github.com/dukerupert/novella/internal/handler"
)

// VibeHandler serves the detail-view vibe endpoints. Each session has one
// vibe slot: selecting a book starts generating its one-line vibe, and the
// client polls until the slot is ready.
type VibeHandler struct {
	vibes   domain.VibeService
	catalog *catalog.Catalog
	search  domain.SearchService
	cookies *cookie.Config
}

// NewVibeHandler creates a vibe handler.
func NewVibeHandler(vibes domain.VibeService, c *catalog.Catalog, search domain.SearchService, cookies *cookie.Config) *VibeHandler {
	return &VibeHandler{vibes: vibes, catalog: c, search: search, cookies: cookies}
}

// Select handles POST /api/books/{id}/vibe. Returns 202 with the pending
// snapshot; the vibe text shows up in State once generated.
func (h *VibeHandler) Select(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	sid := ensureSession(w, r, h.cookies)

	book, ok := h.catalog.Get(id)
	if !ok {
		book, ok = h.search.Result(r.Context(), sid, id)
	}
	if !ok {
		handler.Error(w, domain.NotFound("storefront.VibeSelect", "Book", id))
		return
	}

	h.vibes.Select(r.Context(), sid, book)
	handler.JSON(w, http.StatusAccepted, h.vibes.State(r.Context(), sid))
}

// State handles GET /api/vibe. A session with no selection gets the empty
// snapshot.
func (h *VibeHandler) State(w http.ResponseWriter, r *http.Request) {
	handler.JSON(w, http.StatusOK, h.vibes.State(r.Context(), sessionID(r)))
}

// Close handles DELETE /api/vibe, clearing the selection when the shopper
// leaves the detail view.
func (h *VibeHandler) Close(w http.ResponseWriter, r *http.Request) {
	if sid := sessionID(r); sid != "" {
		h.vibes.Close(r.Context(), sid)
	}
	handler.NoContent(w)
}
