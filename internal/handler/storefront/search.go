package storefront

import (
	"net/http"
	"strings"

	"github.com/dukerupert/novella/internal/cookie"
	"github.com/dukerupert/novella/internal/domain"
	"github.com/dukerupert/novella/internal/handler"
)

// SearchHandler serves the AI search endpoints. Searches resolve in the
// background; clients poll State until the status leaves "loading".
type SearchHandler struct {
	search  domain.SearchService
	cookies *cookie.Config
}

// NewSearchHandler creates a search handler.
func NewSearchHandler(search domain.SearchService, cookies *cookie.Config) *SearchHandler {
	return &SearchHandler{search: search, cookies: cookies}
}

type searchRequest struct {
	Query string `json:"query"`
}

// Submit handles POST /api/search. Returns 202 with the loading snapshot;
// an empty query is a 400 and a search already in flight is a 409.
func (h *SearchHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := handler.Decode(r, &req); err != nil {
		handler.Error(w, err)
		return
	}

	// Reject blank queries here so an idle session never transitions.
	if strings.TrimSpace(req.Query) == "" {
		handler.Error(w, domain.ErrEmptyQuery)
		return
	}

	sid := ensureSession(w, r, h.cookies)

	if err := h.search.Submit(r.Context(), sid, req.Query); err != nil {
		handler.Error(w, err)
		return
	}

	handler.JSON(w, http.StatusAccepted, h.search.State(r.Context(), sid))
}

// State handles GET /api/search. A session that never searched gets the
// idle snapshot.
func (h *SearchHandler) State(w http.ResponseWriter, r *http.Request) {
	handler.JSON(w, http.StatusOK, h.search.State(r.Context(), sessionID(r)))
}

// Close handles DELETE /api/search. The session returns to idle and any
// in-flight response is discarded on arrival.
func (h *SearchHandler) Close(w http.ResponseWriter, r *http.Request) {
	if sid := sessionID(r); sid != "" {
		h.search.Close(r.Context(), sid)
	}
	handler.NoContent(w)
}
