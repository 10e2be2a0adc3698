package storefront

import (
	"net/http"

	"github.com/dukerupert/novella/internal/catalog"
	"github.com/dukerupert/novella/internal/cookie"
	"github.com/dukerupert/novella/internal/domain"
	"github.com/dukerupert/novella/internal/handler"
)

// CartHandler serves the cart endpoints. Books are added by ID and resolved
// against the catalog first, then the session's AI search results, so both
// kinds of books land in the same cart.
type CartHandler struct {
	carts   domain.CartService
	catalog *catalog.Catalog
	search  domain.SearchService
	cookies *cookie.Config
}

// NewCartHandler creates a cart handler.
func NewCartHandler(carts domain.CartService, c *catalog.Catalog, search domain.SearchService, cookies *cookie.Config) *CartHandler {
	return &CartHandler{carts: carts, catalog: c, search: search, cookies: cookies}
}

type cartItemRequest struct {
	ID string `json:"id"`

	// Book carries a full listing for clients that hold one already, such
	// as a search result rendered before it was ever fetched by ID.
	Book *domain.Book `json:"book,omitempty"`
}

// View handles GET /api/cart. A shopper with no session gets an empty cart.
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	summary, err := h.carts.Summary(r.Context(), sessionID(r))
	if err != nil {
		handler.Error(w, err)
		return
	}
	handler.JSON(w, http.StatusOK, summary)
}

// Add handles POST /api/cart/add. The body carries the book ID; adding a
// book already in the cart bumps its quantity.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := handler.Decode(r, &req); err != nil {
		handler.Error(w, err)
		return
	}
	if req.ID == "" && req.Book == nil {
		handler.Error(w, domain.Invalid("storefront.CartAdd", "Book ID is required"))
		return
	}

	sid := ensureSession(w, r, h.cookies)

	var book domain.Book
	if req.Book != nil {
		// The cart service rejects payloads missing required fields.
		book = *req.Book
	} else {
		var ok bool
		book, ok = h.catalog.Get(req.ID)
		if !ok {
			book, ok = h.search.Result(r.Context(), sid, req.ID)
		}
		if !ok {
			handler.Error(w, domain.NotFound("storefront.CartAdd", "Book", req.ID))
			return
		}
	}

	summary, err := h.carts.AddItem(r.Context(), sid, book)
	if err != nil {
		handler.Error(w, err)
		return
	}
	handler.JSON(w, http.StatusOK, summary)
}

// Remove handles POST /api/cart/remove. The whole line goes, regardless of
// quantity.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := handler.Decode(r, &req); err != nil {
		handler.Error(w, err)
		return
	}
	if req.ID == "" {
		handler.Error(w, domain.Invalid("storefront.CartRemove", "Book ID is required"))
		return
	}

	sid := sessionID(r)
	if sid == "" {
		handler.Error(w, domain.ErrLineNotFound)
		return
	}

	summary, err := h.carts.RemoveItem(r.Context(), sid, req.ID)
	if err != nil {
		handler.Error(w, err)
		return
	}
	handler.JSON(w, http.StatusOK, summary)
}

// Checkout handles POST /api/checkout. There is no payment flow; the order
// is acknowledged and the cart left in place.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	summary, err := h.carts.Summary(r.Context(), sessionID(r))
	if err != nil {
		handler.Error(w, err)
		return
	}
	if summary.ItemCount == 0 {
		handler.Error(w, domain.Invalid("storefront.Checkout", "Cart is empty"))
		return
	}

	handler.JSON(w, http.StatusOK, map[string]any{
		"message":      "Order received. Thanks for shopping with Novella!",
		"total":        summary.Total,
		"pointsEarned": summary.Points,
	})
}
