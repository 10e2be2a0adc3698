package domain

import "context"

// =============================================================================
// CART DOMAIN ERRORS
// =============================================================================

var (
	ErrCartNotFound = &Error{Code: ENOTFOUND, Message: "Cart not found"}
	ErrLineNotFound = &Error{Code: ENOTFOUND, Message: "Cart item not found"}
	ErrInvalidBook  = &Error{Code: EINVALID, Message: "Book is missing required fields"}
)

// CartService provides business logic for shopping cart operations.
// Carts are session-scoped and live only for the duration of the process.
type CartService interface {
	// AddItem adds a book to the session's cart. If the book ID is already
	// present the line quantity is incremented and the stored book fields
	// are left untouched (first-added fields win).
	AddItem(ctx context.Context, sessionID string, book Book) (*CartSummary, error)

	// RemoveItem deletes the whole line for the given book ID.
	// Removing an absent line returns ErrLineNotFound.
	RemoveItem(ctx context.Context, sessionID, bookID string) (*CartSummary, error)

	// Summary returns the cart contents and calculated totals.
	// An unknown session yields an empty summary, not an error.
	Summary(ctx context.Context, sessionID string) (*CartSummary, error)

	// Clear removes every line from the session's cart.
	Clear(ctx context.Context, sessionID string) error
}

// CartLine is one cart entry: a book plus a positive quantity.
// Lines are keyed by book ID and kept in insertion order for display.
type CartLine struct {
	Book     Book `json:"book"`
	Quantity int  `json:"quantity"`
}

// CartSummary aggregates cart lines with calculated totals.
type CartSummary struct {
	Lines     []CartLine `json:"lines"`
	Total     float64    `json:"total"`
	Savings   float64    `json:"savings"`
	Points    int        `json:"points"`
	ItemCount int        `json:"itemCount"`
}
