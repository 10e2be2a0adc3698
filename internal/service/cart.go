package service

import (
	"context"
	"math"
	"sync"

	"github.com/dukerupert/novella/internal/domain"
)

// cartService keeps one ordered ledger per session, in memory only. There is
// no persistence anywhere in this system; carts live for the process
// lifetime and vanish on restart.
type cartService struct {
	mu    sync.Mutex
	carts map[string][]domain.CartLine
}

// NewCartService creates an in-memory cart service.
func NewCartService() domain.CartService {
	return &cartService{
		carts: make(map[string][]domain.CartLine),
	}
}

// AddItem adds a book to the session's cart, merging on duplicate ID.
// The stored book fields are never overwritten: first-added fields win,
// only the quantity moves.
func (s *cartService) AddItem(ctx context.Context, sessionID string, book domain.Book) (*domain.CartSummary, error) {
	if sessionID == "" {
		return nil, domain.ErrCartNotFound
	}
	if book.ID == "" || book.Title == "" || book.Author == "" {
		return nil, domain.ErrInvalidBook
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	merged := false
	for i := range lines {
		if lines[i].Book.ID == book.ID {
			lines[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, domain.CartLine{Book: book, Quantity: 1})
	}
	s.carts[sessionID] = lines

	return summarize(lines), nil
}

// RemoveItem deletes the whole line for the given book ID, preserving the
// order of the remaining lines.
func (s *cartService) RemoveItem(ctx context.Context, sessionID, bookID string) (*domain.CartSummary, error) {
	if sessionID == "" {
		return nil, domain.ErrCartNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	for i := range lines {
		if lines[i].Book.ID == bookID {
			lines = append(lines[:i], lines[i+1:]...)
			s.carts[sessionID] = lines
			return summarize(lines), nil
		}
	}

	return nil, domain.ErrLineNotFound
}

// Summary returns the session's cart with calculated totals. Unknown
// sessions get an empty summary rather than an error: an absent cart and an
// empty cart look the same to the storefront.
func (s *cartService) Summary(ctx context.Context, sessionID string) (*domain.CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return summarize(s.carts[sessionID]), nil
}

// Clear removes every line from the session's cart.
func (s *cartService) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}

// summarize computes display totals over the ledger. Savings can never go
// negative per line because price <= originalPrice is guaranteed at item
// creation time.
func summarize(lines []domain.CartLine) *domain.CartSummary {
	summary := &domain.CartSummary{
		Lines: make([]domain.CartLine, len(lines)),
	}
	copy(summary.Lines, lines)

	var total, savings float64
	for _, line := range lines {
		qty := float64(line.Quantity)
		total += line.Book.Price * qty
		savings += line.Book.Savings() * qty
		summary.Points += line.Book.Points * line.Quantity
		summary.ItemCount += line.Quantity
	}
	summary.Total = roundCents(total)
	summary.Savings = roundCents(savings)

	return summary
}

// roundCents rounds a dollar amount to two decimal places.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
