package storefront

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/dukerupert/novella/internal/cookie"
	"github.com/dukerupert/novella/internal/domain"
)

// mockCartService implements domain.CartService for testing
type mockCartService struct {
	addItemFunc    func(ctx context.Context, sessionID string, book domain.Book) (*domain.CartSummary, error)
	removeItemFunc func(ctx context.Context, sessionID, bookID string) (*domain.CartSummary, error)
	summaryFunc    func(ctx context.Context, sessionID string) (*domain.CartSummary, error)
	clearFunc      func(ctx context.Context, sessionID string) error
}

func (m *mockCartService) AddItem(ctx context.Context, sessionID string, book domain.Book) (*domain.CartSummary, error) {
	if m.addItemFunc != nil {
		return m.addItemFunc(ctx, sessionID, book)
	}
	return &domain.CartSummary{}, nil
}

func (m *mockCartService) RemoveItem(ctx context.Context, sessionID, bookID string) (*domain.CartSummary, error) {
	if m.removeItemFunc != nil {
		return m.removeItemFunc(ctx, sessionID, bookID)
	}
	return &domain.CartSummary{}, nil
}

func (m *mockCartService) Summary(ctx context.Context, sessionID string) (*domain.CartSummary, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx, sessionID)
	}
	return &domain.CartSummary{}, nil
}

func (m *mockCartService) Clear(ctx context.Context, sessionID string) error {
	if m.clearFunc != nil {
		return m.clearFunc(ctx, sessionID)
	}
	return nil
}

// mockSearchService implements domain.SearchService for testing
type mockSearchService struct {
	submitFunc func(ctx context.Context, sessionID, query string) error
	stateFunc  func(ctx context.Context, sessionID string) domain.SearchState
	closeFunc  func(ctx context.Context, sessionID string)
	resultFunc func(ctx context.Context, sessionID, bookID string) (domain.Book, bool)
}

func (m *mockSearchService) Submit(ctx context.Context, sessionID, query string) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, sessionID, query)
	}
	return nil
}

func (m *mockSearchService) State(ctx context.Context, sessionID string) domain.SearchState {
	if m.stateFunc != nil {
		return m.stateFunc(ctx, sessionID)
	}
	return domain.SearchState{Status: domain.SearchIdle}
}

func (m *mockSearchService) Close(ctx context.Context, sessionID string) {
	if m.closeFunc != nil {
		m.closeFunc(ctx, sessionID)
	}
}

func (m *mockSearchService) Result(ctx context.Context, sessionID, bookID string) (domain.Book, bool) {
	if m.resultFunc != nil {
		return m.resultFunc(ctx, sessionID, bookID)
	}
	return domain.Book{}, false
}

// mockVibeService implements domain.VibeService for testing
type mockVibeService struct {
	selectFunc func(ctx context.Context, sessionID string, book domain.Book)
	stateFunc  func(ctx context.Context, sessionID string) domain.VibeState
	closeFunc  func(ctx context.Context, sessionID string)
}

func (m *mockVibeService) Select(ctx context.Context, sessionID string, book domain.Book) {
	if m.selectFunc != nil {
		m.selectFunc(ctx, sessionID, book)
	}
}

func (m *mockVibeService) State(ctx context.Context, sessionID string) domain.VibeState {
	if m.stateFunc != nil {
		return m.stateFunc(ctx, sessionID)
	}
	return domain.VibeState{Status: domain.VibeNone}
}

func (m *mockVibeService) Close(ctx context.Context, sessionID string) {
	if m.closeFunc != nil {
		m.closeFunc(ctx, sessionID)
	}
}

// testCookies is the cookie config used across handler tests.
var testCookies = cookie.NewConfig(false)

// withSession attaches a session cookie to the request.
func withSession(r *http.Request, sessionID string) *http.Request {
	if sessionID != "" {
		r.AddCookie(&http.Cookie{Name: cookie.SessionCookieName, Value: sessionID})
	}
	return r
}

// sessionCookieValue digs the session cookie out of a recorded response.
func sessionCookieValue(rec *httptest.ResponseRecorder) string {
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookie.SessionCookieName {
			return c.Value
		}
	}
	return ""
}
