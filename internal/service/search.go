package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/dukerupert/novella/internal/domain"
)

// searchService owns one AI search per session: a small state machine
// (idle -> loading -> success|error) plus a generation counter that guards
// against stale responses.
//
// The transport has no cancellation primitive, so an outstanding request
// cannot be aborted when the session closes or resubmits. Instead every
// submission captures the generation at launch and checks it again at
// resolution time; a mismatch means the session moved on and the response
// must be dropped on the floor.
type searchService struct {
	recommender domain.Recommender
	logger      *slog.Logger

	mu       sync.Mutex
	sessions map[string]*searchSession
}

type searchSession struct {
	gen   uint64
	state domain.SearchState
}

// NewSearchService creates a search service backed by the given recommender.
func NewSearchService(recommender domain.Recommender, logger *slog.Logger) domain.SearchService {
	return &searchService{
		recommender: recommender,
		logger:      logger,
		sessions:    make(map[string]*searchSession),
	}
}

// Submit transitions the session to loading and launches the recommendation
// request. Previous results are cleared immediately so stale matches never
// show while the new query runs. Only one submission may be in flight per
// session; a second one is rejected, not queued.
func (s *searchService) Submit(ctx context.Context, sessionID, query string) error {
	if strings.TrimSpace(query) == "" {
		return domain.ErrEmptyQuery
	}

	s.mu.Lock()
	sess := s.session(sessionID)
	if sess.state.Status == domain.SearchLoading {
		s.mu.Unlock()
		return domain.ErrSearchInFlight
	}
	sess.gen++
	gen := sess.gen
	sess.state = domain.SearchState{Query: query, Status: domain.SearchLoading}
	s.mu.Unlock()

	// Detached from the request context: an impatient client disconnect
	// must not abort the search it just submitted. The provider bounds the
	// outbound call with its own timeout.
	go s.resolve(context.Background(), sessionID, gen, query)

	return nil
}

// resolve runs the recommendation call and applies the outcome, unless the
// session has since closed or resubmitted.
func (s *searchService) resolve(ctx context.Context, sessionID string, gen uint64, query string) {
	books, err := s.recommender.Recommend(ctx, query)
	if err != nil {
		// The adapter conflates failure with a zero-match response by
		// design; treat any error the same way.
		books = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok || sess.gen != gen {
		s.logger.Debug("discarding stale search response", "session", sessionID, "query", query)
		return
	}

	if len(books) > 0 {
		sess.state = domain.SearchState{
			Query:   query,
			Status:  domain.SearchSuccess,
			Results: books,
		}
		return
	}

	sess.state = domain.SearchState{
		Query:        query,
		Status:       domain.SearchError,
		ErrorMessage: domain.NoMatchesMessage,
	}
}

// State returns a snapshot of the session's search.
func (s *searchService) State(ctx context.Context, sessionID string) domain.SearchState {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return domain.SearchState{Status: domain.SearchIdle}
	}

	snapshot := sess.state
	if len(sess.state.Results) > 0 {
		snapshot.Results = make([]domain.Book, len(sess.state.Results))
		copy(snapshot.Results, sess.state.Results)
	}
	return snapshot
}

// Close resets the session to idle from any state, including mid-loading.
// Bumping the generation ensures an outstanding response resolves into
// nothing instead of resurrecting the session.
func (s *searchService) Close(ctx context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return
	}
	sess.gen++
	sess.state = domain.SearchState{Status: domain.SearchIdle}
}

// Result looks up a book in the session's current result set, so AI-derived
// listings can be added to the cart exactly like catalog ones.
func (s *searchService) Result(ctx context.Context, sessionID, bookID string) (domain.Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok || sess.state.Status != domain.SearchSuccess {
		return domain.Book{}, false
	}
	for _, b := range sess.state.Results {
		if b.ID == bookID {
			return b, true
		}
	}
	return domain.Book{}, false
}

// session returns the session entry, creating it in idle state if needed.
// Callers must hold s.mu. Entries are kept after Close so the generation
// counter stays monotonic for the lifetime of the session.
func (s *searchService) session(sessionID string) *searchSession {
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &searchSession{state: domain.SearchState{Status: domain.SearchIdle}}
		s.sessions[sessionID] = sess
	}
	return sess
}
