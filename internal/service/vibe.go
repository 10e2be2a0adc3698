package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dukerupert/novella/internal/domain"
)

// vibeService keeps one vibe slot per session, keyed to the currently
// selected book. The same generation discipline as the search service
// applies: switching selection mid-flight must not let the previous book's
// sentence attach to the new one.
type vibeService struct {
	writer domain.VibeWriter
	logger *slog.Logger

	mu       sync.Mutex
	sessions map[string]*vibeSession
}

type vibeSession struct {
	gen   uint64
	state domain.VibeState
}

// NewVibeService creates a vibe service backed by the given writer.
func NewVibeService(writer domain.VibeWriter, logger *slog.Logger) domain.VibeService {
	return &vibeService{
		writer:   writer,
		logger:   logger,
		sessions: make(map[string]*vibeSession),
	}
}

// Select makes the book the session's current selection and starts fetching
// its description. The book renders immediately; the sentence arrives later.
func (s *vibeService) Select(ctx context.Context, sessionID string, book domain.Book) {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &vibeSession{}
		s.sessions[sessionID] = sess
	}
	sess.gen++
	gen := sess.gen
	sess.state = domain.VibeState{BookID: book.ID, Status: domain.VibePending}
	s.mu.Unlock()

	go s.resolve(context.Background(), sessionID, gen, book)
}

// resolve fetches the sentence and patches it into the slot, unless the
// selection has since changed.
func (s *vibeService) resolve(ctx context.Context, sessionID string, gen uint64, book domain.Book) {
	// Never fails: the writer degrades to a fallback sentence internally.
	vibe := s.writer.DescribeVibe(ctx, book.Title, book.Author)

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok || sess.gen != gen {
		s.logger.Debug("discarding stale vibe", "session", sessionID, "book", book.ID)
		return
	}

	sess.state.Status = domain.VibeReady
	sess.state.Vibe = vibe
}

// State returns a snapshot of the session's vibe slot.
func (s *vibeService) State(ctx context.Context, sessionID string) domain.VibeState {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return domain.VibeState{Status: domain.VibeNone}
	}
	return sess.state
}

// Close clears the session's selection. An outstanding fetch resolves into
// nothing.
func (s *vibeService) Close(ctx context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return
	}
	sess.gen++
	sess.state = domain.VibeState{Status: domain.VibeNone}
}
