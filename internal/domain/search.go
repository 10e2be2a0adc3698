package domain

import "context"

// =============================================================================
// SEARCH SESSION DOMAIN
// =============================================================================

// SearchStatus is the lifecycle state of a session's AI search.
type SearchStatus string

const (
	SearchIdle    SearchStatus = "idle"
	SearchLoading SearchStatus = "loading"
	SearchSuccess SearchStatus = "success"
	SearchError   SearchStatus = "error"
)

// NoMatchesMessage is the single user-facing miss message. A failed call to
// the recommendation service and a legitimate zero-match response are
// indistinguishable at this layer and both surface as this message.
const NoMatchesMessage = "No matches found. Try different wording."

var (
	ErrEmptyQuery     = &Error{Code: EINVALID, Message: "Search query must not be empty"}
	ErrSearchInFlight = &Error{Code: ECONFLICT, Message: "A search is already running for this session"}
)

// SearchState is a snapshot of one session's search.
// Results is non-empty only when Status is SearchSuccess; ErrorMessage is
// non-empty only when Status is SearchError.
type SearchState struct {
	Query        string       `json:"query"`
	Status       SearchStatus `json:"status"`
	Results      []Book       `json:"results"`
	ErrorMessage string       `json:"errorMessage,omitempty"`
}

// SearchService owns at most one in-flight recommendation query per session.
//
// Transitions: idle/success/error --Submit--> loading; loading resolves to
// success (non-empty results) or error (empty results). Close resets to idle
// from any state, including mid-loading; a response that arrives after Close
// or after a newer Submit must be discarded, never applied.
type SearchService interface {
	// Submit starts a search for the session. The query must be non-empty
	// (callers validate before invoking). Returns ErrSearchInFlight if the
	// session is already loading.
	Submit(ctx context.Context, sessionID, query string) error

	// State returns the session's current search snapshot.
	State(ctx context.Context, sessionID string) SearchState

	// Close resets the session to idle, clearing query and results.
	Close(ctx context.Context, sessionID string)

	// Result looks up a book by ID in the session's current result set.
	Result(ctx context.Context, sessionID, bookID string) (Book, bool)
}

// =============================================================================
// VIBE SLOT DOMAIN
// =============================================================================

// VibeStatus is the lifecycle state of a session's vibe slot.
type VibeStatus string

const (
	VibeNone    VibeStatus = "none"
	VibePending VibeStatus = "pending"
	VibeReady   VibeStatus = "ready"
)

// VibeState is a snapshot of the detail-view vibe slot for one session.
// Vibe is non-empty only when Status is VibeReady.
type VibeState struct {
	BookID string     `json:"bookId,omitempty"`
	Status VibeStatus `json:"status"`
	Vibe   string     `json:"vibe,omitempty"`
}

// VibeService holds one vibe slot per session, keyed to the currently
// selected book. Selecting a new book while a previous description is still
// resolving must discard the stale sentence rather than attach it to the new
// selection.
type VibeService interface {
	// Select marks the book as the session's current selection and starts
	// fetching its vibe sentence. The caller renders the book immediately;
	// the sentence is patched in when it resolves.
	Select(ctx context.Context, sessionID string, book Book)

	// State returns the session's current vibe snapshot.
	State(ctx context.Context, sessionID string) VibeState

	// Close clears the session's selection.
	Close(ctx context.Context, sessionID string)
}
