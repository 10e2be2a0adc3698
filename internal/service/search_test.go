package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dukerupert/novella/internal/domain"
	"github.com/dukerupert/novella/internal/recommend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// waitForStatus polls until the session leaves loading or the deadline hits.
func waitForStatus(t *testing.T, svc domain.SearchService, sessionID string) domain.SearchState {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		state := svc.State(context.Background(), sessionID)
		if state.Status != domain.SearchLoading {
			return state
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("search did not resolve in time")
	return domain.SearchState{}
}

func resultBooks(prices ...float64) []domain.Book {
	books := make([]domain.Book, len(prices))
	for i, orig := range prices {
		books[i] = domain.Book{
			ID:            "ai-1-" + string(rune('0'+i)),
			Title:         "Result",
			Author:        "Author",
			Price:         orig / 2,
			OriginalPrice: orig,
		}
	}
	return books
}

func TestSubmitSuccess(t *testing.T) {
	ctx := context.Background()
	mock := &recommend.MockProvider{
		RecommendFunc: func(ctx context.Context, query string) ([]domain.Book, error) {
			assert.Equal(t, "a cozy mystery", query)
			return resultBooks(20.00, 15.00, 10.00), nil
		},
	}
	svc := NewSearchService(mock, discardLogger())

	require.NoError(t, svc.Submit(ctx, "sess", "a cozy mystery"))

	state := waitForStatus(t, svc, "sess")
	assert.Equal(t, domain.SearchSuccess, state.Status)
	require.Len(t, state.Results, 3)
	assert.Empty(t, state.ErrorMessage)
	for _, b := range state.Results {
		assert.LessOrEqual(t, b.Price, b.OriginalPrice)
	}
}

func TestSubmitEmptyResultsBecomesError(t *testing.T) {
	ctx := context.Background()
	mock := &recommend.MockProvider{
		RecommendFunc: func(ctx context.Context, query string) ([]domain.Book, error) {
			return nil, nil
		},
	}
	svc := NewSearchService(mock, discardLogger())

	require.NoError(t, svc.Submit(ctx, "sess", "unfindable"))

	state := waitForStatus(t, svc, "sess")
	assert.Equal(t, domain.SearchError, state.Status)
	assert.Equal(t, domain.NoMatchesMessage, state.ErrorMessage)
	assert.Empty(t, state.Results)
}

func TestAdapterFailureLooksLikeNoMatches(t *testing.T) {
	ctx := context.Background()
	mock := &recommend.MockProvider{
		RecommendFunc: func(ctx context.Context, query string) ([]domain.Book, error) {
			return nil, errors.New("transport exploded")
		},
	}
	svc := NewSearchService(mock, discardLogger())

	require.NoError(t, svc.Submit(ctx, "sess", "anything"))

	state := waitForStatus(t, svc, "sess")
	assert.Equal(t, domain.SearchError, state.Status)
	assert.Equal(t, domain.NoMatchesMessage, state.ErrorMessage)
}

func TestSubmitRejectsEmptyQuery(t *testing.T) {
	svc := NewSearchService(&recommend.MockProvider{}, discardLogger())

	err := svc.Submit(context.Background(), "sess", "   ")
	assert.True(t, errors.Is(err, domain.ErrEmptyQuery))

	// No transition happened.
	state := svc.State(context.Background(), "sess")
	assert.Equal(t, domain.SearchIdle, state.Status)
}

func TestSubmitWhileLoadingIsRejected(t *testing.T) {
	ctx := context.Background()
	release := make(chan struct{})
	mock := &recommend.MockProvider{
		RecommendFunc: func(ctx context.Context, query string) ([]domain.Book, error) {
			<-release
			return resultBooks(20.00), nil
		},
	}
	svc := NewSearchService(mock, discardLogger())

	require.NoError(t, svc.Submit(ctx, "sess", "first"))

	err := svc.Submit(ctx, "sess", "second")
	assert.True(t, errors.Is(err, domain.ErrSearchInFlight))

	close(release)
	state := waitForStatus(t, svc, "sess")
	assert.Equal(t, "first", state.Query)
}

func TestCloseDiscardsInFlightResponse(t *testing.T) {
	ctx := context.Background()
	release := make(chan struct{})
	resolved := make(chan struct{})
	mock := &recommend.MockProvider{
		RecommendFunc: func(ctx context.Context, query string) ([]domain.Book, error) {
			defer close(resolved)
			<-release
			return resultBooks(20.00), nil
		},
	}
	svc := NewSearchService(mock, discardLogger())

	require.NoError(t, svc.Submit(ctx, "sess", "slow query"))
	svc.Close(ctx, "sess")

	// Let the stale response arrive after the close.
	close(release)
	select {
	case <-resolved:
	case <-time.After(2 * time.Second):
		t.Fatal("recommender never resolved")
	}

	// Give the resolution goroutine a moment to (wrongly) apply itself.
	time.Sleep(50 * time.Millisecond)

	state := svc.State(ctx, "sess")
	assert.Equal(t, domain.SearchIdle, state.Status)
	assert.Empty(t, state.Results)
	assert.Empty(t, state.Query)
}

func TestResubmitAfterCloseOnlyAppliesNewResult(t *testing.T) {
	ctx := context.Background()
	releaseA := make(chan struct{})
	resolvedA := make(chan struct{})
	mock := &recommend.MockProvider{
		RecommendFunc: func(ctx context.Context, query string) ([]domain.Book, error) {
			if query == "query A" {
				defer close(resolvedA)
				<-releaseA
				return []domain.Book{{ID: "stale", Title: "Stale", Author: "A", Price: 5, OriginalPrice: 10}}, nil
			}
			return []domain.Book{{ID: "fresh", Title: "Fresh", Author: "B", Price: 5, OriginalPrice: 10}}, nil
		},
	}
	svc := NewSearchService(mock, discardLogger())

	require.NoError(t, svc.Submit(ctx, "sess", "query A"))
	svc.Close(ctx, "sess")
	require.NoError(t, svc.Submit(ctx, "sess", "query B"))

	state := waitForStatus(t, svc, "sess")
	require.Equal(t, domain.SearchSuccess, state.Status)
	require.Len(t, state.Results, 1)
	assert.Equal(t, "fresh", state.Results[0].ID)

	// Now let A's response land; it must not clobber B's.
	close(releaseA)
	select {
	case <-resolvedA:
	case <-time.After(2 * time.Second):
		t.Fatal("query A never resolved")
	}
	time.Sleep(50 * time.Millisecond)

	state = svc.State(ctx, "sess")
	require.Equal(t, domain.SearchSuccess, state.Status)
	require.Len(t, state.Results, 1)
	assert.Equal(t, "fresh", state.Results[0].ID)
}

func TestResult(t *testing.T) {
	ctx := context.Background()
	mock := &recommend.MockProvider{
		RecommendFunc: func(ctx context.Context, query string) ([]domain.Book, error) {
			return []domain.Book{{ID: "ai-9-0", Title: "Found", Author: "X", Price: 5, OriginalPrice: 10}}, nil
		},
	}
	svc := NewSearchService(mock, discardLogger())

	require.NoError(t, svc.Submit(ctx, "sess", "find me"))
	waitForStatus(t, svc, "sess")

	book, ok := svc.Result(ctx, "sess", "ai-9-0")
	require.True(t, ok)
	assert.Equal(t, "Found", book.Title)

	_, ok = svc.Result(ctx, "sess", "missing")
	assert.False(t, ok)

	svc.Close(ctx, "sess")
	_, ok = svc.Result(ctx, "sess", "ai-9-0")
	assert.False(t, ok, "closed session must not serve results")
}

func TestSessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	mock := &recommend.MockProvider{
		RecommendFunc: func(ctx context.Context, query string) ([]domain.Book, error) {
			return resultBooks(20.00), nil
		},
	}
	svc := NewSearchService(mock, discardLogger())

	require.NoError(t, svc.Submit(ctx, "alice", "books for alice"))
	waitForStatus(t, svc, "alice")

	state := svc.State(ctx, "bob")
	assert.Equal(t, domain.SearchIdle, state.Status)
	assert.Empty(t, state.Results)
}
