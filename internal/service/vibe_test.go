package service

import (
	"context"
	"testing"
	"time"

	"github.com/dukerupert/novella/internal/domain"
	"github.com/dukerupert/novella/internal/recommend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForVibe(t *testing.T, svc domain.VibeService, sessionID string) domain.VibeState {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		state := svc.State(context.Background(), sessionID)
		if state.Status == domain.VibeReady {
			return state
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("vibe did not resolve in time")
	return domain.VibeState{}
}

func TestSelectDeliversVibe(t *testing.T) {
	ctx := context.Background()
	mock := &recommend.MockProvider{
		DescribeVibeFunc: func(ctx context.Context, title, author string) string {
			assert.Equal(t, "Dune", title)
			assert.Equal(t, "Frank Herbert", author)
			return "Sand, spice, and destiny on the wind."
		},
	}
	svc := NewVibeService(mock, discardLogger())

	svc.Select(ctx, "sess", domain.Book{ID: "4", Title: "Dune", Author: "Frank Herbert"})

	state := waitForVibe(t, svc, "sess")
	assert.Equal(t, "4", state.BookID)
	assert.Equal(t, "Sand, spice, and destiny on the wind.", state.Vibe)
}

func TestSelectIsPendingImmediately(t *testing.T) {
	ctx := context.Background()
	release := make(chan struct{})
	mock := &recommend.MockProvider{
		DescribeVibeFunc: func(ctx context.Context, title, author string) string {
			<-release
			return "eventually"
		},
	}
	svc := NewVibeService(mock, discardLogger())

	svc.Select(ctx, "sess", domain.Book{ID: "1", Title: "T", Author: "A"})

	// The item renders right away; the sentence is still on its way.
	state := svc.State(ctx, "sess")
	assert.Equal(t, domain.VibePending, state.Status)
	assert.Equal(t, "1", state.BookID)
	assert.Empty(t, state.Vibe)

	close(release)
	waitForVibe(t, svc, "sess")
}

func TestSwitchingSelectionDiscardsStaleVibe(t *testing.T) {
	ctx := context.Background()
	releaseFirst := make(chan struct{})
	firstDone := make(chan struct{})
	mock := &recommend.MockProvider{
		DescribeVibeFunc: func(ctx context.Context, title, author string) string {
			if title == "First" {
				defer close(firstDone)
				<-releaseFirst
				return "stale sentence for the first book"
			}
			return "fresh sentence for the second book"
		},
	}
	svc := NewVibeService(mock, discardLogger())

	svc.Select(ctx, "sess", domain.Book{ID: "1", Title: "First", Author: "A"})
	svc.Select(ctx, "sess", domain.Book{ID: "2", Title: "Second", Author: "B"})

	state := waitForVibe(t, svc, "sess")
	assert.Equal(t, "2", state.BookID)
	assert.Equal(t, "fresh sentence for the second book", state.Vibe)

	// Let the first request finally resolve; it must not overwrite.
	close(releaseFirst)
	select {
	case <-firstDone:
	case <-time.After(2 * time.Second):
		t.Fatal("first vibe never resolved")
	}
	time.Sleep(50 * time.Millisecond)

	state = svc.State(ctx, "sess")
	assert.Equal(t, "2", state.BookID)
	assert.Equal(t, "fresh sentence for the second book", state.Vibe)
}

func TestCloseClearsSlot(t *testing.T) {
	ctx := context.Background()
	mock := &recommend.MockProvider{
		DescribeVibeFunc: func(ctx context.Context, title, author string) string {
			return "anything"
		},
	}
	svc := NewVibeService(mock, discardLogger())

	svc.Select(ctx, "sess", domain.Book{ID: "1", Title: "T", Author: "A"})
	waitForVibe(t, svc, "sess")

	svc.Close(ctx, "sess")

	state := svc.State(ctx, "sess")
	assert.Equal(t, domain.VibeNone, state.Status)
	assert.Empty(t, state.BookID)
	assert.Empty(t, state.Vibe)
}

func TestUnselectedSessionHasNoVibe(t *testing.T) {
	svc := NewVibeService(&recommend.MockProvider{}, discardLogger())

	require.Equal(t, domain.VibeNone, svc.State(context.Background(), "sess").Status)
}
