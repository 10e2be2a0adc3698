package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dukerupert/novella/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBook(id string, price, originalPrice float64) domain.Book {
	return domain.Book{
		ID:            id,
		Title:         "Title " + id,
		Author:        "Author " + id,
		Price:         price,
		OriginalPrice: originalPrice,
		Points:        int(price * 5),
		Condition:     domain.ConditionGood,
		Genre:         "Fiction",
		Description:   "A book.",
	}
}

func TestAddItemMergesOnDuplicate(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService()

	first := testBook("b1", 10.00, 20.00)
	_, err := svc.AddItem(ctx, "sess", first)
	require.NoError(t, err)

	// Second add of the same ID carries different fields; they must lose.
	altered := first
	altered.Title = "Retitled"
	altered.Price = 99.99

	summary, err := svc.AddItem(ctx, "sess", altered)
	require.NoError(t, err)

	require.Len(t, summary.Lines, 1)
	assert.Equal(t, 2, summary.Lines[0].Quantity)
	assert.Equal(t, "Title b1", summary.Lines[0].Book.Title)
	assert.Equal(t, 10.00, summary.Lines[0].Book.Price)
}

func TestRemoveThenAddResetsQuantity(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService()
	book := testBook("b1", 10.00, 20.00)

	_, err := svc.AddItem(ctx, "sess", book)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "sess", book)
	require.NoError(t, err)

	summary, err := svc.RemoveItem(ctx, "sess", "b1")
	require.NoError(t, err)
	assert.Empty(t, summary.Lines)

	summary, err = svc.AddItem(ctx, "sess", book)
	require.NoError(t, err)
	require.Len(t, summary.Lines, 1)
	assert.Equal(t, 1, summary.Lines[0].Quantity)
}

func TestRemoveMissingLine(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService()

	_, err := svc.RemoveItem(ctx, "sess", "nope")
	assert.True(t, errors.Is(err, domain.ErrLineNotFound))
}

func TestSummaryTotals(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService()

	book := testBook("b1", 10.00, 20.00)
	_, err := svc.AddItem(ctx, "sess", book)
	require.NoError(t, err)
	summary, err := svc.AddItem(ctx, "sess", book)
	require.NoError(t, err)

	assert.InDelta(t, 20.00, summary.Total, 0.001)
	assert.InDelta(t, 20.00, summary.Savings, 0.001)
	assert.Equal(t, book.Points*2, summary.Points)
	assert.Equal(t, 2, summary.ItemCount)
}

func TestSummaryPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService()

	for _, id := range []string{"z", "a", "m"} {
		_, err := svc.AddItem(ctx, "sess", testBook(id, 5.00, 5.00))
		require.NoError(t, err)
	}

	summary, err := svc.Summary(ctx, "sess")
	require.NoError(t, err)
	require.Len(t, summary.Lines, 3)
	assert.Equal(t, "z", summary.Lines[0].Book.ID)
	assert.Equal(t, "a", summary.Lines[1].Book.ID)
	assert.Equal(t, "m", summary.Lines[2].Book.ID)
}

func TestUnknownSessionHasEmptySummary(t *testing.T) {
	svc := NewCartService()

	summary, err := svc.Summary(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.Empty(t, summary.Lines)
	assert.Zero(t, summary.Total)
	assert.Zero(t, summary.ItemCount)
}

func TestCartsAreSessionScoped(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService()

	_, err := svc.AddItem(ctx, "alice", testBook("b1", 10.00, 20.00))
	require.NoError(t, err)

	summary, err := svc.Summary(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, summary.Lines)
}

func TestAddItemValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService()

	_, err := svc.AddItem(ctx, "sess", domain.Book{ID: "x"})
	assert.True(t, errors.Is(err, domain.ErrInvalidBook))

	_, err = svc.AddItem(ctx, "", testBook("b1", 10.00, 20.00))
	assert.True(t, errors.Is(err, domain.ErrCartNotFound))
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService()

	_, err := svc.AddItem(ctx, "sess", testBook("b1", 10.00, 20.00))
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "sess"))

	summary, err := svc.Summary(ctx, "sess")
	require.NoError(t, err)
	assert.Empty(t, summary.Lines)
}
