package recommend

import (
	"context"

	"github.com/dukerupert/novella/internal/domain"
)

// MockProvider implements domain.Recommender and domain.VibeWriter for
// testing. Unset funcs return zero values.
type MockProvider struct {
	RecommendFunc    func(ctx context.Context, query string) ([]domain.Book, error)
	DescribeVibeFunc func(ctx context.Context, title, author string) string
}

var (
	_ domain.Recommender = (*MockProvider)(nil)
	_ domain.VibeWriter  = (*MockProvider)(nil)
)

func (m *MockProvider) Recommend(ctx context.Context, query string) ([]domain.Book, error) {
	if m.RecommendFunc != nil {
		return m.RecommendFunc(ctx, query)
	}
	return nil, nil
}

func (m *MockProvider) DescribeVibe(ctx context.Context, title, author string) string {
	if m.DescribeVibeFunc != nil {
		return m.DescribeVibeFunc(ctx, title, author)
	}
	return FallbackVibe
}
