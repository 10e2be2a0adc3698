package domain

import "context"

// =============================================================================
// BOOK DOMAIN TYPES
// =============================================================================

// Condition is the physical-quality grade of a listed book.
// It drives the discount tier used to derive the offered price.
type Condition string

const (
	ConditionNew        Condition = "New"
	ConditionLikeNew    Condition = "Like New"
	ConditionVeryGood   Condition = "Very Good"
	ConditionGood       Condition = "Good"
	ConditionAcceptable Condition = "Acceptable"
)

// Conditions lists every valid condition grade, best first.
var Conditions = []Condition{
	ConditionNew,
	ConditionLikeNew,
	ConditionVeryGood,
	ConditionGood,
	ConditionAcceptable,
}

// Valid reports whether c is one of the defined condition grades.
func (c Condition) Valid() bool {
	for _, known := range Conditions {
		if c == known {
			return true
		}
	}
	return false
}

// Book represents a sellable book listing with commerce attributes.
// Catalog-seeded books carry stable literal IDs; AI-derived books get a
// synthetic "ai-" prefixed ID assigned at creation time.
type Book struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	CoverURL      string    `json:"coverUrl"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"originalPrice"`
	Rating        float64   `json:"rating"` // 0-5
	Description   string    `json:"description"`
	Genre         string    `json:"genre"`
	Condition     Condition `json:"condition"`
	Points        int       `json:"points"`
	IsBestSeller  bool      `json:"isBestSeller"`
}

// Savings is the per-unit amount saved versus the undiscounted price.
func (b Book) Savings() float64 {
	return b.OriginalPrice - b.Price
}

// Recommender turns a free-text description of a desired reading experience
// into purchasable book listings.
//
// Implementations must be stateless between invocations and must never
// surface a distinguishable error to the caller: any transport or parse
// failure yields an empty slice, indistinguishable from a legitimate
// zero-match response.
type Recommender interface {
	// Recommend returns up to five book listings matching the query.
	// The returned slice may be empty but the error is always nil unless
	// ctx is done.
	Recommend(ctx context.Context, query string) ([]Book, error)
}

// VibeWriter produces a one-sentence description of the reading experience
// of a specific title. It has no error channel: failures degrade to a fixed
// fallback sentence.
type VibeWriter interface {
	DescribeVibe(ctx context.Context, title, author string) string
}
