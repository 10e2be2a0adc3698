package recommend

import (
	"encoding/json"
	"time"

	"github.com/dukerupert/novella/internal/domain"
)

// rawRecommendation is one element of the model's JSON response. Rating and
// originalPrice are kept raw because the shape is untrusted: the model may
// omit them or return the wrong type, and either way we repair with defaults
// instead of rejecting the element.
type rawRecommendation struct {
	Title         string          `json:"title"`
	Author        string          `json:"author"`
	Description   string          `json:"description"`
	Genre         string          `json:"genre"`
	Rating        json.RawMessage `json:"rating"`
	OriginalPrice json.RawMessage `json:"originalPrice"`
}

// parseRecommendations decodes the model's response text into usable
// elements. Undecodable responses yield nil; elements missing a title or
// author are dropped; at most MaxResults elements survive.
func parseRecommendations(data []byte) []rawRecommendation {
	var raw []rawRecommendation
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	usable := raw[:0]
	for _, r := range raw {
		if r.Title == "" || r.Author == "" {
			continue
		}
		usable = append(usable, r)
		if len(usable) == MaxResults {
			break
		}
	}
	return usable
}

// numberOr decodes a raw JSON value as a positive number, falling back when
// the value is absent, non-numeric, or non-positive.
func numberOr(raw json.RawMessage, fallback float64) float64 {
	if len(raw) == 0 {
		return fallback
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil || v <= 0 {
		return fallback
	}
	return v
}

// buildBooks turns parsed elements into full listings. Enrichment per
// element, in order: repair rating and original price, draw a condition,
// derive the discounted price and points, then assign the placeholder cover
// and the synthetic batch ID.
func buildBooks(raws []rawRecommendation, now time.Time) []domain.Book {
	books := make([]domain.Book, 0, len(raws))
	for i, r := range raws {
		originalPrice := numberOr(r.OriginalPrice, defaultOriginalPrice)
		condition := randomCondition()
		price := priceFor(condition, originalPrice)

		books = append(books, domain.Book{
			ID:            batchID(now, i),
			Title:         r.Title,
			Author:        r.Author,
			CoverURL:      coverURL(r.Title),
			Price:         price,
			OriginalPrice: originalPrice,
			Rating:        numberOr(r.Rating, defaultRating),
			Description:   r.Description,
			Genre:         r.Genre,
			Condition:     condition,
			Points:        pointsFor(price),
			IsBestSeller:  false,
		})
	}
	return books
}
