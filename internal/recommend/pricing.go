package recommend

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/dukerupert/novella/internal/domain"
)

const (
	// minPrice is the floor on any derived price, regardless of discount math.
	minPrice = 3.99

	// defaultRating is used when the upstream source omits the rating or
	// reports something unusable.
	defaultRating = 4.5

	// defaultOriginalPrice is used when the upstream source omits the MSRP
	// or reports something non-numeric.
	defaultOriginalPrice = 19.99

	// pointsPerDollar converts an offered price into loyalty points.
	pointsPerDollar = 5
)

// conditionDiscounts maps a condition grade to its price discount fraction.
// Because every fraction is in [0, 1], the derived price never exceeds the
// original price; only "New" leaves them equal.
var conditionDiscounts = map[domain.Condition]float64{
	domain.ConditionNew:        0,
	domain.ConditionLikeNew:    0.20,
	domain.ConditionVeryGood:   0.45,
	domain.ConditionGood:       0.60,
	domain.ConditionAcceptable: 0.70,
}

// randomCondition draws a condition grade uniformly at random. The draw is
// independent of every other field: a pristine copy may well carry a low
// rating. That mirrors how the inventory simulation is meant to behave, so
// do not correlate the draw with rating or price tier.
func randomCondition() domain.Condition {
	return domain.Conditions[rand.IntN(len(domain.Conditions))]
}

// priceFor derives the offered price from a condition grade and the
// undiscounted price, applying the discount table and the global floor.
func priceFor(condition domain.Condition, originalPrice float64) float64 {
	discount := conditionDiscounts[condition]
	return math.Max(minPrice, round2(originalPrice*(1-discount)))
}

// pointsFor converts an offered price into loyalty points, floored.
func pointsFor(price float64) int {
	return int(math.Floor(price * pointsPerDollar))
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// coverURL derives a stable placeholder cover from the title text: the sum
// of its character codes, folded into [0, 1000), seeds the image service.
// Same title, same cover.
func coverURL(title string) string {
	sum := 0
	for _, r := range title {
		sum += int(r)
	}
	return fmt.Sprintf("https://picsum.photos/seed/%d/300/450", sum%1000)
}

// batchID builds a synthetic listing ID for one element of a response batch.
// The ordinal disambiguates same-millisecond collisions within the batch.
func batchID(now time.Time, index int) string {
	return fmt.Sprintf("ai-%d-%d", now.UnixMilli(), index)
}
