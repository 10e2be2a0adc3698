// Package catalog holds the curated seed inventory. It is the static,
// non-AI collaborator of the storefront: a fixed list of books defined at
// startup, never mutated at runtime.
package catalog

import (
	"strings"

	"github.com/dukerupert/novella/internal/domain"
)

// Categories the storefront filters on. "Thrift Deals" is a derived filter
// over the discount, not a genre.
var Categories = []string{
	"Fiction", "Non-Fiction", "Sci-Fi", "Mystery", "Romance", "History", "Self-Help", "Fantasy", "Thrift Deals",
}

// Catalog is a read-only view over the seed inventory.
type Catalog struct {
	books []domain.Book
	byID  map[string]domain.Book
}

// New builds a catalog from the given books. Call with Seed() for the
// standard inventory.
func New(books []domain.Book) *Catalog {
	byID := make(map[string]domain.Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}
	return &Catalog{books: books, byID: byID}
}

// All returns every book in display order.
func (c *Catalog) All() []domain.Book {
	out := make([]domain.Book, len(c.books))
	copy(out, c.books)
	return out
}

// Get looks up a book by its catalog ID.
func (c *Catalog) Get(id string) (domain.Book, bool) {
	b, ok := c.byID[id]
	return b, ok
}

// Filter returns the books matching a category. "All" and the empty string
// return everything. "Thrift Deals" selects books discounted past half their
// original price. "Historical Fiction" titles count as "Fiction".
func (c *Catalog) Filter(category string) []domain.Book {
	if category == "" || category == "All" {
		return c.All()
	}

	var out []domain.Book
	for _, b := range c.books {
		if category == "Thrift Deals" {
			if b.OriginalPrice > 0 && (b.OriginalPrice-b.Price)/b.OriginalPrice > 0.5 {
				out = append(out, b)
			}
			continue
		}
		if strings.Contains(b.Genre, category) || (category == "Fiction" && b.Genre == "Historical Fiction") {
			out = append(out, b)
		}
	}
	return out
}

// Seed returns the curated inventory. IDs are stable literals so carts and
// links survive restarts.
func Seed() []domain.Book {
	return []domain.Book{
		{
			ID:            "1",
			Title:         "The Midnight Library",
			Author:        "Matt Haig",
			CoverURL:      "https://picsum.photos/seed/midnight/300/450",
			Price:         13.99,
			OriginalPrice: 26.00,
			Rating:        4.2,
			Description:   "Between life and death there is a library, and within that library, the shelves go on forever. Every book provides a chance to try another life you could have lived.",
			Genre:         "Fiction",
			Condition:     domain.ConditionVeryGood,
			Points:        69,
			IsBestSeller:  true,
		},
		{
			ID:            "2",
			Title:         "Project Hail Mary",
			Author:        "Andy Weir",
			CoverURL:      "https://picsum.photos/seed/hailmary/300/450",
			Price:         16.50,
			OriginalPrice: 28.99,
			Rating:        4.8,
			Description:   "Ryland Grace is the sole survivor on a desperate, last-chance mission. If he fails, humanity and the earth itself will perish.",
			Genre:         "Sci-Fi",
			Condition:     domain.ConditionLikeNew,
			Points:        82,
			IsBestSeller:  true,
		},
		{
			ID:            "3",
			Title:         "Educated",
			Author:        "Tara Westover",
			CoverURL:      "https://picsum.photos/seed/educated/300/450",
			Price:         14.25,
			OriginalPrice: 28.00,
			Rating:        4.6,
			Description:   "Born to survivalists in the mountains of Idaho, Tara Westover was seventeen the first time she set foot in a classroom.",
			Genre:         "Non-Fiction",
			Condition:     domain.ConditionGood,
			Points:        71,
			IsBestSeller:  false,
		},
		{
			ID:            "4",
			Title:         "Dune",
			Author:        "Frank Herbert",
			CoverURL:      "https://picsum.photos/seed/dune/300/450",
			Price:         18.00,
			OriginalPrice: 18.00,
			Rating:        4.7,
			Description:   "Set on the desert planet Arrakis, Dune is the story of the boy Paul Atreides, heir to a noble family tasked with ruling an inhospitable world where the only thing of value is the 'spice' melange.",
			Genre:         "Sci-Fi",
			Condition:     domain.ConditionNew,
			Points:        90,
			IsBestSeller:  true,
		},
		{
			ID:            "5",
			Title:         "Atomic Habits",
			Author:        "James Clear",
			CoverURL:      "https://picsum.photos/seed/atomic/300/450",
			Price:         15.00,
			OriginalPrice: 27.00,
			Rating:        4.9,
			Description:   "No matter your goals, Atomic Habits offers a proven framework for improving every day.",
			Genre:         "Self-Help",
			Condition:     domain.ConditionVeryGood,
			Points:        75,
			IsBestSeller:  true,
		},
		{
			ID:            "6",
			Title:         "The Song of Achilles",
			Author:        "Madeline Miller",
			CoverURL:      "https://picsum.photos/seed/achilles/300/450",
			Price:         12.99,
			OriginalPrice: 28.00,
			Rating:        4.5,
			Description:   "Greece in the age of heroes. Patroclus, an awkward young prince, has been exiled to the court of King Peleus and his perfect son Achilles.",
			Genre:         "Historical Fiction",
			Condition:     domain.ConditionGood,
			Points:        64,
			IsBestSeller:  false,
		},
		{
			ID:            "7",
			Title:         "The Name of the Wind",
			Author:        "Patrick Rothfuss",
			CoverURL:      "https://picsum.photos/seed/kingkiller/300/450",
			Price:         8.99,
			OriginalPrice: 24.00,
			Rating:        4.5,
			Description:   "Told in Kvothe's own voice, this is the tale of the magically gifted young man who grows to be the most notorious wizard his world has ever seen.",
			Genre:         "Fantasy",
			Condition:     domain.ConditionAcceptable,
			Points:        44,
			IsBestSeller:  false,
		},
	}
}
