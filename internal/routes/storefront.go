// Package routes wires handlers onto the router.
package routes

import (
	"github.com/dukerupert/novella/internal/handler/storefront"
	"github.com/dukerupert/novella/internal/router"
)

// StorefrontDeps carries the handlers the storefront routes need.
type StorefrontDeps struct {
	Books  *storefront.BookHandler
	Cart   *storefront.CartHandler
	Search *storefront.SearchHandler
	Vibe   *storefront.VibeHandler

	// SearchLimiter throttles search submissions, which fan out to the
	// recommendation model. Nil disables throttling (tests).
	SearchLimiter router.Middleware
}

// Storefront registers the shopper-facing API routes.
func Storefront(r *router.Router, deps StorefrontDeps) {
	// Catalog
	r.Get("/api/books", deps.Books.List)
	r.Get("/api/books/{id}", deps.Books.Detail)
	r.Get("/api/categories", deps.Books.Categories)

	// Cart
	r.Get("/api/cart", deps.Cart.View)
	r.Post("/api/cart/add", deps.Cart.Add)
	r.Post("/api/cart/remove", deps.Cart.Remove)
	r.Post("/api/checkout", deps.Cart.Checkout)

	// AI search
	if deps.SearchLimiter != nil {
		r.Post("/api/search", deps.Search.Submit, deps.SearchLimiter)
	} else {
		r.Post("/api/search", deps.Search.Submit)
	}
	r.Get("/api/search", deps.Search.State)
	r.Delete("/api/search", deps.Search.Close)

	// Vibe descriptions
	r.Post("/api/books/{id}/vibe", deps.Vibe.Select)
	r.Get("/api/vibe", deps.Vibe.State)
	r.Delete("/api/vibe", deps.Vibe.Close)
}
