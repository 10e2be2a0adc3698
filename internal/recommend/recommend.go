// Package recommend adapts an external generative text service into the
// storefront's book domain. It covers two outbound calls: a schema-constrained
// recommendation request that yields purchasable listings, and a free-form
// one-sentence "vibe" description for the detail view.
//
// Both adapters are deliberately forgiving. A failed recommendation call and
// a legitimate zero-match response both come back as an empty slice; a failed
// vibe call comes back as a fixed fallback sentence. Callers never see a
// transport error.
package recommend

// Fallback sentences for the vibe adapter. FallbackVibe covers transport
// failures; EmptyResponseVibe covers a successful call with no text.
const (
	FallbackVibe      = "A classic worth your time."
	EmptyResponseVibe = "A mysterious and engaging read."
)

// MaxResults caps one recommendation batch.
const MaxResults = 5
