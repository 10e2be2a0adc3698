// Package cookie provides helpers for the anonymous browsing session cookie.
// The storefront has no accounts; the session cookie is the only identity a
// shopper carries, and the cart, search, and vibe state all hang off it.
package cookie

import (
	"net/http"
)

// SessionCookieName identifies the anonymous shopper session.
const SessionCookieName = "novella_session"

// SessionMaxAge is how long the session cookie lives (30 days).
const SessionMaxAge = 30 * 24 * 60 * 60

// Config holds cookie configuration.
type Config struct {
	// Secure determines whether cookies require HTTPS.
	// Should be true in production, false in development.
	Secure bool
}

// NewConfig creates a new cookie configuration.
func NewConfig(secure bool) *Config {
	return &Config{Secure: secure}
}

// SetSession sets the session cookie.
//
// The cookie is HttpOnly and SameSite=Lax so it rides along on top-level
// navigations but is not readable from scripts.
func (c *Config) SetSession(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   SessionMaxAge,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSession removes the session cookie by setting MaxAge to -1.
func (c *Config) ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Get retrieves a cookie value from the request.
// Returns empty string if cookie not found.
func Get(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
