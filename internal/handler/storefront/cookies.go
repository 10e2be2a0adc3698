package storefront

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/dukerupert/novella/internal/cookie"
)

// sessionID returns the shopper's session ID, or "" if none is set.
func sessionID(r *http.Request) string {
	return cookie.Get(r, cookie.SessionCookieName)
}

// ensureSession returns the shopper's session ID, minting and setting a new
// one when the request carries no session cookie. Handlers that mutate state
// call this; read-only handlers just peek with sessionID.
func ensureSession(w http.ResponseWriter, r *http.Request, cookies *cookie.Config) string {
	if id := sessionID(r); id != "" {
		return id
	}
	id := uuid.New().String()
	cookies.SetSession(w, id)
	return id
}
