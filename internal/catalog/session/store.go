// Package session persists the admin's authentication state in a signed
// (and optionally encrypted) cookie so a page reload restores the session
// without a network call.
package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

const (
	defaultCookieName = "catalog_session"
	defaultCookiePath = "/"
)

// Session is the full persisted payload: an opaque bearer token and the
// email it was issued for. Token and email are only ever written together.
type Session struct {
	Token string `json:"token"`
	Email string `json:"email,omitempty"`
}

// Authenticated reports whether a token is present. The token is never
// inspected or expired client-side; a stale token simply surfaces as a
// failed upstream request.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Config controls cookie encoding for the store.
type Config struct {
	CookieName   string
	HashKey      []byte
	BlockKey     []byte
	CookiePath   string
	CookieSecure bool
}

// Store encodes sessions into a cookie via securecookie.
type Store struct {
	cfg   Config
	codec *securecookie.SecureCookie
}

// NewStore constructs a Store. The hash key is required; a block key
// additionally enables encryption of the cookie payload.
func NewStore(cfg Config) (*Store, error) {
	if len(cfg.HashKey) == 0 {
		return nil, fmt.Errorf("session: hash key is required")
	}
	if cfg.CookieName == "" {
		cfg.CookieName = defaultCookieName
	}
	if cfg.CookiePath == "" {
		cfg.CookiePath = defaultCookiePath
	}

	codec := securecookie.New(cfg.HashKey, cfg.BlockKey)
	codec.SetSerializer(securecookie.JSONEncoder{})

	return &Store{cfg: cfg, codec: codec}, nil
}

// Load returns the session carried by the request. A missing or undecodable
// cookie yields the empty (unauthenticated) session; callers never need to
// branch on an error.
func (st *Store) Load(r *http.Request) Session {
	cookie, err := r.Cookie(st.cfg.CookieName)
	if err != nil {
		return Session{}
	}
	var sess Session
	if err := st.codec.Decode(st.cfg.CookieName, cookie.Value, &sess); err != nil {
		return Session{}
	}
	return sess
}

// Save persists the session to the response. Saving an empty session clears
// the cookie, so login and logout both go through here.
func (st *Store) Save(w http.ResponseWriter, sess Session) error {
	if !sess.Authenticated() {
		st.Clear(w)
		return nil
	}

	encoded, err := st.codec.Encode(st.cfg.CookieName, sess)
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     st.cfg.CookieName,
		Value:    encoded,
		Path:     st.cfg.CookiePath,
		Secure:   st.cfg.CookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear removes the session cookie immediately.
func (st *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     st.cfg.CookieName,
		Value:    "",
		Path:     st.cfg.CookiePath,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   st.cfg.CookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
