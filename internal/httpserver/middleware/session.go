package middleware

import (
	"context"
	"net/http"

	appsession "bitechx.com/catalog/internal/catalog/session"
)

type sessionContextKey string

const requestSessionKey sessionContextKey = "catalog.session"

// Session attaches the decoded session to the request context. Handlers that
// change the session persist it themselves through the store; reads stay
// synchronous and never touch the network.
func Session(store *appsession.Store) func(http.Handler) http.Handler {
	if store == nil {
		panic("session store is required")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := store.Load(r)
			ctx := context.WithValue(r.Context(), requestSessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext retrieves the session attached to this request. Absent
// middleware it returns the empty (unauthenticated) session.
func SessionFromContext(ctx context.Context) appsession.Session {
	if ctx == nil {
		return appsession.Session{}
	}
	sess, _ := ctx.Value(requestSessionKey).(appsession.Session)
	return sess
}
