package middleware

import (
	"net/http"
	"net/url"
	"path"
	"strings"
)

// RequireAuth guards admin-only screens: unauthenticated visitors are
// redirected to the login path with a sanitized return target. The session
// itself is attached by the Session middleware, which must run first.
func RequireAuth(loginPath string) func(http.Handler) http.Handler {
	if loginPath == "" {
		loginPath = "/admin-login"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := SessionFromContext(r.Context())
			if !sess.Authenticated() {
				http.Redirect(w, r, loginURL(loginPath, r), http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func loginURL(loginPath string, r *http.Request) string {
	target := r.URL.Path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	next := SanitizeNext(target)
	if next == "" {
		return loginPath
	}
	q := url.Values{}
	q.Set("next", next)
	return loginPath + "?" + q.Encode()
}

// SanitizeNext accepts only local paths as post-login redirect targets so the
// login flow cannot be turned into an open redirect.
func SanitizeNext(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if parsed.Scheme != "" || parsed.Host != "" {
		return ""
	}

	pathValue := parsed.Path
	if pathValue == "" {
		pathValue = "/"
	}
	unescaped, err := url.PathUnescape(pathValue)
	if err != nil {
		return ""
	}
	if strings.Contains(unescaped, "\\") {
		return ""
	}

	cleaned := path.Clean(unescaped)
	if !strings.HasPrefix(cleaned, "/") {
		cleaned = "/" + cleaned
	}
	if strings.HasPrefix(cleaned, "//") {
		return ""
	}

	target := cleaned
	if parsed.RawQuery != "" {
		target += "?" + parsed.RawQuery
	}
	return target
}
