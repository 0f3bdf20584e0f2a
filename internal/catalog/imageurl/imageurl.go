// Package imageurl decides whether admin-supplied image URLs are safe to
// render and whether they may go through the image optimization pipeline.
// Some hosts reject hot-linking or serve non-image content, so anything
// suspicious degrades to a local placeholder instead of breaking the page.
package imageurl

import (
	"net/url"
	"strings"
)

// Placeholder is the local fallback served whenever a remote image URL is
// missing, malformed, or denied.
const Placeholder = "/placeholder-image.jpg"

// Hosts known to serve broken or placeholder content when hot-linked.
var deniedHosts = []string{
	"placeimg.com",
	"example.com",
	"dummyimage.com",
	"laravelpoint.com",
	"via.placeholder.com",
}

// Hosts trusted to work with the optimization pipeline.
var trustedHosts = []string{
	"i.imgur.com",
	"images.unsplash.com",
	"picsum.photos",
}

// Sanitize returns raw unchanged when it parses as a URL whose hostname is
// not deny-listed; everything else maps to Placeholder. It never panics on
// malformed input.
func Sanitize(raw string) string {
	if raw == "" {
		return Placeholder
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Hostname() == "" {
		return Placeholder
	}
	if matchesHost(parsed.Hostname(), deniedHosts) {
		return Placeholder
	}
	return raw
}

// CanOptimize reports whether the URL's host is on the trusted list. Unlisted
// hosts are assumed unsupported; parse failures are never optimizable.
func CanOptimize(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return matchesHost(parsed.Hostname(), trustedHosts)
}

// IsExternal reports whether the URL points outside the local host.
func IsExternal(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	host := parsed.Hostname()
	if host == "" {
		return false
	}
	return !strings.Contains(host, "localhost") && !strings.Contains(host, "127.0.0.1")
}

// Valid reports whether raw parses as an absolute URL with a host. Used by
// form validation before a URL is accepted into an image list.
func Valid(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}

func matchesHost(hostname string, list []string) bool {
	for _, candidate := range list {
		if strings.Contains(hostname, candidate) {
			return true
		}
	}
	return false
}
