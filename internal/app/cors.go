package app

import (
	"net/url"
	"strings"
)

// originHost returns the "host[:port]" portion of an origin URL. Bare
// hostnames pass through unchanged.
func originHost(origin string) string {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return origin
	}
	return u.Host
}

// matchOrigin reports whether host matches one allowed-origin pattern.
// "*.example.com" matches any subdomain; "localhost:*" matches any port.
func matchOrigin(pattern, host string) bool {
	switch {
	case pattern == host:
		return true
	case strings.HasPrefix(pattern, "*."):
		return strings.HasSuffix(host, pattern[1:])
	case strings.HasSuffix(pattern, ":*"):
		return strings.HasPrefix(host, pattern[:len(pattern)-1])
	}
	return false
}
