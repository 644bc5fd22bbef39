package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Single-value proxy headers checked before X-Forwarded-For, in trust order.
var singleValueHeaders = []string{
	"CF-Connecting-IP",
	"True-Client-IP",
	"X-Real-IP",
}

// FromRequest returns the best-effort client address of an HTTP request.
// Proxy headers are consulted first, then the first valid entry of
// X-Forwarded-For, then the connection's remote address. The result is a
// normalized IP string, or "" when nothing valid was found.
func FromRequest(r *http.Request) string {
	for _, header := range singleValueHeaders {
		if ip := normalize(r.Header.Get(header)); ip != "" {
			return ip
		}
	}

	// X-Forwarded-For holds a comma-separated chain; the left-most entry is
	// the original client.
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		for _, entry := range strings.Split(forwarded, ",") {
			if ip := normalize(entry); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr may already be a bare IP.
		return normalize(r.RemoteAddr)
	}
	return normalize(host)
}

// normalize validates a candidate address and returns its canonical string
// form, or "" when it is not a valid IP.
func normalize(candidate string) string {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return ""
	}
	ip := net.ParseIP(candidate)
	if ip == nil {
		return ""
	}
	return ip.String()
}
