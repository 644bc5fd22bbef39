package useragent

import (
	"net/http"

	"github.com/dmitrymomot/uakit/pkg/clientip"
)

// Middleware creates HTTP middleware that classifies the request's
// User-Agent header, pairs it with the best-effort client address, and
// stores the result in the request context. Requests are passed through
// unclassified when the rule table failed to initialize.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua, err := Parse(r.UserAgent(), clientip.FromRequest(r))
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		ctx := SetUserAgentToContext(r.Context(), ua)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
