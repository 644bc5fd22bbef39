package useragent

import "context"

// userAgentContextKey is the key for storing the parsed user agent in context
type userAgentContextKey struct{}

// SetUserAgentToContext stores the parsed user agent in context
func SetUserAgentToContext(ctx context.Context, ua UserAgent) context.Context {
	return context.WithValue(ctx, userAgentContextKey{}, ua)
}

// GetUserAgentFromContext retrieves the parsed user agent from context.
// A zero UserAgent is returned when the middleware did not run.
func GetUserAgentFromContext(ctx context.Context) UserAgent {
	ua, _ := ctx.Value(userAgentContextKey{}).(UserAgent)
	return ua
}
