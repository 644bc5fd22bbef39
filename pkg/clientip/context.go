package clientip

import "context"

// ipContextKey is the key for storing the client IP in context
type ipContextKey struct{}

// WithIP stores the client IP in context
func WithIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ipContextKey{}, ip)
}

// IPFromContext retrieves the client IP from context
func IPFromContext(ctx context.Context) string {
	ip, _ := ctx.Value(ipContextKey{}).(string)
	return ip
}
