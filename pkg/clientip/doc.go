// Package clientip extracts the best-effort client address from an HTTP
// request, looking through common proxy headers before falling back to the
// connection's remote address.
//
// The result is advisory: forwarded headers are spoofable by clients talking
// to an origin that is not behind the proxies that set them. Callers that
// store or display the address should treat it as an opaque string.
package clientip
