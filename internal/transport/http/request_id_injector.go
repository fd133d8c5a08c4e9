package http

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestIDProvider supplies correlation identifiers for outgoing requests.
type RequestIDProvider interface {
	// RequestID returns a fresh identifier.
	RequestID() string
}

// UUIDProvider is a RequestIDProvider backed by random UUIDs.
type UUIDProvider struct{}

// NewUUIDProvider creates a UUID-backed request-ID provider.
func NewUUIDProvider() *UUIDProvider {
	return &UUIDProvider{}
}

// RequestID returns a new random UUID string.
func (p *UUIDProvider) RequestID() string {
	return uuid.NewString()
}

// RequestIDInjector is a custom http.RoundTripper that injects an X-Request-ID
// header into HTTP requests. It wraps another http.RoundTripper and ensures
// every request carries a correlation identifier.
type RequestIDInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// provider supplies the identifiers to inject.
	provider RequestIDProvider
}

// NewRequestIDInjector creates and returns a new instance of RequestIDInjector.
func NewRequestIDInjector(next http.RoundTripper, provider RequestIDProvider) http.RoundTripper {
	return &RequestIDInjector{
		next:     next,
		provider: provider,
	}
}

// RoundTrip executes a single HTTP transaction and injects a request ID if it is missing.
// It implements the http.RoundTripper interface.
func (t *RequestIDInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(RequestIDHeader) == "" {
		req.Header.Set(RequestIDHeader, t.provider.RequestID())
	}

	return t.next.RoundTrip(req)
}
