package http

// Header names set or consumed by the transport decorators.
const (
	// AuthorizationHeader carries the bearer access token.
	AuthorizationHeader = "Authorization"

	// RequestIDHeader correlates a client request with server-side logs.
	RequestIDHeader = "X-Request-ID"

	// bearerPrefix is the scheme prefix of the Authorization header value.
	bearerPrefix = "Bearer "
)
