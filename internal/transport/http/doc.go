// Package http provides custom HTTP transport utilities for the auth client:
// request/response debug logging, request-ID injection, and bearer-token
// attachment with a single transparent retry after a token refresh.
// The decorators compose as http.RoundTripper layers around the default transport.
package http
