package http

import (
	"context"
	"io"
	"net/http"

	"github.com/edunexus/auth-client/internal/logger"
)

// TokenSource supplies the current access token and coordinates its refresh.
// The session manager implements it; the transport never inspects tokens.
type TokenSource interface {
	// AccessToken returns the currently stored access token, or "" when logged out.
	AccessToken() string
	// RefreshAccessToken obtains a fresh access token, collapsing concurrent
	// callers into a single refresh. A returned error is terminal for the session.
	RefreshAccessToken(ctx context.Context) (string, error)
}

type retryDisabledKey struct{}

// WithAuthRetryDisabled marks the request context so that a 401 response is
// returned as-is instead of triggering a token refresh. Used for the public
// endpoints (login, register, refresh itself), where a 401 is a final answer.
func WithAuthRetryDisabled(ctx context.Context) context.Context {
	return context.WithValue(ctx, retryDisabledKey{}, true)
}

func isAuthRetryDisabled(ctx context.Context) bool {
	disabled, _ := ctx.Value(retryDisabledKey{}).(bool)

	return disabled
}

// BearerTransport is a custom http.RoundTripper that attaches the stored
// access token to outgoing requests and transparently recovers from its
// expiry. On the first 401 of a request it asks the token source for a
// refreshed token and retries the request exactly once; the retried request
// goes straight to the underlying transport, so a second 401 is final.
type BearerTransport struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// tokens supplies and refreshes the access token.
	tokens TokenSource
}

// NewBearerTransport creates and returns a new instance of BearerTransport.
func NewBearerTransport(next http.RoundTripper, tokens TokenSource) http.RoundTripper {
	return &BearerTransport{
		next:   next,
		tokens: tokens,
	}
}

// RoundTrip executes a single HTTP transaction with credential attachment
// and at most one refresh-driven retry. It implements http.RoundTripper.
func (t *BearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	token := t.tokens.AccessToken()
	if token != "" {
		req.Header.Set(AuthorizationHeader, bearerPrefix+token)
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	ctx := req.Context()

	// A 401 on a public endpoint, or on a request that never carried
	// credentials, cannot be fixed by refreshing.
	if isAuthRetryDisabled(ctx) || token == "" {
		return resp, nil
	}

	// Requests with a non-replayable body cannot be retried.
	if req.Body != nil && req.GetBody == nil {
		return resp, nil
	}

	logger.Debugf(ctx, "Received 401 for %s %s, refreshing access token", req.Method, req.URL.Path)

	// The original response is superseded by the retry.
	drainAndClose(resp.Body)

	newToken, err := t.tokens.RefreshAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	retryReq := req.Clone(ctx)

	if req.GetBody != nil {
		body, bodyErr := req.GetBody()
		if bodyErr != nil {
			return nil, bodyErr
		}

		retryReq.Body = body
	}

	retryReq.Header.Set(AuthorizationHeader, bearerPrefix+newToken)

	return t.next.RoundTrip(retryReq)
}

func drainAndClose(body io.ReadCloser) {
	if body == nil {
		return
	}

	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
