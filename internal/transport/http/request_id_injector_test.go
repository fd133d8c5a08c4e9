package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticIDProvider is a hand-written RequestIDProvider for tests.
type staticIDProvider struct {
	id    string
	calls int
}

func (p *staticIDProvider) RequestID() string {
	p.calls++

	return p.id
}

// TestRequestIDInjector_InjectsWhenMissing tests injection of a missing request ID.
func TestRequestIDInjector_InjectsWhenMissing(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-id-1", r.Header.Get(RequestIDHeader))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	provider := &staticIDProvider{id: "test-id-1"}
	injector := NewRequestIDInjector(http.DefaultTransport, provider)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, http.NoBody)
	require.NoError(t, err)

	resp, err := injector.RoundTrip(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, provider.calls)
}

// TestRequestIDInjector_KeepsExistingID tests that an existing request ID is preserved.
func TestRequestIDInjector_KeepsExistingID(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "caller-id", r.Header.Get(RequestIDHeader))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	provider := &staticIDProvider{id: "test-id-1"}
	injector := NewRequestIDInjector(http.DefaultTransport, provider)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, http.NoBody)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, "caller-id")

	resp, err := injector.RoundTrip(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, provider.calls)
}

// TestUUIDProvider tests that generated identifiers are unique and non-empty.
func TestUUIDProvider(t *testing.T) {
	t.Parallel()

	provider := NewUUIDProvider()

	first := provider.RequestID()
	second := provider.RequestID()

	assert.NotEmpty(t, first)
	assert.NotEmpty(t, second)
	assert.NotEqual(t, first, second)
}
