package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/edunexus/auth-client/internal/logger"
	"github.com/edunexus/auth-client/internal/storage"
)

// State describes where the session is in its token lifecycle.
type State int

// Session lifecycle states. The only legal transitions are
// LoggedOut -> Valid (login), Valid -> Expired -> Refreshing (401),
// Refreshing -> Valid (refresh succeeded) and Refreshing -> LoggedOut
// (refresh failed, terminal until the next login).
const (
	StateLoggedOut State = iota
	StateValid
	StateExpired
	StateRefreshing
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateLoggedOut:
		return "logged_out"
	case StateValid:
		return "valid"
	case StateExpired:
		return "expired"
	case StateRefreshing:
		return "refreshing"
	default:
		return "unknown"
	}
}

// Storage keys for the persisted token pair.
const (
	accessTokenKey  = "access_token"
	refreshTokenKey = "refresh_token"
)

// claimsCacheSize bounds the decoded-claims cache. A client holds one access
// token at a time, so the cache only needs room for a few recent tokens.
const claimsCacheSize = 16

// Static error definitions for better error handling.
var (
	// ErrRefreshFailed indicates that the refresh cycle failed.
	// It is terminal: the session is cleared and never refreshed again
	// until a new login stores fresh credentials.
	ErrRefreshFailed = errors.New("session refresh failed")
	// ErrNoRefreshToken indicates that no refresh token is stored.
	ErrNoRefreshToken = errors.New("no refresh token available")
	// ErrNoRefreshFunc indicates the manager was never bound to a refresh endpoint.
	ErrNoRefreshFunc = errors.New("refresh function not configured")
	// ErrNotAuthenticated indicates an operation that requires a session was
	// attempted while logged out.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// RefreshFunc exchanges a refresh token for a new token pair.
// The returned refresh token may be empty when the server does not rotate it.
type RefreshFunc func(ctx context.Context, refreshToken string) (accessToken, newRefreshToken string, err error)

// waitResult is delivered to a queued request when the in-flight refresh settles.
type waitResult struct {
	token string
	err   error
}

// Manager owns the access/refresh token pair and its lifecycle.
// It is the only component that mutates token storage. All methods are safe
// for concurrent use; at most one refresh is ever in flight, and requests
// arriving during a refresh are queued and released in arrival order.
type Manager struct {
	mu    sync.Mutex
	state State
	store storage.Store
	// refresh calls the refresh endpoint. Bound after client construction.
	refresh RefreshFunc
	// onExpired runs after a terminal refresh failure, outside the lock.
	onExpired func()
	// waiters holds queued requests in arrival order while a refresh is in flight.
	waiters []chan waitResult
	// claimsCache memoizes decoded JWT payloads keyed by token string.
	claimsCache *lru.Cache[string, *Claims]
}

// NewManager creates a session manager over the given token store.
// The initial state is derived from whether an access token is already stored.
func NewManager(store storage.Store) (*Manager, error) {
	claimsCache, err := lru.New[string, *Claims](claimsCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create claims cache: %w", err)
	}

	manager := &Manager{
		state:       StateLoggedOut,
		store:       store,
		claimsCache: claimsCache,
	}

	if token, ok := store.Get(accessTokenKey); ok && token != "" {
		manager.state = StateValid
	}

	return manager, nil
}

// BindRefresh attaches the refresh endpoint call.
// The manager and the API client reference each other at runtime
// (the client's transport consults the manager, the manager's refresh
// calls the client), so the binding happens after both exist.
func (m *Manager) BindRefresh(refresh RefreshFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.refresh = refresh
}

// OnSessionExpired registers a hook that runs once per terminal refresh
// failure, after local state is cleared. The application uses it to
// navigate back to the login entry point.
func (m *Manager) OnSessionExpired(hook func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.onExpired = hook
}

// AccessToken returns the currently stored access token, or "" when logged out.
func (m *Manager) AccessToken() string {
	token, _ := m.store.Get(accessTokenKey)

	return token
}

// IsAuthenticated reports whether an access token is currently stored.
// There is no proactive expiry check; expiry is handled reactively on 401.
func (m *Manager) IsAuthenticated() bool {
	return m.AccessToken() != ""
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// SetSession stores a new token pair and moves the session to StateValid.
// An empty refresh token keeps the previously stored one (the server does
// not always rotate it).
func (m *Manager) SetSession(accessToken, refreshToken string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Set(accessTokenKey, accessToken); err != nil {
		return fmt.Errorf("failed to persist access token: %w", err)
	}

	if refreshToken != "" {
		if err := m.store.Set(refreshTokenKey, refreshToken); err != nil {
			return fmt.Errorf("failed to persist refresh token: %w", err)
		}
	}

	m.state = StateValid

	return nil
}

// Clear removes both tokens and moves the session to StateLoggedOut.
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clearLocked()

	return nil
}

// RefreshAccessToken obtains a fresh access token, collapsing concurrent
// callers into a single refresh cycle. The first caller becomes the
// refresher; everyone else is queued and released in arrival order once the
// refresh settles. A failure is terminal: local state is cleared, every
// queued caller receives the error, and the session-expired hook fires.
func (m *Manager) RefreshAccessToken(ctx context.Context) (string, error) {
	m.mu.Lock()

	if m.state == StateRefreshing {
		// A refresh is already in flight: queue up behind it.
		waiter := make(chan waitResult, 1)
		m.waiters = append(m.waiters, waiter)
		m.mu.Unlock()

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case result := <-waiter:
			return result.token, result.err
		}
	}

	// This caller becomes the refresher.
	m.state = StateRefreshing
	refreshToken, _ := m.store.Get(refreshTokenKey)
	refresh := m.refresh
	m.mu.Unlock()

	if refresh == nil {
		return "", m.completeFailure(ctx, ErrNoRefreshFunc)
	}

	if refreshToken == "" {
		return "", m.completeFailure(ctx, ErrNoRefreshToken)
	}

	accessToken, newRefreshToken, err := refresh(ctx, refreshToken)
	if err != nil {
		return "", m.completeFailure(ctx, err)
	}

	return m.completeSuccess(ctx, accessToken, newRefreshToken)
}

// completeSuccess stores the refreshed tokens, releases every queued caller
// with the new token in arrival order, and returns it to the refresher.
func (m *Manager) completeSuccess(ctx context.Context, accessToken, newRefreshToken string) (string, error) {
	m.mu.Lock()

	if err := m.store.Set(accessTokenKey, accessToken); err != nil {
		m.mu.Unlock()

		return "", m.completeFailure(ctx, err)
	}

	if newRefreshToken != "" {
		// A failed rotation write is not terminal: the new access token is
		// already usable, the old refresh token stays on disk.
		if err := m.store.Set(refreshTokenKey, newRefreshToken); err != nil {
			logger.Warnf(ctx, "Failed to persist rotated refresh token: %v", err)
		}
	}

	m.state = StateValid
	waiters := m.waiters
	m.waiters = nil
	m.mu.Unlock()

	for _, waiter := range waiters {
		waiter <- waitResult{token: accessToken}
	}

	logger.Debugf(ctx, "Access token refreshed, released %d queued requests", len(waiters))

	return accessToken, nil
}

// completeFailure clears the session, rejects every queued caller in arrival
// order, fires the session-expired hook, and returns the terminal error.
// The refreshing flag is released on this path as well as on success.
func (m *Manager) completeFailure(ctx context.Context, cause error) error {
	err := cause
	if !errors.Is(err, ErrRefreshFailed) {
		err = fmt.Errorf("%w: %w", ErrRefreshFailed, cause)
	}

	m.mu.Lock()
	m.clearLocked()

	waiters := m.waiters
	m.waiters = nil
	onExpired := m.onExpired
	m.mu.Unlock()

	for _, waiter := range waiters {
		waiter <- waitResult{err: err}
	}

	logger.Warnf(ctx, "Session refresh failed, rejected %d queued requests: %v", len(waiters), cause)

	if onExpired != nil {
		onExpired()
	}

	return err
}

// clearLocked wipes tokens and cached claims. Callers hold m.mu.
func (m *Manager) clearLocked() {
	_ = m.store.Delete(accessTokenKey)
	_ = m.store.Delete(refreshTokenKey)
	m.claimsCache.Purge()
	m.state = StateLoggedOut
}
