package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edunexus/auth-client/internal/storage"
)

func newTestManager(t *testing.T) (*Manager, *storage.MemoryStore) {
	t.Helper()

	store := storage.NewMemoryStore()

	manager, err := NewManager(store)
	require.NoError(t, err)

	return manager, store
}

// TestNewManagerRestoresState tests that the initial state reflects stored tokens.
func TestNewManagerRestoresState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		seed     map[string]string
		expected State
	}{
		{
			name:     "empty store starts logged out",
			seed:     nil,
			expected: StateLoggedOut,
		},
		{
			name:     "stored access token starts valid",
			seed:     map[string]string{accessTokenKey: "access-1"},
			expected: StateValid,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := storage.NewMemoryStore()
			for key, value := range tt.seed {
				require.NoError(t, store.Set(key, value))
			}

			manager, err := NewManager(store)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, manager.State())
		})
	}
}

// TestSetSessionKeepsRefreshToken tests that an empty rotation keeps the old refresh token.
func TestSetSessionKeepsRefreshToken(t *testing.T) {
	t.Parallel()

	manager, store := newTestManager(t)

	require.NoError(t, manager.SetSession("access-1", "refresh-1"))
	require.NoError(t, manager.SetSession("access-2", ""))

	assert.Equal(t, "access-2", manager.AccessToken())

	refreshToken, ok := store.Get(refreshTokenKey)
	require.True(t, ok)
	assert.Equal(t, "refresh-1", refreshToken)
	assert.Equal(t, StateValid, manager.State())
	assert.True(t, manager.IsAuthenticated())
}

// TestClear tests that both tokens are removed and the state drops to logged out.
func TestClear(t *testing.T) {
	t.Parallel()

	manager, store := newTestManager(t)

	require.NoError(t, manager.SetSession("access-1", "refresh-1"))
	require.NoError(t, manager.Clear())

	assert.Equal(t, StateLoggedOut, manager.State())
	assert.False(t, manager.IsAuthenticated())

	_, ok := store.Get(accessTokenKey)
	assert.False(t, ok)
	_, ok = store.Get(refreshTokenKey)
	assert.False(t, ok)
}

// TestRefreshSingleFlight tests that concurrent callers share one refresh request.
func TestRefreshSingleFlight(t *testing.T) {
	t.Parallel()

	const concurrentCallers = 8

	manager, _ := newTestManager(t)
	require.NoError(t, manager.SetSession("stale", "refresh-1"))

	var refreshCalls atomic.Int64

	release := make(chan struct{})
	manager.BindRefresh(func(_ context.Context, refreshToken string) (string, string, error) {
		refreshCalls.Add(1)
		assert.Equal(t, "refresh-1", refreshToken)
		<-release

		return "fresh", "refresh-2", nil
	})

	var waitGroup sync.WaitGroup

	results := make([]string, concurrentCallers)
	errs := make([]error, concurrentCallers)

	for i := 0; i < concurrentCallers; i++ {
		i := i

		waitGroup.Add(1)

		go func() {
			defer waitGroup.Done()

			results[i], errs[i] = manager.RefreshAccessToken(context.Background())
		}()
	}

	// Hold the refresh open until every other caller is queued behind it.
	require.Eventually(t, func() bool {
		manager.mu.Lock()
		defer manager.mu.Unlock()

		return manager.state == StateRefreshing && len(manager.waiters) == concurrentCallers-1
	}, time.Second, time.Millisecond)

	close(release)
	waitGroup.Wait()

	assert.Equal(t, int64(1), refreshCalls.Load())

	for i := 0; i < concurrentCallers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "fresh", results[i])
	}

	assert.Equal(t, StateValid, manager.State())
	assert.Equal(t, "fresh", manager.AccessToken())
}

// TestRefreshQueueReleasedInOrder tests that queued callers are released in
// arrival order. The waiter channels are unbuffered and drained by a single
// collector in arrival order, so an out-of-order release would deadlock.
func TestRefreshQueueReleasedInOrder(t *testing.T) {
	t.Parallel()

	const queuedCallers = 5

	manager, _ := newTestManager(t)
	require.NoError(t, manager.SetSession("stale", "refresh-1"))

	manager.mu.Lock()
	manager.state = StateRefreshing

	waiters := make([]chan waitResult, queuedCallers)
	for i := range waiters {
		waiters[i] = make(chan waitResult)
		manager.waiters = append(manager.waiters, waiters[i])
	}
	manager.mu.Unlock()

	done := make(chan struct{})

	go func() {
		defer close(done)

		for i, waiter := range waiters {
			result := <-waiter
			assert.NoError(t, result.err, "waiter %d", i)
			assert.Equal(t, "fresh", result.token, "waiter %d", i)
		}
	}()

	token, err := manager.completeSuccess(context.Background(), "fresh", "refresh-2")
	require.NoError(t, err)
	assert.Equal(t, "fresh", token)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("queued callers were not released in arrival order")
	}
}

// TestRefreshFailureIsTerminal tests that a failed refresh clears the session,
// rejects the queue, fires the expiry hook, and never retries on its own.
func TestRefreshFailureIsTerminal(t *testing.T) {
	t.Parallel()

	const queuedCallers = 4

	manager, store := newTestManager(t)
	require.NoError(t, manager.SetSession("stale", "refresh-1"))

	var (
		refreshCalls atomic.Int64
		expiredFired atomic.Int64
	)

	release := make(chan struct{})
	manager.BindRefresh(func(context.Context, string) (string, string, error) {
		refreshCalls.Add(1)
		<-release

		return "", "", errors.New("refresh token revoked")
	})
	manager.OnSessionExpired(func() {
		expiredFired.Add(1)
	})

	var waitGroup sync.WaitGroup

	errs := make([]error, queuedCallers)

	for i := 0; i < queuedCallers; i++ {
		i := i

		waitGroup.Add(1)

		go func() {
			defer waitGroup.Done()

			_, errs[i] = manager.RefreshAccessToken(context.Background())
		}()
	}

	require.Eventually(t, func() bool {
		manager.mu.Lock()
		defer manager.mu.Unlock()

		return manager.state == StateRefreshing && len(manager.waiters) == queuedCallers-1
	}, time.Second, time.Millisecond)

	close(release)
	waitGroup.Wait()

	for i := 0; i < queuedCallers; i++ {
		assert.ErrorIs(t, errs[i], ErrRefreshFailed, "caller %d", i)
	}

	assert.Equal(t, int64(1), refreshCalls.Load())
	assert.Equal(t, int64(1), expiredFired.Load())
	assert.Equal(t, StateLoggedOut, manager.State())

	_, ok := store.Get(accessTokenKey)
	assert.False(t, ok)
	_, ok = store.Get(refreshTokenKey)
	assert.False(t, ok)

	// The refresh token is gone, so a later attempt fails locally without
	// touching the endpoint again.
	_, err := manager.RefreshAccessToken(context.Background())
	require.ErrorIs(t, err, ErrRefreshFailed)
	require.ErrorIs(t, err, ErrNoRefreshToken)
	assert.Equal(t, int64(1), refreshCalls.Load())
}

// TestRefreshWithoutRefreshToken tests the local failure path when nothing is stored.
func TestRefreshWithoutRefreshToken(t *testing.T) {
	t.Parallel()

	manager, _ := newTestManager(t)

	var refreshCalls atomic.Int64

	manager.BindRefresh(func(context.Context, string) (string, string, error) {
		refreshCalls.Add(1)

		return "fresh", "", nil
	})

	_, err := manager.RefreshAccessToken(context.Background())
	require.ErrorIs(t, err, ErrRefreshFailed)
	require.ErrorIs(t, err, ErrNoRefreshToken)
	assert.Equal(t, int64(0), refreshCalls.Load())
}

// TestRefreshAllowsNextCycleAfterSuccess tests that the in-flight flag is released.
func TestRefreshAllowsNextCycleAfterSuccess(t *testing.T) {
	t.Parallel()

	manager, _ := newTestManager(t)
	require.NoError(t, manager.SetSession("stale", "refresh-1"))

	var refreshCalls atomic.Int64

	manager.BindRefresh(func(_ context.Context, refreshToken string) (string, string, error) {
		calls := refreshCalls.Add(1)

		if calls == 1 {
			assert.Equal(t, "refresh-1", refreshToken)

			return "fresh-1", "refresh-2", nil
		}

		assert.Equal(t, "refresh-2", refreshToken)

		return "fresh-2", "", nil
	})

	token, err := manager.RefreshAccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh-1", token)

	token, err = manager.RefreshAccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh-2", token)

	assert.Equal(t, int64(2), refreshCalls.Load())
}

// TestQueuedCallerHonorsContext tests that a queued caller can give up early.
func TestQueuedCallerHonorsContext(t *testing.T) {
	t.Parallel()

	manager, _ := newTestManager(t)
	require.NoError(t, manager.SetSession("stale", "refresh-1"))

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	manager.BindRefresh(func(context.Context, string) (string, string, error) {
		<-release

		return "fresh", "", nil
	})

	go func() {
		_, _ = manager.RefreshAccessToken(context.Background())
	}()

	require.Eventually(t, func() bool {
		return manager.State() == StateRefreshing
	}, time.Second, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := manager.RefreshAccessToken(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func signedTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

// TestClaims tests unverified payload decoding and memoization.
func TestClaims(t *testing.T) {
	t.Parallel()

	manager, _ := newTestManager(t)

	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedTestToken(t, jwt.MapClaims{
		"sub":   "john.doe@test.com",
		"name":  "John Doe",
		"role":  "STUDENT",
		"exp":   expiresAt.Unix(),
		"email": "john.doe@test.com",
	})

	require.NoError(t, manager.SetSession(token, "refresh-1"))

	claims, err := manager.Claims()
	require.NoError(t, err)

	assert.Equal(t, "john.doe@test.com", claims.Subject)
	assert.Equal(t, "john.doe@test.com", claims.Email)
	assert.Equal(t, "John Doe", claims.Name)
	assert.Equal(t, "STUDENT", claims.Role)
	assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt.Unix())
	assert.Positive(t, claims.ExpiresIn())

	cached, err := manager.Claims()
	require.NoError(t, err)
	assert.Same(t, claims, cached)
}

// TestClaimsEmailFallsBackToSubject tests the fallback when no email claim exists.
func TestClaimsEmailFallsBackToSubject(t *testing.T) {
	t.Parallel()

	manager, _ := newTestManager(t)

	token := signedTestToken(t, jwt.MapClaims{"sub": "john.doe@test.com"})
	require.NoError(t, manager.SetSession(token, ""))

	claims, err := manager.Claims()
	require.NoError(t, err)
	assert.Equal(t, "john.doe@test.com", claims.Email)
	assert.True(t, claims.ExpiresAt.IsZero())
	assert.Zero(t, claims.ExpiresIn())
}

// TestClaimsErrors tests the failure paths of claim decoding.
func TestClaimsErrors(t *testing.T) {
	t.Parallel()

	t.Run("logged out", func(t *testing.T) {
		t.Parallel()

		manager, _ := newTestManager(t)

		_, err := manager.Claims()
		require.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("opaque token", func(t *testing.T) {
		t.Parallel()

		manager, _ := newTestManager(t)
		require.NoError(t, manager.SetSession("not-a-jwt", ""))

		_, err := manager.Claims()
		require.Error(t, err)
	})
}
