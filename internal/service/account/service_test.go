package account

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/edunexus/auth-client/internal/client/authapi"
	mock_authapi_client "github.com/edunexus/auth-client/internal/client/authapi/mocks"
	"github.com/edunexus/auth-client/internal/config"
	"github.com/edunexus/auth-client/internal/session"
	"github.com/edunexus/auth-client/internal/storage"
)

type testServiceSetup struct {
	service *Service
	api     *mock_authapi_client.MockClient
	session *session.Manager
	cfg     *config.Config
	saved   int
}

func newTestService(t *testing.T) *testServiceSetup {
	t.Helper()

	mockCtrl := gomock.NewController(t)

	setup := &testServiceSetup{
		api: mock_authapi_client.NewMockClient(mockCtrl),
		cfg: &config.Config{ParsedResendCooldown: time.Hour},
	}

	sessionManager, err := session.NewManager(storage.NewMemoryStore())
	require.NoError(t, err)

	setup.session = sessionManager
	setup.service = NewService(setup.cfg, setup.api, sessionManager)
	setup.service.saveConfig = func(*config.Config) error {
		setup.saved++

		return nil
	}

	return setup
}

// TestLoginStoresSession tests that a successful login starts the session.
func TestLoginStoresSession(t *testing.T) {
	t.Parallel()

	setup := newTestService(t)

	setup.api.EXPECT().
		Login(gomock.Any(), &authapi.LoginRequest{Email: "john.doe@test.com", Password: "Secret@123"}).
		Return(&authapi.AuthResponse{AccessToken: "access-1", RefreshToken: "refresh-1"}, nil)

	response, err := setup.service.Login(context.Background(), "john.doe@test.com", "Secret@123", false)
	require.NoError(t, err)

	assert.Equal(t, "access-1", response.AccessToken)
	assert.True(t, setup.session.IsAuthenticated())
	assert.Equal(t, session.StateValid, setup.session.State())
	assert.Zero(t, setup.saved)
}

// TestLoginRemembersEmail tests the remembered-email persistence both ways.
func TestLoginRemembersEmail(t *testing.T) {
	t.Parallel()

	t.Run("remember persists the email", func(t *testing.T) {
		t.Parallel()

		setup := newTestService(t)

		setup.api.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(&authapi.AuthResponse{AccessToken: "access-1"}, nil)

		_, err := setup.service.Login(context.Background(), "john.doe@test.com", "Secret@123", true)
		require.NoError(t, err)

		assert.Equal(t, "john.doe@test.com", setup.service.RememberedEmail())
		assert.Equal(t, 1, setup.saved)
	})

	t.Run("unchecked remember forgets the same email", func(t *testing.T) {
		t.Parallel()

		setup := newTestService(t)
		setup.cfg.RememberedEmail = "john.doe@test.com"

		setup.api.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(&authapi.AuthResponse{AccessToken: "access-1"}, nil)

		_, err := setup.service.Login(context.Background(), "john.doe@test.com", "Secret@123", false)
		require.NoError(t, err)

		assert.Empty(t, setup.service.RememberedEmail())
		assert.Equal(t, 1, setup.saved)
	})

	t.Run("someone else's email is left alone", func(t *testing.T) {
		t.Parallel()

		setup := newTestService(t)
		setup.cfg.RememberedEmail = "jane.doe@test.com"

		setup.api.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(&authapi.AuthResponse{AccessToken: "access-1"}, nil)

		_, err := setup.service.Login(context.Background(), "john.doe@test.com", "Secret@123", false)
		require.NoError(t, err)

		assert.Equal(t, "jane.doe@test.com", setup.service.RememberedEmail())
		assert.Zero(t, setup.saved)
	})
}

// TestLoginFailureLeavesSessionClean tests that a rejected login stores nothing.
func TestLoginFailureLeavesSessionClean(t *testing.T) {
	t.Parallel()

	setup := newTestService(t)

	apiError := authapi.NewError(http.StatusUnauthorized, "Invalid email or password", nil)
	setup.api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, apiError)

	_, err := setup.service.Login(context.Background(), "john.doe@test.com", "wrong", true)
	require.ErrorIs(t, err, authapi.ErrInvalidCredentials)

	assert.False(t, setup.session.IsAuthenticated())
	assert.Zero(t, setup.saved)
}

// TestLogoutIsBestEffort tests that the local session clears even when the
// server call fails.
func TestLogoutIsBestEffort(t *testing.T) {
	t.Parallel()

	setup := newTestService(t)
	require.NoError(t, setup.session.SetSession("access-1", "refresh-1"))

	setup.api.EXPECT().Logout(gomock.Any()).Return(assert.AnError)

	require.NoError(t, setup.service.Logout(context.Background()))
	assert.False(t, setup.session.IsAuthenticated())
}

// TestLogoutWhileLoggedOut tests that logout without a session skips the server.
func TestLogoutWhileLoggedOut(t *testing.T) {
	t.Parallel()

	setup := newTestService(t)

	require.NoError(t, setup.service.Logout(context.Background()))
	assert.False(t, setup.session.IsAuthenticated())
}

// TestActivate tests that activation starts a session only when tokens are issued.
func TestActivate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		response      *authapi.AuthResponse
		authenticated bool
	}{
		{
			name:          "activation with tokens logs in",
			response:      &authapi.AuthResponse{AccessToken: "access-1", RefreshToken: "refresh-1"},
			authenticated: true,
		},
		{
			name:          "activation with message only stays logged out",
			response:      &authapi.AuthResponse{Message: "Account activated. You can now log in."},
			authenticated: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			setup := newTestService(t)

			setup.api.EXPECT().
				ActivateAccount(gomock.Any(), &authapi.ActivateAccountRequest{ActivationCode: "code-1"}).
				Return(tt.response, nil)

			response, err := setup.service.Activate(context.Background(), "code-1")
			require.NoError(t, err)
			assert.Equal(t, tt.response, response)
			assert.Equal(t, tt.authenticated, setup.session.IsAuthenticated())
		})
	}
}

// TestResendActivationCooldown tests the rate limit on activation resends.
func TestResendActivationCooldown(t *testing.T) {
	t.Parallel()

	setup := newTestService(t)

	setup.api.EXPECT().
		ResendActivationCode(gomock.Any(), &authapi.ResendActivationCodeRequest{Email: "john.doe@test.com"}).
		Return(&authapi.AuthResponse{Message: "Code sent"}, nil)

	ctx := context.Background()

	_, err := setup.service.ResendActivation(ctx, "john.doe@test.com")
	require.NoError(t, err)
	assert.Positive(t, setup.service.CooldownRemaining())

	// The second attempt is rejected locally; the mock expects one call only.
	_, err = setup.service.ResendActivation(ctx, "john.doe@test.com")
	require.ErrorIs(t, err, ErrResendCooldown)
}

// TestResendActivationFailureDoesNotStartCooldown tests that a failed resend
// can be retried immediately.
func TestResendActivationFailureDoesNotStartCooldown(t *testing.T) {
	t.Parallel()

	setup := newTestService(t)

	setup.api.EXPECT().
		ResendActivationCode(gomock.Any(), gomock.Any()).
		Return(nil, authapi.NewError(http.StatusNotFound, "", nil))

	_, err := setup.service.ResendActivation(context.Background(), "john.doe@test.com")
	require.ErrorIs(t, err, authapi.ErrAccountNotFound)
	assert.Zero(t, setup.service.CooldownRemaining())
}

// TestProfileRequiresSession tests the logged-out guard on profile access.
func TestProfileRequiresSession(t *testing.T) {
	t.Parallel()

	setup := newTestService(t)

	_, err := setup.service.Profile(context.Background())
	require.ErrorIs(t, err, session.ErrNotAuthenticated)

	_, err = setup.service.UpdateProfile(context.Background(), &authapi.UpdateProfileRequest{Name: "John"})
	require.ErrorIs(t, err, session.ErrNotAuthenticated)
}

func testAccessToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

// TestStatus tests the local and server-checked status reports.
func TestStatus(t *testing.T) {
	t.Parallel()

	t.Run("logged out", func(t *testing.T) {
		t.Parallel()

		setup := newTestService(t)

		status, err := setup.service.Status(context.Background(), false)
		require.NoError(t, err)
		assert.False(t, status.Authenticated)
		assert.Equal(t, session.StateLoggedOut, status.State)
	})

	t.Run("local only", func(t *testing.T) {
		t.Parallel()

		setup := newTestService(t)

		expiresAt := time.Now().Add(time.Hour)
		token := testAccessToken(t, jwt.MapClaims{
			"sub":  "john.doe@test.com",
			"name": "John Doe",
			"role": "STUDENT",
			"exp":  expiresAt.Unix(),
		})
		require.NoError(t, setup.session.SetSession(token, "refresh-1"))

		status, err := setup.service.Status(context.Background(), false)
		require.NoError(t, err)
		assert.True(t, status.Authenticated)
		assert.Equal(t, "john.doe@test.com", status.Email)
		assert.Equal(t, "John Doe", status.Name)
		assert.Equal(t, "STUDENT", status.Role)
		assert.Equal(t, expiresAt.Unix(), status.ExpiresAt.Unix())
		assert.False(t, status.ServerChecked)
	})

	t.Run("server checked", func(t *testing.T) {
		t.Parallel()

		setup := newTestService(t)

		token := testAccessToken(t, jwt.MapClaims{"sub": "john.doe@test.com"})
		require.NoError(t, setup.session.SetSession(token, "refresh-1"))

		setup.api.EXPECT().
			ValidateToken(gomock.Any()).
			Return(&authapi.TokenValidation{Valid: true, Username: "john.doe@test.com"}, nil)

		status, err := setup.service.Status(context.Background(), true)
		require.NoError(t, err)
		assert.True(t, status.ServerChecked)
		assert.True(t, status.ServerValid)
	})
}

// TestPasswordFlowsDelegate tests the pass-through recovery and change calls.
func TestPasswordFlowsDelegate(t *testing.T) {
	t.Parallel()

	setup := newTestService(t)
	ctx := context.Background()

	setup.api.EXPECT().
		ForgotPassword(ctx, &authapi.ForgotPasswordRequest{Email: "john.doe@test.com"}).
		Return(&authapi.AuthResponse{Message: "Reset code sent"}, nil)

	setup.api.EXPECT().
		ResetPassword(ctx, &authapi.ResetPasswordRequest{
			ResetCode: "reset-1", Password: "New@12345", ConfirmPassword: "New@12345",
		}).
		Return(&authapi.AuthResponse{Message: "Password reset"}, nil)

	setup.api.EXPECT().
		ChangePassword(ctx, &authapi.ChangePasswordRequest{
			CurrentPassword: "Old@12345", NewPassword: "New@12345", ConfirmPassword: "New@12345",
		}).
		Return(&authapi.AuthResponse{Message: "Password changed"}, nil)

	_, err := setup.service.ForgotPassword(ctx, "john.doe@test.com")
	require.NoError(t, err)

	_, err = setup.service.ResetPassword(ctx, "reset-1", "New@12345", "New@12345")
	require.NoError(t, err)

	_, err = setup.service.ChangePassword(ctx, "Old@12345", "New@12345", "New@12345")
	require.NoError(t, err)
}
