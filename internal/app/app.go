package app

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/edunexus/auth-client/internal/client/authapi"
	"github.com/edunexus/auth-client/internal/config"
	"github.com/edunexus/auth-client/internal/logger"
	"github.com/edunexus/auth-client/internal/service/account"
	"github.com/edunexus/auth-client/internal/session"
	"github.com/edunexus/auth-client/internal/storage"
	http_transport "github.com/edunexus/auth-client/internal/transport/http"
)

// stateFilename is the file under the state directory holding tokens and
// registration drafts.
const stateFilename = "state.yaml"

// components holds the object graph shared by every command.
type components struct {
	cfg      *config.Config
	store    storage.Store
	session  *session.Manager
	api      authapi.Client
	accounts *account.Service
}

// newComponents builds the shared object graph: the persistent state store,
// the session manager, the HTTP client with its transport decorators, the
// API client, and the account service. The session manager and the API
// client depend on each other at runtime, so the refresh call is bound last.
func newComponents(ctx context.Context, cfg *config.Config) (*components, error) {
	store, err := storage.NewFileStore(filepath.Join(cfg.StateDir, stateFilename))
	if err != nil {
		return nil, fmt.Errorf("failed to open state store: %w", err)
	}

	sessionManager, err := session.NewManager(store)
	if err != nil {
		return nil, fmt.Errorf("failed to create session manager: %w", err)
	}

	// Innermost to outermost: dump traffic, stamp request IDs, then handle
	// bearer tokens so a post-refresh retry passes through both again.
	stack := http_transport.NewLogTransport(http.DefaultTransport, config.DefaultMaxLogLength)
	stack = http_transport.NewRequestIDInjector(stack, http_transport.NewUUIDProvider())
	stack = http_transport.NewBearerTransport(stack, sessionManager)

	httpClient := &http.Client{
		Transport: stack,
		Timeout:   cfg.ParsedRequestTimeout,
	}

	api, err := authapi.NewClient(cfg, httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	sessionManager.BindRefresh(func(ctx context.Context, refreshToken string) (string, string, error) {
		response, refreshErr := api.RefreshToken(ctx, &authapi.RefreshTokenRequest{RefreshToken: refreshToken})
		if refreshErr != nil {
			return "", "", refreshErr
		}

		return response.AccessToken, response.RefreshToken, nil
	})

	sessionManager.OnSessionExpired(func() {
		logger.Warn(ctx, "Your session has expired. Run 'auth-client login' to sign in again.")
	})

	return &components{
		cfg:      cfg,
		store:    store,
		session:  sessionManager,
		api:      api,
		accounts: account.NewService(cfg, api, sessionManager),
	}, nil
}

// mustComponents builds the shared components or exits.
func mustComponents(ctx context.Context, cfg *config.Config) *components {
	c, err := newComponents(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize: %v", err)
	}

	return c
}
