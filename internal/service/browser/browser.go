package browser

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"

	"github.com/edunexus/auth-client/internal/logger"
)

// initBrowser launches a visible Chrome with a throwaway profile and opens a
// stealth page in it. The profile is temporary so a stale web session never
// leaks into the login flow.
func (s *ServiceImpl) initBrowser(ctx context.Context) error {
	logger.Debug(ctx, "Initializing browser")

	tempDir, err := os.MkdirTemp("", "auth-client-login-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary user data directory: %w", err)
	}

	logger.Debugf(ctx, "Using temporary profile directory: %s", tempDir)

	s.tempDir = tempDir

	// Prefer the system Chrome; fall back to downloading Chromium.
	chromePath, exists := launcher.LookPath()

	newLauncher := launcher.New().
		// The user has to see the browser to log in.
		Headless(false).
		UserDataDir(tempDir)

	if exists {
		logger.Debugf(ctx, "Using system Chrome installation at: %s", chromePath)

		newLauncher = newLauncher.Bin(chromePath)
	} else {
		logger.Debug(ctx, "System Chrome not found, downloading Chromium")
	}

	launcherURL, err := newLauncher.Launch()
	if err != nil {
		return fmt.Errorf("failed to launch browser: %w", err)
	}

	logger.Debugf(ctx, "Browser launched at: %s", launcherURL)

	browserInstance := rod.New().ControlURL(launcherURL)

	if logger.IsDebugLevel() {
		browserInstance = browserInstance.
			Trace(true).
			SlowMotion(browserSlowMotionDelay)
	}

	if err = browserInstance.Connect(); err != nil {
		return fmt.Errorf("failed to connect to browser: %w", err)
	}

	s.browser = browserInstance

	page, err := stealth.Page(s.browser)
	if err != nil {
		return fmt.Errorf("failed to open page: %w", err)
	}

	s.page = page

	logger.Debug(ctx, "Browser initialized successfully")

	return nil
}

// isBrowserAlive checks if the browser is still running.
func (s *ServiceImpl) isBrowserAlive(ctx context.Context) bool {
	defer func() {
		// Page access panics once the browser process is gone.
		if r := recover(); r != nil {
			logger.Debugf(ctx, "Browser panic recovered: %v", r)
		}
	}()

	_, err := s.page.Info()

	return err == nil
}

// cleanup closes the browser and removes the temporary profile.
func (s *ServiceImpl) cleanup(ctx context.Context) {
	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			logger.Debugf(ctx, "Browser close error (expected): %v", err)
		}
	}

	if s.tempDir != "" {
		// Give Chrome a moment to release file locks.
		time.Sleep(browserCleanupDelay)

		if err := os.RemoveAll(s.tempDir); err != nil {
			logger.Debugf(ctx, "Could not clean up temp directory %s: %v", s.tempDir, err)
		}
	}
}
