package instagramimpl

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Davincible/goinsta/v3"
	"github.com/orgball2608/insta-extractor/internal/instagram"
)

// Login attempts to connect to Instagram, first trying to load the persisted
// session, then falling back to a single credential login. Every error
// returned here is terminal for the run; there are no retries.
func (ig *IgImpl) Login() error {
	if err := ig.reloadSession(); err == nil {
		if ig.validateSession() {
			ig.Logger.Info("Logged in using existing session")
			return nil
		}
		ig.Logger.Warn("Session loaded but appears to be invalid, attempting fresh login")
	} else {
		ig.Logger.Warn("Failed to load session", "error", err)
	}

	ig.Logger.Info("Attempting to log in with credentials")

	ig.Client = goinsta.New(ig.Config.Instagram.Username, ig.Config.Instagram.Password)

	if err := ig.Client.Login(); err != nil {
		classified := classifyLoginError(err)
		switch {
		case errors.Is(classified, instagram.ErrBadCredentials):
			ig.Logger.Error("Invalid username or password")
		case errors.Is(classified, instagram.ErrTooManyAttempts):
			ig.Logger.Error("Too many login attempts")
		case errors.Is(classified, instagram.ErrChallengeRequired):
			ig.Logger.Error("Challenge required", "error", err)
		default:
			ig.Logger.Error("Login failed", "error", err)
		}
		return classified
	}

	// Persist the session on fresh login only.
	if err := ig.saveSession(); err != nil {
		ig.Logger.Warn("Failed to save Instagram session", "error", err)
	}

	ig.Logger.Info("Successfully logged in with fresh session")
	return nil
}

// classifyLoginError maps client library failures onto the login error
// taxonomy. Anything unrecognized stays an unclassified login failure.
func classifyLoginError(err error) error {
	switch {
	case errors.Is(err, goinsta.ErrBadPassword):
		return fmt.Errorf("%w: %v", instagram.ErrBadCredentials, err)
	case errors.Is(err, goinsta.ErrTooManyRequests):
		return fmt.Errorf("%w: %v", instagram.ErrTooManyAttempts, err)
	}

	var challenge *goinsta.ChallengeError
	if errors.As(err, &challenge) {
		return fmt.Errorf("%w: %v", instagram.ErrChallengeRequired, err)
	}

	return fmt.Errorf("login failed: %w", err)
}

// reloadSession loads the persisted session file into a fresh client.
func (ig *IgImpl) reloadSession() error {
	path := ig.Config.Instagram.SessionFile
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("session file not found: %w", err)
	}

	client, err := goinsta.Import(path)
	if err != nil {
		return fmt.Errorf("failed to import session: %w", err)
	}

	ig.Client = client
	return nil
}

// validateSession checks the loaded session with a cheap account sync.
func (ig *IgImpl) validateSession() (valid bool) {
	if ig.Client == nil {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			ig.Logger.Error("Panic during session validation", "panic", r)
			valid = false
		}
	}()

	return ig.Client.Account.Sync() == nil
}

// saveSession exports the current session to the configured path.
func (ig *IgImpl) saveSession() error {
	if ig.Client == nil {
		return fmt.Errorf("no active Instagram session to save")
	}

	path := ig.Config.Instagram.SessionFile
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create session directory: %w", err)
		}
	}

	if err := ig.Client.Export(path); err != nil {
		return fmt.Errorf("failed to export session: %w", err)
	}

	ig.Logger.Info("Instagram session saved", "path", path)
	return nil
}
