package instagram

import (
	"context"
	"errors"

	"github.com/orgball2608/insta-extractor/internal/domain"
)

var (
	// ErrBadCredentials means the username/password pair was rejected.
	ErrBadCredentials = errors.New("invalid username or password")
	// ErrTooManyAttempts means the platform refused further login attempts.
	ErrTooManyAttempts = errors.New("too many login attempts")
	// ErrChallengeRequired means the account needs an interactive challenge
	// that cannot be completed here.
	ErrChallengeRequired = errors.New("interactive challenge required")
)

// Client wraps the platform client library. It owns the authenticated
// session; all other components only read through it.
type Client interface {
	// Login authenticates, reusing a persisted session when possible and
	// falling back to credential login. Any returned error is terminal for
	// the run.
	Login() error

	// UserInfo resolves a username and returns its profile snapshot.
	UserInfo(ctx context.Context, username string) (*domain.Profile, error)

	// UserPosts returns up to limit of the user's media items, newest
	// first. All-or-nothing: a fetch failure returns no items.
	UserPosts(ctx context.Context, username string, limit int) ([]domain.Post, error)

	// Followers returns up to limit follower entries in platform order.
	Followers(ctx context.Context, username string, limit int) ([]domain.RelationshipEntry, error)

	// Following returns up to limit following entries in platform order.
	Following(ctx context.Context, username string, limit int) ([]domain.RelationshipEntry, error)
}
