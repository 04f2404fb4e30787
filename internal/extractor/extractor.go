package extractor

import (
	"context"

	"github.com/orgball2608/insta-extractor/internal/domain"
)

// Client orchestrates one extraction run: profile, posts, followers,
// following, then JSON persistence. Strictly sequential, the configured
// delays are the only throttle.
type Client interface {
	// ExtractUserData runs the full workflow for one target username. It
	// returns an error when the profile fetch fails (nothing is written) or
	// when the JSON document cannot be persisted.
	ExtractUserData(ctx context.Context, username string) (*domain.ExtractionResult, error)

	// ScheduleExtractions re-runs the workflow for username on the
	// configured interval until the context is cancelled.
	ScheduleExtractions(ctx context.Context, username string) error
}
