package run

import (
	"context"
	"errors"
	"time"

	"github.com/orgball2608/insta-extractor/internal/domain"
)

var ErrNotFound = errors.New("extraction run not found")

// Repository archives completed extraction runs. It is a no-op unless the
// Postgres archive is configured.
type Repository interface {
	// Create records one completed extraction run.
	Create(ctx context.Context, run domain.ExtractionRun) error

	// CleanupOldRecords deletes archive rows older than the retention
	// window and returns the number removed.
	CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error)
}
