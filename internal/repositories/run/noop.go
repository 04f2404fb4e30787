package run

import (
	"context"
	"time"

	"github.com/orgball2608/insta-extractor/internal/domain"
)

// Noop is used when no Postgres archive is configured.
type Noop struct{}

var _ Repository = (*Noop)(nil)

func (Noop) Create(ctx context.Context, run domain.ExtractionRun) error {
	return nil
}

func (Noop) CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error) {
	return 0, nil
}
