package run

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/insta-extractor/internal/domain"
	"github.com/orgball2608/insta-extractor/internal/repositories"
	"github.com/orgball2608/insta-extractor/pkg/logger"

	sq "github.com/Masterminds/squirrel"
)

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("RunRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

// Create records one completed extraction run.
func (p *Pgx) Create(ctx context.Context, run domain.ExtractionRun) error {
	query, args, err := repositories.SqBuilder.
		Insert("extraction_runs").
		Columns("username", "post_count", "follower_count", "following_count", "json_path", "created_at").
		Values(run.Username, run.PostCount, run.FollowerCount, run.FollowingCount, run.JSONPath, time.Now()).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	_, err = p.pg.Exec(ctx, query, args...)
	return err
}

// CleanupOldRecords deletes archive rows older than the retention window.
func (p *Pgx) CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)

	query, args, err := repositories.SqBuilder.
		Delete("extraction_runs").
		Where(sq.Lt{"created_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	result, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}
