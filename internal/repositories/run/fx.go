package run

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/insta-extractor/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Module("run_repository",
	fx.Provide(
		func(pg *pgxpool.Pool, log logger.Logger) Repository {
			if pg == nil {
				return Noop{}
			}
			return NewPgx(pg, log)
		},
	),
)
