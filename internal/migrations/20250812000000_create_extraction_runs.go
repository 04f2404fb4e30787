package migrations

import (
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(upCreateExtractionRuns, downCreateExtractionRuns)
}

func upCreateExtractionRuns(tx *sql.Tx) error {
	_, err := tx.Exec(`
	CREATE TABLE extraction_runs (
		id SERIAL PRIMARY KEY,
		username VARCHAR NOT NULL,
		post_count INTEGER NOT NULL DEFAULT 0,
		follower_count INTEGER NOT NULL DEFAULT 0,
		following_count INTEGER NOT NULL DEFAULT 0,
		json_path VARCHAR NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX idx_extraction_runs_username ON extraction_runs (username);
	CREATE INDEX idx_extraction_runs_created_at ON extraction_runs (created_at);
	`)
	if err != nil {
		return err
	}
	return nil
}

func downCreateExtractionRuns(tx *sql.Tx) error {
	_, err := tx.Exec(`
	DROP TABLE extraction_runs;
	`)
	if err != nil {
		return err
	}
	return nil
}
