package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{`
CREATE TABLE IF NOT EXISTS brand_analyses (
  id            TEXT        PRIMARY KEY,
  user_id       TEXT        NOT NULL,
  website_url   TEXT        NOT NULL,
  user_email    TEXT        NOT NULL,
  analysis_data JSONB       NOT NULL,
  share_id      TEXT        UNIQUE,
  snapshot_url  TEXT        NOT NULL DEFAULT '',
  created_at    TIMESTAMPTZ NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_brand_analyses_user_url ON brand_analyses (user_id, website_url, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_brand_analyses_user_created ON brand_analyses (user_id, created_at DESC)`,
	`
CREATE TABLE IF NOT EXISTS analysis_failures (
  id           BIGSERIAL   PRIMARY KEY,
  user_id      TEXT        NOT NULL,
  analysis_id  TEXT        NOT NULL,
  phase        TEXT        NOT NULL,
  message      TEXT        NOT NULL,
  details_json JSONB       NOT NULL,
  created_at   TIMESTAMPTZ NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_analysis_failures_user ON analysis_failures (user_id, created_at DESC)`,
}

// Migrate creates the tables when they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("postgres migrate: %w", err)
		}
	}
	return nil
}
