package mysql

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{`
CREATE TABLE IF NOT EXISTS brand_analyses (
  id            VARCHAR(36)   NOT NULL PRIMARY KEY,
  user_id       VARCHAR(64)   NOT NULL,
  website_url   VARCHAR(2048) NOT NULL,
  user_email    VARCHAR(320)  NOT NULL,
  analysis_data JSON          NOT NULL,
  share_id      VARCHAR(32)   NULL,
  snapshot_url  VARCHAR(2048) NOT NULL DEFAULT '',
  created_at    DATETIME(6)   NOT NULL,
  UNIQUE KEY uq_brand_analyses_share (share_id),
  KEY idx_brand_analyses_user_url (user_id, website_url(255), created_at),
  KEY idx_brand_analyses_user_created (user_id, created_at)
)`, `
CREATE TABLE IF NOT EXISTS analysis_failures (
  id           BIGINT       NOT NULL AUTO_INCREMENT PRIMARY KEY,
  user_id      VARCHAR(64)  NOT NULL,
  analysis_id  VARCHAR(36)  NOT NULL,
  phase        VARCHAR(16)  NOT NULL,
  message      TEXT         NOT NULL,
  details_json JSON         NOT NULL,
  created_at   DATETIME(6)  NOT NULL,
  KEY idx_analysis_failures_user (user_id, created_at)
)`}

// Migrate creates the tables when they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("mysql migrate: %w", err)
		}
	}
	return nil
}
