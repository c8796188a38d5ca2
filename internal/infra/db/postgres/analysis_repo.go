package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	domain "github.com/bryanwahyu/brand-playground/internal/domain/analysis"
)

type AnalysisRepository struct {
	db *sql.DB
}

func NewAnalysisRepository(db *sql.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

const analysisColumns = `id, user_id, website_url, user_email, analysis_data, share_id, snapshot_url, created_at`

// Save inserts an analysis record. Records are never updated.
func (r *AnalysisRepository) Save(ctx context.Context, a *domain.Analysis) error {
	const q = `
INSERT INTO brand_analyses
  (id, user_id, website_url, user_email, analysis_data, share_id, snapshot_url, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
`
	data, err := a.ReportJSON()
	if err != nil {
		return err
	}
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	var share sql.NullString
	if strings.TrimSpace(a.ShareToken) != "" {
		share = sql.NullString{String: a.ShareToken, Valid: true}
	}
	_, err = r.db.ExecContext(ctx, q,
		string(a.ID), stringOrDash(a.UserID), a.WebsiteURL, stringOrDash(a.UserEmail),
		data, share, a.SnapshotURL, createdAt)
	return err
}

func (r *AnalysisRepository) Get(ctx context.Context, id domain.ID) (*domain.Analysis, error) {
	q := `SELECT ` + analysisColumns + ` FROM brand_analyses WHERE id=$1 LIMIT 1;`
	a, err := scanAnalysis(r.db.QueryRowContext(ctx, q, string(id)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return a, err
}

// LatestByUserAndURL returns the newest analysis of websiteURL, or nil when there is none.
func (r *AnalysisRepository) LatestByUserAndURL(ctx context.Context, userID, websiteURL string) (*domain.Analysis, error) {
	q := `SELECT ` + analysisColumns + `
FROM brand_analyses
WHERE user_id=$1 AND website_url=$2
ORDER BY created_at DESC, id DESC
LIMIT 1;`
	a, err := scanAnalysis(r.db.QueryRowContext(ctx, q, userID, websiteURL))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return a, err
}

func (r *AnalysisRepository) GetByShareToken(ctx context.Context, token string) (*domain.Analysis, error) {
	q := `SELECT ` + analysisColumns + ` FROM brand_analyses WHERE share_id=$1 LIMIT 1;`
	a, err := scanAnalysis(r.db.QueryRowContext(ctx, q, token))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return a, err
}

// Paginate returns a page of analysis records ordered by created_at desc
func (r *AnalysisRepository) Paginate(ctx context.Context, userID string, page, pageSize int) ([]*domain.Analysis, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	q := `SELECT ` + analysisColumns + `
FROM brand_analyses
WHERE user_id=$1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3;`
	rows, err := r.db.QueryContext(ctx, q, userID, pageSize, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Analysis{}
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
