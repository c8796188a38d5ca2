package mysql

import (
	"database/sql"
	"strings"
	"time"

	"github.com/bryanwahyu/brand-playground/internal/domain/analysis"
)

// stringOrDash returns "-" when the input is empty/whitespace
func stringOrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// nullIfEmpty keeps unique columns free of empty strings
func nullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row scanner) (*analysis.Analysis, error) {
	var a analysis.Analysis
	var data string
	var share sql.NullString
	var created time.Time
	if err := row.Scan(&a.ID, &a.UserID, &a.WebsiteURL, &a.UserEmail, &data, &share, &a.SnapshotURL, &created); err != nil {
		return nil, err
	}
	if err := a.SetReportJSON(data); err != nil {
		return nil, err
	}
	a.ShareToken = share.String
	a.CreatedAt = created
	return &a, nil
}
