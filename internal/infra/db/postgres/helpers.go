package postgres

import (
	"database/sql"
	"strings"

	"github.com/bryanwahyu/brand-playground/internal/domain/analysis"
)

// stringOrDash returns "-" when the input is empty/whitespace
func stringOrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row scanner) (*analysis.Analysis, error) {
	var a analysis.Analysis
	var id, data string
	var share sql.NullString
	if err := row.Scan(&id, &a.UserID, &a.WebsiteURL, &a.UserEmail, &data, &share, &a.SnapshotURL, &a.CreatedAt); err != nil {
		return nil, err
	}
	if err := a.SetReportJSON(data); err != nil {
		return nil, err
	}
	a.ID = analysis.ID(id)
	a.ShareToken = share.String
	return &a, nil
}
