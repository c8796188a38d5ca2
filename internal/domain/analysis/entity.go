package analysis

import (
	"encoding/json"
	"time"
)

// ID identifier type
type ID string

// Analysis is a persisted report. It is written once and never updated.
type Analysis struct {
	ID          ID        `json:"id"`
	UserID      string    `json:"user_id"`
	WebsiteURL  string    `json:"website_url"`
	UserEmail   string    `json:"user_email"`
	Report      *Report   `json:"analysis_data"`
	ShareToken  string    `json:"share_id"`
	SnapshotURL string    `json:"snapshot_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReportJSON encodes the report for the analysis_data column.
func (a *Analysis) ReportJSON() (string, error) {
	if a.Report == nil {
		return "{}", nil
	}
	b, err := json.Marshal(a.Report)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// SetReportJSON decodes the analysis_data column. An empty column leaves
// Report nil so rendering falls back to placeholders.
func (a *Analysis) SetReportJSON(data string) error {
	if data == "" || data == "{}" {
		a.Report = nil
		return nil
	}
	var r Report
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		return err
	}
	a.Report = &r
	return nil
}

// Page is one page of a user's analyses.
type Page struct {
	Data     []*Analysis `json:"data"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
}
