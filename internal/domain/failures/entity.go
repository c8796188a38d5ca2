package failures

import "time"

// Phase names the step whose failure was masked.
type Phase string

const (
	PhaseScrape   Phase = "scrape"
	PhaseGenerate Phase = "generate"
	PhaseValidate Phase = "validate"
	PhasePersist  Phase = "persist"
	PhaseChat     Phase = "chat"
	PhaseShare    Phase = "share"
)

// Failure is an upstream error that was hidden from the user.
type Failure struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	AnalysisID  string    `json:"analysis_id,omitempty"`
	Phase       Phase     `json:"phase"`
	Message     string    `json:"message"`
	DetailsJSON string    `json:"details_json,omitempty"` // raw JSON string
	CreatedAt   time.Time `json:"created_at"`
}
