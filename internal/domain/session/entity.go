package session

import (
	"time"

	"github.com/bryanwahyu/brand-playground/internal/domain/analysis"
	"github.com/bryanwahyu/brand-playground/internal/domain/chat"
)

// ID identifier type
type ID string

// State is the screen a session is on.
type State string

const (
	StateLanding  State = "landing"
	StateAnalysis State = "analysis"
	StateChat     State = "chat"
)

// Session is the per-visitor view state. It lives in memory only.
type Session struct {
	ID         ID               `json:"id"`
	UserID     string           `json:"user_id"`
	State      State            `json:"state"`
	WebsiteURL string           `json:"website_url,omitempty"`
	UserEmail  string           `json:"user_email,omitempty"`
	AnalysisID analysis.ID      `json:"analysis_id,omitempty"`
	Report     *analysis.Report `json:"-"`
	Fallback   bool             `json:"fallback"`
	ShareURL   string           `json:"share_url,omitempty"`
	Transcript *chat.Transcript `json:"-"`
	// Busy is set while a report or chat reply is being generated.
	Busy      bool      `json:"busy"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New returns a session on the landing screen.
func New(id ID, userID string, now time.Time) *Session {
	return &Session{ID: id, UserID: userID, State: StateLanding, CreatedAt: now, UpdatedAt: now}
}

// allowed lists the legal transitions; there is no back-stack.
var allowed = map[State][]State{
	StateLanding:  {StateAnalysis},
	StateAnalysis: {StateChat},
	StateChat:     {StateAnalysis},
}

// CanTransition reports whether the session may move to next.
func (s *Session) CanTransition(next State) bool {
	for _, st := range allowed[s.State] {
		if st == next {
			return true
		}
	}
	return false
}

// Transition moves the session to next or returns ErrInvalidTransition.
func (s *Session) Transition(next State, now time.Time) error {
	if !s.CanTransition(next) {
		return &TransitionError{From: s.State, To: next}
	}
	s.State = next
	s.UpdatedAt = now
	return nil
}

// Clone copies the session and its transcript. The report is never
// mutated in place, so it is shared.
func (s *Session) Clone() *Session {
	cp := *s
	if s.Transcript != nil {
		t := *s.Transcript
		t.Messages = append([]chat.Message(nil), s.Transcript.Messages...)
		cp.Transcript = &t
	}
	return &cp
}
