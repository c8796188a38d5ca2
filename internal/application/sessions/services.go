package sessions

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/bryanwahyu/brand-playground/internal/application"
	"github.com/bryanwahyu/brand-playground/internal/application/analyses"
	appchat "github.com/bryanwahyu/brand-playground/internal/application/chat"
	"github.com/bryanwahyu/brand-playground/internal/domain/analysis"
	"github.com/bryanwahyu/brand-playground/internal/domain/chat"
	domain "github.com/bryanwahyu/brand-playground/internal/domain/session"
)

// ErrInvalidForm is returned when the landing form fails validation.
var ErrInvalidForm = errors.New("invalid landing form")

// Analyzer is the report side used by the controller.
type Analyzer interface {
	Analyze(ctx context.Context, cmd analyses.AnalyzeCommand) analyses.AnalyzeResult
	Share(ctx context.Context, userID, websiteURL, origin string) string
}

// Chatter is the chat side used by the controller.
type Chatter interface {
	Start(websiteURL string, report *analysis.Report) *chat.Transcript
	Send(ctx context.Context, userID string, t *chat.Transcript, input string) (appchat.Reply, error)
}

// LandingForm is what the landing screen submits. Both fields are required.
type LandingForm struct {
	URL   string `json:"url" validate:"required,url"`
	Email string `json:"email" validate:"required,email"`
}

// Service is the view-state controller. Long calls (report generation,
// chat replies) run outside the store lock: the session is marked busy
// first and released when the result is committed.
type Service struct {
	Store    domain.Store
	Analyses Analyzer
	Chat     Chatter
	Clock    application.Clock

	validate *validator.Validate
}

func NewService(store domain.Store, a Analyzer, c Chatter, clock application.Clock) *Service {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Service{Store: store, Analyses: a, Chat: c, Clock: clock, validate: v}
}

// Create opens a session on the landing screen.
func (s *Service) Create(ctx context.Context, userID string) (*domain.Session, error) {
	sess := domain.New(domain.ID(uuid.New().String()), userID, s.Clock.Now())
	if err := s.Store.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *Service) Get(ctx context.Context, userID string, id domain.ID) (*domain.Session, error) {
	return s.Store.Get(ctx, userID, id)
}

// ValidateForm checks the landing form without touching any session.
func (s *Service) ValidateForm(form LandingForm) error {
	if err := s.validate.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fieldMessage(fe))
			}
			return fmt.Errorf("%w: %s", ErrInvalidForm, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "url":
		return fe.Field() + " must be a valid URL"
	case "email":
		return fe.Field() + " must be a valid email"
	default:
		return fe.Field() + " is invalid"
	}
}

// Submit runs the report fetch for the landing form and moves the session
// to the analysis screen. An invalid form never reaches the analyzer.
func (s *Service) Submit(ctx context.Context, userID string, id domain.ID, form LandingForm) (*domain.Session, error) {
	form.URL = strings.TrimSpace(form.URL)
	form.Email = strings.TrimSpace(form.Email)
	if err := s.ValidateForm(form); err != nil {
		return nil, err
	}

	_, err := s.Store.Update(ctx, userID, id, func(sess *domain.Session) error {
		if sess.Busy {
			return domain.ErrBusy
		}
		if !sess.CanTransition(domain.StateAnalysis) {
			return &domain.TransitionError{From: sess.State, To: domain.StateAnalysis}
		}
		sess.Busy = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	res := s.Analyses.Analyze(ctx, analyses.AnalyzeCommand{UserID: userID, WebsiteURL: form.URL, Email: form.Email})

	return s.Store.Update(ctx, userID, id, func(sess *domain.Session) error {
		sess.Busy = false
		if err := sess.Transition(domain.StateAnalysis, s.Clock.Now()); err != nil {
			return err
		}
		sess.WebsiteURL = form.URL
		sess.UserEmail = form.Email
		sess.AnalysisID = res.AnalysisID
		sess.Report = res.Report
		sess.Fallback = res.Fallback
		sess.ShareURL = ""
		return nil
	})
}

// OpenChat moves analysis -> chat with a fresh transcript.
func (s *Service) OpenChat(ctx context.Context, userID string, id domain.ID) (*domain.Session, error) {
	return s.Store.Update(ctx, userID, id, func(sess *domain.Session) error {
		if sess.Busy {
			return domain.ErrBusy
		}
		if err := sess.Transition(domain.StateChat, s.Clock.Now()); err != nil {
			return err
		}
		sess.Transcript = s.Chat.Start(sess.WebsiteURL, sess.Report)
		return nil
	})
}

// CloseChat moves chat -> analysis. The transcript is discarded.
func (s *Service) CloseChat(ctx context.Context, userID string, id domain.ID) (*domain.Session, error) {
	return s.Store.Update(ctx, userID, id, func(sess *domain.Session) error {
		if sess.Busy {
			return domain.ErrBusy
		}
		if err := sess.Transition(domain.StateAnalysis, s.Clock.Now()); err != nil {
			return err
		}
		sess.Transcript = nil
		return nil
	})
}

// Send asks one chat question. The session must be on the chat screen.
func (s *Service) Send(ctx context.Context, userID string, id domain.ID, text string) (*domain.Session, appchat.Reply, error) {
	if strings.TrimSpace(text) == "" {
		return nil, appchat.Reply{}, chat.ErrEmptyMessage
	}

	var transcript *chat.Transcript
	_, err := s.Store.Update(ctx, userID, id, func(sess *domain.Session) error {
		if sess.Busy {
			return domain.ErrBusy
		}
		if sess.State != domain.StateChat || sess.Transcript == nil {
			return fmt.Errorf("%w: chat is not open", domain.ErrInvalidTransition)
		}
		sess.Busy = true
		// worked on outside the lock, so take a private copy
		transcript = sess.Clone().Transcript
		return nil
	})
	if err != nil {
		return nil, appchat.Reply{}, err
	}

	reply, sendErr := s.Chat.Send(ctx, userID, transcript, text)

	sess, err := s.Store.Update(ctx, userID, id, func(sess *domain.Session) error {
		sess.Busy = false
		if sendErr == nil {
			sess.Transcript = transcript
			sess.UpdatedAt = s.Clock.Now()
		}
		return nil
	})
	if err != nil {
		return nil, appchat.Reply{}, err
	}
	if sendErr != nil {
		return nil, appchat.Reply{}, sendErr
	}
	return sess, reply, nil
}

// Share looks up the share link of the session's website and stores it on
// the session. An empty link means nothing was persisted for it.
func (s *Service) Share(ctx context.Context, userID string, id domain.ID, origin string) (*domain.Session, error) {
	cur, err := s.Store.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if cur.Report == nil {
		return nil, domain.ErrNoReport
	}

	link := s.Analyses.Share(ctx, userID, cur.WebsiteURL, origin)

	return s.Store.Update(ctx, userID, id, func(sess *domain.Session) error {
		// the user may have submitted another site meanwhile
		if sess.WebsiteURL == cur.WebsiteURL {
			sess.ShareURL = link
		}
		return nil
	})
}
