package chat

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/bryanwahyu/brand-playground/internal/application"
	"github.com/bryanwahyu/brand-playground/internal/domain/ai"
	"github.com/bryanwahyu/brand-playground/internal/domain/analysis"
	domain "github.com/bryanwahyu/brand-playground/internal/domain/chat"
	"github.com/bryanwahyu/brand-playground/internal/domain/failures"
	"github.com/bryanwahyu/brand-playground/internal/infra/ai/prompt"
)

const (
	DefaultModel     = "gpt-4o-mini"
	DefaultMaxTokens = 500
)

// Service runs the consultant chat. Failures is optional.
type Service struct {
	Generator ai.Generator
	Failures  failures.Repository
	Clock     application.Clock
	Model     string
	MaxTokens int
}

// Reply is the assistant message appended by Send.
type Reply struct {
	Message  domain.Message `json:"message"`
	Fallback bool           `json:"fallback"`
}

// Start opens a transcript seeded with the welcome message. The report's
// overview is the brand context of every question.
func (s *Service) Start(websiteURL string, report *analysis.Report) *domain.Transcript {
	brandContext := ""
	if report != nil {
		brandContext = report.BrandOverview
	}
	t := &domain.Transcript{WebsiteURL: websiteURL, BrandContext: brandContext}
	t.Append(s.message(domain.RoleAssistant, domain.WelcomeMessage(websiteURL)))
	return t
}

// Send appends the user message and exactly one assistant message to t.
// Generator errors are masked with a canned reply; only blank input is
// rejected, before anything is appended.
func (s *Service) Send(ctx context.Context, userID string, t *domain.Transcript, input string) (Reply, error) {
	if strings.TrimSpace(input) == "" {
		return Reply{}, domain.ErrEmptyMessage
	}
	t.Append(s.message(domain.RoleUser, input))

	text, err := s.Generator.GenerateText(ctx, ai.TextRequest{
		Prompt:    prompt.Consultant(t.WebsiteURL, t.BrandContext, input),
		Model:     s.model(),
		MaxTokens: s.maxTokens(),
	})
	if err == nil && strings.TrimSpace(text) == "" {
		err = ai.ErrEmptyResponse
	}

	fallback := false
	if err != nil {
		logrus.WithFields(logrus.Fields{"user": userID, "website_url": t.WebsiteURL}).
			WithError(err).Error("chat generation failed, serving canned reply")
		s.record(ctx, userID, err, t.WebsiteURL)
		text = FallbackReply(input)
		fallback = true
	}

	m := s.message(domain.RoleAssistant, text)
	t.Append(m)
	return Reply{Message: m, Fallback: fallback}, nil
}

// FallbackReply is the canned answer used when the model is unreachable.
// Keyword matching is case-sensitive.
func FallbackReply(input string) string {
	var hint string
	switch {
	case strings.Contains(input, "social"):
		hint = "social media strategy should focus on LinkedIn and Instagram for B2B engagement, with video content performing significantly better than static posts."
	case strings.Contains(input, "email"):
		hint = "email marketing can drive exceptional ROI when personalized. Consider segmenting your audience based on engagement levels and purchase history."
	default:
		hint = "you should focus on your core value proposition and target audience needs."
	}
	return "I apologize, but I'm having trouble connecting to my AI systems right now. However, based on your brand analysis, I can suggest that " + hint + " Please try asking again in a moment."
}

func (s *Service) message(role domain.Role, content string) domain.Message {
	return domain.Message{ID: uuid.New().String(), Role: role, Content: content, Timestamp: s.Clock.Now()}
}

func (s *Service) record(ctx context.Context, userID string, cause error, websiteURL string) {
	if s.Failures == nil {
		return
	}
	d, _ := json.Marshal(map[string]string{"website_url": websiteURL})
	f := &failures.Failure{
		UserID:      userID,
		Phase:       failures.PhaseChat,
		Message:     cause.Error(),
		DetailsJSON: string(d),
		CreatedAt:   s.Clock.Now(),
	}
	if err := s.Failures.Save(context.WithoutCancel(ctx), f); err != nil {
		logrus.WithError(err).Warn("failed to record masked failure")
	}
}

func (s *Service) model() string {
	if s.Model == "" {
		return DefaultModel
	}
	return s.Model
}

func (s *Service) maxTokens() int {
	if s.MaxTokens <= 0 {
		return DefaultMaxTokens
	}
	return s.MaxTokens
}
