package sessions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/brand-playground/internal/application"
	"github.com/bryanwahyu/brand-playground/internal/application/analyses"
	appchat "github.com/bryanwahyu/brand-playground/internal/application/chat"
	"github.com/bryanwahyu/brand-playground/internal/domain/ai"
	"github.com/bryanwahyu/brand-playground/internal/domain/analysis"
	"github.com/bryanwahyu/brand-playground/internal/domain/chat"
	domain "github.com/bryanwahyu/brand-playground/internal/domain/session"
	store "github.com/bryanwahyu/brand-playground/internal/infra/session"
)

type spyAnalyzer struct {
	calls    []analyses.AnalyzeCommand
	result   analyses.AnalyzeResult
	shareURL string
	shares   int
}

func (s *spyAnalyzer) Analyze(ctx context.Context, cmd analyses.AnalyzeCommand) analyses.AnalyzeResult {
	s.calls = append(s.calls, cmd)
	return s.result
}

func (s *spyAnalyzer) Share(ctx context.Context, userID, websiteURL, origin string) string {
	s.shares++
	return s.shareURL
}

type textGen struct {
	reply string
	err   error
}

func (g *textGen) GenerateObject(ctx context.Context, req ai.ObjectRequest) ([]byte, error) {
	return nil, errors.New("not used")
}

func (g *textGen) GenerateText(ctx context.Context, req ai.TextRequest) (string, error) {
	return g.reply, g.err
}

var now = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func setup(t *testing.T, gen *textGen) (*Service, *spyAnalyzer, *domain.Session) {
	t.Helper()
	clock := application.FixedClock{T: now}
	spy := &spyAnalyzer{result: analyses.AnalyzeResult{
		AnalysisID: "a1",
		Report:     &analysis.Report{BrandOverview: "Rockets"},
	}}
	svc := NewService(store.NewMemoryStore(), spy, &appchat.Service{Generator: gen, Clock: clock}, clock)
	sess, err := svc.Create(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, domain.StateLanding, sess.State)
	return svc, spy, sess
}

func TestSubmit_InvalidFormNeverAnalyzes(t *testing.T) {
	svc, spy, sess := setup(t, &textGen{})
	ctx := context.Background()

	forms := []LandingForm{
		{URL: "", Email: "a@acme.io"},
		{URL: "https://acme.io", Email: ""},
		{URL: "   ", Email: "  "},
		{URL: "not a url", Email: "a@acme.io"},
		{URL: "https://acme.io", Email: "nope"},
	}
	for _, f := range forms {
		_, err := svc.Submit(ctx, "u1", sess.ID, f)
		assert.ErrorIs(t, err, ErrInvalidForm, "%+v", f)
	}
	assert.Empty(t, spy.calls)

	got, err := svc.Get(ctx, "u1", sess.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateLanding, got.State)
}

func TestValidateForm_FieldMessages(t *testing.T) {
	svc, _, _ := setup(t, &textGen{})
	err := svc.ValidateForm(LandingForm{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "url is required")
	assert.Contains(t, err.Error(), "email is required")
}

func TestSubmit_MovesToAnalysis(t *testing.T) {
	svc, spy, sess := setup(t, &textGen{})
	ctx := context.Background()

	got, err := svc.Submit(ctx, "u1", sess.ID, LandingForm{URL: " https://acme.io ", Email: "a@acme.io"})
	require.NoError(t, err)

	require.Len(t, spy.calls, 1)
	assert.Equal(t, analyses.AnalyzeCommand{UserID: "u1", WebsiteURL: "https://acme.io", Email: "a@acme.io"}, spy.calls[0])
	assert.Equal(t, domain.StateAnalysis, got.State)
	assert.False(t, got.Busy)
	assert.Equal(t, "https://acme.io", got.WebsiteURL)
	assert.Equal(t, analysis.ID("a1"), got.AnalysisID)
	assert.Equal(t, "Rockets", got.Report.BrandOverview)

	_, err = svc.Submit(ctx, "u1", sess.ID, LandingForm{URL: "https://acme.io", Email: "a@acme.io"})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "no way back to landing")
	assert.Len(t, spy.calls, 1)
}

func TestSubmit_FallbackStillReachesAnalysis(t *testing.T) {
	svc, spy, sess := setup(t, &textGen{})
	spy.result = analyses.AnalyzeResult{Report: analysis.FallbackReport(), Fallback: true}

	got, err := svc.Submit(context.Background(), "u1", sess.ID, LandingForm{URL: "https://acme.io", Email: "a@acme.io"})
	require.NoError(t, err)
	assert.Equal(t, domain.StateAnalysis, got.State)
	assert.True(t, got.Fallback)
	assert.Equal(t, analysis.FallbackReport(), got.Report)
}

func TestChatNavigation(t *testing.T) {
	svc, _, sess := setup(t, &textGen{reply: "Try webinars."})
	ctx := context.Background()

	_, err := svc.OpenChat(ctx, "u1", sess.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "landing cannot jump to chat")
	_, err = svc.CloseChat(ctx, "u1", sess.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = svc.Submit(ctx, "u1", sess.ID, LandingForm{URL: "https://acme.io", Email: "a@acme.io"})
	require.NoError(t, err)

	_, _, err = svc.Send(ctx, "u1", sess.ID, "hello")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "chat not open yet")

	opened, err := svc.OpenChat(ctx, "u1", sess.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateChat, opened.State)
	require.Len(t, opened.Transcript.Messages, 1)
	assert.Equal(t, chat.WelcomeMessage("https://acme.io"), opened.Transcript.Messages[0].Content)

	after, reply, err := svc.Send(ctx, "u1", sess.ID, "What channels?")
	require.NoError(t, err)
	assert.Equal(t, "Try webinars.", reply.Message.Content)
	assert.Len(t, after.Transcript.Messages, 3)
	assert.False(t, after.Busy)

	_, _, err = svc.Send(ctx, "u1", sess.ID, "  ")
	assert.ErrorIs(t, err, chat.ErrEmptyMessage)

	back, err := svc.CloseChat(ctx, "u1", sess.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateAnalysis, back.State)
	assert.Nil(t, back.Transcript)

	reopened, err := svc.OpenChat(ctx, "u1", sess.ID)
	require.NoError(t, err)
	assert.Len(t, reopened.Transcript.Messages, 1, "transcript starts over")
}

func TestSend_FallbackReply(t *testing.T) {
	svc, _, sess := setup(t, &textGen{err: errors.New("network down")})
	ctx := context.Background()
	_, err := svc.Submit(ctx, "u1", sess.ID, LandingForm{URL: "https://acme.io", Email: "a@acme.io"})
	require.NoError(t, err)
	_, err = svc.OpenChat(ctx, "u1", sess.ID)
	require.NoError(t, err)

	after, reply, err := svc.Send(ctx, "u1", sess.ID, "email ideas?")
	require.NoError(t, err)
	assert.True(t, reply.Fallback)
	require.Len(t, after.Transcript.Messages, 3)
	assert.Equal(t, appchat.FallbackReply("email ideas?"), after.Transcript.Messages[2].Content)
}

func TestShare(t *testing.T) {
	svc, spy, sess := setup(t, &textGen{})
	ctx := context.Background()

	_, err := svc.Share(ctx, "u1", sess.ID, "https://app.example")
	assert.ErrorIs(t, err, domain.ErrNoReport)
	assert.Zero(t, spy.shares)

	_, err = svc.Submit(ctx, "u1", sess.ID, LandingForm{URL: "https://acme.io", Email: "a@acme.io"})
	require.NoError(t, err)

	got, err := svc.Share(ctx, "u1", sess.ID, "https://app.example")
	require.NoError(t, err)
	assert.Empty(t, got.ShareURL, "nothing persisted")

	spy.shareURL = "https://app.example/share/abc"
	got, err = svc.Share(ctx, "u1", sess.ID, "https://app.example")
	require.NoError(t, err)
	assert.Equal(t, "https://app.example/share/abc", got.ShareURL)
}

func TestSessionsAreScopedToUser(t *testing.T) {
	svc, _, sess := setup(t, &textGen{})
	_, err := svc.Get(context.Background(), "someone-else", sess.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.Submit(context.Background(), "someone-else", sess.ID, LandingForm{URL: "https://acme.io", Email: "a@acme.io"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
