package analyses

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/bryanwahyu/brand-playground/internal/application"
	"github.com/bryanwahyu/brand-playground/internal/domain/ai"
	"github.com/bryanwahyu/brand-playground/internal/domain/analysis"
	"github.com/bryanwahyu/brand-playground/internal/domain/failures"
	"github.com/bryanwahyu/brand-playground/internal/domain/scrape"
	"github.com/bryanwahyu/brand-playground/internal/infra/ai/prompt"
)

// Service implements use-cases untuk brand analysis.
// Snapshots and Failures are optional.
type Service struct {
	Repo      analysis.Repository
	Scraper   scrape.Scraper
	Generator ai.Generator
	Snapshots analysis.SnapshotStore
	Failures  failures.Repository
	Clock     application.Clock
	// Tokens generates share tokens; NewShareToken when nil.
	Tokens func() string
}

//
// ==== USE CASES ====
//

// AnalyzeCommand is the submitted landing form.
type AnalyzeCommand struct {
	UserID     string
	WebsiteURL string
	Email      string
}

type AnalyzeResult struct {
	AnalysisID analysis.ID      `json:"analysis_id,omitempty"`
	Report     *analysis.Report `json:"report"`
	ShareToken string           `json:"-"`
	Fallback   bool             `json:"fallback"`
}

// Analyze scrapes the site, generates the report and persists it. It never
// fails: any error along the way is logged and the static fallback report
// is returned instead.
func (s *Service) Analyze(ctx context.Context, cmd AnalyzeCommand) AnalyzeResult {
	id := analysis.ID(uuid.New().String())
	log := logrus.WithFields(logrus.Fields{
		"user":        cmd.UserID,
		"website_url": cmd.WebsiteURL,
		"analysis_id": id,
	})

	page, err := s.Scraper.Scrape(ctx, cmd.WebsiteURL)
	if err != nil {
		return s.fallback(ctx, cmd, id, failures.PhaseScrape, err)
	}

	raw, err := s.Generator.GenerateObject(ctx, ai.ObjectRequest{
		Prompt:     prompt.BrandAnalysis(cmd.WebsiteURL, page.Markdown, page.Metadata),
		SchemaName: analysis.SchemaName,
		Schema:     analysis.Schema(),
	})
	if err != nil {
		return s.fallback(ctx, cmd, id, failures.PhaseGenerate, err)
	}

	report, err := analysis.ReportFromGenerated(raw)
	if err != nil {
		return s.fallback(ctx, cmd, id, failures.PhaseValidate, err)
	}

	a := &analysis.Analysis{
		ID:         id,
		UserID:     cmd.UserID,
		WebsiteURL: cmd.WebsiteURL,
		UserEmail:  cmd.Email,
		Report:     report,
		ShareToken: s.newToken(),
		CreatedAt:  s.Clock.Now(),
	}

	// snapshot is best effort, the report does not depend on it
	if s.Snapshots != nil {
		if url, err := s.putSnapshot(ctx, a, page); err != nil {
			log.WithError(err).Warn("scrape snapshot upload failed")
		} else {
			a.SnapshotURL = url
		}
	}

	if err := s.Repo.Save(ctx, a); err != nil {
		return s.fallback(ctx, cmd, id, failures.PhasePersist, err)
	}

	log.Info("brand analysis stored")
	return AnalyzeResult{
		AnalysisID: a.ID,
		Report:     report,
		ShareToken: a.ShareToken,
	}
}

func (s *Service) putSnapshot(ctx context.Context, a *analysis.Analysis, page *scrape.Page) (string, error) {
	b, err := json.Marshal(page)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("%s/%s/scrape.json", a.UserID, a.ID)
	return s.Snapshots.Put(ctx, key, b, "application/json")
}

func (s *Service) fallback(ctx context.Context, cmd AnalyzeCommand, id analysis.ID, phase failures.Phase, cause error) AnalyzeResult {
	logrus.WithFields(logrus.Fields{
		"user":        cmd.UserID,
		"website_url": cmd.WebsiteURL,
		"phase":       phase,
	}).WithError(cause).Error("analysis failed, serving fallback report")
	s.record(ctx, cmd.UserID, string(id), phase, cause, map[string]string{"website_url": cmd.WebsiteURL})
	return AnalyzeResult{Report: analysis.FallbackReport(), Fallback: true}
}

// record saves a masked failure. Errors here are only logged.
func (s *Service) record(ctx context.Context, userID, analysisID string, phase failures.Phase, cause error, details map[string]string) {
	if s.Failures == nil {
		return
	}
	d, _ := json.Marshal(details)
	f := &failures.Failure{
		UserID:      userID,
		AnalysisID:  analysisID,
		Phase:       phase,
		Message:     cause.Error(),
		DetailsJSON: string(d),
		CreatedAt:   s.Clock.Now(),
	}
	if err := s.Failures.Save(context.WithoutCancel(ctx), f); err != nil {
		logrus.WithError(err).Warn("failed to record masked failure")
	}
}

// Share finds the user's most recent analysis of websiteURL and builds its
// share link. No analysis, or any lookup error, yields an empty link.
func (s *Service) Share(ctx context.Context, userID, websiteURL, origin string) string {
	a, err := s.Repo.LatestByUserAndURL(ctx, userID, websiteURL)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user": userID, "website_url": websiteURL}).
			WithError(err).Error("error generating share URL")
		s.record(ctx, userID, "", failures.PhaseShare, err, map[string]string{"website_url": websiteURL})
		return ""
	}
	if a == nil || a.ShareToken == "" {
		return ""
	}
	return ShareURL(origin, a.ShareToken)
}

// ShareURL builds <origin>/share/<token>.
func ShareURL(origin, token string) string {
	return strings.TrimRight(origin, "/") + "/share/" + token
}

// Shared returns the analysis behind a share token.
func (s *Service) Shared(ctx context.Context, token string) (*analysis.Analysis, error) {
	if strings.TrimSpace(token) == "" {
		return nil, analysis.ErrNotFound
	}
	a, err := s.Repo.GetByShareToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, analysis.ErrNotFound
	}
	return a, nil
}

// History returns one page of the user's stored analyses, newest first.
func (s *Service) History(ctx context.Context, userID string, page, pageSize int) (analysis.Page, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	list, err := s.Repo.Paginate(ctx, userID, page, pageSize)
	if err != nil {
		return analysis.Page{}, err
	}
	return analysis.Page{Data: list, Page: page, PageSize: pageSize}, nil
}

func (s *Service) newToken() string {
	if s.Tokens != nil {
		return s.Tokens()
	}
	return NewShareToken()
}
