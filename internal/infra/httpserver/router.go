package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appanalyses "github.com/bryanwahyu/brand-playground/internal/application/analyses"
	appchat "github.com/bryanwahyu/brand-playground/internal/application/chat"
	appsessions "github.com/bryanwahyu/brand-playground/internal/application/sessions"
	"github.com/bryanwahyu/brand-playground/internal/domain/analysis"
	"github.com/bryanwahyu/brand-playground/internal/domain/chat"
	"github.com/bryanwahyu/brand-playground/internal/domain/session"
	"github.com/bryanwahyu/brand-playground/internal/middleware"
	"github.com/bryanwahyu/brand-playground/internal/render"
)

var errBadRequest = errors.New("bad request")

// Options wires the router. Empty APIKeys serves every /v1 request as the
// anonymous user; a nil Limiter disables rate limiting.
type Options struct {
	Sessions     *appsessions.Service
	Analyses     *appanalyses.Service
	APIKeys      map[string]string
	AllowOrigins []string
	// PublicOrigin prefixes share links; the request scheme+host when empty.
	PublicOrigin string
	Health       map[string]middleware.HealthChecker
	Limiter      *middleware.RateLimiter
}

type Router struct {
	sessions     *appsessions.Service
	analyses     *appanalyses.Service
	publicOrigin string
}

func NewRouter(opts Options) http.Handler {
	r := &Router{sessions: opts.Sessions, analyses: opts.Analyses, publicOrigin: opts.PublicOrigin}
	mux := chi.NewRouter()

	origins := opts.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)

	mux.Get("/health", middleware.HealthHandler(opts.Health))
	mux.Get("/health/live", middleware.LivenessHandler)
	mux.Get("/health/ready", middleware.ReadinessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)

	// public, read-only
	mux.Get("/share/{token}", r.wrap(r.handleShared))

	mux.Route("/v1", func(rt chi.Router) {
		if len(opts.APIKeys) > 0 {
			rt.Use(middleware.APIKeyAuth(opts.APIKeys))
		} else {
			rt.Use(middleware.Anonymous)
		}
		if opts.Limiter != nil {
			rt.Use(middleware.RateLimitMiddleware(opts.Limiter))
		}

		rt.Post("/sessions", r.wrap(r.handleCreateSession))
		rt.Get("/sessions/{id}", r.wrap(r.handleGetSession))
		rt.Post("/sessions/{id}/analyze", r.wrap(r.handleAnalyze))
		rt.Post("/sessions/{id}/chat", r.wrap(r.handleOpenChat))
		rt.Delete("/sessions/{id}/chat", r.wrap(r.handleCloseChat))
		rt.Post("/sessions/{id}/chat/messages", r.wrap(r.handleSendMessage))
		rt.Post("/sessions/{id}/share", r.wrap(r.handleShare))
		rt.Get("/sessions/{id}/export", r.wrap(r.handleExport))
		rt.Get("/analyses", r.wrap(r.handleHistory))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			http.Error(w, err.Error(), statusFor(err))
		}
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, appsessions.ErrInvalidForm),
		errors.Is(err, chat.ErrEmptyMessage):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrNotFound),
		errors.Is(err, analysis.ErrNotFound),
		errors.Is(err, sql.ErrNoRows):
		return http.StatusNotFound
	case errors.Is(err, session.ErrInvalidTransition),
		errors.Is(err, session.ErrBusy),
		errors.Is(err, session.ErrNoReport):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func decode(req *http.Request, v any) error {
	if err := json.NewDecoder(req.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

// sessionID reads {id}; a malformed id can never match a session.
func sessionID(req *http.Request) (session.ID, error) {
	id := chi.URLParam(req, "id")
	if err := middleware.ValidateSessionID(id); err != nil {
		return "", session.ErrNotFound
	}
	return session.ID(id), nil
}

func user(req *http.Request) string {
	return middleware.GetUserFromContext(req.Context())
}

// sessionView is the session plus whatever its current screen shows.
type sessionView struct {
	*session.Session
	Report     *analysis.Report `json:"report,omitempty"`
	View       *render.View     `json:"view,omitempty"`
	Transcript *chat.Transcript `json:"transcript,omitempty"`
}

func viewOf(s *session.Session) sessionView {
	v := sessionView{Session: s}
	switch s.State {
	case session.StateAnalysis:
		view := render.Analysis(s.WebsiteURL, s.Report)
		v.Report = s.Report
		v.View = &view
	case session.StateChat:
		v.Transcript = s.Transcript
	}
	return v
}

// POST /v1/sessions
func (r *Router) handleCreateSession(w http.ResponseWriter, req *http.Request) error {
	s, err := r.sessions.Create(req.Context(), user(req))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusCreated, viewOf(s))
}

// GET /v1/sessions/{id}
func (r *Router) handleGetSession(w http.ResponseWriter, req *http.Request) error {
	id, err := sessionID(req)
	if err != nil {
		return err
	}
	s, err := r.sessions.Get(req.Context(), user(req), id)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, viewOf(s))
}

// POST /v1/sessions/{id}/analyze
// Body: {"url": "...", "email": "..."}
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	id, err := sessionID(req)
	if err != nil {
		return err
	}
	var form appsessions.LandingForm
	if err := decode(req, &form); err != nil {
		return err
	}
	form.URL = middleware.SanitizeString(form.URL)
	form.Email = middleware.SanitizeString(form.Email)

	middleware.IncrementAnalysesRunning()
	s, err := r.sessions.Submit(req.Context(), user(req), id, form)
	middleware.DecrementAnalysesRunning()
	if err != nil {
		return err
	}
	middleware.IncrementAnalyses()
	if s.Fallback {
		middleware.IncrementAnalysesFallback()
	}
	return writeJSON(w, http.StatusOK, viewOf(s))
}

// POST /v1/sessions/{id}/chat
func (r *Router) handleOpenChat(w http.ResponseWriter, req *http.Request) error {
	id, err := sessionID(req)
	if err != nil {
		return err
	}
	s, err := r.sessions.OpenChat(req.Context(), user(req), id)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, viewOf(s))
}

// DELETE /v1/sessions/{id}/chat
func (r *Router) handleCloseChat(w http.ResponseWriter, req *http.Request) error {
	id, err := sessionID(req)
	if err != nil {
		return err
	}
	s, err := r.sessions.CloseChat(req.Context(), user(req), id)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, viewOf(s))
}

// POST /v1/sessions/{id}/chat/messages
// Body: {"content": "..."}
func (r *Router) handleSendMessage(w http.ResponseWriter, req *http.Request) error {
	id, err := sessionID(req)
	if err != nil {
		return err
	}
	var body struct {
		Content string `json:"content"`
	}
	if err := decode(req, &body); err != nil {
		return err
	}

	s, reply, err := r.sessions.Send(req.Context(), user(req), id, middleware.SanitizeString(body.Content))
	if err != nil {
		return err
	}
	middleware.IncrementChat(reply.Fallback)

	return writeJSON(w, http.StatusOK, struct {
		sessionView
		Reply appchat.Reply `json:"reply"`
	}{viewOf(s), reply})
}

// POST /v1/sessions/{id}/share
func (r *Router) handleShare(w http.ResponseWriter, req *http.Request) error {
	id, err := sessionID(req)
	if err != nil {
		return err
	}
	s, err := r.sessions.Share(req.Context(), user(req), id, r.origin(req))
	if err != nil {
		return err
	}
	middleware.IncrementShares()
	// copied tells the browser there is a link to put on the clipboard
	return writeJSON(w, http.StatusOK, map[string]any{
		"share_url": s.ShareURL,
		"copied":    s.ShareURL != "",
	})
}

// origin is where share links point: the configured public origin, or the
// origin this request arrived on.
func (r *Router) origin(req *http.Request) string {
	if r.publicOrigin != "" {
		return r.publicOrigin
	}
	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}
	if p := req.Header.Get("X-Forwarded-Proto"); p == "http" || p == "https" {
		scheme = p
	}
	return scheme + "://" + req.Host
}

// GET /v1/sessions/{id}/export?format=md|html
func (r *Router) handleExport(w http.ResponseWriter, req *http.Request) error {
	id, err := sessionID(req)
	if err != nil {
		return err
	}
	s, err := r.sessions.Get(req.Context(), user(req), id)
	if err != nil {
		return err
	}
	if s.Report == nil {
		return session.ErrNoReport
	}
	return writeExport(w, req.URL.Query().Get("format"), render.Analysis(s.WebsiteURL, s.Report), true)
}

// writeExport writes v as JSON (no format), markdown or HTML.
func writeExport(w http.ResponseWriter, format string, v render.View, attach bool) error {
	var (
		body        []byte
		contentType string
		ext         string
	)
	switch strings.ToLower(format) {
	case "":
		return writeJSON(w, http.StatusOK, v)
	case "md", "markdown":
		body, contentType, ext = []byte(render.Markdown(v)), "text/markdown; charset=utf-8", "md"
	case "html":
		b, err := render.HTML(v)
		if err != nil {
			return err
		}
		body, contentType, ext = b, "text/html; charset=utf-8", "html"
	default:
		return fmt.Errorf("%w: unknown format %q", errBadRequest, format)
	}
	w.Header().Set("Content-Type", contentType)
	if attach {
		w.Header().Set("Content-Disposition", `attachment; filename="brand-analysis.`+ext+`"`)
	}
	_, err := w.Write(body)
	return err
}

// GET /v1/analyses?page=&page_size=
func (r *Router) handleHistory(w http.ResponseWriter, req *http.Request) error {
	page, _ := strconv.Atoi(req.URL.Query().Get("page"))
	size, _ := strconv.Atoi(req.URL.Query().Get("page_size"))

	list, err := r.analyses.History(req.Context(), user(req),
		middleware.ValidatePage(page), middleware.ValidateLimit(size))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, list)
}

// GET /share/{token}?format=md|html
func (r *Router) handleShared(w http.ResponseWriter, req *http.Request) error {
	token := chi.URLParam(req, "token")
	if err := middleware.ValidateShareToken(token); err != nil {
		return analysis.ErrNotFound
	}
	a, err := r.analyses.Shared(req.Context(), token)
	if err != nil {
		return err
	}
	return writeExport(w, req.URL.Query().Get("format"), render.Analysis(a.WebsiteURL, a.Report), false)
}
