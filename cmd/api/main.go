package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/bryanwahyu/brand-playground/internal/application"
	appanalyses "github.com/bryanwahyu/brand-playground/internal/application/analyses"
	appchat "github.com/bryanwahyu/brand-playground/internal/application/chat"
	appsessions "github.com/bryanwahyu/brand-playground/internal/application/sessions"
	"github.com/bryanwahyu/brand-playground/internal/config"
	"github.com/bryanwahyu/brand-playground/internal/domain/ai"
	"github.com/bryanwahyu/brand-playground/internal/domain/analysis"
	"github.com/bryanwahyu/brand-playground/internal/domain/failures"
	"github.com/bryanwahyu/brand-playground/internal/infra/ai/gemini"
	"github.com/bryanwahyu/brand-playground/internal/infra/ai/openai"
	"github.com/bryanwahyu/brand-playground/internal/infra/db/memory"
	mysqlp "github.com/bryanwahyu/brand-playground/internal/infra/db/mysql"
	"github.com/bryanwahyu/brand-playground/internal/infra/db/postgres"
	"github.com/bryanwahyu/brand-playground/internal/infra/httpserver"
	"github.com/bryanwahyu/brand-playground/internal/infra/scrape"
	sessionstore "github.com/bryanwahyu/brand-playground/internal/infra/session"
	minioStore "github.com/bryanwahyu/brand-playground/internal/infra/storage"
	"github.com/bryanwahyu/brand-playground/internal/logging"
	"github.com/bryanwahyu/brand-playground/internal/middleware"
)

func main() {
	// path config.yaml
	defaultPath := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		defaultPath = v
	}
	path := pflag.StringP("config", "c", defaultPath, "path to config.yaml")
	pflag.Parse()

	cfg, err := config.Load(*path)
	if err != nil {
		logrus.Fatalf("config load error: %v", err)
	}
	logging.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	checks := map[string]middleware.HealthChecker{}

	// storage of analyses
	repo, fails, db, err := openRepositories(ctx, cfg)
	if err != nil {
		logrus.Fatalf("database init error: %v", err)
	}
	if db != nil {
		defer db.Close()
		checks["database"] = &middleware.DatabaseHealthChecker{DB: db}
	}

	// generator
	gen, closeGen, err := newGenerator(ctx, cfg)
	if err != nil {
		logrus.Fatalf("ai init error: %v", err)
	}
	defer closeGen()

	scraper := scrape.NewWebScraper(cfg.Scrape.Timeout)
	scraper.MaxLength = cfg.Scrape.MaxLength

	analyses := &appanalyses.Service{
		Repo:      repo,
		Scraper:   scraper,
		Generator: gen,
		Failures:  fails,
		Clock:     application.SystemClock{},
	}

	// init minio, optional
	if cfg.Minio.Enabled {
		store, err := minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			logrus.Fatalf("minio init error: %v", err)
		}
		analyses.Snapshots = store
		checks["storage"] = store
	}

	chat := &appchat.Service{
		Generator: gen,
		Failures:  fails,
		Clock:     application.SystemClock{},
		Model:     cfg.AI.ChatModel,
		MaxTokens: cfg.AI.ChatMaxToken,
	}
	sessions := appsessions.NewService(sessionstore.NewExpiringMemoryStore(ctx, cfg.Server.SessionTTL), analyses, chat, application.SystemClock{})

	handler := httpserver.NewRouter(httpserver.Options{
		Sessions:     sessions,
		Analyses:     analyses,
		APIKeys:      cfg.Auth.APIKeys,
		AllowOrigins: cfg.Server.AllowOrigins,
		PublicOrigin: cfg.Server.PublicOrigin,
		Health:       checks,
		Limiter:      middleware.NewRateLimiter(ctx, cfg.RateLimit.Capacity, cfg.RateLimit.RefillRate),
	})
	if len(cfg.Auth.APIKeys) == 0 {
		logrus.Warn("no API keys configured, every request runs as the anonymous user")
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		logrus.WithFields(logrus.Fields{
			"addr":     addr,
			"database": cfg.Database.Driver,
			"provider": cfg.AI.Provider,
		}).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	<-ctx.Done()
	logrus.Info("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		logrus.Errorf("shutdown error: %v", err)
	}
}

// openRepositories picks the analyses backend. db is nil for the memory driver.
func openRepositories(ctx context.Context, cfg *config.Config) (analysis.Repository, failures.Repository, *sql.DB, error) {
	d := cfg.Database
	switch d.Driver {
	case "mysql":
		db, err := mysqlp.Connect(ctx, mysqlp.DSN(d.User, d.Password, d.Host, d.Port, d.Name), mysqlp.Pool{
			MaxOpen:     d.MaxOpen,
			MaxIdle:     d.MaxIdle,
			MaxLifetime: d.ConnLifetime,
		})
		if err != nil {
			return nil, nil, nil, err
		}
		if err := mysqlp.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		return mysqlp.NewAnalysisRepository(db), mysqlp.NewFailureRepository(db), db, nil
	case "postgres":
		db, err := postgres.Connect(ctx, postgres.DSN(d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode), d.MaxOpen, d.MaxIdle)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		return postgres.NewAnalysisRepository(db), postgres.NewFailureRepository(db), db, nil
	default:
		logrus.Warn("using in-memory analyses store, nothing survives a restart")
		return memory.NewAnalysisRepository(), memory.NewFailureRepository(), nil, nil
	}
}

func newGenerator(ctx context.Context, cfg *config.Config) (ai.Generator, func(), error) {
	switch cfg.AI.Provider {
	case "gemini":
		c, err := gemini.NewClient(ctx, cfg.AI.GeminiKey, cfg.AI.ReportModel)
		if err != nil {
			return nil, nil, err
		}
		return c, func() { c.Close() }, nil
	default:
		if cfg.AI.OpenAIKey == "" {
			logrus.Warn("OPENAI_API_KEY is empty, every report will be the fallback")
		}
		var c *openai.Client
		if cfg.AI.OpenAIBase != "" {
			c = openai.NewClientWithBaseURL(cfg.AI.OpenAIKey, cfg.AI.OpenAIBase, cfg.AI.ReportModel)
		} else {
			c = openai.NewClient(cfg.AI.OpenAIKey, cfg.AI.ReportModel)
		}
		return c, func() {}, nil
	}
}
