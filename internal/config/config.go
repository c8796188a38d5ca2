package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
		// PublicOrigin prefixes share links; the request host is used when empty.
		PublicOrigin string        `yaml:"publicOrigin"`
		ReadTimeout  time.Duration `yaml:"readTimeout"`
		WriteTimeout time.Duration `yaml:"writeTimeout"`
		AllowOrigins []string      `yaml:"allowOrigins"`
		// SessionTTL forgets view sessions idle for longer than this.
		SessionTTL time.Duration `yaml:"sessionTTL"`
	} `yaml:"server"`

	Auth struct {
		// APIKeys maps user id -> key. Empty means every request is anonymous.
		APIKeys map[string]string `yaml:"apiKeys"`
	} `yaml:"auth"`

	Database struct {
		Driver       string        `yaml:"driver"` // mysql | postgres | memory
		Host         string        `yaml:"host"`
		Port         int           `yaml:"port"`
		User         string        `yaml:"user"`
		Password     string        `yaml:"password"`
		Name         string        `yaml:"name"`
		SSLMode      string        `yaml:"sslMode"`
		MaxOpen      int           `yaml:"maxOpen"`
		MaxIdle      int           `yaml:"maxIdle"`
		ConnLifetime time.Duration `yaml:"connLifetime"`
	} `yaml:"database"`

	AI struct {
		Provider     string `yaml:"provider"` // openai | gemini
		OpenAIKey    string `yaml:"openaiKey"`
		OpenAIBase   string `yaml:"openaiBaseURL"`
		GeminiKey    string `yaml:"geminiKey"`
		ReportModel  string `yaml:"reportModel"`
		ChatModel    string `yaml:"chatModel"`
		ChatMaxToken int    `yaml:"chatMaxTokens"`
	} `yaml:"ai"`

	Minio struct {
		Enabled    bool   `yaml:"enabled"`
		Endpoint   string `yaml:"endpoint"`
		AccessKey  string `yaml:"accessKey"`
		SecretKey  string `yaml:"secretKey"`
		BucketName string `yaml:"bucketName"`
		Region     string `yaml:"region"`
		UseSSL     bool   `yaml:"useSSL"`
	} `yaml:"minio"`

	Scrape struct {
		Timeout   time.Duration `yaml:"timeout"`
		MaxLength int           `yaml:"maxLength"`
	} `yaml:"scrape"`

	RateLimit struct {
		Capacity   int `yaml:"capacity"`
		RefillRate int `yaml:"refillRate"`
	} `yaml:"rateLimit"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
}

// Default returns a config that runs locally without any backing service.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load baca file config.yaml, lalu .env dan environment override.
// A missing file is not an error: defaults plus env are enough to boot.
func Load(path string) (*Config, error) {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	setString := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	setString(&c.AI.OpenAIKey, "OPENAI_API_KEY")
	setString(&c.AI.OpenAIBase, "OPENAI_BASE_URL")
	setString(&c.AI.GeminiKey, "GEMINI_API_KEY")
	setString(&c.AI.Provider, "AI_PROVIDER")
	setString(&c.Database.Driver, "DB_DRIVER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Minio.AccessKey, "MINIO_ACCESS_KEY")
	setString(&c.Minio.SecretKey, "MINIO_SECRET_KEY")
	setString(&c.Server.PublicOrigin, "PUBLIC_ORIGIN")
	setString(&c.Logging.Level, "LOG_LEVEL")
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15 * time.Second
	}
	// report generation holds the request open
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 3 * time.Minute
	}
	if c.Server.SessionTTL == 0 {
		c.Server.SessionTTL = 30 * time.Minute
	}
	if len(c.Server.AllowOrigins) == 0 {
		c.Server.AllowOrigins = []string{"*"}
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "memory"
	}
	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	if c.Database.Port == 0 {
		switch c.Database.Driver {
		case "postgres":
			c.Database.Port = 5432
		default:
			c.Database.Port = 3306
		}
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpen == 0 {
		c.Database.MaxOpen = 25
	}
	if c.Database.MaxIdle == 0 {
		c.Database.MaxIdle = 10
	}
	if c.Database.ConnLifetime == 0 {
		c.Database.ConnLifetime = 5 * time.Minute
	}
	if c.AI.Provider == "" {
		c.AI.Provider = "openai"
	}
	if c.AI.ChatModel == "" {
		c.AI.ChatModel = "gpt-4o-mini"
	}
	if c.AI.ChatMaxToken == 0 {
		c.AI.ChatMaxToken = 500
	}
	if c.Minio.BucketName == "" {
		c.Minio.BucketName = "brand-snapshots"
	}
	if c.Scrape.Timeout == 0 {
		c.Scrape.Timeout = 30 * time.Second
	}
	if c.Scrape.MaxLength == 0 {
		c.Scrape.MaxLength = 30000
	}
	if c.RateLimit.Capacity == 0 {
		c.RateLimit.Capacity = 60
	}
	if c.RateLimit.RefillRate == 0 {
		c.RateLimit.RefillRate = 1
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
}

// Validate rejects combinations the server cannot start with.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "mysql", "postgres", "memory":
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}
	switch c.AI.Provider {
	case "openai", "gemini":
	default:
		return fmt.Errorf("unknown ai provider %q", c.AI.Provider)
	}
	if c.Server.PublicOrigin != "" {
		u, err := url.Parse(c.Server.PublicOrigin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid publicOrigin %q", c.Server.PublicOrigin)
		}
	}
	if c.Minio.Enabled && strings.TrimSpace(c.Minio.Endpoint) == "" {
		return errors.New("minio enabled without endpoint")
	}
	return nil
}
