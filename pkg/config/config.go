package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen    string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		AuthToken string        `yaml:"auth_token" json:"auth_token" jsonschema:"description=Shared secret bearer token for trigger endpoints"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:pricewatch.db?cache=shared&mode=rwc&_txlock=immediate,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Queue scheduling configuration"`

	Scraper ScraperConfig `yaml:"scraper" json:"scraper" jsonschema:"description=Scraper configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for price extraction fallback"`

	Notify struct {
		WebhookURL     string `yaml:"webhook_url" json:"webhook_url" jsonschema:"description=Webhook URL for price drop alerts (empty logs alerts instead)"`
		TimeoutSeconds int    `yaml:"timeout_seconds" json:"timeout_seconds" jsonschema:"default=10,description=Webhook request timeout in seconds"`
	} `yaml:"notify" json:"notify" jsonschema:"description=Notification configuration"`
}

// ScheduleConfig holds queue scheduling settings. Interval values are in
// minutes unless the field name says otherwise.
type ScheduleConfig struct {
	Internal            bool `yaml:"internal" json:"internal" jsonschema:"default=false,description=Run cycles on internal tickers instead of relying on external triggers"`
	PopulateInterval    int  `yaml:"populate_interval" json:"populate_interval" jsonschema:"default=60,description=Populate cycle interval in minutes (internal mode)"`
	ProcessInterval     int  `yaml:"process_interval" json:"process_interval" jsonschema:"default=10,description=Process cycle interval in minutes (internal mode)"`
	CleanupInterval     int  `yaml:"cleanup_interval" json:"cleanup_interval" jsonschema:"default=1440,description=Cleanup cycle interval in minutes (internal mode)"`
	AlertInterval       int  `yaml:"alert_interval" json:"alert_interval" jsonschema:"default=15,description=Alert cycle interval in minutes (internal mode)"`
	LookaheadMinutes    int  `yaml:"lookahead_minutes" json:"lookahead_minutes" jsonschema:"default=60,description=Populate due-scan lookahead window in minutes"`
	ScanLimit           int  `yaml:"scan_limit" json:"scan_limit" jsonschema:"default=500,description=Maximum listings per populate run"`
	BatchSize           int  `yaml:"batch_size" json:"batch_size" jsonschema:"default=20,description=Maximum entries claimed per process run"`
	LeaseMinutes        int  `yaml:"lease_minutes" json:"lease_minutes" jsonschema:"default=5,description=Exclusive claim lease duration in minutes"`
	FailureThreshold    int  `yaml:"failure_threshold" json:"failure_threshold" jsonschema:"default=5,description=Consecutive failures before a listing is deactivated"`
	MaxWorkers          int  `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,description=Concurrent store groups per process run"`
	QueueRetentionHours int  `yaml:"queue_retention_hours" json:"queue_retention_hours" jsonschema:"default=48,description=Hours terminal queue entries are kept"`
}

// ScraperConfig holds HTTP scraping settings
type ScraperConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Scrape timeout per listing"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Mozilla/5.0 (compatible; Pricewatch/1.0),description=User agent for HTTP requests"`
	MaxBody   int64         `yaml:"max_body" json:"max_body" jsonschema:"default=2097152,description=Maximum response body size in bytes"`
}

// LLMConfig holds LLM configuration for price extraction
type LLMConfig struct {
	Enabled      bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable LLM price extraction fallback"`
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.1,description=Temperature for response generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=300,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	MaxTextChars int           `yaml:"max_text_chars" json:"max_text_chars" jsonschema:"default=6000,description=Page text truncation before sending to the LLM"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:pricewatch.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for schedule
	if cfg.Schedule.PopulateInterval == 0 {
		cfg.Schedule.PopulateInterval = 60
	}
	if cfg.Schedule.ProcessInterval == 0 {
		cfg.Schedule.ProcessInterval = 10
	}
	if cfg.Schedule.CleanupInterval == 0 {
		cfg.Schedule.CleanupInterval = 1440
	}
	if cfg.Schedule.AlertInterval == 0 {
		cfg.Schedule.AlertInterval = 15
	}
	if cfg.Schedule.LookaheadMinutes == 0 {
		cfg.Schedule.LookaheadMinutes = 60
	}
	if cfg.Schedule.ScanLimit == 0 {
		cfg.Schedule.ScanLimit = 500
	}
	if cfg.Schedule.BatchSize == 0 {
		cfg.Schedule.BatchSize = 20
	}
	if cfg.Schedule.LeaseMinutes == 0 {
		cfg.Schedule.LeaseMinutes = 5
	}
	if cfg.Schedule.FailureThreshold == 0 {
		cfg.Schedule.FailureThreshold = 5
	}
	if cfg.Schedule.MaxWorkers == 0 {
		cfg.Schedule.MaxWorkers = 5
	}
	if cfg.Schedule.QueueRetentionHours == 0 {
		cfg.Schedule.QueueRetentionHours = 48
	}

	// set defaults for scraper
	if cfg.Scraper.Timeout == 0 {
		cfg.Scraper.Timeout = 30 * time.Second
	}
	if cfg.Scraper.UserAgent == "" {
		cfg.Scraper.UserAgent = "Mozilla/5.0 (compatible; Pricewatch/1.0)"
	}
	if cfg.Scraper.MaxBody == 0 {
		cfg.Scraper.MaxBody = 2 * 1024 * 1024
	}

	// set defaults for llm
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.1
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 300
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 30 * time.Second
	}
	if cfg.LLM.MaxTextChars == 0 {
		cfg.LLM.MaxTextChars = 6000
	}

	// set defaults for notify
	if cfg.Notify.TimeoutSeconds == 0 {
		cfg.Notify.TimeoutSeconds = 10
	}

	return &cfg, nil
}

// GetServerConfig returns server listen address and timeout
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetAuthToken returns the shared secret for trigger endpoints
func (c *Config) GetAuthToken() string {
	return c.Server.AuthToken
}
