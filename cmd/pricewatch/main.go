package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/pricewatch/pkg/config"
	"github.com/umputun/pricewatch/pkg/llm"
	"github.com/umputun/pricewatch/pkg/notifier"
	"github.com/umputun/pricewatch/pkg/repository"
	"github.com/umputun/pricewatch/pkg/scheduler"
	"github.com/umputun/pricewatch/pkg/scraper"
	"github.com/umputun/pricewatch/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	setupLog(opts.Debug, cfg.Server.AuthToken, cfg.LLM.APIKey)

	lgr.Printf("[INFO] starting pricewatch version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Printf("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts.Debug); err != nil {
		lgr.Printf("[ERROR] %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()

	lgr.Printf("[INFO] shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, debug bool) error {
	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to init database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			lgr.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	var extractor scraper.PriceExtractor
	if cfg.LLM.Enabled {
		extractor = &llmAdapter{extractor: llm.NewExtractor(cfg.LLM)}
		lgr.Printf("[INFO] llm price extraction enabled, model %s", cfg.LLM.Model)
	}
	httpScraper := scraper.NewHTTPScraper(cfg.Scraper.Timeout, cfg.Scraper.UserAgent, cfg.Scraper.MaxBody, extractor)

	var alertNotifier scheduler.Notifier = &notifier.Log{}
	if cfg.Notify.WebhookURL != "" {
		alertNotifier = notifier.NewWebhook(cfg.Notify.WebhookURL, time.Duration(cfg.Notify.TimeoutSeconds)*time.Second)
		lgr.Printf("[INFO] webhook notifications enabled")
	}

	svc := scheduler.NewService(scheduler.Params{
		Listings: repos.Listing,
		Queue:    repos.Queue,
		Prices:   repos.Price,
		Watches:  repos.Watchlist,
		Usage:    repos.Catalog,
		Scraper:  httpScraper,
		Notifier: alertNotifier,

		Lookahead:        time.Duration(cfg.Schedule.LookaheadMinutes) * time.Minute,
		ScanLimit:        cfg.Schedule.ScanLimit,
		BatchSize:        cfg.Schedule.BatchSize,
		Lease:            time.Duration(cfg.Schedule.LeaseMinutes) * time.Minute,
		FailureThreshold: cfg.Schedule.FailureThreshold,
		MaxWorkers:       cfg.Schedule.MaxWorkers,
		QueueRetention:   time.Duration(cfg.Schedule.QueueRetentionHours) * time.Hour,

		PopulateInterval: time.Duration(cfg.Schedule.PopulateInterval) * time.Minute,
		ProcessInterval:  time.Duration(cfg.Schedule.ProcessInterval) * time.Minute,
		CleanupInterval:  time.Duration(cfg.Schedule.CleanupInterval) * time.Minute,
		AlertInterval:    time.Duration(cfg.Schedule.AlertInterval) * time.Minute,
	})

	if cfg.Schedule.Internal {
		svc.Start(ctx)
		defer svc.Stop()
	}

	srv := server.New(cfg, server.Stores{
		Listings: repos.Listing,
		Catalog:  repos.Catalog,
		Queue:    repos.Queue,
		Prices:   repos.Price,
		Watches:  repos.Watchlist,
	}, svc, revision, debug)

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// llmAdapter bridges the llm extractor to the scraper's extraction type
type llmAdapter struct {
	extractor *llm.Extractor
}

func (a *llmAdapter) ExtractPrice(ctx context.Context, pageText string) (*scraper.Extraction, error) {
	res, err := a.extractor.ExtractPrice(ctx, pageText)
	if err != nil {
		return nil, err
	}
	return &scraper.Extraction{Price: res.Price, Currency: res.Currency, InStock: res.InStock, Confidence: res.Confidence}, nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	// keep secrets out of logs
	var secrets []string
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
