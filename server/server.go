package server

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/pricewatch/pkg/repository"
	"github.com/umputun/pricewatch/pkg/scheduler"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler
//go:generate moq -out mocks/listing_store.go -pkg mocks -skip-ensure -fmt goimports . ListingStore
//go:generate moq -out mocks/catalog_store.go -pkg mocks -skip-ensure -fmt goimports . CatalogStore
//go:generate moq -out mocks/queue_store.go -pkg mocks -skip-ensure -fmt goimports . QueueStore
//go:generate moq -out mocks/price_store.go -pkg mocks -skip-ensure -fmt goimports . PriceStore
//go:generate moq -out mocks/watch_store.go -pkg mocks -skip-ensure -fmt goimports . WatchStore

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	stores    Stores
	scheduler Scheduler
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Stores groups the data access needed by HTTP handlers
type Stores struct {
	Listings ListingStore
	Catalog  CatalogStore
	Queue    QueueStore
	Prices   PriceStore
	Watches  WatchStore
}

// Scheduler exposes one-shot cycles for external triggers
type Scheduler interface {
	Populate(ctx context.Context) (scheduler.PopulateResult, error)
	ProcessQueue(ctx context.Context, processorID string) (scheduler.ProcessResult, error)
	Cleanup(ctx context.Context, action string) (scheduler.CleanupResult, error)
	ProcessAlerts(ctx context.Context) (scheduler.AlertResult, error)
}

// ListingStore is the listing access needed by handlers
type ListingStore interface {
	Create(ctx context.Context, listing *repository.Listing) error
	Get(ctx context.Context, id int64) (*repository.Listing, error)
	Reset(ctx context.Context, id int64, now time.Time) error
	CountActiveForUser(ctx context.Context, userID int64) (int, error)
}

// CatalogStore is the user access needed by handlers
type CatalogStore interface {
	GetUser(ctx context.Context, id int64) (*repository.User, error)
	GetUsage(ctx context.Context, userID int64, day string) (int, error)
}

// QueueStore is the queue access needed by handlers
type QueueStore interface {
	Stats(ctx context.Context) (*repository.QueueStats, error)
}

// PriceStore is the price history access needed by handlers
type PriceStore interface {
	LatestForListing(ctx context.Context, listingID int64) (*repository.PriceObservation, error)
	HistoryForListing(ctx context.Context, listingID int64, limit int) ([]repository.PriceObservation, error)
}

// WatchStore is the watchlist access needed by handlers
type WatchStore interface {
	Create(ctx context.Context, watch *repository.Watch) error
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetAuthToken() string
}

// New initializes a new server instance
func New(cfg ConfigProvider, stores Stores, sched Scheduler, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		stores:    stores,
		scheduler: sched,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("pricewatch", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		// everything below requires the shared secret
		r.Group().Route(func(auth *routegroup.Bundle) {
			auth.Use(s.authMiddleware)

			// cycle triggers for external cron or worker fleets
			auth.HandleFunc("POST /populate", s.populateHandler)
			auth.HandleFunc("POST /process", s.processHandler)
			auth.HandleFunc("POST /cleanup", s.cleanupHandler)
			auth.HandleFunc("POST /alerts", s.alertsHandler)

			auth.HandleFunc("POST /listings", s.createListingHandler)
			auth.HandleFunc("POST /listings/{id}/reset", s.resetListingHandler)
			auth.HandleFunc("GET /listings/{id}/prices", s.priceHistoryHandler)
			auth.HandleFunc("POST /watches", s.createWatchHandler)
			auth.HandleFunc("GET /users/{id}/usage", s.usageHandler)
		})
	})
}

// authMiddleware rejects requests without the configured bearer token.
// No configured token means the trigger endpoints are disabled entirely.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := s.config.GetAuthToken()
		if token == "" {
			renderError(w, r, fmt.Errorf("endpoint disabled, no auth token configured"), http.StatusForbidden)
			return
		}

		provided := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
			renderError(w, r, fmt.Errorf("unauthorized"), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
