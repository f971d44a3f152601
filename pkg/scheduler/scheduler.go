package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/pricewatch/pkg/domain"
	"github.com/umputun/pricewatch/pkg/notifier"
	"github.com/umputun/pricewatch/pkg/repository"
	"github.com/umputun/pricewatch/pkg/scraper"
)

//go:generate moq -out mocks/listing_store.go -pkg mocks -skip-ensure -fmt goimports . ListingStore
//go:generate moq -out mocks/queue_store.go -pkg mocks -skip-ensure -fmt goimports . QueueStore
//go:generate moq -out mocks/price_store.go -pkg mocks -skip-ensure -fmt goimports . PriceStore
//go:generate moq -out mocks/watch_store.go -pkg mocks -skip-ensure -fmt goimports . WatchStore
//go:generate moq -out mocks/usage_tracker.go -pkg mocks -skip-ensure -fmt goimports . UsageTracker
//go:generate moq -out mocks/scraper.go -pkg mocks -skip-ensure -fmt goimports . Scraper
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// ListingStore is the listing data access needed by populator and processor
type ListingStore interface {
	GetDue(ctx context.Context, now time.Time, lookahead time.Duration, maxFailures, limit int) ([]repository.Listing, error)
	GetWithStore(ctx context.Context, id int64) (*repository.ListingWithStore, error)
	MarkChecked(ctx context.Context, id int64, now time.Time, interval time.Duration) error
	MarkFailed(ctx context.Context, id int64, threshold int, now time.Time) (failures int, active bool, err error)
}

// QueueStore is the queue data access needed by populator, processor and janitor
type QueueStore interface {
	Enqueue(ctx context.Context, entry *repository.QueueEntry) (bool, error)
	ClaimBatch(ctx context.Context, processorID string, limit int, lease time.Duration, now time.Time) ([]repository.QueueEntry, error)
	MarkCompleted(ctx context.Context, id int64, now time.Time) error
	MarkFailed(ctx context.Context, id int64, errMsg string, now time.Time) error
	DeleteTerminalBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// PriceStore is the price history access needed by processor, janitor and alerts
type PriceStore interface {
	Record(ctx context.Context, obs *repository.PriceObservation) error
	LatestForListing(ctx context.Context, listingID int64) (*repository.PriceObservation, error)
	RoseAboveSince(ctx context.Context, listingID int64, threshold float64, since time.Time) (bool, error)
	DeleteOlderThan(ctx context.Context, tier domain.Tier, cutoff time.Time) (int64, error)
}

// WatchStore is the watchlist access needed by the alert evaluator
type WatchStore interface {
	ActiveWatches(ctx context.Context) ([]repository.Watch, error)
	MarkNotified(ctx context.Context, id int64, now time.Time) error
}

// UsageTracker records per-user scrape counts
type UsageTracker interface {
	IncrementUsage(ctx context.Context, userID int64, day string) error
}

// Scraper fetches the current price for a listing. Implementations are
// external collaborators; any returned error is treated as a check failure.
type Scraper interface {
	Scrape(ctx context.Context, listing repository.ListingWithStore) (*scraper.Result, error)
}

// Notifier delivers price drop alerts
type Notifier interface {
	Send(ctx context.Context, alert notifier.Alert) error
}

// Params holds all dependencies and settings for the scheduling service
type Params struct {
	Listings ListingStore
	Queue    QueueStore
	Prices   PriceStore
	Watches  WatchStore
	Usage    UsageTracker
	Scraper  Scraper
	Notifier Notifier

	Lookahead        time.Duration // populator due-scan window
	ScanLimit        int           // max listings per populator run
	BatchSize        int           // max entries claimed per processor run
	Lease            time.Duration // exclusive claim duration
	FailureThreshold int           // consecutive failures before deactivation
	MaxWorkers       int           // concurrent store groups per processor run
	QueueRetention   time.Duration // terminal queue entries kept this long

	PopulateInterval time.Duration // embedded mode cadences
	ProcessInterval  time.Duration
	CleanupInterval  time.Duration
	AlertInterval    time.Duration
}

// Service ties the populator, processor, janitor and alert evaluator
// together. Each Run method is a complete one-shot cycle safe under
// arbitrary repetition and concurrency; Start drives them on tickers for
// single-binary deployments.
type Service struct {
	populator *Populator
	processor *Processor
	janitor   *Janitor
	alerts    *AlertEvaluator

	populateInterval time.Duration
	processInterval  time.Duration
	cleanupInterval  time.Duration
	alertInterval    time.Duration

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewService creates the scheduling service, applying defaults for unset params
func NewService(p Params) *Service {
	if p.Lookahead == 0 {
		p.Lookahead = time.Hour
	}
	if p.ScanLimit == 0 {
		p.ScanLimit = 500
	}
	if p.BatchSize == 0 {
		p.BatchSize = 20
	}
	if p.Lease == 0 {
		p.Lease = 5 * time.Minute
	}
	if p.FailureThreshold == 0 {
		p.FailureThreshold = 5
	}
	if p.MaxWorkers == 0 {
		p.MaxWorkers = 5
	}
	if p.QueueRetention == 0 {
		p.QueueRetention = 48 * time.Hour
	}
	if p.PopulateInterval == 0 {
		p.PopulateInterval = time.Hour
	}
	if p.ProcessInterval == 0 {
		p.ProcessInterval = 10 * time.Minute
	}
	if p.CleanupInterval == 0 {
		p.CleanupInterval = 24 * time.Hour
	}
	if p.AlertInterval == 0 {
		p.AlertInterval = 15 * time.Minute
	}

	return &Service{
		populator: &Populator{
			listings:         p.Listings,
			queue:            p.Queue,
			lookahead:        p.Lookahead,
			scanLimit:        p.ScanLimit,
			failureThreshold: p.FailureThreshold,
		},
		processor: &Processor{
			listings:         p.Listings,
			queue:            p.Queue,
			prices:           p.Prices,
			usage:            p.Usage,
			scraper:          p.Scraper,
			batchSize:        p.BatchSize,
			lease:            p.Lease,
			failureThreshold: p.FailureThreshold,
			maxWorkers:       p.MaxWorkers,
		},
		janitor: &Janitor{
			queue:          p.Queue,
			prices:         p.Prices,
			queueRetention: p.QueueRetention,
		},
		alerts: &AlertEvaluator{
			watches:  p.Watches,
			prices:   p.Prices,
			notifier: p.Notifier,
		},
		populateInterval: p.PopulateInterval,
		processInterval:  p.ProcessInterval,
		cleanupInterval:  p.CleanupInterval,
		alertInterval:    p.AlertInterval,
	}
}

// Populate runs the populator once
func (s *Service) Populate(ctx context.Context) (PopulateResult, error) {
	return s.populator.Run(ctx)
}

// ProcessQueue runs the processor once
func (s *Service) ProcessQueue(ctx context.Context, processorID string) (ProcessResult, error) {
	return s.processor.Run(ctx, processorID)
}

// Cleanup runs the janitor once
func (s *Service) Cleanup(ctx context.Context, action string) (CleanupResult, error) {
	return s.janitor.Run(ctx, action)
}

// ProcessAlerts runs the alert evaluator once
func (s *Service) ProcessAlerts(ctx context.Context) (AlertResult, error) {
	return s.alerts.Run(ctx)
}

// Start begins embedded ticker mode, driving all cycles until Stop
func (s *Service) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(4)
	go s.loop(ctx, "populate", s.populateInterval, func(ctx context.Context) error {
		_, err := s.Populate(ctx)
		return err
	})
	go s.loop(ctx, "process", s.processInterval, func(ctx context.Context) error {
		_, err := s.ProcessQueue(ctx, "embedded")
		return err
	})
	go s.loop(ctx, "cleanup", s.cleanupInterval, func(ctx context.Context) error {
		_, err := s.Cleanup(ctx, ActionAll)
		return err
	})
	go s.loop(ctx, "alerts", s.alertInterval, func(ctx context.Context) error {
		_, err := s.ProcessAlerts(ctx)
		return err
	})

	lgr.Printf("[INFO] scheduler started, populate %v, process %v, cleanup %v, alerts %v",
		s.populateInterval, s.processInterval, s.cleanupInterval, s.alertInterval)
}

// Stop gracefully stops embedded ticker mode
func (s *Service) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// loop runs fn immediately and then on every tick until the context is done
func (s *Service) loop(ctx context.Context, name string, interval time.Duration, fn func(context.Context) error) {
	defer s.wg.Done()

	if err := fn(ctx); err != nil {
		lgr.Printf("[ERROR] %s cycle failed: %v", name, err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := fn(ctx); err != nil {
				lgr.Printf("[ERROR] %s cycle failed: %v", name, err)
			}
		}
	}
}
