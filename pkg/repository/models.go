package repository

import (
	"database/sql"
	"time"

	"github.com/umputun/pricewatch/pkg/domain"
)

// queue entry statuses
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// User represents an account owning products and watchlists
type User struct {
	ID        int64       `db:"id"`
	Email     string      `db:"email"`
	Tier      domain.Tier `db:"tier"`
	CreatedAt time.Time   `db:"created_at"`
}

// Product represents a product tracked by a user across stores
type Product struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// Store represents a retail site with optional CSS selectors for extraction
type Store struct {
	ID                   int64     `db:"id"`
	Name                 string    `db:"name"`
	Domain               string    `db:"domain"`
	PriceSelector        string    `db:"price_selector"`
	AvailabilitySelector string    `db:"availability_selector"`
	CreatedAt            time.Time `db:"created_at"`
}

// Listing represents one (product, store) pair being monitored
type Listing struct {
	ID                  int64        `db:"id"`
	ProductID           int64        `db:"product_id"`
	StoreID             int64        `db:"store_id"`
	UserID              int64        `db:"user_id"`
	URL                 string       `db:"url"`
	Tier                domain.Tier  `db:"tier"`
	CheckIntervalHours  int          `db:"check_interval_hours"`
	LastCheckedAt       sql.NullTime `db:"last_checked_at"`
	NextCheckAt         time.Time    `db:"next_check_at"`
	ConsecutiveFailures int          `db:"consecutive_failures"`
	IsActive            bool         `db:"is_active"`
	CreatedAt           time.Time    `db:"created_at"`
	UpdatedAt           time.Time    `db:"updated_at"`
}

// ListingWithStore is a listing joined with its store's scraping hints
type ListingWithStore struct {
	Listing
	StoreDomain          string `db:"store_domain"`
	PriceSelector        string `db:"price_selector"`
	AvailabilitySelector string `db:"availability_selector"`
}

// QueueEntry represents one scheduled attempt to check a listing
type QueueEntry struct {
	ID           int64          `db:"id"`
	ListingID    int64          `db:"listing_id"`
	UserID       int64          `db:"user_id"`
	Tier         domain.Tier    `db:"tier"`
	ScheduledFor time.Time      `db:"scheduled_for"`
	Priority     int            `db:"priority"`
	Status       string         `db:"status"`
	Attempts     int            `db:"attempts"`
	LockedBy     sql.NullString `db:"locked_by"`
	LeaseExpiry  sql.NullTime   `db:"lease_expiry"`
	ProcessedAt  sql.NullTime   `db:"processed_at"`
	ErrorMessage sql.NullString `db:"error_message"`
	CreatedAt    time.Time      `db:"created_at"`
}

// QueueStats summarizes queue health
type QueueStats struct {
	Pending       int          `db:"pending"`
	Processing    int          `db:"processing"`
	Completed     int          `db:"completed"`
	Failed        int          `db:"failed"`
	OldestPending sql.NullTime `db:"oldest_pending"`
}

// PriceObservation represents one recorded scrape outcome, immutable once written
type PriceObservation struct {
	ID         int64     `db:"id"`
	ListingID  int64     `db:"listing_id"`
	UserID     int64     `db:"user_id"`
	Price      float64   `db:"price"`
	Currency   string    `db:"currency"`
	InStock    bool      `db:"in_stock"`
	Confidence float64   `db:"confidence"`
	ScrapedAt  time.Time `db:"scraped_at"`
}

// Watch represents a user's price-drop subscription for a listing
type Watch struct {
	ID             int64        `db:"id"`
	UserID         int64        `db:"user_id"`
	ListingID      int64        `db:"listing_id"`
	TargetPrice    float64      `db:"target_price"`
	NotifyOnDrop   bool         `db:"notify_on_drop"`
	LastNotifiedAt sql.NullTime `db:"last_notified_at"`
	CreatedAt      time.Time    `db:"created_at"`
}
