// Package notifier delivers price drop alerts to external channels.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"
)

// Alert describes a qualifying price drop for a watched listing
type Alert struct {
	WatchID     int64     `json:"watch_id"`
	UserID      int64     `json:"user_id"`
	ListingID   int64     `json:"listing_id"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	TargetPrice float64   `json:"target_price"`
	ObservedAt  time.Time `json:"observed_at"`
}

// Webhook posts alerts as JSON to a configured URL
type Webhook struct {
	url    string
	client *http.Client
}

// NewWebhook creates a webhook notifier
func NewWebhook(url string, timeout time.Duration) *Webhook {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Webhook{url: url, client: &http.Client{Timeout: timeout}}
}

// Send delivers the alert, treating any non-2xx response as failure
func (w *Webhook) Send(ctx context.Context, alert Alert) error {
	body, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("marshal alert: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("post alert: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status %d from webhook", resp.StatusCode)
	}
	return nil
}

// Log writes alerts to the application log, useful for dry runs and tests
type Log struct{}

// Send logs the alert
func (l *Log) Send(_ context.Context, alert Alert) error {
	lgr.Printf("[INFO] price drop alert: listing %d at %.2f %s (target %.2f, user %d)",
		alert.ListingID, alert.Price, alert.Currency, alert.TargetPrice, alert.UserID)
	return nil
}
