package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/pricewatch/pkg/domain"
	"github.com/umputun/pricewatch/pkg/repository"
	"github.com/umputun/pricewatch/pkg/scheduler"
)

// statusHandler returns server status and queue health
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.stores.Queue.Stats(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to get queue stats: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	queue := map[string]interface{}{
		"pending":    stats.Pending,
		"processing": stats.Processing,
		"completed":  stats.Completed,
		"failed":     stats.Failed,
	}
	if stats.OldestPending.Valid {
		queue["oldest_pending"] = stats.OldestPending.Time
	}

	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
		"queue":   queue,
	}
	renderJSON(w, r, http.StatusOK, status)
}

// populateHandler runs one populate cycle
func (s *Server) populateHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.scheduler.Populate(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] populate cycle failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// processHandler runs one process cycle for the calling worker
func (s *Server) processHandler(w http.ResponseWriter, r *http.Request) {
	processorID := r.URL.Query().Get("processor_id")
	if processorID == "" {
		processorID = "api"
	}

	res, err := s.scheduler.ProcessQueue(r.Context(), processorID)
	if err != nil {
		lgr.Printf("[ERROR] process cycle failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// cleanupHandler runs one cleanup cycle
func (s *Server) cleanupHandler(w http.ResponseWriter, r *http.Request) {
	action := r.URL.Query().Get("action")
	if action == "" {
		action = scheduler.ActionAll
	}

	res, err := s.scheduler.Cleanup(r.Context(), action)
	if err != nil {
		// bad action is the caller's fault, anything else is a store failure
		if errors.Is(err, scheduler.ErrUnknownAction) {
			renderError(w, r, err, http.StatusBadRequest)
			return
		}
		lgr.Printf("[ERROR] cleanup cycle failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// alertsHandler runs one alert evaluation cycle
func (s *Server) alertsHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.scheduler.ProcessAlerts(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] alert cycle failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// createListingRequest is the payload for POST /listings
type createListingRequest struct {
	ProductID int64  `json:"product_id"`
	StoreID   int64  `json:"store_id"`
	UserID    int64  `json:"user_id"`
	URL       string `json:"url"`
}

// createListingHandler registers a new listing, enforcing the owner's tier cap
func (s *Server) createListingHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.ProductID == 0 || req.StoreID == 0 || req.UserID == 0 || req.URL == "" {
		renderError(w, r, fmt.Errorf("product_id, store_id, user_id and url are required"), http.StatusBadRequest)
		return
	}

	user, err := s.stores.Catalog.GetUser(ctx, req.UserID)
	if err != nil {
		renderError(w, r, fmt.Errorf("unknown user"), http.StatusNotFound)
		return
	}

	policy := domain.PolicyFor(user.Tier)
	active, err := s.stores.Listings.CountActiveForUser(ctx, user.ID)
	if err != nil {
		lgr.Printf("[ERROR] failed to count listings for user %d: %v", user.ID, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if active >= policy.MaxProducts {
		renderError(w, r, fmt.Errorf("tier %s allows at most %d active listings", user.Tier, policy.MaxProducts), http.StatusForbidden)
		return
	}

	listing := &repository.Listing{
		ProductID: req.ProductID,
		StoreID:   req.StoreID,
		UserID:    req.UserID,
		URL:       req.URL,
		Tier:      user.Tier,
	}
	if err := s.stores.Listings.Create(ctx, listing); err != nil {
		lgr.Printf("[ERROR] failed to create listing: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusCreated, listing)
}

// resetListingHandler reactivates a listing and clears its failure streak
func (s *Server) resetListingHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid listing ID"), http.StatusBadRequest)
		return
	}

	if _, err := s.stores.Listings.Get(ctx, id); err != nil {
		renderError(w, r, fmt.Errorf("listing not found"), http.StatusNotFound)
		return
	}

	if err := s.stores.Listings.Reset(ctx, id, time.Now().UTC()); err != nil {
		lgr.Printf("[ERROR] failed to reset listing %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{"result": "reset"})
}

// priceHistoryHandler returns recorded observations for a listing, newest first
func (s *Server) priceHistoryHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid listing ID"), http.StatusBadRequest)
		return
	}

	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 500 {
			limit = parsed
		}
	}

	history, err := s.stores.Prices.HistoryForListing(ctx, id, limit)
	if err != nil {
		lgr.Printf("[ERROR] failed to get price history for listing %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	type observation struct {
		Price      float64   `json:"price"`
		Currency   string    `json:"currency"`
		InStock    bool      `json:"in_stock"`
		Confidence float64   `json:"confidence"`
		ScrapedAt  time.Time `json:"scraped_at"`
	}
	out := make([]observation, 0, len(history))
	for _, h := range history {
		out = append(out, observation{Price: h.Price, Currency: h.Currency, InStock: h.InStock,
			Confidence: h.Confidence, ScrapedAt: h.ScrapedAt})
	}
	renderJSON(w, r, http.StatusOK, out)
}

// createWatchRequest is the payload for POST /watches
type createWatchRequest struct {
	UserID      int64   `json:"user_id"`
	ListingID   int64   `json:"listing_id"`
	TargetPrice float64 `json:"target_price"`
}

// createWatchHandler subscribes a user to price drops on a listing
func (s *Server) createWatchHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createWatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.UserID == 0 || req.ListingID == 0 || req.TargetPrice <= 0 {
		renderError(w, r, fmt.Errorf("user_id, listing_id and positive target_price are required"), http.StatusBadRequest)
		return
	}

	watch := &repository.Watch{
		UserID:       req.UserID,
		ListingID:    req.ListingID,
		TargetPrice:  req.TargetPrice,
		NotifyOnDrop: true,
	}
	if err := s.stores.Watches.Create(ctx, watch); err != nil {
		lgr.Printf("[ERROR] failed to create watch: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusCreated, watch)
}

// usageHandler returns the user's scrape count for a given day (default today)
func (s *Server) usageHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid user ID"), http.StatusBadRequest)
		return
	}

	day := r.URL.Query().Get("day")
	if day == "" {
		day = time.Now().UTC().Format("2006-01-02")
	}

	count, err := s.stores.Catalog.GetUsage(ctx, id, day)
	if err != nil {
		lgr.Printf("[ERROR] failed to get usage for user %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{"user_id": id, "day": day, "scrapes": count})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
