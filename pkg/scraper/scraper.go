// Package scraper fetches product pages and extracts the current price.
// Selector-based extraction is tried first; page text plus an LLM fallback
// covers stores without known selectors.
package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-pkgz/lgr"
	"github.com/markusmobius/go-trafilatura"
	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/pricewatch/pkg/repository"
)

// Result is the outcome of one successful scrape
type Result struct {
	Price      float64
	Currency   string
	InStock    bool
	Confidence float64
	Title      string
}

// PriceExtractor pulls price data from unstructured page text, used when
// selectors find nothing
type PriceExtractor interface {
	ExtractPrice(ctx context.Context, pageText string) (*Extraction, error)
}

// Extraction mirrors the LLM extractor result to avoid a dependency cycle
type Extraction struct {
	Price      float64 `json:"price"`
	Currency   string  `json:"currency"`
	InStock    bool    `json:"in_stock"`
	Confidence float64 `json:"confidence"`
}

// HTTPScraper fetches listing pages over plain HTTP
type HTTPScraper struct {
	client    *http.Client
	extractor PriceExtractor
	sanitizer *bluemonday.Policy
	userAgent string
	maxBody   int64
}

// NewHTTPScraper creates a scraper. The extractor may be nil, disabling the
// LLM fallback.
func NewHTTPScraper(timeout time.Duration, userAgent string, maxBody int64, extractor PriceExtractor) *HTTPScraper {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	if maxBody == 0 {
		maxBody = 2 * 1024 * 1024
	}
	return &HTTPScraper{
		client:    &http.Client{Timeout: timeout},
		extractor: extractor,
		sanitizer: bluemonday.StrictPolicy(),
		userAgent: userAgent,
		maxBody:   maxBody,
	}
}

// Scrape fetches the listing URL and extracts price, availability and title
func (s *HTTPScraper) Scrape(ctx context.Context, listing repository.ListingWithStore) (*Result, error) {
	parsedURL, err := url.Parse(listing.URL)
	if err != nil {
		return nil, fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid URL: %s", listing.URL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listing.URL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	addBrowserHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL %s: %w", listing.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, listing.URL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBody))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	title := s.sanitizer.Sanitize(strings.TrimSpace(doc.Find("title").First().Text()))

	// selector pass first, cheap and precise when the store is known
	if listing.PriceSelector != "" {
		result, selErr := s.scrapeWithSelectors(doc, listing)
		if selErr == nil {
			result.Title = title
			return result, nil
		}
		lgr.Printf("[DEBUG] selector extraction failed for %s: %v", listing.URL, selErr)
	}

	if s.extractor == nil {
		return nil, fmt.Errorf("no price found at %s and no extractor configured", listing.URL)
	}

	// LLM fallback on readable page text
	pageText, err := extractPageText(bytes.NewReader(body), parsedURL)
	if err != nil {
		return nil, fmt.Errorf("extract page text: %w", err)
	}

	extracted, err := s.extractor.ExtractPrice(ctx, pageText)
	if err != nil {
		return nil, fmt.Errorf("llm price extraction for %s: %w", listing.URL, err)
	}

	return &Result{
		Price:      extracted.Price,
		Currency:   extracted.Currency,
		InStock:    extracted.InStock,
		Confidence: extracted.Confidence,
		Title:      title,
	}, nil
}

// scrapeWithSelectors extracts price and availability using the store's CSS selectors
func (s *HTTPScraper) scrapeWithSelectors(doc *goquery.Document, listing repository.ListingWithStore) (*Result, error) {
	priceText := strings.TrimSpace(doc.Find(listing.PriceSelector).First().Text())
	if priceText == "" {
		return nil, fmt.Errorf("price selector %q matched nothing", listing.PriceSelector)
	}

	price, currency, err := ParsePrice(priceText)
	if err != nil {
		return nil, fmt.Errorf("parse price %q: %w", priceText, err)
	}

	inStock := true
	if listing.AvailabilitySelector != "" {
		availText := strings.ToLower(strings.TrimSpace(doc.Find(listing.AvailabilitySelector).First().Text()))
		for _, marker := range []string{"out of stock", "unavailable", "sold out"} {
			if strings.Contains(availText, marker) {
				inStock = false
				break
			}
		}
	}

	return &Result{Price: price, Currency: currency, InStock: inStock, Confidence: 0.95}, nil
}

// extractPageText pulls readable text out of the page for the LLM fallback
func extractPageText(body io.Reader, pageURL *url.URL) (string, error) {
	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		ExcludeTables:   false,
		Deduplicate:     true,
		OriginalURL:     pageURL,
	}

	result, err := trafilatura.Extract(body, opts)
	if err != nil {
		return "", fmt.Errorf("extract content: %w", err)
	}
	if result == nil || strings.TrimSpace(result.ContentText) == "" {
		return "", fmt.Errorf("no text content extracted")
	}
	return strings.TrimSpace(result.ContentText), nil
}

// currency symbols and codes recognized in price text
var currencyMarkers = []struct {
	marker   string
	currency string
}{
	{"€", "EUR"}, {"EUR", "EUR"},
	{"£", "GBP"}, {"GBP", "GBP"},
	{"¥", "JPY"}, {"JPY", "JPY"},
	{"$", "USD"}, {"USD", "USD"},
}

// ParsePrice extracts a numeric price and currency from text like
// "$1,299.99" or "1.299,99 €". Defaults to USD when no marker is present.
func ParsePrice(text string) (price float64, currency string, err error) {
	currency = "USD"
	for _, m := range currencyMarkers {
		if strings.Contains(text, m.marker) {
			currency = m.currency
			break
		}
	}

	// collect the first run of digits with separators
	start := -1
	end := -1
	for i, r := range text {
		if r >= '0' && r <= '9' {
			if start == -1 {
				start = i
			}
			end = i + 1
			continue
		}
		if start != -1 && (r == '.' || r == ',') {
			continue
		}
		if start != -1 {
			break
		}
	}
	if start == -1 {
		return 0, "", fmt.Errorf("no digits in %q", text)
	}

	num := strings.TrimRight(text[start:end], ".,")

	// the last separator is the decimal point, everything else is grouping
	lastDot := strings.LastIndex(num, ".")
	lastComma := strings.LastIndex(num, ",")
	sep := lastDot
	if lastComma > lastDot {
		sep = lastComma
	}

	if sep != -1 {
		intPart := strings.Map(keepDigits, num[:sep])
		fracPart := strings.Map(keepDigits, num[sep+1:])
		if len(fracPart) == 3 { // it was a thousands separator, e.g. "1,299"
			intPart += fracPart
			fracPart = ""
		}
		num = intPart
		if fracPart != "" {
			num += "." + fracPart
		}
	}

	price, err = strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, "", fmt.Errorf("parse %q: %w", num, err)
	}
	return price, currency, nil
}

func keepDigits(r rune) rune {
	if r >= '0' && r <= '9' {
		return r
	}
	return -1
}
