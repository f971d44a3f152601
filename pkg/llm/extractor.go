// Package llm extracts price data from page text using an OpenAI-compatible
// model, serving as the fallback when CSS selectors find nothing.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/pricewatch/pkg/config"
)

// Extractor uses an LLM to pull price data out of unstructured page text
type Extractor struct {
	client *openai.Client
	config config.LLMConfig
}

// Extraction is the structured result of LLM price extraction
type Extraction struct {
	Price      float64 `json:"price"`
	Currency   string  `json:"currency"`
	InStock    bool    `json:"in_stock"`
	Confidence float64 `json:"confidence"`
}

// NewExtractor creates a new LLM price extractor
func NewExtractor(cfg config.LLMConfig) *Extractor {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	return &Extractor{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

const systemPrompt = `You are an assistant that extracts product price information from web page text.
Respond with a single JSON object and nothing else:
- price: the current price of the main product as a number (no currency symbols)
- currency: ISO 4217 code, e.g. "USD" or "EUR"
- in_stock: whether the product appears to be available
- confidence: how certain you are, 0.0 to 1.0

If the page shows both a sale price and an original price, use the sale price.
If no price can be determined, respond with {"price": 0, "currency": "", "in_stock": false, "confidence": 0}.`

// ExtractPrice sends truncated page text to the model and parses the result.
// A zero-confidence result is returned as an error so callers treat it as a
// failed check.
func (e *Extractor) ExtractPrice(ctx context.Context, pageText string) (*Extraction, error) {
	if e.config.MaxTextChars > 0 && len(pageText) > e.config.MaxTextChars {
		pageText = pageText[:e.config.MaxTextChars]
	}

	req := openai.ChatCompletionRequest{
		Model:       e.config.Model,
		Temperature: float32(e.config.Temperature),
		MaxTokens:   e.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: pageText},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
	}

	resp, err := e.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("llm request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("llm returned no choices")
	}

	content := cleanJSONResponse(resp.Choices[0].Message.Content)

	var extraction Extraction
	if err := json.Unmarshal([]byte(content), &extraction); err != nil {
		return nil, fmt.Errorf("parse llm response %q: %w", content, err)
	}

	if extraction.Confidence == 0 || extraction.Price == 0 {
		return nil, fmt.Errorf("llm could not determine price")
	}
	return &extraction, nil
}

// cleanJSONResponse strips markdown code fences some models wrap around JSON
func cleanJSONResponse(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
