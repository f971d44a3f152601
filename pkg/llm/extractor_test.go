package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/pricewatch/pkg/config"
)

// newTestServer returns an OpenAI-compatible stub replying with the given content
func newTestServer(t *testing.T, content string, capture *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if capture != nil {
			messages := req["messages"].([]interface{})
			last := messages[len(messages)-1].(map[string]interface{})
			*capture = last["content"].(string)
		}

		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func testConfig(endpoint string) config.LLMConfig {
	return config.LLMConfig{
		Enabled:      true,
		Endpoint:     endpoint,
		APIKey:       "test-key",
		Model:        "test-model",
		Temperature:  0.1,
		MaxTokens:    300,
		Timeout:      5 * time.Second,
		MaxTextChars: 100,
	}
}

func TestExtractor_ExtractPrice(t *testing.T) {
	ts := newTestServer(t, `{"price": 129.99, "currency": "USD", "in_stock": true, "confidence": 0.9}`, nil)
	defer ts.Close()

	e := NewExtractor(testConfig(ts.URL))
	extraction, err := e.ExtractPrice(context.Background(), "Acme Widget, now only $129.99, in stock")
	require.NoError(t, err)

	assert.InDelta(t, 129.99, extraction.Price, 0.001)
	assert.Equal(t, "USD", extraction.Currency)
	assert.True(t, extraction.InStock)
	assert.InDelta(t, 0.9, extraction.Confidence, 0.001)
}

func TestExtractor_ExtractPriceFencedJSON(t *testing.T) {
	ts := newTestServer(t, "```json\n{\"price\": 15.50, \"currency\": \"EUR\", \"in_stock\": false, \"confidence\": 0.7}\n```", nil)
	defer ts.Close()

	e := NewExtractor(testConfig(ts.URL))
	extraction, err := e.ExtractPrice(context.Background(), "some page text")
	require.NoError(t, err)

	assert.InDelta(t, 15.50, extraction.Price, 0.001)
	assert.Equal(t, "EUR", extraction.Currency)
	assert.False(t, extraction.InStock)
}

func TestExtractor_ExtractPriceTruncates(t *testing.T) {
	var sent string
	ts := newTestServer(t, `{"price": 1, "currency": "USD", "in_stock": true, "confidence": 0.5}`, &sent)
	defer ts.Close()

	long := make([]byte, 500)
	for i := range long {
		long[i] = 'x'
	}

	e := NewExtractor(testConfig(ts.URL))
	_, err := e.ExtractPrice(context.Background(), string(long))
	require.NoError(t, err)
	assert.Len(t, sent, 100, "page text truncated to the configured limit")
}

func TestExtractor_ExtractPriceNoPrice(t *testing.T) {
	ts := newTestServer(t, `{"price": 0, "currency": "", "in_stock": false, "confidence": 0}`, nil)
	defer ts.Close()

	e := NewExtractor(testConfig(ts.URL))
	_, err := e.ExtractPrice(context.Background(), "page without any price")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not determine price")
}

func TestExtractor_ExtractPriceBadJSON(t *testing.T) {
	ts := newTestServer(t, "sorry, I can't help with that", nil)
	defer ts.Close()

	e := NewExtractor(testConfig(ts.URL))
	_, err := e.ExtractPrice(context.Background(), "some page text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse llm response")
}

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", `{"price": 1}`, `{"price": 1}`},
		{"json fence", "```json\n{\"price\": 1}\n```", `{"price": 1}`},
		{"bare fence", "```\n{\"price\": 1}\n```", `{"price": 1}`},
		{"whitespace", "  {\"price\": 1}  ", `{"price": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanJSONResponse(tt.input))
		})
	}
}
