package resolver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// fakeProvider is an OpenAI-compatible chat-completions endpoint whose
// reply (or failure) depends on the requested model.
func fakeProvider(t *testing.T, perModel map[string]string, calls *[]string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Model string `json:"model"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Bad request body: %v", err)
		}
		*calls = append(*calls, req.Model)

		content, ok := perModel[req.Model]
		if !ok {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"message": "model overloaded", "type": "server_error"},
			})
			return
		}

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		})
	}))
}

func newTestClient(ts *httptest.Server, models ...string) *Client {
	return New(Options{
		APIKey:  "test-key",
		BaseURL: ts.URL + "/v1",
		Models:  models,
		Timeout: 5 * time.Second,
	})
}

const foundGeneration = "```json\n" + `{
  "found": true,
  "medicine": {
    "id": "m-1",
    "name": "Crocin 650",
    "genericName": "Paracetamol",
    "manufacturer": "GSK",
    "schedule": "OTC",
    "composition": ["Paracetamol 650mg"],
    "uses": ["Fever"],
    "sideEffects": ["Nausea"],
    "warnings": ["Do not exceed recommended dose"],
    "contraindications": ["Severe liver impairment"],
    "price": {"amount": 100, "currency": "INR", "unit": "strip of 15 tablets"},
    "availability": "Widely Available",
    "dosageForms": ["Tablet"]
  },
  "disclaimer": "This information is for educational purposes only."
}` + "\n```"

func TestLookupSuccess(t *testing.T) {
	var calls []string
	ts := fakeProvider(t, map[string]string{"good-model": foundGeneration}, &calls)
	defer ts.Close()

	c := newTestClient(ts, "good-model")
	result, err := c.Lookup(context.Background(), "Crocin 650")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !result.Found || result.Medicine == nil {
		t.Fatalf("Expected a found result, got %+v", result)
	}
	if result.Medicine.Name != "Crocin 650" {
		t.Errorf("Expected name Crocin 650, got %s", result.Medicine.Name)
	}
	if result.Medicine.PriceRange.Min != 80 || result.Medicine.PriceRange.Max != 120 {
		t.Errorf("Expected derived range 80-120, got %+v", result.Medicine.PriceRange)
	}
	if result.Disclaimer == "" {
		t.Error("Expected the disclaimer to be carried through")
	}
}

func TestLookupModelFallback(t *testing.T) {
	var calls []string
	ts := fakeProvider(t, map[string]string{"backup-model": foundGeneration}, &calls)
	defer ts.Close()

	c := newTestClient(ts, "dead-model", "backup-model")
	result, err := c.Lookup(context.Background(), "Crocin 650")
	if err != nil {
		t.Fatalf("Expected fallback success, got %v", err)
	}

	if !result.Found {
		t.Fatal("Expected a found result from the backup model")
	}
	if len(calls) != 2 || calls[0] != "dead-model" || calls[1] != "backup-model" {
		t.Errorf("Expected ordered fallback [dead-model backup-model], got %v", calls)
	}
}

func TestLookupAllModelsFail(t *testing.T) {
	var calls []string
	ts := fakeProvider(t, nil, &calls)
	defer ts.Close()

	c := newTestClient(ts, "dead-one", "dead-two")
	_, err := c.Lookup(context.Background(), "Crocin 650")
	if !errors.Is(err, ErrProvider) {
		t.Fatalf("Expected ErrProvider, got %v", err)
	}
	if len(calls) != 2 {
		t.Errorf("Expected both models tried, got %v", calls)
	}
}

func TestLookupNotFoundWithSuggestion(t *testing.T) {
	var calls []string
	generation := `{"found": false, "medicine": null, "suggestion": "Did you mean Dolo 650?", "disclaimer": "This information is for educational purposes only."}`
	ts := fakeProvider(t, map[string]string{"good-model": generation}, &calls)
	defer ts.Close()

	c := newTestClient(ts, "good-model")
	result, err := c.Lookup(context.Background(), "dollo")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Found || result.Medicine != nil {
		t.Errorf("Expected a negative result, got %+v", result)
	}
	if result.Suggestion != "Did you mean Dolo 650?" {
		t.Errorf("Expected the suggestion carried through, got %q", result.Suggestion)
	}
}

func TestLookupUnparseableGenerationIsRecovered(t *testing.T) {
	var calls []string
	ts := fakeProvider(t, map[string]string{"good-model": "I am sorry, I cannot answer that."}, &calls)
	defer ts.Close()

	c := newTestClient(ts, "good-model")
	result, err := c.Lookup(context.Background(), "Crocin 650")
	if err != nil {
		t.Fatalf("Parse failures must be recovered, got error %v", err)
	}

	if result.Found {
		t.Error("Expected found=false for an unparseable generation")
	}
	if result.Error == "" {
		t.Error("Expected an error field on the recovered result")
	}
	if result.Error != "Failed to parse medicine information" {
		t.Errorf("Raw provider text must not leak, got %q", result.Error)
	}
}

func TestLookupInvalidPriceRangeIsRecovered(t *testing.T) {
	var calls []string
	generation := `{"found": true, "medicine": {"name": "Broken", "priceRange": {"min": 50, "max": 10, "unit": "strip"}}}`
	ts := fakeProvider(t, map[string]string{"good-model": generation}, &calls)
	defer ts.Close()

	c := newTestClient(ts, "good-model")
	result, err := c.Lookup(context.Background(), "Broken")
	if err != nil {
		t.Fatalf("Expected recovery, got %v", err)
	}
	if result.Found || result.Medicine != nil {
		t.Errorf("A record violating min<=max must not pass through, got %+v", result)
	}
}

func TestLookupMissingAPIKey(t *testing.T) {
	c := New(Options{Models: []string{"any"}})
	_, err := c.Lookup(context.Background(), "Dolo 650")
	if !errors.Is(err, ErrNoAPIKey) {
		t.Fatalf("Expected ErrNoAPIKey, got %v", err)
	}
}

func TestLookupEmptyName(t *testing.T) {
	c := New(Options{APIKey: "k", Models: []string{"any"}})
	for _, name := range []string{"", "   "} {
		if _, err := c.Lookup(context.Background(), name); !errors.Is(err, ErrEmptyName) {
			t.Errorf("Expected ErrEmptyName for %q, got %v", name, err)
		}
	}
}
