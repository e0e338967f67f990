// Package resolver translates a medicine name into structured data through
// a generative-text provider. One adapter replaces the several near-identical
// lookup proxies this service grew out of: the provider endpoint, credential
// and model fallback list are all configuration.
package resolver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/sidesh-hub/medinfo-india/interfaces"
	"github.com/sidesh-hub/medinfo-india/logging"
	"github.com/sidesh-hub/medinfo-india/medicine"
	"github.com/sidesh-hub/medinfo-india/metrics"
)

// Compile-time check to ensure Client implements Resolver
var _ interfaces.Resolver = (*Client)(nil)

var (
	// ErrNoAPIKey means the provider credential is missing. The lookup path
	// is unusable but the rest of the service keeps running.
	ErrNoAPIKey = errors.New("provider API key is not configured")

	// ErrEmptyName means the caller passed a blank medicine name.
	ErrEmptyName = errors.New("medicine name is required")

	// ErrProvider means every configured model failed at the transport level.
	ErrProvider = errors.New("provider request failed")
)

// Options configures the resolver.
type Options struct {
	APIKey  string
	BaseURL string        // optional; any OpenAI-compatible endpoint
	Models  []string      // ordered fallback list, first success wins
	Timeout time.Duration // per-lookup bound; zero means DefaultTimeout
}

// DefaultTimeout bounds a lookup when Options.Timeout is zero. The provider
// call is the only unbounded-latency operation in a turn.
const DefaultTimeout = 25 * time.Second

// Client is the go-openai backed resolver.
type Client struct {
	api     *openai.Client
	models  []string
	timeout time.Duration
	hasKey  bool
}

// New builds a resolver from options. A missing API key does not fail
// construction; Lookup reports ErrNoAPIKey instead so the caller can map it
// to a configuration-error message.
func New(opts Options) *Client {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}

	models := opts.Models
	if len(models) == 0 {
		models = []string{openai.GPT4Turbo}
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		api:     openai.NewClientWithConfig(cfg),
		models:  models,
		timeout: timeout,
		hasKey:  opts.APIKey != "",
	}
}

// Lookup asks the provider for structured medicine data. Transport failures
// walk the model fallback list in order and accept the first success. A
// malformed or empty generation is recovered into a Found=false result; raw
// provider text never reaches the caller.
func (c *Client) Lookup(ctx context.Context, name string) (*medicine.LookupResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !c.hasKey {
		return nil, ErrNoAPIKey
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	content, err := c.generate(ctx, name)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(content) == "" {
		logging.Warn("Provider returned empty generation", "medicine", name)
		return parseFailure(), nil
	}

	raw, err := extractJSON(content)
	if err != nil {
		logging.Warn("Provider generation had no extractable JSON", "medicine", name, "error", err)
		return parseFailure(), nil
	}

	var payload medicine.ProviderPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		logging.Warn("Provider JSON did not parse", "medicine", name, "error", err)
		return parseFailure(), nil
	}

	result := &medicine.LookupResult{
		Found:      payload.Found,
		Suggestion: payload.Suggestion,
		Disclaimer: payload.Disclaimer,
		Error:      payload.Error,
	}

	if payload.Found && payload.Medicine != nil {
		med := medicine.FromProvider(payload.Medicine)
		if err := med.Validate(); err != nil {
			logging.Warn("Provider medicine failed validation", "medicine", name, "error", err)
			return parseFailure(), nil
		}
		result.Medicine = med
	} else {
		result.Found = false
	}

	return result, nil
}

// generate tries each configured model in order and returns the first
// successful generation. There is no retry within a model and no backoff:
// the provider is non-deterministic, a second identical call is a different
// answer, not a retry.
func (c *Client) generate(ctx context.Context, name string) (string, error) {
	var lastErr error

	for _, model := range c.models {
		resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt(name)},
			},
			Temperature: 0.2,
		})
		if err != nil {
			metrics.ProviderModelFallbackTotal.WithLabelValues(model).Inc()
			logging.Warn("Provider model failed, trying next", "model", model, "error", err)
			lastErr = err

			// A dead context means the turn is over; walking more models
			// would just burn the caller's time.
			if ctx.Err() != nil {
				break
			}
			continue
		}

		if len(resp.Choices) == 0 {
			return "", nil
		}
		return resp.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("%w: %v", ErrProvider, lastErr)
}

// parseFailure is the recovered result for unusable generations.
func parseFailure() *medicine.LookupResult {
	return &medicine.LookupResult{
		Found: false,
		Error: "Failed to parse medicine information",
	}
}
