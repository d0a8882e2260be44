package expansion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/hirogeru/internal/config"
)

const systemPrompt = "You are an expert at query optimization for information retrieval systems. " +
	"Generate diverse, high-quality query variants."

const userPromptTemplate = `Given the following user query, generate exactly %d alternative variants that will improve information retrieval.

Requirements for each variant:
1. Rephrase using different terminology while maintaining the core intent
2. Expand with specific details, context, or related concepts
3. Reformulate from a different perspective or angle

Original Query: "%s"

Generate variants that are semantically distinct but preserve the original question's intent. Each variant should help retrieve different relevant documents.

Output format (exactly %d variants, one per line):
Variant 1: [your variant here]
Variant 2: [your variant here]
Variant 3: [your variant here]`

// GrokExpander expands queries through the x.ai chat completions API.
// API failures and malformed completions are retried with backoff; once
// retries are exhausted the expander degrades to FallbackVariants rather
// than surfacing an error, so retrieval keeps working without the API.
type GrokExpander struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	maxTokens   int
	numVariants int
	retry       RetryPolicy
	httpClient  *http.Client
	logger      *zap.Logger
}

// GrokExpanderOption configures a GrokExpander.
type GrokExpanderOption func(*GrokExpander)

// WithLogger sets the logger used for retry and fallback diagnostics.
func WithLogger(logger *zap.Logger) GrokExpanderOption {
	return func(g *GrokExpander) {
		g.logger = logger
	}
}

// WithRetryPolicy overrides the default backoff policy.
func WithRetryPolicy(policy RetryPolicy) GrokExpanderOption {
	return func(g *GrokExpander) {
		g.retry = policy
	}
}

// NewGrokExpander builds an expander from the expansion configuration.
func NewGrokExpander(cfg *config.ExpansionConfig, opts ...GrokExpanderOption) *GrokExpander {
	policy := DefaultRetryPolicy()
	if cfg.MaxRetries > 0 {
		policy.MaxRetries = cfg.MaxRetries
	}

	g := &GrokExpander{
		apiKey:      cfg.APIKey,
		baseURL:     cfg.BaseURL,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		numVariants: cfg.NumVariants,
		retry:       policy,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSec) * time.Second,
		},
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Expand returns exactly the configured number of variants for the query.
// A completion is accepted only when it parses to the full variant count;
// anything else counts as a failed attempt. The only error Expand returns
// is context cancellation.
func (g *GrokExpander) Expand(ctx context.Context, query string) ([]string, error) {
	var lastErr error
	for attempt := 0; attempt < g.retry.MaxRetries; attempt++ {
		if attempt > 0 {
			if err := g.retry.Wait(ctx, attempt); err != nil {
				return nil, err
			}
		}

		content, err := g.complete(ctx, query)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			if g.logger != nil {
				g.logger.Warn("query expansion attempt failed",
					zap.Int("attempt", attempt+1),
					zap.Error(err))
			}
			continue
		}

		variants := ParseVariants(content, g.numVariants)
		if len(variants) == g.numVariants {
			return variants, nil
		}
		lastErr = fmt.Errorf("expected %d variants, parsed %d", g.numVariants, len(variants))
		if g.logger != nil {
			g.logger.Warn("query expansion returned wrong variant count",
				zap.Int("attempt", attempt+1),
				zap.Int("parsed", len(variants)))
		}
	}

	if g.logger != nil {
		g.logger.Warn("query expansion exhausted retries, using fallback variants",
			zap.Error(lastErr))
	}
	return FallbackVariants(query, g.numVariants), nil
}

func (g *GrokExpander) complete(ctx context.Context, query string) (string, error) {
	reqBody := chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf(userPromptTemplate, g.numVariants, query, g.numVariants)},
		},
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("grok API status %d: %s", resp.StatusCode, string(data))
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("response contained no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
