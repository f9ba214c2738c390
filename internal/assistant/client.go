// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package assistant

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jeranaias/legalchat/internal/config"
	"golang.org/x/time/rate"
)

// MaxResponseBytes caps how much of a response body is read.
const MaxResponseBytes = 1 << 20

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the assistant client.
type ClientConfig struct {
	// Endpoint is the base URL; the encoded prompt is appended as one path segment.
	Endpoint string

	// BasePrompt is prepended to every question, separated by a space.
	BasePrompt string

	// Timeout bounds a single attempt (default: 60s)
	Timeout time.Duration

	// MaxRetries for transient failures (default: 2)
	MaxRetries int

	// RetryDelay is multiplied by the attempt number between retries (default: 1s)
	RetryDelay time.Duration

	// RequestsPerMinute paces attempts, retries included. 0 disables pacing.
	RequestsPerMinute int
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	defaults := config.Default()
	return &ClientConfig{
		Endpoint:          defaults.Assistant.Endpoint,
		BasePrompt:        defaults.Assistant.BasePrompt,
		Timeout:           defaults.Timeout(),
		MaxRetries:        defaults.Assistant.MaxRetries,
		RetryDelay:        1 * time.Second,
		RequestsPerMinute: defaults.Assistant.RequestsPerMinute,
	}
}

// ConfigFrom builds a client configuration from the application config.
func ConfigFrom(cfg *config.Config) *ClientConfig {
	return &ClientConfig{
		Endpoint:          cfg.Assistant.Endpoint,
		BasePrompt:        cfg.Assistant.BasePrompt,
		Timeout:           cfg.Timeout(),
		MaxRetries:        cfg.Assistant.MaxRetries,
		RetryDelay:        1 * time.Second,
		RequestsPerMinute: cfg.Assistant.RequestsPerMinute,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client sends questions to the text-generation endpoint.
//
// The Client is safe for concurrent use.
//
// Example:
//
//	client := assistant.NewClientWithConfig(assistant.ConfigFrom(cfg))
//	answer, err := client.Ask(ctx, "What is an FIR?")
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a new client with custom configuration.
// Zero values fall back to defaults, except MaxRetries and
// RequestsPerMinute where zero is meaningful.
func NewClientWithConfig(cfg *ClientConfig) *Client {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	defaults := DefaultConfig()
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaults.Endpoint
	}
	cfg.Endpoint = strings.TrimRight(cfg.Endpoint, "/")
	if cfg.Timeout == 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = defaults.RetryDelay
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	c := &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
	if cfg.RequestsPerMinute > 0 {
		// A small burst lets a quick follow-up through without waiting.
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 3)
	}
	return c
}

// GetConfig returns the client configuration.
func (c *Client) GetConfig() *ClientConfig {
	return c.config
}

// Prompt joins the base prompt and the question.
func (c *Client) Prompt(question string) string {
	if c.config.BasePrompt == "" {
		return question
	}
	return c.config.BasePrompt + " " + question
}

// RequestURL returns the URL Ask fetches for question.
func (c *Client) RequestURL(question string) string {
	return c.config.Endpoint + "/" + url.PathEscape(c.Prompt(question))
}

// =============================================================================
// ASK
// =============================================================================

// Ask sends question and returns the assistant's Markdown answer.
//
// Network errors, timeouts, 5xx and 429 responses are retried up to
// MaxRetries times with linear backoff. Other 4xx responses fail at once.
// Cancelling ctx aborts the request and any pending retry.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}

	reqURL := c.RequestURL(question)
	host := c.hostForLog()
	start := time.Now()
	log.Printf("REQUEST_START | endpoint=%s chars=%d", host, len(question))

	var lastErr *ClientError
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			log.Printf("REQUEST_RETRY | endpoint=%s attempt=%d reason=%s", host, attempt, lastErr.Type)
			if err := sleepCtx(ctx, time.Duration(attempt)*c.config.RetryDelay); err != nil {
				return "", c.fail(host, canceled(err))
			}
		}

		answer, err := c.attempt(ctx, reqURL)
		if err == nil {
			log.Printf("REQUEST_COMPLETE | endpoint=%s attempts=%d chars=%d duration=%s",
				host, attempt+1, len(answer), time.Since(start).Round(time.Millisecond))
			return answer, nil
		}
		lastErr = err
		if !err.Retryable() {
			break
		}
	}
	return "", c.fail(host, lastErr)
}

func (c *Client) attempt(ctx context.Context, reqURL string) (string, *ClientError) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return "", canceled(ctx.Err())
			}
			// The next slot is past the context deadline.
			return "", &ClientError{Type: ErrTypeTimeout, Message: ErrTimeout.Message, Cause: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", &ClientError{Type: ErrTypeInvalidRequest, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Accept", "text/plain, text/markdown;q=0.9, */*;q=0.5")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", classifyTransportError(ctx, err)
	}
	defer drainAndClose(resp.Body)

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", &ClientError{Type: ErrTypeRateLimited, Message: ErrRateLimited.Message, StatusCode: resp.StatusCode}
	case resp.StatusCode >= 500:
		return "", &ClientError{Type: ErrTypeUnavailable, Message: ErrUnavailable.Message, StatusCode: resp.StatusCode}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return "", &ClientError{Type: ErrTypeRejected, Message: ErrRejected.Message, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		return "", classifyTransportError(ctx, err)
	}
	answer := strings.TrimSpace(string(body))
	if answer == "" {
		return "", ErrEmptyResponse
	}
	return answer, nil
}

func (c *Client) fail(host string, err *ClientError) error {
	log.Printf("REQUEST_ERROR | endpoint=%s type=%s error=%v", host, err.Type, err)
	return err
}

func (c *Client) hostForLog() string {
	if u, err := url.Parse(c.config.Endpoint); err == nil && u.Host != "" {
		return u.Host
	}
	return c.config.Endpoint
}

// =============================================================================
// HELPERS
// =============================================================================

func classifyTransportError(ctx context.Context, err error) *ClientError {
	if ctx.Err() != nil {
		return canceled(ctx.Err())
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &ClientError{Type: ErrTypeTimeout, Message: ErrTimeout.Message, Cause: err}
	}
	return &ClientError{Type: ErrTypeUnavailable, Message: ErrUnavailable.Message, Cause: err}
}

func canceled(err error) *ClientError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &ClientError{Type: ErrTypeTimeout, Message: ErrTimeout.Message, Cause: err}
	}
	return &ClientError{Type: ErrTypeCanceled, Message: ErrCanceled.Message, Cause: err}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Helper to drain response body
func drainAndClose(r io.ReadCloser) {
	io.Copy(io.Discard, io.LimitReader(r, MaxResponseBytes))
	r.Close()
}

// String describes the client for diagnostics.
func (c *Client) String() string {
	return fmt.Sprintf("assistant.Client{endpoint=%s retries=%d timeout=%s}",
		c.config.Endpoint, c.config.MaxRetries, c.config.Timeout)
}
