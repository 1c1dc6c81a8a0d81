package boardgamegeek

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/arnauldvm/boardgamegeek/cache"
)

const (
	// BaseURL is the base URL for the BGG XML API.
	BaseURL = "https://boardgamegeek.com/xmlapi2"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRetryCount is the default number of retry attempts.
	DefaultRetryCount = 3

	// DefaultRetryDelay is the default delay between retries.
	DefaultRetryDelay = 2 * time.Second

	// DefaultRequestsPerMinute is the default client-side rate limit.
	DefaultRequestsPerMinute = 30

	// collectionMaxRetries bounds the 202 retry loop of the collection
	// endpoint; BGG queues collection exports server-side.
	collectionMaxRetries = 10
)

// Config holds the configuration for the BGG API client.
type Config struct {
	Token             string        // Required: BGG API Bearer Token
	Timeout           time.Duration // Optional: HTTP request timeout (default: 30s)
	RetryCount        int           // Optional: Number of retry attempts (default: 3)
	RetryDelay        time.Duration // Optional: Delay between retries (default: 2s)
	RequestsPerMinute int           // Optional: Client-side rate limit (default: 30)
	Cache             cache.Backend // Optional: Response cache (nil disables caching)
	CacheTTL          time.Duration // Optional: Cache entry lifetime (0 keeps entries forever)
	Logger            *slog.Logger  // Optional: Debug logging sink (default: discard)
}

// Client is the BGG API client.
type Client struct {
	httpClient *http.Client
	token      string
	retryCount int
	retryDelay time.Duration
	baseURL    string
	limiter    *rate.Limiter
	cache      cache.Backend
	cacheTTL   time.Duration
	log        *slog.Logger
}

// NewClient creates a new BGG API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, newAuthError("token is required", nil)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	retryCount := cfg.RetryCount
	if retryCount == 0 {
		retryCount = DefaultRetryCount
	}

	retryDelay := cfg.RetryDelay
	if retryDelay == 0 {
		retryDelay = DefaultRetryDelay
	}

	rpm := cfg.RequestsPerMinute
	if rpm == 0 {
		rpm = DefaultRequestsPerMinute
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		token:      cfg.Token,
		retryCount: retryCount,
		retryDelay: retryDelay,
		baseURL:    BaseURL,
		limiter:    rate.NewLimiter(rate.Limit(float64(rpm)/60), 1),
		cache:      cfg.Cache,
		cacheTTL:   cfg.CacheTTL,
		log:        logger,
	}, nil
}

// doRequest performs an HTTP GET request with authentication, rate
// limiting, caching and retry logic.
func (c *Client) doRequest(ctx context.Context, endpoint string) ([]byte, error) {
	url := c.baseURL + endpoint

	if body, ok := c.cacheGet(ctx, url); ok {
		return body, nil
	}

	var lastErr error
	for attempt := 0; attempt <= c.retryCount; attempt++ {
		if attempt > 0 {
			if err := sleepCtx(ctx, c.retryDelay*time.Duration(attempt)); err != nil {
				return nil, newNetworkError("request cancelled", 0, err)
			}
		}

		body, retry, err := c.send(ctx, url, attempt)
		if err == nil {
			c.cacheSet(ctx, url, body)
			return body, nil
		}
		if !retry {
			return nil, err
		}
		lastErr = err

		var rateErr *RateLimitError
		if errors.As(err, &rateErr) {
			if serr := sleepCtx(ctx, rateErr.RetryAfter); serr != nil {
				return nil, newNetworkError("request cancelled", 0, serr)
			}
		}
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, newNetworkError("max retries exceeded", 0, nil)
}

// doRequestWithRetryOn202 performs a request with special handling for
// 202 responses. The collection endpoint returns 202 while BGG prepares
// the export; each 202 waits one retry delay and asks again.
func (c *Client) doRequestWithRetryOn202(ctx context.Context, endpoint string, maxRetries int) ([]byte, error) {
	url := c.baseURL + endpoint

	if body, ok := c.cacheGet(ctx, url); ok {
		return body, nil
	}

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			if err := sleepCtx(ctx, c.retryDelay); err != nil {
				return nil, newNetworkError("request cancelled", 0, err)
			}
		}

		body, retry, err := c.send(ctx, url, attempt)
		if err == nil {
			c.cacheSet(ctx, url, body)
			return body, nil
		}
		if !retry {
			return nil, err
		}

		// in this lane 429 is fatal; only 202 and transport hiccups retry
		var rateErr *RateLimitError
		if errors.As(err, &rateErr) {
			return nil, err
		}
	}

	return nil, newNetworkError("collection not ready after max retries", http.StatusAccepted, nil)
}

// send performs one HTTP exchange. It reports whether the caller may
// retry the error.
func (c *Client) send(ctx context.Context, url string, attempt int) (body []byte, retry bool, err error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, false, newNetworkError("request cancelled", 0, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, newNetworkError("failed to create request", 0, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/xml")

	c.logger().Debug("bgg request", slog.String("url", url), slog.Int("attempt", attempt))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, newNetworkError("request cancelled", 0, ctx.Err())
		}
		return nil, true, newNetworkError("request failed", 0, err)
	}

	body, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, true, newNetworkError("failed to read response body", resp.StatusCode, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return body, false, nil

	case http.StatusAccepted:
		return nil, true, newNetworkError("request accepted but not ready, retry needed", resp.StatusCode, nil)

	case http.StatusUnauthorized:
		return nil, false, newAuthError("invalid or expired token", nil)

	case http.StatusNotFound:
		return nil, false, newNotFoundError(0)

	case http.StatusTooManyRequests:
		retryAfter := 5 * time.Second
		if ra := resp.Header.Get("Retry-After"); ra != "" {
			if d, err := time.ParseDuration(ra + "s"); err == nil {
				retryAfter = d
			}
		}
		return nil, true, newRateLimitError("rate limit exceeded", retryAfter)

	case http.StatusServiceUnavailable:
		return nil, true, newNetworkError("service unavailable", resp.StatusCode, nil)

	default:
		return nil, false, newNetworkError(fmt.Sprintf("unexpected status code: %d", resp.StatusCode), resp.StatusCode, nil)
	}
}

func (c *Client) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}
	body, err := c.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			c.logger().Debug("cache read failed", slog.String("key", key), slog.Any("error", err))
		}
		return nil, false
	}
	c.logger().Debug("cache hit", slog.String("key", key))
	return body, true
}

func (c *Client) cacheSet(ctx context.Context, key string, body []byte) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(ctx, key, body, c.cacheTTL); err != nil {
		c.logger().Debug("cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

func (c *Client) logger() *slog.Logger {
	if c.log != nil {
		return c.log
	}
	return slog.Default()
}

// sleepCtx waits for d unless ctx ends first.
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
