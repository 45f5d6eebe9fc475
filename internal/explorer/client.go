// Package explorer fetches blocks from a Blockbook block-explorer API and
// decodes them into loosely typed records for display.
package explorer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// DefaultBaseURL is the public Zcash Blockbook instance.
const DefaultBaseURL = "https://blockbook.zec.zelcore.io/api/v2"

// ClientConfig holds the settings for NewClient.
type ClientConfig struct {
	BaseURL   string
	UserAgent string
	Logger    *zap.Logger // nil disables logging
}

// Client issues block lookups against one Blockbook instance. Requests are
// sent once; there is no retry and no client-side timeout.
type Client struct {
	http *resty.Client
	log  *zap.Logger
}

// NewClient returns a Client for cfg.BaseURL, which should include the API
// prefix (for example https://zec.example/api/v2).
func NewClient(cfg ClientConfig) *Client {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	hc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)
	if cfg.UserAgent != "" {
		hc.SetHeader("User-Agent", cfg.UserAgent)
	}

	return &Client{http: hc, log: log}
}

// HTTPError is returned when the explorer answers with a non-2xx status.
type HTTPError struct {
	StatusCode int
	Message    string // upstream "error" field, or the status text
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

func newHTTPError(status int, body []byte) *HTTPError {
	var upstream struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &upstream); err == nil && upstream.Error != "" {
		return &HTTPError{StatusCode: status, Message: upstream.Error}
	}
	return &HTTPError{StatusCode: status, Message: http.StatusText(status)}
}

// FetchBlock requests /block/{id}. The identifier, a block hash or height, is
// passed through as given.
func (c *Client) FetchBlock(ctx context.Context, id string) (*Block, error) {
	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Get("/block/{id}")
	latency := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	c.log.Debug("block response",
		zap.String("url", resp.Request.URL),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("latency", latency),
		zap.Int("bytes", len(resp.Body())))

	if !resp.IsSuccess() {
		return nil, newHTTPError(resp.StatusCode(), resp.Body())
	}

	block, dropped, err := decodeBlock(resp.Body())
	if err != nil {
		return nil, err
	}
	if len(dropped) > 0 {
		c.log.Debug("dropped envelope fields", zap.Strings("fields", dropped))
	}
	return block, nil
}

var errNotObject = errors.New("expected a JSON object")

// decodeBlock parses a block document, removing IgnoredFields first. It
// returns the names of the fields that were removed.
func decodeBlock(body []byte) (*Block, []string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, nil, fmt.Errorf("invalid JSON response: %w", err)
	}
	if fields == nil {
		return nil, nil, fmt.Errorf("invalid JSON response: %w", errNotObject)
	}

	var dropped []string
	for _, key := range IgnoredFields {
		if _, ok := fields[key]; ok {
			delete(fields, key)
			dropped = append(dropped, key)
		}
	}

	stripped, err := json.Marshal(fields)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid JSON response: %w", err)
	}

	var block Block
	if err := json.Unmarshal(stripped, &block); err != nil {
		return nil, nil, fmt.Errorf("invalid block document: %w", err)
	}
	return &block, dropped, nil
}
