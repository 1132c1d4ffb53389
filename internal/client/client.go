package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/linksnip/link-shortener/internal/model"
)

// HTTP constants for the shortening service
const (
	// ShortenPath is the shortening endpoint on the service
	ShortenPath = "/shorten"

	// ContentTypeJSON is the request body content type
	ContentTypeJSON = "application/json"

	// DefaultTimeout bounds one submission round trip
	DefaultTimeout = 15 * time.Second
)

var (
	// ErrRequestFailed means the service answered with a non-2xx status
	ErrRequestFailed = errors.New("request failed")

	// ErrMalformedResponse means a 2xx body could not be parsed as a short link
	ErrMalformedResponse = errors.New("malformed response")

	// ErrNetworkUnavailable means no response was received at all
	ErrNetworkUnavailable = errors.New("network unavailable")
)

// ShortenRequest is the wire format of one shortening request
type ShortenRequest struct {
	LongURL       string `json:"long_url"`
	ExpiresInDays int    `json:"expires_in_days"`
}

// ShortenResponse is the wire format of a successful shortening response
type ShortenResponse struct {
	ShortURL  string `json:"short_url"`
	LongURL   string `json:"long_url"`
	ExpiresAt string `json:"expires_at"`
}

// Client talks to the shortening service over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the service at baseURL
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Shorten submits one validated input to the service and returns the created
// short link. A single attempt is made per call, no retries.
func (c *Client) Shorten(ctx context.Context, input model.FormInput) (model.ShortenedLink, error) {
	shortenReq := ShortenRequest{
		LongURL:       input.LongURL,
		ExpiresInDays: input.ExpiresInDays,
	}

	body, err := json.Marshal(shortenReq)
	if err != nil {
		return model.ShortenedLink{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ShortenPath, bytes.NewReader(body))
	if err != nil {
		return model.ShortenedLink{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", ContentTypeJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.ShortenedLink{}, fmt.Errorf("%w: %v", ErrNetworkUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.ShortenedLink{}, fmt.Errorf("%w: read response: %v", ErrNetworkUnavailable, err)
	}

	// Any 2xx counts as success, the service answers 201 on create
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Printf("Shorten request rejected with status %d", resp.StatusCode)
		return model.ShortenedLink{}, fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}

	var shortenResp ShortenResponse
	if err := json.Unmarshal(respBody, &shortenResp); err != nil {
		return model.ShortenedLink{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if shortenResp.ShortURL == "" {
		return model.ShortenedLink{}, fmt.Errorf("%w: no short_url in response", ErrMalformedResponse)
	}

	return model.ShortenedLink{
		ShortURL:  shortenResp.ShortURL,
		LongURL:   shortenResp.LongURL,
		ExpiresAt: shortenResp.ExpiresAt,
	}, nil
}
