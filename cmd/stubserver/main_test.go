package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestRouter() http.Handler {
	logger := zap.NewNop()
	handler := &shortenHandler{
		store:   newLinkStore(),
		baseURL: DefaultBaseURL,
		log:     logger,
	}
	return newRouter(handler, logger)
}

func postShorten(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/shorten", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleShorten_Success(t *testing.T) {
	router := newTestRouter()

	w := postShorten(t, router, `{"long_url": "https://example.com/some/long/path", "expires_in_days": 30}`)

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status %d, got %d", http.StatusCreated, w.Code)
	}

	var resp shortenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	prefix := DefaultBaseURL + "/"
	if !strings.HasPrefix(resp.ShortURL, prefix) {
		t.Errorf("Expected short URL to start with %q, got %q", prefix, resp.ShortURL)
	}

	code := strings.TrimPrefix(resp.ShortURL, prefix)
	if len(code) != ShortCodeLength {
		t.Errorf("Expected code length %d, got %d (%q)", ShortCodeLength, len(code), code)
	}

	if resp.LongURL != "https://example.com/some/long/path" {
		t.Errorf("Expected long URL to be echoed back, got %q", resp.LongURL)
	}

	expiresAt, err := time.Parse(time.RFC3339, resp.ExpiresAt)
	if err != nil {
		t.Fatalf("Expected RFC 3339 expires_at, got %q: %v", resp.ExpiresAt, err)
	}

	want := time.Now().UTC().AddDate(0, 0, 30)
	diff := expiresAt.Sub(want)
	if diff < -time.Minute || diff > time.Minute {
		t.Errorf("Expected expiry around %v, got %v", want, expiresAt)
	}
}

func TestHandleShorten_DefaultExpiry(t *testing.T) {
	router := newTestRouter()

	w := postShorten(t, router, `{"long_url": "https://example.com"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status %d, got %d", http.StatusCreated, w.Code)
	}

	var resp shortenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	expiresAt, err := time.Parse(time.RFC3339, resp.ExpiresAt)
	if err != nil {
		t.Fatalf("Expected RFC 3339 expires_at, got %q: %v", resp.ExpiresAt, err)
	}

	want := time.Now().UTC().AddDate(0, 0, DefaultExpiryDays)
	diff := expiresAt.Sub(want)
	if diff < -time.Minute || diff > time.Minute {
		t.Errorf("Expected default expiry around %v, got %v", want, expiresAt)
	}
}

func TestHandleShorten_MissingURL(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"absent field", `{"expires_in_days": 30}`},
		{"empty string", `{"long_url": ""}`},
		{"whitespace only", `{"long_url": "   "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter()

			w := postShorten(t, router, tt.body)

			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
			}

			var resp errorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}

			if resp.Error != "No URL provided" {
				t.Errorf("Expected error %q, got %q", "No URL provided", resp.Error)
			}
		})
	}
}

func TestHandleShorten_MalformedBody(t *testing.T) {
	router := newTestRouter()

	w := postShorten(t, router, `{"long_url": `)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Error != "Invalid request body" {
		t.Errorf("Expected error %q, got %q", "Invalid request body", resp.Error)
	}
}

func TestHandleShorten_MethodNotAllowed(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/shorten", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status %d, got %d", http.StatusMethodNotAllowed, w.Code)
	}
}

func TestRouter_NotFound(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/unknown", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestGenerateShortCode(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		code, err := generateShortCode()
		if err != nil {
			t.Fatalf("Failed to generate short code: %v", err)
		}

		if len(code) != ShortCodeLength {
			t.Errorf("Expected code length %d, got %d (%q)", ShortCodeLength, len(code), code)
		}

		for _, c := range code {
			if !strings.ContainsRune(base62Chars, c) {
				t.Errorf("Expected only base62 characters, got %q in %q", c, code)
			}
		}

		seen[code] = true
	}

	if len(seen) < 95 {
		t.Errorf("Expected near-unique codes, got %d distinct out of 100", len(seen))
	}
}

func TestLinkStore(t *testing.T) {
	store := newLinkStore()

	if store.Has("abc12345") {
		t.Error("Expected empty store to have no codes")
	}
	if store.Len() != 0 {
		t.Errorf("Expected length 0, got %d", store.Len())
	}

	store.Put("abc12345", "https://example.com")

	if !store.Has("abc12345") {
		t.Error("Expected store to contain the added code")
	}
	if store.Len() != 1 {
		t.Errorf("Expected length 1, got %d", store.Len())
	}

	store.Put("abc12345", "https://example.com/other")

	if store.Len() != 1 {
		t.Errorf("Expected overwriting a code to keep length 1, got %d", store.Len())
	}
}
