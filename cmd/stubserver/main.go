// Stub of the shortening service for local development. It issues random
// short codes from memory and speaks the same wire format as the real
// service, so the desktop client can be pointed at it with no changes.
package main

import (
	"crypto/rand"
	"encoding/json"
	"math/big"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	DefaultAddr       = ":5000"
	DefaultBaseURL    = "http://localhost:5000"
	DefaultExpiryDays = 365

	ShortCodeLength = 8
	base62Chars     = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

// shortenRequest is the wire format accepted from the client
type shortenRequest struct {
	LongURL       string `json:"long_url"`
	ExpiresInDays int    `json:"expires_in_days"`
}

// shortenResponse is the wire format returned on success
type shortenResponse struct {
	ShortURL  string `json:"short_url"`
	LongURL   string `json:"long_url"`
	ExpiresAt string `json:"expires_at"`
}

// errorResponse carries a machine-readable error message
type errorResponse struct {
	Error string `json:"error"`
}

// stubConfig holds the listen address and the advertised base URL
type stubConfig struct {
	Addr    string
	BaseURL string
}

// loadConfig reads configuration from the environment with .env support
func loadConfig() stubConfig {
	cfg := stubConfig{
		Addr:    DefaultAddr,
		BaseURL: DefaultBaseURL,
	}

	_ = godotenv.Load(".env")

	if v, ok := os.LookupEnv("STUB_ADDR"); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := os.LookupEnv("STUB_BASE_URL"); ok && v != "" {
		cfg.BaseURL = strings.TrimRight(v, "/")
	}

	return cfg
}

// linkStore keeps the issued codes in memory
type linkStore struct {
	mu    sync.RWMutex
	links map[string]string
}

func newLinkStore() *linkStore {
	return &linkStore{
		links: make(map[string]string),
	}
}

// Put records a code to long URL mapping
func (s *linkStore) Put(code, longURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.links[code] = longURL
}

// Has reports whether a code was already issued
func (s *linkStore) Has(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.links[code]
	return ok
}

// Len returns the number of issued codes
func (s *linkStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.links)
}

// generateShortCode returns a random 8-character base62 code
func generateShortCode() (string, error) {
	b := make([]byte, ShortCodeLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(base62Chars))))
		if err != nil {
			return "", err
		}
		b[i] = base62Chars[n.Int64()]
	}
	return string(b), nil
}

// shortenHandler issues short links
type shortenHandler struct {
	store   *linkStore
	baseURL string
	log     *zap.Logger
}

// HandleShorten accepts a long URL and responds with a fresh short link
func (h *shortenHandler) HandleShorten(w http.ResponseWriter, r *http.Request) {
	var req shortenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.LongURL) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No URL provided"})
		return
	}

	days := req.ExpiresInDays
	if days <= 0 {
		days = DefaultExpiryDays
	}

	var code string
	for {
		c, err := generateShortCode()
		if err != nil {
			h.log.Error("Short code generation failed", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to generate short code"})
			return
		}
		// Retry on the vanishingly rare collision
		if !h.store.Has(c) {
			code = c
			break
		}
	}

	h.store.Put(code, req.LongURL)

	expiresAt := time.Now().UTC().AddDate(0, 0, days).Format(time.RFC3339)

	h.log.Info("Short link issued",
		zap.String("code", code),
		zap.String("long_url", req.LongURL),
		zap.Int("expires_in_days", days),
		zap.Int("total", h.store.Len()),
	)

	writeJSON(w, http.StatusCreated, shortenResponse{
		ShortURL:  h.baseURL + "/" + code,
		LongURL:   req.LongURL,
		ExpiresAt: expiresAt,
	})
}

// writeJSON encodes v as the JSON response body
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type (
	// responseData holds the status and size of an HTTP response
	responseData struct {
		status int
		size   int
	}

	// loggingResponseWriter captures response details for the request log
	loggingResponseWriter struct {
		http.ResponseWriter
		responseData *responseData
	}
)

func (r *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size
	return size, err
}

func (r *loggingResponseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.responseData.status = statusCode
}

// withRequestLogging logs the method, path, status, size and duration of
// each request
func withRequestLogging(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			responseData := &responseData{}
			lw := loggingResponseWriter{
				ResponseWriter: w,
				responseData:   responseData,
			}

			next.ServeHTTP(&lw, r)

			log.Info("HTTP Request",
				zap.String("method", r.Method),
				zap.String("url", r.URL.String()),
				zap.Duration("duration", time.Since(start)),
				zap.Int("status", responseData.status),
				zap.Int("size", responseData.size),
			)
		})
	}
}

// newRouter wires the handler into a chi mux
func newRouter(h *shortenHandler, log *zap.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(withRequestLogging(log))

	r.Post("/shorten", h.HandleShorten)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Route not found"})
	})

	return r
}

func main() {
	cfg := loadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	handler := &shortenHandler{
		store:   newLinkStore(),
		baseURL: cfg.BaseURL,
		log:     logger,
	}

	r := newRouter(handler, logger)

	logger.Info("Stub shortening service is running",
		zap.String("addr", cfg.Addr),
		zap.String("base_url", cfg.BaseURL),
	)

	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
