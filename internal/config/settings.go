package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"github.com/linksnip/link-shortener/internal/client"
	"github.com/linksnip/link-shortener/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyServiceBaseURL    = "service_base_url"
	KeyRequestTimeoutSec = "request_timeout_sec"
	KeyDefaultExpiryDays = "default_expiry_days"
	KeyLanguage          = "app_language"
	KeyAutoCopyOnSuccess = "auto_copy_on_success"
	KeyHistoryLimit      = "history_limit"
)

// Default values
const (
	DefaultServiceBaseURL    = "http://localhost:5000"
	DefaultRequestTimeoutSec = int(client.DefaultTimeout / time.Second)
	DefaultLanguage          = "system"
	DefaultAutoCopyOnSuccess = false
	DefaultHistoryLimit      = 25
)

// Clamping bounds for numeric settings
const (
	MinRequestTimeoutSec = 1
	MaxRequestTimeoutSec = 120
	MinExpiryDays        = 1
	MaxExpiryDays        = 3650
	MinHistoryLimit      = 1
	MaxHistoryLimit      = 100
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetServiceBaseURL returns the shortening service base URL
func (s *Settings) GetServiceBaseURL() string {
	baseURL := s.app.Preferences().String(KeyServiceBaseURL)
	if baseURL == "" {
		s.SetServiceBaseURL(DefaultServiceBaseURL)
		return DefaultServiceBaseURL
	}
	return baseURL
}

// SetServiceBaseURL sets the shortening service base URL
func (s *Settings) SetServiceBaseURL(baseURL string) {
	baseURL = strings.TrimSpace(strings.TrimRight(baseURL, "/"))
	if baseURL == "" {
		baseURL = DefaultServiceBaseURL
	}
	s.app.Preferences().SetString(KeyServiceBaseURL, baseURL)
}

// GetRequestTimeout returns the submission timeout
func (s *Settings) GetRequestTimeout() time.Duration {
	return time.Duration(s.GetRequestTimeoutSec()) * time.Second
}

// GetRequestTimeoutSec returns the submission timeout in seconds
func (s *Settings) GetRequestTimeoutSec() int {
	value := s.app.Preferences().Int(KeyRequestTimeoutSec)
	if value <= 0 {
		s.SetRequestTimeoutSec(DefaultRequestTimeoutSec)
		return DefaultRequestTimeoutSec
	}
	return value
}

// SetRequestTimeoutSec sets the submission timeout in seconds
func (s *Settings) SetRequestTimeoutSec(seconds int) {
	if seconds < MinRequestTimeoutSec {
		seconds = MinRequestTimeoutSec
	}
	if seconds > MaxRequestTimeoutSec {
		seconds = MaxRequestTimeoutSec
	}
	s.app.Preferences().SetInt(KeyRequestTimeoutSec, seconds)
}

// GetDefaultExpiryDays returns the expiry prefilled into the form
func (s *Settings) GetDefaultExpiryDays() int {
	value := s.app.Preferences().Int(KeyDefaultExpiryDays)
	if value <= 0 {
		s.SetDefaultExpiryDays(model.DefaultExpiryDays)
		return model.DefaultExpiryDays
	}
	return value
}

// SetDefaultExpiryDays sets the expiry prefilled into the form
func (s *Settings) SetDefaultExpiryDays(days int) {
	if days < MinExpiryDays {
		days = MinExpiryDays
	}
	if days > MaxExpiryDays {
		days = MaxExpiryDays
	}
	s.app.Preferences().SetInt(KeyDefaultExpiryDays, days)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoCopyOnSuccess returns whether a new short link is copied to the
// clipboard automatically
func (s *Settings) GetAutoCopyOnSuccess() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoCopyOnSuccess, DefaultAutoCopyOnSuccess)
}

// SetAutoCopyOnSuccess sets whether a new short link is copied automatically
func (s *Settings) SetAutoCopyOnSuccess(autoCopy bool) {
	s.app.Preferences().SetBool(KeyAutoCopyOnSuccess, autoCopy)
}

// GetHistoryLimit returns how many recent links are kept
func (s *Settings) GetHistoryLimit() int {
	value := s.app.Preferences().Int(KeyHistoryLimit)
	if value <= 0 {
		s.SetHistoryLimit(DefaultHistoryLimit)
		return DefaultHistoryLimit
	}
	return value
}

// SetHistoryLimit sets how many recent links are kept
func (s *Settings) SetHistoryLimit(limit int) {
	if limit < MinHistoryLimit {
		limit = MinHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	s.app.Preferences().SetInt(KeyHistoryLimit, limit)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
