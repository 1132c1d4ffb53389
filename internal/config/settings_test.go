package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/linksnip/link-shortener/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestServiceBaseURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	baseURL := settings.GetServiceBaseURL()
	if baseURL != DefaultServiceBaseURL {
		t.Errorf("Expected default base URL %s, got %s", DefaultServiceBaseURL, baseURL)
	}

	// Test setting custom value
	settings.SetServiceBaseURL("https://sho.rt")
	if settings.GetServiceBaseURL() != "https://sho.rt" {
		t.Errorf("Expected base URL 'https://sho.rt', got %s", settings.GetServiceBaseURL())
	}

	// Trailing slash is trimmed so the client can append the endpoint path
	settings.SetServiceBaseURL("https://sho.rt/")
	if settings.GetServiceBaseURL() != "https://sho.rt" {
		t.Errorf("Expected trailing slash trimmed, got %s", settings.GetServiceBaseURL())
	}

	// Empty value defaults back
	settings.SetServiceBaseURL("")
	if settings.GetServiceBaseURL() != DefaultServiceBaseURL {
		t.Errorf("Empty base URL should default to %s, got %s", DefaultServiceBaseURL, settings.GetServiceBaseURL())
	}
}

func TestRequestTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if settings.GetRequestTimeoutSec() != DefaultRequestTimeoutSec {
		t.Errorf("Expected default timeout %d, got %d", DefaultRequestTimeoutSec, settings.GetRequestTimeoutSec())
	}

	// Test setting custom value
	settings.SetRequestTimeoutSec(30)
	if settings.GetRequestTimeoutSec() != 30 {
		t.Errorf("Expected timeout 30, got %d", settings.GetRequestTimeoutSec())
	}
	if settings.GetRequestTimeout() != 30*time.Second {
		t.Errorf("Expected timeout duration 30s, got %v", settings.GetRequestTimeout())
	}

	// Test boundary values
	settings.SetRequestTimeoutSec(0) // Should be clamped to 1
	if settings.GetRequestTimeoutSec() != MinRequestTimeoutSec {
		t.Errorf("Timeout should be clamped to minimum %d", MinRequestTimeoutSec)
	}

	settings.SetRequestTimeoutSec(500) // Should be clamped to 120
	if settings.GetRequestTimeoutSec() != MaxRequestTimeoutSec {
		t.Errorf("Timeout should be clamped to maximum %d", MaxRequestTimeoutSec)
	}
}

func TestDefaultExpiryDays(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if settings.GetDefaultExpiryDays() != model.DefaultExpiryDays {
		t.Errorf("Expected default expiry %d, got %d", model.DefaultExpiryDays, settings.GetDefaultExpiryDays())
	}

	// Test setting custom value
	settings.SetDefaultExpiryDays(30)
	if settings.GetDefaultExpiryDays() != 30 {
		t.Errorf("Expected expiry 30, got %d", settings.GetDefaultExpiryDays())
	}

	// Test boundary values
	settings.SetDefaultExpiryDays(0)
	if settings.GetDefaultExpiryDays() != MinExpiryDays {
		t.Errorf("Expiry should be clamped to minimum %d", MinExpiryDays)
	}

	settings.SetDefaultExpiryDays(100000)
	if settings.GetDefaultExpiryDays() != MaxExpiryDays {
		t.Errorf("Expiry should be clamped to maximum %d", MaxExpiryDays)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")
	if settings.GetLanguage() != "en" {
		t.Errorf("Expected language 'en', got %s", settings.GetLanguage())
	}
}

func TestAutoCopyOnSuccess(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if settings.GetAutoCopyOnSuccess() != DefaultAutoCopyOnSuccess {
		t.Errorf("Expected default auto-copy %v, got %v", DefaultAutoCopyOnSuccess, settings.GetAutoCopyOnSuccess())
	}

	// Test setting custom value
	settings.SetAutoCopyOnSuccess(true)
	if !settings.GetAutoCopyOnSuccess() {
		t.Error("Expected auto-copy to be true after setting")
	}
}

func TestHistoryLimit(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if settings.GetHistoryLimit() != DefaultHistoryLimit {
		t.Errorf("Expected default history limit %d, got %d", DefaultHistoryLimit, settings.GetHistoryLimit())
	}

	// Test setting custom value
	settings.SetHistoryLimit(50)
	if settings.GetHistoryLimit() != 50 {
		t.Errorf("Expected history limit 50, got %d", settings.GetHistoryLimit())
	}

	// Test boundary values
	settings.SetHistoryLimit(0)
	if settings.GetHistoryLimit() != MinHistoryLimit {
		t.Errorf("History limit should be clamped to minimum %d", MinHistoryLimit)
	}

	settings.SetHistoryLimit(1000)
	if settings.GetHistoryLimit() != MaxHistoryLimit {
		t.Errorf("History limit should be clamped to maximum %d", MaxHistoryLimit)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
