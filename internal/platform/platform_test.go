package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestAppConfigDir(t *testing.T) {
	dir, err := AppConfigDir("link-shortener-test")
	if err != nil {
		t.Fatalf("Failed to get app config directory: %v", err)
	}
	defer os.RemoveAll(dir)

	if dir == "" {
		t.Fatal("App config directory is empty")
	}

	// Should end with the app name
	if filepath.Base(dir) != "link-shortener-test" {
		t.Errorf("Expected directory to end with app name, got: %s", dir)
	}

	// The directory must exist after the call
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Errorf("App config directory was not created: %s", dir)
	}
}

func TestOpenURLInBrowser_RejectsNonHTTP(t *testing.T) {
	tests := []string{
		"",
		"not-a-url",
		"ftp://example.com/file",
		"file:///etc/passwd",
	}

	for _, rawURL := range tests {
		err := OpenURLInBrowser(rawURL)
		if err == nil {
			t.Errorf("Expected error for %q, got nil", rawURL)
			continue
		}
		if !strings.Contains(err.Error(), "refusing to open") {
			t.Errorf("Error message should contain 'refusing to open', got: %v", err)
		}
	}
}
