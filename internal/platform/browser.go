package platform

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	WindowsCmdFlag = "/c"
)

// Browser names to try on Linux when xdg-open is unavailable
var (
	LinuxBrowsers = []string{"firefox", "chromium", "google-chrome", "sensible-browser"}
)

// OpenURLInBrowser opens the URL with the system default browser
func OpenURLInBrowser(rawURL string) error {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return fmt.Errorf("refusing to open non-http URL: %s", rawURL)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return openURLMacOS(rawURL)
	case OSWindows:
		return openURLWindows(rawURL)
	case OSLinux:
		return openURLLinux(rawURL)
	case OSAndroid:
		return openURLAndroid(rawURL)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openURLMacOS opens the URL with the default browser on macOS
func openURLMacOS(rawURL string) error {
	cmd := exec.Command(OpenCommand, rawURL)
	return cmd.Run()
}

// openURLWindows opens the URL with the default browser on Windows
func openURLWindows(rawURL string) error {
	cmd := exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", rawURL)
	return cmd.Run()
}

// openURLLinux opens the URL with the default browser on Linux
func openURLLinux(rawURL string) error {
	// Try xdg-open first (most common)
	cmd := exec.Command(XDGOpenCommand, rawURL)
	if err := cmd.Run(); err == nil {
		return nil
	}

	// Fallback to common browsers
	for _, browser := range LinuxBrowsers {
		if _, err := exec.LookPath(browser); err == nil {
			cmd := exec.Command(browser, rawURL)
			return cmd.Run()
		}
	}

	return fmt.Errorf("no suitable browser found")
}

// openURLAndroid opens the URL through an Android VIEW intent
func openURLAndroid(rawURL string) error {
	cmd := exec.Command("am", "start", "-a", "android.intent.action.VIEW", "-d", rawURL)
	return cmd.Run()
}
