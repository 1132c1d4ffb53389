package main

import (
	"fmt"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/linksnip/link-shortener/internal/client"
	"github.com/linksnip/link-shortener/internal/config"
	"github.com/linksnip/link-shortener/internal/history"
	"github.com/linksnip/link-shortener/internal/platform"
	"github.com/linksnip/link-shortener/internal/submit"
	"github.com/linksnip/link-shortener/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID      = "com.linksnip.link-shortener"
	AppName    = "Link Shortener"
	AppDirName = "link-shortener"

	WindowWidth  = 720
	WindowHeight = 560
)

func main() {
	// Log version information
	fmt.Printf("Link Shortener v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)

	shortener := client.New(settings.GetServiceBaseURL(), settings.GetRequestTimeout())
	controller := submit.NewController(shortener, ui.NewAppNotifier(myApp), ui.NewAppClipboard(myApp))

	store := newHistoryStore(settings)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, controller, store)

	// Show and run
	myWindow.ShowAndRun()

	// Window closed, a submission still in flight resolves into nothing
	controller.Close()
}

// newHistoryStore opens the persisted link history, falling back to a
// memory-only store when no config directory is available
func newHistoryStore(settings *config.Settings) *history.Store {
	configDir, err := platform.AppConfigDir(AppDirName)
	if err != nil {
		log.Printf("Failed to ensure config dir: %v", err)
		return history.NewStore("", settings.GetHistoryLimit())
	}

	return history.NewStore(filepath.Join(configDir, history.FileName), settings.GetHistoryLimit())
}
