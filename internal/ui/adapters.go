package ui

import (
	"log"

	"fyne.io/fyne/v2"
)

// AppNotifier forwards submission notifications to the system notification
// area. It satisfies the controller's notification sink.
type AppNotifier struct {
	app fyne.App
}

// NewAppNotifier creates a notifier backed by the given app
func NewAppNotifier(app fyne.App) *AppNotifier {
	return &AppNotifier{app: app}
}

// Notify sends a system notification
func (n *AppNotifier) Notify(title, description string, destructive bool) {
	if destructive {
		log.Printf("Notification (error): %s: %s", title, description)
	} else {
		log.Printf("Notification: %s: %s", title, description)
	}

	n.app.SendNotification(&fyne.Notification{
		Title:   title,
		Content: description,
	})
}

// AppClipboard writes short links to the system clipboard. It satisfies the
// controller's clipboard sink.
type AppClipboard struct {
	app fyne.App
}

// NewAppClipboard creates a clipboard sink backed by the given app
func NewAppClipboard(app fyne.App) *AppClipboard {
	return &AppClipboard{app: app}
}

// SetContent replaces the clipboard contents
func (c *AppClipboard) SetContent(text string) {
	c.app.Clipboard().SetContent(text)
}
