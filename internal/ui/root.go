package ui

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/linksnip/link-shortener/internal/config"
	"github.com/linksnip/link-shortener/internal/history"
	"github.com/linksnip/link-shortener/internal/model"
	"github.com/linksnip/link-shortener/internal/platform"
	"github.com/linksnip/link-shortener/internal/submit"
	"github.com/linksnip/link-shortener/internal/validate"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	controller   submit.Submitter
	store        *history.Store
	schema       *validate.Schema
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI

	// Form
	urlEntry    *widget.Entry
	expiryEntry *NumericEntry
	shortenBtn  *widget.Button

	// Result card
	resultCard     *fyne.Container
	resultHeading  *widget.Label
	shortURLLabel  *widget.Label
	longURLLabel   *widget.Label
	expiryLabel    *widget.Label
	copyBtn        *widget.Button
	openBtn        *widget.Button
	shortenMoreBtn *widget.Button

	// History
	historyList   *widget.List
	historyHeader *widget.Label
	clearBtn      *widget.Button
	entries       []*model.HistoryEntry

	// Status transition tracking for history capture and auto copy
	lastStatus model.SubmissionStatus
	statusMu   sync.Mutex

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, controller submit.Submitter, store *history.Store) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		controller:   controller,
		store:        store,
		schema:       validate.NewSchema(),
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		lastStatus:   model.SubmissionStatusIdle,
	}

	log.Printf("RootUI initialized with submission controller: %v", ui.controller != nil)

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Localize controller notifications and subscribe to state updates
	ui.applyMessages()
	ui.controller.SetUpdateCallback(ui.onSubmissionUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Create URL entry
	ui.urlEntry = ui.mobile.CreateMobileEntry(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.Validator = ui.validateURL
	// Trigger submission when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onShortenClick()
	}

	// Create expiry entry, prefilled with the configured default
	ui.expiryEntry = ui.mobile.CreateNumericEntry(ui.localization.GetText(KeyExpiryDays))
	ui.expiryEntry.Validator = ui.validateExpiry
	ui.expiryEntry.SetText(strconv.Itoa(ui.settings.GetDefaultExpiryDays()))

	// Create shorten button
	ui.shortenBtn = ui.mobile.CreateMobileButton(ui.localization.GetText(KeyShorten), ui.onShortenClick)
	ui.shortenBtn.Importance = widget.HighImportance

	// Create settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Create logo
	logo, err := LoadLogoResource()
	var logoImage *canvas.Image
	if err == nil {
		logoImage = canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
	} else {
		// Fallback to text if logo loading fails
		logoImage = nil
	}

	// Create top panel (URL row) with logo
	var topPanel *fyne.Container
	if logoImage != nil {
		topPanel = container.NewBorder(nil, nil, container.NewHBox(logoImage, settingsBtn), ui.shortenBtn, ui.urlEntry)
	} else {
		topPanel = container.NewBorder(nil, nil, container.NewHBox(settingsBtn), ui.shortenBtn, ui.urlEntry)
	}

	// Expiry row under the URL input
	expiryLabel := widget.NewLabel(ui.localization.GetText(KeyExpiryDays) + LabelSeparator)
	expiryRow := container.NewBorder(nil, nil, expiryLabel, nil, ui.expiryEntry)

	// Create notification panel under the form (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	// Create result card (hidden until a submission succeeds)
	ui.createResultCard()

	// Combine form, notification panel and result card at the top
	topCombined := container.NewVBox(topPanel, expiryRow, ui.notificationContainer, ui.resultCard)

	// Create history section
	ui.historyHeader = widget.NewLabel(ui.localization.GetText(KeyHistory))
	ui.historyHeader.TextStyle = fyne.TextStyle{Bold: true}

	ui.clearBtn = widget.NewButton(ui.localization.GetText(KeyClearHistory), ui.onClearHistory)
	ui.clearBtn.Importance = widget.LowImportance

	ui.historyList = widget.NewList(
		func() int {
			return len(ui.entries)
		},
		func() fyne.CanvasObject { return ui.createHistoryItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateHistoryItem(id, obj) },
	)

	historyHeaderRow := container.NewBorder(nil, nil, ui.historyHeader, ui.clearBtn)
	historySection := container.NewBorder(historyHeaderRow, nil, nil, nil, ui.historyList)

	// Create main layout
	content := container.NewBorder(
		topCombined,    // top
		nil,            // bottom
		nil,            // left
		nil,            // right
		historySection, // center
	)

	ui.window.SetContent(content)

	ui.reloadHistory()

	// UI setup completed
	log.Printf("UI setup completed successfully")
}

// createResultCard builds the card that shows the shortened link
func (ui *RootUI) createResultCard() {
	ui.resultHeading = widget.NewLabel(ui.localization.GetText(KeyYourShortURL))
	ui.resultHeading.TextStyle = fyne.TextStyle{Bold: true}

	ui.shortURLLabel = widget.NewLabel("")
	ui.shortURLLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	ui.shortURLLabel.Truncation = fyne.TextTruncateEllipsis

	ui.longURLLabel = widget.NewLabel("")
	ui.longURLLabel.Truncation = fyne.TextTruncateEllipsis

	ui.expiryLabel = widget.NewLabel("")
	ui.expiryLabel.Alignment = fyne.TextAlignLeading

	ui.copyBtn = widget.NewButton(ui.localization.GetText(KeyCopy), ui.onCopyClick)
	ui.copyBtn.Importance = widget.HighImportance

	ui.openBtn = widget.NewButton(ui.localization.GetText(KeyOpen), ui.onOpenClick)
	ui.openBtn.Importance = widget.MediumImportance

	ui.shortenMoreBtn = widget.NewButton(ui.localization.GetText(KeyShortenAnother), ui.onShortenAnotherClick)
	ui.shortenMoreBtn.Importance = widget.LowImportance

	actions := container.NewHBox(ui.copyBtn, ui.openBtn, ui.shortenMoreBtn)

	ui.resultCard = container.NewVBox(
		widget.NewSeparator(),
		ui.resultHeading,
		ui.shortURLLabel,
		ui.longURLLabel,
		ui.expiryLabel,
		actions,
		widget.NewSeparator(),
	)
	ui.resultCard.Hide()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetLanguage(langCode)

	// Push localized notification texts into the controller
	ui.applyMessages()

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// applyMessages hands the localized notification texts to the controller
func (ui *RootUI) applyMessages() {
	ui.controller.SetMessages(submit.Messages{
		SuccessTitle: ui.localization.GetText(KeySuccess),
		SuccessBody:  ui.localization.GetText(KeyURLShortened),
		FailedTitle:  ui.localization.GetText(KeyError),
		FailedBody:   ui.localization.GetText(KeyShortenFailed),
		CopiedTitle:  ui.localization.GetText(KeyCopied),
		CopiedBody:   ui.localization.GetText(KeyCopiedToClipboard),
	})
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	// Update window title
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	// Update UI elements
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.expiryEntry.SetPlaceHolder(ui.localization.GetText(KeyExpiryDays))
	ui.resultHeading.SetText(ui.localization.GetText(KeyYourShortURL))
	ui.shortenMoreBtn.SetText(ui.localization.GetText(KeyShortenAnother))
	ui.openBtn.SetText(ui.localization.GetText(KeyOpen))
	ui.clearBtn.SetText(ui.localization.GetText(KeyClearHistory))

	// Re-render state dependent texts and history rows
	ui.renderCurrentState(false)
	ui.reloadHistory()
}

// validateURL validates the entered URL, empty input is allowed until submit
func (ui *RootUI) validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	if err := ui.schema.ValidateURL(input); err != nil {
		return errors.New(ui.localization.GetText(KeyInvalidURL))
	}

	return nil
}

// validateExpiry validates the expiry field, empty input falls back to the default
func (ui *RootUI) validateExpiry(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	days, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || days < 1 {
		return errors.New(ui.localization.GetText(KeyInvalidExpiry))
	}

	return nil
}

// onShortenClick handles the shorten button click
func (ui *RootUI) onShortenClick() {
	urlText := strings.TrimSpace(ui.urlEntry.Text)
	if urlText == "" {
		// Also reflect in notification panel
		ui.showNotification(ui.localization.GetText(KeyPleaseEnterURL), false, false)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyPleaseEnterURL)), ui.window.Canvas())
		return
	}

	input, err := ui.schema.Validate(validate.RawInput{
		LongURL:       ui.urlEntry.Text,
		ExpiresInDays: ui.expiryEntry.Text,
	})
	if err != nil {
		message := ui.localizedFieldErrors(err)
		ui.showNotification(message, false, true)
		widget.ShowPopUp(widget.NewLabel(message), ui.window.Canvas())
		return
	}

	log.Printf("Submitting URL: %s (expires in %d days)", input.LongURL, input.ExpiresInDays)

	if err := ui.controller.Submit(input); err != nil {
		if errors.Is(err, submit.ErrSubmitInFlight) {
			log.Printf("Submission already in flight, ignoring click")
			return
		}
		log.Printf("Submit rejected: %v", err)
	}
}

// localizedFieldErrors maps validation failures to localized messages
func (ui *RootUI) localizedFieldErrors(err error) string {
	var fieldErrs validate.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return ui.localization.GetText(KeyInvalidURL)
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if errors.Is(fe.Err, validate.ErrInvalidExpiry) {
			parts = append(parts, ui.localization.GetText(KeyInvalidExpiry))
		} else {
			parts = append(parts, ui.localization.GetText(KeyInvalidURL))
		}
	}

	return strings.Join(parts, MiddleDotSeparator)
}

// onSubmissionUpdate handles state updates from the submission controller.
// It may be called from the controller's background goroutine.
func (ui *RootUI) onSubmissionUpdate(snap submit.Snapshot) {
	ui.statusMu.Lock()
	previous := ui.lastStatus
	ui.lastStatus = snap.Status
	ui.statusMu.Unlock()

	newSuccess := snap.Status == model.SubmissionStatusSucceeded && previous != model.SubmissionStatusSucceeded

	log.Printf("Submission update: status=%s hasLink=%v justCopied=%v",
		snap.Status, snap.HasLink(), snap.JustCopied)

	if newSuccess {
		stored := ui.store.Add(model.NewHistoryEntry(snap.Link))
		log.Printf("History entry %s recorded for %s", stored.ID, stored.ShortURL)

		if ui.settings.GetAutoCopyOnSuccess() {
			if err := ui.controller.Copy(); err != nil {
				log.Printf("Auto copy failed: %v", err)
			}
		}
	}

	// Render from a fresh snapshot on the UI thread; the received one may be
	// stale by the time the queued update runs
	fyne.Do(func() {
		ui.renderCurrentState(newSuccess)
		if newSuccess {
			ui.showToastNotification()
		}
	})
}

// renderCurrentState re-renders the form, notification panel and result card
// from the controller's current snapshot. Runs on the UI thread. When
// clearForm is set the input fields are reset for the next URL.
func (ui *RootUI) renderCurrentState(clearForm bool) {
	snap := ui.controller.Snapshot()

	switch snap.Status {
	case model.SubmissionStatusSubmitting:
		ui.shortenBtn.Disable()
		ui.shortenBtn.SetText(ui.localization.GetText(KeyShortening))
		ui.showNotification(ui.localization.GetText(KeyShortening), true, false)

		// A previous result stays visible until this submission resolves,
		// but copying and resetting are locked while in flight
		ui.copyBtn.Disable()
		ui.shortenMoreBtn.Disable()

	case model.SubmissionStatusSucceeded:
		ui.shortenBtn.Enable()
		ui.shortenBtn.SetText(ui.localization.GetText(KeyShorten))
		ui.hideNotification()

		ui.copyBtn.Enable()
		ui.shortenMoreBtn.Enable()

		if clearForm {
			ui.urlEntry.SetText("")
			ui.expiryEntry.SetText(strconv.Itoa(ui.settings.GetDefaultExpiryDays()))
			ui.reloadHistory()
		}

	case model.SubmissionStatusFailed:
		ui.shortenBtn.Enable()
		ui.shortenBtn.SetText(ui.localization.GetText(KeyShorten))
		// Keep the form contents so the user can retry
		ui.showNotification(ui.localization.GetText(KeyShortenFailed), false, true)

	default: // Idle
		ui.shortenBtn.Enable()
		ui.shortenBtn.SetText(ui.localization.GetText(KeyShorten))
		ui.hideNotification()
	}

	ui.renderResultCard(snap)
}

// renderResultCard shows or hides the result card based on the snapshot
func (ui *RootUI) renderResultCard(snap submit.Snapshot) {
	if !snap.HasLink() {
		ui.resultCard.Hide()
		return
	}

	ui.shortURLLabel.SetText(snap.Link.ShortURL)
	ui.longURLLabel.SetText(snap.Link.DisplayLongURL(LongURLDisplayLimit))

	if expiry, err := snap.Link.ExpiryTime(); err == nil {
		ui.expiryLabel.SetText(ui.localization.GetText(KeyExpires) + LabelSeparator + ui.localization.FormatLongDate(expiry.Local()))
		ui.expiryLabel.Show()
	} else {
		ui.expiryLabel.Hide()
	}

	// Flip the copy button label while the copied confirmation is active
	if snap.JustCopied {
		ui.copyBtn.SetText(ui.localization.GetText(KeyCopied))
	} else {
		ui.copyBtn.SetText(ui.localization.GetText(KeyCopy))
	}

	ui.resultCard.Show()
	ui.resultCard.Refresh()
}

// showNotification displays a message in the notification panel under the form.
// When spinning is true, a spinner indicates background activity. When
// destructive is true, the message is styled as an error.
func (ui *RootUI) showNotification(message string, spinning bool, destructive bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if destructive {
			ui.notificationLabel.Importance = widget.DangerImportance
		} else {
			ui.notificationLabel.Importance = widget.MediumImportance
		}
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}

// showToastNotification shows an in-app toast for a fresh short link
func (ui *RootUI) showToastNotification() {
	snap := ui.controller.Snapshot()
	if !snap.HasLink() {
		return
	}

	titleLabel := widget.NewLabel(ui.localization.GetText(KeySuccess))
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(snap.Link.ShortURL)
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	copyBtn := widget.NewButton(ui.localization.GetText(KeyCopy), func() {
		ui.onCopyClick()
	})
	copyBtn.Importance = widget.HighImportance

	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, titleLabel, closeBtn)
	content := container.NewVBox(
		header,
		messageLabel,
		container.NewHBox(copyBtn),
	)

	toastPopup = widget.NewPopUp(content, ui.window.Canvas())

	// Position in top-right corner
	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPos := fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin)

	toastPopup.Resize(toastSize)
	toastPopup.Move(toastPos)
	toastPopup.Show()

	// Auto-hide after configured time
	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(func() {
			if toastPopup != nil {
				toastPopup.Hide()
			}
		})
	}()
}

// onCopyClick copies the displayed short link via the controller
func (ui *RootUI) onCopyClick() {
	if err := ui.controller.Copy(); err != nil {
		log.Printf("Copy rejected: %v", err)
	}
}

// onOpenClick opens the displayed short link in the default browser
func (ui *RootUI) onOpenClick() {
	snap := ui.controller.Snapshot()
	if !snap.HasLink() {
		log.Printf("Open requested with no link displayed")
		return
	}

	if err := platform.OpenURLInBrowser(snap.Link.ShortURL); err != nil {
		log.Printf("Error opening link %s: %v", snap.Link.ShortURL, err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningLink)+LabelSeparator+err.Error()), ui.window.Canvas())
	}
}

// onShortenAnotherClick discards the current result and starts over
func (ui *RootUI) onShortenAnotherClick() {
	if err := ui.controller.Reset(); err != nil {
		log.Printf("Reset rejected: %v", err)
		return
	}

	ui.urlEntry.SetText("")
	ui.expiryEntry.SetText(strconv.Itoa(ui.settings.GetDefaultExpiryDays()))
	ui.window.Canvas().Focus(ui.urlEntry)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, ui.localization, func() {
		// The expiry prefill and history cap follow the saved settings
		ui.store.SetLimit(ui.settings.GetHistoryLimit())
		ui.reloadHistory()

		if strings.TrimSpace(ui.expiryEntry.Text) == "" {
			ui.expiryEntry.SetText(strconv.Itoa(ui.settings.GetDefaultExpiryDays()))
		}
	}).Show()
}

// createHistoryItem creates a new history row widget
func (ui *RootUI) createHistoryItem() fyne.CanvasObject {
	// Create placeholder row - will be updated in updateHistoryItem
	placeholder := &model.HistoryEntry{ID: "placeholder"}

	row := NewLinkRow(placeholder, ui.localization)
	row.SetCallbacks(
		ui.onCopyHistoryLink,
		ui.onOpenHistoryLink,
		ui.onRemoveHistoryEntry,
	)

	return row
}

// updateHistoryItem updates a history row with current data
func (ui *RootUI) updateHistoryItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.entries) {
		return
	}

	entry := ui.entries[id]
	if entry == nil {
		return
	}

	if row, ok := item.(*LinkRow); ok {
		// Re-set callbacks on every update so recycled rows act on real entries
		row.SetCallbacks(
			ui.onCopyHistoryLink,
			ui.onOpenHistoryLink,
			ui.onRemoveHistoryEntry,
		)

		row.UpdateEntry(entry)
	}
}

// reloadHistory refreshes the history list from the store
func (ui *RootUI) reloadHistory() {
	ui.entries = ui.store.All()

	if len(ui.entries) == 0 {
		ui.historyHeader.SetText(ui.localization.GetText(KeyHistoryEmpty))
	} else {
		ui.historyHeader.SetText(ui.localization.GetText(KeyHistory))
	}

	ui.historyList.Refresh()
}

// onCopyHistoryLink copies a past short link to the clipboard
func (ui *RootUI) onCopyHistoryLink(shortURL string) {
	log.Printf("Copying history link: %s", shortURL)

	clipboard := fyne.CurrentApp().Clipboard()
	clipboard.SetContent(shortURL)
	widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyCopiedToClipboard)), ui.window.Canvas())
}

// onOpenHistoryLink opens a past short link in the default browser
func (ui *RootUI) onOpenHistoryLink(shortURL string) {
	log.Printf("Opening history link: %s", shortURL)

	if err := platform.OpenURLInBrowser(shortURL); err != nil {
		log.Printf("Error opening link %s: %v", shortURL, err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningLink)+LabelSeparator+err.Error()), ui.window.Canvas())
	}
}

// onRemoveHistoryEntry removes one entry from the history
func (ui *RootUI) onRemoveHistoryEntry(entryID string) {
	log.Printf("Removing history entry %s", entryID)

	if err := ui.store.Remove(entryID); err != nil {
		log.Printf("Error removing history entry %s: %v", entryID, err)
		return
	}

	ui.reloadHistory()
}

// onClearHistory removes all history entries
func (ui *RootUI) onClearHistory() {
	ui.store.Clear()
	ui.reloadHistory()
}
