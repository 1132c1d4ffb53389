package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/linksnip/link-shortener/internal/config"
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 420
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	serviceURLEntry   *widget.Entry
	timeoutEntry      *widget.Entry
	defaultDaysEntry  *widget.Entry
	historyLimitEntry *widget.Entry
	autoCopyCheck     *widget.Check
	languageSelect    *widget.Select
}

// NewSettingsDialog creates a new settings dialog. The onSaved callback runs
// after confirmed changes have been written to the preferences.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Shortening service endpoint
	sd.serviceURLEntry = widget.NewEntry()
	sd.serviceURLEntry.SetPlaceHolder(config.DefaultServiceBaseURL)

	// Request timeout in seconds
	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.MinRequestTimeoutSec) + "-" + strconv.Itoa(config.MaxRequestTimeoutSec))

	// Default expiry prefilled into the form
	sd.defaultDaysEntry = widget.NewEntry()
	sd.defaultDaysEntry.SetPlaceHolder(strconv.Itoa(config.MinExpiryDays) + "-" + strconv.Itoa(config.MaxExpiryDays))

	// History size cap
	sd.historyLimitEntry = widget.NewEntry()
	sd.historyLimitEntry.SetPlaceHolder(strconv.Itoa(config.MinHistoryLimit) + "-" + strconv.Itoa(config.MaxHistoryLimit))

	// Copy the short link right after a successful submission
	sd.autoCopyCheck = widget.NewCheck(sd.localization.GetText(KeyAutoCopy), nil)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = sd.localization.GetText(KeyLanguage)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyServiceURL)+LabelSeparator),
		sd.serviceURLEntry,

		widget.NewLabel(sd.localization.GetText(KeyRequestTimeout)+LabelSeparator),
		sd.timeoutEntry,

		widget.NewLabel(sd.localization.GetText(KeyDefaultExpiry)+LabelSeparator),
		sd.defaultDaysEntry,

		widget.NewLabel(sd.localization.GetText(KeyHistoryLimit)+LabelSeparator),
		sd.historyLimitEntry,

		widget.NewSeparator(),
		sd.autoCopyCheck,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+LabelSeparator),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.serviceURLEntry.SetText(sd.settings.GetServiceBaseURL())
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetRequestTimeoutSec()))
	sd.defaultDaysEntry.SetText(strconv.Itoa(sd.settings.GetDefaultExpiryDays()))
	sd.historyLimitEntry.SetText(strconv.Itoa(sd.settings.GetHistoryLimit()))
	sd.autoCopyCheck.SetChecked(sd.settings.GetAutoCopyOnSuccess())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Validate and save the service endpoint
	if sd.serviceURLEntry.Text != "" {
		sd.settings.SetServiceBaseURL(sd.serviceURLEntry.Text)
	}

	// Validate and save the request timeout
	if sd.timeoutEntry.Text != "" {
		if seconds, err := strconv.Atoi(sd.timeoutEntry.Text); err == nil {
			sd.settings.SetRequestTimeoutSec(seconds)
		}
	}

	// Validate and save the default expiry
	if sd.defaultDaysEntry.Text != "" {
		if days, err := strconv.Atoi(sd.defaultDaysEntry.Text); err == nil {
			sd.settings.SetDefaultExpiryDays(days)
		}
	}

	// Validate and save the history limit
	if sd.historyLimitEntry.Text != "" {
		if limit, err := strconv.Atoi(sd.historyLimitEntry.Text); err == nil {
			sd.settings.SetHistoryLimit(limit)
		}
	}

	// Save auto-copy preference
	sd.settings.SetAutoCopyOnSuccess(sd.autoCopyCheck.Checked)

	// Save language
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
