package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// CreateMobileButton creates a button sized for mobile touch targets
func (m *MobileUI) CreateMobileButton(text string, onTapped func()) *widget.Button {
	btn := widget.NewButton(text, onTapped)

	if m.IsMobileDevice() {
		btn.Resize(fyne.NewSize(btn.MinSize().Width, MinTouchTargetSize))
	}

	return btn
}

// CreateMobileEntry creates an entry field sized for mobile keyboards
func (m *MobileUI) CreateMobileEntry(placeholder string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(placeholder)

	if m.IsMobileDevice() {
		entry.Resize(fyne.NewSize(entry.Size().Width, MobileEntryHeight))
	}

	return entry
}

// NumericEntry is an entry for whole-number fields such as the expiry days
type NumericEntry struct {
	widget.Entry
}

// Keyboard selects the number pad on mobile devices
func (e *NumericEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}

// CreateNumericEntry creates a numeric entry sized for mobile keyboards
func (m *MobileUI) CreateNumericEntry(placeholder string) *NumericEntry {
	entry := &NumericEntry{}
	entry.ExtendBaseWidget(entry)
	entry.SetPlaceHolder(placeholder)

	if m.IsMobileDevice() {
		entry.Resize(fyne.NewSize(entry.Size().Width, MobileEntryHeight))
	}

	return entry
}
