package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconLink     = "🔗"
	IconCopy     = "📋"
	IconClose    = "×"
	IconError    = "❌"
	IconDelete   = "🗑"
	IconLanguage = "🌐"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	LabelSeparator     = ": "
)

// Layout sizing (LinkRow / lists)
const (
	ShortURLLabelWidth float32 = 160
	DateLabelWidth     float32 = 120

	RowMinWidth  float32 = 400
	RowMinHeight float32 = 56
	RowDefaultH  float32 = 48

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileEntryHeight  float32 = 48
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 100
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)

// Truncation limits for long URLs in list rows
const (
	LongURLDisplayLimit = 60
)
