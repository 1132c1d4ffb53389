package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the shorten form to the submission controller and renders the result
// card, link history, notifications, and settings. All UI strings are localized
// via Localization.
