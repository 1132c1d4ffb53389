package client

// Package client implements the HTTP client for the URL shortening service.
// It sends one POST per submission, maps the snake_case wire format to the
// domain model, and classifies failures into sentinel errors the UI collapses
// into a single generic notification.
