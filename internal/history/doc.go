package history

// Package history keeps the most recent shortened links. The store is an
// in-memory list capped at a configurable limit, mirrored to a JSON file in
// the app config directory so it survives restarts.
