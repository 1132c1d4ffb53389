package submit

// Package submit implements the submission lifecycle for the shortening
// form. The controller owns one state machine per form instance, runs the
// network call off the UI thread, propagates state snapshots to the UI via a
// callback, and drives the timed clipboard-copy confirmation.
