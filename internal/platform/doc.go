package platform

// Package platform contains OS integration glue: opening links in the system
// default browser and locating the per-user application data directory.
