package platform

// Package platform contains OS/platform integration: resolving sample asset
// paths to files, loading them as Fyne resources, and opening files with the
// system's default application.
