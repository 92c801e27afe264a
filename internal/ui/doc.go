package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It renders the hub of groups with their bounded item previews, the full
// item grid of a group, and item details. All UI strings are localized via
// Localization.
