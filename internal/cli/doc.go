// Package cli implements the gardening-directions command line: listing
// groups with their previews, showing single groups and items, and starting
// the desktop app.
package cli
