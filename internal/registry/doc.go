// Package registry holds the process-wide sample content: all groups and the
// items inside them, decoded from a YAML document, with lookup by identifier.
//
// Lookups are linear scans; the data sets are small.
package registry
