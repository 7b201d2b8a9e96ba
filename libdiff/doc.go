// Package libdiff compares configurations, either as encoded text line by
// line or structurally as a JSON merge patch.
package libdiff
