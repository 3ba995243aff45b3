// Package logtail reads the tail of dexter's diagnostic log.
//
// Catalog failures that are never shown in the list (initial load, per-entry
// detail fetches) are written to the log file with the standard logger. The
// diagnostics view uses Read to show the most recent lines and Classify to
// pick a color for each one.
//
// Read scans the file once with a ring buffer, so memory stays proportional to
// the number of lines requested rather than the size of the file.
package logtail
