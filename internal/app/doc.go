// Package app is the composition root for dexter.
//
// Run loads configuration, routes the standard logger to the configured log
// file, builds the catalog client and hands everything to the ui package.
// Show performs the same lookup an entry view does and prints it once,
// for scripts and quick checks.
//
// Fatal errors (returned): unreadable config, bad base_url, log file that
// cannot be opened. Everything after startup is logged and shown in the UI.
package app
