// Package ui is dexter's terminal interface, built on Bubble Tea.
//
// # Structure
//
//   - app.go: Model, Options, key routing and Run
//   - list.go: the tracked list. Initial load, search, removal and selection
//   - entry.go: one entry view, which fetches its own detail when mounted
//   - commands.go, messages.go: network and clipboard work as tea.Cmd values
//   - header.go, help.go, diagnostics.go: chrome and overlays
//   - theme.go, keys.go, style_helpers.go: palettes, bindings, background helpers
//
// # Event Flow
//
//  1. Init starts the initial batch; nothing renders as entries until all of it arrives.
//  2. Every name added to the list mounts an entry view, which starts a detail fetch.
//  3. Detail results carry the mount token; results for views that no longer
//     exist, or were remounted, are logged and dropped.
//  4. Search results prepend new names. Names already listed are ignored.
//
// All state changes happen in Update. Commands never touch the Model.
package ui
