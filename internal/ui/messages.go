package ui

import "github.com/five82/dexter/internal/pokeapi"

// initialLoadMsg carries the whole initial batch so the list changes once.
type initialLoadMsg struct {
	entries []pokeapi.Summary
	err     error
}

// searchResultMsg answers one submitted search.
type searchResultMsg struct {
	query   string
	summary pokeapi.Summary
	err     error
}

// detailMsg answers the fetch started when an entry view mounted. token
// identifies that mount.
type detailMsg struct {
	name   string
	token  uint64
	detail *pokeapi.Detail
	err    error
}

type clipboardMsg struct {
	text string
	err  error
}

type diagnosticsMsg struct {
	lines []string
	err   error
}
