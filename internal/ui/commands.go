package ui

import (
	"context"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/dexter/internal/logtail"
	"github.com/five82/dexter/internal/pokeapi"
	"github.com/five82/dexter/internal/roster"
)

const diagnosticsLines = 500

func loadInitialCmd(ctx context.Context, catalog pokeapi.Catalog, count int) tea.Cmd {
	return func() tea.Msg {
		entries, err := roster.LoadInitial(ctx, catalog, count)
		return initialLoadMsg{entries: entries, err: err}
	}
}

func searchCmd(ctx context.Context, catalog pokeapi.Catalog, query string) tea.Cmd {
	return func() tea.Msg {
		summary, err := catalog.FetchSummary(ctx, query)
		return searchResultMsg{query: query, summary: summary, err: err}
	}
}

func fetchDetailCmd(ctx context.Context, catalog pokeapi.Catalog, name string, token uint64) tea.Cmd {
	return func() tea.Msg {
		detail, err := catalog.FetchDetail(ctx, name)
		return detailMsg{name: name, token: token, detail: detail, err: err}
	}
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{text: text, err: clipboard.WriteAll(text)}
	}
}

func readDiagnosticsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, diagnosticsLines)
		return diagnosticsMsg{lines: lines, err: err}
	}
}
