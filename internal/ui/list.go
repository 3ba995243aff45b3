package ui

import (
	"errors"
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/dexter/internal/pokeapi"
	"github.com/five82/dexter/internal/roster"
)

// applyInitialLoad replaces the collection with the initial batch. Views for
// names that survive the replacement keep their state.
func (m Model) applyInitialLoad(msg initialLoadMsg) (tea.Model, tea.Cmd) {
	m.initialSettle = true
	if msg.err != nil {
		log.Printf("initial load failed: %v", msg.err)
		m.refreshList()
		return m, nil
	}

	m.entries.Replace(msg.entries)

	var cmds []tea.Cmd
	keep := make(map[string]struct{}, m.entries.Len())
	for _, name := range m.entries.Names() {
		keep[name] = struct{}{}
		if _, ok := m.views[name]; ok {
			continue
		}
		cmds = append(cmds, m.mount(name))
	}
	for name := range m.views {
		if _, ok := keep[name]; !ok {
			delete(m.views, name)
		}
	}

	m.clampSelection()
	m.refreshList()
	return m, tea.Batch(cmds...)
}

// submitSearch starts a lookup for the current input. Blank input does nothing.
func (m Model) submitSearch() (tea.Model, tea.Cmd) {
	query, ok := roster.NormalizeQuery(m.input.Value())
	if !ok {
		return m, nil
	}
	m.status = "Searching " + query + "..."
	return m, searchCmd(m.ctx, m.catalog, query)
}

// applySearchResult prepends a new entry, or reports the failure. A result
// whose name is already tracked leaves everything as it was.
func (m Model) applySearchResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	if msg.err != nil {
		// Transport failures share the not-found message; the log keeps the cause.
		m.errText = fmt.Sprintf("Pokemon %s not found", msg.query)
		if !errors.Is(msg.err, pokeapi.ErrNotFound) {
			log.Printf("search %q failed: %v", msg.query, msg.err)
		} else {
			log.Printf("search %q: not found", msg.query)
		}
		m.refreshList()
		return m, nil
	}

	if !m.entries.Insert(msg.summary) {
		m.status = msg.summary.Name + " is already listed"
		return m, nil
	}
	m.errText = ""
	m.input.SetValue("")
	m.selected = 0
	cmd := m.mount(msg.summary.Name)
	m.refreshList()
	return m, cmd
}

// applyDetail settles the view the fetch was started for. Results for views
// that were removed, or remounted since, are dropped.
func (m Model) applyDetail(msg detailMsg) Model {
	view, ok := m.views[msg.name]
	if !ok || view.token != msg.token {
		log.Printf("discarding detail for unmounted %s", msg.name)
		return m
	}
	if msg.err != nil {
		log.Printf("detail %s failed: %v", msg.name, msg.err)
		m.views[msg.name] = view.settle(nil)
	} else {
		m.views[msg.name] = view.settle(msg.detail)
	}
	m.refreshList()
	return m
}

// mount creates the view for name and returns the fetch that will settle it.
func (m *Model) mount(name string) tea.Cmd {
	m.nextToken++
	token := m.nextToken
	m.views[name] = newEntryView(name, token)
	return fetchDetailCmd(m.ctx, m.catalog, name, token)
}

// remove drops name and its view.
func (m *Model) remove(name string) {
	m.entries.Remove(name)
	delete(m.views, name)
	m.clampSelection()
	m.refreshList()
}

func (m Model) selectedName() (string, bool) {
	if m.selected < 0 || m.selected >= m.entries.Len() {
		return "", false
	}
	return m.entries.At(m.selected).Name, true
}

func (m *Model) moveSelection(idx int) {
	m.selected = idx
	m.clampSelection()
	m.refreshList()
}

func (m *Model) clampSelection() {
	n := m.entries.Len()
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// listLines renders every entry and reports the line span of the selection.
func (m Model) listLines() (lines []string, selStart, selEnd int) {
	styles := m.theme.Styles()
	for i, e := range m.entries.Entries() {
		view, ok := m.views[e.Name]
		if !ok {
			view = newEntryView(e.Name, 0)
		}
		if i == m.selected {
			selStart = len(lines)
		}
		lines = append(lines, view.render(styles, entryRenderOpts{
			width:       m.list.Width,
			selected:    i == m.selected,
			hideSprites: m.hideSprites,
		})...)
		if i == m.selected {
			selEnd = len(lines)
		}
		lines = append(lines, "")
	}
	return lines, selStart, selEnd
}

// refreshList rebuilds the list viewport and keeps the selection visible.
func (m *Model) refreshList() {
	lines, start, end := m.listLines()
	if len(lines) == 0 {
		m.list.SetContent(m.emptyListText())
		m.list.GotoTop()
		return
	}
	m.list.SetContent(strings.Join(lines, "\n"))

	if m.list.Height <= 0 {
		return
	}
	switch {
	case start < m.list.YOffset:
		m.list.SetYOffset(start)
	case end > m.list.YOffset+m.list.Height:
		m.list.SetYOffset(end - m.list.Height)
	}
}

func (m Model) emptyListText() string {
	styles := m.theme.Styles()
	if !m.initialSettle {
		return styles.MutedText.Render(loadingText)
	}
	return styles.FaintText.Render("No entries. Press / to add one.")
}
