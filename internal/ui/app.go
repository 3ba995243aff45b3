package ui

import (
	"context"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/dexter/internal/pokeapi"
	"github.com/five82/dexter/internal/prefs"
	"github.com/five82/dexter/internal/roster"
)

// Options configures the UI.
type Options struct {
	Context      context.Context
	Catalog      pokeapi.Catalog
	CatalogHost  string
	InitialCount int
	LogPath      string
	PrefsPath    string // empty disables saving preferences
	Prefs        prefs.Prefs
}

// Model is the root application state for Bubble Tea. It owns the roster
// and one entryView per tracked name.
type Model struct {
	// Configuration
	ctx          context.Context
	catalog      pokeapi.Catalog
	catalogHost  string
	initialCount int
	logPath      string
	prefsPath    string

	// UI state
	theme       Theme
	keys        keyMap
	help        help.Model
	width       int
	height      int
	ready       bool
	hideSprites bool
	showHelp    bool
	status      string

	// Search
	input        textinput.Model
	inputFocused bool
	errText      string

	// Roster
	entries       roster.Collection
	views         map[string]entryView
	nextToken     uint64
	selected      int
	initialSettle bool

	list viewport.Model

	// Diagnostics
	showDiagnostics bool
	diagnostics     viewport.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	count := opts.InitialCount
	if count <= 0 {
		count = roster.DefaultInitialCount
	}

	input := textinput.New()
	input.Placeholder = "Add new pokemon"
	input.Prompt = "› "
	input.CharLimit = 64

	return Model{
		ctx:          ctx,
		catalog:      opts.Catalog,
		catalogHost:  opts.CatalogHost,
		initialCount: count,
		logPath:      opts.LogPath,
		prefsPath:    opts.PrefsPath,
		theme:        GetTheme(opts.Prefs.Theme),
		keys:         DefaultKeyMap(),
		help:         help.New(),
		hideSprites:  opts.Prefs.HideSprites,
		input:        input,
		views:        make(map[string]entryView),
		list:         viewport.New(0, 0),
		diagnostics:  viewport.New(0, 0),
	}
}

// Init implements tea.Model. The initial batch starts immediately.
func (m Model) Init() tea.Cmd {
	if m.catalog == nil {
		return nil
	}
	return loadInitialCmd(m.ctx, m.catalog, m.initialCount)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case initialLoadMsg:
		return m.applyInitialLoad(msg)

	case searchResultMsg:
		return m.applySearchResult(msg)

	case detailMsg:
		return m.applyDetail(msg), nil

	case clipboardMsg:
		if msg.err != nil {
			log.Printf("clipboard: %v", msg.err)
			m.status = "Copy failed"
		} else {
			m.status = "Copied " + msg.text
		}
		return m, nil

	case diagnosticsMsg:
		m.applyDiagnostics(msg)
		return m, nil
	}

	if m.inputFocused {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return loadingText
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showDiagnostics {
		return m.renderDiagnostics()
	}
	return m.renderMain()
}

// handleKey routes keys to the active layer: help overlay, diagnostics,
// search input, then the list.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.showDiagnostics {
		return m.handleDiagnosticsKey(msg)
	}
	if m.inputFocused {
		return m.handleInputKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submitSearch()
	case key.Matches(msg, m.keys.Cancel):
		m.inputFocused = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		m.refreshList()
		return m, nil

	case key.Matches(msg, m.keys.Sprites):
		m.hideSprites = !m.hideSprites
		m.savePrefs()
		m.refreshList()
		return m, nil

	case key.Matches(msg, m.keys.Diagnostics):
		m.showDiagnostics = true
		return m, readDiagnosticsCmd(m.logPath)

	case key.Matches(msg, m.keys.Search):
		m.inputFocused = true
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Remove):
		if name, ok := m.selectedName(); ok {
			m.remove(name)
		}
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return m.copySelectedSprite()

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(m.selected - 1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(m.selected + 1)
	case key.Matches(msg, m.keys.Top):
		m.moveSelection(0)
	case key.Matches(msg, m.keys.Bottom):
		m.moveSelection(m.entries.Len() - 1)
	}
	return m, nil
}

func (m Model) copySelectedSprite() (tea.Model, tea.Cmd) {
	name, ok := m.selectedName()
	if !ok {
		return m, nil
	}
	sprite := m.views[name].spriteURL()
	if sprite == "" {
		m.status = fmt.Sprintf("No sprite for %s", name)
		return m, nil
	}
	return m, copyCmd(sprite)
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, HideSprites: m.hideSprites}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		log.Printf("save prefs: %v", err)
		m.status = "Could not save preferences"
	}
}

// resize recomputes viewport sizes: header, search line, error line and
// footer take one row each.
func (m *Model) resize() {
	listHeight := m.height - 4
	if listHeight < 1 {
		listHeight = 1
	}
	m.list.Width = m.width
	m.list.Height = listHeight
	m.help.Width = m.width
	m.input.Width = max(m.width-lenPrompt(m.input.Prompt)-2, 10)

	diagHeight := m.height - 2
	if diagHeight < 1 {
		diagHeight = 1
	}
	m.diagnostics.Width = m.width
	m.diagnostics.Height = diagHeight

	m.refreshList()
}

func lenPrompt(p string) int {
	return len([]rune(p))
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Catalog == nil {
		return fmt.Errorf("ui requires a catalog")
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
