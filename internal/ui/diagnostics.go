package ui

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/dexter/internal/logtail"
)

// applyDiagnostics fills the diagnostics viewport from a log read.
func (m *Model) applyDiagnostics(msg diagnosticsMsg) {
	styles := m.theme.Styles()
	switch {
	case msg.err != nil && !errors.Is(msg.err, fs.ErrNotExist):
		m.diagnostics.SetContent(styles.DangerText.Render(fmt.Sprintf("read log: %v", msg.err)))
		return
	case len(msg.lines) == 0:
		m.diagnostics.SetContent(styles.FaintText.Render("Nothing logged yet."))
		return
	}

	rendered := make([]string, 0, len(msg.lines))
	for _, line := range msg.lines {
		style := styles.SeverityStyle(logtail.Classify(line))
		rendered = append(rendered, style.Render(fitWidth(line, m.diagnostics.Width)))
	}
	m.diagnostics.SetContent(strings.Join(rendered, "\n"))
	m.diagnostics.GotoBottom()
}

func (m Model) handleDiagnosticsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Diagnostics), key.Matches(msg, m.keys.Quit):
		m.showDiagnostics = false
		return m, nil
	case key.Matches(msg, m.keys.Reload):
		return m, readDiagnosticsCmd(m.logPath)
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.diagnostics.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.diagnostics.GotoBottom()
	case key.Matches(msg, m.keys.Down):
		m.diagnostics.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		m.diagnostics.ScrollUp(1)
	}
	return m, nil
}

func (m Model) renderDiagnostics() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	title := "Diagnostics"
	if m.logPath != "" {
		title += "  " + truncateMiddle(m.logPath, max(m.width-20, 10))
	}
	header := styles.Header.Width(m.width).Render(bg.Render(title, styles.AccentText.Bold(true)))

	hints := []string{
		bg.Render("r", styles.AccentText) + bg.Render(":Reload", styles.MutedText),
		bg.Render("j/k", styles.AccentText) + bg.Render(":Scroll", styles.MutedText),
		bg.Render("esc", styles.AccentText) + bg.Render(":Back", styles.MutedText),
	}
	footer := styles.Footer.Width(m.width).Render(bg.Join(hints, "  "))

	return header + "\n" + m.diagnostics.View() + "\n" + footer
}
