package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderMain stacks header, search line, error line, list and footer.
func (m Model) renderMain() string {
	return strings.Join([]string{
		m.renderHeader(),
		m.renderSearchLine(),
		m.renderErrorLine(),
		m.list.View(),
		m.renderFooter(),
	}, "\n")
}

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{bg.Render("dexter", styles.Logo.Background(lipgloss.Color(m.theme.Surface)))}

	if !m.initialSettle {
		parts = append(parts, bg.Render(loadingText, styles.WarningText.Bold(true)))
	} else {
		parts = append(parts,
			bg.Render("Tracked:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", m.entries.Len()), styles.Text))
	}

	if pending := m.pendingCount(); pending > 0 {
		parts = append(parts,
			bg.Render("Loading:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", pending), styles.InfoText))
	}

	if m.catalogHost != "" && m.width >= LayoutCompactWidth {
		parts = append(parts, bg.Render(truncateMiddle(m.catalogHost, 40), styles.FaintText))
	}

	if m.status != "" {
		parts = append(parts, bg.Render(truncate(m.status, 60), styles.AccentText))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// renderSearchLine shows the input; it is dimmed while the list has focus.
func (m Model) renderSearchLine() string {
	if m.inputFocused {
		return m.input.View()
	}
	styles := m.theme.Styles()
	value := m.input.Value()
	if value == "" {
		return styles.FaintText.Render(m.input.Prompt + m.input.Placeholder)
	}
	return styles.MutedText.Render(m.input.Prompt + value)
}

func (m Model) renderErrorLine() string {
	if m.errText == "" {
		return ""
	}
	return m.theme.Styles().DangerText.Render(fitWidth(m.errText, m.width))
}

// renderFooter renders key hints plus the theme indicator.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	h := m.help
	h.Styles.ShortKey = styles.AccentText
	h.Styles.ShortDesc = styles.MutedText
	h.Styles.ShortSeparator = styles.FaintText

	theme := styles.AccentText.Render("T") + styles.MutedText.Render(":") + styles.FaintText.Render(m.theme.Name)
	hints := h.ShortHelpView(m.keys.ShortHelp())
	return styles.Footer.Width(m.width).Render(hints + "  " + theme)
}

func (m Model) pendingCount() int {
	n := 0
	for _, v := range m.views {
		if v.loading {
			n++
		}
	}
	return n
}

// LayoutCompactWidth is the width below which the header drops the catalog host.
const LayoutCompactWidth = 100

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// truncateMiddle keeps the start and the end, favouring the end.
func truncateMiddle(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 5 {
		return string(r[:max])
	}
	endLen := (max - 3) * 2 / 3
	startLen := max - 3 - endLen
	return string(r[:startLen]) + "..." + string(r[len(r)-endLen:])
}
