package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/five82/dexter/internal/pokeapi"
)

const (
	loadingText   = "Loading..."
	removeControl = "[x]"
	entryIndent   = "    "
)

// entryView owns the lazily fetched detail for one tracked entry. It lives
// exactly as long as its name stays in the collection.
type entryView struct {
	name    string
	token   uint64
	loading bool
	detail  *pokeapi.Detail
}

func newEntryView(name string, token uint64) entryView {
	return entryView{name: name, token: token, loading: true}
}

// settle records the outcome of the mount fetch. A settled view never goes
// back to loading.
func (v entryView) settle(detail *pokeapi.Detail) entryView {
	v.loading = false
	v.detail = detail
	return v
}

func (v entryView) spriteURL() string {
	if v.detail == nil {
		return ""
	}
	return strings.TrimSpace(v.detail.Sprites.FrontDefault)
}

type entryRenderOpts struct {
	width       int
	selected    bool
	hideSprites bool
}

// render returns the lines for this entry.
func (v entryView) render(styles Styles, opts entryRenderOpts) []string {
	marker := "  "
	if opts.selected {
		marker = "› "
	}

	if v.loading {
		return []string{fitWidth(marker+styles.MutedText.Render(loadingText), opts.width)}
	}

	nameText := "Name: " + v.name
	if opts.selected {
		nameText = styles.Selected.Render(nameText)
	} else {
		nameText = styles.Text.Bold(true).Render(nameText)
	}
	left := marker + nameText
	right := styles.Remove.Render(removeControl)
	lines := []string{joinEdges(left, right, opts.width)}

	if v.detail == nil {
		return lines
	}

	lines = append(lines,
		fitWidth(entryIndent+styles.MutedText.Render("Number of forms: ")+
			styles.Text.Render(fmt.Sprintf("%d", len(v.detail.Forms))), opts.width),
		fitWidth(entryIndent+styles.MutedText.Render("Forms: ")+
			styles.Text.Render(v.detail.FormsSummary()), opts.width),
	)
	if !opts.hideSprites {
		if sprite := v.spriteURL(); sprite != "" {
			link := termenv.Hyperlink(sprite, sprite)
			lines = append(lines, fitWidth(entryIndent+styles.MutedText.Render("Sprite: ")+
				styles.InfoText.Render(link), opts.width))
		}
	}
	return lines
}

// joinEdges places left and right on one line separated by padding.
func joinEdges(left, right string, width int) string {
	if width <= 0 {
		return left + " " + right
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		avail := width - lipgloss.Width(right) - 1
		if avail < 1 {
			return fitWidth(left, width)
		}
		left = ansi.Truncate(left, avail, "…")
		gap = width - lipgloss.Width(left) - lipgloss.Width(right)
		if gap < 1 {
			gap = 1
		}
	}
	return left + strings.Repeat(" ", gap) + right
}

// fitWidth truncates s to width cells; width <= 0 disables truncation.
func fitWidth(s string, width int) string {
	if width <= 0 || ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
