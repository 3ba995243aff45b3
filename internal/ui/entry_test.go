package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/dexter/internal/pokeapi"
)

func renderPlain(v entryView, opts entryRenderOpts) []string {
	lines := v.render(GetTheme("Nightfox").Styles(), opts)
	for i := range lines {
		lines[i] = ansi.Strip(lines[i])
	}
	return lines
}

func TestEntryView_LoadingShowsOnlyIndicator(t *testing.T) {
	lines := renderPlain(newEntryView("pikachu", 1), entryRenderOpts{width: 80})

	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], loadingText)
	assert.NotContains(t, lines[0], "pikachu")
	assert.NotContains(t, lines[0], removeControl)
}

func TestEntryView_SettledWithDetail(t *testing.T) {
	v := newEntryView("pikachu", 1).settle(&pokeapi.Detail{
		ID:   25,
		Name: "pikachu",
		Forms: []pokeapi.NamedResource{
			{Name: "pikachu"}, {Name: "pikachu-cosplay"},
		},
		Sprites: pokeapi.Sprites{FrontDefault: "https://img.example/25.png"},
	})

	lines := renderPlain(v, entryRenderOpts{width: 80})

	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Name: pikachu")
	assert.True(t, strings.HasSuffix(lines[0], removeControl), "remove control should be right-aligned: %q", lines[0])
	assert.Equal(t, 80, ansi.StringWidth(lines[0]))
	assert.Contains(t, lines[1], "Number of forms: 2")
	assert.Contains(t, lines[2], "Forms: pikachu, pikachu-cosplay")
	assert.Contains(t, lines[3], "Sprite: https://img.example/25.png")
}

func TestEntryView_EmptyFormsShowsPlaceholder(t *testing.T) {
	v := newEntryView("ditto", 1).settle(&pokeapi.Detail{Name: "ditto"})

	lines := renderPlain(v, entryRenderOpts{width: 80})

	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Number of forms: 0")
	assert.Contains(t, lines[2], "Forms: "+pokeapi.NoFormsPlaceholder)
}

func TestEntryView_SettledWithoutDetail(t *testing.T) {
	v := newEntryView("mew", 1).settle(nil)

	lines := renderPlain(v, entryRenderOpts{width: 40})

	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "Name: mew")
	assert.Contains(t, lines[0], removeControl)
	assert.Empty(t, v.spriteURL())
}

func TestEntryView_HideSprites(t *testing.T) {
	v := newEntryView("eevee", 1).settle(&pokeapi.Detail{
		Name:    "eevee",
		Forms:   []pokeapi.NamedResource{{Name: "eevee"}},
		Sprites: pokeapi.Sprites{FrontDefault: "https://img.example/133.png"},
	})

	lines := renderPlain(v, entryRenderOpts{width: 80, hideSprites: true})

	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.NotContains(t, l, "Sprite:")
	}
	assert.Equal(t, "https://img.example/133.png", v.spriteURL())
}

func TestEntryView_NarrowWidthTruncates(t *testing.T) {
	v := newEntryView("a-very-long-pokemon-name-indeed", 1).settle(nil)

	lines := renderPlain(v, entryRenderOpts{width: 20})

	require.Len(t, lines, 1)
	assert.LessOrEqual(t, ansi.StringWidth(lines[0]), 20)
	assert.True(t, strings.HasSuffix(lines[0], removeControl))
}

func TestFitWidth(t *testing.T) {
	assert.Equal(t, "hello", fitWidth("hello", 0))
	assert.Equal(t, "hello", fitWidth("hello", 5))
	assert.Equal(t, 3, ansi.StringWidth(fitWidth("hello", 3)))
}
