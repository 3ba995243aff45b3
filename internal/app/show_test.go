package app

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/dexter/internal/pokeapi"
	"github.com/five82/dexter/internal/pokeapi/pokeapitest"
)

func TestShow_JSON(t *testing.T) {
	catalog := pokeapitest.New(pokeapitest.Entry(25, "pikachu"))
	var buf bytes.Buffer

	err := show(context.Background(), &buf, catalog, "  Pikachu ", ShowOptions{JSON: true})
	require.NoError(t, err)

	var got pokeapi.Detail
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "pikachu", got.Name)
	assert.Equal(t, 25, got.ID)
	assert.Equal(t, []string{"pikachu"}, catalog.Calls())
}

func TestShow_Markdown(t *testing.T) {
	catalog := pokeapitest.New(pokeapitest.Entry(1, "bulbasaur"))
	var buf bytes.Buffer

	err := show(context.Background(), &buf, catalog, "bulbasaur", ShowOptions{Width: 60})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "bulbasaur")
	assert.Contains(t, out, "Number of forms")
}

func TestShow_NotFound(t *testing.T) {
	catalog := pokeapitest.New()
	var buf bytes.Buffer

	err := show(context.Background(), &buf, catalog, "notapokemon", ShowOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, pokeapi.ErrNotFound))
	assert.Empty(t, buf.String())
}

func TestShow_BlankName(t *testing.T) {
	catalog := pokeapitest.New()

	err := show(context.Background(), &bytes.Buffer{}, catalog, "   ", ShowOptions{})
	require.Error(t, err)
	assert.Empty(t, catalog.Calls())
}

func TestDetailMarkdown_NoForms(t *testing.T) {
	md := detailMarkdown(&pokeapi.Detail{ID: 7, Name: "squirtle"})

	assert.Contains(t, md, "# squirtle")
	assert.Contains(t, md, "**Number of forms:** 0")
	assert.Contains(t, md, "**Forms:** "+pokeapi.NoFormsPlaceholder)
	assert.NotContains(t, md, "Sprite")
}

func TestHostOf(t *testing.T) {
	assert.Equal(t, "pokeapi.co", hostOf("https://pokeapi.co/api/v2/"))
	assert.Equal(t, "localhost:8080", hostOf("http://localhost:8080/"))
}
