package roster

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/dexter/internal/pokeapi/pokeapitest"
)

func TestLoadInitial_ReturnsEntriesInIDOrder(t *testing.T) {
	catalog := pokeapitest.Numbered(25)

	entries, err := LoadInitial(context.Background(), catalog, DefaultInitialCount)

	require.NoError(t, err)
	require.Len(t, entries, DefaultInitialCount)
	for i, e := range entries {
		assert.Equal(t, i+1, e.ID)
		assert.Equal(t, fmt.Sprintf("mon-%d", i+1), e.Name)
	}
	assert.Len(t, catalog.Calls(), DefaultInitialCount)
}

func TestLoadInitial_NonPositiveCountUsesDefault(t *testing.T) {
	catalog := pokeapitest.Numbered(DefaultInitialCount)

	entries, err := LoadInitial(context.Background(), catalog, 0)

	require.NoError(t, err)
	assert.Len(t, entries, DefaultInitialCount)
}

func TestLoadInitial_AnyFailureFailsTheBatch(t *testing.T) {
	catalog := pokeapitest.Numbered(5)
	boom := errors.New("connection reset")
	catalog.Fail("3", boom)

	entries, err := LoadInitial(context.Background(), catalog, 5)

	require.Error(t, err)
	assert.Nil(t, entries, "no partial results on failure")
}

func TestLoadInitial_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	entries, err := LoadInitial(ctx, pokeapitest.Numbered(3), 3)

	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, entries)
}

func TestLoadInitial_NilCatalog(t *testing.T) {
	_, err := LoadInitial(context.Background(), nil, 3)
	require.Error(t, err)
}
