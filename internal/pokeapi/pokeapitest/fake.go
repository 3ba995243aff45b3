// Package pokeapitest provides an in-memory pokeapi.Catalog for tests.
package pokeapitest

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/five82/dexter/internal/pokeapi"
)

// Catalog serves fixtures keyed by name. Numeric identifiers resolve through
// the fixture ids. It records every identifier it was asked for.
type Catalog struct {
	mu       sync.Mutex
	byName   map[string]pokeapi.Detail
	failures map[string]error
	calls    []string
}

var _ pokeapi.Catalog = (*Catalog)(nil)

// New returns a Catalog seeded with the given details.
func New(details ...pokeapi.Detail) *Catalog {
	c := &Catalog{
		byName:   make(map[string]pokeapi.Detail),
		failures: make(map[string]error),
	}
	for _, d := range details {
		c.byName[d.Name] = d
	}
	return c
}

// Numbered returns a Catalog holding count entries named "mon-1".."mon-N"
// with matching ids and a single form each.
func Numbered(count int) *Catalog {
	details := make([]pokeapi.Detail, 0, count)
	for i := 1; i <= count; i++ {
		details = append(details, Entry(i, fmt.Sprintf("mon-%d", i)))
	}
	return New(details...)
}

// Entry builds a detail fixture with one form named after the entry.
func Entry(id int, name string) pokeapi.Detail {
	return pokeapi.Detail{
		ID:      id,
		Name:    name,
		Forms:   []pokeapi.NamedResource{{Name: name}},
		Sprites: pokeapi.Sprites{FrontDefault: fmt.Sprintf("https://sprites.example/%d.png", id)},
	}
}

// Fail makes lookups of ident return err.
func (c *Catalog) Fail(ident string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures[ident] = err
}

// Calls returns the identifiers requested so far.
func (c *Catalog) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

// FetchSummary implements pokeapi.Catalog.
func (c *Catalog) FetchSummary(ctx context.Context, idOrName string) (pokeapi.Summary, error) {
	d, err := c.lookup(ctx, idOrName)
	if err != nil {
		return pokeapi.Summary{}, err
	}
	return pokeapi.Summary{ID: d.ID, Name: d.Name}, nil
}

// FetchDetail implements pokeapi.Catalog.
func (c *Catalog) FetchDetail(ctx context.Context, name string) (*pokeapi.Detail, error) {
	d, err := c.lookup(ctx, name)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Catalog) lookup(ctx context.Context, ident string) (pokeapi.Detail, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, ident)

	if err := ctx.Err(); err != nil {
		return pokeapi.Detail{}, err
	}
	if err, ok := c.failures[ident]; ok {
		return pokeapi.Detail{}, err
	}
	if d, ok := c.byName[ident]; ok {
		return d, nil
	}
	if id, err := strconv.Atoi(ident); err == nil {
		for _, d := range c.byName {
			if d.ID == id {
				return d, nil
			}
		}
	}
	return pokeapi.Detail{}, fmt.Errorf("pokemon %s: %w", ident, &pokeapi.StatusError{Code: 404})
}
