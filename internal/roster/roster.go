package roster

import (
	"strings"

	"github.com/five82/dexter/internal/pokeapi"
)

// Collection is the ordered, duplicate-free list of tracked entries.
// Names are compared exactly. The zero value is an empty collection.
//
// Mutating methods never write into a slice a caller may still hold, so a
// Collection can be copied by value between bubbletea model generations.
type Collection struct {
	entries []pokeapi.Summary
}

// Replace sets the full contents, keeping the first occurrence of any
// repeated name.
func (c *Collection) Replace(entries []pokeapi.Summary) {
	next := make([]pokeapi.Summary, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.Name]; dup {
			continue
		}
		seen[e.Name] = struct{}{}
		next = append(next, e)
	}
	c.entries = next
}

// Insert prepends s unless an entry with the same name is already tracked.
// It reports whether the collection changed.
func (c *Collection) Insert(s pokeapi.Summary) bool {
	if c.Contains(s.Name) {
		return false
	}
	next := make([]pokeapi.Summary, 0, len(c.entries)+1)
	next = append(next, s)
	next = append(next, c.entries...)
	c.entries = next
	return true
}

// Remove drops the entry with the given name. Unknown names are a no-op.
func (c *Collection) Remove(name string) bool {
	idx := c.Index(name)
	if idx < 0 {
		return false
	}
	next := make([]pokeapi.Summary, 0, len(c.entries)-1)
	next = append(next, c.entries[:idx]...)
	next = append(next, c.entries[idx+1:]...)
	c.entries = next
	return true
}

// Index returns the position of name, or -1.
func (c Collection) Index(name string) int {
	for i, e := range c.entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// Contains reports whether name is tracked.
func (c Collection) Contains(name string) bool {
	return c.Index(name) >= 0
}

// Len returns the number of tracked entries.
func (c Collection) Len() int {
	return len(c.entries)
}

// At returns the entry at i. It panics when i is out of range.
func (c Collection) At(i int) pokeapi.Summary {
	return c.entries[i]
}

// Entries returns a copy of the tracked entries in display order.
func (c Collection) Entries() []pokeapi.Summary {
	if len(c.entries) == 0 {
		return nil
	}
	dup := make([]pokeapi.Summary, len(c.entries))
	copy(dup, c.entries)
	return dup
}

// Names returns the tracked names in display order.
func (c Collection) Names() []string {
	names := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		names = append(names, e.Name)
	}
	return names
}

// NormalizeQuery trims and lower-cases raw search input. The boolean is false
// for blank input, which must not reach the catalog.
func NormalizeQuery(raw string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(raw))
	return q, q != ""
}
