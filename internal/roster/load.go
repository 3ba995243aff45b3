package roster

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/five82/dexter/internal/pokeapi"
)

// DefaultInitialCount is the number of ids fetched when a roster starts.
const DefaultInitialCount = 20

// LoadInitial fetches ids 1..count concurrently and returns the summaries in
// id order. Every failed fetch is logged. The batch is all-or-nothing: the
// first failure cancels the rest and LoadInitial returns an error with no
// partial results.
func LoadInitial(ctx context.Context, catalog pokeapi.Catalog, count int) ([]pokeapi.Summary, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog is nil")
	}
	if count <= 0 {
		count = DefaultInitialCount
	}

	results := make([]pokeapi.Summary, count)
	g, gctx := errgroup.WithContext(ctx)
	for i := range count {
		id := strconv.Itoa(i + 1)
		g.Go(func() error {
			summary, err := catalog.FetchSummary(gctx, id)
			if err != nil {
				log.Printf("initial load: id %s failed: %v", id, err)
				return fmt.Errorf("load id %s: %w", id, err)
			}
			results[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
