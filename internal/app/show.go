package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/goccy/go-json"

	"github.com/five82/dexter/internal/config"
	"github.com/five82/dexter/internal/pokeapi"
	"github.com/five82/dexter/internal/roster"
)

// ShowOptions configure a one-shot lookup.
type ShowOptions struct {
	ConfigPath string
	JSON       bool
	Width      int // markdown wrap width; zero uses 80
}

// Show looks up one entry and writes it to w as rendered markdown or JSON.
func Show(ctx context.Context, w io.Writer, name string, opts ShowOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}
	return show(ctx, w, client, name, opts)
}

func show(ctx context.Context, w io.Writer, catalog pokeapi.Catalog, name string, opts ShowOptions) error {
	query, ok := roster.NormalizeQuery(name)
	if !ok {
		return fmt.Errorf("name required")
	}
	detail, err := catalog.FetchDetail(ctx, query)
	if err != nil {
		return err
	}

	if opts.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(detail)
	}

	width := opts.Width
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(detailMarkdown(detail))
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// detailMarkdown lays out the same fields an entry view shows.
func detailMarkdown(d *pokeapi.Detail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.Name)
	fmt.Fprintf(&b, "- **Number:** %d\n", d.ID)
	fmt.Fprintf(&b, "- **Number of forms:** %d\n", len(d.Forms))
	fmt.Fprintf(&b, "- **Forms:** %s\n", d.FormsSummary())
	if sprite := strings.TrimSpace(d.Sprites.FrontDefault); sprite != "" {
		fmt.Fprintf(&b, "- **Sprite:** <%s>\n", sprite)
	}
	return b.String()
}
