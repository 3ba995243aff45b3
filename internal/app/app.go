package app

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/dexter/internal/config"
	"github.com/five82/dexter/internal/pokeapi"
	"github.com/five82/dexter/internal/prefs"
	"github.com/five82/dexter/internal/ui"
)

// Options configure the dexter application.
type Options struct {
	ConfigPath   string
	PrefsPath    string // empty uses default ~/.config/dexter/prefs.toml
	InitialCount int    // zero uses the configured count
}

// Run boots the dexter TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	count := cfg.InitialCount
	if opts.InitialCount > 0 {
		count = opts.InitialCount
	}

	log.Printf("starting: catalog=%s initial=%d", client.BaseURL(), count)

	return ui.Run(ui.Options{
		Context:      ctx,
		Catalog:      client,
		CatalogHost:  hostOf(client.BaseURL()),
		InitialCount: count,
		LogPath:      cfg.LogFile,
		PrefsPath:    prefsPath,
		Prefs:        userPrefs,
	})
}

// openLog routes the standard logger to path; the TUI owns stdout.
func openLog(path string) (func(), error) {
	if path == "" {
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "dexter ")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

func newClient(cfg config.Config) (*pokeapi.Client, error) {
	client, err := pokeapi.NewClient(cfg.BaseURL, cfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("init catalog client: %w", err)
	}
	return client, nil
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.Host
}
