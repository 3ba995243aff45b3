package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/dexter/internal/app"
	"github.com/five82/dexter/internal/pokeapi"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "dexter: %v\n", err)
		return 1
	}
	return 0
}

type rootFlags struct {
	configPath string
	initial    int
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "dexter",
		Short:         "Browse the Pokemon catalog from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Start the interactive TUI with the first 20 entries
  dexter

  # Start with a smaller initial list
  dexter --initial 5

  # One-shot lookup
  dexter show pikachu
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), app.Options{
				ConfigPath:   flags.configPath,
				InitialCount: flags.initial,
			})
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default ~/.config/dexter/config.toml)")
	cmd.PersistentFlags().IntVar(&flags.initial, "initial", 0, "number of entries to load at startup (default 20)")

	cmd.AddCommand(newShowCmd(flags))
	return cmd
}

func newShowCmd(flags *rootFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print one entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Show(cmd.Context(), cmd.OutOrStdout(), args[0], app.ShowOptions{
				ConfigPath: flags.configPath,
				JSON:       asJSON,
			})
			if errors.Is(err, pokeapi.ErrNotFound) {
				return fmt.Errorf("pokemon %s not found", strings.TrimSpace(args[0]))
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON")
	return cmd
}
