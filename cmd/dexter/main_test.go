package main

import (
	"io"
	"testing"
)

func TestRootCmd_PersistentFlags(t *testing.T) {
	t.Parallel()

	cmd := newRootCmd()
	for _, name := range []string{"config", "initial"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Fatalf("missing persistent flag --%s", name)
		}
	}
	if got := cmd.PersistentFlags().Lookup("initial").DefValue; got != "0" {
		t.Fatalf("--initial default = %q, want 0", got)
	}
}

func TestShowCmd_RequiresName(t *testing.T) {
	t.Parallel()

	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"show"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for show without a name")
	}
}

func TestShowCmd_HasJSONFlag(t *testing.T) {
	t.Parallel()

	show, _, err := newRootCmd().Find([]string{"show"})
	if err != nil {
		t.Fatalf("Find(show) returned error: %v", err)
	}
	if show.Flags().Lookup("json") == nil {
		t.Fatal("show is missing --json")
	}
}

func TestRootCmd_RejectsPositionalArgs(t *testing.T) {
	t.Parallel()

	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"pikachu"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for unknown positional argument")
	}
}
