package cmd

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestApplyEnvFallbacks(t *testing.T) {
	t.Cleanup(func() {
		flagDB = ""
		flagBackend = ""
		rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	})

	t.Setenv("REPOCAT_BACKEND", "bolt")
	t.Setenv("REPOCAT_DB", "/env/repos.db")

	// A flag set on the command line wins over its environment variable
	if err := rootCmd.PersistentFlags().Set("db", "/flag/repos.db"); err != nil {
		t.Fatalf("failed to set db flag: %v", err)
	}

	applyEnvFallbacks(rootCmd)

	if flagBackend != "bolt" {
		t.Errorf("flagBackend = %q, want %q", flagBackend, "bolt")
	}

	if flagDB != "/flag/repos.db" {
		t.Errorf("flagDB = %q, want %q", flagDB, "/flag/repos.db")
	}
}
