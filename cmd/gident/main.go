package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gident-cli/gident/internal/commands"
	"github.com/gident-cli/gident/internal/gitcfg"
	"github.com/gident-cli/gident/internal/store"
	"github.com/gident-cli/gident/internal/switcher"
	"github.com/spf13/cobra"
)

var version = "0.3.1"

var rootCmd = &cobra.Command{
	Use:   "gident",
	Short: "Switch git identity profiles",
	Long:  "gident manages named username/email/SSH-key profiles and switches which one is active for git, globally or per repository.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show status
		return statusCmd.RunE(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gident %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(switchCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(menuCmd)
}

func main() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := errorHint(err); hint != "" {
			fmt.Fprintf(os.Stderr, "\n%s\n", hint)
		}
		os.Exit(1)
	}
}

// errorHint maps core errors to an actionable suggestion. Returns "" when
// there is nothing useful to add.
func errorHint(err error) string {
	var notFound *store.NotFoundError
	if errors.As(err, &notFound) {
		return fmt.Sprintf("Run 'gident list' to see available profiles, or create it:\n  gident add %s --username <user> --email <email> --ssh-key <key>", notFound.Name)
	}

	var exists *store.ExistsError
	if errors.As(err, &exists) {
		return fmt.Sprintf("Use 'gident edit %s' to modify it, or pick a different name.", exists.Name)
	}

	var keyErr *switcher.KeyNotFoundError
	if errors.As(err, &keyErr) {
		return fmt.Sprintf("Generate the key first:\n  ssh-keygen -t ed25519 -f %s\nor point the profile at an existing key with 'gident edit'.", keyErr.Path)
	}

	var invalid *commands.InvalidInputError
	if errors.As(err, &invalid) {
		return "Use 'gident <command> --help' for the expected formats."
	}

	switch {
	case errors.Is(err, gitcfg.ErrNotRepository):
		return "Use --global to set the profile machine-wide, or run this inside a git repository."
	case errors.Is(err, gitcfg.ErrNotInstalled):
		return "Install git from https://git-scm.com/downloads and restart your terminal."
	case errors.Is(err, store.ErrCorrupted):
		return "The profiles file could not be parsed. Fix the JSON by hand or delete it to start fresh."
	}
	return ""
}
