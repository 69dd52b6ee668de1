package main

import (
	"fmt"

	"github.com/gident-cli/gident/internal/store"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which profile is active per scope",
	RunE: func(cmd *cobra.Command, args []string) error {
		sw, err := buildSwitcher()
		if err != nil {
			return err
		}

		status, err := sw.CurrentStatus()
		if err != nil {
			return err
		}

		fmt.Println("Global:")
		printScope(status.Global)

		fmt.Println("Local:")
		if !sw.Git.IsRepo() {
			fmt.Println("  (not inside a git repository)")
			return nil
		}
		printScope(status.Local)
		return nil
	},
}

func printScope(p *store.Profile) {
	if p == nil {
		fmt.Println("  (no matching profile)")
		return
	}
	fmt.Printf("  Profile:  %s\n", p.Name)
	fmt.Printf("  Username: %s\n", p.Username)
	fmt.Printf("  Email:    %s\n", p.Email)
	fmt.Printf("  SSH key:  %s\n", p.SSHKeyName)
}
