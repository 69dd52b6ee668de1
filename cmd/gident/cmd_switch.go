package main

import (
	"fmt"

	"github.com/gident-cli/gident/internal/gitcfg"
	"github.com/spf13/cobra"
)

var switchGlobal bool

var switchCmd = &cobra.Command{
	Use:   "switch <name>",
	Short: "Switch to a profile",
	Long:  "Applies the profile's git identity and rewrites its SSH host block. Local scope by default; use --global to apply machine-wide.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scope := gitcfg.ScopeLocal
		if switchGlobal {
			scope = gitcfg.ScopeGlobal
		}

		sw, err := buildSwitcher()
		if err != nil {
			return err
		}

		res, err := sw.Switch(args[0], scope)
		if err != nil {
			return err
		}

		fmt.Printf("Switched to profile %q (%s)\n", res.Profile.Name, res.Scope)
		fmt.Printf("  Username: %s\n", res.Profile.Username)
		fmt.Printf("  Email:    %s\n", res.Profile.Email)
		fmt.Printf("  SSH key:  %s\n", res.KeyPath)
		fmt.Printf("  Host:     %s\n", sw.SSH.HostAlias(res.Profile.Name))
		return nil
	},
}

func init() {
	switchCmd.Flags().BoolVarP(&switchGlobal, "global", "g", false, "Apply globally instead of to the current repository")
}
