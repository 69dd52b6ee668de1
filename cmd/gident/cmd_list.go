package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		sw, err := buildSwitcher()
		if err != nil {
			return err
		}

		profiles, err := sw.Store.All()
		if err != nil {
			return err
		}

		if len(profiles) == 0 {
			fmt.Println("No profiles configured.")
			fmt.Println("\nCreate one with: gident add <name> --username <user> --email <email> --ssh-key <key>")
			return nil
		}

		status, err := sw.CurrentStatus()
		if err != nil {
			return err
		}
		active := map[string]string{}
		if status.Global != nil {
			active[status.Global.Name] = "global"
		}
		if status.Local != nil {
			// Local wins the annotation when both point at the same profile.
			active[status.Local.Name] = "local"
		}

		for _, p := range profiles {
			if scope, ok := active[p.Name]; ok {
				fmt.Printf("* %s (%s)\n", p.Name, scope)
			} else {
				fmt.Printf("  %s\n", p.Name)
			}
			fmt.Printf("    Username: %s\n", p.Username)
			fmt.Printf("    Email:    %s\n", p.Email)
			fmt.Printf("    SSH key:  %s\n", p.SSHKeyName)
		}
		return nil
	},
}
