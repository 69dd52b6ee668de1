package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/gident-cli/gident/internal/commands"
	"github.com/gident-cli/gident/internal/store"
	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a profile and its SSH host block",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		sw, err := buildSwitcher()
		if err != nil {
			return err
		}

		ok, err := sw.Store.Exists(name)
		if err != nil {
			return err
		}
		if !ok {
			return &store.NotFoundError{Name: name}
		}

		if !deleteYes {
			var confirmed bool
			err := huh.NewForm(huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Delete profile %q?", name)).
					Value(&confirmed),
			)).Run()
			if err != nil {
				return fmt.Errorf("prompt cancelled: %w", err)
			}
			if !confirmed {
				fmt.Println("Deletion cancelled.")
				return nil
			}
		}

		if err := commands.Delete(sw.Store, sw.SSH, name); err != nil {
			return err
		}
		fmt.Printf("Profile %q deleted.\n", name)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
