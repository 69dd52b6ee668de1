package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/gident-cli/gident/internal/commands"
	"github.com/gident-cli/gident/internal/store"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Edit a profile's fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		sw, err := buildSwitcher()
		if err != nil {
			return err
		}

		existing, ok, err := sw.Store.Get(name)
		if err != nil {
			return err
		}
		if !ok {
			return &store.NotFoundError{Name: name}
		}

		username := existing.Username
		email := existing.Email
		sshKey := existing.SSHKeyName

		err = huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Username").Value(&username),
			huh.NewInput().Title("Email").Value(&email),
			huh.NewInput().Title("SSH key name").Value(&sshKey),
		)).Run()
		if err != nil {
			return fmt.Errorf("prompt cancelled: %w", err)
		}

		updated := store.Profile{
			Username:   username,
			Email:      email,
			SSHKeyName: sshKey,
		}
		if err := commands.Edit(sw.Store, name, updated); err != nil {
			return err
		}

		fmt.Printf("Profile %q updated.\n", name)
		return nil
	},
}
