package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/gident-cli/gident/internal/commands"
	"github.com/gident-cli/gident/internal/store"
	"github.com/spf13/cobra"
)

var (
	addUsername string
	addEmail    string
	addSSHKey   string
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		username, email, sshKey := addUsername, addEmail, addSSHKey
		if username == "" || email == "" || sshKey == "" {
			if err := promptProfileFields(&username, &email, &sshKey); err != nil {
				return err
			}
		}

		sw, err := buildSwitcher()
		if err != nil {
			return err
		}

		p := store.Profile{
			Name:       name,
			Username:   username,
			Email:      email,
			SSHKeyName: sshKey,
		}
		if err := commands.Add(sw.Store, p); err != nil {
			return err
		}

		fmt.Printf("Profile %q created.\n", name)
		if !sw.SSH.KeyExists(sshKey) {
			fmt.Printf("Note: %s does not exist yet; 'gident switch %s' will fail until it does.\n",
				sw.SSH.KeyPath(sshKey), name)
		}
		return nil
	},
}

// promptProfileFields asks for any field not supplied as a flag.
func promptProfileFields(username, email, sshKey *string) error {
	var fields []huh.Field
	if *username == "" {
		fields = append(fields, huh.NewInput().Title("Username").Value(username))
	}
	if *email == "" {
		fields = append(fields, huh.NewInput().Title("Email").Value(email))
	}
	if *sshKey == "" {
		fields = append(fields, huh.NewInput().
			Title("SSH key name").
			Description("File name under your SSH directory, e.g. id_ed25519_work").
			Value(sshKey))
	}
	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return fmt.Errorf("prompt cancelled: %w", err)
	}
	return nil
}

func init() {
	addCmd.Flags().StringVarP(&addUsername, "username", "u", "", "Account username")
	addCmd.Flags().StringVarP(&addEmail, "email", "e", "", "Commit email address")
	addCmd.Flags().StringVarP(&addSSHKey, "ssh-key", "k", "", "SSH key file name (e.g. id_rsa_personal)")
}
