package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
	"github.com/gident-cli/gident/cmd/gident/tui"
	"github.com/gident-cli/gident/internal/commands"
	"github.com/gident-cli/gident/internal/switcher"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive profile menu",
	RunE:  runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	// Fall back to plain status when stdin is not a terminal.
	if !term.IsTerminal(os.Stdin.Fd()) {
		return statusCmd.RunE(cmd, args)
	}

	sw, err := buildSwitcher()
	if err != nil {
		return err
	}

	for {
		state := commands.DetectMenuState(sw)

		model := tui.NewMenuModel(state)
		model.Version = version
		finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		if err != nil {
			return err
		}

		menu := finalModel.(tui.MenuModel)
		if menu.Quitting || menu.Selected.Kind == tui.ActionNone {
			return nil
		}

		if err := runMenuAction(sw, menu.Selected); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			if hint := errorHint(err); hint != "" {
				fmt.Fprintln(os.Stderr, hint)
			}
		}
	}
}

// runMenuAction executes a menu choice between menu runs; the menu model
// itself never mutates anything.
func runMenuAction(sw *switcher.Switcher, action tui.Action) error {
	switch action.Kind {
	case tui.ActionSwitch:
		res, err := sw.Switch(action.Name, action.Scope)
		if err != nil {
			return err
		}
		fmt.Printf("Switched to profile %q (%s)\n", res.Profile.Name, res.Scope)
		return nil
	case tui.ActionDelete:
		var confirmed bool
		err := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete profile %q?", action.Name)).
				Description("The SSH config entry for this profile is removed too.").
				Value(&confirmed),
		)).Run()
		if err != nil {
			return fmt.Errorf("prompt cancelled: %w", err)
		}
		if !confirmed {
			return nil
		}
		if err := commands.Delete(sw.Store, sw.SSH, action.Name); err != nil {
			return err
		}
		fmt.Printf("Profile %q deleted.\n", action.Name)
		return nil
	}
	return nil
}
