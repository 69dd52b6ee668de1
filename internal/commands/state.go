package commands

import (
	"github.com/gident-cli/gident/internal/store"
	"github.com/gident-cli/gident/internal/switcher"
)

// MenuState holds the detected state used to build the TUI menu.
type MenuState struct {
	Profiles   []store.Profile
	GlobalName string
	LocalName  string
	InRepo     bool
}

// DetectMenuState snapshots the current state for menu rendering. It never
// errors; anything it cannot determine is left empty.
func DetectMenuState(sw *switcher.Switcher) MenuState {
	var state MenuState

	if profiles, err := sw.Store.All(); err == nil {
		state.Profiles = profiles
	}

	state.InRepo = sw.Git.IsRepo()

	if status, err := sw.CurrentStatus(); err == nil {
		if status.Global != nil {
			state.GlobalName = status.Global.Name
		}
		if status.Local != nil {
			state.LocalName = status.Local.Name
		}
	}

	return state
}
