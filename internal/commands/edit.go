package commands

import (
	"github.com/gident-cli/gident/internal/store"
)

// Edit validates the replacement fields and updates the named profile in
// place. The profile keeps its name; only username, email and key change.
func Edit(st *store.Store, name string, p store.Profile) error {
	p.Name = name
	if err := validateProfile(p); err != nil {
		return err
	}
	return st.Update(name, p)
}
