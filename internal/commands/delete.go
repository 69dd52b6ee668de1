package commands

import (
	"github.com/gident-cli/gident/internal/sshconf"
	"github.com/gident-cli/gident/internal/store"
)

// Delete removes the named profile from the store and then drops its SSH
// host block. The block removal is a no-op when the profile never had one.
func Delete(st *store.Store, ssh *sshconf.Manager, name string) error {
	if err := st.Delete(name); err != nil {
		return err
	}
	return ssh.Remove(name)
}
