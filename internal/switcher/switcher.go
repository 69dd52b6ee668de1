// Package switcher sequences a profile switch across the store, git
// config and the SSH host file. The steps are ordered so that the cheap
// existence checks run before the externally visible git config write,
// which runs before the SSH file rewrite. There is no rollback: a failure
// after the git step leaves git config applied and the SSH file untouched.
package switcher

import (
	"fmt"

	"github.com/gident-cli/gident/internal/gitcfg"
	"github.com/gident-cli/gident/internal/sshconf"
	"github.com/gident-cli/gident/internal/store"
)

// KeyNotFoundError is returned by Switch when the profile's SSH key file
// does not exist. Path is the resolved location that was checked.
type KeyNotFoundError struct {
	Path string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("ssh key not found: %s", e.Path)
}

// Switcher wires the store, the git config adapter and the SSH host file
// manager into one switch operation.
type Switcher struct {
	Store *store.Store
	Git   *gitcfg.Git
	SSH   *sshconf.Manager
}

// SwitchResult reports what a successful switch applied.
type SwitchResult struct {
	Profile store.Profile
	Scope   gitcfg.Scope
	KeyPath string
}

// Status is the per-scope resolution of the current git identity back to
// stored profiles. A scope is nil when no identity is set there, when the
// identity matches no profile, or (local only) outside a repository.
type Status struct {
	Global *store.Profile
	Local  *store.Profile
}

// Switch looks up the named profile, verifies its SSH key exists, applies
// the git identity for the scope, then upserts the SSH host block.
func (s *Switcher) Switch(name string, scope gitcfg.Scope) (*SwitchResult, error) {
	p, ok, err := s.Store.Get(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &store.NotFoundError{Name: name}
	}

	keyPath := s.SSH.KeyPath(p.SSHKeyName)
	if !s.SSH.KeyExists(p.SSHKeyName) {
		return nil, &KeyNotFoundError{Path: keyPath}
	}

	if err := s.Git.Apply(p.Username, p.Email, scope); err != nil {
		return nil, err
	}

	if err := s.SSH.Upsert(p.Name, p.SSHKeyName); err != nil {
		// Git config is already applied at this point; the caller is
		// expected to report the partial state.
		return nil, err
	}

	return &SwitchResult{Profile: p, Scope: scope, KeyPath: keyPath}, nil
}

// CurrentStatus resolves the global and local git identities against the
// stored profiles. Matching is exact on (username, email); the first
// stored profile wins.
func (s *Switcher) CurrentStatus() (*Status, error) {
	profiles, err := s.Store.All()
	if err != nil {
		return nil, err
	}

	status := &Status{}

	ident, ok, err := s.Git.Identity(gitcfg.ScopeGlobal)
	if err != nil {
		return nil, err
	}
	if ok {
		status.Global = matchProfile(profiles, ident)
	}

	if s.Git.IsRepo() {
		ident, ok, err := s.Git.Identity(gitcfg.ScopeLocal)
		if err != nil {
			return nil, err
		}
		if ok {
			status.Local = matchProfile(profiles, ident)
		}
	}

	return status, nil
}

// matchProfile returns the first profile whose username and email equal
// the identity, or nil.
func matchProfile(profiles []store.Profile, ident gitcfg.Identity) *store.Profile {
	for i := range profiles {
		if profiles[i].Username == ident.Username && profiles[i].Email == ident.Email {
			p := profiles[i]
			return &p
		}
	}
	return nil
}
