// Package gitcfg wraps the git executable for scoped config reads and
// writes. Invocations block until the subprocess exits; no timeout is
// enforced.
package gitcfg

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Scope selects where a config change applies.
type Scope int

const (
	// ScopeGlobal applies machine-wide (~/.gitconfig).
	ScopeGlobal Scope = iota
	// ScopeLocal applies to the repository in the working directory.
	ScopeLocal
)

// Flag returns the git config flag for the scope.
func (s Scope) Flag() string {
	if s == ScopeLocal {
		return "--local"
	}
	return "--global"
}

func (s Scope) String() string {
	if s == ScopeLocal {
		return "local"
	}
	return "global"
}

// ErrNotInstalled is returned when the git executable cannot be found.
var ErrNotInstalled = errors.New("git is not installed")

// ErrNotRepository is returned by Apply when a local-scope change is
// requested outside a git repository.
var ErrNotRepository = errors.New("not a git repository")

// CommandError is returned when git exits non-zero. Stderr carries the
// trimmed diagnostic output.
type CommandError struct {
	Args   []string
	Stderr string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("git %s: %s", strings.Join(e.Args, " "), e.Stderr)
}

// Identity is the (username, email) pair configured for a scope.
type Identity struct {
	Username string
	Email    string
}

// Git invokes the git executable. Dir is the working directory ("" means
// the process working directory); Env entries are appended to the
// subprocess environment, which lets tests pin GIT_CONFIG_GLOBAL.
type Git struct {
	Dir string
	Env []string
}

// run executes git with the given arguments and returns trimmed stdout.
func (g *Git) run(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = g.Dir
	if len(g.Env) > 0 {
		cmd.Env = append(os.Environ(), g.Env...)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", ErrNotInstalled
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &CommandError{Args: args, Stderr: strings.TrimSpace(stderr.String())}
		}
		return "", fmt.Errorf("running git: %w", err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Installed reports whether the git executable is available.
func (g *Git) Installed() bool {
	_, err := g.run("--version")
	return err == nil
}

// Version returns the installed git version string.
func (g *Git) Version() (string, error) {
	return g.run("--version")
}

// Set writes a config key for the given scope.
func (g *Git) Set(scope Scope, key, value string) error {
	_, err := g.run("config", scope.Flag(), key, value)
	return err
}

// Get reads a config key for the given scope. A git failure on lookup
// (typically "key not set") maps to ok=false; other errors propagate.
func (g *Git) Get(scope Scope, key string) (string, bool, error) {
	value, err := g.run("config", scope.Flag(), key)
	if err != nil {
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// IsRepo reports whether the working directory contains a repository
// marker.
func (g *Git) IsRepo() bool {
	dir := g.Dir
	if dir == "" {
		dir = "."
	}
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// Identity returns the configured (user.name, user.email) pair for the
// scope. ok is true only when both keys are set.
func (g *Git) Identity(scope Scope) (Identity, bool, error) {
	username, hasName, err := g.Get(scope, "user.name")
	if err != nil {
		return Identity{}, false, err
	}
	email, hasEmail, err := g.Get(scope, "user.email")
	if err != nil {
		return Identity{}, false, err
	}
	if !hasName || !hasEmail {
		return Identity{}, false, nil
	}
	return Identity{Username: username, Email: email}, true, nil
}

// Apply sets user.name and user.email for the scope. Local scope requires
// a repository. The two writes are not transactional: if the second
// fails the first is not rolled back.
func (g *Git) Apply(username, email string, scope Scope) error {
	if scope == ScopeLocal && !g.IsRepo() {
		return ErrNotRepository
	}
	if err := g.Set(scope, "user.name", username); err != nil {
		return err
	}
	return g.Set(scope, "user.email", email)
}
