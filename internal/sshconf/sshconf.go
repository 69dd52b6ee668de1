// Package sshconf maintains per-profile host aliases in an OpenSSH config
// file. Each profile owns one block, identified by a marker comment:
//
//	# Profile: work
//	Host github.com-work
//	  HostName github.com
//	  User git
//	  IdentityFile /home/u/.ssh/id_rsa_work
//	  IdentitiesOnly yes
//
// Blocks are rewritten with a line-oriented scan rather than a config
// parser, so unrelated entries are preserved byte for byte. Boundary
// detection is purely syntactic (indentation, leading '#', leading
// "Host "); a tracked block whose properties were hand-edited to be
// unindented is truncated at the first such line.
package sshconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Manager rewrites the host config file at Path. Keys are resolved under
// KeyDir; host aliases are derived from BaseHost.
type Manager struct {
	Path     string
	KeyDir   string
	BaseHost string
}

// New returns a manager for the config file at path.
func New(path, keyDir, baseHost string) *Manager {
	return &Manager{Path: path, KeyDir: keyDir, BaseHost: baseHost}
}

// Marker returns the comment line that identifies a profile's block.
func (m *Manager) Marker(name string) string {
	return "# Profile: " + name
}

// HostAlias returns the Host alias for a profile name.
func (m *Manager) HostAlias(name string) string {
	return m.BaseHost + "-" + name
}

// KeyPath returns the resolved path of a key file name under KeyDir. It
// does not check existence.
func (m *Manager) KeyPath(keyName string) string {
	return filepath.Join(m.KeyDir, keyName)
}

// KeyExists reports whether the key file exists under KeyDir.
func (m *Manager) KeyExists(keyName string) bool {
	_, err := os.Stat(m.KeyPath(keyName))
	return err == nil
}

// EnsureExists creates the parent directory and an empty config file if
// missing.
func (m *Manager) EnsureExists() error {
	if dir := filepath.Dir(m.Path); dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("creating ssh directory: %w", err)
		}
	}
	if _, err := os.Stat(m.Path); os.IsNotExist(err) {
		if err := os.WriteFile(m.Path, nil, 0600); err != nil {
			return fmt.Errorf("creating ssh config: %w", err)
		}
	}
	return nil
}

// BackupPath returns the sibling path backups are written to.
func (m *Manager) BackupPath() string {
	return m.Path + ".bak"
}

// Backup copies the config file to its backup path, overwriting any
// previous backup. No-op if the file does not exist.
func (m *Manager) Backup() error {
	data, err := os.ReadFile(m.Path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading ssh config for backup: %w", err)
	}
	if err := os.WriteFile(m.BackupPath(), data, 0600); err != nil {
		return fmt.Errorf("backing up ssh config: %w", err)
	}
	return nil
}

// render produces the full block for a profile, trailing newline included.
func (m *Manager) render(name, keyName string) string {
	var b strings.Builder
	b.WriteString(m.Marker(name))
	b.WriteString("\nHost ")
	b.WriteString(m.HostAlias(name))
	b.WriteString("\n  HostName ")
	b.WriteString(m.BaseHost)
	b.WriteString("\n  User git\n  IdentityFile ")
	b.WriteString(m.KeyPath(keyName))
	b.WriteString("\n  IdentitiesOnly yes\n")
	return b.String()
}

// Upsert writes the block for the profile, replacing any previous block
// with the same name and appending at the end of the file. Unrelated
// lines keep their original order. Calling Upsert twice with the same
// profile data reproduces the same file contents.
func (m *Manager) Upsert(name, keyName string) error {
	if err := m.EnsureExists(); err != nil {
		return err
	}
	if err := m.Backup(); err != nil {
		return err
	}

	data, err := os.ReadFile(m.Path)
	if err != nil {
		return fmt.Errorf("reading ssh config: %w", err)
	}

	content := stripBlock(string(data), m.Marker(name))
	if content != "" && !strings.HasSuffix(content, "\n\n") {
		content += "\n"
	}
	content += m.render(name, keyName)

	if err := os.WriteFile(m.Path, []byte(content), 0600); err != nil {
		return fmt.Errorf("writing ssh config: %w", err)
	}
	return nil
}

// Remove deletes the block for the named profile. No-op if the file or
// the marker is absent.
func (m *Manager) Remove(name string) error {
	data, err := os.ReadFile(m.Path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading ssh config: %w", err)
	}

	if err := m.Backup(); err != nil {
		return err
	}

	content := stripBlock(string(data), m.Marker(name))
	if err := os.WriteFile(m.Path, []byte(content), 0600); err != nil {
		return fmt.Errorf("writing ssh config: %w", err)
	}
	return nil
}

// scanState tracks position relative to the marked block during a rewrite.
type scanState int

const (
	// stateOutside: copying unrelated lines through untouched.
	stateOutside scanState = iota
	// stateSeekHost: marker consumed, discarding up to the Host line.
	stateSeekHost
	// stateStanza: inside the Host stanza, discarding indented and blank
	// continuation lines.
	stateStanza
)

// stripBlock removes the block introduced by the marker line, leaving all
// other lines intact. The block ends at the next comment line, the next
// Host line, or any non-indented non-blank line.
func stripBlock(content, marker string) string {
	if content == "" {
		return ""
	}

	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		// Drop the empty element produced by a trailing newline; every
		// kept line is written back with its own newline.
		lines = lines[:len(lines)-1]
	}

	var b strings.Builder
	state := stateOutside

	for i := 0; i < len(lines); {
		line := lines[i]
		switch state {
		case stateOutside:
			if line == marker {
				state = stateSeekHost
				i++
				continue
			}
			b.WriteString(line)
			b.WriteByte('\n')
			i++

		case stateSeekHost:
			switch {
			case strings.HasPrefix(line, "Host "):
				state = stateStanza
				i++
			case strings.TrimSpace(line) == "":
				i++
			default:
				// Comment or unrelated content: the block had no stanza.
				// Reprocess this line as outside content.
				state = stateOutside
			}

		case stateStanza:
			if strings.HasPrefix(line, "  ") || strings.TrimSpace(line) == "" {
				i++
				continue
			}
			// Next comment, next Host line, or other content ends the
			// stanza; reprocess it as outside content.
			state = stateOutside
		}
	}

	return b.String()
}
