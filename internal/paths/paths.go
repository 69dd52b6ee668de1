package paths

import (
	"os"
	"path/filepath"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// ConfigDir returns ~/.gident.
func ConfigDir() string {
	return filepath.Join(home(), ".gident")
}

// ProfilesFile returns ~/.gident/profiles.json.
func ProfilesFile() string {
	return filepath.Join(ConfigDir(), "profiles.json")
}

// ConfigFile returns ~/.gident/config.yaml.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// SSHDir returns ~/.ssh.
func SSHDir() string {
	return filepath.Join(home(), ".ssh")
}

// SSHConfigFile returns ~/.ssh/config.
func SSHConfigFile() string {
	return filepath.Join(SSHDir(), "config")
}
