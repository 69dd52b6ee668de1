// Package config loads the optional ~/.gident/config.yaml overrides.
package config

import (
	"fmt"
	"os"

	"github.com/gident-cli/gident/internal/paths"
	"go.yaml.in/yaml/v3"
)

// DefaultBaseHost is the host aliased by SSH blocks unless overridden.
const DefaultBaseHost = "github.com"

// Config represents ~/.gident/config.yaml. Every field is optional;
// missing fields fall back to defaults.
type Config struct {
	// BaseHost is the remote host used in SSH host aliases.
	BaseHost string `yaml:"base_host,omitempty"`
	// SSHDir is the directory SSH keys are resolved under.
	SSHDir string `yaml:"ssh_dir,omitempty"`
	// SSHConfig is the SSH config file rewritten on switch.
	SSHConfig string `yaml:"ssh_config,omitempty"`
	// ProfilesFile is the JSON profile store location.
	ProfilesFile string `yaml:"profiles_file,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		BaseHost:     DefaultBaseHost,
		SSHDir:       paths.SSHDir(),
		SSHConfig:    paths.SSHConfigFile(),
		ProfilesFile: paths.ProfilesFile(),
	}
}

// Parse parses config.yaml bytes and fills unset fields with defaults.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return withDefaults(cfg), nil
}

// Load reads the config file at path. A missing file yields defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

func withDefaults(cfg Config) Config {
	def := Default()
	if cfg.BaseHost == "" {
		cfg.BaseHost = def.BaseHost
	}
	if cfg.SSHDir == "" {
		cfg.SSHDir = def.SSHDir
	}
	if cfg.SSHConfig == "" {
		cfg.SSHConfig = def.SSHConfig
	}
	if cfg.ProfilesFile == "" {
		cfg.ProfilesFile = def.ProfilesFile
	}
	return cfg
}
