package main

import (
	"github.com/gident-cli/gident/internal/config"
	"github.com/gident-cli/gident/internal/gitcfg"
	"github.com/gident-cli/gident/internal/paths"
	"github.com/gident-cli/gident/internal/sshconf"
	"github.com/gident-cli/gident/internal/store"
	"github.com/gident-cli/gident/internal/switcher"
)

// buildSwitcher wires the core components from the user's config file.
func buildSwitcher() (*switcher.Switcher, error) {
	cfg, err := config.Load(paths.ConfigFile())
	if err != nil {
		return nil, err
	}
	return &switcher.Switcher{
		Store: store.New(cfg.ProfilesFile),
		Git:   &gitcfg.Git{},
		SSH:   sshconf.New(cfg.SSHConfig, cfg.SSHDir, cfg.BaseHost),
	}, nil
}
