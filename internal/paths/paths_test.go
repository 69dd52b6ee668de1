package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/gident-cli/gident/internal/paths"
	"github.com/stretchr/testify/assert"
)

func TestPaths(t *testing.T) {
	assert.Equal(t, filepath.Join(paths.ConfigDir(), "profiles.json"), paths.ProfilesFile())
	assert.Equal(t, filepath.Join(paths.ConfigDir(), "config.yaml"), paths.ConfigFile())
	assert.Equal(t, filepath.Join(paths.SSHDir(), "config"), paths.SSHConfigFile())
	assert.True(t, filepath.IsAbs(paths.ConfigDir()))
}
