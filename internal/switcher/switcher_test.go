package switcher_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/gident-cli/gident/internal/gitcfg"
	"github.com/gident-cli/gident/internal/sshconf"
	"github.com/gident-cli/gident/internal/store"
	"github.com/gident-cli/gident/internal/switcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnv builds a fully isolated switcher: temp store, temp SSH dir, and
// git pinned to workDir with a throwaway global config file.
func testEnv(t *testing.T, workDir string) (*switcher.Switcher, *sshconf.Manager) {
	t.Helper()
	sshDir := t.TempDir()
	ssh := sshconf.New(filepath.Join(sshDir, "config"), sshDir, "github.com")
	sw := &switcher.Switcher{
		Store: store.New(filepath.Join(t.TempDir(), "profiles.json")),
		Git: &gitcfg.Git{
			Dir: workDir,
			Env: []string{
				"GIT_CONFIG_GLOBAL=" + filepath.Join(t.TempDir(), "gitconfig"),
				"GIT_CONFIG_SYSTEM=" + os.DevNull,
			},
		},
		SSH: ssh,
	}
	return sw, ssh
}

func initTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cmd := exec.Command("git", "init")
	cmd.Dir = dir
	require.NoError(t, cmd.Run())
	return dir
}

func workProfile() store.Profile {
	return store.Profile{
		Name:       "work",
		Username:   "jdoe",
		Email:      "j@co.com",
		SSHKeyName: "id_rsa_work",
	}
}

func writeKey(t *testing.T, ssh *sshconf.Manager, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(ssh.KeyPath(name), []byte("key"), 0600))
}

func TestSwitchUnknownProfile(t *testing.T) {
	sw, _ := testEnv(t, t.TempDir())

	_, err := sw.Switch("ghost", gitcfg.ScopeGlobal)
	var notFound *store.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "ghost", notFound.Name)
}

func TestSwitchMissingKeyFailsBeforeAnyMutation(t *testing.T) {
	repo := initTestRepo(t)
	sw, ssh := testEnv(t, repo)
	require.NoError(t, sw.Store.Create(workProfile()))

	_, err := sw.Switch("work", gitcfg.ScopeGlobal)
	var keyErr *switcher.KeyNotFoundError
	require.ErrorAs(t, err, &keyErr)
	assert.Equal(t, ssh.KeyPath("id_rsa_work"), keyErr.Path)

	// Neither git config nor the SSH file was touched.
	_, ok, gerr := sw.Git.Identity(gitcfg.ScopeGlobal)
	require.NoError(t, gerr)
	assert.False(t, ok)
	_, serr := os.Stat(ssh.Path)
	assert.True(t, os.IsNotExist(serr))
}

func TestSwitchLocalOutsideRepoLeavesSSHUntouched(t *testing.T) {
	sw, ssh := testEnv(t, t.TempDir())
	require.NoError(t, sw.Store.Create(workProfile()))
	writeKey(t, ssh, "id_rsa_work")

	_, err := sw.Switch("work", gitcfg.ScopeLocal)
	assert.ErrorIs(t, err, gitcfg.ErrNotRepository)

	_, serr := os.Stat(ssh.Path)
	assert.True(t, os.IsNotExist(serr))
}

func TestSwitchGlobal(t *testing.T) {
	sw, ssh := testEnv(t, t.TempDir())
	require.NoError(t, sw.Store.Create(workProfile()))
	writeKey(t, ssh, "id_rsa_work")

	res, err := sw.Switch("work", gitcfg.ScopeGlobal)
	require.NoError(t, err)
	assert.Equal(t, "work", res.Profile.Name)
	assert.Equal(t, gitcfg.ScopeGlobal, res.Scope)
	assert.Equal(t, ssh.KeyPath("id_rsa_work"), res.KeyPath)

	ident, ok, err := sw.Git.Identity(gitcfg.ScopeGlobal)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "jdoe", ident.Username)
	assert.Equal(t, "j@co.com", ident.Email)

	data, err := os.ReadFile(ssh.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Profile: work")
	assert.Contains(t, string(data), "Host github.com-work")
}

func TestSwitchLocalInRepo(t *testing.T) {
	repo := initTestRepo(t)
	sw, ssh := testEnv(t, repo)
	require.NoError(t, sw.Store.Create(workProfile()))
	writeKey(t, ssh, "id_rsa_work")

	_, err := sw.Switch("work", gitcfg.ScopeLocal)
	require.NoError(t, err)

	ident, ok, err := sw.Git.Identity(gitcfg.ScopeLocal)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "jdoe", ident.Username)
}

func TestCurrentStatus(t *testing.T) {
	t.Run("nothing configured", func(t *testing.T) {
		sw, _ := testEnv(t, t.TempDir())

		status, err := sw.CurrentStatus()
		require.NoError(t, err)
		assert.Nil(t, status.Global)
		assert.Nil(t, status.Local)
	})

	t.Run("global identity matches a profile", func(t *testing.T) {
		sw, ssh := testEnv(t, t.TempDir())
		require.NoError(t, sw.Store.Create(workProfile()))
		writeKey(t, ssh, "id_rsa_work")

		_, err := sw.Switch("work", gitcfg.ScopeGlobal)
		require.NoError(t, err)

		status, err := sw.CurrentStatus()
		require.NoError(t, err)
		require.NotNil(t, status.Global)
		assert.Equal(t, "work", status.Global.Name)
		assert.Nil(t, status.Local)
	})

	t.Run("identity with no matching profile", func(t *testing.T) {
		sw, _ := testEnv(t, t.TempDir())
		require.NoError(t, sw.Git.Apply("stranger", "x@y.com", gitcfg.ScopeGlobal))

		status, err := sw.CurrentStatus()
		require.NoError(t, err)
		assert.Nil(t, status.Global)
	})

	t.Run("local identity in a repo", func(t *testing.T) {
		repo := initTestRepo(t)
		sw, ssh := testEnv(t, repo)
		require.NoError(t, sw.Store.Create(workProfile()))
		writeKey(t, ssh, "id_rsa_work")

		_, err := sw.Switch("work", gitcfg.ScopeLocal)
		require.NoError(t, err)

		status, err := sw.CurrentStatus()
		require.NoError(t, err)
		require.NotNil(t, status.Local)
		assert.Equal(t, "work", status.Local.Name)
	})

	t.Run("first stored match wins", func(t *testing.T) {
		sw, ssh := testEnv(t, t.TempDir())
		first := workProfile()
		// Same identity under two profile names.
		second := workProfile()
		second.Name = "work-copy"
		require.NoError(t, sw.Store.Create(first))
		require.NoError(t, sw.Store.Create(second))
		writeKey(t, ssh, "id_rsa_work")

		_, err := sw.Switch("work-copy", gitcfg.ScopeGlobal)
		require.NoError(t, err)

		status, err := sw.CurrentStatus()
		require.NoError(t, err)
		require.NotNil(t, status.Global)
		assert.Equal(t, "work", status.Global.Name)
	})
}
