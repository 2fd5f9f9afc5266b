package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fieldworks/farmgate/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDir(t *testing.T) {
	t.Run("env_override_wins", func(t *testing.T) {
		t.Setenv(paths.EnvConfigDir, "/tmp/farmgate-conf")
		assert.Equal(t, "/tmp/farmgate-conf", paths.ConfigDir())
	})

	t.Run("defaults_under_xdg_config_home", func(t *testing.T) {
		t.Setenv(paths.EnvConfigDir, "")
		assert.Equal(t, paths.AppDirName, filepath.Base(paths.ConfigDir()))
	})
}

func TestStateDir(t *testing.T) {
	t.Setenv(paths.EnvStateDir, "/tmp/farmgate-state")
	assert.Equal(t, "/tmp/farmgate-state", paths.StateDir())
	assert.Equal(t, filepath.Join("/tmp/farmgate-state", paths.LogFileName), paths.LogFile())
}

func TestConfigFileCandidates(t *testing.T) {
	t.Run("explicit_file_bypasses_search", func(t *testing.T) {
		t.Setenv(paths.EnvConfigFile, "/etc/farmgate/custom.toml")
		assert.Equal(t, []string{"/etc/farmgate/custom.toml"}, paths.ConfigFileCandidates())
	})

	t.Run("working_directory_before_config_dir", func(t *testing.T) {
		t.Setenv(paths.EnvConfigFile, "")
		t.Setenv(paths.EnvConfigDir, "/tmp/farmgate-conf")

		candidates := paths.ConfigFileCandidates()
		require.Len(t, candidates, 6)
		assert.Equal(t, paths.ConfigFileName, candidates[0])
		assert.Equal(t, filepath.Join("/tmp/farmgate-conf", paths.ConfigFileName), candidates[3])
	})
}

func TestFindConfigFile(t *testing.T) {
	t.Run("finds_explicit_file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "custom.toml")
		require.NoError(t, os.WriteFile(path, []byte("[profile]\n"), 0644))

		t.Setenv(paths.EnvConfigFile, path)
		assert.Equal(t, path, paths.FindConfigFile())
	})

	t.Run("empty_when_nothing_exists", func(t *testing.T) {
		t.Setenv(paths.EnvConfigFile, "")
		t.Setenv(paths.EnvConfigDir, t.TempDir())

		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(t.TempDir()))
		defer func() { _ = os.Chdir(wd) }()

		assert.Equal(t, "", paths.FindConfigFile())
	})
}
