package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldworks/farmgate/pkg/paths"
)

// executeCmd runs the farmgate command tree with the given args and returns
// captured stdout.
func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

// isolateConfig keeps ambient config files and FARMGATE_* variables out of
// the test environment.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv(paths.EnvConfigFile, "")
	os.Unsetenv(paths.EnvConfigFile)
	t.Setenv(paths.EnvConfigDir, t.TempDir())
	t.Setenv(paths.EnvStateDir, t.TempDir())
	for _, kv := range os.Environ() {
		key := strings.SplitN(kv, "=", 2)[0]
		if strings.HasPrefix(key, "FARMGATE_PROFILE") ||
			strings.HasPrefix(key, "FARMGATE_REQUEST") ||
			strings.HasPrefix(key, "FARMGATE_PIPELINE") {
			// Setenv registers the restore; Unsetenv removes the
			// variable so the env provider never sees it
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestVersionCmd(t *testing.T) {
	isolateConfig(t)

	out, err := executeCmd(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "farmgate version")
}

func TestProfileCmd(t *testing.T) {
	isolateConfig(t)

	out, err := executeCmd(t, "profile")
	require.NoError(t, err)

	assert.Contains(t, out, "special_permission")
	assert.Contains(t, out, "west")
	assert.Contains(t, out, "built-in defaults")
}

func TestStagesCmd(t *testing.T) {
	isolateConfig(t)

	out, err := executeCmd(t, "stages")
	require.NoError(t, err)

	assert.Contains(t, out, "permission")
	assert.Contains(t, out, "location")
	assert.Contains(t, out, "Pipeline order:")
}

func TestGenConfigCmd(t *testing.T) {
	t.Run("prints_defaults", func(t *testing.T) {
		isolateConfig(t)

		out, err := executeCmd(t, "gen-config")
		require.NoError(t, err)
		assert.Contains(t, out, "[profile]")
		assert.Contains(t, out, "special_permission = true")
	})

	t.Run("writes_file", func(t *testing.T) {
		isolateConfig(t)
		target := filepath.Join(t.TempDir(), "farmgate.toml")

		out, err := executeCmd(t, "gen-config", "--write", "--output", target)
		require.NoError(t, err)
		assert.Contains(t, out, "Wrote ")

		_, err = os.Stat(target)
		assert.NoError(t, err)
	})
}

func TestDocsCmd(t *testing.T) {
	isolateConfig(t)

	out, err := executeCmd(t, "docs", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "# The intake workflow")
}
