package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/require"
)

// Environment is an isolated set of user directories for one test
type Environment struct {
	Root       string
	HomeDir    string
	ConfigHome string
	StateHome  string
}

// Isolate points HOME and the XDG directories at a temp tree and clears every
// SCRIBE_* variable for the duration of the test. Tests using it must not
// run in parallel.
func Isolate(t *testing.T) *Environment {
	t.Helper()

	root := t.TempDir()
	env := &Environment{
		Root:       root,
		HomeDir:    filepath.Join(root, "home"),
		ConfigHome: filepath.Join(root, "home", ".config"),
		StateHome:  filepath.Join(root, "home", ".local", "state"),
	}
	for _, dir := range []string{env.HomeDir, env.ConfigHome, env.StateHome} {
		require.NoError(t, os.MkdirAll(dir, 0755))
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(root, "etc", "xdg"))
	t.Setenv("XDG_STATE_HOME", env.StateHome)

	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "SCRIBE_") {
			// Setenv registers the restore, Unsetenv makes it absent
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}

	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return env
}

// WriteUserConfig writes a file under $XDG_CONFIG_HOME/scribe and returns its path
func (env *Environment) WriteUserConfig(t *testing.T, name, content string) string {
	t.Helper()
	return writeFile(t, filepath.Join(env.ConfigHome, "scribe", name), content)
}

// WriteFile writes a file relative to the environment root and returns its path
func (env *Environment) WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	return writeFile(t, filepath.Join(env.Root, name), content)
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
