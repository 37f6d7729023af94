// pkg/config/config_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: pkg/testutil
// PURPOSE: Test config layering from defaults, files, .env and the environment

package config

import (
	"path/filepath"
	"testing"

	"github.com/sshaaf/scribe/pkg/errors"
	"github.com/sshaaf/scribe/pkg/testutil"
	"github.com/sshaaf/scribe/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Empty(t, cfg.Commands.Enabled)
	assert.Empty(t, cfg.Commands.Disabled)
	assert.True(t, cfg.Commands.EnableAllByDefault)
	assert.False(t, cfg.Commands.LogOnStartup)
	assert.Equal(t, "auto", cfg.Output.Format)
	assert.Equal(t, "auto", cfg.Output.HelpStyle)
	assert.Equal(t, "", cfg.Log.File)

	policy := cfg.Policy()
	for _, op := range types.AllOperations() {
		assert.True(t, policy.Allows(op), op)
	}
}

func TestLoadConfigFile(t *testing.T) {
	env := testutil.Isolate(t)

	t.Run("toml", func(t *testing.T) {
		path := env.WriteFile(t, "scribe.toml", `
[commands]
enabled = ["CREATE_JSON_RULE"]
log_on_startup = true
`)
		cfg, err := Load(Options{ConfigFile: path, SkipUserFiles: true})
		require.NoError(t, err)

		assert.Equal(t, []string{"CREATE_JSON_RULE"}, cfg.Commands.Enabled)
		assert.True(t, cfg.Commands.LogOnStartup)
		assert.True(t, cfg.Commands.EnableAllByDefault, "unset keys keep defaults")
	})

	t.Run("yaml", func(t *testing.T) {
		path := env.WriteFile(t, "scribe.yaml", `
commands:
  disabled:
    - VALIDATE_RULE
  enable_all_by_default: false
output:
  format: text
`)
		cfg, err := Load(Options{ConfigFile: path, SkipUserFiles: true})
		require.NoError(t, err)

		assert.Equal(t, []string{"VALIDATE_RULE"}, cfg.Commands.Disabled)
		assert.False(t, cfg.Commands.EnableAllByDefault)
		assert.Equal(t, "text", cfg.Output.Format)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(Options{ConfigFile: filepath.Join(env.Root, "nope.toml")})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := env.WriteFile(t, "scribe.ini", "a=b")
		_, err := Load(Options{ConfigFile: path})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("invalid toml", func(t *testing.T) {
		path := env.WriteFile(t, "scribe.toml", "[commands\nenabled = ")
		_, err := Load(Options{ConfigFile: path})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestLoadPrecedence(t *testing.T) {
	env := testutil.Isolate(t)
	path := env.WriteFile(t, "scribe.toml", `
[commands]
enabled = ["CREATE_XML_RULE"]
disabled = ["GET_HELP"]

[output]
format = "term"
`)
	dotenv := env.WriteFile(t, ".env", `
SCRIBE_COMMANDS_DISABLED=VALIDATE_RULE
SCRIBE_OUTPUT_FORMAT=text
OTHER_VAR=ignored
`)
	t.Setenv("SCRIBE_COMMANDS_ENABLED", "CREATE_JAVA_CLASS_RULE,GET_HELP")

	cfg, err := Load(Options{ConfigFile: path, DotEnvFile: dotenv})
	require.NoError(t, err)

	assert.Equal(t, []string{"CREATE_JAVA_CLASS_RULE", "GET_HELP"}, cfg.Commands.Enabled, "env beats file")
	assert.Equal(t, []string{"VALIDATE_RULE"}, cfg.Commands.Disabled, ".env beats file")
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestLoadEnvBool(t *testing.T) {
	testutil.Isolate(t)
	t.Setenv("SCRIBE_COMMANDS_ENABLE_ALL_BY_DEFAULT", "false")
	t.Setenv("SCRIBE_LOG_FILE", "-")

	cfg, err := Load(Options{SkipUserFiles: true})
	require.NoError(t, err)

	assert.False(t, cfg.Commands.EnableAllByDefault)
	assert.Equal(t, "-", cfg.Log.File)
	assert.False(t, cfg.Policy().Allows(types.OpGetHelp))
}

func TestLoadUserConfig(t *testing.T) {
	t.Run("toml under XDG_CONFIG_HOME", func(t *testing.T) {
		env := testutil.Isolate(t)
		env.WriteUserConfig(t, "config.toml", "[output]\nhelp_style = \"light\"\n")

		cfg, err := Load(Options{DotEnvFile: filepath.Join(env.Root, ".env")})
		require.NoError(t, err)
		assert.Equal(t, "light", cfg.Output.HelpStyle)
	})

	t.Run("yaml fallback", func(t *testing.T) {
		env := testutil.Isolate(t)
		env.WriteUserConfig(t, "config.yaml", "log:\n  file: /tmp/scribe.log\n")

		cfg, err := Load(Options{DotEnvFile: filepath.Join(env.Root, ".env")})
		require.NoError(t, err)
		assert.Equal(t, "/tmp/scribe.log", cfg.Log.File)
	})

	t.Run("skipped", func(t *testing.T) {
		env := testutil.Isolate(t)
		env.WriteUserConfig(t, "config.toml", "[output]\nformat = \"term\"\n")

		cfg, err := Load(Options{SkipUserFiles: true})
		require.NoError(t, err)
		assert.Equal(t, "auto", cfg.Output.Format)
	})

	t.Run("missing .env is ignored", func(t *testing.T) {
		env := testutil.Isolate(t)

		cfg, err := Load(Options{DotEnvFile: filepath.Join(env.Root, "none.env")})
		require.NoError(t, err)
		assert.Equal(t, "auto", cfg.Output.Format)
	})
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "commands.enabled", envKey("SCRIBE_COMMANDS_ENABLED"))
	assert.Equal(t, "commands.enable_all_by_default", envKey("SCRIBE_COMMANDS_ENABLE_ALL_BY_DEFAULT"))
	assert.Equal(t, "output.help_style", envKey("SCRIBE_OUTPUT_HELP_STYLE"))
}

func TestPolicyDropsBlankNames(t *testing.T) {
	cfg := &Config{Commands: CommandsConfig{Enabled: []string{"GET_HELP", "", " "}}}

	policy := cfg.Policy()

	assert.Equal(t, []string{"GET_HELP"}, policy.Enabled)
	assert.Nil(t, policy.Disabled)
}

func TestRender(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	cfg.Commands.Enabled = []string{"GET_HELP"}

	out, err := Render(cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "[commands]")
	assert.Contains(t, out, "enabled = ['GET_HELP']")
	assert.Contains(t, out, "enable_all_by_default = true")
	assert.Contains(t, out, "[output]")
	assert.Contains(t, out, "format = 'auto'")
}
