// internal/cli/cli_test.go
// TEST TYPE: Integration Tests
// DEPENDENCIES: pkg/testutil
// PURPOSE: Run the scribe command tree end to end against an isolated environment

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sshaaf/scribe/pkg/config"
	"github.com/sshaaf/scribe/pkg/errors"
	"github.com/sshaaf/scribe/pkg/logging"
	"github.com/sshaaf/scribe/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--log-file", "-", "--format", "text"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, env *testutil.Environment, body string) string {
	t.Helper()
	return env.WriteFile(t, "config.toml", body)
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCmd()
	assert.Equal(t, "scribe", cmd.Use)

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"exec", "ops", "topics", "config", "version", "completion"}, names)
}

func TestExec(t *testing.T) {
	env := testutil.Isolate(t)
	fileRulePayload := testutil.FileRule("r1", "pom.xml").JSON(t)

	t.Run("payload argument", func(t *testing.T) {
		out, err := run(t, "", "exec", "CREATE_FILE_RULE", fileRulePayload)
		require.NoError(t, err)
		assert.Contains(t, out, "ruleID: r1")
		assert.Contains(t, out, "builtin.file")
	})

	t.Run("payload from stdin", func(t *testing.T) {
		out, err := run(t, fileRulePayload, "exec", "CREATE_FILE_RULE", "--file", "-")
		require.NoError(t, err)
		assert.Contains(t, out, "ruleID: r1")
	})

	t.Run("payload from file", func(t *testing.T) {
		path := env.WriteFile(t, "payload.json", fileRulePayload)

		out, err := run(t, "", "exec", "CREATE_FILE_RULE", "-f", path)
		require.NoError(t, err)
		assert.Contains(t, out, "ruleID: r1")
	})

	t.Run("argument and file together", func(t *testing.T) {
		_, err := run(t, "", "exec", "CREATE_FILE_RULE", fileRulePayload, "-f", "x.json")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, "", "exec", "CREATE_FILE_RULE", "-f", filepath.Join(env.Root, "none.json"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("unknown operation", func(t *testing.T) {
		_, err := run(t, "", "exec", "DELETE_RULE", "{}")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownOperation))
		assert.Contains(t, err.Error(), "CREATE_FILE_RULE")
	})

	t.Run("missing parameter", func(t *testing.T) {
		_, err := run(t, "", "exec", "CREATE_FILE_RULE", testutil.FileRule("r1", "pom.xml").Without("effort").JSON(t))
		testutil.AssertErrorCode(t, err, errors.ErrMissingField)
		testutil.AssertErrorDetail(t, err, errors.DetailField, "effort")
	})

	t.Run("validation summary", func(t *testing.T) {
		out, err := run(t, "", "exec", "VALIDATE_RULE", `{"yamlContent":"- ruleID: a\n  message: m\n  category: mandatory\n  effort: 1\n  when:\n    builtin.file:\n      pattern: pom.xml\n"}`)
		require.NoError(t, err)
		assert.Contains(t, out, "Rule validation passed")
	})

	t.Run("help topic", func(t *testing.T) {
		out, err := run(t, "", "exec", "GET_HELP", `{"topic":"operations"}`)
		require.NoError(t, err)
		assert.Contains(t, out, "CREATE_JAVA_CLASS_RULE")
	})
}

func TestExecHonorsPolicy(t *testing.T) {
	env := testutil.Isolate(t)
	path := writeConfig(t, env, "[commands]\ndisabled = [\"CREATE_XML_RULE\"]\n")

	_, err := run(t, "", "--config", path, "exec", "CREATE_XML_RULE", "{}")
	testutil.AssertErrorCode(t, err, errors.ErrDisabledOperation)
	testutil.AssertErrorDetail(t, err, errors.DetailOperation, "CREATE_XML_RULE")

	out, err := run(t, "", "--config", path, "ops")
	require.NoError(t, err)
	assert.NotContains(t, out, "CREATE_XML_RULE")

	out, err = run(t, "", "--config", path, "ops", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "CREATE_XML_RULE "+MsgOpDisabled)
}

func TestOps(t *testing.T) {
	env := testutil.Isolate(t)
	out, err := run(t, "", "ops")
	require.NoError(t, err)
	assert.Contains(t, out, MsgAvailableOps)
	assert.Contains(t, out, "CREATE_JSON_RULE")
	assert.Contains(t, out, "required: ruleID")

	t.Run("nothing enabled", func(t *testing.T) {
		path := writeConfig(t, env, "[commands]\nenable_all_by_default = false\n")
		out, err := run(t, "", "--config", path, "ops")
		require.NoError(t, err)
		assert.Contains(t, out, MsgNoOps)
	})
}

func TestTopics(t *testing.T) {
	testutil.Isolate(t)
	out, err := run(t, "", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, MsgAvailableTopic)
	assert.Contains(t, out, "  java")

	out, err = run(t, "", "topics", "JSON")
	require.NoError(t, err)
	assert.Contains(t, out, "builtin.json")

	_, err = run(t, "", "topics", "groovy")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestConfig(t *testing.T) {
	env := testutil.Isolate(t)
	path := writeConfig(t, env, "[output]\nhelp_style = \"dark\"\n")
	out, err := run(t, "", "--config", path, "config")
	require.NoError(t, err)
	assert.Regexp(t, `help_style = .dark.`, out)
	assert.Contains(t, out, "enable_all_by_default = true")
}

func TestVersionAndCompletion(t *testing.T) {
	testutil.Isolate(t)
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "scribe version")

	out, err = run(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "scribe")
}

func TestBadFormatFlag(t *testing.T) {
	testutil.Isolate(t)
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--log-file", "-", "--format", "fancy", "ops"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidEnumValue))
}


func TestLogFileFromConfig(t *testing.T) {
	env := testutil.Isolate(t)
	t.Cleanup(func() { logging.Setup(logging.Options{LogFile: "-", Console: &bytes.Buffer{}}) })

	custom := filepath.Join(env.Root, "logs", "custom.log")
	path := writeConfig(t, env, "[log]\nfile = '"+custom+"'\n")

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", path, "--format", "text", "ops"})
	require.NoError(t, cmd.Execute())

	_, err := os.Stat(custom)
	assert.NoError(t, err, "configured log file is created")
	_, err = os.Stat(filepath.Join(env.StateHome, "scribe", "scribe.log"))
	assert.True(t, os.IsNotExist(err), "default log file is not created when config moves it")
}

func TestResolveLogFile(t *testing.T) {
	cfg := &config.Config{Log: config.LogConfig{File: "/var/log/scribe.log"}}

	assert.Equal(t, "-", resolveLogFile("-", cfg))
	assert.Equal(t, "/var/log/scribe.log", resolveLogFile("", cfg))
	assert.Equal(t, "", resolveLogFile("", &config.Config{}))
}
