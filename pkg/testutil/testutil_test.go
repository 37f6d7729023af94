// pkg/testutil/testutil_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test the shared test helpers

package testutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/sshaaf/scribe/pkg/errors"
	"github.com/sshaaf/scribe/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsolate(t *testing.T) {
	t.Setenv("SCRIBE_OUTPUT_FORMAT", "term")

	env := testutil.Isolate(t)

	_, set := os.LookupEnv("SCRIBE_OUTPUT_FORMAT")
	assert.False(t, set)
	assert.Equal(t, env.HomeDir, os.Getenv("HOME"))
	assert.Equal(t, env.ConfigHome, xdg.ConfigHome)
	assert.Equal(t, env.StateHome, xdg.StateHome)

	path := env.WriteUserConfig(t, "config.toml", "[log]\n")
	assert.Equal(t, filepath.Join(env.ConfigHome, "scribe", "config.toml"), path)
	found, err := xdg.SearchConfigFile("scribe/config.toml")
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestRulePayload(t *testing.T) {
	p := testutil.FileRule("r1", "pom.xml").With("effort", 3).Without("message")

	m := p.Map()
	assert.Equal(t, "r1", m["ruleID"])
	assert.Equal(t, "pom.xml", m["filePattern"])
	assert.Equal(t, 3, m["effort"])
	assert.NotContains(t, m, "message")

	assert.JSONEq(t, `{"ruleID":"r1","filePattern":"pom.xml","category":"MANDATORY","effort":3}`, p.JSON(t))

	effort, err := p.Payload().RequireInt("effort")
	require.NoError(t, err)
	assert.Equal(t, 3, effort)
}

func TestAssertions(t *testing.T) {
	err := errors.MissingField("ruleID")
	testutil.AssertErrorCode(t, err, errors.ErrMissingField)
	testutil.AssertErrorDetail(t, err, errors.DetailField, "ruleID")
}
