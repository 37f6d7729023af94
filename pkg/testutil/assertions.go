package testutil

import (
	"testing"

	"github.com/sshaaf/scribe/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertErrorCode fails unless err is a scribe error carrying code
func AssertErrorCode(t *testing.T, err error, code errors.ErrorCode, msgAndArgs ...interface{}) {
	t.Helper()
	require.Error(t, err, msgAndArgs...)
	assert.Equal(t, code, errors.GetErrorCode(err), append([]interface{}{err.Error()}, msgAndArgs...)...)
}

// AssertErrorDetail fails unless err carries the detail key with value
func AssertErrorDetail(t *testing.T, err error, key string, value interface{}) {
	t.Helper()
	require.Error(t, err)
	details := errors.GetErrorDetails(err)
	require.Contains(t, details, key, "error %q has no %s detail", err.Error(), key)
	assert.Equal(t, value, details[key])
}
