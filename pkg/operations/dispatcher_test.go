// pkg/operations/dispatcher_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Mock Command, builtin commands
// PURPOSE: Test operation dispatch and error wrapping

package operations_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sshaaf/scribe/pkg/errors"
	"github.com/sshaaf/scribe/pkg/operations"
	"github.com/sshaaf/scribe/pkg/params"
	"github.com/sshaaf/scribe/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDispatcher(t *testing.T, policy operations.Policy) *operations.Dispatcher {
	t.Helper()
	reg, err := operations.NewRegistry(policy)
	require.NoError(t, err)
	return operations.NewDispatcher(reg)
}

func TestExecuteJavaExample(t *testing.T) {
	d := newDispatcher(t, operations.DefaultPolicy())

	out, err := d.Execute("CREATE_JAVA_CLASS_RULE",
		`{"ruleID":"r1","javaPattern":"javax.ws.rs.POST","location":"ANNOTATION","message":"m","category":"MANDATORY","effort":1}`)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "- ruleID: r1\n"))
	assert.Contains(t, out, "Detects Java annotation: javax.ws.rs.POST")
	assert.Contains(t, out, "java.referenced:")
	assert.Contains(t, out, "pattern: javax.ws.rs.POST")
	assert.Contains(t, out, "location: ANNOTATION")
	assert.NotContains(t, out, "annotated")
}

func TestExecuteErrors(t *testing.T) {
	tests := []struct {
		name      string
		policy    operations.Policy
		operation string
		payload   string
		code      errors.ErrorCode
		contains  string
	}{
		{
			name:      "unknown operation",
			policy:    operations.DefaultPolicy(),
			operation: "CREATE_GO_RULE",
			payload:   `{}`,
			code:      errors.ErrUnknownOperation,
			contains:  "Available operations: CREATE_JAVA_CLASS_RULE, ",
		},
		{
			name:      "operation names are case-sensitive",
			policy:    operations.DefaultPolicy(),
			operation: "get_help",
			payload:   `{}`,
			code:      errors.ErrUnknownOperation,
		},
		{
			name:      "disabled before payload is parsed",
			policy:    operations.Policy{Enabled: []string{"CREATE_JSON_RULE"}},
			operation: "CREATE_XML_RULE",
			payload:   `not json`,
			code:      errors.ErrDisabledOperation,
			contains:  "Available operations: CREATE_JSON_RULE",
		},
		{
			name:      "malformed payload",
			policy:    operations.DefaultPolicy(),
			operation: "CREATE_FILE_RULE",
			payload:   `{"ruleID":`,
			code:      errors.ErrMalformedPayload,
			contains:  "Failed to execute operation CREATE_FILE_RULE",
		},
		{
			name:      "missing field",
			policy:    operations.DefaultPolicy(),
			operation: "CREATE_FILE_RULE",
			payload:   `{"filePattern":"pom.xml"}`,
			code:      errors.ErrMissingField,
			contains:  "missing required field 'ruleID'",
		},
		{
			name:      "out of range",
			policy:    operations.DefaultPolicy(),
			operation: "CREATE_FILE_RULE",
			payload:   `{"ruleID":"r","filePattern":"a","message":"m","category":"MANDATORY","effort":7}`,
			code:      errors.ErrOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDispatcher(t, tt.policy)

			out, err := d.Execute(tt.operation, tt.payload)

			require.Error(t, err)
			assert.Empty(t, out)
			assert.Equal(t, tt.code, errors.GetErrorCode(err), err.Error())
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
		})
	}
}

func TestExecuteWrapsCommandErrors(t *testing.T) {
	cmd := newMockCommand(types.OpCreateFileRule)
	cmd.On("Execute", mock.Anything).
		Return("partial", errors.New(errors.ErrEmptyField, "field 'x' must not be empty").
			WithDetail(errors.DetailField, "x"))

	reg, err := operations.NewRegistryWith(operations.DefaultPolicy(), cmd)
	require.NoError(t, err)

	out, err := operations.NewDispatcher(reg).Execute("CREATE_FILE_RULE", `{"x":""}`)

	require.Error(t, err)
	assert.Empty(t, out)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEmptyField))
	assert.Equal(t, "[EMPTY_FIELD] Failed to execute operation CREATE_FILE_RULE: field 'x' must not be empty", err.Error())
	details := errors.GetErrorDetails(err)
	assert.Equal(t, "x", details[errors.DetailField])
	assert.Equal(t, "CREATE_FILE_RULE", details[errors.DetailOperation])
	cmd.AssertExpectations(t)
}

func TestExecutePlainErrorsKeepMessage(t *testing.T) {
	cmd := newMockCommand(types.OpGetHelp)
	cmd.On("Execute", mock.Anything).Return("", fmt.Errorf("boom"))

	reg, err := operations.NewRegistryWith(operations.DefaultPolicy(), cmd)
	require.NoError(t, err)

	_, err = operations.NewDispatcher(reg).Execute("GET_HELP", ``)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestExecutePassesParsedPayload(t *testing.T) {
	cmd := newMockCommand(types.OpValidateRule)
	cmd.On("Execute", mock.MatchedBy(func(p params.Payload) bool {
		s, err := p.RequireString("yamlContent")
		return err == nil && s == "x"
	})).Return("ok", nil)

	reg, err := operations.NewRegistryWith(operations.DefaultPolicy(), cmd)
	require.NoError(t, err)

	out, err := operations.NewDispatcher(reg).Execute("VALIDATE_RULE", `{"yamlContent":"x"}`)

	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	cmd.AssertExpectations(t)
}

func TestExecuteIsDeterministic(t *testing.T) {
	d := newDispatcher(t, operations.DefaultPolicy())
	payload := `{"ruleID":"r1","xpath":"//a","namespaces":{"z":"urn:z","a":"urn:a","m":"urn:m"},"message":"m","category":"OPTIONAL","effort":2}`

	first, err := d.Execute("CREATE_XML_RULE", payload)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := d.Execute("CREATE_XML_RULE", payload)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
