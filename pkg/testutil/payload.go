package testutil

import (
	"encoding/json"
	"testing"

	"github.com/sshaaf/scribe/pkg/params"
	"github.com/stretchr/testify/require"
)

// RulePayload builds rule-creation payloads. It starts from the fields every
// rule needs, so tests only spell out what they care about.
type RulePayload struct {
	values map[string]interface{}
}

// NewRulePayload returns a payload with ruleID, message, category and effort set
func NewRulePayload(ruleID string) *RulePayload {
	return &RulePayload{values: map[string]interface{}{
		"ruleID":   ruleID,
		"message":  "m",
		"category": "MANDATORY",
		"effort":   1,
	}}
}

// FileRule returns a payload accepted by CREATE_FILE_RULE
func FileRule(ruleID, pattern string) *RulePayload {
	return NewRulePayload(ruleID).With("filePattern", pattern)
}

// JavaRule returns a payload accepted by CREATE_JAVA_CLASS_RULE
func JavaRule(ruleID, pattern, location string) *RulePayload {
	return NewRulePayload(ruleID).With("javaPattern", pattern).With("location", location)
}

// With sets a field
func (b *RulePayload) With(key string, value interface{}) *RulePayload {
	b.values[key] = value
	return b
}

// Without removes a field
func (b *RulePayload) Without(key string) *RulePayload {
	delete(b.values, key)
	return b
}

// Map returns a copy of the fields
func (b *RulePayload) Map() map[string]interface{} {
	out := make(map[string]interface{}, len(b.values))
	for k, v := range b.values {
		out[k] = v
	}
	return out
}

// Payload returns the fields as a parsed payload
func (b *RulePayload) Payload() params.Payload {
	return params.New(b.Map())
}

// JSON returns the payload text as the dispatcher receives it
func (b *RulePayload) JSON(t *testing.T) string {
	t.Helper()
	data, err := json.Marshal(b.values)
	require.NoError(t, err)
	return string(data)
}
