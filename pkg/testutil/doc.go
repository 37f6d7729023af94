// Package testutil provides utilities for testing scribe components.
//
// Key components:
//   - Environment: isolated HOME and XDG directories with SCRIBE_* variables cleared
//   - RulePayload: declarative builder for rule-creation payloads
//   - AssertErrorCode and AssertErrorDetail: checks on *errors.Error values
//
// Usage guidelines:
//   - Tests that load configuration or write logs should call Isolate first
//   - Payloads should be built inline, not read from external files
package testutil
