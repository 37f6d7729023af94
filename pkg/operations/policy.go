package operations

import (
	"github.com/sshaaf/scribe/pkg/types"
)

// Policy decides which operations are available
type Policy struct {
	Enabled            []string
	Disabled           []string
	EnableAllByDefault bool
	LogOnStartup       bool
}

// DefaultPolicy enables every operation
func DefaultPolicy() Policy {
	return Policy{EnableAllByDefault: true}
}

// Allows reports whether op passes the policy. An enable-list takes
// precedence over a disable-list.
func (p Policy) Allows(op types.Operation) bool {
	if len(p.Enabled) > 0 {
		return contains(p.Enabled, op)
	}
	if len(p.Disabled) > 0 {
		return !contains(p.Disabled, op)
	}
	return p.EnableAllByDefault
}

func contains(names []string, op types.Operation) bool {
	for _, name := range names {
		if name == string(op) {
			return true
		}
	}
	return false
}
