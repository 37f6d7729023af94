package operations

import (
	"github.com/sshaaf/scribe/pkg/errors"
	"github.com/sshaaf/scribe/pkg/logging"
	"github.com/sshaaf/scribe/pkg/params"
	"github.com/sshaaf/scribe/pkg/types"
)

// Dispatcher runs operations by name against a registry
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher creates a dispatcher over registry
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Registry returns the registry the dispatcher resolves operations against
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Execute resolves the operation, checks it is available, parses the
// payload and runs the command. On failure no partial output is returned.
func (d *Dispatcher) Execute(operation, payload string) (string, error) {
	logger := logging.GetLogger("operations.dispatcher")

	op, ok := types.ParseOperation(operation)
	if !ok {
		return "", d.registry.unknown(operation)
	}

	cmd, err := d.registry.GetCommand(op)
	if err != nil {
		return "", err
	}

	p, err := params.Parse(payload)
	if err != nil {
		return "", failed(op, err)
	}

	done := logging.LogOperationStart(logger, string(op))
	defer done()
	logger.Debug().
		Str("operation", string(op)).
		Strs("params", p.Keys()).
		Msg("Executing operation")

	result, err := cmd.Execute(p)
	if err != nil {
		logger.Debug().Err(err).Str("operation", string(op)).Msg("Operation failed")
		return "", failed(op, err)
	}

	return result, nil
}

// failed wraps err in an error of the same code that names the operation
func failed(op types.Operation, err error) error {
	return errors.Wrapf(err, errors.GetErrorCode(err), "Failed to execute operation %s", op).
		WithDetails(errors.GetErrorDetails(err)).
		WithDetail(errors.DetailOperation, string(op))
}
