package operations

import (
	"strings"

	"github.com/sshaaf/scribe/pkg/commands"
	"github.com/sshaaf/scribe/pkg/errors"
	"github.com/sshaaf/scribe/pkg/logging"
	"github.com/sshaaf/scribe/pkg/registry"
	"github.com/sshaaf/scribe/pkg/types"
)

// Registry holds one command per operation and filters them by policy
type Registry struct {
	policy   Policy
	commands registry.Registry[commands.Command]
}

// NewRegistry builds a registry with the builtin commands
func NewRegistry(policy Policy) (*Registry, error) {
	r := &Registry{policy: policy}
	if err := r.load(commands.Builtin(r)); err != nil {
		return nil, err
	}
	return r, nil
}

// NewRegistryWith builds a registry from an explicit command list
func NewRegistryWith(policy Policy, cmds ...commands.Command) (*Registry, error) {
	r := &Registry{policy: policy}
	if err := r.load(cmds); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry) load(cmds []commands.Command) error {
	logger := logging.GetLogger("operations.registry")
	r.commands = registry.New[commands.Command]()

	for _, cmd := range cmds {
		if err := r.commands.Register(string(cmd.Operation()), cmd); err != nil {
			return errors.Wrapf(err, errors.ErrInternal, "failed to register %s", cmd.Operation())
		}
	}

	logger.Debug().
		Int("registered", r.commands.Count()).
		Strs("enabled", r.policy.Enabled).
		Strs("disabled", r.policy.Disabled).
		Bool("enableAllByDefault", r.policy.EnableAllByDefault).
		Msg("Operation registry initialized")

	if r.policy.LogOnStartup {
		logger.Info().
			Str("available", r.AvailableOperationsString()).
			Msg("Available operations")
	}

	return nil
}

// IsAvailable reports whether op has a command and passes the policy
func (r *Registry) IsAvailable(op types.Operation) bool {
	return r.commands.Has(string(op)) && r.policy.Allows(op)
}

// GetCommand returns the command for an available operation
func (r *Registry) GetCommand(op types.Operation) (commands.Command, error) {
	if !r.commands.Has(string(op)) {
		return nil, r.unknown(string(op))
	}
	if !r.policy.Allows(op) {
		return nil, r.withAvailable(errors.Newf(errors.ErrDisabledOperation,
			"Operation %s is not enabled. Available operations: %s", op, r.AvailableOperationsString()), op)
	}
	return r.commands.Get(string(op))
}

// ListAvailableOperations returns the available operations in declaration order
func (r *Registry) ListAvailableOperations() []types.Operation {
	var ops []types.Operation
	for _, op := range types.AllOperations() {
		if r.IsAvailable(op) {
			ops = append(ops, op)
		}
	}
	return ops
}

// AvailableOperationsString joins the available operations with ", "
func (r *Registry) AvailableOperationsString() string {
	return strings.Join(r.availableNames(), ", ")
}

func (r *Registry) availableNames() []string {
	ops := r.ListAvailableOperations()
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = string(op)
	}
	return names
}

func (r *Registry) unknown(name string) *errors.Error {
	return r.withAvailable(errors.Newf(errors.ErrUnknownOperation,
		"Unknown operation %s. Available operations: %s", name, r.AvailableOperationsString()), types.Operation(name))
}

func (r *Registry) withAvailable(err *errors.Error, op types.Operation) *errors.Error {
	return err.
		WithDetail(errors.DetailOperation, string(op)).
		WithDetail(errors.DetailAvailable, r.availableNames())
}
