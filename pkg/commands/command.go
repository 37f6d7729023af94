package commands

import (
	"github.com/sshaaf/scribe/pkg/params"
	"github.com/sshaaf/scribe/pkg/types"
)

// Command handles a single operation
type Command interface {
	// Operation identifies the command
	Operation() types.Operation

	// RequiredParams lists the payload keys that must be present, in the
	// order they are checked
	RequiredParams() []string

	// Description is the help text shown by GET_HELP
	Description() string

	// ExampleParams is an example payload shown by GET_HELP
	ExampleParams() string

	// Execute runs the command against a parsed payload
	Execute(p params.Payload) (string, error)
}

// Catalog exposes the commands a caller may currently use. GET_HELP reads it
// to describe the available operations.
type Catalog interface {
	ListAvailableOperations() []types.Operation
	GetCommand(op types.Operation) (Command, error)
}

// Builtin returns every command in operation order
func Builtin(catalog Catalog) []Command {
	return []Command{
		NewJavaClassRule(),
		NewFileContentRule(),
		NewFileRule(),
		NewXMLRule(),
		NewJSONRule(),
		NewValidateRule(),
		NewHelp(catalog),
	}
}

// metadata carries the static parts of a Command
type metadata struct {
	op          types.Operation
	required    []string
	description string
	example     string
}

func (m metadata) Operation() types.Operation { return m.op }

func (m metadata) RequiredParams() []string {
	out := make([]string, len(m.required))
	copy(out, m.required)
	return out
}

func (m metadata) Description() string   { return m.description }
func (m metadata) ExampleParams() string { return m.example }
