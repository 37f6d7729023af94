package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/sshaaf/scribe/pkg/commands"
	"github.com/sshaaf/scribe/pkg/types"
)

func newOpsCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "ops",
		Short: MsgOpsShort,
		Long:  MsgOpsLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.printer(cmd)
			registry := a.dispatcher.Registry()

			ops := registry.ListAvailableOperations()
			if all {
				ops = types.AllOperations()
			}
			if len(ops) == 0 {
				p.Line("Muted", MsgNoOps)
				return nil
			}

			// Disabled commands are not reachable through the registry, so
			// --all describes them from the builtin table
			builtin := make(map[types.Operation]commands.Command)
			for _, c := range commands.Builtin(registry) {
				builtin[c.Operation()] = c
			}

			p.Line("Header", MsgAvailableOps)
			for _, op := range ops {
				line := string(op)
				if !registry.IsAvailable(op) {
					line += " " + p.Style("Muted", MsgOpDisabled)
				}
				p.Line("Operation", "\n%s", line)
				describe(p, builtin[op])
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, MsgFlagAll)
	return cmd
}

type linePrinter interface {
	Line(style, format string, args ...interface{})
}

func describe(p linePrinter, c commands.Command) {
	if c == nil {
		return
	}
	p.Line("", "  %s", c.Description())
	if required := c.RequiredParams(); len(required) > 0 {
		p.Line("Muted", MsgRequiredParams, strings.Join(required, ", "))
	}
}
