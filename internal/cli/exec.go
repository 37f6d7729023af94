package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/sshaaf/scribe/pkg/commands"
	"github.com/sshaaf/scribe/pkg/errors"
	"github.com/sshaaf/scribe/pkg/help"
	"github.com/sshaaf/scribe/pkg/params"
	"github.com/sshaaf/scribe/pkg/types"
	"github.com/sshaaf/scribe/pkg/ui"
)

func newExecCmd(a *app) *cobra.Command {
	var payloadFile string

	cmd := &cobra.Command{
		Use:   "exec OPERATION [PAYLOAD]",
		Short: MsgExecShort,
		Long:  MsgExecLong,
		Args:  cobra.RangeArgs(1, 2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var names []string
			for _, op := range types.AllOperations() {
				names = append(names, string(op))
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(cmd, args, payloadFile)
			if err != nil {
				return err
			}

			result, err := a.dispatcher.Execute(args[0], payload)
			if err != nil {
				return err
			}

			printResult(a, cmd, types.Operation(args[0]), payload, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&payloadFile, "file", "f", "", MsgFlagFile)
	return cmd
}

func readPayload(cmd *cobra.Command, args []string, file string) (string, error) {
	if len(args) == 2 {
		if file != "" {
			return "", errors.New(errors.ErrInvalidInput, MsgErrPayloadBoth)
		}
		return args[1], nil
	}

	var r io.Reader
	switch {
	case file == "-":
		r = cmd.InOrStdin()
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInvalidInput, MsgErrReadPayload).WithDetail("path", file)
		}
		defer func() { _ = f.Close() }()
		r = f
	default:
		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			return "", nil
		}
		r = in
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, MsgErrReadPayload)
	}
	return string(data), nil
}

// printResult styles validation summaries and renders markdown help topics
// for the terminal; rule YAML is printed untouched
func printResult(a *app, cmd *cobra.Command, op types.Operation, payload, result string) {
	p := a.printer(cmd)

	switch op {
	case types.OpValidateRule:
		p.Summary(result)
	case types.OpGetHelp:
		if p.Format() == ui.FormatTerminal && isMarkdownTopic(payload) {
			p.Print(helpRenderer(a).Render(result, ".md"))
			return
		}
		p.Print(result)
	default:
		p.Print(result)
	}
}

func isMarkdownTopic(payload string) bool {
	pl, err := params.Parse(payload)
	if err != nil {
		return false
	}
	topic, ok, err := pl.OptionalEnum("topic", commands.HelpTopics)
	return err == nil && ok && topic != commands.TopicOperations
}

func helpRenderer(a *app) help.Renderer {
	if a.format != ui.FormatTerminal {
		return &help.PlainRenderer{}
	}
	r := help.NewGlamourRenderer()
	if a.cfg != nil && a.cfg.Output.HelpStyle != "" {
		r.Style = a.cfg.Output.HelpStyle
	}
	return r
}
