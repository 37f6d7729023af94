package cli

import (
	"github.com/spf13/cobra"
	"github.com/sshaaf/scribe/pkg/config"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := config.Render(a.cfg)
			if err != nil {
				return err
			}
			a.printer(cmd).Print(out)
			return nil
		},
	}
}
