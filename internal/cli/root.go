// Package cli wires the scribe commands together.
package cli

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/sshaaf/scribe/internal/version"
	"github.com/sshaaf/scribe/pkg/config"
	"github.com/sshaaf/scribe/pkg/logging"
	"github.com/sshaaf/scribe/pkg/operations"
	"github.com/sshaaf/scribe/pkg/ui"
)

// app holds what the subcommands share once PersistentPreRunE has run
type app struct {
	cfg        *config.Config
	dispatcher *operations.Dispatcher
	format     ui.Format
}

func (a *app) printer(cmd *cobra.Command) *ui.Printer {
	return ui.NewPrinter(cmd.OutOrStdout(), a.format)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		configFile string
		format     string
		logFile    string
	)
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "scribe",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Console only until the config says where the log file goes
			logging.Setup(logging.Options{Verbosity: verbosity, LogFile: "-"})

			cfg, err := config.Load(config.Options{ConfigFile: configFile})
			if err != nil {
				return err
			}
			logging.Setup(logging.Options{Verbosity: verbosity, LogFile: resolveLogFile(logFile, cfg)})
			logging.LogCommand(cmd.Name(), args)

			if format == "" {
				format = cfg.Output.Format
			}
			f, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}

			registry, err := operations.NewRegistry(cfg.Policy())
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.format = ui.Resolve(f, os.Stdout)
			a.dispatcher = operations.NewDispatcher(registry)
			log.Debug().Str("command", cmd.Name()).Str("format", a.format.String()).Msg("Command started")
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&format, "format", "", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", MsgFlagLogFile)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return ui.FormatNames, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newExecCmd(a))
	rootCmd.AddCommand(newOpsCmd(a))
	rootCmd.AddCommand(newTopicsCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// resolveLogFile picks the log file: the flag, then log.file from config,
// then the default location ("")
func resolveLogFile(flag string, cfg *config.Config) string {
	if flag != "" {
		return flag
	}
	return cfg.Log.File
}
