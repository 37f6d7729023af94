package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/sshaaf/scribe/pkg/errors"
	"github.com/sshaaf/scribe/pkg/help"
)

func newTopicsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "topics [topic]",
		Short: MsgTopicsShort,
		Long:  MsgTopicsLong,
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			topics, err := help.Load()
			if err != nil || len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return topics.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			topics, err := help.Load()
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to load help topics")
			}
			p := a.printer(cmd)

			if len(args) == 0 {
				p.Line("Header", MsgAvailableTopic)
				for _, name := range topics.Names() {
					p.Line("", MsgTopicItem, name)
				}
				p.Line("Muted", MsgTopicHint)
				return nil
			}

			topic, ok := topics.Get(args[0])
			if !ok {
				return errors.New(errors.ErrNotFound,
					fmt.Sprintf(MsgErrUnknownTopic, args[0], strings.Join(topics.Names(), ", ")))
			}
			p.Print(helpRenderer(a).Render(topic.Content, topic.Format))
			return nil
		},
	}
}
