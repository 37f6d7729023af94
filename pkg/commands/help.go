package commands

import (
	"fmt"
	"strings"

	"github.com/sshaaf/scribe/pkg/errors"
	"github.com/sshaaf/scribe/pkg/help"
	"github.com/sshaaf/scribe/pkg/params"
	"github.com/sshaaf/scribe/pkg/types"
)

// TopicOperations lists the available operations instead of a static topic
const TopicOperations = "operations"

// HelpTopics are the topics GET_HELP accepts
var HelpTopics = []string{"java", "file", "xml", "json", TopicOperations}

// Help answers GET_HELP
type Help struct {
	metadata
	catalog Catalog
}

func NewHelp(catalog Catalog) *Help {
	return &Help{
		metadata: metadata{
			op:          types.OpGetHelp,
			description: "Show help for a topic: " + strings.Join(HelpTopics, ", ") + ". Defaults to operations.",
			example:     `{"topic": "java"}`,
		},
		catalog: catalog,
	}
}

func (c *Help) Execute(p params.Payload) (string, error) {
	topic, ok, err := p.OptionalEnum("topic", HelpTopics)
	if err != nil {
		return "", err
	}
	if !ok {
		topic = TopicOperations
	}

	if topic == TopicOperations {
		return c.operations()
	}

	topics, err := help.Load()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to load help topics")
	}
	t, ok := topics.Get(topic)
	if !ok {
		return "", errors.Newf(errors.ErrNotFound, "help topic '%s' not found", topic)
	}
	return t.Content, nil
}

func (c *Help) operations() (string, error) {
	var b strings.Builder
	b.WriteString("Available operations:\n")

	for _, op := range c.catalog.ListAvailableOperations() {
		cmd, err := c.catalog.GetCommand(op)
		if err != nil {
			return "", err
		}

		fmt.Fprintf(&b, "\n%s\n", op)
		fmt.Fprintf(&b, "  %s\n", cmd.Description())
		if required := cmd.RequiredParams(); len(required) > 0 {
			fmt.Fprintf(&b, "  Required parameters: %s\n", strings.Join(required, ", "))
		}
		b.WriteString("  Example:\n")
		for _, line := range strings.Split(cmd.ExampleParams(), "\n") {
			fmt.Fprintf(&b, "    %s\n", line)
		}
	}

	return b.String(), nil
}
