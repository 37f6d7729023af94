package commands

import (
	"fmt"
	"strings"

	"github.com/sshaaf/scribe/pkg/lint"
	"github.com/sshaaf/scribe/pkg/params"
	"github.com/sshaaf/scribe/pkg/serializer"
	"github.com/sshaaf/scribe/pkg/types"
)

const (
	validationPassed = "Rule validation passed"
	validationFailed = "Rule validation failed"
)

// ValidateRule checks an existing rule document
type ValidateRule struct {
	metadata
	linter *lint.Linter
}

func NewValidateRule() *ValidateRule {
	return &ValidateRule{
		metadata: metadata{
			op:          types.OpValidateRule,
			required:    []string{"yamlContent"},
			description: "Validate the YAML of one rule or a list of rules and report structural problems.",
			example: `{
  "yamlContent": "- ruleID: r1\n  message: m\n  category: optional\n  effort: 1\n  when:\n    builtin.file:\n      pattern: pom.xml\n"
}`,
		},
		linter: lint.NewLinter(),
	}
}

// Execute reports problems in the summary text. Only a missing or
// malformed yamlContent parameter is an error.
func (c *ValidateRule) Execute(p params.Payload) (string, error) {
	if err := p.RequireFields(c.required...); err != nil {
		return "", err
	}

	content, err := p.RequireString("yamlContent")
	if err != nil {
		return "", err
	}

	rules, err := serializer.Parse(content)
	if err != nil {
		return fmt.Sprintf("%s\n- %s\n", validationFailed, err.Error()), nil
	}

	return summarize(c.linter.Lint(rules)), nil
}

func summarize(result lint.Result) string {
	var b strings.Builder

	if result.Valid() {
		b.WriteString(validationPassed)
	} else {
		b.WriteString(validationFailed)
	}
	fmt.Fprintf(&b, " (%d %s checked", result.Rules, plural(result.Rules, "rule", "rules"))
	if result.Errors > 0 {
		fmt.Fprintf(&b, ", %d %s", result.Errors, plural(result.Errors, "error", "errors"))
	}
	if result.Warnings > 0 {
		fmt.Fprintf(&b, ", %d %s", result.Warnings, plural(result.Warnings, "warning", "warnings"))
	}
	b.WriteString(")\n")

	for _, issue := range result.Issues {
		fmt.Fprintf(&b, "- %s\n", issue)
	}

	return b.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
