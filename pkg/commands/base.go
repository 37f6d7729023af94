package commands

import (
	"strings"

	"github.com/sshaaf/scribe/pkg/params"
	"github.com/sshaaf/scribe/pkg/serializer"
	"github.com/sshaaf/scribe/pkg/types"
)

// baseRule reads the fields every rule-creating operation shares. The
// condition and description are left for the caller.
func baseRule(p params.Payload) (*types.Rule, error) {
	ruleID, err := p.RequireString("ruleID")
	if err != nil {
		return nil, err
	}

	message, err := p.RequireString("message")
	if err != nil {
		return nil, err
	}

	category, err := p.RequireEnum("category", types.CategoryNames())
	if err != nil {
		return nil, err
	}

	effort, err := p.RequireIntInRange("effort", types.MinEffort, types.MaxEffort)
	if err != nil {
		return nil, err
	}

	rule := &types.Rule{
		RuleID:   ruleID,
		Message:  message,
		Category: types.Category(category),
		Effort:   effort,
	}

	if description, ok, err := p.OptionalString("description"); err != nil {
		return nil, err
	} else if ok && strings.TrimSpace(description) != "" {
		rule.Description = description
	}

	if rule.Labels, _, err = p.OptionalStrings("labels"); err != nil {
		return nil, err
	}
	if rule.Tags, err = optionalSet(p, "tags"); err != nil {
		return nil, err
	}
	if rule.CustomVariables, err = optionalSet(p, "customVariables"); err != nil {
		return nil, err
	}

	links, _, err := p.OptionalObjects("links")
	if err != nil {
		return nil, err
	}
	for _, link := range links {
		title, err := link.RequireString("title")
		if err != nil {
			return nil, err
		}
		url, err := link.RequireString("url")
		if err != nil {
			return nil, err
		}
		rule.Links = append(rule.Links, types.Link{Title: title, URL: url})
	}

	return rule, nil
}

// optionalSet reads a string list and drops repeated entries, keeping the
// first occurrence of each
func optionalSet(p params.Payload, key string) ([]string, error) {
	values, _, err := p.OptionalStrings(key)
	if err != nil || len(values) == 0 {
		return values, err
	}
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out, nil
}

// finish fills in the derived description and renders the rule
func finish(rule *types.Rule, cond types.Condition, description string) (string, error) {
	rule.When = cond
	if rule.Description == "" {
		rule.Description = description
	}
	return serializer.Serialize(rule)
}
