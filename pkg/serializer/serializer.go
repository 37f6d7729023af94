// Package serializer renders rules into the canonical YAML ruleset format and
// parses that format back into the rule model.
//
// Output is deterministic: keys are emitted in a fixed order (ruleID,
// description, message, category, effort, labels, links, tag,
// customVariables, when), empty optional fields are left out, and maps are
// written with sorted keys. Each document is a YAML sequence so the text can
// be dropped straight into a ruleset file.
package serializer

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/sshaaf/scribe/pkg/errors"
	"github.com/sshaaf/scribe/pkg/types"
	"gopkg.in/yaml.v3"
)

const indent = 2

// Serialize renders a single rule as a one-element ruleset
func Serialize(rule *types.Rule) (string, error) {
	return SerializeAll([]*types.Rule{rule})
}

// SerializeAll renders rules in the given order as one ruleset
func SerializeAll(rules []*types.Rule) (string, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, rule := range rules {
		node, err := ruleNode(rule)
		if err != nil {
			return "", err
		}
		seq.Content = append(seq.Content, node)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{seq}}); err != nil {
		return "", errors.Wrap(err, errors.ErrSerialization, "failed to encode rule document")
	}
	if err := enc.Close(); err != nil {
		return "", errors.Wrap(err, errors.ErrSerialization, "failed to encode rule document")
	}
	return buf.String(), nil
}

func ruleNode(rule *types.Rule) (*yaml.Node, error) {
	if err := rule.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.ErrSerialization, "rule violates document invariants")
	}

	m := newMapping()
	m.str("ruleID", rule.RuleID)
	if rule.Description != "" {
		m.str("description", rule.Description)
	}
	m.str("message", rule.Message)
	m.str("category", rule.Category.RuleValue())
	m.int("effort", rule.Effort)
	m.strs("labels", rule.Labels)
	if len(rule.Links) > 0 {
		links := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, link := range rule.Links {
			l := newMapping()
			l.str("title", link.Title)
			l.str("url", link.URL)
			links.Content = append(links.Content, l.node)
		}
		m.add("links", links)
	}
	m.strs("tag", rule.Tags)
	m.strs("customVariables", rule.CustomVariables)

	when, err := conditionNode(rule.RuleID, rule.When)
	if err != nil {
		return nil, err
	}
	m.add("when", when)
	return m.node, nil
}

func conditionNode(ruleID string, cond types.Condition) (*yaml.Node, error) {
	body := newMapping()

	switch c := cond.(type) {
	case *types.JavaReferenced:
		if c == nil {
			return nil, nilCondition(ruleID)
		}
		body.str("pattern", c.Pattern)
		body.str("location", string(c.Location))
		if !c.Annotated.IsEmpty() {
			body.add("annotated", annotatedNode(c.Annotated))
		}
	case *types.FileContent:
		if c == nil {
			return nil, nilCondition(ruleID)
		}
		body.str("pattern", c.Pattern)
		body.str("filePattern", c.FilePattern)
	case *types.File:
		if c == nil {
			return nil, nilCondition(ruleID)
		}
		body.str("pattern", c.Pattern)
	case *types.StructuredQuery:
		if c == nil {
			return nil, nilCondition(ruleID)
		}
		body.str("xpath", c.XPath)
		if c.QueryKind == types.QueryXML {
			body.strMap("namespaces", c.Namespaces)
		}
		body.strs("filepaths", c.Filepaths)
	default:
		return nil, errors.Newf(errors.ErrSerialization, "rule %s has an unsupported condition %T", ruleID, cond)
	}

	when := newMapping()
	when.add(string(cond.Kind()), body.node)
	return when.node, nil
}

func annotatedNode(a *types.Annotated) *yaml.Node {
	m := newMapping()
	if a.Pattern != nil {
		m.str("pattern", *a.Pattern)
	}
	if len(a.Elements) > 0 {
		elements := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, el := range a.Elements {
			e := newMapping()
			if el.Name != nil {
				e.str("name", *el.Name)
			}
			if el.Value != nil {
				e.str("value", *el.Value)
			}
			elements.Content = append(elements.Content, e.node)
		}
		m.add("elements", elements)
	}
	return m.node
}

func nilCondition(ruleID string) error {
	return errors.Newf(errors.ErrSerialization, "rule %s has a nil condition", ruleID)
}

// mapping builds a mapping node keeping insertion order
type mapping struct {
	node *yaml.Node
}

func newMapping() *mapping {
	return &mapping{node: &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}}
}

func (m *mapping) add(key string, value *yaml.Node) {
	m.node.Content = append(m.node.Content, strNode(key), value)
}

func (m *mapping) str(key, value string) {
	m.add(key, strNode(value))
}

// readsBack reports whether n, emitted as a mapping value, decodes to the
// same string
func readsBack(n *yaml.Node) bool {
	doc := newMapping()
	doc.add("v", n)
	out, err := yaml.Marshal(doc.node)
	if err != nil {
		return false
	}
	var back struct {
		V string `yaml:"v"`
	}
	if err := yaml.Unmarshal(out, &back); err != nil {
		return false
	}
	return back.V == n.Value
}

func (m *mapping) int(key string, value int) {
	m.add(key, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(value)})
}

func (m *mapping) strs(key string, values []string) {
	if len(values) == 0 {
		return
	}
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, v := range values {
		seq.Content = append(seq.Content, strNode(v))
	}
	m.add(key, seq)
}

func (m *mapping) strMap(key string, values map[string]string) {
	if len(values) == 0 {
		return
	}
	sub := newMapping()
	for _, k := range sortedKeys(values) {
		sub.str(k, values[k])
	}
	m.add(key, sub.node)
}

// strNode writes multi-line values as literal blocks so embedded formatting
// survives untouched. Values a literal block cannot carry, such as a first
// line indented with a tab, are double-quoted instead.
func strNode(value string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
	if strings.Contains(value, "\n") {
		n.Style = yaml.LiteralStyle
		if !readsBack(n) {
			n.Style = yaml.DoubleQuotedStyle
		}
	}
	return n
}
