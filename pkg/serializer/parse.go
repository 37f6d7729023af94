package serializer

import (
	"sort"
	"strings"

	"github.com/sshaaf/scribe/pkg/errors"
	"github.com/sshaaf/scribe/pkg/types"
	"gopkg.in/yaml.v3"
)

type ruleDoc struct {
	RuleID          string               `yaml:"ruleID"`
	Description     string               `yaml:"description"`
	Message         string               `yaml:"message"`
	Category        string               `yaml:"category"`
	Effort          int                  `yaml:"effort"`
	Labels          []string             `yaml:"labels"`
	Links           []linkDoc            `yaml:"links"`
	Tags            []string             `yaml:"tag"`
	CustomVariables []yaml.Node          `yaml:"customVariables"`
	When            map[string]yaml.Node `yaml:"when"`
}

type linkDoc struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

type javaReferencedDoc struct {
	Pattern   string        `yaml:"pattern"`
	Location  string        `yaml:"location"`
	Annotated *annotatedDoc `yaml:"annotated"`
}

type annotatedDoc struct {
	Pattern  *string `yaml:"pattern"`
	Elements []struct {
		Name  *string `yaml:"name"`
		Value *string `yaml:"value"`
	} `yaml:"elements"`
}

type fileContentDoc struct {
	Pattern     string `yaml:"pattern"`
	FilePattern string `yaml:"filePattern"`
}

type fileDoc struct {
	Pattern string `yaml:"pattern"`
}

type queryDoc struct {
	XPath      string            `yaml:"xpath"`
	Namespaces map[string]string `yaml:"namespaces"`
	Filepaths  []string          `yaml:"filepaths"`
}

// Parse decodes a ruleset (a sequence of rules) or a single rule mapping.
// Missing fields are left empty for the linter to report; structural
// problems such as an unknown condition tag are returned as errors.
func Parse(text string) ([]types.Rule, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(text), &root); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "content is not valid YAML")
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "content is empty")
	}

	doc := root.Content[0]
	var items []*yaml.Node
	switch doc.Kind {
	case yaml.SequenceNode:
		items = doc.Content
	case yaml.MappingNode:
		items = []*yaml.Node{doc}
	default:
		return nil, errors.New(errors.ErrInvalidInput, "content must be a rule or a list of rules")
	}

	rules := make([]types.Rule, 0, len(items))
	for i, item := range items {
		rule, err := decodeRule(item)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "rule #%d", i+1)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func decodeRule(node *yaml.Node) (types.Rule, error) {
	if node.Kind != yaml.MappingNode {
		return types.Rule{}, errors.New(errors.ErrInvalidInput, "rule must be a mapping")
	}

	var doc ruleDoc
	if err := node.Decode(&doc); err != nil {
		return types.Rule{}, err
	}

	rule := types.Rule{
		RuleID:      doc.RuleID,
		Description: doc.Description,
		Message:     doc.Message,
		Category:    types.Category(strings.ToUpper(strings.TrimSpace(doc.Category))),
		Effort:      doc.Effort,
		Labels:      doc.Labels,
		Tags:        doc.Tags,
	}
	for _, l := range doc.Links {
		rule.Links = append(rule.Links, types.Link{Title: l.Title, URL: l.URL})
	}
	for _, cv := range doc.CustomVariables {
		rule.CustomVariables = append(rule.CustomVariables, customVariableName(&cv))
	}

	if len(doc.When) == 0 {
		return rule, nil
	}
	if len(doc.When) > 1 {
		return types.Rule{}, errors.Newf(errors.ErrInvalidInput,
			"rule %s: 'when' must hold exactly one condition, found %s", doc.RuleID, strings.Join(whenKeys(doc.When), ", "))
	}

	for tag, body := range doc.When {
		cond, err := decodeCondition(types.ConditionKind(tag), &body)
		if err != nil {
			return types.Rule{}, errors.Wrapf(err, errors.ErrInvalidInput, "rule %s: condition %s", doc.RuleID, tag)
		}
		rule.When = cond
	}
	return rule, nil
}

func decodeCondition(kind types.ConditionKind, body *yaml.Node) (types.Condition, error) {
	switch kind {
	case types.KindJavaReferenced:
		var d javaReferencedDoc
		if err := body.Decode(&d); err != nil {
			return nil, err
		}
		cond := &types.JavaReferenced{
			Pattern:  d.Pattern,
			Location: types.JavaLocation(strings.ToUpper(strings.TrimSpace(d.Location))),
		}
		if d.Annotated != nil {
			a := &types.Annotated{Pattern: d.Annotated.Pattern}
			for _, el := range d.Annotated.Elements {
				a.Elements = append(a.Elements, types.AnnotationElement{Name: el.Name, Value: el.Value})
			}
			cond.Annotated = a
		}
		return cond, nil
	case types.KindFileContent:
		var d fileContentDoc
		if err := body.Decode(&d); err != nil {
			return nil, err
		}
		return &types.FileContent{Pattern: d.Pattern, FilePattern: d.FilePattern}, nil
	case types.KindFile:
		var d fileDoc
		if err := body.Decode(&d); err != nil {
			return nil, err
		}
		return &types.File{Pattern: d.Pattern}, nil
	case types.KindXML, types.KindJSON:
		var d queryDoc
		if err := body.Decode(&d); err != nil {
			return nil, err
		}
		q := &types.StructuredQuery{QueryKind: types.QueryXML, XPath: d.XPath, Filepaths: d.Filepaths}
		if kind == types.KindJSON {
			q.QueryKind = types.QueryJSON
		} else {
			q.Namespaces = d.Namespaces
		}
		return q, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported condition '%s'. Supported conditions: %s",
			kind, strings.Join(types.ConditionKindNames(), ", ")).
			WithDetail(errors.DetailAccepted, types.ConditionKindNames())
	}
}

// customVariableName accepts both plain names and the analyzer's
// {name: ..., pattern: ...} objects
func customVariableName(n *yaml.Node) string {
	if n.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(n.Content); i += 2 {
			if n.Content[i].Value == "name" {
				return n.Content[i+1].Value
			}
		}
		return ""
	}
	return n.Value
}

func whenKeys(m map[string]yaml.Node) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
