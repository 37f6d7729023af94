package commands

import (
	"fmt"

	"github.com/sshaaf/scribe/pkg/params"
	"github.com/sshaaf/scribe/pkg/types"
)

// XMLRule builds builtin.xml rules
type XMLRule struct {
	metadata
}

func NewXMLRule() *XMLRule {
	return &XMLRule{metadata{
		op:       types.OpCreateXMLRule,
		required: []string{"ruleID", "xpath", "message", "category", "effort"},
		description: "Create a rule that matches XML documents with an XPath expression. " +
			"Optional 'namespaces' maps prefixes used in the expression to URIs and 'filepaths' limits the files searched.",
		example: `{
  "ruleID": "maven-javax-dependency-001",
  "xpath": "//m:dependency/m:groupId[text()='javax.ws.rs']",
  "namespaces": {"m": "http://maven.apache.org/POM/4.0.0"},
  "filepaths": ["pom.xml"],
  "message": "Replace the javax.ws.rs dependency with jakarta.ws.rs",
  "category": "MANDATORY",
  "effort": 1
}`,
	}}
}

func (c *XMLRule) Execute(p params.Payload) (string, error) {
	if err := p.RequireFields(c.required...); err != nil {
		return "", err
	}

	rule, err := baseRule(p)
	if err != nil {
		return "", err
	}

	query, err := structuredQuery(p, types.QueryXML)
	if err != nil {
		return "", err
	}

	query.Namespaces, _, err = p.OptionalStringMap("namespaces")
	if err != nil {
		return "", err
	}

	return finish(rule, query, fmt.Sprintf("Detects XML: %s", query.XPath))
}

// JSONRule builds builtin.json rules
type JSONRule struct {
	metadata
}

func NewJSONRule() *JSONRule {
	return &JSONRule{metadata{
		op:          types.OpCreateJSONRule,
		required:    []string{"ruleID", "xpath", "message", "category", "effort"},
		description: "Create a rule that matches JSON documents with an XPath-style query. Optional 'filepaths' limits the files searched.",
		example: `{
  "ruleID": "npm-angularjs-001",
  "xpath": "//dependencies/angular",
  "filepaths": ["package.json"],
  "message": "AngularJS is end of life, migrate to Angular",
  "category": "POTENTIAL",
  "effort": 5
}`,
	}}
}

func (c *JSONRule) Execute(p params.Payload) (string, error) {
	if err := p.RequireFields(c.required...); err != nil {
		return "", err
	}

	rule, err := baseRule(p)
	if err != nil {
		return "", err
	}

	query, err := structuredQuery(p, types.QueryJSON)
	if err != nil {
		return "", err
	}

	return finish(rule, query, fmt.Sprintf("Detects JSON: %s", query.XPath))
}

func structuredQuery(p params.Payload, kind types.QueryKind) (*types.StructuredQuery, error) {
	xpath, err := p.RequireString("xpath")
	if err != nil {
		return nil, err
	}

	filepaths, _, err := p.OptionalStrings("filepaths")
	if err != nil {
		return nil, err
	}

	return &types.StructuredQuery{QueryKind: kind, XPath: xpath, Filepaths: filepaths}, nil
}
