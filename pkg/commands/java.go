package commands

import (
	"fmt"

	"github.com/sshaaf/scribe/pkg/params"
	"github.com/sshaaf/scribe/pkg/types"
)

// JavaClassRule builds java.referenced rules
type JavaClassRule struct {
	metadata
}

func NewJavaClassRule() *JavaClassRule {
	return &JavaClassRule{metadata{
		op:       types.OpCreateJavaClassRule,
		required: []string{"ruleID", "javaPattern", "location", "message", "category", "effort"},
		description: "Create a rule that detects Java class usage such as deprecated classes, method calls or annotations. " +
			"For the ANNOTATION location an optional 'annotated' object with 'pattern' and 'elements' narrows the match to specific annotation values.",
		example: `{
  "ruleID": "jaxrs-javax-post-to-jakarta-001",
  "javaPattern": "javax.ws.rs.POST",
  "location": "ANNOTATION",
  "message": "## Before\n\nimport javax.ws.rs.POST;\n\n## After\n\nimport jakarta.ws.rs.POST;",
  "category": "MANDATORY",
  "effort": 1,
  "labels": ["konveyor.io/source=javaee", "konveyor.io/target=jakartaee"],
  "links": [{"title": "Jakarta REST (JAX-RS) 3.0", "url": "https://jakarta.ee/specifications/rest/3.0/"}]
}`,
	}}
}

func (c *JavaClassRule) Execute(p params.Payload) (string, error) {
	if err := p.RequireFields(c.required...); err != nil {
		return "", err
	}

	rule, err := baseRule(p)
	if err != nil {
		return "", err
	}

	pattern, err := p.RequireString("javaPattern")
	if err != nil {
		return "", err
	}

	loc, err := p.RequireEnum("location", types.JavaLocationNames())
	if err != nil {
		return "", err
	}
	location := types.JavaLocation(loc)

	annotated, err := annotatedConstraint(p)
	if err != nil {
		return "", err
	}

	cond := &types.JavaReferenced{
		Pattern:   pattern,
		Location:  location,
		Annotated: annotated,
	}
	return finish(rule, cond, fmt.Sprintf("Detects Java %s: %s", location.Words(), pattern))
}

// annotatedConstraint returns nil unless the payload carries an annotated
// block with a pattern or at least one usable element
func annotatedConstraint(p params.Payload) (*types.Annotated, error) {
	block, ok, err := p.OptionalObject("annotated")
	if err != nil || !ok {
		return nil, err
	}

	annotated := &types.Annotated{}

	pattern, ok, err := block.OptionalString("pattern")
	if err != nil {
		return nil, err
	}
	if ok {
		annotated.Pattern = types.StringPtr(pattern)
	}

	elements, _, err := block.OptionalObjects("elements")
	if err != nil {
		return nil, err
	}
	for _, el := range elements {
		var element types.AnnotationElement

		name, ok, err := el.OptionalString("name")
		if err != nil {
			return nil, err
		}
		if ok {
			element.Name = types.StringPtr(name)
		}

		value, ok, err := el.OptionalString("value")
		if err != nil {
			return nil, err
		}
		if ok {
			element.Value = types.StringPtr(value)
		}

		// entries with neither side carry no constraint
		if element.Name == nil && element.Value == nil {
			continue
		}
		annotated.Elements = append(annotated.Elements, element)
	}

	if annotated.IsEmpty() {
		return nil, nil
	}
	return annotated, nil
}
