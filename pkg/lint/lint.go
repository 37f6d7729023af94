// Package lint checks parsed rules for structural mistakes before they are
// handed to the analyzer.
package lint

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/beevik/etree"
	"github.com/go-playground/validator/v10"
	"github.com/gobwas/glob"
	"github.com/sshaaf/scribe/pkg/types"
)

// Severity of a lint issue
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Issue is a single problem found in a rule
type Issue struct {
	RuleID   string
	Field    string
	Severity Severity
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s [%s] %s: %s", i.Severity, i.RuleID, i.Field, i.Message)
}

// Result contains all issues found during linting
type Result struct {
	Rules    int
	Issues   []Issue
	Errors   int
	Warnings int
}

// Valid reports whether no error-level issue was found
func (r Result) Valid() bool {
	return r.Errors == 0
}

// Linter validates rules for common mistakes
type Linter struct {
	validate *validator.Validate
}

// NewLinter creates a new rule linter
func NewLinter() *Linter {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Linter{validate: v}
}

// Lint validates a list of rules and returns all issues found
func (l *Linter) Lint(rules []types.Rule) Result {
	result := Result{Rules: len(rules)}
	seen := make(map[string]bool)

	add := func(issues ...Issue) {
		for _, issue := range issues {
			result.Issues = append(result.Issues, issue)
			switch issue.Severity {
			case SeverityError:
				result.Errors++
			case SeverityWarning:
				result.Warnings++
			}
		}
	}

	for i := range rules {
		rule := &rules[i]
		id := ruleName(rule, i)

		if rule.RuleID != "" {
			if seen[rule.RuleID] {
				add(Issue{RuleID: id, Field: "ruleID", Severity: SeverityError, Message: "duplicate rule ID"})
			}
			seen[rule.RuleID] = true
		}

		add(l.lintStruct(id, rule)...)
		add(lintCondition(id, rule.When)...)
	}

	return result
}

func ruleName(rule *types.Rule, index int) string {
	if rule.RuleID == "" {
		return fmt.Sprintf("#%d", index+1)
	}
	return rule.RuleID
}

func (l *Linter) lintStruct(id string, rule *types.Rule) []Issue {
	err := l.validate.Struct(rule)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Issue{{RuleID: id, Field: "rule", Severity: SeverityError, Message: err.Error()}}
	}

	var issues []Issue
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Rule.")
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "oneof":
			msg = fmt.Sprintf("must be one of %s", strings.ToLower(strings.Join(types.CategoryNames(), ", ")))
		case "min", "max":
			msg = fmt.Sprintf("must be between %d and %d, got %v", types.MinEffort, types.MaxEffort, fe.Value())
		default:
			msg = fmt.Sprintf("failed %s validation", fe.Tag())
		}
		issues = append(issues, Issue{RuleID: id, Field: field, Severity: SeverityError, Message: msg})
	}
	return issues
}

func lintCondition(id string, cond types.Condition) []Issue {
	var issues []Issue
	errorf := func(field, format string, args ...interface{}) {
		issues = append(issues, Issue{RuleID: id, Field: field, Severity: SeverityError, Message: fmt.Sprintf(format, args...)})
	}

	switch c := cond.(type) {
	case nil:
		errorf("when", "a condition is required")
	case *types.JavaReferenced:
		field := "when." + string(types.KindJavaReferenced)
		if strings.TrimSpace(c.Pattern) == "" {
			errorf(field+".pattern", "is required")
		}
		if _, ok := types.ParseJavaLocation(string(c.Location)); !ok {
			errorf(field+".location", "must be one of %s", strings.Join(types.JavaLocationNames(), ", "))
		}
		if c.Annotated != nil {
			issues = append(issues, lintAnnotated(id, field+".annotated", c)...)
		}
	case *types.FileContent:
		field := "when." + string(types.KindFileContent)
		if strings.TrimSpace(c.Pattern) == "" {
			errorf(field+".pattern", "is required")
		} else {
			issues = append(issues, lintRegexp(id, field+".pattern", c.Pattern)...)
		}
		if strings.TrimSpace(c.FilePattern) == "" {
			errorf(field+".filePattern", "is required")
		} else {
			issues = append(issues, lintFilePattern(id, field+".filePattern", c.FilePattern)...)
		}
	case *types.File:
		field := "when." + string(types.KindFile)
		if strings.TrimSpace(c.Pattern) == "" {
			errorf(field+".pattern", "is required")
		} else {
			issues = append(issues, lintFilePattern(id, field+".pattern", c.Pattern)...)
		}
	case *types.StructuredQuery:
		field := "when." + string(c.Kind())
		if strings.TrimSpace(c.XPath) == "" {
			errorf(field+".xpath", "is required")
		} else {
			issues = append(issues, lintXPath(id, field+".xpath", c.XPath)...)
		}
		for i, p := range c.Filepaths {
			if strings.TrimSpace(p) == "" {
				errorf(fmt.Sprintf("%s.filepaths[%d]", field, i), "must not be empty")
			}
		}
	default:
		errorf("when", "unsupported condition %T", cond)
	}

	return issues
}

func lintAnnotated(id, field string, c *types.JavaReferenced) []Issue {
	var issues []Issue
	if c.Location != types.LocationAnnotation {
		issues = append(issues, Issue{
			RuleID:   id,
			Field:    field,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("only applies to location ANNOTATION, rule uses %s", c.Location),
		})
	}
	for i, el := range c.Annotated.Elements {
		if el.Name == nil && el.Value == nil {
			issues = append(issues, Issue{
				RuleID:   id,
				Field:    fmt.Sprintf("%s.elements[%d]", field, i),
				Severity: SeverityError,
				Message:  "needs a name, a value, or both",
			})
		}
	}
	return issues
}

func lintRegexp(id, field, pattern string) []Issue {
	if _, err := regexp.Compile(pattern); err != nil {
		return []Issue{{RuleID: id, Field: field, Severity: SeverityWarning, Message: fmt.Sprintf("not a valid regular expression: %v", err)}}
	}
	return nil
}

// lintFilePattern accepts anything the analyzer could read as either a
// regular expression or a glob
func lintFilePattern(id, field, pattern string) []Issue {
	if _, err := regexp.Compile(pattern); err == nil {
		return nil
	}
	if _, err := glob.Compile(pattern, '/'); err == nil {
		return nil
	}
	return []Issue{{RuleID: id, Field: field, Severity: SeverityWarning, Message: "neither a valid regular expression nor a valid glob"}}
}

// lintXPath flags expressions outside the simple path subset. The analyzer
// accepts full XPath 1.0, so this is informational only.
func lintXPath(id, field, expr string) []Issue {
	if _, err := etree.CompilePath(expr); err != nil {
		return []Issue{{RuleID: id, Field: field, Severity: SeverityInfo, Message: fmt.Sprintf("uses XPath beyond simple paths (%v); check it against the analyzer", err)}}
	}
	return nil
}
