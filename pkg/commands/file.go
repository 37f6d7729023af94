package commands

import (
	"fmt"

	"github.com/sshaaf/scribe/pkg/params"
	"github.com/sshaaf/scribe/pkg/types"
)

// FileContentRule builds builtin.filecontent rules
type FileContentRule struct {
	metadata
}

func NewFileContentRule() *FileContentRule {
	return &FileContentRule{metadata{
		op:          types.OpCreateFileContentRule,
		required:    []string{"ruleID", "filePattern", "contentPattern", "message", "category", "effort"},
		description: "Create a rule that searches file contents with a regular expression, limited to files whose name matches filePattern.",
		example: `{
  "ruleID": "properties-javax-persistence-001",
  "filePattern": ".*\\.properties",
  "contentPattern": "javax\\.persistence\\.",
  "message": "Rename javax.persistence properties to jakarta.persistence",
  "category": "MANDATORY",
  "effort": 1
}`,
	}}
}

func (c *FileContentRule) Execute(p params.Payload) (string, error) {
	if err := p.RequireFields(c.required...); err != nil {
		return "", err
	}

	rule, err := baseRule(p)
	if err != nil {
		return "", err
	}

	filePattern, err := p.RequireString("filePattern")
	if err != nil {
		return "", err
	}
	contentPattern, err := p.RequireString("contentPattern")
	if err != nil {
		return "", err
	}

	cond := &types.FileContent{Pattern: contentPattern, FilePattern: filePattern}
	return finish(rule, cond, fmt.Sprintf("Detects file content: %s", contentPattern))
}

// FileRule builds builtin.file rules
type FileRule struct {
	metadata
}

func NewFileRule() *FileRule {
	return &FileRule{metadata{
		op:          types.OpCreateFileRule,
		required:    []string{"ruleID", "filePattern", "message", "category", "effort"},
		description: "Create a rule that matches files by name, for example a configuration file that must be migrated or removed.",
		example: `{
  "ruleID": "weblogic-descriptor-001",
  "filePattern": "weblogic.xml",
  "message": "WebLogic deployment descriptors are not supported on the target platform",
  "category": "OPTIONAL",
  "effort": 3
}`,
	}}
}

func (c *FileRule) Execute(p params.Payload) (string, error) {
	if err := p.RequireFields(c.required...); err != nil {
		return "", err
	}

	rule, err := baseRule(p)
	if err != nil {
		return "", err
	}

	filePattern, err := p.RequireString("filePattern")
	if err != nil {
		return "", err
	}

	return finish(rule, &types.File{Pattern: filePattern}, fmt.Sprintf("Detects file: %s", filePattern))
}
