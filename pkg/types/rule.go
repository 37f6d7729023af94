package types

import (
	"fmt"
)

// Effort bounds
const (
	MinEffort = 1
	MaxEffort = 5
)

// Rule is a single migration rule document
type Rule struct {
	RuleID          string    `json:"ruleID" validate:"required"`
	Description     string    `json:"description,omitempty"`
	Message         string    `json:"message" validate:"required"`
	Category        Category  `json:"category" validate:"required,oneof=MANDATORY OPTIONAL POTENTIAL"`
	Effort          int       `json:"effort" validate:"min=1,max=5"`
	Labels          []string  `json:"labels,omitempty"`
	Links           []Link    `json:"links,omitempty" validate:"dive"`
	Tags            []string  `json:"tag,omitempty"`
	CustomVariables []string  `json:"customVariables,omitempty"`
	When            Condition `json:"when"`
}

// Link points at documentation relevant to the migration
type Link struct {
	Title string `json:"title" validate:"required"`
	URL   string `json:"url" validate:"required"`
}

// Validate checks the invariants every rendered rule must hold
func (r *Rule) Validate() error {
	if r == nil {
		return fmt.Errorf("rule is nil")
	}
	if r.RuleID == "" {
		return fmt.Errorf("rule id is required")
	}
	if r.Message == "" {
		return fmt.Errorf("rule %s: message is required", r.RuleID)
	}
	if _, ok := ParseCategory(string(r.Category)); !ok {
		return fmt.Errorf("rule %s: unknown category %q", r.RuleID, r.Category)
	}
	if r.Effort < MinEffort || r.Effort > MaxEffort {
		return fmt.Errorf("rule %s: effort %d outside %d-%d", r.RuleID, r.Effort, MinEffort, MaxEffort)
	}
	if r.When == nil {
		return fmt.Errorf("rule %s: condition is required", r.RuleID)
	}
	return nil
}
