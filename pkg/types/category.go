package types

import "strings"

// Category classifies how urgently a migration issue must be addressed
type Category string

const (
	CategoryMandatory Category = "MANDATORY"
	CategoryOptional  Category = "OPTIONAL"
	CategoryPotential Category = "POTENTIAL"
)

// AllCategories returns every category in declaration order
func AllCategories() []Category {
	return []Category{CategoryMandatory, CategoryOptional, CategoryPotential}
}

// CategoryNames returns the accepted category spellings
func CategoryNames() []string {
	names := make([]string, 0, 3)
	for _, c := range AllCategories() {
		names = append(names, string(c))
	}
	return names
}

// ParseCategory matches s case-insensitively against the known categories
func ParseCategory(s string) (Category, bool) {
	for _, c := range AllCategories() {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, true
		}
	}
	return "", false
}

// RuleValue returns the lower-case form written into rule documents
func (c Category) RuleValue() string {
	return strings.ToLower(string(c))
}
