// Package types defines the rule model shared throughout scribe.
// This includes the Rule document, the Condition variants it carries
// (java.referenced, builtin.filecontent, builtin.file, builtin.xml,
// builtin.json) and the enumerations used to build them: Category,
// JavaLocation and Operation.
package types
