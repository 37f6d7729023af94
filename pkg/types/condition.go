package types

// ConditionKind is the tag under which a condition appears in a rule's "when" block
type ConditionKind string

const (
	KindJavaReferenced ConditionKind = "java.referenced"
	KindFileContent    ConditionKind = "builtin.filecontent"
	KindFile           ConditionKind = "builtin.file"
	KindXML            ConditionKind = "builtin.xml"
	KindJSON           ConditionKind = "builtin.json"
)

// AllConditionKinds returns every condition tag scribe can emit
func AllConditionKinds() []ConditionKind {
	return []ConditionKind{KindJavaReferenced, KindFileContent, KindFile, KindXML, KindJSON}
}

// ConditionKindNames returns the condition tags as strings
func ConditionKindNames() []string {
	kinds := AllConditionKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

// Condition is the match criterion of a rule. The implementations below are
// the complete set; the unexported method keeps it closed.
type Condition interface {
	Kind() ConditionKind
	isCondition()
}

// JavaReferenced matches references to a Java symbol at a given location
type JavaReferenced struct {
	Pattern  string
	Location JavaLocation
	// Annotated is nil unless the caller supplied a non-empty constraint
	Annotated *Annotated
}

// Annotated narrows an ANNOTATION match to specific annotation elements
type Annotated struct {
	Pattern  *string
	Elements []AnnotationElement
}

// AnnotationElement is a name/value pair; at least one side is set
type AnnotationElement struct {
	Name  *string
	Value *string
}

// IsEmpty reports whether the constraint carries no pattern and no elements
func (a *Annotated) IsEmpty() bool {
	return a == nil || (a.Pattern == nil && len(a.Elements) == 0)
}

// FileContent matches file contents in files whose name matches FilePattern
type FileContent struct {
	Pattern     string
	FilePattern string
}

// File matches files by name
type File struct {
	Pattern string
}

// QueryKind selects the document flavour of a StructuredQuery
type QueryKind string

const (
	QueryXML  QueryKind = "xml"
	QueryJSON QueryKind = "json"
)

// StructuredQuery matches XML or JSON documents with an XPath-shaped expression
type StructuredQuery struct {
	QueryKind QueryKind
	XPath     string
	// Namespaces maps prefixes used in XPath to URIs. XML only.
	Namespaces map[string]string
	Filepaths  []string
}

func (*JavaReferenced) Kind() ConditionKind { return KindJavaReferenced }
func (*FileContent) Kind() ConditionKind    { return KindFileContent }
func (*File) Kind() ConditionKind           { return KindFile }

func (q *StructuredQuery) Kind() ConditionKind {
	if q.QueryKind == QueryJSON {
		return KindJSON
	}
	return KindXML
}

func (*JavaReferenced) isCondition()  {}
func (*FileContent) isCondition()     {}
func (*File) isCondition()            {}
func (*StructuredQuery) isCondition() {}

// StringPtr returns a pointer to s, for the optional annotation fields
func StringPtr(s string) *string {
	return &s
}
