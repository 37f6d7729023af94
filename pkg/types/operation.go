package types

// Operation identifies the command a dispatch request targets
type Operation string

const (
	OpCreateJavaClassRule   Operation = "CREATE_JAVA_CLASS_RULE"
	OpCreateFileContentRule Operation = "CREATE_FILE_CONTENT_RULE"
	OpCreateFileRule        Operation = "CREATE_FILE_RULE"
	OpCreateXMLRule         Operation = "CREATE_XML_RULE"
	OpCreateJSONRule        Operation = "CREATE_JSON_RULE"
	OpValidateRule          Operation = "VALIDATE_RULE"
	OpGetHelp               Operation = "GET_HELP"
)

var allOperations = []Operation{
	OpCreateJavaClassRule,
	OpCreateFileContentRule,
	OpCreateFileRule,
	OpCreateXMLRule,
	OpCreateJSONRule,
	OpValidateRule,
	OpGetHelp,
}

// AllOperations returns every known operation in a fixed order.
// Listings of available operations follow this order.
func AllOperations() []Operation {
	out := make([]Operation, len(allOperations))
	copy(out, allOperations)
	return out
}

// ParseOperation looks up an operation by its exact, case-sensitive name
func ParseOperation(name string) (Operation, bool) {
	for _, op := range allOperations {
		if string(op) == name {
			return op, true
		}
	}
	return "", false
}

func (o Operation) String() string {
	return string(o)
}
