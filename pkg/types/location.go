package types

import "strings"

// JavaLocation is the syntactic role a java.referenced pattern must match
type JavaLocation string

const (
	LocationImport              JavaLocation = "IMPORT"
	LocationClass               JavaLocation = "CLASS"
	LocationMethodCall          JavaLocation = "METHOD_CALL"
	LocationConstructorCall     JavaLocation = "CONSTRUCTOR_CALL"
	LocationAnnotation          JavaLocation = "ANNOTATION"
	LocationField               JavaLocation = "FIELD"
	LocationMethod              JavaLocation = "METHOD"
	LocationInheritance         JavaLocation = "INHERITANCE"
	LocationImplementsType      JavaLocation = "IMPLEMENTS_TYPE"
	LocationEnum                JavaLocation = "ENUM"
	LocationReturnType          JavaLocation = "RETURN_TYPE"
	LocationVariableDeclaration JavaLocation = "VARIABLE_DECLARATION"
	LocationType                JavaLocation = "TYPE"
	LocationPackage             JavaLocation = "PACKAGE"
)

var allLocations = []JavaLocation{
	LocationImport,
	LocationClass,
	LocationMethodCall,
	LocationConstructorCall,
	LocationAnnotation,
	LocationField,
	LocationMethod,
	LocationInheritance,
	LocationImplementsType,
	LocationEnum,
	LocationReturnType,
	LocationVariableDeclaration,
	LocationType,
	LocationPackage,
}

// JavaLocationNames returns the accepted location spellings
func JavaLocationNames() []string {
	names := make([]string, 0, len(allLocations))
	for _, l := range allLocations {
		names = append(names, string(l))
	}
	return names
}

// ParseJavaLocation matches s case-insensitively against the known locations
func ParseJavaLocation(s string) (JavaLocation, bool) {
	for _, l := range allLocations {
		if strings.EqualFold(strings.TrimSpace(s), string(l)) {
			return l, true
		}
	}
	return "", false
}

// Words renders the location for prose, e.g. METHOD_CALL -> "method call"
func (l JavaLocation) Words() string {
	return strings.ReplaceAll(strings.ToLower(string(l)), "_", " ")
}
