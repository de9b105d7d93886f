package maven

import (
	"regexp"
	"strings"
)

var propertyPattern = regexp.MustCompile(`\$\{([^{}]+)\}`)

// HasPropertyReference returns true if s references a property
func HasPropertyReference(s string) bool {
	return propertyPattern.MatchString(s)
}

// Substitute replaces known ${name} references, unknown ones are kept as is
func Substitute(s string, properties map[string]string) string {
	if !strings.Contains(s, "${") {
		return s
	}
	return propertyPattern.ReplaceAllStringFunc(s, func(ref string) string {
		name := ref[2 : len(ref)-1]
		if value, ok := properties[name]; ok {
			return value
		}
		return ref
	})
}
