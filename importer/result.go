package importer

import (
	"strings"

	"github.com/viant/javaimports/info"
)

// Result holds the imports to add to a file
type Result struct {
	// Complete is false when some identifiers or superclasses could not be found
	Complete bool
	// Fixes are sorted imports to add
	Fixes []info.Import
	// Unresolved holds identifiers no import was found for
	Unresolved info.IdentifierSet
}

func complete() *Result {
	return &Result{Complete: true, Unresolved: info.IdentifierSet{}}
}

// Statements renders fixes as import statements, one per line
func (r *Result) Statements() string {
	var sb strings.Builder
	for i, fix := range r.Fixes {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(fix.Statement())
	}
	return sb.String()
}
