package info

import "sort"

// Import represents a fully resolved import clause
type Import struct {
	Selector Selector
	Static   bool
}

// NewImport creates an import
func NewImport(selector Selector, static bool) Import {
	return Import{Selector: selector, Static: static}
}

// ParseImport creates a non static import from a dotted path
func ParseImport(path string) (Import, error) {
	s, err := ParseSelector(path)
	if err != nil {
		return Import{}, err
	}
	return Import{Selector: s}, nil
}

// MustParseImport is ParseImport that panics on error
func MustParseImport(path string) Import {
	i, err := ParseImport(path)
	if err != nil {
		panic(err)
	}
	return i
}

// Equal compares imports
func (i Import) Equal(o Import) bool {
	return i.Static == o.Static && i.Selector.Equal(o.Selector)
}

// Key returns a comparable representation usable as a map key
func (i Import) Key() string {
	if i.Static {
		return "static " + i.Selector.String()
	}
	return i.Selector.String()
}

// String returns import text
func (i Import) String() string {
	return i.Key()
}

// Statement renders the import as a java statement
func (i Import) Statement() string {
	return "import " + i.Key() + ";"
}

// SortImports orders imports by statement text
func SortImports(imports []Import) {
	sort.Slice(imports, func(i, j int) bool { return imports[i].Key() < imports[j].Key() })
}
