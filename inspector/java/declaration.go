package java

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/javaimports/info"
)

// Range locates a byte span in the source
type Range struct {
	Start int
	End   int
}

// Import is an import declaration with its location
type Import struct {
	info.Import
	Wildcard bool
	Range    Range
}

var typeDeclarations = map[string]bool{
	"class_declaration":           true,
	"interface_declaration":       true,
	"enum_declaration":            true,
	"record_declaration":          true,
	"annotation_type_declaration": true,
}

// parsePackageDeclaration extracts the package name from a Java source file
func parsePackageDeclaration(node *sitter.Node, source []byte) (info.Selector, bool) {
	if node.Type() != "package_declaration" {
		return info.Selector{}, false
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "scoped_identifier", "identifier":
			selector, err := info.ParseSelector(compact(child.Content(source)))
			return selector, err == nil
		}
	}
	return info.Selector{}, false
}

// parseImportDeclaration extracts an import declaration, wildcard imports keep the imported scope
func parseImportDeclaration(node *sitter.Node, source []byte) (*Import, bool) {
	if node.Type() != "import_declaration" {
		return nil, false
	}
	text := strings.TrimSpace(node.Content(source))
	text = strings.TrimSuffix(strings.TrimPrefix(text, "import"), ";")
	fields := strings.Fields(text)
	static := len(fields) > 0 && fields[0] == "static"
	if static {
		fields = fields[1:]
	}
	path := strings.Join(fields, "")
	wildcard := strings.HasSuffix(path, ".*")
	path = strings.TrimSuffix(path, ".*")
	selector, err := info.ParseSelector(path)
	if err != nil {
		return nil, false
	}
	return &Import{
		Import:   info.NewImport(selector, static),
		Wildcard: wildcard,
		Range:    Range{Start: int(node.StartByte()), End: int(node.EndByte())},
	}, true
}

// typeSelector returns the selector of a type reference without type arguments
func typeSelector(node *sitter.Node, source []byte) (info.Selector, bool) {
	if node == nil {
		return info.Selector{}, false
	}
	if node.Type() == "generic_type" && node.NamedChildCount() > 0 {
		return typeSelector(node.NamedChild(0), source)
	}
	text := compact(node.Content(source))
	if index := strings.Index(text, "<"); index != -1 {
		text = text[:index]
	}
	selector, err := info.ParseSelector(text)
	return selector, err == nil
}

func compact(text string) string {
	return strings.Join(strings.Fields(text), "")
}
