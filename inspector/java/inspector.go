package java

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/viant/javaimports/project"
)

// ErrSyntax reports source code tree-sitter could not fully parse
var ErrSyntax = errors.New("java: syntax error")

// Inspector parses Java source code
type Inspector struct{}

// NewInspector creates a Java Inspector
func NewInspector() *Inspector {
	return &Inspector{}
}

// Parse implements project.Parser
func (i *Inspector) Parse(ctx context.Context, path string, src []byte) (project.ParsedFile, error) {
	return i.InspectSource(ctx, path, src)
}

// InspectSource parses Java source code and extracts declarations, imports and unresolved identifiers
func (i *Inspector) InspectSource(ctx context.Context, path string, src []byte) (*File, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	defer tree.Close()

	rootNode := tree.RootNode()
	if rootNode.HasError() {
		return nil, fmt.Errorf("%s: %w", path, ErrSyntax)
	}
	return i.processJavaFile(rootNode, src, path), nil
}

// processJavaFile extracts package, imports and types from a Java file
func (i *Inspector) processJavaFile(rootNode *sitter.Node, src []byte, path string) *File {
	aFile := &File{path: path}
	seen := map[string]bool{}
	s := newScanner(src)
	for j := 0; j < int(rootNode.NamedChildCount()); j++ {
		childNode := rootNode.NamedChild(j)
		switch childNode.Type() {
		case "package_declaration":
			if pkg, ok := parsePackageDeclaration(childNode, src); ok {
				aFile.pkg = pkg
				aFile.pkgEnd = int(childNode.EndByte())
			}
		case "import_declaration":
			imp, ok := parseImportDeclaration(childNode, src)
			if !ok {
				continue
			}
			key := imp.Key()
			if imp.Wildcard {
				key += ".*"
			}
			if seen[key] {
				aFile.duplicates = append(aFile.duplicates, imp)
				continue
			}
			seen[key] = true
			aFile.imports = append(aFile.imports, imp)
		default:
			if typeDeclarations[childNode.Type()] {
				s.visit(childNode)
			}
		}
	}
	unresolved := s.finish()
	aFile.build(s, unresolved)
	return aFile
}
