package project

import (
	"context"

	"github.com/viant/javaimports/info"
)

// ParsedFile exposes the declarations of a parsed source file
type ParsedFile interface {
	// Package returns the declared package
	Package() info.Selector
	// TopLevelDeclarations returns identifiers declared at file level
	TopLevelDeclarations() info.IdentifierSet
	// FindImports returns imports already present in the file for identifier
	FindImports(identifier info.Identifier) []info.Import
	// FindImportables returns imports reaching classes declared by the file
	FindImportables(identifier info.Identifier) []info.Import
	// FindClass returns a class declared by the file
	FindClass(i info.Import) (*info.ClassEntity, bool)
}

// Parser parses source files
type Parser interface {
	Parse(ctx context.Context, path string, src []byte) (ParsedFile, error)
}

// ParserFunc adapts a function to Parser
type ParserFunc func(ctx context.Context, path string, src []byte) (ParsedFile, error)

// Parse calls fn
func (fn ParserFunc) Parse(ctx context.Context, path string, src []byte) (ParsedFile, error) {
	return fn(ctx, path, src)
}
