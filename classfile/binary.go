package classfile

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/viant/javaimports/info"
)

var classBoundary = regexp.MustCompile(`\.[A-Z]`)

func separator(bytecode bool) string {
	if bytecode {
		return "/"
	}
	return "."
}

// FromSelector converts a selector to its binary name: com.a.Outer.Inner gives com.a.Outer$Inner,
// or com/a/Outer$Inner in bytecode form.
// A package segment starting with a capital letter is taken for a class, so is the first segment
// of a selector in the default package.
func FromSelector(s info.Selector, bytecode bool) string {
	name := []byte(s.String())
	matches := classBoundary.FindAllIndex(name, -1)
	topLevel := len(name) > 0 && unicode.IsUpper(rune(name[0]))
	if bytecode {
		for i, c := range name {
			if c == '.' {
				name[i] = '/'
			}
		}
	}
	for i, m := range matches {
		if i == 0 && !topLevel {
			continue
		}
		name[m[0]] = '$'
	}
	return string(name)
}

// ToSelector converts a binary name back to a selector, a name without any identifier is an error
func ToSelector(name string, bytecode bool) (info.Selector, error) {
	sep := separator(bytecode)
	parts := strings.Split(strings.ReplaceAll(name, "$", sep), sep)
	ids := make([]info.Identifier, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		ids = append(ids, info.Identifier(part))
	}
	if len(ids) == 0 {
		return info.Selector{}, fmt.Errorf("%w: %q", ErrBadName, name)
	}
	return info.NewSelector(ids...), nil
}

const (
	classSuffix = ".class"
	moduleInfo  = "module-info.class"
	packageInfo = "package-info.class"
)

var anonymous = regexp.MustCompile(`\$[0-9]`)

// IsImportable returns true for archive entries holding an importable class: module and package
// descriptors, anonymous and local classes and nameless entries are not importable
func IsImportable(entry string) bool {
	if !strings.HasSuffix(entry, classSuffix) {
		return false
	}
	if strings.HasSuffix(entry, moduleInfo) || strings.HasSuffix(entry, packageInfo) {
		return false
	}
	if anonymous.MatchString(entry) {
		return false
	}
	_, err := ToImport(entry)
	return err == nil
}

// ToImport converts an archive entry name to an import
func ToImport(entry string) (info.Import, error) {
	selector, err := ToSelector(strings.TrimSuffix(entry, classSuffix), true)
	if err != nil {
		return info.Import{}, err
	}
	return info.NewImport(selector, false), nil
}
