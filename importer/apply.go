package importer

import (
	"sort"

	"github.com/viant/javaimports/inspector/java"
)

type edit struct {
	start  int
	end    int
	insert string
}

// Apply inserts result fixes after the last import, or after the package clause, and removes
// duplicated import declarations
func Apply(src []byte, file *java.File, result *Result) []byte {
	var edits []edit
	if result != nil && len(result.Fixes) > 0 {
		edits = append(edits, insertion(src, file, result.Statements()))
	}
	for _, duplicate := range file.Duplicates() {
		end := duplicate.Range.End
		if end < len(src) && src[end] == '\n' {
			end++
		}
		edits = append(edits, edit{start: duplicate.Range.Start, end: end})
	}
	if len(edits) == 0 {
		return src
	}
	sort.SliceStable(edits, func(i, j int) bool { return edits[i].start > edits[j].start })
	ret := append([]byte(nil), src...)
	for _, e := range edits {
		tail := append([]byte(e.insert), ret[e.end:]...)
		ret = append(ret[:e.start], tail...)
	}
	return ret
}

func insertion(src []byte, file *java.File, statements string) edit {
	last := -1
	for _, i := range file.Imports() {
		if i.Range.End > last {
			last = i.Range.End
		}
	}
	switch {
	case last >= 0:
		return edit{start: last, end: last, insert: "\n" + statements}
	case file.PackageEnd() > 0:
		return edit{start: file.PackageEnd(), end: file.PackageEnd(), insert: "\n\n" + statements}
	default:
		return edit{start: 0, end: 0, insert: statements + "\n\n"}
	}
}
