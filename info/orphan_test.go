package info

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrphanClass_AddParent(t *testing.T) {
	grandParent := UnresolvedSuperclass(MustParseSelector("Base"))
	parent := NewClassEntityBuilder(MustParseSelector("com.a.Parent")).Declare("a", "b").Extends(grandParent).Build()
	orphan := NewOrphanClass(MustParseSelector("Child"), NewIdentifierSet("a", "b", "c"), UnresolvedSuperclass(MustParseSelector("Parent")))

	actual := orphan.AddParent(parent)
	assert.EqualValues(t, []Identifier{"c"}, actual.Unresolved.Sorted())
	assert.Equal(t, grandParent, actual.Parent)
	assert.True(t, actual.NeedsParent())
	assert.EqualValues(t, []Identifier{"a", "b", "c"}, orphan.Unresolved.Sorted(), "orphan must not be mutated")
}

func TestOrphans(t *testing.T) {
	orphans := NewOrphans(
		NewOrphanClass(MustParseSelector("A"), NewIdentifierSet("x", "y"), UnresolvedSuperclass(MustParseSelector("P"))),
		NewOrphanClass(MustParseSelector("B"), NewIdentifierSet("z"), nil),
	)
	assert.True(t, orphans.NeedsParents())
	assert.EqualValues(t, []int{0}, orphans.Pending())
	orphans.AddDeclarations(NewIdentifierSet("x", "y"))
	assert.False(t, orphans.NeedsParents())
	assert.EqualValues(t, []Identifier{"z"}, orphans.Unresolved().Sorted())
}

func TestSuperclass(t *testing.T) {
	s := UnresolvedSuperclass(MustParseSelector("Parent"))
	assert.False(t, s.IsResolved())
	resolved := s.Resolve(MustParseImport("com.a.Parent"))
	assert.True(t, resolved.IsResolved())
	assert.Equal(t, "com.a.Parent", resolved.Unresolved().String())
	again := resolved.Resolve(MustParseImport("com.b.Parent"))
	assert.Equal(t, "com.a.Parent", again.Unresolved().String())
}
