package candidate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/javaimports/candidate"
	"github.com/viant/javaimports/info"
)

func provider(paths ...string) candidate.ImportProvider {
	return candidate.ImportProviderFunc(func(id info.Identifier) []info.Import {
		var ret []info.Import
		for _, p := range paths {
			i := info.MustParseImport(p)
			for _, segment := range i.Selector.Segments() {
				if segment == id {
					ret = append(ret, i)
					break
				}
			}
		}
		return ret
	})
}

func TestFinder_Find(t *testing.T) {
	finder := candidate.NewFinder()
	finder.Add(candidate.Stdlib, provider("java.util.List", "java.awt.List"))
	finder.Add(candidate.External, provider("com.app.Outer.Inner", "org.lib.List"))

	t.Run("matches trailing segment", func(t *testing.T) {
		sel := info.MustParseSelector("List")
		got := finder.Find(sel).For(sel)
		assert.EqualValues(t, []candidate.Candidate{
			{Import: info.MustParseImport("java.util.List"), Source: candidate.Stdlib},
			{Import: info.MustParseImport("java.awt.List"), Source: candidate.Stdlib},
			{Import: info.MustParseImport("org.lib.List"), Source: candidate.External},
		}, got)
	})

	t.Run("truncates to first identifier", func(t *testing.T) {
		sel := info.MustParseSelector("Outer.Inner")
		got := finder.Find(sel).For(sel)
		require.Len(t, got, 1)
		assert.Equal(t, "com.app.Outer", got[0].Import.String())
	})

	t.Run("no match is empty", func(t *testing.T) {
		sel := info.MustParseSelector("Missing")
		found := finder.Find(sel)
		assert.Empty(t, found.For(sel))
		assert.True(t, found.Empty())
	})
}

func candidatesOf(selector string, list ...candidate.Candidate) *candidate.Candidates {
	ret := candidate.New()
	ret.Add(info.MustParseSelector(selector), list...)
	return ret
}

func c(path string, source candidate.Source) candidate.Candidate {
	return candidate.Candidate{Import: info.MustParseImport(path), Source: source}
}

func TestBasic_SelectBest(t *testing.T) {
	pkg := info.MustParseSelector("com.app.service")
	var testCases = []struct {
		description string
		candidates  *candidate.Candidates
		selector    string
		expect      string
	}{
		{
			description: "sibling wins over stdlib and external",
			candidates:  candidatesOf("List", c("org.lib.List", candidate.External), c("java.util.List", candidate.Stdlib), c("com.app.List", candidate.Sibling)),
			selector:    "List",
			expect:      "com.app.List",
		},
		{
			description: "stdlib wins over external",
			candidates:  candidatesOf("List", c("org.lib.List", candidate.External), c("java.util.List", candidate.Stdlib)),
			selector:    "List",
			expect:      "java.util.List",
		},
		{
			description: "shortest stdlib path",
			candidates:  candidatesOf("Entry", c("java.util.Map.Entry", candidate.Stdlib), c("java.security.Entry", candidate.Stdlib)),
			selector:    "Entry",
			expect:      "java.security.Entry",
		},
		{
			description: "java.util among equal stdlib paths",
			candidates:  candidatesOf("List", c("java.awt.List", candidate.Stdlib), c("java.util.List", candidate.Stdlib)),
			selector:    "List",
			expect:      "java.util.List",
		},
		{
			description: "stdlib first remaining without java.util",
			candidates:  candidatesOf("Date", c("java.sql.Date", candidate.Stdlib), c("java.time.Date", candidate.Stdlib)),
			selector:    "Date",
			expect:      "java.sql.Date",
		},
		{
			description: "closest external package",
			candidates:  candidatesOf("Client", c("net.other.http.Client", candidate.External), c("com.app.http.Client", candidate.External)),
			selector:    "Client",
			expect:      "com.app.http.Client",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			best, err := candidate.Basic(pkg).SelectBest(testCase.candidates)
			require.NoError(t, err)
			got, ok := best.For(info.MustParseSelector(testCase.selector))
			require.True(t, ok)
			assert.Equal(t, testCase.expect, got.String())
		})
	}
}

func TestBasic_NoCandidate(t *testing.T) {
	best, err := candidate.Basic(info.MustParseSelector("a")).SelectBest(candidatesOf("Missing"))
	require.NoError(t, err)
	_, ok := best.For(info.MustParseSelector("Missing"))
	assert.False(t, ok)
	assert.Equal(t, 0, best.Len())
}

func TestCommonScope(t *testing.T) {
	candidates := candidate.New()
	candidates.Add(info.MustParseSelector("Foo"), c("org.b.Foo", candidate.External))
	candidates.Add(info.MustParseSelector("Bar"), c("org.b.Bar", candidate.External))
	candidates.Add(info.MustParseSelector("Baz"), c("org.a.Baz", candidate.External), c("org.b.Baz", candidate.External))
	candidates.Add(info.MustParseSelector("Qux"), c("org.z.Qux", candidate.External), c("org.y.Qux", candidate.External))

	filtered, err := candidate.CommonScope(candidates)
	require.NoError(t, err)
	assert.EqualValues(t, []candidate.Candidate{c("org.b.Baz", candidate.External)}, filtered.For(info.MustParseSelector("Baz")))
	assert.EqualValues(t, []candidate.Candidate{c("org.y.Qux", candidate.External), c("org.z.Qux", candidate.External)}, filtered.For(info.MustParseSelector("Qux")))
	assert.Len(t, filtered.For(info.MustParseSelector("Foo")), 1)
}

func TestBySource(t *testing.T) {
	filtered, err := candidate.BySource(candidate.External)(candidatesOf("List", c("java.util.List", candidate.Stdlib), c("org.lib.List", candidate.External)))
	require.NoError(t, err)
	assert.EqualValues(t, []candidate.Candidate{c("org.lib.List", candidate.External)}, filtered.For(info.MustParseSelector("List")))
}

func TestContractViolation(t *testing.T) {
	var testCases = []struct {
		description string
		filter      candidate.Filter
		candidates  *candidate.Candidates
	}{
		{
			description: "external filter",
			filter:      candidate.ExternalFilter(info.MustParseSelector("com.app")),
			candidates:  candidatesOf("List", c("org.lib.List", candidate.External), c("java.util.List", candidate.Stdlib)),
		},
		{
			description: "stdlib filter",
			filter:      candidate.StdlibFilter,
			candidates:  candidatesOf("List", c("com.app.List", candidate.Sibling)),
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			_, err := testCase.filter(testCase.candidates)
			require.Error(t, err)
			var contractErr *candidate.ContractError
			assert.True(t, errors.As(err, &contractErr))
		})
	}
}

func TestTakeFirst(t *testing.T) {
	best, err := candidate.TakeFirst().SelectBest(candidatesOf("List", c("org.lib.List", candidate.External), c("java.util.List", candidate.Stdlib)))
	require.NoError(t, err)
	got, ok := best.For(info.MustParseSelector("List"))
	require.True(t, ok)
	assert.Equal(t, "org.lib.List", got.String())
}
