package project_test

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/javaimports/info"
	"github.com/viant/javaimports/internal/testkit"
	"github.com/viant/javaimports/project"
	"go.uber.org/goleak"
)

var (
	packagePattern = regexp.MustCompile(`package\s+([\w.]+);`)
	classPattern   = regexp.MustCompile(`class\s+(\w+)`)
	importPattern  = regexp.MustCompile(`import\s+([\w.]+);`)
)

type stubFile struct {
	pkg     info.Selector
	classes []info.Identifier
	imports []info.Import
}

func (s *stubFile) Package() info.Selector { return s.pkg }

func (s *stubFile) TopLevelDeclarations() info.IdentifierSet {
	return info.NewIdentifierSet(s.classes...)
}

func (s *stubFile) FindImports(id info.Identifier) []info.Import {
	var ret []info.Import
	for _, i := range s.imports {
		if i.Selector.Identifier() == id {
			ret = append(ret, i)
		}
	}
	return ret
}

func (s *stubFile) FindImportables(id info.Identifier) []info.Import {
	for _, c := range s.classes {
		if c == id {
			return []info.Import{info.NewImport(s.pkg.Combine(info.NewSelector(c)), false)}
		}
	}
	return nil
}

func (s *stubFile) FindClass(i info.Import) (*info.ClassEntity, bool) {
	for _, c := range s.classes {
		if s.pkg.Combine(info.NewSelector(c)).Equal(i.Selector) {
			return info.NewClassEntityBuilder(i.Selector).Declare("member").Build(), true
		}
	}
	return nil, false
}

type stubParser struct {
	calls atomic.Int32
}

func (p *stubParser) Parse(ctx context.Context, path string, src []byte) (project.ParsedFile, error) {
	p.calls.Add(1)
	match := packagePattern.FindSubmatch(src)
	if match == nil {
		return nil, errors.New("missing package")
	}
	ret := &stubFile{pkg: info.MustParseSelector(string(match[1]))}
	for _, m := range classPattern.FindAllSubmatch(src, -1) {
		ret.classes = append(ret.classes, info.Identifier(m[1]))
	}
	for _, m := range importPattern.FindAllSubmatch(src, -1) {
		ret.imports = append(ret.imports, info.MustParseImport(string(m[1])))
	}
	return ret, nil
}

func writeProject(t *testing.T) string {
	root := t.TempDir()
	testkit.WriteFiles(t, root, map[string]string{
		"app/src/main/java/com/app/Service.java":   "package com.app;\nimport java.util.List;\nclass Service {}",
		"app/src/main/java/com/app/Helper.java":    "package com.app;\nclass Helper {}\nclass Extra {}",
		"app/src/test/java/com/app/Fixture.java":   "package com.app;\nclass Fixture {}",
		"lib/src/main/java/com/lib/Library.java":   "package com.lib;\nclass Library {}",
		"app/target/generated/com/app/Gen.java":    "package com.app;\nclass Gen {}",
		"app/src/main/resources/config.properties": "key=value",
		"tmp/Scratch.java":                         "package scratch;\nclass Scratch {}",
		"app/src/main/java/com/app/Broken.java":    "class Broken {}",
		".gitignore":                               "tmp/\n",
	})
	return root
}

func TestDiscover(t *testing.T) {
	root := writeProject(t)
	fs := afs.New()

	var testCases = []struct {
		description string
		options     []project.DiscoverOption
		expect      []string
	}{
		{
			description: "java files outside build and ignored directories",
			expect: []string{
				"app/src/main/java/com/app/Broken.java",
				"app/src/main/java/com/app/Helper.java",
				"app/src/main/java/com/app/Service.java",
				"app/src/test/java/com/app/Fixture.java",
				"lib/src/main/java/com/lib/Library.java",
			},
		},
		{
			description: "exclusions and skipped file",
			options: []project.DiscoverOption{
				project.WithExclude("**/src/test/**", "app/**/Broken.java"),
				project.WithSkip(filepath.Join(root, "lib/src/main/java/com/lib/Library.java")),
			},
			expect: []string{
				"app/src/main/java/com/app/Helper.java",
				"app/src/main/java/com/app/Service.java",
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			paths, err := project.Discover(context.Background(), fs, root, testCase.options...)
			require.NoError(t, err)
			var actual []string
			for _, p := range paths {
				rel, err := filepath.Rel(root, p)
				require.NoError(t, err)
				actual = append(actual, filepath.ToSlash(rel))
			}
			assert.EqualValues(t, testCase.expect, actual)
		})
	}
}

func TestFile_Inferred(t *testing.T) {
	loader := project.NewLoader(afs.New(), &stubParser{}, nil)
	file := loader.File("/repo/src/main/java/com/app/Service.java", info.Direct)
	assert.Equal(t, project.NotParsed, file.State())
	assert.Equal(t, "com.app", file.Package().String())
	assert.EqualValues(t, []info.Identifier{"Service"}, file.TopLevelDeclarations().Sorted())
	assert.Len(t, file.FindImportables("Service"), 1)
	assert.Empty(t, file.FindImportables("Other"))

	unknown := loader.File("/tmp/Scratch.java", info.Direct)
	assert.True(t, unknown.Package().IsZero())
	assert.Empty(t, unknown.TopLevelDeclarations())
}

func TestIndex_EagerlyParse(t *testing.T) {
	defer goleak.VerifyNone(t)
	root := writeProject(t)
	parser := &stubParser{}
	loader := project.NewLoader(afs.New(), parser, nil)
	direct := loader.Files(info.Direct,
		filepath.Join(root, "app/src/main/java/com/app/Service.java"),
		filepath.Join(root, "app/src/main/java/com/app/Helper.java"),
	)
	transitive := loader.Files(info.Transitive, filepath.Join(root, "lib/src/main/java/com/lib/Library.java"))
	index := project.NewIndex(map[info.Kind][]*project.File{info.Direct: direct, info.Transitive: transitive})

	for _, f := range append(append([]*project.File{}, direct...), transitive...) {
		assert.False(t, f.Parsed(), f.Path)
	}
	assert.Len(t, index.AllFiles(), 2)
	assert.Len(t, index.FilesInPackage(info.MustParseSelector("com.app")), 2)
	assert.Equal(t, int32(0), parser.calls.Load())

	require.NoError(t, index.EagerlyParse(context.Background(), project.NewPool(4)))
	for _, f := range direct {
		assert.True(t, f.Parsed(), f.Path)
	}
	assert.False(t, transitive[0].Parsed())
	assert.Equal(t, int32(2), parser.calls.Load())

	index.IncludeTransitive()
	require.NoError(t, index.EagerlyParse(context.Background(), project.Inline()))
	assert.True(t, transitive[0].Parsed())
	for _, f := range direct {
		assert.True(t, f.Parsed(), f.Path)
	}
	assert.Equal(t, int32(3), parser.calls.Load())

	assert.EqualValues(t, []info.Import{info.MustParseImport("com.app.Extra")}, index.FindImports("Extra"))
	assert.EqualValues(t, []info.Import{info.MustParseImport("java.util.List")}, direct[0].FindImports("List"))
	class, ok := index.FindClass(info.MustParseImport("com.lib.Library"))
	require.True(t, ok)
	assert.True(t, class.Declares("member"))
}

func TestFile_ConcurrentParse(t *testing.T) {
	defer goleak.VerifyNone(t)
	root := writeProject(t)
	parser := &stubParser{}
	loader := project.NewLoader(afs.New(), parser, nil)
	file := loader.File(filepath.Join(root, "app/src/main/java/com/app/Service.java"), info.Direct)

	pool := project.NewPool(8)
	for i := 0; i < 32; i++ {
		pool.Go(func() error {
			<-file.Parse(context.Background())
			return nil
		})
	}
	require.NoError(t, pool.Wait())
	assert.True(t, file.Parsed())
	assert.Equal(t, int32(1), parser.calls.Load())
}

func TestFile_FindClassParsesOnDemand(t *testing.T) {
	root := writeProject(t)
	loader := project.NewLoader(afs.New(), &stubParser{}, nil)
	file := loader.File(filepath.Join(root, "lib/src/main/java/com/lib/Library.java"), info.Direct)

	_, ok := file.FindClass(info.MustParseImport("com.other.Library"))
	assert.False(t, ok)
	assert.False(t, file.Parsed())

	class, ok := file.FindClass(info.MustParseImport("com.lib.Library"))
	require.True(t, ok)
	assert.Equal(t, "com.lib.Library", class.Name.String())
	assert.True(t, file.Parsed())
}

func TestParseAll(t *testing.T) {
	root := writeProject(t)
	parser := &stubParser{}
	loader := project.NewLoader(afs.New(), parser, nil)
	files := loader.Files(info.Direct,
		filepath.Join(root, "app/src/main/java/com/app/Service.java"),
		filepath.Join(root, "app/src/main/java/com/app/Broken.java"),
		filepath.Join(root, "app/src/main/java/com/app/Missing.java"),
	)

	err := project.ParseAll(context.Background(), files, project.NewPool(2))
	require.Error(t, err)
	var multi *project.MultiError
	require.True(t, errors.As(err, &multi))
	assert.Len(t, multi.Errors, 2)
	var parseErr *project.ParseError
	assert.True(t, errors.As(multi.Errors[0], &parseErr))
	for _, f := range files {
		assert.True(t, f.Parsed())
	}
	assert.True(t, files[1].Package().IsZero())
}

func TestFingerprintOf(t *testing.T) {
	a := project.FingerprintOf([]byte("class A {}"))
	assert.Equal(t, a, project.FingerprintOf([]byte("class A {}")))
	assert.NotEqual(t, a, project.FingerprintOf([]byte("class B {}")))
	assert.NotEqual(t, a, project.FingerprintOf(nil))
}
