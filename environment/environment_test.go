package environment_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/javaimports/config"
	"github.com/viant/javaimports/environment"
	"github.com/viant/javaimports/info"
	"github.com/viant/javaimports/internal/testkit"
	"go.uber.org/goleak"
)

func pom(groupID, artifactID, version, dependencies string) string {
	return `<project><groupId>` + groupID + `</groupId><artifactId>` + artifactID + `</artifactId><version>` + version + `</version><dependencies>` + dependencies + `</dependencies></project>`
}

func dependency(groupID, artifactID, version string) string {
	return `<dependency><groupId>` + groupID + `</groupId><artifactId>` + artifactID + `</artifactId><version>` + version + `</version></dependency>`
}

// writeWorkspace writes a local repository and a module depending on com.lib:lib and on
// com.bom:api, an archive without classes that depends on com.real:impl
func writeWorkspace(t *testing.T) (repo, root string) {
	repo = t.TempDir()
	testkit.WriteFiles(t, repo, map[string]string{
		"com/lib/lib/1.0/lib-1.0.pom":       pom("com.lib", "lib", "1.0", dependency("com.base", "base", "1.0")),
		"com/base/base/1.0/base-1.0.pom":    pom("com.base", "base", "1.0", ""),
		"com/bom/api/1.0/api-1.0.pom":       pom("com.bom", "api", "1.0", dependency("com.real", "impl", "1.0")),
		"com/real/impl/1.0/impl-1.0.pom":    pom("com.real", "impl", "1.0", ""),
		"org/other/other/1.0/other-1.0.pom": pom("org.other", "other", "1.0", ""),
	})
	testkit.WriteJar(t, filepath.Join(repo, "com/lib/lib/1.0/lib-1.0.jar"), []testkit.Class{
		{Name: "com/lib/Util", Super: "com/base/Base", Methods: []testkit.Member{{Name: "format", Flags: 0x0001}}},
	}, nil)
	testkit.WriteJar(t, filepath.Join(repo, "com/base/base/1.0/base-1.0.jar"), []testkit.Class{
		{Name: "com/base/Base", Super: "java/lang/Object", Fields: []testkit.Member{{Name: "LOG", Flags: 0x0004}}},
	}, nil)
	testkit.WriteJar(t, filepath.Join(repo, "com/bom/api/1.0/api-1.0.jar"), nil, map[string][]byte{
		"META-INF/MANIFEST.MF": []byte("Manifest-Version: 1.0\n"),
	})
	testkit.WriteJar(t, filepath.Join(repo, "com/real/impl/1.0/impl-1.0.jar"), []testkit.Class{
		{Name: "com/real/Impl", Super: "java/lang/Object"},
	}, nil)

	root = t.TempDir()
	testkit.WriteFiles(t, root, map[string]string{
		"pom.xml":                               pom("com.app", "app", "1.0", dependency("com.lib", "lib", "1.0")+dependency("com.bom", "api", "1.0")),
		"src/main/java/com/app/Service.java":    "package com.app;\n\npublic class Service {}\n",
		"src/main/java/com/app/Helper.java":     "package com.app;\n\nimport java.util.List;\n\npublic class Helper {\n  public static void help(List<String> items) {}\n}\n",
		"src/main/java/com/app/util/Text.java":  "package com.app.util;\n\npublic class Text {}\n",
		"src/test/java/com/app/HelperTest.java": "package com.app;\n\npublic class HelperTest {}\n",
	})
	return repo, root
}

func keys(imports []info.Import) []string {
	var ret []string
	for _, i := range imports {
		ret = append(ret, i.Key())
	}
	return ret
}

func TestDetector_Detect(t *testing.T) {
	_, root := writeWorkspace(t)
	detector := environment.NewDetector(afs.New())

	p, ok := detector.Detect(context.Background(), filepath.Join(root, "src/main/java/com/app/Service.java"))
	require.True(t, ok)
	assert.Equal(t, root, p.RootPath)
	assert.Equal(t, "maven", p.Type)
	assert.Equal(t, filepath.Join(root, "pom.xml"), p.Descriptor)
	assert.Equal(t, "src/main/java/com/app/Service.java", p.RelativePath)

	_, ok = detector.Detect(context.Background(), filepath.Join(t.TempDir(), "Main.java"))
	assert.False(t, ok)
}

func TestAutoSelect(t *testing.T) {
	_, root := writeWorkspace(t)
	env := environment.AutoSelect(context.Background(), filepath.Join(root, "src/main/java/com/app/Service.java"), nil)
	_, ok := env.(*environment.Maven)
	assert.True(t, ok)

	env = environment.AutoSelect(context.Background(), filepath.Join(t.TempDir(), "Main.java"), nil)
	assert.Equal(t, environment.Empty(), env)
	assert.Empty(t, env.FindImports("List"))
	assert.NoError(t, env.Init(context.Background()))
}

func TestJar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lib.jar")
	testkit.WriteJar(t, path, []testkit.Class{
		{Name: "com/lib/Util", Super: "java/lang/Object", Methods: []testkit.Member{{Name: "format", Flags: 0x0001}}},
		{Name: "com/lib/Outer$Inner", Super: "java/lang/Object"},
	}, map[string][]byte{"module-info.class": {0xCA, 0xFE}})

	jar := environment.NewJar(path, "com.lib", info.Direct, afs.New(), nil, nil)
	assert.False(t, jar.Loaded())
	assert.ElementsMatch(t, []string{"com.lib.Util", "com.lib.Outer.Inner"}, keys(jar.Importables(context.Background())))
	assert.True(t, jar.Loaded())
	assert.EqualValues(t, []string{"com.lib.Outer.Inner"}, keys(jar.FindImports("Inner")))

	class, ok := jar.FindClass(info.MustParseImport("com.lib.Util"))
	require.True(t, ok)
	assert.Equal(t, "com.lib.Util", class.Name.String())
	assert.True(t, class.Declares("format"))
	again, ok := jar.FindClass(info.MustParseImport("com.lib.Util"))
	require.True(t, ok)
	assert.Same(t, class, again)

	_, ok = jar.FindClass(info.MustParseImport("com.lib.Missing"))
	assert.False(t, ok)

	broken := filepath.Join(t.TempDir(), "broken.jar")
	require.NoError(t, os.WriteFile(broken, []byte("not an archive"), 0o644))
	assert.Empty(t, environment.NewJar(broken, "", info.Direct, afs.New(), nil, nil).Importables(context.Background()))
}

func TestJars_ScoredLoading(t *testing.T) {
	defer goleak.VerifyNone(t)
	dir := t.TempDir()
	libPath := filepath.Join(dir, "lib.jar")
	otherPath := filepath.Join(dir, "other.jar")
	testkit.WriteJar(t, libPath, []testkit.Class{{Name: "com/lib/Util", Super: "java/lang/Object"}}, nil)
	testkit.WriteJar(t, otherPath, []testkit.Class{{Name: "org/other/Thing", Super: "java/lang/Object"}}, nil)

	fs := afs.New()
	cache := environment.NewClassCache()
	lib := environment.NewJar(libPath, "com.lib", info.Transitive, fs, cache, nil)
	other := environment.NewJar(otherPath, "org.other", info.Transitive, fs, cache, nil)
	jars := environment.NewJars(nil, 2)
	jars.Add(lib, other, lib)
	assert.Len(t, jars.Jars(info.Transitive), 2)

	assert.Empty(t, jars.FindImports("Util"))
	assert.False(t, jars.Knows(info.MustParseImport("com.lib.Util")))

	class, ok := jars.FindClass(info.MustParseImport("com.lib.Util"))
	require.True(t, ok)
	assert.Equal(t, "com.lib.Util", class.Name.String())
	assert.True(t, lib.Loaded())
	assert.False(t, other.Loaded())
	assert.True(t, jars.Knows(info.MustParseImport("com.lib.Util")))
	assert.Empty(t, jars.FindImports("Util"))

	_, ok = jars.FindClass(info.MustParseImport("java.lang.Object"))
	assert.False(t, ok)
	assert.False(t, other.Loaded())

	require.NoError(t, jars.Load(context.Background(), info.Transitive))
	assert.EqualValues(t, []string{"com.lib.Util"}, keys(jars.FindImports("Util")))
	assert.EqualValues(t, []string{"org.other.Thing"}, keys(jars.FindImports("Thing")))
	assert.Equal(t, 1, cache.Len())
}

// gatedFS holds archive downloads until released
type gatedFS struct {
	afs.Service
	listing chan string
	release chan struct{}
}

func (g *gatedFS) DownloadWithURL(ctx context.Context, URL string, options ...storage.Option) ([]byte, error) {
	g.listing <- URL
	<-g.release
	return g.Service.DownloadWithURL(ctx, URL, options...)
}

func TestJars_FindClassListsOutsideLock(t *testing.T) {
	defer goleak.VerifyNone(t)
	dir := t.TempDir()
	libPath := filepath.Join(dir, "lib.jar")
	testkit.WriteJar(t, libPath, []testkit.Class{{Name: "com/lib/Util", Super: "java/lang/Object"}}, nil)

	fs := &gatedFS{Service: afs.New(), listing: make(chan string, 1), release: make(chan struct{})}
	jars := environment.NewJars(nil, 1)
	jars.Add(environment.NewJar(libPath, "com.lib", info.Transitive, fs, nil, nil))

	found := make(chan bool, 1)
	go func() {
		_, ok := jars.FindClass(info.MustParseImport("com.lib.Util"))
		found <- ok
	}()
	assert.Equal(t, libPath, <-fs.listing)

	lookups := make(chan struct{})
	go func() {
		jars.FindImports("Util")
		jars.Knows(info.MustParseImport("com.lib.Util"))
		close(lookups)
	}()
	select {
	case <-lookups:
	case <-time.After(5 * time.Second):
		t.Fatal("lookups blocked while an archive was listed")
	}

	close(fs.release)
	assert.True(t, <-found)
	assert.True(t, jars.Knows(info.MustParseImport("com.lib.Util")))
}

func TestClassCache(t *testing.T) {
	data := testkit.Class{Name: "com/lib/Util", Super: "java/lang/Object"}.Bytes()
	cache := environment.NewClassCache()
	first, err := cache.Decode(data)
	require.NoError(t, err)
	second, err := cache.Decode(append([]byte(nil), data...))
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, cache.Len())

	_, err = cache.Decode([]byte{0x00})
	assert.Error(t, err)
}

func TestMaven(t *testing.T) {
	defer goleak.VerifyNone(t)
	repo, root := writeWorkspace(t)
	cfg := config.Default()
	cfg.Repository = repo
	cfg.Workers = 2
	file := filepath.Join(root, "src/main/java/com/app/Service.java")
	env := environment.NewMaven(root, file, cfg)
	ctx := context.Background()

	siblings := env.Siblings(ctx, info.MustParseSelector("com.app"))
	require.Len(t, siblings, 1)
	assert.Equal(t, filepath.Join(root, "src/main/java/com/app/Helper.java"), siblings[0].Path)
	assert.EqualValues(t, []string{"java.util.List"}, keys(siblings[0].FindImports("List")))

	require.NoError(t, env.Init(ctx))
	require.NoError(t, env.Init(ctx))

	var testCases = []struct {
		description string
		identifier  info.Identifier
		expect      []string
	}{
		{description: "direct archive", identifier: "Util", expect: []string{"com.lib.Util"}},
		{description: "dependency of an empty archive", identifier: "Impl", expect: []string{"com.real.Impl"}},
		{description: "deeper dependency stays hidden", identifier: "Base", expect: nil},
		{description: "project class", identifier: "Text", expect: []string{"com.app.util.Text"}},
		{description: "test sources hidden from main code", identifier: "HelperTest", expect: nil},
		{description: "file being fixed skipped", identifier: "Service", expect: nil},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			assert.EqualValues(t, testCase.expect, keys(env.FindImports(testCase.identifier)))
		})
	}

	util, ok := env.FindClass(info.MustParseImport("com.lib.Util"))
	require.True(t, ok)
	parent, ok := util.Parent.Resolved()
	require.True(t, ok)
	assert.Equal(t, "com.base.Base", parent.Selector.String())

	base, ok := env.FindClass(parent)
	require.True(t, ok)
	assert.True(t, base.Declares("LOG"))

	helper, ok := env.FindClass(info.MustParseImport("com.app.Helper"))
	require.True(t, ok)
	assert.True(t, helper.Declares("help"))

	_, ok = env.FindClass(info.MustParseImport("com.none.Missing"))
	assert.False(t, ok)
}

func TestMaven_TestFile(t *testing.T) {
	repo, root := writeWorkspace(t)
	cfg := config.Default()
	cfg.Repository = repo
	env := environment.NewMaven(root, filepath.Join(root, "src/test/java/com/app/ServiceTest.java"), cfg)
	require.NoError(t, env.Init(context.Background()))
	assert.EqualValues(t, []string{"com.app.HelperTest"}, keys(env.FindImports("HelperTest")))
	assert.Len(t, env.Siblings(context.Background(), info.MustParseSelector("com.app")), 3)
}
