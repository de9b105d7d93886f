package maven

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/javaimports/info"
	"github.com/viant/javaimports/internal/testkit"
	"go.uber.org/goleak"
)

func pom(groupID, artifactID, version, body string) string {
	return `<project><groupId>` + groupID + `</groupId><artifactId>` + artifactID + `</artifactId><version>` + version + `</version>` + body + `</project>`
}

func dependency(groupID, artifactID, version, extra string) string {
	return `<dependency><groupId>` + groupID + `</groupId><artifactId>` + artifactID + `</artifactId><version>` + version + `</version>` + extra + `</dependency>`
}

func testRepository(t *testing.T) string {
	repo := t.TempDir()
	testkit.WriteFiles(t, repo, map[string]string{
		"com/a/app/1.0/app-1.0.pom": pom("com.a", "app", "1.0", `<dependencies>`+
			dependency("com.b", "lib", "2.0", `<exclusions><exclusion><groupId>com.x</groupId><artifactId>excluded</artifactId></exclusion></exclusions>`)+
			dependency("com.c", "tool", "", "")+
			dependency("com.t", "testonly", "1.0", "<scope>test</scope>")+
			dependency("com.o", "opt", "1.0", "<optional>true</optional>")+
			`</dependencies>`),
		"com/b/lib/2.0/lib-2.0.pom": pom("com.b", "lib", "2.0", `<parent><groupId>com.b</groupId><artifactId>parent</artifactId><version>1</version></parent><dependencies>`+
			dependency("com.x", "excluded", "1.0", "")+
			dependency("com.d", "deep", "", "")+
			`</dependencies>`),
		"com/b/parent/1/parent-1.pom": pom("com.b", "parent", "1", `<dependencyManagement><dependencies>`+
			dependency("com.d", "deep", "3.0", "")+
			`</dependencies></dependencyManagement>`),
		"com/c/tool/1.0/tool-1.0.pom":             pom("com.c", "tool", "1.0", `<dependencies>`+dependency("com.d", "deep", "2.0", "")+`</dependencies>`),
		"com/c/tool/0.9/tool-0.9.pom":             pom("com.c", "tool", "0.9", ""),
		"com/d/deep/2.0/deep-2.0.pom":             pom("com.d", "deep", "2.0", ""),
		"com/d/deep/3.0/deep-3.0.pom":             pom("com.d", "deep", "3.0", ""),
		"com/x/excluded/1.0/excluded-1.0.pom":     pom("com.x", "excluded", "1.0", ""),
		"com/g/guava/18.0-jre/guava-18.0-jre.pom": pom("com.g", "guava", "18.0-jre", ""),
	})
	return repo
}

func TestResolver_Locate(t *testing.T) {
	repo := testRepository(t)
	resolver := NewResolver(afs.New(), repo)
	tests := []struct {
		description string
		coordinates Coordinates
		expectJar   string
	}{
		{description: "exact version", coordinates: Coordinates{GroupID: "com.b", ArtifactID: "lib", Version: "2.0"}, expectJar: "com/b/lib/2.0/lib-2.0.jar"},
		{description: "first available version", coordinates: Coordinates{GroupID: "com.c", ArtifactID: "tool"}, expectJar: "com/c/tool/0.9/tool-0.9.jar"},
		{description: "unresolved property", coordinates: Coordinates{GroupID: "com.c", ArtifactID: "tool", Version: "${tool.version}"}, expectJar: "com/c/tool/0.9/tool-0.9.jar"},
		{description: "normalized version", coordinates: Coordinates{GroupID: "com.g", ArtifactID: "guava", Version: "18.0"}, expectJar: "com/g/guava/18.0-jre/guava-18.0-jre.jar"},
		{description: "classifier", coordinates: Coordinates{GroupID: "com.b", ArtifactID: "lib", Version: "2.0", Classifier: "sources"}, expectJar: "com/b/lib/2.0/lib-2.0-sources.jar"},
		{description: "test jar", coordinates: Coordinates{GroupID: "com.b", ArtifactID: "lib", Version: "2.0", Type: "test-jar"}, expectJar: "com/b/lib/2.0/lib-2.0-tests.jar"},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			location, err := resolver.Locate(context.Background(), tc.coordinates)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(repo, filepath.FromSlash(tc.expectJar)), location.Jar)
		})
	}

	_, err := resolver.Locate(context.Background(), Coordinates{GroupID: "com.none", ArtifactID: "none"})
	assert.Error(t, err)
}

func TestRepository_TransitiveDependencies(t *testing.T) {
	defer goleak.VerifyNone(t)
	repo := testRepository(t)
	fs := afs.New()
	repository := NewRepository(fs, NewResolver(fs, repo), nil, 2)
	direct := []Dependency{{Coordinates: Coordinates{GroupID: "com.a", ArtifactID: "app", Version: "1.0"}, Kind: info.Direct}}

	tests := []struct {
		description string
		maxDepth    int
		expect      []string
	}{
		{description: "depth one", maxDepth: 1, expect: []string{"com.b:lib:jar:2.0", "com.c:tool:jar"}},
		{description: "unbounded", maxDepth: -1, expect: []string{"com.b:lib:jar:2.0", "com.c:tool:jar", "com.d:deep:jar:3.0"}},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			var actual []string
			for _, d := range repository.TransitiveDependencies(context.Background(), direct, tc.maxDepth) {
				assert.Equal(t, info.Transitive, d.Kind)
				actual = append(actual, d.Coordinates.String())
			}
			assert.EqualValues(t, tc.expect, actual)
		})
	}
}
