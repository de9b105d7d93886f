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
)

func TestFinder_FindAll(t *testing.T) {
	tests := []struct {
		description string
		files       map[string]string
		module      string
		expect      []string
		expectErr   bool
	}{
		{
			description: "zero dependencies",
			files:       map[string]string{"pom.xml": `<project><artifactId>a</artifactId></project>`},
			expect:      nil,
		},
		{
			description: "versions from relative parent chain",
			module:      "modules/core",
			files: map[string]string{
				"pom.xml": `<project><groupId>com.example</groupId><version>7.0</version>
					<properties><guava.version>31.1-jre</guava.version></properties>
					<dependencyManagement><dependencies>
					<dependency><groupId>org.slf4j</groupId><artifactId>slf4j-api</artifactId><version>2.0.7</version></dependency>
					</dependencies></dependencyManagement></project>`,
				"modules/pom.xml": `<project><parent><groupId>com.example</groupId><artifactId>root</artifactId><version>7.0</version></parent></project>`,
				"modules/core/pom.xml": `<project><parent><groupId>com.example</groupId><artifactId>modules</artifactId><version>7.0</version><relativePath>..</relativePath></parent>
					<dependencies>
					<dependency><groupId>com.google.guava</groupId><artifactId>guava</artifactId><version>${guava.version}</version></dependency>
					<dependency><groupId>org.slf4j</groupId><artifactId>slf4j-api</artifactId></dependency>
					</dependencies></project>`,
			},
			expect: []string{"com.google.guava:guava:jar:31.1-jre", "org.slf4j:slf4j-api:jar:2.0.7"},
		},
		{
			description: "malformed version skipped",
			files: map[string]string{"pom.xml": `<project><dependencies>
				<dependency><groupId>a</groupId><artifactId>b</artifactId><version>LATEST</version></dependency>
				<dependency><groupId>a</groupId><artifactId>c</artifactId><version>1.0</version></dependency>
				</dependencies></project>`},
			expect: []string{"a:c:jar:1.0"},
		},
		{
			description: "missing descriptor",
			files:       map[string]string{"README.md": "none"},
			expectErr:   true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			root := t.TempDir()
			testkit.WriteFiles(t, root, tc.files)
			finder := NewFinder(afs.New(), nil)
			deps, err := finder.FindAll(context.Background(), filepath.Join(root, filepath.FromSlash(tc.module)))
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			var actual []string
			for _, d := range deps {
				assert.Equal(t, info.Direct, d.Kind)
				actual = append(actual, d.Coordinates.String())
			}
			assert.EqualValues(t, tc.expect, actual)
		})
	}
}
