package config_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/javaimports/config"
)

func TestParse(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      *config.Config
		hasError    bool
	}{
		{
			description: "empty document keeps defaults",
			input:       "",
			expect:      config.Default(),
		},
		{
			description: "overrides",
			input: `repository: /tmp/m2
debug: true
workers: 3
transitiveDepth: 2
exclude:
  - "**/generated/**"
stdlib:
  - javax.inject.Inject
bazelOutputRoot: /tmp/bazel
`,
			expect: &config.Config{
				Repository:      "/tmp/m2",
				Debug:           true,
				Workers:         3,
				TransitiveDepth: 2,
				Exclude:         []string{"**/generated/**"},
				Stdlib:          []string{"javax.inject.Inject"},
				Descriptors:     []string{"pom.xml", "BUILD", "BUILD.bazel"},
				BazelOutputRoot: "/tmp/bazel",
			},
		},
		{
			description: "non positive workers reset",
			input:       "workers: -1\n",
			expect: &config.Config{
				Workers:         runtime.NumCPU(),
				TransitiveDepth: config.DefaultTransitiveDepth,
				Descriptors:     []string{"pom.xml", "BUILD", "BUILD.bazel"},
			},
		},
		{
			description: "transitive expansion disabled",
			input:       "transitiveDepth: 0\n",
			expect: &config.Config{
				Workers:     runtime.NumCPU(),
				Descriptors: []string{"pom.xml", "BUILD", "BUILD.bazel"},
			},
		},
		{
			description: "unbounded transitive expansion",
			input:       "transitiveDepth: -1\n",
			expect: &config.Config{
				Workers:         runtime.NumCPU(),
				TransitiveDepth: -1,
				Descriptors:     []string{"pom.xml", "BUILD", "BUILD.bazel"},
			},
		},
		{
			description: "malformed",
			input:       "workers: [",
			hasError:    true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual, err := config.Parse([]byte(testCase.input))
			if testCase.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.EqualValues(t, testCase.expect, actual)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "javaimports.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug: true\n"), 0o644))

	cfg, err := config.Load(context.Background(), afs.New(), path)
	require.NoError(t, err)
	assert.True(t, cfg.Debug)

	_, err = config.Load(context.Background(), afs.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
