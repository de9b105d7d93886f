package config

import (
	"context"
	"fmt"
	"runtime"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// DefaultTransitiveDepth is how far dependencies of empty archives are followed
const DefaultTransitiveDepth = 1

// Config controls how missing imports are resolved
type Config struct {
	Repository      string   `yaml:"repository,omitempty"`      // local maven repository, ~/.m2/repository when empty
	Debug           bool     `yaml:"debug,omitempty"`           // debug logging
	Workers         int      `yaml:"workers,omitempty"`         // parallel parsing and archive loading
	TransitiveDepth int      `yaml:"transitiveDepth"`           // levels followed for empty direct archives, 0 disables, negative is unbounded
	Exclude         []string `yaml:"exclude,omitempty"`         // doublestar globs relative to the project root
	Stdlib          []string `yaml:"stdlib,omitempty"`          // extra standard library classes
	Descriptors     []string `yaml:"descriptors,omitempty"`     // project root markers
	BazelOutputRoot string   `yaml:"bazelOutputRoot,omitempty"` // parent of bazel output bases, ~/.javaimports when empty
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Workers:         runtime.NumCPU(),
		TransitiveDepth: DefaultTransitiveDepth,
		Descriptors:     []string{"pom.xml", "BUILD", "BUILD.bazel"},
	}
}

// Init fills unset values with defaults, TransitiveDepth is kept as set since zero is meaningful
func (c *Config) Init() {
	defaults := Default()
	if c.Workers <= 0 {
		c.Workers = defaults.Workers
	}
	if len(c.Descriptors) == 0 {
		c.Descriptors = defaults.Descriptors
	}
}

// Load reads a YAML configuration, unset values keep their defaults
func Load(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %v: %w", URL, err)
	}
	return Parse(data)
}

// Parse decodes a YAML configuration
func Parse(data []byte) (*Config, error) {
	ret := Default()
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	ret.Init()
	return ret, nil
}
