package importer

import (
	"log/slog"

	"github.com/viant/afs"
	"github.com/viant/javaimports/config"
	"github.com/viant/javaimports/environment"
	"github.com/viant/javaimports/stdlib"
)

// Option customises an Importer
type Option func(*Importer)

// WithConfig sets the configuration
func WithConfig(cfg *config.Config) Option {
	return func(i *Importer) {
		i.config = cfg
	}
}

// WithStdlib replaces the platform library provider
func WithStdlib(provider *stdlib.Provider) Option {
	return func(i *Importer) {
		i.stdlib = provider
	}
}

// WithEnvironmentSelector replaces the build environment detection
func WithEnvironmentSelector(selector environment.Selector) Option {
	return func(i *Importer) {
		i.selector = selector
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(i *Importer) {
		i.logger = logger
	}
}

// WithFS sets the file system service
func WithFS(fs afs.Service) Option {
	return func(i *Importer) {
		i.fs = fs
	}
}
