package environment

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/viant/afs"
	"github.com/viant/javaimports/classfile"
	"github.com/viant/javaimports/info"
)

// Jar is a dependency archive, its entries are listed once on first use and classes are decoded
// on demand
type Jar struct {
	Path   string
	Group  string
	Kind   info.Kind
	fs     afs.Service
	cache  *ClassCache
	logger *slog.Logger

	once        sync.Once
	loaded      atomic.Bool
	importables []info.Import
	entries     map[string]*zip.File

	mu      sync.Mutex
	classes map[string]*info.ClassEntity
}

// NewJar creates a lazy archive
func NewJar(path, group string, kind info.Kind, fs afs.Service, cache *ClassCache, logger *slog.Logger) *Jar {
	if fs == nil {
		fs = afs.New()
	}
	if cache == nil {
		cache = NewClassCache()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Jar{Path: path, Group: group, Kind: kind, fs: fs, cache: cache, logger: logger, classes: map[string]*info.ClassEntity{}}
}

// Loaded returns true once entries were listed
func (j *Jar) Loaded() bool {
	return j.loaded.Load()
}

// Importables lists the classes held by the archive, an unreadable archive has none
func (j *Jar) Importables(ctx context.Context) []info.Import {
	j.once.Do(func() {
		defer j.loaded.Store(true)
		entries, err := j.list(ctx)
		if err != nil {
			j.logger.Warn("jar.list", "path", j.Path, "error", err)
			return
		}
		j.entries = map[string]*zip.File{}
		for _, entry := range entries {
			if !classfile.IsImportable(entry.Name) {
				continue
			}
			imported, err := classfile.ToImport(entry.Name)
			if err != nil {
				continue
			}
			j.entries[imported.Key()] = entry
			j.importables = append(j.importables, imported)
		}
		j.logger.Debug("jar.loaded", "path", j.Path, "importables", len(j.importables))
	})
	return j.importables
}

func (j *Jar) list(ctx context.Context) ([]*zip.File, error) {
	data, err := j.fs.DownloadWithURL(ctx, j.Path)
	if err != nil {
		return nil, err
	}
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("invalid archive %v: %w", j.Path, err)
	}
	return reader.File, nil
}

// Has returns true if the archive holds the imported class
func (j *Jar) Has(i info.Import) bool {
	j.Importables(context.Background())
	_, ok := j.entries[i.Key()]
	return ok
}

// FindImports returns the archive classes named identifier
func (j *Jar) FindImports(identifier info.Identifier) []info.Import {
	var ret []info.Import
	for _, candidate := range j.Importables(context.Background()) {
		if candidate.Selector.Identifier() == identifier {
			ret = append(ret, candidate)
		}
	}
	return ret
}

// FindClass decodes the imported class, outcomes are remembered per import
func (j *Jar) FindClass(i info.Import) (*info.ClassEntity, bool) {
	if !j.Has(i) {
		return nil, false
	}
	key := i.Key()
	j.mu.Lock()
	defer j.mu.Unlock()
	if class, ok := j.classes[key]; ok {
		return class, class != nil
	}
	class, err := j.decode(j.entries[key])
	if err != nil {
		j.logger.Warn("jar.class", "path", j.Path, "import", key, "error", err)
	}
	j.classes[key] = class
	return class, class != nil
}

func (j *Jar) decode(entry *zip.File) (*info.ClassEntity, error) {
	reader, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return j.cache.Decode(data)
}
