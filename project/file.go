package project

import (
	"context"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/viant/afs"
	"github.com/viant/javaimports/info"
)

// State tracks the parsing progress of a file
type State int32

const (
	NotParsed State = iota
	Parsing
	Parsed
)

var sourcePattern = regexp.MustCompile(`^.*src/\w+/java/(.+)\.java$`)

// File is a lazily parsed source file, package and main declaration are inferred from the path until parsed
type File struct {
	Path     string
	Kind     info.Kind
	inferred *info.Import
	state    atomic.Int32
	done     chan struct{}
	parsed   ParsedFile
	err      error
	loader   *Loader
}

func newFile(path string, kind info.Kind, loader *Loader) *File {
	return &File{Path: path, Kind: kind, inferred: inferImport(path), done: make(chan struct{}), loader: loader}
}

func inferImport(path string) *info.Import {
	matches := sourcePattern.FindStringSubmatch(filepath.ToSlash(path))
	if len(matches) < 2 {
		return nil
	}
	selector, err := info.ParseSelector(strings.ReplaceAll(matches[1], "/", "."))
	if err != nil {
		return nil
	}
	ret := info.NewImport(selector, false)
	return &ret
}

// State returns the current parsing state
func (f *File) State() State {
	return State(f.state.Load())
}

// Parsed returns true once parsing completed
func (f *File) Parsed() bool {
	return f.State() == Parsed
}

// Parse ensures the file is parsed, the returned channel is closed once declarations are available.
// Only the first caller parses, later callers share its outcome.
func (f *File) Parse(ctx context.Context) <-chan struct{} {
	if !f.state.CompareAndSwap(int32(NotParsed), int32(Parsing)) {
		return f.done
	}
	f.parsed, f.err = f.loader.load(ctx, f.Path)
	f.state.Store(int32(Parsed))
	close(f.done)
	return f.done
}

// Err returns the parse error, if any, once parsed
func (f *File) Err() error {
	if !f.Parsed() {
		return nil
	}
	return f.err
}

func (f *File) result() ParsedFile {
	if !f.Parsed() {
		return nil
	}
	return f.parsed
}

// Package returns the declared package, or the inferred one before parsing
func (f *File) Package() info.Selector {
	if f.Parsed() {
		if f.parsed == nil {
			return info.Selector{}
		}
		return f.parsed.Package()
	}
	if f.inferred == nil {
		return info.Selector{}
	}
	scope, _ := f.inferred.Selector.Scope()
	return scope
}

// TopLevelDeclarations returns file level declarations, or the inferred class name before parsing
func (f *File) TopLevelDeclarations() info.IdentifierSet {
	if parsed := f.result(); parsed != nil {
		return parsed.TopLevelDeclarations()
	}
	if f.Parsed() || f.inferred == nil {
		return info.IdentifierSet{}
	}
	return info.NewIdentifierSet(f.inferred.Selector.Identifier())
}

// FindImports returns imports present in the file, nothing before parsing
func (f *File) FindImports(identifier info.Identifier) []info.Import {
	if parsed := f.result(); parsed != nil {
		return parsed.FindImports(identifier)
	}
	return nil
}

// FindImportables returns classes declared by the file, the inferred class before parsing
func (f *File) FindImportables(identifier info.Identifier) []info.Import {
	if parsed := f.result(); parsed != nil {
		return parsed.FindImportables(identifier)
	}
	if f.Parsed() || f.inferred == nil || f.inferred.Selector.Identifier() != identifier {
		return nil
	}
	return []info.Import{*f.inferred}
}

// FindClass returns a class declared by the file, the file is parsed when the import matches its inferred class
func (f *File) FindClass(i info.Import) (*info.ClassEntity, bool) {
	if !f.Parsed() {
		if f.inferred == nil || !f.inferred.Selector.Equal(i.Selector) {
			return nil, false
		}
		<-f.Parse(context.Background())
	}
	if f.parsed == nil {
		return nil, false
	}
	return f.parsed.FindClass(i)
}

// Loader creates files sharing one reader, parser and content keyed parse cache
type Loader struct {
	fs     afs.Service
	parser Parser
	logger *slog.Logger
	mu     sync.Mutex
	cache  map[Fingerprint]*cached
}

type cached struct {
	once   sync.Once
	parsed ParsedFile
	err    error
}

// NewLoader creates a loader
func NewLoader(fs afs.Service, parser Parser, logger *slog.Logger) *Loader {
	if fs == nil {
		fs = afs.New()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{fs: fs, parser: parser, logger: logger, cache: map[Fingerprint]*cached{}}
}

// File creates a lazy file
func (l *Loader) File(path string, kind info.Kind) *File {
	return newFile(path, kind, l)
}

// Files creates lazy files of one kind
func (l *Loader) Files(kind info.Kind, paths ...string) []*File {
	ret := make([]*File, 0, len(paths))
	for _, path := range paths {
		ret = append(ret, l.File(path, kind))
	}
	return ret
}

func (l *Loader) load(ctx context.Context, path string) (ParsedFile, error) {
	src, err := l.fs.DownloadWithURL(ctx, path)
	if err != nil {
		l.logger.Warn("project.read", "path", path, "error", err)
		return nil, newParseError(path, err)
	}
	fingerprint := FingerprintOf(src)
	l.mu.Lock()
	entry, ok := l.cache[fingerprint]
	if !ok {
		entry = &cached{}
		l.cache[fingerprint] = entry
	}
	l.mu.Unlock()
	entry.once.Do(func() {
		entry.parsed, entry.err = l.parse(ctx, path, src)
	})
	return entry.parsed, entry.err
}

func (l *Loader) parse(ctx context.Context, path string, src []byte) (ParsedFile, error) {
	parsed, err := l.parser.Parse(ctx, path, src)
	if err != nil {
		l.logger.Warn("project.parse", "path", path, "error", err)
		return nil, newParseError(path, err)
	}
	l.logger.Debug("project.parsed", "path", path)
	return parsed, nil
}
