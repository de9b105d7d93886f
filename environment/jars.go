package environment

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/viant/javaimports/info"
	"golang.org/x/sync/errgroup"
)

// minScore is the number of leading package segments an import must share with an archive group
// before the archive is opened to look for it
const minScore = 2

// Jars groups archives by kind. Loaded archives feed an identifier map, archives that were never
// loaded are only opened when looking for a class whose package matches their group.
type Jars struct {
	logger  *slog.Logger
	workers int

	mu          sync.RWMutex
	paths       map[string]bool
	byKind      map[info.Kind][]*Jar
	identifiers map[info.Identifier][]info.Import
	owners      map[string]*Jar
	visible     map[string]bool
}

// NewJars creates an empty archive set
func NewJars(logger *slog.Logger, workers int) *Jars {
	if logger == nil {
		logger = slog.Default()
	}
	if workers <= 0 {
		workers = 4
	}
	return &Jars{
		logger:      logger,
		workers:     workers,
		paths:       map[string]bool{},
		byKind:      map[info.Kind][]*Jar{},
		identifiers: map[info.Identifier][]info.Import{},
		owners:      map[string]*Jar{},
		visible:     map[string]bool{},
	}
}

// Add registers archives, an archive path is registered once
func (j *Jars) Add(jars ...*Jar) {
	j.mu.Lock()
	defer j.mu.Unlock()
	for _, jar := range jars {
		if j.paths[jar.Path] {
			continue
		}
		j.paths[jar.Path] = true
		j.byKind[jar.Kind] = append(j.byKind[jar.Kind], jar)
	}
}

// Jars returns archives of kind
func (j *Jars) Jars(kind info.Kind) []*Jar {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return append([]*Jar(nil), j.byKind[kind]...)
}

// Load lists the entries of every archive of kind concurrently and indexes their classes
func (j *Jars) Load(ctx context.Context, kind info.Kind) error {
	jars := j.Jars(kind)
	listed := make([][]info.Import, len(jars))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(j.workers)
	for k, jar := range jars {
		g.Go(func() error {
			listed[k] = jar.Importables(gctx)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	for k, jar := range jars {
		j.index(jar, listed[k], true)
	}
	return nil
}

// index must be called with the lock held, importables are listed by the caller beforehand
func (j *Jars) index(jar *Jar, importables []info.Import, visible bool) {
	visible = visible && !j.visible[jar.Path]
	if visible {
		j.visible[jar.Path] = true
	}
	for _, imported := range importables {
		key := imported.Key()
		if _, ok := j.owners[key]; !ok {
			j.owners[key] = jar
		}
		if visible {
			id := imported.Selector.Identifier()
			j.identifiers[id] = append(j.identifiers[id], imported)
		}
	}
}

// FindImports returns classes named identifier held by loaded archives
func (j *Jars) FindImports(identifier info.Identifier) []info.Import {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return append([]info.Import(nil), j.identifiers[identifier]...)
}

// Knows returns true if a loaded archive provides the import
func (j *Jars) Knows(i info.Import) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, ok := j.owners[i.Key()]
	return ok
}

// FindClass returns the class from the archive providing it. Unknown imports are looked up in
// unloaded archives, best scored first.
func (j *Jars) FindClass(i info.Import) (*info.ClassEntity, bool) {
	j.mu.RLock()
	owner, ok := j.owners[i.Key()]
	j.mu.RUnlock()
	if ok {
		return owner.FindClass(i)
	}
	for _, jar := range j.scored(i) {
		importables := jar.Importables(context.Background())
		j.mu.Lock()
		j.index(jar, importables, false)
		j.mu.Unlock()
		if jar.Has(i) {
			j.logger.Debug("jars.scored", "import", i.Key(), "path", jar.Path)
			return jar.FindClass(i)
		}
	}
	return nil, false
}

type scoredJar struct {
	jar   *Jar
	score int
}

func (j *Jars) scored(i info.Import) []*Jar {
	j.mu.RLock()
	var candidates []scoredJar
	for _, jars := range j.byKind {
		for _, jar := range jars {
			if jar.Loaded() {
				continue
			}
			if s := score(jar.Group, i.Selector); s >= minScore {
				candidates = append(candidates, scoredJar{jar: jar, score: s})
			}
		}
	}
	j.mu.RUnlock()
	sort.SliceStable(candidates, func(a, b int) bool {
		if candidates[a].score != candidates[b].score {
			return candidates[a].score > candidates[b].score
		}
		return candidates[a].jar.Path < candidates[b].jar.Path
	})
	ret := make([]*Jar, 0, len(candidates))
	for _, c := range candidates {
		ret = append(ret, c.jar)
	}
	return ret
}

// score counts leading segments shared by a group id and a selector
func score(group string, selector info.Selector) int {
	if group == "" {
		return 0
	}
	ret := 0
	for k, segment := range strings.Split(group, ".") {
		if k >= selector.Size()-1 || string(selector.At(k)) != segment {
			break
		}
		ret++
	}
	return ret
}
