package project

import (
	"context"
	"sync"

	"github.com/viant/javaimports/info"
)

// Index groups project files by kind, transitive files stay hidden until included
type Index struct {
	mu         sync.RWMutex
	files      map[info.Kind][]*File
	transitive bool
}

// NewIndex creates an index exposing direct files
func NewIndex(files map[info.Kind][]*File) *Index {
	ret := &Index{files: map[info.Kind][]*File{}}
	for kind, list := range files {
		ret.files[kind] = append([]*File(nil), list...)
	}
	return ret
}

// IncludeTransitive makes transitive files visible, it cannot be undone
func (x *Index) IncludeTransitive() {
	x.mu.Lock()
	x.transitive = true
	x.mu.Unlock()
}

func (x *Index) visible() []*File {
	x.mu.RLock()
	defer x.mu.RUnlock()
	ret := append([]*File(nil), x.files[info.Direct]...)
	if x.transitive {
		ret = append(ret, x.files[info.Transitive]...)
	}
	return ret
}

// AllFiles returns visible files without parsing them
func (x *Index) AllFiles() []*File {
	return x.visible()
}

// FilesInPackage returns visible files of pkg without parsing them
func (x *Index) FilesInPackage(pkg info.Selector) []*File {
	var ret []*File
	for _, f := range x.visible() {
		if f.Package().Equal(pkg) {
			ret = append(ret, f)
		}
	}
	return ret
}

// EagerlyParse submits one parse task per visible file and waits for all of them
func (x *Index) EagerlyParse(ctx context.Context, scheduler Scheduler) error {
	for _, f := range x.visible() {
		file := f
		scheduler.Go(func() error {
			select {
			case <-file.Parse(ctx):
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}
	return scheduler.Wait()
}

// FindImports returns imports of classes declared by visible files
func (x *Index) FindImports(identifier info.Identifier) []info.Import {
	var ret []info.Import
	for _, f := range x.visible() {
		ret = append(ret, f.FindImportables(identifier)...)
	}
	return ret
}

// FindClass returns a class declared by a visible file
func (x *Index) FindClass(i info.Import) (*info.ClassEntity, bool) {
	for _, f := range x.visible() {
		if c, ok := f.FindClass(i); ok {
			return c, true
		}
	}
	return nil, false
}

// ParseAll parses files through scheduler and collects their errors
func ParseAll(ctx context.Context, files []*File, scheduler Scheduler) error {
	for _, f := range files {
		file := f
		scheduler.Go(func() error {
			<-file.Parse(ctx)
			return nil
		})
	}
	errs := &MultiError{}
	if err := scheduler.Wait(); err != nil {
		errs.Errors = append(errs.Errors, err)
	}
	for _, f := range files {
		if err := f.Err(); err != nil {
			errs.Errors = append(errs.Errors, err)
		}
	}
	return errs.ErrorOrNil()
}
