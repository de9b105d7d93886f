package resolver

import (
	"github.com/viant/javaimports/info"
)

// ClassProvider describes classes reachable through an import
type ClassProvider interface {
	FindClass(i info.Import) (*info.ClassEntity, bool)
}

// ClassProviderFunc adapts a function to ClassProvider
type ClassProviderFunc func(i info.Import) (*info.ClassEntity, bool)

// FindClass calls fn
func (fn ClassProviderFunc) FindClass(i info.Import) (*info.ClassEntity, bool) {
	return fn(i)
}

// Object provides java.lang.Object
var Object = ClassProviderFunc(func(i info.Import) (*info.ClassEntity, bool) {
	if !i.Static && i.Selector.Equal(info.JavaLangObject.Name) {
		return info.JavaLangObject, true
	}
	return nil, false
})

// Library queries providers in registration order, the first hit wins
type Library struct {
	providers []ClassProvider
}

// NewLibrary creates a library
func NewLibrary(providers ...ClassProvider) *Library {
	ret := &Library{}
	ret.Add(providers...)
	return ret
}

// Add appends providers
func (l *Library) Add(providers ...ClassProvider) {
	for _, p := range providers {
		if p != nil {
			l.providers = append(l.providers, p)
		}
	}
}

// FindClass implements ClassProvider
func (l *Library) FindClass(i info.Import) (*info.ClassEntity, bool) {
	for _, p := range l.providers {
		if c, ok := p.FindClass(i); ok && c != nil {
			return c, true
		}
	}
	return nil, false
}
