package environment

import (
	"bytes"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/viant/javaimports/classfile"
	"github.com/viant/javaimports/info"
)

// ClassCache shares decoded classes between archives holding the same class file
type ClassCache struct {
	mu      sync.RWMutex
	classes map[uint64]*info.ClassEntity
}

// NewClassCache creates a cache
func NewClassCache() *ClassCache {
	return &ClassCache{classes: map[uint64]*info.ClassEntity{}}
}

// Decode returns the class decoded from data, identical content is decoded once
func (c *ClassCache) Decode(data []byte) (*info.ClassEntity, error) {
	key := xxhash.Sum64(data)
	c.mu.RLock()
	ret, ok := c.classes[key]
	c.mu.RUnlock()
	if ok {
		return ret, nil
	}
	ret, err := classfile.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if prev, ok := c.classes[key]; ok {
		ret = prev
	} else {
		c.classes[key] = ret
	}
	c.mu.Unlock()
	return ret, nil
}

// Len returns number of cached classes
func (c *ClassCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.classes)
}
