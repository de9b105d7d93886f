package project

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// Scheduler runs independent tasks, Wait returns once all submitted tasks are done
type Scheduler interface {
	Go(task func() error)
	Wait() error
}

type inline struct {
	mu  sync.Mutex
	err error
}

// Inline runs tasks on the calling goroutine
func Inline() Scheduler {
	return &inline{}
}

func (s *inline) Go(task func() error) {
	err := task()
	s.mu.Lock()
	if err != nil && s.err == nil {
		s.err = err
	}
	s.mu.Unlock()
}

func (s *inline) Wait() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.err
	s.err = nil
	return err
}

// Pool runs tasks on at most limit goroutines
type Pool struct {
	mu    sync.Mutex
	group *errgroup.Group
	limit int
}

// NewPool creates a pool, limit <= 0 means unbounded
func NewPool(limit int) *Pool {
	ret := &Pool{limit: limit}
	ret.reset()
	return ret
}

func (p *Pool) reset() {
	p.group = &errgroup.Group{}
	if p.limit > 0 {
		p.group.SetLimit(p.limit)
	}
}

// Go submits a task, it blocks while the pool is full
func (p *Pool) Go(task func() error) {
	p.mu.Lock()
	group := p.group
	p.mu.Unlock()
	group.Go(task)
}

// Wait waits for submitted tasks and returns the first error, the pool can be reused afterwards
func (p *Pool) Wait() error {
	p.mu.Lock()
	group := p.group
	p.reset()
	p.mu.Unlock()
	return group.Wait()
}
