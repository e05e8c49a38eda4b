package store

import (
	"errors"
	"sync"

	"github.com/balkashynov/pmboard/internal/models"
)

// ErrNoChange may be returned by a mutator to abandon an update without
// treating it as a failure. Nothing is persisted.
var ErrNoChange = errors.New("no change")

// Mutator edits a private copy of the snapshot. Returning an error discards
// every change it made.
type Mutator func(s *models.Snapshot) error

// Persister is the durable side of the container
type Persister interface {
	Load() models.Snapshot
	Save(s models.Snapshot)
}

// Container owns the current snapshot. Update is the only way to change it.
type Container struct {
	mu      sync.Mutex
	current models.Snapshot
	persist Persister
}

// NewContainer loads the current snapshot from p
func NewContainer(p Persister) *Container {
	return &Container{current: p.Load(), persist: p}
}

// Snapshot returns a copy of the current snapshot
func (c *Container) Snapshot() models.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current.Clone()
}

// Update runs fn against a clone of the current snapshot. When fn succeeds
// the result is persisted and becomes current; readers see either the old
// snapshot or the complete new one. fn must not call back into c.
func (c *Container) Update(fn Mutator) (models.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.current.Clone()
	if err := fn(&next); err != nil {
		if errors.Is(err, ErrNoChange) {
			return c.current.Clone(), nil
		}
		return c.current.Clone(), err
	}

	// fn may have kept a pointer to next; commit a copy it cannot reach
	committed := next.Clone()
	c.persist.Save(committed)
	c.current = committed
	return committed.Clone(), nil
}
