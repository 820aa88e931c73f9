// Package pool keeps reusable instances so per-tick code never allocates
// or discards followers and effects.
package pool

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/MianHassanSohail/NumberSnake/common"
	"gopkg.in/eapache/queue.v1"
)

var ErrNotActive = errors.New("pool: instance is not active")

// Item is anything the pool can hand out. SetActive toggles visibility and
// per-tick processing on the instance.
type Item interface {
	comparable
	SetActive(active bool)
}

// Placement describes where new instances are grouped. It is informational
// only and carries no ownership.
type Placement struct {
	Name   string
	Origin common.Vec3
}

// Pool is a FIFO pool of reusable instances. It grows when empty and never
// shrinks below its high-water mark.
type Pool[T Item] struct {
	factory   func(Placement) T
	placement Placement
	available *queue.Queue
	active    map[T]bool
	inUse     int
	highWater int
	logger    *slog.Logger
}

// New builds a pool and eagerly creates initialSize inactive instances.
func New[T Item](factory func(Placement) T, initialSize int, placement Placement) *Pool[T] {
	if initialSize < 0 {
		initialSize = 0
	}
	p := &Pool[T]{
		factory:   factory,
		placement: placement,
		available: queue.New(),
		active:    make(map[T]bool, initialSize),
		logger:    slog.Default(),
	}
	for i := 0; i < initialSize; i++ {
		v := p.create()
		v.SetActive(false)
		p.available.Add(v)
	}
	return p
}

func (p *Pool[T]) SetLogger(logger *slog.Logger) {
	if logger == nil {
		return
	}
	p.logger = logger
}

func (p *Pool[T]) create() T {
	v := p.factory(p.placement)
	p.active[v] = false
	return v
}

// Get hands out an inactive instance, allocating one if none are available.
func (p *Pool[T]) Get() T {
	var v T
	if p.available.Length() > 0 {
		v = p.available.Remove().(T)
	} else {
		v = p.create()
		p.logger.Debug("pool grew", "pool", p.placement.Name, "created", len(p.active))
	}
	p.active[v] = true
	v.SetActive(true)
	p.inUse++
	if p.inUse > p.highWater {
		p.highWater = p.inUse
	}
	return v
}

// Return deactivates v and makes it available again. Returning an instance
// that is not active is rejected without touching pool state.
func (p *Pool[T]) Return(v T) error {
	isActive, known := p.active[v]
	if !known || !isActive {
		err := fmt.Errorf("pool %s: return: %w", p.placement.Name, ErrNotActive)
		assertf(err)
		p.logger.Warn("pool misuse", "pool", p.placement.Name, "known", known, "err", err)
		return err
	}
	p.active[v] = false
	v.SetActive(false)
	p.available.Add(v)
	p.inUse--
	return nil
}

// ReturnAll returns every element of *items in order and then empties the
// caller's slice. The first misuse error is reported after all valid
// instances have been returned.
func (p *Pool[T]) ReturnAll(items *[]T) error {
	if items == nil {
		return nil
	}
	var firstErr error
	for _, v := range *items {
		if err := p.Return(v); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	clear(*items)
	*items = (*items)[:0]
	return firstErr
}

// Created is the number of distinct instances ever allocated.
func (p *Pool[T]) Created() int {
	return len(p.active)
}

func (p *Pool[T]) Available() int {
	return p.available.Length()
}

func (p *Pool[T]) ActiveCount() int {
	return p.inUse
}

// HighWater is the largest number of simultaneously active instances.
func (p *Pool[T]) HighWater() int {
	return p.highWater
}

// IsActive reports whether v is currently handed out by this pool.
func (p *Pool[T]) IsActive(v T) bool {
	return p.active[v]
}
