// Package trail records the leader's recent positions so followers can
// sample where it was a given number of ticks ago.
package trail

import (
	"errors"

	"github.com/MianHassanSohail/NumberSnake/common"
)

var ErrInvalidCapacity = errors.New("trail: capacity must be positive")

// Recorder is a fixed-capacity ring of positions. Once full, each Record
// overwrites the oldest entry.
type Recorder struct {
	buffer     []common.Vec3
	writeIndex int
	count      int
}

func NewRecorder(capacity int) (*Recorder, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Recorder{buffer: make([]common.Vec3, capacity)}, nil
}

// Record stores p as the most recent position.
func (r *Recorder) Record(p common.Vec3) {
	r.buffer[r.writeIndex] = p
	r.writeIndex = (r.writeIndex + 1) % len(r.buffer)
	if r.count < len(r.buffer) {
		r.count++
	}
}

// Position returns the entry recorded stepsBack records ago, where 0 is the
// most recent. It reports false when that much history is not available.
func (r *Recorder) Position(stepsBack int) (common.Vec3, bool) {
	if stepsBack < 0 || stepsBack >= r.count {
		return common.Vec3{}, false
	}
	capacity := len(r.buffer)
	idx := (r.writeIndex - 1 - stepsBack + capacity) % capacity
	return r.buffer[idx], true
}

func (r *Recorder) Count() int {
	return r.count
}

func (r *Recorder) Capacity() int {
	return len(r.buffer)
}

// Clear forgets all history. Slot contents are left in place and become
// unreachable until overwritten.
func (r *Recorder) Clear() {
	r.writeIndex = 0
	r.count = 0
}
