// Package tween holds time-bounded tasks that the game loop advances once
// per tick until they report completion.
package tween

// Task is advanced by the driver once per tick. Advance returns true once
// the task has finished; it is not advanced again afterwards.
type Task interface {
	Advance(dt float64) bool
}

// Runner advances a set of independent tasks in the order they were added.
type Runner struct {
	tasks []Task
}

func NewRunner() *Runner {
	return &Runner{}
}

func (r *Runner) Add(t Task) {
	if t == nil {
		return
	}
	r.tasks = append(r.tasks, t)
}

// Advance steps every task and drops those that finished.
func (r *Runner) Advance(dt float64) {
	if r == nil || len(r.tasks) == 0 {
		return
	}
	kept := r.tasks[:0]
	for _, t := range r.tasks {
		if !t.Advance(dt) {
			kept = append(kept, t)
		}
	}
	clear(r.tasks[len(kept):])
	r.tasks = kept
}

func (r *Runner) Len() int {
	if r == nil {
		return 0
	}
	return len(r.tasks)
}

// Clear drops all tasks without running their completion side effects.
func (r *Runner) Clear() {
	clear(r.tasks)
	r.tasks = r.tasks[:0]
}
