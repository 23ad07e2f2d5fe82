package searchctl

import "time"

// Deadline tracks a search's wall-clock budget and the time-up flag consulted at every
// search node. A fresh Deadline is created for each "go" command and discarded once the
// command completes; search functions only read it, never set it directly.
type Deadline struct {
	start  time.Time
	budget time.Duration
	timeUp bool
}

// NewDeadline starts a deadline with the given budget, counted from now.
func NewDeadline(budget time.Duration) *Deadline {
	return &Deadline{start: time.Now(), budget: budget}
}

// TimeUp reports whether the budget has been exceeded. Once true, it stays true for the
// life of the Deadline, so a search that aborts mid-tree does not resume once the clock
// happens to read differently a moment later.
func (d *Deadline) TimeUp() bool {
	if d.timeUp {
		return true
	}
	if time.Since(d.start) >= d.budget {
		d.timeUp = true
	}
	return d.timeUp
}

// Elapsed returns the time elapsed since the deadline was created.
func (d *Deadline) Elapsed() time.Duration {
	return time.Since(d.start)
}
