package datemath

import "time"

// Range is a closed time window [Start, End].
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}
