// Package progress exposes monotonic counters that an external reporter
// can poll while a conversion runs.
package progress

import "sync/atomic"

// Tracker holds monotonic counters for one conversion. A nil *Tracker is
// valid: every method becomes a no-op, so the pipeline behaves identically
// whether or not anything observes it.
type Tracker struct {
	lines     atomic.Int64
	triangles atomic.Int64
	emitted   atomic.Int64
}

// AddLines records n more input lines processed.
func (t *Tracker) AddLines(n int) {
	if t != nil {
		t.lines.Add(int64(n))
	}
}

// AddTriangles records n more triangles parsed.
func (t *Tracker) AddTriangles(n int) {
	if t != nil {
		t.triangles.Add(int64(n))
	}
}

// AddEmitted records n more scene elements written.
func (t *Tracker) AddEmitted(n int) {
	if t != nil {
		t.emitted.Add(int64(n))
	}
}

// Lines returns the number of input lines processed so far.
func (t *Tracker) Lines() int64 {
	if t == nil {
		return 0
	}
	return t.lines.Load()
}

// Triangles returns the number of triangles parsed so far.
func (t *Tracker) Triangles() int64 {
	if t == nil {
		return 0
	}
	return t.triangles.Load()
}

// Emitted returns the number of scene elements written so far.
func (t *Tracker) Emitted() int64 {
	if t == nil {
		return 0
	}
	return t.emitted.Load()
}
