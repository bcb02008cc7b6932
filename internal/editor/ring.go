package editor

import "github.com/dshills/vix/internal/text"

// jumplistSize bounds the number of marks a window remembers.
const jumplistSize = 31

// markRing is a bounded ring of marks with a walk cursor. Pushing past
// capacity evicts the oldest entry. The cursor sits one past the newest
// entry when it is invalid; walking backward from there first saves the
// caller-provided return position.
type markRing struct {
	marks []text.Mark
	cap   int
	cur   int
}

func newMarkRing(capacity int) *markRing {
	return &markRing{
		marks: make([]text.Mark, 0, capacity),
		cap:   capacity,
	}
}

// Len returns the number of stored marks.
func (r *markRing) Len() int {
	return len(r.marks)
}

// Push appends a mark, evicting the oldest past capacity, and
// invalidates the walk cursor.
func (r *markRing) Push(m text.Mark) {
	if len(r.marks) == r.cap {
		copy(r.marks, r.marks[1:])
		r.marks = r.marks[:len(r.marks)-1]
	}
	r.marks = append(r.marks, m)
	r.Invalidate()
}

// Invalidate resets the walk cursor to the newest end.
func (r *markRing) Invalidate() {
	r.cur = len(r.marks)
}

// AtNewest reports whether the walk cursor is invalid (at the newest end).
func (r *markRing) AtNewest() bool {
	return r.cur >= len(r.marks)
}

// Prev steps the cursor backward and returns the mark there.
func (r *markRing) Prev() (text.Mark, bool) {
	if r.cur == 0 || len(r.marks) == 0 {
		return text.MarkNone, false
	}
	if r.cur > len(r.marks) {
		r.cur = len(r.marks)
	}
	r.cur--
	return r.marks[r.cur], true
}

// Next steps the cursor forward and returns the mark there.
func (r *markRing) Next() (text.Mark, bool) {
	if r.cur+1 >= len(r.marks) {
		return text.MarkNone, false
	}
	r.cur++
	return r.marks[r.cur], true
}
