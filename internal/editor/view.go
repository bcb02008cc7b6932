package editor

import (
	"sort"

	"github.com/dshills/vix/internal/text"
)

// Cursor is one insertion point in a view. Cursors live on a doubly
// linked list owned by the view so operators can dispose them while the
// executor iterates.
type Cursor struct {
	view *View

	// Pos is the byte position.
	Pos int

	// Anchor is the selection anchor, EPOS when no selection is active.
	Anchor int

	// Sel is the active selection, invalid when none.
	Sel text.Range

	// reg is the private register used in multi-cursor mode.
	reg *Register

	// col caches the desired column for vertical motions; -1 unset.
	col int

	prev, next *Cursor
}

// PrivateRegister returns the cursor's own register, creating it lazily.
func (c *Cursor) PrivateRegister() *Register {
	if c.reg == nil {
		c.reg = &Register{}
	}
	return c.reg
}

// HasSelection reports whether the cursor carries a selection.
func (c *Cursor) HasSelection() bool {
	return c.Sel.Valid()
}

// ClearSelection drops the selection and its anchor.
func (c *Cursor) ClearSelection() {
	c.Anchor = text.EPOS
	c.Sel = text.EmptyRange()
}

// StartSelection anchors a selection at the current position covering
// the character under the cursor.
func (c *Cursor) StartSelection(txt text.Text) {
	c.Anchor = c.Pos
	c.Sel = text.Range{Start: c.Pos, End: txt.CharNext(c.Pos)}
}

// UpdateSelection recomputes the selection from anchor and position,
// including the character under the cursor.
func (c *Cursor) UpdateSelection(txt text.Text) {
	if c.Anchor == text.EPOS {
		c.Anchor = c.Pos
	}
	if c.Pos >= c.Anchor {
		c.Sel = text.Range{Start: c.Anchor, End: txt.CharNext(c.Pos)}
	} else {
		c.Sel = text.Range{Start: c.Pos, End: txt.CharNext(c.Anchor)}
	}
}

// SwapSelectionEnds moves the cursor to the other end of the selection.
func (c *Cursor) SwapSelectionEnds(txt text.Text) {
	if !c.HasSelection() {
		return
	}
	if c.Pos >= c.Anchor {
		c.Anchor, c.Pos = c.Pos, c.Anchor
	} else {
		c.Anchor, c.Pos = c.Pos, txt.CharPrev(c.Sel.End)
	}
}

// View is the set of cursors positioned in one file.
type View struct {
	file       *File
	head, tail *Cursor
	count      int
}

// newView creates a view with a single cursor at position 0.
func newView(f *File) *View {
	v := &View{file: f}
	v.AddCursor(0)
	return v
}

// File returns the viewed file.
func (v *View) File() *File {
	return v.file
}

// Count returns the number of cursors.
func (v *View) Count() int {
	return v.count
}

// Primary returns the first cursor.
func (v *View) Primary() *Cursor {
	return v.head
}

// Next returns the cursor after c, nil at the end.
func (v *View) Next(c *Cursor) *Cursor {
	if c == nil {
		return nil
	}
	return c.next
}

// AddCursor appends a cursor at pos unless one already sits there.
func (v *View) AddCursor(pos int) *Cursor {
	for c := v.head; c != nil; c = c.next {
		if c.Pos == pos {
			return c
		}
	}
	c := &Cursor{view: v, Pos: pos, Anchor: text.EPOS, Sel: text.EmptyRange(), col: -1}
	if v.tail == nil {
		v.head, v.tail = c, c
	} else {
		c.prev = v.tail
		v.tail.next = c
		v.tail = c
	}
	v.count++
	return c
}

// Dispose removes a cursor. The last cursor is never removed; it is
// collapsed instead so the view always has an insertion point.
func (v *View) Dispose(c *Cursor) {
	if v.count <= 1 {
		c.ClearSelection()
		return
	}
	if c.prev != nil {
		c.prev.next = c.next
	} else {
		v.head = c.next
	}
	if c.next != nil {
		c.next.prev = c.prev
	} else {
		v.tail = c.prev
	}
	c.prev, c.next = nil, nil
	v.count--
}

// CollapseToPrimary removes every cursor but the first.
func (v *View) CollapseToPrimary() {
	c := v.head
	if c == nil {
		return
	}
	c.next = nil
	c.prev = nil
	v.tail = c
	v.count = 1
}

// ClearSelections drops every cursor's selection.
func (v *View) ClearSelections() {
	for c := v.head; c != nil; c = c.next {
		c.ClearSelection()
	}
}

// HasSelections reports whether any cursor carries a selection.
func (v *View) HasSelections() bool {
	for c := v.head; c != nil; c = c.next {
		if c.HasSelection() {
			return true
		}
	}
	return false
}

// Ordered returns the cursors sorted by position.
func (v *View) Ordered() []*Cursor {
	cursors := make([]*Cursor, 0, v.count)
	for c := v.head; c != nil; c = c.next {
		cursors = append(cursors, c)
	}
	sort.Slice(cursors, func(i, j int) bool {
		return cursors[i].Pos < cursors[j].Pos
	})
	return cursors
}

// Clamp limits all cursor positions to the buffer size.
func (v *View) Clamp() {
	size := v.file.Text.Size()
	for c := v.head; c != nil; c = c.next {
		if c.Pos > size {
			c.Pos = size
		}
		if c.Pos < 0 {
			c.Pos = 0
		}
		if c.Sel.Valid() {
			c.Sel = c.Sel.Clamp(size)
		}
	}
}
