package editor

import (
	"bytes"

	"github.com/dshills/vix/internal/text"
)

// Case change argument values.
const (
	CaseSwap = iota
	CaseUpper
	CaseLower
)

// Put anchor variants.
const (
	PutAfter = iota
	PutAfterEnd
	PutBefore
	PutBeforeEnd
)

// OperatorContext carries everything an operator needs for one cursor.
type OperatorContext struct {
	Count    int
	Pos      int
	NewPos   int
	Range    text.Range
	Reg      *Register
	Linewise bool
	Arg      Arg
}

// Operator consumes a range and returns the new cursor position, or
// EPOS to dispose the cursor.
type Operator struct {
	Fn func(ed *Editor, txt text.Text, c *OperatorContext) int
}

// opDelete writes the range to the register and removes it.
func opDelete(ed *Editor, txt text.Text, c *OperatorContext) int {
	r := c.Range
	if !r.Valid() || r.Len() == 0 {
		return c.Pos
	}
	c.Reg.Put(txt.BytesRange(r), c.Linewise)
	txt.Delete(r.Start, r.Len())
	pos := r.Start
	if c.Linewise && pos == txt.Size() && pos > 0 {
		pos = txt.LineBegin(pos - 1)
	}
	return pos
}

// opYank writes the range to the register, leaving the text untouched.
func opYank(ed *Editor, txt text.Text, c *OperatorContext) int {
	if c.Range.Valid() {
		c.Reg.Put(txt.BytesRange(c.Range), c.Linewise)
	}
	return c.Pos
}

// opPut pastes the register count times at one of four anchors.
func opPut(ed *Editor, txt text.Text, c *OperatorContext) int {
	if c.Reg.Empty() {
		return c.Pos
	}
	count := c.Count
	if count < 1 {
		count = 1
	}
	data := make([]byte, 0, c.Reg.Len()*count)
	for i := 0; i < count; i++ {
		data = append(data, c.Reg.Bytes()...)
	}

	at := c.Pos
	if c.Reg.Linewise {
		switch c.Arg.I {
		case PutBefore, PutBeforeEnd:
			at = txt.LineBegin(at)
		default:
			at = txt.LineNext(at)
		}
		if len(data) == 0 || data[len(data)-1] != '\n' {
			data = append(data, '\n')
		}
	} else {
		switch c.Arg.I {
		case PutBefore, PutBeforeEnd:
		default:
			if at < txt.Size() {
				b, _ := txt.ByteAt(at)
				if b != '\n' {
					at = txt.CharNext(at)
				}
			}
		}
	}
	if !txt.Insert(at, data) {
		return c.Pos
	}

	switch c.Arg.I {
	case PutAfterEnd, PutBeforeEnd:
		return at + len(data)
	default:
		if c.Reg.Linewise {
			return txt.LineStart(at)
		}
		return at
	}
}

// expandTab returns the indent string one shift level wide.
func (ed *Editor) expandTab() []byte {
	if !ed.options.Expandtab {
		return []byte{'\t'}
	}
	width := ed.options.Tabwidth
	if width > 8 {
		width = 8
	}
	if width < 1 {
		width = 1
	}
	return bytes.Repeat([]byte{' '}, width)
}

// opShiftRight inserts one indent level at the begin of each line.
func opShiftRight(ed *Editor, txt text.Text, c *OperatorContext) int {
	indent := ed.expandTab()
	r := c.Range
	if !r.Valid() {
		return c.Pos
	}
	// Walk lines backward so earlier offsets stay valid.
	var begins []int
	for at := txt.LineBegin(r.Start); at < r.End; {
		begins = append(begins, at)
		next := txt.LineNext(at)
		if next == at {
			break
		}
		at = next
	}
	for i := len(begins) - 1; i >= 0; i-- {
		txt.Insert(begins[i], indent)
	}
	return txt.LineStart(r.Start)
}

// opShiftLeft removes up to one indent level from each line. A single
// leading tab counts as a full level.
func opShiftLeft(ed *Editor, txt text.Text, c *OperatorContext) int {
	width := ed.options.Tabwidth
	if width > 8 {
		width = 8
	}
	if width < 1 {
		width = 1
	}
	r := c.Range
	if !r.Valid() {
		return c.Pos
	}
	var begins []int
	for at := txt.LineBegin(r.Start); at < r.End; {
		begins = append(begins, at)
		next := txt.LineNext(at)
		if next == at {
			break
		}
		at = next
	}
	for i := len(begins) - 1; i >= 0; i-- {
		at := begins[i]
		if b, ok := txt.ByteAt(at); ok && b == '\t' {
			txt.Delete(at, 1)
			continue
		}
		n := 0
		for n < width {
			b, ok := txt.ByteAt(at + n)
			if !ok || b != ' ' {
				break
			}
			n++
		}
		if n > 0 {
			txt.Delete(at, n)
		}
	}
	return txt.LineStart(r.Start)
}

// opCaseChange transforms ASCII letters in the range; other bytes pass
// through untouched.
func opCaseChange(ed *Editor, txt text.Text, c *OperatorContext) int {
	r := c.Range
	if !r.Valid() || r.Len() == 0 {
		return c.Pos
	}
	data := txt.BytesRange(r)
	for i, b := range data {
		switch c.Arg.I {
		case CaseUpper:
			if b >= 'a' && b <= 'z' {
				data[i] = b - 'a' + 'A'
			}
		case CaseLower:
			if b >= 'A' && b <= 'Z' {
				data[i] = b - 'A' + 'a'
			}
		default:
			if b >= 'a' && b <= 'z' {
				data[i] = b - 'a' + 'A'
			} else if b >= 'A' && b <= 'Z' {
				data[i] = b - 'A' + 'a'
			}
		}
	}
	txt.Delete(r.Start, r.Len())
	txt.Insert(r.Start, data)
	return r.Start
}

// opJoin replaces each line break in the range, plus the following
// indent, with a single space. Linewise ranges skip their final break.
func opJoin(ed *Editor, txt text.Text, c *OperatorContext) int {
	r := c.Range
	if !r.Valid() || r.Len() == 0 {
		return c.Pos
	}
	end := r.End
	if c.Linewise {
		// The final newline of the range does not join anything.
		if end > r.Start && end <= txt.Size() {
			if b, ok := txt.ByteAt(end - 1); ok && b == '\n' {
				end--
			}
		}
	}
	pos := c.Pos
	for at := end - 1; at >= r.Start; at-- {
		b, ok := txt.ByteAt(at)
		if !ok || b != '\n' {
			continue
		}
		del := 1
		start := at
		if start > 0 {
			if pb, _ := txt.ByteAt(start - 1); pb == '\r' {
				start--
				del++
			}
		}
		for start+del < txt.Size() {
			nb, _ := txt.ByteAt(start + del)
			if nb != ' ' && nb != '\t' {
				break
			}
			del++
		}
		txt.Delete(start, del)
		txt.Insert(start, []byte{' '})
		pos = start
	}
	return pos
}

// opInsert and opReplace are pseudo operators: they position the cursor
// and let the mode transition plus the operator macro supply the text.
func opInsert(ed *Editor, txt text.Text, c *OperatorContext) int {
	return c.Pos
}

func opReplace(ed *Editor, txt text.Text, c *OperatorContext) int {
	return c.Pos
}

// opCursorSOL spawns a cursor at the start of every line in the range.
func opCursorSOL(ed *Editor, txt text.Text, c *OperatorContext) int {
	return spawnCursors(ed, txt, c, func(pos int) int { return txt.LineStart(pos) })
}

// opCursorEOL spawns a cursor at the finish of every line in the range.
func opCursorEOL(ed *Editor, txt text.Text, c *OperatorContext) int {
	return spawnCursors(ed, txt, c, func(pos int) int { return txt.LineFinish(pos) })
}

func spawnCursors(ed *Editor, txt text.Text, c *OperatorContext, place func(int) int) int {
	r := c.Range
	if !r.Valid() {
		return c.Pos
	}
	view := ed.win.View
	first := text.EPOS
	for at := txt.LineBegin(r.Start); at < r.End || at == r.Start; {
		pos := place(at)
		if first == text.EPOS {
			first = pos
		} else {
			view.AddCursor(pos)
		}
		next := txt.LineNext(at)
		if next == at || next >= r.End {
			break
		}
		at = next
	}
	if first == text.EPOS {
		return c.Pos
	}
	return first
}

// Named operators. Change and delete share the same range consumption;
// the executor transitions change into insert mode afterwards.
var (
	OpDelete     = Operator{Fn: opDelete}
	OpChange     = Operator{Fn: opDelete}
	OpYank       = Operator{Fn: opYank}
	OpPut        = Operator{Fn: opPut}
	OpShiftRight = Operator{Fn: opShiftRight}
	OpShiftLeft  = Operator{Fn: opShiftLeft}
	OpCaseChange = Operator{Fn: opCaseChange}
	OpJoin       = Operator{Fn: opJoin}
	OpInsert     = Operator{Fn: opInsert}
	OpReplace    = Operator{Fn: opReplace}
	OpCursorSOL  = Operator{Fn: opCursorSOL}
	OpCursorEOL  = Operator{Fn: opCursorEOL}
)
