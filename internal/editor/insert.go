package editor

import (
	"github.com/dshills/vix/internal/text"
)

// insertText inserts s at every cursor, cursors ordered so earlier
// insertions shift later ones.
func (ed *Editor) insertText(s string) {
	if ed.win == nil || s == "" {
		return
	}
	txt := ed.win.File.Text
	delta := 0
	for _, c := range ed.win.View.Ordered() {
		at := c.Pos + delta
		if !txt.Insert(at, []byte(s)) {
			continue
		}
		c.Pos = at + len(s)
		c.col = -1
		delta += len(s)
	}
}

// replaceText overwrites the character under every cursor, except line
// breaks, which are preserved.
func (ed *Editor) replaceText(s string) {
	if ed.win == nil || s == "" {
		return
	}
	txt := ed.win.File.Text
	delta := 0
	for _, c := range ed.win.View.Ordered() {
		at := c.Pos + delta
		if at < txt.Size() {
			if b, ok := txt.ByteAt(at); ok && b != '\n' {
				n := txt.CharNext(at) - at
				txt.Delete(at, n)
				delta -= n
			}
		}
		txt.Insert(at, []byte(s))
		c.Pos = at + len(s)
		c.col = -1
		delta += len(s)
	}
}

// deleteBack removes the character before every cursor.
func (ed *Editor) deleteBack() {
	if ed.win == nil {
		return
	}
	txt := ed.win.File.Text
	delta := 0
	for _, c := range ed.win.View.Ordered() {
		at := c.Pos + delta
		if at <= 0 {
			c.Pos = at
			continue
		}
		prev := txt.CharPrev(at)
		n := at - prev
		txt.Delete(prev, n)
		c.Pos = prev
		c.col = -1
		delta -= n
	}
}

// deleteWordBack removes from the cursor to the previous word start,
// staying on the current line.
func (ed *Editor) deleteWordBack() {
	if ed.win == nil {
		return
	}
	txt := ed.win.File.Text
	delta := 0
	for _, c := range ed.win.View.Ordered() {
		at := c.Pos + delta
		begin := txt.LineBegin(at)
		target := wordStartPrev(txt, at)
		if target < begin {
			target = begin
		}
		if target >= at {
			c.Pos = at
			continue
		}
		n := at - target
		txt.Delete(target, n)
		c.Pos = target
		c.col = -1
		delta -= n
	}
}

// deleteToLineBegin removes from the cursor back to the line begin.
func (ed *Editor) deleteToLineBegin() {
	if ed.win == nil {
		return
	}
	txt := ed.win.File.Text
	delta := 0
	for _, c := range ed.win.View.Ordered() {
		at := c.Pos + delta
		begin := txt.LineBegin(at)
		if begin >= at {
			c.Pos = at
			continue
		}
		n := at - begin
		txt.Delete(begin, n)
		c.Pos = begin
		c.col = -1
		delta -= n
	}
}

// lineIndent returns the leading whitespace of the line at pos.
func lineIndent(txt text.Text, pos int) []byte {
	begin := txt.LineBegin(pos)
	start := txt.LineStart(pos)
	return txt.BytesRange(text.Range{Start: begin, End: start})
}

// insertNewline breaks the line at every cursor, carrying the indent
// over when autoindent is on.
func (ed *Editor) insertNewline() {
	if ed.win == nil {
		return
	}
	txt := ed.win.File.Text
	nl := txt.NewlineType()
	delta := 0
	for _, c := range ed.win.View.Ordered() {
		at := c.Pos + delta
		data := []byte(nl)
		if ed.options.Autoindent {
			data = append(data, lineIndent(txt, at)...)
		}
		if !txt.Insert(at, data) {
			continue
		}
		c.Pos = at + len(data)
		c.col = -1
		delta += len(data)
	}
}

// openLine starts a new line below (or above) every cursor and leaves
// the cursor on it.
func (ed *Editor) openLine(above bool) {
	if ed.win == nil {
		return
	}
	txt := ed.win.File.Text
	nl := txt.NewlineType()
	delta := 0
	for _, c := range ed.win.View.Ordered() {
		pos := c.Pos + delta
		indent := []byte(nil)
		if ed.options.Autoindent {
			indent = lineIndent(txt, pos)
		}
		if above {
			at := txt.LineBegin(pos)
			data := append(append([]byte{}, indent...), nl...)
			if !txt.Insert(at, data) {
				continue
			}
			c.Pos = at + len(indent)
			delta += len(data)
		} else {
			at := txt.LineEnd(pos)
			data := append([]byte(nl), indent...)
			if !txt.Insert(at, data) {
				continue
			}
			c.Pos = at + len(data)
			delta += len(data)
		}
		c.col = -1
	}
}
