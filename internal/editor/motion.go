package editor

import (
	"github.com/dshills/vix/internal/text"
)

// Motion computes a target position from a starting position. Exactly
// one of the function variants is set; the executor dispatches on it.
type Motion struct {
	Flags MotionFlags

	// Txt is a pure text motion.
	Txt func(txt text.Text, pos int) int

	// Cur is cursor-aware (vertical motions use the column cache).
	Cur func(c *Cursor) int

	// File is file-aware (mark motions).
	File func(f *File, pos int) int

	// Vis is editor-aware (search and find-char motions).
	Vis func(ed *Editor, pos int) int

	// View is view-aware (screen-line motions).
	View func(v *View, pos int) int

	// Win is window-aware (paging, changelist).
	Win func(w *Window, pos int) int
}

// apply runs the motion for cursor c currently considered at pos.
func (m *Motion) apply(ed *Editor, w *Window, c *Cursor, pos int) int {
	switch {
	case m.Txt != nil:
		return m.Txt(w.File.Text, pos)
	case m.Cur != nil:
		saved := c.Pos
		c.Pos = pos
		p := m.Cur(c)
		c.Pos = saved
		return p
	case m.File != nil:
		return m.File(w.File, pos)
	case m.Vis != nil:
		return m.Vis(ed, pos)
	case m.View != nil:
		return m.View(w.View, pos)
	case m.Win != nil:
		return m.Win(w, pos)
	}
	return pos
}

// Byte classes for word motions: whitespace, word characters, and
// everything else. Multi-byte sequences count as word characters.
const (
	classSpace = iota
	classWord
	classPunct
)

func byteClass(b byte) int {
	switch {
	case b == ' ' || b == '\t' || b == '\n' || b == '\r':
		return classSpace
	case b >= '0' && b <= '9', b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b == '_', b >= 0x80:
		return classWord
	default:
		return classPunct
	}
}

func classAt(txt text.Text, pos int) int {
	b, ok := txt.ByteAt(pos)
	if !ok {
		return classSpace
	}
	return byteClass(b)
}

// charRight moves one character right, stopping at the line end.
func charRight(txt text.Text, pos int) int {
	next := txt.CharNext(pos)
	if next > txt.LineEnd(pos) {
		return pos
	}
	return next
}

// charLeft moves one character left, stopping at the line begin.
func charLeft(txt text.Text, pos int) int {
	if pos <= txt.LineBegin(pos) {
		return pos
	}
	return txt.CharPrev(pos)
}

// wordStartNext advances to the start of the next word.
func wordStartNext(txt text.Text, pos int) int {
	return wordStartNextClass(txt, pos, classAt)
}

// longwordStartNext advances to the start of the next whitespace
// delimited word.
func longwordStartNext(txt text.Text, pos int) int {
	return wordStartNextClass(txt, pos, longwordClassAt)
}

func longwordClassAt(txt text.Text, pos int) int {
	if classAt(txt, pos) == classSpace {
		return classSpace
	}
	return classWord
}

func wordStartNextClass(txt text.Text, pos int, class func(text.Text, int) int) int {
	size := txt.Size()
	if pos >= size {
		return size
	}
	cl := class(txt, pos)
	if cl != classSpace {
		for pos < size && class(txt, pos) == cl {
			pos = txt.CharNext(pos)
		}
	}
	for pos < size && class(txt, pos) == classSpace {
		pos = txt.CharNext(pos)
	}
	return pos
}

// wordStartPrev backs up to the start of the previous word.
func wordStartPrev(txt text.Text, pos int) int {
	return wordStartPrevClass(txt, pos, classAt)
}

func longwordStartPrev(txt text.Text, pos int) int {
	return wordStartPrevClass(txt, pos, longwordClassAt)
}

func wordStartPrevClass(txt text.Text, pos int, class func(text.Text, int) int) int {
	if pos <= 0 {
		return 0
	}
	pos = txt.CharPrev(pos)
	for pos > 0 && class(txt, pos) == classSpace {
		pos = txt.CharPrev(pos)
	}
	cl := class(txt, pos)
	for pos > 0 {
		prev := txt.CharPrev(pos)
		if class(txt, prev) != cl {
			break
		}
		pos = prev
	}
	return pos
}

// wordEndNext advances to the last character of the current or next word.
func wordEndNext(txt text.Text, pos int) int {
	return wordEndNextClass(txt, pos, classAt)
}

func longwordEndNext(txt text.Text, pos int) int {
	return wordEndNextClass(txt, pos, longwordClassAt)
}

func wordEndNextClass(txt text.Text, pos int, class func(text.Text, int) int) int {
	size := txt.Size()
	pos = txt.CharNext(pos)
	for pos < size && class(txt, pos) == classSpace {
		pos = txt.CharNext(pos)
	}
	if pos >= size {
		return text.EPOS
	}
	cl := class(txt, pos)
	for {
		next := txt.CharNext(pos)
		if next >= size || class(txt, next) != cl {
			break
		}
		pos = next
	}
	return pos
}

// lineDown moves to the same column of the next line.
func lineDown(c *Cursor) int {
	txt := c.view.file.Text
	next := txt.LineNext(c.Pos)
	if next >= txt.Size() {
		return text.EPOS
	}
	if c.col < 0 {
		c.col = columnOf(txt, c.Pos)
	}
	return posAtColumn(txt, next, c.col)
}

// lineUp moves to the same column of the previous line.
func lineUp(c *Cursor) int {
	txt := c.view.file.Text
	if txt.LineBegin(c.Pos) == 0 {
		return text.EPOS
	}
	if c.col < 0 {
		c.col = columnOf(txt, c.Pos)
	}
	return posAtColumn(txt, txt.LinePrev(c.Pos), c.col)
}

// columnOf counts characters from the line begin to pos.
func columnOf(txt text.Text, pos int) int {
	col := 0
	for at := txt.LineBegin(pos); at < pos; at = txt.CharNext(at) {
		col++
	}
	return col
}

// posAtColumn walks col characters into the line at lineBegin, stopping
// at the line end.
func posAtColumn(txt text.Text, lineBegin, col int) int {
	pos := lineBegin
	end := txt.LineEnd(lineBegin)
	for i := 0; i < col && pos < end; i++ {
		next := txt.CharNext(pos)
		if next > end {
			break
		}
		pos = next
	}
	return pos
}

// lineDownStart moves to the first non-blank of the next line.
func lineDownStart(txt text.Text, pos int) int {
	next := txt.LineNext(pos)
	if next >= txt.Size() {
		return text.EPOS
	}
	return txt.LineStart(next)
}

// lineUpStart moves to the first non-blank of the previous line.
func lineUpStart(txt text.Text, pos int) int {
	if txt.LineBegin(pos) == 0 {
		return text.EPOS
	}
	return txt.LineStart(txt.LinePrev(pos))
}

func emptyLine(txt text.Text, at int) bool {
	return txt.LineBegin(at) == txt.LineEnd(at)
}

// paragraphNext finds the next empty line. Starting on an empty line
// first skips the rest of its run.
func paragraphNext(txt text.Text, pos int) int {
	size := txt.Size()
	at := txt.LineNext(pos)
	if emptyLine(txt, pos) {
		for at < size && emptyLine(txt, at) {
			next := txt.LineNext(at)
			if next == at {
				break
			}
			at = next
		}
	}
	for at < size {
		if emptyLine(txt, at) {
			return at
		}
		next := txt.LineNext(at)
		if next == at {
			break
		}
		at = next
	}
	return size
}

// paragraphPrev finds the previous empty line, mirroring paragraphNext.
func paragraphPrev(txt text.Text, pos int) int {
	at := txt.LineBegin(pos)
	if at == 0 {
		return 0
	}
	at = txt.LinePrev(at)
	if emptyLine(txt, pos) {
		for at > 0 && emptyLine(txt, at) {
			at = txt.LinePrev(at)
		}
	}
	for at > 0 {
		if emptyLine(txt, at) {
			return at
		}
		at = txt.LinePrev(at)
	}
	return 0
}

// sentenceNext advances past the next sentence terminator.
func sentenceNext(txt text.Text, pos int) int {
	size := txt.Size()
	for at := pos; at < size; at++ {
		b, _ := txt.ByteAt(at)
		if b != '.' && b != '!' && b != '?' {
			continue
		}
		next := at + 1
		if next >= size {
			return size
		}
		if nb, _ := txt.ByteAt(next); nb == ' ' || nb == '\t' || nb == '\n' {
			for next < size {
				nb, _ := txt.ByteAt(next)
				if nb != ' ' && nb != '\t' && nb != '\n' {
					break
				}
				next++
			}
			if next > pos {
				return next
			}
		}
	}
	return size
}

// sentencePrev backs up to the start of the previous sentence.
func sentencePrev(txt text.Text, pos int) int {
	if pos <= 0 {
		return 0
	}
	// Skip the whitespace and terminator immediately behind.
	at := pos - 1
	for at > 0 {
		b, _ := txt.ByteAt(at)
		if b != ' ' && b != '\t' && b != '\n' && b != '.' && b != '!' && b != '?' {
			break
		}
		at--
	}
	for at > 0 {
		b, _ := txt.ByteAt(at - 1)
		if b == '.' || b == '!' || b == '?' {
			// Start of this sentence: skip trailing whitespace forward.
			start := at
			for start < pos {
				sb, _ := txt.ByteAt(start)
				if sb != ' ' && sb != '\t' && sb != '\n' {
					break
				}
				start++
			}
			return start
		}
		at--
	}
	return 0
}

// pairs maps bracket characters to their partner and direction.
var pairs = map[byte]struct {
	match   byte
	forward bool
}{
	'(': {')', true},
	')': {'(', false},
	'[': {']', true},
	']': {'[', false},
	'{': {'}', true},
	'}': {'{', false},
	'<': {'>', true},
	'>': {'<', false},
}

// bracketMatch jumps between matching bracket pairs. The scan starts at
// the first bracket on the line at or after pos.
func bracketMatch(txt text.Text, pos int) int {
	end := txt.LineEnd(pos)
	at := pos
	var open byte
	for at < end {
		b, ok := txt.ByteAt(at)
		if !ok {
			return text.EPOS
		}
		if _, found := pairs[b]; found {
			open = b
			break
		}
		at++
	}
	if open == 0 {
		return text.EPOS
	}
	pair := pairs[open]
	depth := 0
	if pair.forward {
		for i := at; i < txt.Size(); i++ {
			b, _ := txt.ByteAt(i)
			switch b {
			case open:
				depth++
			case pair.match:
				depth--
				if depth == 0 {
					return i
				}
			}
		}
	} else {
		for i := at; i >= 0; i-- {
			b, _ := txt.ByteAt(i)
			switch b {
			case open:
				depth++
			case pair.match:
				depth--
				if depth == 0 {
					return i
				}
			}
		}
	}
	return text.EPOS
}

// gotoLine honors the count as a 1-based line number; without a count it
// falls back to def (first or last line).
func gotoLine(ed *Editor, def func(txt text.Text) int) int {
	txt := ed.win.File.Text
	if n := ed.action.EffectiveCount(); n > 0 {
		pos := txt.PosByLineno(n)
		if pos == text.EPOS {
			return text.EPOS
		}
		return txt.LineStart(pos)
	}
	return def(txt)
}

// Named motions.
var (
	MotionCharNext = Motion{Flags: MotionCharwise, Txt: charRight}
	MotionCharPrev = Motion{Flags: MotionCharwise, Txt: charLeft}

	MotionLineDown = Motion{Flags: MotionLinewise, Cur: lineDown}
	MotionLineUp   = Motion{Flags: MotionLinewise, Cur: lineUp}

	MotionLineDownStart = Motion{Flags: MotionLinewise, Txt: lineDownStart}
	MotionLineUpStart   = Motion{Flags: MotionLinewise, Txt: lineUpStart}

	MotionWordStartNext     = Motion{Flags: MotionCharwise, Txt: wordStartNext}
	MotionWordStartPrev     = Motion{Flags: MotionCharwise, Txt: wordStartPrev}
	MotionWordEndNext       = Motion{Flags: MotionCharwise | MotionInclusive, Txt: wordEndNext}
	MotionLongwordStartNext = Motion{Flags: MotionCharwise, Txt: longwordStartNext}
	MotionLongwordStartPrev = Motion{Flags: MotionCharwise, Txt: longwordStartPrev}
	MotionLongwordEndNext   = Motion{Flags: MotionCharwise | MotionInclusive, Txt: longwordEndNext}

	MotionLineBegin = Motion{Flags: MotionCharwise | MotionIdempotent,
		Txt: func(txt text.Text, pos int) int { return txt.LineBegin(pos) }}
	MotionLineStart = Motion{Flags: MotionCharwise | MotionIdempotent,
		Txt: func(txt text.Text, pos int) int { return txt.LineStart(pos) }}
	MotionLineFinish = Motion{Flags: MotionCharwise | MotionInclusive | MotionIdempotent,
		Txt: func(txt text.Text, pos int) int { return txt.LineFinish(pos) }}
	MotionLineEnd = Motion{Flags: MotionCharwise | MotionIdempotent,
		Txt: func(txt text.Text, pos int) int { return txt.LineEnd(pos) }}

	MotionFileBegin = Motion{Flags: MotionLinewise | MotionJump | MotionIdempotent,
		Vis: func(ed *Editor, pos int) int {
			return gotoLine(ed, func(txt text.Text) int { return txt.LineStart(0) })
		}}
	MotionFileEnd = Motion{Flags: MotionLinewise | MotionJump | MotionIdempotent,
		Vis: func(ed *Editor, pos int) int {
			return gotoLine(ed, func(txt text.Text) int {
				if txt.Size() == 0 {
					return 0
				}
				return txt.LineBegin(txt.Size() - 1)
			})
		}}

	MotionParagraphNext = Motion{Flags: MotionCharwise | MotionJump, Txt: paragraphNext}
	MotionParagraphPrev = Motion{Flags: MotionCharwise | MotionJump, Txt: paragraphPrev}
	MotionSentenceNext  = Motion{Flags: MotionCharwise, Txt: sentenceNext}
	MotionSentencePrev  = Motion{Flags: MotionCharwise, Txt: sentencePrev}

	MotionBracketMatch = Motion{Flags: MotionCharwise | MotionInclusive | MotionJump | MotionIdempotent,
		Txt: bracketMatch}

	// Screen-line motions. Without soft wrapping a screen line is the
	// buffer line.
	MotionScreenLineBegin = Motion{Flags: MotionCharwise | MotionIdempotent,
		View: func(v *View, pos int) int { return v.file.Text.LineBegin(pos) }}
	MotionScreenLineEnd = Motion{Flags: MotionCharwise | MotionIdempotent,
		View: func(v *View, pos int) int { return v.file.Text.LineEnd(pos) }}

	MotionHalfPageDown = Motion{Flags: MotionLinewise | MotionIdempotent, Win: pageMotion(1)}
	MotionHalfPageUp   = Motion{Flags: MotionLinewise | MotionIdempotent, Win: pageMotion(-1)}

	MotionChangelistPrev = Motion{Flags: MotionCharwise | MotionIdempotent,
		Win: func(w *Window, pos int) int { return w.ChangelistPrev() }}
	MotionChangelistNext = Motion{Flags: MotionCharwise | MotionIdempotent,
		Win: func(w *Window, pos int) int { return w.ChangelistNext() }}

	MotionMarkGoto = Motion{Flags: MotionCharwise | MotionJump | MotionIdempotent,
		File: markGoto}
	MotionMarkGotoLine = Motion{Flags: MotionLinewise | MotionJump | MotionIdempotent,
		File: markGotoLine}

	// MotionNop leaves the position unchanged. The executor substitutes
	// it to keep repeats of pure-visual operations well formed.
	MotionNop = Motion{Flags: MotionIdempotent,
		Txt: func(txt text.Text, pos int) int { return pos }}

	// MotionLineExtend spans count-1 additional lines. Doubled
	// operators (dd, yy) use it so their count covers whole lines.
	MotionLineExtend = Motion{Flags: MotionLinewise | MotionIdempotent,
		Vis: func(ed *Editor, pos int) int {
			txt := ed.win.File.Text
			n := ed.action.EffectiveCount()
			for i := 1; i < n; i++ {
				next := txt.LineNext(pos)
				if next >= txt.Size() {
					break
				}
				pos = next
			}
			return pos
		}}
)

// pageMotion moves half a screen of lines in the given direction.
func pageMotion(dir int) func(w *Window, pos int) int {
	return func(w *Window, pos int) int {
		txt := w.File.Text
		_, height := w.ed.ui.Size()
		lines := height / 2
		if lines < 1 {
			lines = 10
		}
		for i := 0; i < lines; i++ {
			if dir > 0 {
				next := txt.LineNext(pos)
				if next >= txt.Size() {
					break
				}
				pos = next
			} else {
				if txt.LineBegin(pos) == 0 {
					break
				}
				pos = txt.LinePrev(pos)
			}
		}
		return txt.LineStart(pos)
	}
}

// markGoto resolves the pending mark of the file's window's editor.
func markGoto(f *File, pos int) int {
	return f.markMotion(pos, false)
}

func markGotoLine(f *File, pos int) int {
	return f.markMotion(pos, true)
}

// pendingMark is set by the mark-goto bindings just before execution.
func (f *File) markMotion(pos int, linewise bool) int {
	p := f.MarkPos(f.pendingMark)
	if p == text.EPOS {
		return text.EPOS
	}
	if linewise {
		return f.Text.LineStart(p)
	}
	return p
}
