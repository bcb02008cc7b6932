package editor

import (
	"regexp"

	"github.com/dshills/vix/internal/text"
)

// findChar remembers the last f/F/t/T target for ; and , repeats.
type findChar struct {
	char    string
	forward bool
	till    bool
	set     bool
}

// searchState is the editor-wide search memory.
type searchState struct {
	re      *regexp.Regexp
	forward bool
	find    findChar
}

// SearchPattern compiles and installs a search pattern. A compile
// failure refuses the search and reports it.
func (ed *Editor) SearchPattern(pattern string, forward bool) bool {
	re, err := regexp.Compile(pattern)
	if err != nil {
		ed.Info("bad pattern: %v", err)
		ed.action.Reset()
		return false
	}
	ed.search.re = re
	ed.search.forward = forward
	return true
}

// searchMove finds the next match in the given direction, wrapping.
func searchMove(ed *Editor, pos int, forward bool) int {
	if ed.search.re == nil {
		return text.EPOS
	}
	txt := ed.win.File.Text
	var r text.Range
	if forward {
		r = txt.SearchForward(pos+1, ed.search.re)
	} else {
		r = txt.SearchBackward(pos, ed.search.re)
	}
	if !r.Valid() {
		return text.EPOS
	}
	return r.Start
}

// findCharMove scans the current line for the remembered character.
func findCharMove(ed *Editor, pos int, forward, till bool) int {
	fc := ed.search.find
	if !fc.set || fc.char == "" {
		return text.EPOS
	}
	txt := ed.win.File.Text
	n := len(fc.char)

	match := func(at int) bool {
		data := txt.BytesRange(text.Range{Start: at, End: at + n})
		return string(data) == fc.char
	}

	if forward {
		end := txt.LineEnd(pos)
		for at := txt.CharNext(pos); at < end; at = txt.CharNext(at) {
			if match(at) {
				if till {
					return txt.CharPrev(at)
				}
				return at
			}
		}
		return text.EPOS
	}

	begin := txt.LineBegin(pos)
	for at := pos; at > begin; {
		at = txt.CharPrev(at)
		if match(at) {
			if till {
				return txt.CharNext(at)
			}
			return at
		}
	}
	return text.EPOS
}

// wordUnderCursor returns the word-class run at pos.
func wordUnderCursor(txt text.Text, pos int) string {
	r := objectWord(txt, pos)
	if !r.Valid() || r.Len() == 0 {
		return ""
	}
	if classAt(txt, r.Start) != classWord {
		return ""
	}
	return string(txt.BytesRange(r))
}

// SearchWord installs a whole-word pattern for the word at the primary
// cursor. Returns false when the cursor is not on a word.
func (ed *Editor) SearchWord(forward bool) bool {
	txt := ed.win.File.Text
	word := wordUnderCursor(txt, ed.win.View.Primary().Pos)
	if word == "" {
		ed.Info("no word under cursor")
		ed.action.Reset()
		return false
	}
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(word) + `\b`)
	if err != nil {
		ed.action.Reset()
		return false
	}
	ed.search.re = re
	ed.search.forward = forward
	return true
}

// Search and find-char motions.
var (
	MotionSearchNext = Motion{Flags: MotionCharwise | MotionJump,
		Vis: func(ed *Editor, pos int) int { return searchMove(ed, pos, ed.search.forward) }}
	MotionSearchPrev = Motion{Flags: MotionCharwise | MotionJump,
		Vis: func(ed *Editor, pos int) int { return searchMove(ed, pos, !ed.search.forward) }}

	MotionFindNext = Motion{Flags: MotionCharwise | MotionInclusive,
		Vis: func(ed *Editor, pos int) int { return findCharMove(ed, pos, true, false) }}
	MotionFindPrev = Motion{Flags: MotionCharwise,
		Vis: func(ed *Editor, pos int) int { return findCharMove(ed, pos, false, false) }}
	MotionTillNext = Motion{Flags: MotionCharwise | MotionInclusive,
		Vis: func(ed *Editor, pos int) int { return findCharMove(ed, pos, true, true) }}
	MotionTillPrev = Motion{Flags: MotionCharwise,
		Vis: func(ed *Editor, pos int) int { return findCharMove(ed, pos, false, true) }}

	MotionFindRepeat = Motion{Flags: MotionCharwise | MotionInclusive,
		Vis: func(ed *Editor, pos int) int {
			fc := ed.search.find
			return findCharMove(ed, pos, fc.forward, fc.till)
		}}
	MotionFindReverse = Motion{Flags: MotionCharwise | MotionInclusive,
		Vis: func(ed *Editor, pos int) int {
			fc := ed.search.find
			return findCharMove(ed, pos, !fc.forward, fc.till)
		}}
)
