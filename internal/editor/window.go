package editor

import (
	"github.com/dshills/vix/internal/text"
)

// Window pairs one file with one view and owns the navigation lists.
type Window struct {
	ed   *Editor
	File *File
	View *View

	jumplist   *markRing
	changelist changeList

	// topLine is the first visible 1-based line, for rendering.
	topLine int

	prev, next *Window
}

// changeList walks the text's edit history.
type changeList struct {
	index int
	state text.RevisionID
	valid bool
}

// NewWindow opens name in a fresh window and focuses it. Windows on the
// same name share the underlying file.
func (ed *Editor) NewWindow(name string) (*Window, error) {
	f, err := ed.openFile(name)
	if err != nil {
		return nil, err
	}
	return ed.newWindowForFile(f), nil
}

// NewWindowForText opens a window over a pre-built buffer.
func (ed *Editor) NewWindowForText(txt text.Text, name string) *Window {
	return ed.newWindowForFile(ed.AddFileFromText(txt, name))
}

func (ed *Editor) newWindowForFile(f *File) *Window {
	f.ref()
	w := &Window{
		ed:       ed,
		File:     f,
		View:     newView(f),
		jumplist: newMarkRing(jumplistSize),
		topLine:  1,
	}
	if ed.windows != nil {
		w.next = ed.windows
		ed.windows.prev = w
	}
	ed.windows = w
	ed.win = w
	return w
}

// CloseWindow unlinks w and releases its file. With no windows left the
// editor exits cleanly.
func (ed *Editor) CloseWindow(w *Window) {
	if w.prev != nil {
		w.prev.next = w.next
	} else {
		ed.windows = w.next
	}
	if w.next != nil {
		w.next.prev = w.prev
	}
	if ed.win == w {
		if w.next != nil {
			ed.win = w.next
		} else {
			ed.win = ed.windows
		}
	}
	ed.releaseFile(w.File)
	if ed.windows == nil && ed.running {
		ed.Exit(ed.exitStatus)
	}
}

// Focus makes w the focused window.
func (ed *Editor) Focus(w *Window) {
	if w != nil {
		ed.win = w
	}
}

// JumplistPush records pos before a jump motion.
func (w *Window) JumplistPush(pos int) {
	// Skip consecutive duplicates of the newest entry.
	if n := w.jumplist.Len(); n > 0 {
		if last := w.File.Text.MarkPos(w.jumplist.marks[n-1]); last == pos {
			w.jumplist.Invalidate()
			return
		}
	}
	w.jumplist.Push(w.File.Text.SetMark(pos))
}

// JumplistInvalidate resets the ring cursor to the newest end.
func (w *Window) JumplistInvalidate() {
	w.jumplist.Invalidate()
}

// JumplistPrev walks back in the jumplist. The current position is
// saved on the first backward step so the walk can be retraced.
func (w *Window) JumplistPrev(cur int) int {
	if w.jumplist.AtNewest() && w.jumplist.Len() > 0 {
		w.jumplist.marks = append(w.jumplist.marks, w.File.Text.SetMark(cur))
		if len(w.jumplist.marks) > w.jumplist.cap {
			copy(w.jumplist.marks, w.jumplist.marks[1:])
			w.jumplist.marks = w.jumplist.marks[:len(w.jumplist.marks)-1]
		}
		w.jumplist.cur = len(w.jumplist.marks) - 1
	}
	m, ok := w.jumplist.Prev()
	if !ok {
		return text.EPOS
	}
	return w.File.Text.MarkPos(m)
}

// JumplistNext walks forward in the jumplist.
func (w *Window) JumplistNext() int {
	m, ok := w.jumplist.Next()
	if !ok {
		return text.EPOS
	}
	return w.File.Text.MarkPos(m)
}

// ChangelistPrev steps to an older change position.
func (w *Window) ChangelistPrev() int {
	txt := w.File.Text
	state := txt.State()
	if !w.changelist.valid || state != w.changelist.state {
		w.changelist = changeList{index: 0, state: state, valid: true}
	} else {
		w.changelist.index++
	}
	pos := txt.ChangePos(w.changelist.index)
	if pos == text.EPOS {
		// Past the end of history: step back.
		if w.changelist.index > 0 {
			w.changelist.index--
		}
		return text.EPOS
	}
	return pos
}

// ChangelistNext steps to a newer change position.
func (w *Window) ChangelistNext() int {
	txt := w.File.Text
	state := txt.State()
	if !w.changelist.valid || state != w.changelist.state {
		w.changelist = changeList{index: 0, state: state, valid: true}
		return txt.ChangePos(0)
	}
	if w.changelist.index == 0 {
		return text.EPOS
	}
	w.changelist.index--
	return txt.ChangePos(w.changelist.index)
}
