package editor

import (
	"github.com/dshills/vix/internal/text"
)

// File mark slots: a-z plus the selection endpoints '<' and '>'.
const (
	markSelStart = 26
	markSelEnd   = 27
	numMarks     = 28
)

// MarkIndex maps a mark name to its slot, or -1.
func MarkIndex(name rune) int {
	switch {
	case name >= 'a' && name <= 'z':
		return int(name - 'a')
	case name == '<':
		return markSelStart
	case name == '>':
		return markSelEnd
	}
	return -1
}

// File pairs one Text with its identity. Files are shared between
// windows showing the same name and freed when the last window closes.
type File struct {
	Text text.Text
	Name string

	refs      int
	marks     [numMarks]text.Mark
	truncated bool

	// pendingMark is the slot a mark motion resolves; set by the
	// mark-goto bindings just before execution.
	pendingMark int

	// internal keeps the file alive without a window (e.g. the prompt).
	internal bool
}

// newFile wraps a text buffer.
func newFile(txt text.Text, name string) *File {
	f := &File{Text: txt, Name: name, pendingMark: -1}
	for i := range f.marks {
		f.marks[i] = text.MarkNone
	}
	return f
}

// SetMarkAt stores a mark slot pointing at pos.
func (f *File) SetMarkAt(slot, pos int) {
	if slot < 0 || slot >= numMarks {
		return
	}
	f.marks[slot] = f.Text.SetMark(pos)
}

// MarkPos resolves a mark slot to its current position, EPOS when unset.
func (f *File) MarkPos(slot int) int {
	if slot < 0 || slot >= numMarks {
		return text.EPOS
	}
	return f.Text.MarkPos(f.marks[slot])
}

// Truncated reports whether the backing storage was lost.
func (f *File) Truncated() bool {
	return f.truncated
}

// SetTruncated flags the file after a storage fault.
func (f *File) SetTruncated() {
	f.truncated = true
}

// ref bumps the reference count.
func (f *File) ref() {
	f.refs++
}

// openFile returns the existing file with the given name, or loads it.
// An empty name always creates a fresh scratch buffer.
func (ed *Editor) openFile(name string) (*File, error) {
	if name != "" {
		for _, f := range ed.files {
			if f.Name == name {
				return f, nil
			}
		}
	}
	var txt text.Text
	if name == "" {
		txt = text.New()
	} else {
		buf, err := text.Load(name)
		if err != nil {
			return nil, err
		}
		txt = buf
	}
	f := newFile(txt, name)
	ed.files = append(ed.files, f)
	return f, nil
}

// AddFileFromText registers a pre-built buffer, used for stdin input.
func (ed *Editor) AddFileFromText(txt text.Text, name string) *File {
	f := newFile(txt, name)
	ed.files = append(ed.files, f)
	return f
}

// releaseFile drops one reference and frees the file when unused.
func (ed *Editor) releaseFile(f *File) {
	f.refs--
	if f.refs > 0 || f.internal {
		return
	}
	for i, other := range ed.files {
		if other == f {
			ed.files = append(ed.files[:i], ed.files[i+1:]...)
			break
		}
	}
}
