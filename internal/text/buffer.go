package text

import (
	"bytes"
	"io"
	"os"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// revision is one committed state in a buffer's history.
type revision struct {
	id      RevisionID
	content []byte
	// pos is the position of the last edit leading into this revision.
	// EPOS for the initial revision.
	pos int
}

// Buffer is the in-memory Text implementation.
type Buffer struct {
	content []byte
	marks   []int

	history []revision
	index   int
	dirty   bool
	editPos int

	state   RevisionID
	newline string
	stat    FileStat
}

// compile-time interface check
var _ Text = (*Buffer)(nil)

// New creates an empty buffer.
func New() *Buffer {
	return newBuffer(nil, FileStat{})
}

// NewFromBytes creates a buffer holding a copy of data.
func NewFromBytes(data []byte) *Buffer {
	content := make([]byte, len(data))
	copy(content, data)
	return newBuffer(content, FileStat{})
}

// Load reads the file at path into a new buffer.
// A missing file yields an empty buffer with Stat().Exists == false.
func Load(path string) (*Buffer, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	stat := FileStat{
		Exists:  true,
		Size:    info.Size(),
		Mode:    info.Mode(),
		ModTime: info.ModTime(),
	}
	return newBuffer(data, stat), nil
}

func newBuffer(content []byte, stat FileStat) *Buffer {
	b := &Buffer{
		content: content,
		state:   NewRevisionID(),
		newline: detectNewline(content),
		stat:    stat,
		editPos: EPOS,
	}
	initial := make([]byte, len(content))
	copy(initial, content)
	b.history = []revision{{id: b.state, content: initial, pos: EPOS}}
	return b
}

// detectNewline picks the dominant newline style of data.
func detectNewline(data []byte) string {
	if i := bytes.IndexByte(data, '\n'); i > 0 && data[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}

// Insert splices data into the buffer at pos.
func (b *Buffer) Insert(pos int, data []byte) bool {
	if pos < 0 || pos > len(b.content) {
		return false
	}
	if len(data) == 0 {
		return true
	}
	grown := make([]byte, 0, len(b.content)+len(data))
	grown = append(grown, b.content[:pos]...)
	grown = append(grown, data...)
	grown = append(grown, b.content[pos:]...)
	b.content = grown

	for i, m := range b.marks {
		if m >= pos {
			b.marks[i] = m + len(data)
		}
	}
	b.edited(pos)
	return true
}

// Delete removes n bytes starting at pos.
func (b *Buffer) Delete(pos, n int) bool {
	if pos < 0 || n < 0 || pos+n > len(b.content) {
		return false
	}
	if n == 0 {
		return true
	}
	b.content = append(b.content[:pos], b.content[pos+n:]...)

	for i, m := range b.marks {
		switch {
		case m >= pos+n:
			b.marks[i] = m - n
		case m > pos:
			b.marks[i] = pos
		}
	}
	b.edited(pos)
	return true
}

// edited records a mutation at pos.
func (b *Buffer) edited(pos int) {
	b.dirty = true
	b.editPos = pos
	b.state = NewRevisionID()
}

// Size returns the buffer length in bytes.
func (b *Buffer) Size() int {
	return len(b.content)
}

// Bytes returns a copy of the whole content.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, len(b.content))
	copy(out, b.content)
	return out
}

// BytesRange returns a copy of the bytes covered by r, clamped to the buffer.
func (b *Buffer) BytesRange(r Range) []byte {
	r = r.Clamp(len(b.content))
	if !r.Valid() {
		return nil
	}
	out := make([]byte, r.Len())
	copy(out, b.content[r.Start:r.End])
	return out
}

// ByteAt returns the byte at pos.
func (b *Buffer) ByteAt(pos int) (byte, bool) {
	if pos < 0 || pos >= len(b.content) {
		return 0, false
	}
	return b.content[pos], true
}

// RuneAt decodes the rune starting at pos.
func (b *Buffer) RuneAt(pos int) (rune, int) {
	if pos < 0 || pos >= len(b.content) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRune(b.content[pos:])
}

// CharNext returns the offset after the grapheme cluster at pos.
func (b *Buffer) CharNext(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos >= len(b.content) {
		return len(b.content)
	}
	_, rest, _, _ := uniseg.FirstGraphemeCluster(b.content[pos:], -1)
	return len(b.content) - len(rest)
}

// CharPrev returns the offset of the grapheme cluster before pos.
func (b *Buffer) CharPrev(pos int) int {
	if pos <= 0 {
		return 0
	}
	if pos > len(b.content) {
		pos = len(b.content)
	}
	// Walk forward from the line begin; grapheme boundaries cannot be
	// found by scanning backwards.
	start := b.LineBegin(pos)
	if start == pos {
		// Step over the newline of the previous line.
		if pos >= 2 && b.content[pos-2] == '\r' && b.content[pos-1] == '\n' {
			return pos - 2
		}
		return pos - 1
	}
	prev := start
	for at := start; at < pos; {
		next := b.CharNext(at)
		if next <= at {
			break
		}
		prev = at
		at = next
	}
	return prev
}

// SetMark creates a stable mark at pos.
func (b *Buffer) SetMark(pos int) Mark {
	if pos < 0 || pos > len(b.content) {
		return MarkNone
	}
	b.marks = append(b.marks, pos)
	return Mark(len(b.marks) - 1)
}

// MarkPos resolves a mark to its current position.
func (b *Buffer) MarkPos(m Mark) int {
	if m < 0 || int(m) >= len(b.marks) {
		return EPOS
	}
	return b.marks[m]
}

// Snapshot commits pending edits as an undo boundary.
// It is a no-op when nothing changed since the last commit.
func (b *Buffer) Snapshot() {
	if !b.dirty {
		return
	}
	b.history = b.history[:b.index+1]
	content := make([]byte, len(b.content))
	copy(content, b.content)
	b.history = append(b.history, revision{id: b.state, content: content, pos: b.editPos})
	b.index++
	b.dirty = false
}

// Undo steps back one committed revision.
// Returns the position of the undone change, or EPOS at the oldest state.
func (b *Buffer) Undo() int {
	b.Snapshot()
	if b.index == 0 {
		return EPOS
	}
	pos := b.history[b.index].pos
	b.index--
	b.restore(b.history[b.index])
	if pos > len(b.content) {
		pos = len(b.content)
	}
	return pos
}

// Redo steps forward one committed revision.
// Returns the position of the reapplied change, or EPOS at the newest state.
func (b *Buffer) Redo() int {
	b.Snapshot()
	if b.index+1 >= len(b.history) {
		return EPOS
	}
	b.index++
	b.restore(b.history[b.index])
	pos := b.history[b.index].pos
	if pos > len(b.content) {
		pos = len(b.content)
	}
	return pos
}

func (b *Buffer) restore(rev revision) {
	b.content = make([]byte, len(rev.content))
	copy(b.content, rev.content)
	b.state = rev.id
	b.dirty = false
	for i, m := range b.marks {
		if m > len(b.content) {
			b.marks[i] = len(b.content)
		}
	}
}

// State returns the token identifying the current content.
func (b *Buffer) State() RevisionID {
	return b.state
}

// ChangePos returns the position of the index-th most recent committed change.
func (b *Buffer) ChangePos(index int) int {
	if index < 0 {
		return EPOS
	}
	at := b.index - index
	if at < 1 || at >= len(b.history) {
		return EPOS
	}
	pos := b.history[at].pos
	if pos > len(b.content) {
		pos = len(b.content)
	}
	return pos
}

// Modified returns true if the content differs from the initial revision.
func (b *Buffer) Modified() bool {
	return b.dirty || b.index != 0
}

// NewlineType returns the newline sequence detected at load time.
func (b *Buffer) NewlineType() string {
	return b.newline
}

// Stat returns the load-time file metadata.
func (b *Buffer) Stat() FileStat {
	return b.stat
}

// SigBus reports mapped-storage faults; an in-memory buffer has none.
func (b *Buffer) SigBus(addr uintptr) bool {
	return false
}

// Write streams the content to w.
func (b *Buffer) Write(w io.Writer) (int64, error) {
	n, err := w.Write(b.content)
	return int64(n), err
}

// Save writes the content to path and refreshes the stat record.
func (b *Buffer) Save(path string) error {
	mode := b.stat.Mode
	if mode == 0 {
		mode = 0o644
	}
	if err := os.WriteFile(path, b.content, mode.Perm()); err != nil {
		return err
	}
	if info, err := os.Stat(path); err == nil {
		b.stat = FileStat{
			Exists:  true,
			Size:    info.Size(),
			Mode:    info.Mode(),
			ModTime: info.ModTime(),
		}
	}
	return nil
}
