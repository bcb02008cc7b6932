package text

import (
	"io"
	"io/fs"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// EPOS is the invalid position. Motions and lookups that fail return it.
const EPOS = -1

// Mark is a handle to a stable position that tracks edits.
type Mark int

// MarkNone is the zero value for an unset mark.
const MarkNone Mark = -1

// RevisionID identifies a buffer state in history.
// Two IDs compare equal iff they name the same state.
type RevisionID uuid.UUID

// NewRevisionID creates a fresh, unique revision ID.
func NewRevisionID() RevisionID {
	return RevisionID(uuid.New())
}

// String returns the canonical string form of the ID.
func (r RevisionID) String() string {
	return uuid.UUID(r).String()
}

// Range is a half-open byte range [Start, End).
type Range struct {
	Start int
	End   int
}

// EmptyRange returns the canonical invalid range.
func EmptyRange() Range {
	return Range{Start: EPOS, End: EPOS}
}

// Valid returns true if the range has usable bounds.
func (r Range) Valid() bool {
	return r.Start >= 0 && r.Start <= r.End
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int {
	if !r.Valid() {
		return 0
	}
	return r.End - r.Start
}

// Contains returns true if pos lies within [Start, End).
func (r Range) Contains(pos int) bool {
	return r.Valid() && pos >= r.Start && pos < r.End
}

// Union returns the smallest range covering both r and other.
// An invalid operand yields the other operand.
func (r Range) Union(other Range) Range {
	if !r.Valid() {
		return other
	}
	if !other.Valid() {
		return r
	}
	u := r
	if other.Start < u.Start {
		u.Start = other.Start
	}
	if other.End > u.End {
		u.End = other.End
	}
	return u
}

// Overlaps returns true if the two ranges share at least one byte.
func (r Range) Overlaps(other Range) bool {
	return r.Valid() && other.Valid() && r.Start < other.End && other.Start < r.End
}

// Clamp limits the range to [0, size].
func (r Range) Clamp(size int) Range {
	if !r.Valid() {
		return r
	}
	if r.Start > size {
		r.Start = size
	}
	if r.End > size {
		r.End = size
	}
	return r
}

// FileStat records what was known about the backing file at load time.
type FileStat struct {
	Exists  bool
	Size    int64
	Mode    fs.FileMode
	ModTime time.Time
}

// Text is the buffer primitive the editor core operates on.
// All positions are byte offsets into the current content.
type Text interface {
	// Mutation. Both return false when the arguments are out of range;
	// the buffer is unchanged in that case.
	Insert(pos int, data []byte) bool
	Delete(pos, n int) bool

	// Content access.
	Size() int
	Bytes() []byte
	BytesRange(r Range) []byte
	ByteAt(pos int) (byte, bool)
	RuneAt(pos int) (rune, int)

	// Grapheme-cluster stepping. CharNext and CharPrev clamp at the
	// buffer boundaries rather than returning EPOS.
	CharNext(pos int) int
	CharPrev(pos int) int

	// Line navigation. Begin is column zero, Start the first non-blank,
	// Finish the last non-blank, End the newline position (or size on
	// the last line). Next and Prev return the begin of the adjacent
	// line; Next returns size at the last line, Prev returns 0 at the
	// first.
	LineBegin(pos int) int
	LineStart(pos int) int
	LineFinish(pos int) int
	LineEnd(pos int) int
	LineNext(pos int) int
	LinePrev(pos int) int
	PosByLineno(line int) int
	Lineno(pos int) int

	// Stable marks. A mark keeps its logical position across edits;
	// marks inside a deleted range collapse to the deletion point.
	SetMark(pos int) Mark
	MarkPos(m Mark) int

	// History. Snapshot commits pending edits as an undo boundary.
	// Undo and Redo return the position of the change they applied, or
	// EPOS when there is nothing to do. State changes on every edit.
	// ChangePos returns the position of the index-th most recent
	// committed change, EPOS past the end of history.
	Snapshot()
	Undo() int
	Redo() int
	State() RevisionID
	ChangePos(index int) int
	Modified() bool

	// Search. Both wrap around and return an invalid range when the
	// pattern does not match anywhere.
	SearchForward(pos int, re *regexp.Regexp) Range
	SearchBackward(pos int, re *regexp.Regexp) Range

	// Metadata.
	NewlineType() string
	Stat() FileStat

	// SigBus reports whether the fault address belongs to this buffer's
	// backing storage. The in-memory implementation never faults.
	SigBus(addr uintptr) bool

	// Persistence.
	Write(w io.Writer) (int64, error)
	Save(path string) error
}
