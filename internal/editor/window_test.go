package editor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dshills/vix/internal/text"
)

func manyLines(n int) string {
	var sb strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&sb, "line %d\n", i)
	}
	return sb.String()
}

func TestJumplistWalk(t *testing.T) {
	ed := testEditor(manyLines(50))
	txt := ed.win.File.Text

	// Three jumps: G (from line 1), gg (from line 50), 25gg (from line 1).
	ed.Input("G")
	ed.Input("gg")
	ed.Input("25gg")

	lineAt := func() int { return txt.Lineno(curOf(ed)) }
	if got := lineAt(); got != 25 {
		t.Fatalf("setup line = %d", got)
	}

	// Walking back yields the origins in reverse order.
	ed.Input("<C-o>")
	if got := lineAt(); got != 1 {
		t.Errorf("first <C-o> line = %d, want 1", got)
	}
	ed.Input("<C-o>")
	if got := lineAt(); got != 50 {
		t.Errorf("second <C-o> line = %d, want 50", got)
	}
	ed.Input("<C-o>")
	if got := lineAt(); got != 1 {
		t.Errorf("third <C-o> line = %d, want 1", got)
	}

	// And forward again.
	ed.Input("<C-i>")
	if got := lineAt(); got != 50 {
		t.Errorf("<C-i> line = %d, want 50", got)
	}
}

func TestJumplistMarksTrackEdits(t *testing.T) {
	ed := testEditor("alpha\n\nbravo\n")
	txt := ed.win.File.Text

	ed.Input("G")                     // records line 1, lands on bravo
	ed.Input("ggOinserted\n<Escape>") // records bravo's position, edits above it
	ed.Input("G")                     // records the post-edit position

	ed.Input("<C-o>") // back to where the last G left
	ed.Input("<C-o>") // the gg origin: bravo, shifted by the insertions
	if got := txt.Lineno(curOf(ed)); got != 5 {
		t.Errorf("jump origin line = %d, want 5 (mark follows edits)", got)
	}
}

func TestJumplistBounded(t *testing.T) {
	r := newMarkRing(3)
	for i := 0; i < 5; i++ {
		r.Push(text.Mark(i))
	}
	if r.Len() != 3 {
		t.Fatalf("len = %d, want 3", r.Len())
	}
	// Oldest entries were evicted.
	m, ok := r.Prev()
	if !ok || m != text.Mark(4) {
		t.Errorf("newest = %v", m)
	}
	m, _ = r.Prev()
	if m != text.Mark(3) {
		t.Errorf("second = %v", m)
	}
	m, _ = r.Prev()
	if m != text.Mark(2) {
		t.Errorf("third = %v", m)
	}
	if _, ok := r.Prev(); ok {
		t.Error("walked past the oldest entry")
	}
}

func TestJumplistInvalidateRestartsAtNewest(t *testing.T) {
	ed := testEditor(manyLines(30))
	txt := ed.win.File.Text
	lineAt := func() int { return txt.Lineno(curOf(ed)) }

	ed.Input("5gg") // records line 1
	ed.Input("G")   // records line 5
	ed.Input("gg")  // records line 30

	ed.Input("<C-o>")
	if got := lineAt(); got != 30 {
		t.Fatalf("first <C-o> line = %d, want 30", got)
	}

	// A plain motion invalidates the ring cursor; the next walk
	// restarts at the newest end instead of stepping deeper to line 5.
	ed.Input("k")
	ed.Input("<C-o>")
	if got := lineAt(); got != 1 {
		t.Errorf("<C-o> after invalidation: line = %d, want 1", got)
	}
}

func TestChangelistWalk(t *testing.T) {
	ed := testEditor("one\ntwo\n")
	ed.Input("iX<Escape>")  // change at 0
	ed.Input("jiY<Escape>") // change at 6
	ed.Input("gg")

	ed.Input("g;")
	if got := curOf(ed); got != 6 {
		t.Errorf("first g; = %d, want 6", got)
	}
	ed.Input("g;")
	if got := curOf(ed); got != 0 {
		t.Errorf("second g; = %d, want 0", got)
	}
	// Past the end of history the position holds.
	ed.Input("g;")
	if got := curOf(ed); got != 0 {
		t.Errorf("third g; = %d, want 0", got)
	}
	// Back toward newer changes.
	ed.Input("g,")
	if got := curOf(ed); got != 6 {
		t.Errorf("g, = %d, want 6", got)
	}
}

func TestChangelistResetsOnNewEdit(t *testing.T) {
	ed := testEditor("abcd\n")
	ed.Input("iX<Escape>")
	ed.Input("g;")
	if got := curOf(ed); got != 0 {
		t.Fatalf("g; = %d", got)
	}
	// A new edit resets the walk to the most recent change.
	ed.Input("$iY<Escape>")
	ed.Input("gg")
	ed.Input("g;")
	txt := ed.win.File.Text
	if got := curOf(ed); got != txt.ChangePos(0) {
		t.Errorf("g; after edit = %d, want %d", got, txt.ChangePos(0))
	}
}

func TestWindowCloseReleasesFile(t *testing.T) {
	ed := testEditor("data\n")
	if len(ed.files) != 1 {
		t.Fatalf("files = %d", len(ed.files))
	}
	w := ed.win
	ed.CloseWindow(w)
	if len(ed.files) != 0 {
		t.Errorf("file survived the last window")
	}
	if ed.Running() {
		t.Error("editor keeps running with no window")
	}
}
