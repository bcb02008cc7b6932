package editor

import (
	"testing"

	"github.com/dshills/vix/internal/input/mode"
)

func TestDeleteLinewiseAtEOF(t *testing.T) {
	ed := testEditor("one\ntwo\n")
	ed.Input("jdd")
	if got := bufOf(ed); got != "one\n" {
		t.Errorf("buffer = %q", got)
	}
	// Deleting the last line lands on the begin of the previous one.
	if got := curOf(ed); got != 0 {
		t.Errorf("cursor = %d, want 0", got)
	}
}

func TestDeleteMultipleLines(t *testing.T) {
	ed := testEditor("a\nb\nc\nd\n")
	ed.Input("2dd")
	if got := bufOf(ed); got != "c\nd\n" {
		t.Errorf("buffer = %q", got)
	}
	reg := ed.Register(DefaultRegister)
	if !reg.Linewise || string(reg.Bytes()) != "a\nb\n" {
		t.Errorf("register = %q linewise=%v", reg.Bytes(), reg.Linewise)
	}
}

func TestPutVariants(t *testing.T) {
	tests := []struct {
		name    string
		keys    string
		want    string
		wantCur int
	}{
		{"after", "ywp", "HHello ello World\n", 1},
		{"before", "ywP", "Hello Hello World\n", 0},
		{"after to end", "ywgp", "HHello ello World\n", 7},
		{"before to end", "ywgP", "Hello Hello World\n", 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed := testEditor("Hello World\n")
			ed.Input(tt.keys)
			if got := bufOf(ed); got != tt.want {
				t.Errorf("buffer = %q, want %q", got, tt.want)
			}
			if got := curOf(ed); got != tt.wantCur {
				t.Errorf("cursor = %d, want %d", got, tt.wantCur)
			}
		})
	}
}

func TestPutCharwise(t *testing.T) {
	ed := testEditor("ab\n")
	ed.Input("ylp")
	if got := bufOf(ed); got != "aab\n" {
		t.Errorf("buffer = %q, want %q", got, "aab\n")
	}
	if got := curOf(ed); got != 1 {
		t.Errorf("cursor = %d, want 1", got)
	}
}

func TestPutWithCount(t *testing.T) {
	ed := testEditor("x\n")
	ed.Input("yl3p")
	if got := bufOf(ed); got != "xxxx\n" {
		t.Errorf("buffer = %q, want %q", got, "xxxx\n")
	}
}

func TestPutLinewiseBefore(t *testing.T) {
	ed := testEditor("one\ntwo\n")
	ed.Input("jyyP")
	if got := bufOf(ed); got != "one\ntwo\ntwo\n" {
		t.Errorf("buffer = %q", got)
	}
}

func TestShiftLeft(t *testing.T) {
	ed := testEditor("\tfoo\n        bar\n")
	ed.options.Tabwidth = 4
	ed.Input("Vj<lt>")
	if got := bufOf(ed); got != "foo\n    bar\n" {
		t.Errorf("buffer = %q", got)
	}
}

func TestShiftRightTabs(t *testing.T) {
	ed := testEditor("foo\nbar\n")
	ed.options.Tabwidth = 4
	// Without expandtab the indent is a literal tab.
	ed.Input("Vj>")
	if got := bufOf(ed); got != "\tfoo\n\tbar\n" {
		t.Errorf("buffer = %q", got)
	}
}

func TestCaseChange(t *testing.T) {
	ed := testEditor("mixed CASE line\n")
	ed.Input("gUiw")
	if got := bufOf(ed); got != "MIXED CASE line\n" {
		t.Errorf("gUiw: %q", got)
	}

	ed = testEditor("mixed CASE line\n")
	ed.Input("6lguiw")
	if got := bufOf(ed); got != "mixed case line\n" {
		t.Errorf("guiw: %q", got)
	}

	ed = testEditor("aB é z\n")
	ed.Input("g~$")
	// ASCII toggles; non-ASCII passes through.
	if got := bufOf(ed); got != "Ab é Z\n" {
		t.Errorf("g~$: %q", got)
	}
}

func TestJoinSkipsFinalBreakLinewise(t *testing.T) {
	ed := testEditor("x\ny\nz\n")
	ed.Input("VjJ")
	if got := bufOf(ed); got != "x y\nz\n" {
		t.Errorf("buffer = %q", got)
	}
}

func TestJoinEatsIndent(t *testing.T) {
	ed := testEditor("one\n    two\n")
	ed.Input("J")
	if got := bufOf(ed); got != "one two\n" {
		t.Errorf("buffer = %q", got)
	}
}

func TestVisualMultiCursorInsert(t *testing.T) {
	ed := testEditor("aa\nbb\n")
	ed.Input("VjIX")
	if got := bufOf(ed); got != "Xaa\nXbb\n" {
		t.Errorf("buffer = %q", got)
	}
	if got := ed.win.View.Count(); got != 2 {
		t.Errorf("cursor count = %d, want 2", got)
	}
	ed.Input("<Escape>")
	if ed.mode.ID != mode.Normal {
		t.Errorf("mode = %v", ed.mode.ID)
	}
}

func TestMultiCursorPrivateRegisters(t *testing.T) {
	ed := testEditor("aa bb\ncc dd\n")
	ed.win.View.AddCursor(6)
	ed.Input("yw")

	cursors := ed.win.View.Ordered()
	if len(cursors) != 2 {
		t.Fatalf("cursor count = %d", len(cursors))
	}
	if got := string(cursors[0].PrivateRegister().Bytes()); got != "aa " {
		t.Errorf("cursor 0 register = %q", got)
	}
	if got := string(cursors[1].PrivateRegister().Bytes()); got != "cc " {
		t.Errorf("cursor 1 register = %q", got)
	}
}

func TestMultiCursorDeleteKeepsCursorCount(t *testing.T) {
	ed := testEditor("one two\nthree four\n")
	ed.win.View.AddCursor(8)
	ed.Input("dw")
	if got := bufOf(ed); got != "two\nfour\n" {
		t.Errorf("buffer = %q", got)
	}
	if got := ed.win.View.Count(); got != 2 {
		t.Errorf("cursor count = %d, want 2", got)
	}
	cursors := ed.win.View.Ordered()
	if cursors[0].Pos != 0 || cursors[1].Pos != 4 {
		t.Errorf("cursors at %d,%d want 0,4", cursors[0].Pos, cursors[1].Pos)
	}
}

func TestChangeEntersInsert(t *testing.T) {
	ed := testEditor("word here\n")
	ed.Input("cw")
	if ed.mode.ID != mode.Insert {
		t.Fatalf("mode = %v, want insert", ed.mode.ID)
	}
	ed.Input("sub<Escape>")
	if got := bufOf(ed); got != "subhere\n" {
		t.Errorf("buffer = %q", got)
	}
}
