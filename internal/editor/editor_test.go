package editor

import (
	"testing"

	"github.com/dshills/vix/internal/input/mode"
	"github.com/dshills/vix/internal/text"
	"github.com/dshills/vix/internal/ui"
)

// testEditor builds a headless editor over the given buffer content.
func testEditor(content string) *Editor {
	ed := New(ui.NewNoop())
	ed.NewWindowForText(text.NewFromBytes([]byte(content)), "")
	return ed
}

func bufOf(ed *Editor) string {
	return string(ed.win.File.Text.Bytes())
}

func curOf(ed *Editor) int {
	return ed.win.View.Primary().Pos
}

func TestDeleteWordForward(t *testing.T) {
	ed := testEditor("Hello World\n")
	ed.Input("dw")

	if got := bufOf(ed); got != "World\n" {
		t.Errorf("buffer = %q, want %q", got, "World\n")
	}
	if got := curOf(ed); got != 0 {
		t.Errorf("cursor = %d, want 0", got)
	}
	if got := string(ed.Register(DefaultRegister).Bytes()); got != "Hello " {
		t.Errorf("register = %q, want %q", got, "Hello ")
	}
	if ed.Register(DefaultRegister).Linewise {
		t.Error("register must be charwise")
	}
	if ed.mode.ID != mode.Normal {
		t.Errorf("mode = %v, want normal", ed.mode.ID)
	}
}

func TestJoinLines(t *testing.T) {
	ed := testEditor("abc\ndef\n")
	ed.Input("J")

	if got := bufOf(ed); got != "abc def\n" {
		t.Errorf("buffer = %q, want %q", got, "abc def\n")
	}
	if got := curOf(ed); got != 3 {
		t.Errorf("cursor = %d, want 3", got)
	}
}

func TestVisualLineShiftRight(t *testing.T) {
	ed := testEditor("  line1\n  line2\n")
	ed.options.Tabwidth = 4
	ed.options.Expandtab = true

	ed.Input("Vj>")

	want := "      line1\n      line2\n"
	if got := bufOf(ed); got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
	if ed.mode.ID != mode.Normal {
		t.Errorf("mode = %v, want normal", ed.mode.ID)
	}
	if ed.win.View.HasSelections() {
		t.Error("selections must clear on leaving visual mode")
	}
}

func TestSearchWordForward(t *testing.T) {
	ed := testEditor("foo bar\nfoo baz\n")
	ed.Input("*")

	if got := curOf(ed); got != 8 {
		t.Errorf("cursor = %d, want 8", got)
	}
}

func TestInsertRepeat(t *testing.T) {
	ed := testEditor("x")
	ed.Input("ifoo<Escape>")

	if got := bufOf(ed); got != "foox" {
		t.Errorf("buffer = %q, want %q", got, "foox")
	}

	ed.Input(".")
	if got := bufOf(ed); got != "foofoox" {
		t.Errorf("after repeat: buffer = %q, want %q", got, "foofoox")
	}
	if ed.mode.ID != mode.Normal {
		t.Errorf("mode = %v, want normal", ed.mode.ID)
	}
}

func TestMacroRecordReplay(t *testing.T) {
	ed := testEditor("")
	ed.Input("qaifoo<Escape>q@a@a")

	if got := bufOf(ed); got != "foofoofoo" {
		t.Errorf("buffer = %q, want %q", got, "foofoofoo")
	}
	if got := ed.macros.Get('a').String(); got != "ifoo<Escape>" {
		t.Errorf("macro a = %q, want %q", got, "ifoo<Escape>")
	}
}

func TestChangeWordRepeat(t *testing.T) {
	ed := testEditor("one two\none two\n")
	ed.Input("cwNEW<Escape>")

	// The change covers the full word motion, trailing blank included.
	if got := bufOf(ed); got != "NEWtwo\none two\n" {
		t.Errorf("buffer = %q", got)
	}

	// Move to the second line and repeat the change.
	ed.Input("j0.")
	if got := bufOf(ed); got != "NEWtwo\nNEWtwo\n" {
		t.Errorf("after repeat: buffer = %q", got)
	}
}

func TestDeleteThenRepeat(t *testing.T) {
	ed := testEditor("aa bb cc dd\n")
	ed.Input("dw")
	if got := bufOf(ed); got != "bb cc dd\n" {
		t.Errorf("buffer = %q", got)
	}
	ed.Input(".")
	if got := bufOf(ed); got != "cc dd\n" {
		t.Errorf("after repeat: buffer = %q", got)
	}
}

// TestFragmentationTransparency feeds the same key streams whole, byte
// by byte, and in small chunks; the outcomes must be identical.
func TestFragmentationTransparency(t *testing.T) {
	streams := []struct {
		name    string
		content string
		keys    string
	}{
		{"delete word", "Hello World\n", "dw"},
		{"join", "abc\ndef\n", "J"},
		{"visual shift", "  line1\n  line2\n", "Vj>"},
		{"insert and escape", "x", "ifoo<Escape>."},
		{"macro", "", "qaifoo<Escape>q@a@a"},
		{"count motion delete", "one two three four\n", "d2w"},
		{"find char", "abcabc\n", "dfc"},
		{"text object", "foo (bar baz) quux\n", "llllldi("},
		{"linewise delete", "a\nb\nc\n", "2dd"},
	}

	for _, s := range streams {
		t.Run(s.name, func(t *testing.T) {
			whole := testEditor(s.content)
			whole.Input(s.keys)

			bybyte := testEditor(s.content)
			for i := 0; i < len(s.keys); i++ {
				bybyte.Input(s.keys[i : i+1])
			}

			chunked := testEditor(s.content)
			for i := 0; i < len(s.keys); i += 3 {
				end := i + 3
				if end > len(s.keys) {
					end = len(s.keys)
				}
				chunked.Input(s.keys[i:end])
			}

			if b, w := bufOf(bybyte), bufOf(whole); b != w {
				t.Errorf("byte-wise buffer %q != whole %q", b, w)
			}
			if b, w := curOf(bybyte), curOf(whole); b != w {
				t.Errorf("byte-wise cursor %d != whole %d", b, w)
			}
			if b, w := bufOf(chunked), bufOf(whole); b != w {
				t.Errorf("chunked buffer %q != whole %q", b, w)
			}
			if b, w := curOf(chunked), curOf(whole); b != w {
				t.Errorf("chunked cursor %d != whole %d", b, w)
			}
		})
	}
}

func TestCountsCombine(t *testing.T) {
	ed := testEditor("a b c d e f g h\n")
	ed.Input("2d2w")
	// 2 * 2 words deleted.
	if got := bufOf(ed); got != "e f g h\n" {
		t.Errorf("buffer = %q, want %q", got, "e f g h\n")
	}
}

func TestOperatorStrayKeyResets(t *testing.T) {
	ed := testEditor("hello\n")
	ed.Input("dx")
	// x is no motion: the pending action dies, nothing changes.
	if got := bufOf(ed); got != "hello\n" {
		t.Errorf("buffer = %q, want unchanged", got)
	}
	if ed.mode.ID != mode.Normal {
		t.Errorf("mode = %v, want normal", ed.mode.ID)
	}
	// And a following x deletes one character normally.
	ed.Input("x")
	if got := bufOf(ed); got != "ello\n" {
		t.Errorf("buffer = %q, want %q", got, "ello\n")
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	ed := testEditor("Hello World\n")
	ed.Input("dw")
	after := bufOf(ed)

	ed.Input("u")
	if got := bufOf(ed); got != "Hello World\n" {
		t.Errorf("after undo: %q", got)
	}
	ed.Input("<C-r>")
	if got := bufOf(ed); got != after {
		t.Errorf("undo+redo changed buffer: %q != %q", bufOf(ed), after)
	}
}

func TestYankPutRoundTrip(t *testing.T) {
	ed := testEditor("Hello World\n")
	ed.Input("yw")
	if got := bufOf(ed); got != "Hello World\n" {
		t.Errorf("yank changed the buffer: %q", got)
	}
	if got := string(ed.Register(DefaultRegister).Bytes()); got != "Hello " {
		t.Errorf("register = %q", got)
	}

	ed = testEditor("Hello World\n")
	ed.Input("dwP")
	if got := bufOf(ed); got != "Hello World\n" {
		t.Errorf("delete+put-before: %q, want original", got)
	}
}

func TestLinewiseRegister(t *testing.T) {
	ed := testEditor("one\ntwo\n")
	ed.Input("yy")
	reg := ed.Register(DefaultRegister)
	if !reg.Linewise {
		t.Error("yy register must be linewise")
	}
	if got := string(reg.Bytes()); got != "one\n" {
		t.Errorf("register = %q, want %q", got, "one\n")
	}
	ed.Input("p")
	if got := bufOf(ed); got != "one\none\ntwo\n" {
		t.Errorf("after p: %q", got)
	}
}

func TestVisualSwapEnds(t *testing.T) {
	ed := testEditor("abcdef\n")
	ed.Input("vlll")
	c := ed.win.View.Primary()
	if c.Pos != 3 || c.Sel.Start != 0 {
		t.Fatalf("selection = %v cursor %d", c.Sel, c.Pos)
	}
	ed.Input("o")
	if got := curOf(ed); got != 0 {
		t.Errorf("after o: cursor = %d, want 0", got)
	}
	ed.Input("o")
	if got := curOf(ed); got != 3 {
		t.Errorf("after second o: cursor = %d, want 3", got)
	}
}

func TestMarksFollowEdits(t *testing.T) {
	ed := testEditor("alpha\nbravo\ncharlie\n")
	// Set mark a on line 2, then insert a line above it.
	ed.Input("jma")
	ed.Input("ggOnew line<Escape>")
	ed.Input("`a")
	txt := ed.win.File.Text
	if got := txt.Lineno(curOf(ed)); got != 3 {
		t.Errorf("mark line = %d, want 3", got)
	}
}

func TestExCommandQuit(t *testing.T) {
	ed := testEditor("")
	ed.Input(":q<Enter>")
	if ed.Running() {
		t.Error("editor still running after :q on a clean buffer")
	}
	if ed.ExitStatus() != 0 {
		t.Errorf("exit status = %d", ed.ExitStatus())
	}
}

func TestExCommandQuitModified(t *testing.T) {
	ed := testEditor("")
	ed.Input("ihello<Escape>")
	ed.Input(":q<Enter>")
	if !ed.Running() {
		t.Error("unsaved buffer closed without force")
	}
	ed.Input(":q!<Enter>")
	if ed.Running() {
		t.Error(":q! did not close the window")
	}
}

func TestRegisterSelect(t *testing.T) {
	ed := testEditor("Hello World\n")
	ed.Input("\"ayw")
	if got := string(ed.Register('a').Bytes()); got != "Hello " {
		t.Errorf("register a = %q", got)
	}
	if ed.Register(DefaultRegister).Len() != 0 {
		t.Error("default register should be untouched")
	}
}

func TestInjectKeys(t *testing.T) {
	ed := testEditor("abc\n")
	ed.InjectKeys(0, "x")
	if got := bufOf(ed); got != "bc\n" {
		t.Errorf("buffer = %q, want %q", got, "bc\n")
	}

	// Injected keys are captured by an active recording as they are
	// consumed.
	ed = testEditor("abc\n")
	ed.Input("qa")
	ed.InjectKeys(0, "x")
	ed.Input("q")
	if got := ed.macros.Get('a').String(); got != "x" {
		t.Errorf("macro a = %q, want %q", got, "x")
	}
}

func TestSharedFileBetweenWindows(t *testing.T) {
	ed := testEditor("shared\n")
	first := ed.win
	second := ed.newWindowForFile(first.File)

	if first.File != second.File {
		t.Fatal("windows do not share the file")
	}
	if first.File.refs != 2 {
		t.Fatalf("refcount = %d, want 2", first.File.refs)
	}

	ed.Input("x")
	if got := string(first.File.Text.Bytes()); got != "hared\n" {
		t.Errorf("buffer = %q", got)
	}

	ed.CloseWindow(second)
	if first.File.refs != 1 {
		t.Errorf("refcount after close = %d, want 1", first.File.refs)
	}
	if !ed.Running() {
		t.Error("editor exited while a window remains")
	}
}
