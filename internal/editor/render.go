package editor

import (
	"strings"

	"github.com/dshills/vix/internal/text"
	"github.com/dshills/vix/internal/ui"
)

// Draw pushes the current state to the surface.
func (ed *Editor) Draw() {
	ed.ui.Draw(ed.buildFrame())
}

// buildFrame assembles the visible lines around the primary cursor of
// the focused window.
func (ed *Editor) buildFrame() ui.Frame {
	var f ui.Frame
	f.Info = ed.info
	f.Prompt = ed.PromptLine()

	w := ed.win
	if w == nil {
		f.Status = ui.Status{Mode: ed.statusModeName()}
		return f
	}
	txt := w.File.Text
	c := w.View.Primary()

	_, height := ed.ui.Size()
	visible := height - 1
	if visible < 1 {
		visible = 1
	}

	curLine := txt.Lineno(c.Pos)
	if curLine < w.topLine {
		w.topLine = curLine
	}
	if curLine >= w.topLine+visible {
		w.topLine = curLine - visible + 1
	}
	if w.topLine < 1 {
		w.topLine = 1
	}

	start := txt.PosByLineno(w.topLine)
	if start == text.EPOS {
		w.topLine = 1
		start = 0
	}
	size := txt.Size()
	at := start
	for row := 0; row < visible && at <= size; row++ {
		end := txt.LineEnd(at)
		f.Lines = append(f.Lines, string(txt.BytesRange(text.Range{Start: at, End: end})))
		next := txt.LineNext(at)
		if next == at || next > size {
			break
		}
		at = next
		if at == size && size > 0 {
			b, _ := txt.ByteAt(size - 1)
			if b != '\n' {
				break
			}
		}
	}

	f.CursorRow = curLine - w.topLine
	f.CursorCol = columnOf(txt, c.Pos)
	f.Status = ui.Status{
		Mode:      ed.statusModeName(),
		Name:      w.File.Name,
		Line:      curLine,
		Col:       f.CursorCol + 1,
		Pending:   ed.Pending(),
		Recording: ed.recording != nil,
		Modified:  txt.Modified(),
	}
	return f
}

// statusModeName names the nearest user-visible mode.
func (ed *Editor) statusModeName() string {
	if um := ed.mode.UserMode(); um != nil {
		return strings.ToUpper(um.Name)
	}
	return strings.ToUpper(ed.mode.Name)
}
