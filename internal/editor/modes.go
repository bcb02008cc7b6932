package editor

import (
	"time"

	"github.com/dshills/vix/internal/input/mode"
)

// insertIdleTimeout batches insert-mode edits into sentence-sized undo
// steps: quiescence snapshots the buffer.
const insertIdleTimeout = 3 * time.Second

// buildModes constructs the static mode graph and its hooks.
//
//	BASIC <- MOVE <- OPERATOR <- NORMAL
//	                 ^ dynamic: OPERATOR_OPTION <- TEXTOBJ <- MOVE
//	OPERATOR <- VISUAL <- VISUAL_LINE
//	BASIC <- READLINE <- PROMPT
//	READLINE <- INSERT <- REPLACE
//
// The OPERATOR node parents VISUAL so operators and (while reparented)
// text objects resolve in visual modes.
func (ed *Editor) buildModes() {
	for id := mode.ID(0); id < mode.Count; id++ {
		ed.modes[id] = mode.New(id, id.String())
	}

	basic := ed.modes[mode.Basic]
	move := ed.modes[mode.Move]
	textobj := ed.modes[mode.TextObjects]
	opOption := ed.modes[mode.OperatorOption]
	operator := ed.modes[mode.Operator]
	normal := ed.modes[mode.Normal]
	visual := ed.modes[mode.Visual]
	visualLine := ed.modes[mode.VisualLine]
	readline := ed.modes[mode.Readline]
	prompt := ed.modes[mode.Prompt]
	insert := ed.modes[mode.Insert]
	replace := ed.modes[mode.Replace]

	move.Parent = basic
	textobj.Parent = move
	opOption.Parent = textobj
	operator.Parent = move
	normal.Parent = operator
	visual.Parent = operator
	visualLine.Parent = visual
	readline.Parent = basic
	prompt.Parent = readline
	insert.Parent = readline
	replace.Parent = insert

	normal.IsUser = true
	visual.IsUser = true
	visualLine.IsUser = true
	insert.IsUser = true
	replace.IsUser = true

	normal.Enter = func(prev *mode.Mode) {
		ed.dotReplay = false
	}

	operator.Enter = func(prev *mode.Mode) {
		operator.Parent = opOption
	}
	operator.Leave = func(next *mode.Mode) {
		if !ed.inVisualTarget(next) {
			operator.Parent = move
		}
	}
	operator.Input = func(k string) {
		// A stray key while awaiting a motion abandons the action.
		ed.action.Reset()
		ed.setMode(ed.modePrev)
	}

	visual.Enter = func(prev *mode.Mode) {
		ed.visualEnter(prev)
	}
	visual.Leave = func(next *mode.Mode) {
		ed.visualLeave(next)
	}
	visualLine.Enter = func(prev *mode.Mode) {
		ed.visualEnter(prev)
		ed.visualExtendLineEnd()
	}
	visualLine.Leave = func(next *mode.Mode) {
		ed.visualLeave(next)
	}

	insert.Enter = func(prev *mode.Mode) {
		fresh := ed.macroOperator == nil && !ed.dotReplay
		ed.operatorMacroStart()
		if fresh && ed.macroOperator != nil {
			// Pre-seed the repeat action; an operator-driven entry
			// (change) stamps over this right after the transition.
			ed.actionPrev = Action{Op: &OpInsert, Macro: ed.macroOperator}
		}
	}
	insert.Leave = func(next *mode.Mode) {
		if ed.win != nil {
			ed.win.File.Text.Snapshot()
		}
		if next.ID == mode.Normal {
			ed.operatorMacroStop()
		}
	}
	insert.Idle = func() {
		if ed.win != nil {
			ed.win.File.Text.Snapshot()
		}
	}
	insert.IdleTimeout = insertIdleTimeout

	replace.Enter = func(prev *mode.Mode) {
		fresh := ed.macroOperator == nil && !ed.dotReplay
		ed.operatorMacroStart()
		if fresh && ed.macroOperator != nil {
			ed.actionPrev = Action{Op: &OpReplace, Macro: ed.macroOperator}
		}
	}
	replace.Leave = insert.Leave
	replace.Idle = insert.Idle
	replace.IdleTimeout = insertIdleTimeout

	prompt.Leave = func(next *mode.Mode) {
		ed.promptHide()
	}
}

// inVisualTarget reports whether next is a visual mode.
func (ed *Editor) inVisualTarget(next *mode.Mode) bool {
	return next != nil && (next.ID == mode.Visual || next.ID == mode.VisualLine)
}

// visualEnter starts selections and exposes text objects to the
// operator chain. Coming from another visual mode keeps the selections.
func (ed *Editor) visualEnter(prev *mode.Mode) {
	ed.modes[mode.Operator].Parent = ed.modes[mode.TextObjects]
	if ed.inVisualTarget(prev) || ed.win == nil {
		return
	}
	txt := ed.win.File.Text
	for c := ed.win.View.Primary(); c != nil; c = c.next {
		c.StartSelection(txt)
	}
}

// visualLeave clears selections unless the next mode is also visual,
// keeping the '< and '> file marks at the last selection.
func (ed *Editor) visualLeave(next *mode.Mode) {
	if ed.inVisualTarget(next) {
		return
	}
	ed.modes[mode.Operator].Parent = ed.modes[mode.Move]
	if ed.win == nil {
		return
	}
	if c := ed.win.View.Primary(); c.HasSelection() {
		ed.win.File.SetMarkAt(markSelStart, c.Sel.Start)
		ed.win.File.SetMarkAt(markSelEnd, c.Sel.End)
	}
	ed.win.View.ClearSelections()
}

// visualExtendLineEnd widens every selection to the end of its line.
func (ed *Editor) visualExtendLineEnd() {
	if ed.win == nil {
		return
	}
	txt := ed.win.File.Text
	for c := ed.win.View.Primary(); c != nil; c = c.next {
		c.Pos = txt.LineEnd(c.Pos)
		c.col = -1
		c.UpdateSelection(txt)
	}
}
