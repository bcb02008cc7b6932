package editor

import (
	"github.com/dshills/vix/internal/input/mode"
	"github.com/dshills/vix/internal/text"
)

// cursorMarks pins cursor state to stable marks so edits made for one
// cursor reposition the ones still waiting their turn.
type cursorMarks struct {
	pos      text.Mark
	selStart text.Mark
	selEnd   text.Mark
}

// actionDo executes the pending action over every cursor of the focused
// view. It implements the per-cursor range resolution, operator
// application, selection upkeep, and the post-run mode transitions.
func (ed *Editor) actionDo(a *Action) {
	win := ed.win
	if win == nil {
		a.Reset()
		return
	}
	view := win.View
	txt := win.File.Text

	count := a.EffectiveCount()
	if count < 1 {
		count = 1
	}

	linewise := a.Type&MotionLinewise != 0 ||
		(a.Movement != nil && a.Movement.Flags&MotionLinewise != 0) ||
		ed.mode.ID == mode.VisualLine
	if a.Type&MotionCharwise != 0 {
		linewise = false
	}

	multi := view.Count() > 1
	repeatable := a.Op != nil && ed.macroOperator == nil && !ed.dotReplay

	// Pin cursors to marks: operators edit the text, which would
	// otherwise strand the positions of cursors not yet visited.
	var pins map[*Cursor]cursorMarks
	if a.Op != nil && multi {
		pins = make(map[*Cursor]cursorMarks, view.Count())
		for c := view.Primary(); c != nil; c = c.next {
			pin := cursorMarks{pos: txt.SetMark(c.Pos)}
			if c.HasSelection() {
				pin.selStart = txt.SetMark(c.Sel.Start)
				pin.selEnd = txt.SetMark(c.Sel.End)
			} else {
				pin.selStart, pin.selEnd = text.MarkNone, text.MarkNone
			}
			pins[c] = pin
		}
	}

	opRan := false

	for c := view.Primary(); c != nil; {
		next := c.next // the operator may dispose c

		if pin, ok := pins[c]; ok {
			if p := txt.MarkPos(pin.pos); p != text.EPOS {
				c.Pos = p
			}
			if pin.selStart != text.MarkNone {
				s, e := txt.MarkPos(pin.selStart), txt.MarkPos(pin.selEnd)
				if s != text.EPOS && e != text.EPOS {
					c.Sel = text.Range{Start: s, End: e}
				}
			}
		}

		reg := a.Register
		if reg == nil {
			if multi {
				reg = c.PrivateRegister()
			} else {
				reg = ed.Register(DefaultRegister)
			}
		}

		ctx := OperatorContext{
			Count:    a.EffectiveCount(),
			Pos:      c.Pos,
			NewPos:   text.EPOS,
			Range:    text.EmptyRange(),
			Reg:      reg,
			Linewise: linewise,
			Arg:      a.Arg,
		}
		pos := c.Pos
		selSynced := false

		switch {
		case a.Movement != nil:
			start := pos
			reps := count
			if a.Movement.Flags&MotionIdempotent != 0 {
				reps = 1
			}
			aborted := false
			for i := 0; i < reps; i++ {
				p := a.Movement.apply(ed, win, c, pos)
				if p == text.EPOS {
					aborted = true
					break
				}
				pos = p
			}
			if aborted {
				// Range stays empty; no edit, no move. The action is
				// still consumed below.
				c = next
				continue
			}
			ctx.NewPos = pos
			if pos < start {
				ctx.Range = text.Range{Start: pos, End: start}
			} else {
				ctx.Range = text.Range{Start: start, End: pos}
			}

			if a.Op == nil {
				c.Pos = pos
				if a.Movement.Cur == nil {
					c.col = -1
				}
				if ed.inVisual() {
					c.UpdateSelection(txt)
				}
				if a.Movement.Flags&MotionJump != 0 {
					win.JumplistPush(start)
				} else {
					win.JumplistInvalidate()
				}
				selSynced = true
			} else if a.Movement.Flags&MotionInclusive != 0 {
				ctx.Range.End = txt.CharNext(ctx.Range.End)
			}

		case a.Textobj != nil:
			r := text.EmptyRange()
			if ed.inVisual() && c.HasSelection() {
				r = c.Sel
			}
			at := pos
			for i := 0; i < count; i++ {
				obj := a.Textobj.Find(txt, at)
				if !obj.Valid() {
					break
				}
				if a.Textobj.Outer {
					obj.Start--
					obj.End++
				}
				r = r.Union(obj)
				at = r.End + 1
			}
			if r.Start < 0 && r.End > 0 {
				r.Start = 0
			}
			r = r.Clamp(txt.Size())
			if !r.Valid() {
				c = next
				continue
			}
			ctx.Range = r

		default:
			if ed.inVisual() && c.HasSelection() {
				ctx.Range = c.Sel
			} else {
				ctx.Range = text.Range{Start: pos, End: pos}
			}
		}

		if linewise && ed.mode.ID != mode.Visual && ctx.Range.Valid() {
			ctx.Range.Start = txt.LineBegin(ctx.Range.Start)
			end := ctx.Range.End
			if a.Movement == nil && end > ctx.Range.Start {
				// Selections and text objects end past their last char.
				end = txt.CharPrev(end)
			}
			ctx.Range.End = txt.LineNext(end)
		}

		if ed.inVisual() && !selSynced {
			c.Sel = ctx.Range
			if ed.mode.ID == mode.Visual || a.Textobj != nil {
				// Sync the cursor to an edge of the selection.
				c.Anchor = ctx.Range.Start
				c.Pos = txt.CharPrev(ctx.Range.End)
				if c.Pos < ctx.Range.Start {
					c.Pos = ctx.Range.Start
				}
			}
		}

		if a.Op != nil {
			newPos := a.Op.Fn(ed, txt, &ctx)
			opRan = true
			if newPos == text.EPOS {
				view.Dispose(c)
			} else {
				if newPos > txt.Size() {
					newPos = txt.Size()
				}
				c.Pos = newPos
				c.col = -1
			}
		}

		c = next
	}

	if opRan {
		if ed.inVisual() && a.Movement == nil && a.Textobj == nil {
			// Keep the repeat action well formed without a range source.
			a.Movement = &MotionNop
		}
		switch {
		case a.Op == &OpInsert || a.Op == &OpChange:
			ed.SetMode(mode.Insert)
		case a.Op == &OpReplace:
			ed.SetMode(mode.Replace)
		case ed.mode.ID == mode.Operator:
			ed.setMode(ed.modePrev)
		case ed.inVisual():
			ed.SetMode(mode.Normal)
		}
		txt.Snapshot()
		view.Clamp()
	} else if ed.mode.ID == mode.Operator {
		// A motion arrived while an operator was pending but resolved
		// to nothing; drop back to the previous mode.
		ed.setMode(ed.modePrev)
	}

	if repeatable {
		ed.actionPrev = *a
		if ed.macroOperator != nil {
			ed.actionPrev.Macro = ed.macroOperator
		}
	}
	a.Reset()
}
