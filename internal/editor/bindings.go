package editor

import (
	"github.com/dshills/vix/internal/input/key"
	"github.com/dshills/vix/internal/input/keymap"
	"github.com/dshills/vix/internal/input/mode"
	"github.com/dshills/vix/internal/text"
)

// Bind installs a binding into the mode named by id, normalizing its
// key string, and registers named bindings as editor actions.
func (ed *Editor) Bind(id mode.ID, b *keymap.Binding) {
	b.Keys = key.Normalize(b.Keys, actionSet{ed})
	ed.modes[id].Bindings.Bind(b)
	ed.RegisterAction(b)
}

// BindAlias installs an alias binding.
func (ed *Editor) BindAlias(id mode.ID, keys, alias string) {
	ed.Bind(id, &keymap.Binding{Keys: keys, Alias: alias})
}

// AliasNormal installs a user alias in normal mode; the config loader
// uses it for rc-file bindings.
func (ed *Editor) AliasNormal(keys, alias string) {
	ed.BindAlias(mode.Normal, keys, alias)
}

// motionAction completes the pending action with a motion.
func (ed *Editor) motionAction(m *Motion) keymap.Func {
	return func(keys string) (string, bool) {
		ed.action.Movement = m
		ed.actionDo(&ed.action)
		return keys, true
	}
}

// operatorAction sets or executes an operator. In visual mode the
// selection is the range and the operator runs at once; a doubled
// operator key turns linewise; otherwise the editor waits for a motion.
func (ed *Editor) operatorAction(op *Operator, arg Arg) keymap.Func {
	return func(keys string) (string, bool) {
		a := &ed.action
		if ed.inVisual() {
			a.Op = op
			a.Arg = arg
			ed.actionDo(a)
			return keys, true
		}
		if a.Op == op && ed.mode.ID == mode.Operator {
			a.Type |= MotionLinewise
			a.Movement = &MotionLineExtend
			ed.actionDo(a)
			return keys, true
		}
		a.Op = op
		a.Arg = arg
		if ed.mode.ID != mode.Operator {
			ed.SetMode(mode.Operator)
		}
		return keys, true
	}
}

// textobjAction completes the pending action with a text object.
func (ed *Editor) textobjAction(obj *TextObject) keymap.Func {
	return func(keys string) (string, bool) {
		ed.action.Textobj = obj
		ed.actionDo(&ed.action)
		return keys, true
	}
}

// countAction accumulates a count digit, pre- or post-operator.
func (ed *Editor) countAction(digit int) keymap.Func {
	return func(keys string) (string, bool) {
		a := &ed.action
		if a.Op != nil {
			a.OpCount = a.OpCount*10 + digit
		} else {
			a.Count = a.Count*10 + digit
		}
		return keys, true
	}
}

// zeroAction is a digit while a count is pending, line-begin otherwise.
func (ed *Editor) zeroAction() keymap.Func {
	lineBegin := ed.motionAction(&MotionLineBegin)
	return func(keys string) (string, bool) {
		a := &ed.action
		switch {
		case a.Op != nil && a.OpCount > 0:
			a.OpCount *= 10
			return keys, true
		case a.Op == nil && a.Count > 0:
			a.Count *= 10
			return keys, true
		}
		return lineBegin(keys)
	}
}

// oneKey pulls a single literal key off the input; pending when empty.
func oneKey(keys string) (string, int, bool) {
	if keys == "" {
		return "", 0, false
	}
	k, size := key.Next(keys, nil)
	if size == 0 {
		return "", 0, false
	}
	return k, size, true
}

// registerSelect reads the register name following a double quote.
func (ed *Editor) registerSelect(keys string) (string, bool) {
	k, size, ok := oneKey(keys)
	if !ok {
		return keys, false
	}
	r := firstRune(k)
	if !IsValidRegister(r) {
		ed.Info("invalid register: %s", k)
		ed.action.Reset()
		return keys[size:], true
	}
	ed.action.Register = ed.Register(r)
	return keys[size:], true
}

// markSet reads a mark name and pins it at the primary cursor.
func (ed *Editor) markSet(keys string) (string, bool) {
	k, size, ok := oneKey(keys)
	if !ok {
		return keys, false
	}
	slot := MarkIndex(firstRune(k))
	if slot < 0 {
		ed.Info("invalid mark: %s", k)
		return keys[size:], true
	}
	if ed.win != nil {
		ed.win.File.SetMarkAt(slot, ed.win.View.Primary().Pos)
	}
	return keys[size:], true
}

// markGotoAction reads a mark name and jumps to it.
func (ed *Editor) markGotoAction(m *Motion) keymap.Func {
	return func(keys string) (string, bool) {
		k, size, ok := oneKey(keys)
		if !ok {
			return keys, false
		}
		slot := MarkIndex(firstRune(k))
		if slot < 0 {
			ed.Info("invalid mark: %s", k)
			ed.action.Reset()
			return keys[size:], true
		}
		ed.action.Mark = slot
		if ed.win != nil {
			ed.win.File.pendingMark = slot
		}
		ed.action.Movement = m
		ed.actionDo(&ed.action)
		return keys[size:], true
	}
}

// findCharAction reads the target character of f/F/t/T and executes.
func (ed *Editor) findCharAction(forward, till bool, m *Motion) keymap.Func {
	return func(keys string) (string, bool) {
		k, size, ok := oneKey(keys)
		if !ok {
			return keys, false
		}
		if len(k) > 1 && k[0] == '<' {
			// A special key aborts the pending find.
			ed.action.Reset()
			return keys[size:], true
		}
		ed.search.find = findChar{char: k, forward: forward, till: till, set: true}
		ed.action.Key = k
		ed.action.Movement = m
		ed.actionDo(&ed.action)
		return keys[size:], true
	}
}

// replaceChar reads one character and overwrites under every cursor.
func (ed *Editor) replaceChar(keys string) (string, bool) {
	k, size, ok := oneKey(keys)
	if !ok {
		return keys, false
	}
	ed.action.Reset()
	if len(k) > 1 && k[0] == '<' {
		if k != "<Enter>" {
			return keys[size:], true
		}
		k = "\n"
	}
	ed.replaceText(k)
	// Overwriting leaves the cursor on the written character.
	if ed.win != nil {
		txt := ed.win.File.Text
		for c := ed.win.View.Primary(); c != nil; c = c.next {
			if p := txt.CharPrev(c.Pos); p >= txt.LineBegin(c.Pos) {
				c.Pos = p
			}
		}
		txt.Snapshot()
	}
	return keys[size:], true
}

// simple wraps a keys-preserving handler.
func simple(f func()) keymap.Func {
	return func(keys string) (string, bool) {
		f()
		return keys, true
	}
}

// bindDefaults installs the shipped binding set.
func (ed *Editor) bindDefaults() {
	// Basic: always reachable.
	ed.Bind(mode.Basic, &keymap.Binding{Keys: "<C-z>", Name: "editor-suspend",
		Func: simple(func() { ed.ui.Suspend() })})
	ed.Bind(mode.Basic, &keymap.Binding{Keys: "<C-l>", Name: "editor-redraw",
		Func: simple(func() { ed.InfoClear() })})

	// Move: motions shared by normal, visual, and operator-pending.
	type motionBind struct {
		keys string
		m    *Motion
	}
	for _, mb := range []motionBind{
		{"l", &MotionCharNext}, {"<Right>", &MotionCharNext},
		{"h", &MotionCharPrev}, {"<Left>", &MotionCharPrev},
		{"j", &MotionLineDown}, {"<Down>", &MotionLineDown},
		{"k", &MotionLineUp}, {"<Up>", &MotionLineUp},
		{"+", &MotionLineDownStart}, {"-", &MotionLineUpStart},
		{"w", &MotionWordStartNext},
		{"b", &MotionWordStartPrev},
		{"e", &MotionWordEndNext},
		{"W", &MotionLongwordStartNext},
		{"B", &MotionLongwordStartPrev},
		{"E", &MotionLongwordEndNext},
		{"^", &MotionLineStart},
		{"$", &MotionLineEnd}, {"<End>", &MotionLineEnd},
		{"<Home>", &MotionLineBegin},
		{"gg", &MotionFileBegin},
		{"G", &MotionFileEnd},
		{"}", &MotionParagraphNext},
		{"{", &MotionParagraphPrev},
		{")", &MotionSentenceNext},
		{"(", &MotionSentencePrev},
		{"%", &MotionBracketMatch},
		{"g0", &MotionScreenLineBegin},
		{"g$", &MotionScreenLineEnd},
		{"g;", &MotionChangelistPrev},
		{"g,", &MotionChangelistNext},
		{"<C-d>", &MotionHalfPageDown},
		{"<C-u>", &MotionHalfPageUp},
		{"n", &MotionSearchNext},
		{"N", &MotionSearchPrev},
		{";", &MotionFindRepeat},
		{",", &MotionFindReverse},
	} {
		ed.Bind(mode.Move, &keymap.Binding{Keys: mb.keys, Func: ed.motionAction(mb.m)})
	}

	for d := 1; d <= 9; d++ {
		ed.Bind(mode.Move, &keymap.Binding{Keys: string(rune('0' + d)), Func: ed.countAction(d)})
	}
	ed.Bind(mode.Move, &keymap.Binding{Keys: "0", Func: ed.zeroAction()})

	ed.Bind(mode.Move, &keymap.Binding{Keys: "f", Func: ed.findCharAction(true, false, &MotionFindNext)})
	ed.Bind(mode.Move, &keymap.Binding{Keys: "F", Func: ed.findCharAction(false, false, &MotionFindPrev)})
	ed.Bind(mode.Move, &keymap.Binding{Keys: "t", Func: ed.findCharAction(true, true, &MotionTillNext)})
	ed.Bind(mode.Move, &keymap.Binding{Keys: "T", Func: ed.findCharAction(false, true, &MotionTillPrev)})

	ed.Bind(mode.Move, &keymap.Binding{Keys: "`", Func: ed.markGotoAction(&MotionMarkGoto)})
	ed.Bind(mode.Move, &keymap.Binding{Keys: "'", Func: ed.markGotoAction(&MotionMarkGotoLine)})

	ed.Bind(mode.Move, &keymap.Binding{Keys: "/", Func: simple(func() { ed.promptShow('/') })})
	ed.Bind(mode.Move, &keymap.Binding{Keys: "?", Func: simple(func() { ed.promptShow('?') })})
	ed.Bind(mode.Move, &keymap.Binding{Keys: "*", Func: ed.searchWordAction(true)})
	ed.Bind(mode.Move, &keymap.Binding{Keys: "#", Func: ed.searchWordAction(false)})

	ed.Bind(mode.Move, &keymap.Binding{Keys: "<Escape>", Func: func(keys string) (string, bool) {
		ed.action.Reset()
		switch {
		case ed.inVisual():
			ed.SetMode(mode.Normal)
		case ed.mode.ID == mode.Operator:
			ed.setMode(ed.modePrev)
		}
		return keys, true
	}})

	// Operator: reachable from normal, visual, and operator-pending.
	ed.Bind(mode.Operator, &keymap.Binding{Keys: "d", Func: ed.operatorAction(&OpDelete, Arg{})})
	ed.Bind(mode.Operator, &keymap.Binding{Keys: "c", Func: ed.operatorAction(&OpChange, Arg{})})
	ed.Bind(mode.Operator, &keymap.Binding{Keys: "y", Func: ed.operatorAction(&OpYank, Arg{})})
	ed.Bind(mode.Operator, &keymap.Binding{Keys: ">", Func: ed.operatorAction(&OpShiftRight, Arg{})})
	ed.Bind(mode.Operator, &keymap.Binding{Keys: "<lt>", Func: ed.operatorAction(&OpShiftLeft, Arg{})})
	ed.Bind(mode.Operator, &keymap.Binding{Keys: "gu", Func: ed.operatorAction(&OpCaseChange, Arg{I: CaseLower})})
	ed.Bind(mode.Operator, &keymap.Binding{Keys: "gU", Func: ed.operatorAction(&OpCaseChange, Arg{I: CaseUpper})})
	ed.Bind(mode.Operator, &keymap.Binding{Keys: "g~", Func: ed.operatorAction(&OpCaseChange, Arg{I: CaseSwap})})

	// Operator options: force the pending range charwise or linewise.
	ed.Bind(mode.OperatorOption, &keymap.Binding{Keys: "v",
		Func: simple(func() { ed.action.Type |= MotionCharwise })})
	ed.Bind(mode.OperatorOption, &keymap.Binding{Keys: "V",
		Func: simple(func() { ed.action.Type |= MotionLinewise })})

	// Text objects: exposed while an operator pends or in visual mode.
	type objBind struct {
		inner, outer string
		in, out      *TextObject
	}
	for _, ob := range []objBind{
		{"iw", "aw", &ObjectWordInner, &ObjectWordOuter},
		{"iW", "aW", &ObjectLongwordInner, &ObjectLongwordOuter},
		{"is", "as", &ObjectSentenceInner, &ObjectSentenceOuter},
		{"ip", "ap", &ObjectParagraphInner, &ObjectParagraphOuter},
		{"i(", "a(", &ObjectParenInner, &ObjectParenOuter},
		{"i)", "a)", &ObjectParenInner, &ObjectParenOuter},
		{"ib", "ab", &ObjectParenInner, &ObjectParenOuter},
		{"i[", "a[", &ObjectBracketInner, &ObjectBracketOuter},
		{"i]", "a]", &ObjectBracketInner, &ObjectBracketOuter},
		{"i{", "a{", &ObjectBraceInner, &ObjectBraceOuter},
		{"i}", "a}", &ObjectBraceInner, &ObjectBraceOuter},
		{"iB", "aB", &ObjectBraceInner, &ObjectBraceOuter},
		{"i<lt>", "a<lt>", &ObjectAngleInner, &ObjectAngleOuter},
		{"i>", "a>", &ObjectAngleInner, &ObjectAngleOuter},
		{"i\"", "a\"", &ObjectQuoteInner, &ObjectQuoteOuter},
		{"i'", "a'", &ObjectSingleInner, &ObjectSingleOuter},
		{"i`", "a`", &ObjectBacktickInner, &ObjectBacktickOuter},
		{"ie", "ae", &ObjectEntireInner, &ObjectEntireOuter},
		{"if", "af", &ObjectFunctionInner, &ObjectFunctionOuter},
		{"il", "al", &ObjectLineInner, &ObjectLineOuter},
	} {
		ed.Bind(mode.TextObjects, &keymap.Binding{Keys: ob.inner, Func: ed.textobjAction(ob.in)})
		ed.Bind(mode.TextObjects, &keymap.Binding{Keys: ob.outer, Func: ed.textobjAction(ob.out)})
	}

	// Normal mode.
	ed.Bind(mode.Normal, &keymap.Binding{Keys: "i", Func: simple(func() { ed.SetMode(mode.Insert) })})
	ed.Bind(mode.Normal, &keymap.Binding{Keys: "a", Func: simple(func() { ed.appendEnter(false) })})
	ed.Bind(mode.Normal, &keymap.Binding{Keys: "A", Func: simple(func() { ed.appendEnter(true) })})
	ed.Bind(mode.Normal, &keymap.Binding{Keys: "I", Func: simple(func() { ed.insertLineStart() })})
	ed.BindAlias(mode.Normal, "o", "A<Enter>")
	ed.Bind(mode.Normal, &keymap.Binding{Keys: "O", Func: simple(func() { ed.openLineEnter(true) })})
	ed.Bind(mode.Normal, &keymap.Binding{Keys: "R", Func: simple(func() { ed.SetMode(mode.Replace) })})
	ed.Bind(mode.Normal, &keymap.Binding{Keys: "r", Func: ed.replaceChar})

	ed.Bind(mode.Normal, &keymap.Binding{Keys: "v", Func: simple(func() { ed.SetMode(mode.Visual) })})
	ed.Bind(mode.Normal, &keymap.Binding{Keys: "V", Func: simple(func() { ed.SetMode(mode.VisualLine) })})

	ed.Bind(mode.Normal, &keymap.Binding{Keys: "u", Func: ed.undoAction(true)})
	ed.Bind(mode.Normal, &keymap.Binding{Keys: "<C-r>", Func: ed.undoAction(false)})

	ed.Bind(mode.Normal, &keymap.Binding{Keys: "<C-o>", Func: ed.jumplistAction(true)})
	ed.Bind(mode.Normal, &keymap.Binding{Keys: "<C-i>", Func: ed.jumplistAction(false)})
	// Terminals deliver C-i as Tab.
	ed.BindAlias(mode.Normal, "<Tab>", "<C-i>")

	ed.Bind(mode.Normal, &keymap.Binding{Keys: "p", Func: ed.putAction(PutAfter)})
	ed.Bind(mode.Normal, &keymap.Binding{Keys: "P", Func: ed.putAction(PutBefore)})
	ed.Bind(mode.Normal, &keymap.Binding{Keys: "gp", Func: ed.putAction(PutAfterEnd)})
	ed.Bind(mode.Normal, &keymap.Binding{Keys: "gP", Func: ed.putAction(PutBeforeEnd)})

	ed.Bind(mode.Normal, &keymap.Binding{Keys: "J", Func: ed.joinAction()})
	ed.Bind(mode.Normal, &keymap.Binding{Keys: "m", Func: ed.markSet})
	ed.Bind(mode.Normal, &keymap.Binding{Keys: "\"", Func: ed.registerSelect})

	ed.Bind(mode.Normal, &keymap.Binding{Keys: "q", Func: ed.recordToggle})
	ed.Bind(mode.Normal, &keymap.Binding{Keys: "@", Func: ed.macroReplay})
	ed.Bind(mode.Normal, &keymap.Binding{Keys: ".", Func: ed.dotRepeat})

	ed.Bind(mode.Normal, &keymap.Binding{Keys: ":", Func: simple(func() { ed.promptShow(':') })})

	ed.BindAlias(mode.Normal, "x", "dl")
	ed.BindAlias(mode.Normal, "X", "dh")
	ed.BindAlias(mode.Normal, "D", "d$")
	ed.BindAlias(mode.Normal, "C", "c$")
	ed.BindAlias(mode.Normal, "Y", "yy")
	ed.BindAlias(mode.Normal, "s", "cl")
	ed.BindAlias(mode.Normal, "S", "cc")
	ed.BindAlias(mode.Normal, "~", "g~l")
	ed.BindAlias(mode.Normal, "ZZ", ":x<Enter>")

	// Visual modes.
	ed.Bind(mode.Visual, &keymap.Binding{Keys: "v", Func: simple(func() { ed.SetMode(mode.Normal) })})
	ed.Bind(mode.Visual, &keymap.Binding{Keys: "V", Func: simple(func() { ed.SetMode(mode.VisualLine) })})
	ed.Bind(mode.VisualLine, &keymap.Binding{Keys: "v", Func: simple(func() { ed.SetMode(mode.Visual) })})
	ed.Bind(mode.VisualLine, &keymap.Binding{Keys: "V", Func: simple(func() { ed.SetMode(mode.Normal) })})

	ed.Bind(mode.Visual, &keymap.Binding{Keys: "o", Func: simple(func() { ed.swapSelectionEnds() })})
	ed.Bind(mode.Visual, &keymap.Binding{Keys: ":", Func: simple(func() { ed.promptShow(':') })})
	ed.Bind(mode.Visual, &keymap.Binding{Keys: "J", Func: ed.joinAction()})
	ed.Bind(mode.Visual, &keymap.Binding{Keys: "\"", Func: ed.registerSelect})
	ed.Bind(mode.Visual, &keymap.Binding{Keys: "I", Name: "cursors-line-begin",
		Func: ed.multiCursorAction(&OpCursorSOL)})
	ed.Bind(mode.Visual, &keymap.Binding{Keys: "A", Name: "cursors-line-end",
		Func: ed.multiCursorAction(&OpCursorEOL)})
	ed.BindAlias(mode.Visual, "x", "d")

	// Readline: line editing shared by insert, replace, and the prompt.
	ed.Bind(mode.Readline, &keymap.Binding{Keys: "<Enter>", Func: simple(func() {
		if ed.prompt.active {
			ed.promptSubmit()
		} else {
			ed.insertNewline()
		}
	})})
	ed.Bind(mode.Readline, &keymap.Binding{Keys: "<Backspace>", Func: simple(func() {
		if ed.prompt.active {
			ed.promptBackspace()
		} else {
			ed.deleteBack()
		}
	})})
	ed.Bind(mode.Readline, &keymap.Binding{Keys: "<C-w>", Func: simple(func() {
		if ed.prompt.active {
			ed.prompt.line = nil
		} else {
			ed.deleteWordBack()
		}
	})})
	ed.Bind(mode.Readline, &keymap.Binding{Keys: "<C-u>", Func: simple(func() {
		if ed.prompt.active {
			ed.prompt.line = nil
		} else {
			ed.deleteToLineBegin()
		}
	})})
	ed.Bind(mode.Readline, &keymap.Binding{Keys: "<Escape>", Func: simple(func() {
		if ed.prompt.active {
			ed.promptCancel()
		} else {
			ed.SetMode(mode.Normal)
		}
	})})

	// Mode input handlers.
	ed.modes[mode.Insert].Input = func(k string) { ed.insertText(printable(k)) }
	ed.modes[mode.Replace].Input = func(k string) { ed.replaceText(printable(k)) }
	ed.modes[mode.Prompt].Input = func(k string) { ed.promptAppend(k) }
}

// printable maps a key to the text it inserts; named keys other than
// Tab insert nothing.
func printable(k string) string {
	if len(k) > 1 && k[0] == '<' {
		if k == "<Tab>" {
			return "\t"
		}
		return ""
	}
	return k
}

// searchWordAction searches for the word under the cursor.
func (ed *Editor) searchWordAction(forward bool) keymap.Func {
	return func(keys string) (string, bool) {
		if ed.win == nil || !ed.SearchWord(forward) {
			return keys, true
		}
		ed.action.Movement = &MotionSearchNext
		ed.actionDo(&ed.action)
		return keys, true
	}
}

// undoAction moves through text history and follows the change position.
func (ed *Editor) undoAction(undo bool) keymap.Func {
	return func(keys string) (string, bool) {
		ed.action.Reset()
		if ed.win == nil {
			return keys, true
		}
		txt := ed.win.File.Text
		var pos int
		if undo {
			pos = txt.Undo()
		} else {
			pos = txt.Redo()
		}
		if pos == text.EPOS {
			if undo {
				ed.Info("already at oldest change")
			} else {
				ed.Info("already at newest change")
			}
			return keys, true
		}
		view := ed.win.View
		view.CollapseToPrimary()
		c := view.Primary()
		c.ClearSelection()
		c.Pos = pos
		c.col = -1
		view.Clamp()
		ed.win.JumplistInvalidate()
		return keys, true
	}
}

// jumplistAction walks the window jumplist.
func (ed *Editor) jumplistAction(back bool) keymap.Func {
	return func(keys string) (string, bool) {
		ed.action.Reset()
		if ed.win == nil {
			return keys, true
		}
		c := ed.win.View.Primary()
		var pos int
		if back {
			pos = ed.win.JumplistPrev(c.Pos)
		} else {
			pos = ed.win.JumplistNext()
		}
		if pos == text.EPOS {
			if back {
				ed.Info("at start of jumplist")
			} else {
				ed.Info("at end of jumplist")
			}
			return keys, true
		}
		c.Pos = pos
		c.col = -1
		return keys, true
	}
}

// putAction pastes at one of the four anchors.
func (ed *Editor) putAction(variant int) keymap.Func {
	return func(keys string) (string, bool) {
		ed.action.Op = &OpPut
		ed.action.Arg = Arg{I: variant}
		ed.actionDo(&ed.action)
		return keys, true
	}
}

// joinAction joins the current and following line, or the selection.
func (ed *Editor) joinAction() keymap.Func {
	return func(keys string) (string, bool) {
		a := &ed.action
		a.Op = &OpJoin
		a.Type |= MotionLinewise
		if !ed.inVisual() {
			a.Movement = &MotionLineDown
		}
		ed.actionDo(a)
		return keys, true
	}
}

// multiCursorAction spawns per-line cursors from the selection, then
// enters insert mode.
func (ed *Editor) multiCursorAction(op *Operator) keymap.Func {
	return func(keys string) (string, bool) {
		ed.action.Op = op
		ed.actionDo(&ed.action)
		ed.SetMode(mode.Insert)
		return keys, true
	}
}

// appendEnter moves past the cursor character and enters insert mode.
func (ed *Editor) appendEnter(lineEnd bool) {
	if ed.win != nil {
		txt := ed.win.File.Text
		for c := ed.win.View.Primary(); c != nil; c = c.next {
			if lineEnd {
				c.Pos = txt.LineEnd(c.Pos)
			} else if c.Pos < txt.Size() {
				if b, _ := txt.ByteAt(c.Pos); b != '\n' {
					c.Pos = txt.CharNext(c.Pos)
				}
			}
			c.col = -1
		}
	}
	ed.SetMode(mode.Insert)
}

// insertLineStart moves to the first non-blank and enters insert mode.
func (ed *Editor) insertLineStart() {
	if ed.win != nil {
		txt := ed.win.File.Text
		for c := ed.win.View.Primary(); c != nil; c = c.next {
			c.Pos = txt.LineStart(c.Pos)
			c.col = -1
		}
	}
	ed.SetMode(mode.Insert)
}

// openLineEnter opens a line and enters insert mode.
func (ed *Editor) openLineEnter(above bool) {
	ed.SetMode(mode.Insert)
	ed.openLine(above)
}

// swapSelectionEnds flips every cursor to the other end of its
// selection.
func (ed *Editor) swapSelectionEnds() {
	if ed.win == nil {
		return
	}
	txt := ed.win.File.Text
	for c := ed.win.View.Primary(); c != nil; c = c.next {
		c.SwapSelectionEnds(txt)
	}
}
