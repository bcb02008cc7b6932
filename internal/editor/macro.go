package editor

import (
	"strings"

	"github.com/dshills/vix/internal/input/key"
	"github.com/dshills/vix/internal/input/macro"
)

// Recording reports the active user recording, 0 when none.
func (ed *Editor) Recording() rune {
	if ed.recording == nil {
		return 0
	}
	return ed.recordingName
}

// recordToggle starts or stops a user recording. The starting q<reg>
// keys are not captured; the stopping q is trimmed by never being
// appended.
func (ed *Editor) recordToggle(keys string) (string, bool) {
	if ed.recording != nil {
		ed.recording.TrimSuffix("q")
		ed.Info("recorded @%c", ed.recordingName)
		ed.recording = nil
		return keys, true
	}
	if keys == "" {
		return keys, false
	}
	k, size := key.Next(keys, nil)
	if size == 0 {
		return keys, false
	}
	rest := keys[size:]
	r := firstRune(k)
	slot := ed.macros.Get(r)
	if slot == nil {
		ed.Info("invalid macro register: %s", k)
		return rest, true
	}
	slot.Reset()
	ed.recording = slot
	ed.recordingName = r
	return rest, true
}

// macroReplay splices a recorded macro in front of the remaining input.
func (ed *Editor) macroReplay(keys string) (string, bool) {
	if keys == "" {
		return keys, false
	}
	k, size := key.Next(keys, nil)
	if size == 0 {
		return keys, false
	}
	rest := keys[size:]

	name := firstRune(k)
	if k == "@" {
		name = ed.lastMacro
	}
	if name == 0 || !macro.IsValidName(name) {
		ed.Info("invalid macro register: %s", k)
		ed.action.Reset()
		return rest, true
	}
	if ed.recording != nil && ed.recordingName == name {
		ed.Info("cannot replay the recording register")
		ed.action.Reset()
		return rest, true
	}
	m := ed.macros.Get(name)
	if m == nil || m.Len() == 0 {
		ed.Info("macro register @%c is empty", name)
		ed.action.Reset()
		return rest, true
	}
	ed.lastMacro = name

	count := ed.action.EffectiveCount()
	if count < 1 {
		count = 1
	}
	ed.action.Reset()

	content := strings.Repeat(m.String(), count)
	ed.replayBytes += len(content)
	return content + rest, true
}

// dotRepeat replays the previous repeatable action: the operator runs
// again and, for insert-family operators, the captured keystrokes are
// replayed after it.
func (ed *Editor) dotRepeat(keys string) (string, bool) {
	if ed.actionPrev.Op == nil {
		ed.action.Reset()
		return keys, true
	}

	count := ed.action.EffectiveCount()
	ed.action.Reset()

	a := ed.actionPrev
	if count > 0 {
		a.Count = count
		a.OpCount = 0
	}

	m := a.Macro
	if m == ed.macros.Operator() {
		// Copy before replay so later insert-mode edits do not mutate
		// what the repeat replays.
		ed.macros.Repeat().CopyFrom(m)
		m = ed.macros.Repeat()
	}

	replay := ""
	if m != nil && m.Len() > 0 {
		n := 1
		if (a.Op == &OpInsert || a.Op == &OpReplace) && count > 1 {
			// The operator runs once; the typed text repeats.
			n = count
			a.Count = 1
			a.OpCount = 0
		}
		replay = strings.Repeat(m.String(), n)
	}

	ed.dotReplay = true
	// Run through ed.action so count-aware motions see the action.
	ed.action = a
	ed.actionDo(&ed.action)

	if replay == "" {
		ed.dotReplay = false
		return keys, true
	}
	ed.replayBytes += len(replay)
	return replay + keys, true
}

// operatorMacroStart begins capturing typed text for the dot command.
func (ed *Editor) operatorMacroStart() {
	if ed.dotReplay || ed.macroOperator != nil {
		return
	}
	slot := ed.macros.Operator()
	slot.Reset()
	ed.macroOperator = slot
}

// operatorMacroStop ends the capture; the slot keeps its content.
func (ed *Editor) operatorMacroStop() {
	ed.macroOperator = nil
}

// firstRune returns the first rune of a plain (non-bracketed) key.
func firstRune(k string) rune {
	if k == "" || k[0] == '<' && len(k) > 1 {
		return 0
	}
	for _, r := range k {
		return r
	}
	return 0
}
