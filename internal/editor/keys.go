package editor

import (
	"strings"

	"github.com/dshills/vix/internal/input/key"
	"github.com/dshills/vix/internal/input/keymap"
	"github.com/dshills/vix/internal/input/macro"
	"github.com/dshills/vix/internal/input/mode"
)

// Input feeds raw keys into the pending buffer and interprets as much
// of it as possible. Interpretation is transparent to fragmentation:
// feeding a stream byte by byte equals feeding it whole.
func (ed *Editor) Input(keys string) {
	ed.queue = append(ed.queue, keys...)
	ed.process()
}

// InjectKeys splices keys into the pending input at byte offset off.
// Injected keys are interpreted like typed ones, so an active recording
// captures them as they are consumed.
func (ed *Editor) InjectKeys(off int, keys string) {
	if off < 0 || off > len(ed.queue) {
		off = len(ed.queue)
	}
	spliced := make([]byte, 0, len(ed.queue)+len(keys))
	spliced = append(spliced, ed.queue[:off]...)
	spliced = append(spliced, keys...)
	spliced = append(spliced, ed.queue[off:]...)
	ed.queue = spliced
	ed.process()
}

// Pending returns the unconsumed input, for the status line.
func (ed *Editor) Pending() string {
	return string(ed.queue)
}

// process interprets the pending buffer per the binding-resolution
// rules: grow a prefix key by key; an exact binding fires its action or
// splices its alias; a partial prefix waits; no match hands the first
// key to the current mode's input handler and advances past it.
func (ed *Editor) process() {
	if ed.processing {
		return
	}
	ed.processing = true
	defer func() { ed.processing = false }()

	actions := actionSet{ed}

	for len(ed.queue) > 0 && ed.running {
		buf := string(ed.queue)

		binding, consumed, incomplete := ed.resolve(buf, actions)
		if incomplete {
			return
		}

		if binding == nil {
			// No binding anywhere in the chain. A bracketed key may
			// still name a registered editor action; otherwise the
			// single first key goes to the mode's input handler.
			first, size := key.Next(buf, actions)
			if strings.HasPrefix(first, "<") && strings.HasSuffix(first, ">") {
				if b, ok := ed.actions[first[1:len(first)-1]]; ok && b.Func != nil {
					if !ed.invoke(b, buf, size) {
						return
					}
					continue
				}
			}
			inInsert := ed.inInsertLike()
			opMac := ed.macroOperator
			wasRecording := ed.recording
			replayBefore := ed.replayBytes
			if ed.mode.Input != nil {
				ed.mode.Input(first)
			}
			ed.noteConsumed(buf[:size], wasRecording, opMac, inInsert, replayBefore)
			ed.queue = []byte(buf[size:])
			continue
		}

		if binding.IsAlias() {
			// A replayed key expanding to an alias keeps its expansion
			// inside the replayed region.
			if ed.replayBytes >= consumed {
				ed.replayBytes += len(binding.Alias) - consumed
			} else {
				// Typed keys are recorded as typed; their expansion is
				// then consumed like replayed input so it is not
				// recorded a second time.
				ed.noteConsumed(buf[:consumed], ed.recording, nil, false, ed.replayBytes)
				ed.replayBytes += len(binding.Alias)
			}
			ed.queue = []byte(binding.Alias + buf[consumed:])
			continue
		}
		if !ed.invoke(binding, buf, consumed) {
			return
		}
	}
}

// invoke runs a binding's action against the input following it.
// Returns false when the action needs keys that have not arrived.
func (ed *Editor) invoke(b *keymap.Binding, buf string, consumed int) bool {
	rest := buf[consumed:]
	inInsert := ed.inInsertLike()
	opMac := ed.macroOperator
	wasRecording := ed.recording
	replayBefore := ed.replayBytes

	out, ok := b.Func(rest)
	if !ok {
		return false
	}

	// The chunk this action consumed: the matched keys plus whatever it
	// took from the remainder. The handler may also have spliced new
	// input in front (macro replay), so find the longest suffix of the
	// old remainder that survived at the end of the new one.
	chunk := buf[:consumed]
	for i := 0; i <= len(rest); i++ {
		if strings.HasSuffix(out, rest[i:]) {
			chunk = buf[:consumed] + rest[:i]
			break
		}
	}
	ed.noteConsumed(chunk, wasRecording, opMac, inInsert, replayBefore)
	ed.queue = []byte(out)
	return true
}

// resolve grows a prefix against the current mode chain. It returns the
// exact binding and the raw bytes it spans; (nil, n, false) when the
// prefix cannot match anything; or incomplete=true when the buffer ends
// mid-key or on a partial match.
func (ed *Editor) resolve(buf string, actions key.ActionSet) (*keymap.Binding, int, bool) {
	prefix := ""
	consumed := 0
	for {
		k, size := key.Next(buf[consumed:], actions)
		if size == 0 {
			// Mid-key, or we ran out of input while prefix-matched.
			return nil, 0, true
		}
		prefix += k
		consumed += size

		b, status := ed.mode.Lookup(prefix)
		switch status {
		case mode.Exact:
			return b, consumed, false
		case mode.Prefix:
			if consumed == len(buf) {
				return nil, 0, true
			}
		case mode.None:
			return nil, consumed, false
		}
	}
}

// inInsertLike reports whether consumed keys count as typed text for
// the operator macro.
func (ed *Editor) inInsertLike() bool {
	return ed.mode.ID == mode.Insert || ed.mode.ID == mode.Replace
}

// noteConsumed appends a consumed chunk to the active recordings.
// Replayed bytes are skipped for the user recording (the keys that
// triggered the replay were captured already); the operator macro only
// captures text typed while in insert or replace mode. opMac and
// replayBefore are sampled before the handler ran: the escape leaving
// insert mode is still captured, and bytes a handler just spliced do
// not make the chunk that triggered it count as replayed.
func (ed *Editor) noteConsumed(chunk string, wasRecording, opMac *macro.Macro, inInsert bool, replayBefore int) {
	n := len(chunk)
	replayed := n
	if replayed > replayBefore {
		replayed = replayBefore
	}
	ed.replayBytes -= replayed

	if ed.recording != nil && ed.recording == wasRecording && replayed < n {
		ed.recording.Append(chunk[replayed:])
	}

	if opMac != nil && inInsert {
		opMac.Append(chunk)
	}
}
