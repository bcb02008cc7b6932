package key

import (
	"strings"
	"unicode/utf8"
)

// maxNameLen bounds the length of an angle-bracketed key name.
const maxNameLen = 64

// ActionSet resolves editor action names referenced as <name> keys.
// HasPrefix must return true if any registered name starts with partial,
// so the tokenizer can hold incomplete input instead of misreading it.
type ActionSet interface {
	Has(name string) bool
	HasPrefix(partial string) bool
}

// baseNames maps lowercase key names and their aliases to canonical form.
var baseNames = map[string]string{
	"enter":     "Enter",
	"return":    "Enter",
	"cr":        "Enter",
	"escape":    "Escape",
	"esc":       "Escape",
	"tab":       "Tab",
	"backspace": "Backspace",
	"bs":        "Backspace",
	"delete":    "Delete",
	"del":       "Delete",
	"insert":    "Insert",
	"ins":       "Insert",
	"home":      "Home",
	"end":       "End",
	"pageup":    "PageUp",
	"pgup":      "PageUp",
	"pagedown":  "PageDown",
	"pgdn":      "PageDown",
	"up":        "Up",
	"down":      "Down",
	"left":      "Left",
	"right":     "Right",
	"space":     "Space",
	"lt":        "lt",
}

func init() {
	for i := 1; i <= 20; i++ {
		baseNames["f"+itoa(i)] = "F" + itoa(i)
	}
}

// itoa avoids strconv for the tiny F-key range.
func itoa(n int) string {
	if n < 10 {
		return string(rune('0' + n))
	}
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}

// CanonicalName normalizes the inner part of a bracketed key name.
// Valid forms are a base name ("Enter", "F5"), or one or more modifier
// prefixes C- (control), M- (meta/alt), S- (shift) followed by a base
// name or a single character. Returns false for anything else.
func CanonicalName(name string) (string, bool) {
	if name == "" {
		return "", false
	}

	var ctrl, meta, shift bool
	rest := name
	for len(rest) > 2 && rest[1] == '-' && isModifier(rest[0]) {
		switch rest[0] {
		case 'C', 'c':
			ctrl = true
		case 'M', 'm', 'A', 'a':
			meta = true
		case 'S', 's':
			shift = true
		}
		rest = rest[2:]
	}

	var base string
	if canon, ok := baseNames[strings.ToLower(rest)]; ok {
		base = canon
	} else if r, size := utf8.DecodeRuneInString(rest); size == len(rest) && r != utf8.RuneError {
		if !ctrl && !meta && !shift {
			// A bare character is not a named key.
			return "", false
		}
		if ctrl && r >= 'A' && r <= 'Z' {
			// Control combinations are case-insensitive.
			r += 'a' - 'A'
		}
		base = string(r)
	} else {
		return "", false
	}

	var sb strings.Builder
	if ctrl {
		sb.WriteString("C-")
	}
	if meta {
		sb.WriteString("M-")
	}
	if shift {
		sb.WriteString("S-")
	}
	sb.WriteString(base)
	return sb.String(), true
}

// IsNamed returns true if name (without brackets) is a known key name.
func IsNamed(name string) bool {
	_, ok := CanonicalName(name)
	return ok
}

func isModifier(b byte) bool {
	switch b {
	case 'C', 'c', 'M', 'm', 'A', 'a', 'S', 's':
		return true
	}
	return false
}

// isNameByte reports whether b may appear inside a bracketed key name or
// editor action name.
func isNameByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '-' || b == '_' || b == '@' || b == '^':
		return true
	}
	return false
}

// couldBeName reports whether partial may still grow into a valid key or
// action name once more input arrives. This keeps tokenization identical
// no matter how the input stream is fragmented: we only hold input that
// has a chance of closing into a recognized <name>.
func couldBeName(partial string, actions ActionSet) bool {
	if actions != nil && actions.HasPrefix(partial) {
		return true
	}

	rest := partial
	for len(rest) >= 2 && rest[1] == '-' && isModifier(rest[0]) {
		rest = rest[2:]
	}
	if rest == "" {
		return true
	}
	// A single pending modifier letter may still become "C-...".
	if len(rest) == 1 && isModifier(rest[0]) {
		return true
	}
	// With at least one modifier, any single character closes the name.
	if rest != partial && utf8.RuneCountInString(rest) == 1 {
		return true
	}
	lower := strings.ToLower(rest)
	for name := range baseNames {
		if strings.HasPrefix(name, lower) {
			return true
		}
	}
	return false
}

// Next splits the first key off buf.
//
// Returns the key and the number of input bytes it consumed. A zero size
// means the buffer ends in an incomplete key (an open bracket that may
// still become a name, or a truncated UTF-8 sequence) and more input is
// needed. A '<' that cannot introduce a known name is the literal
// one-byte key "<".
func Next(buf string, actions ActionSet) (string, int) {
	if buf == "" {
		return "", 0
	}

	if buf[0] == '<' {
		i := 1
		for i < len(buf) && i <= maxNameLen && isNameByte(buf[i]) {
			i++
		}
		switch {
		case i < len(buf) && buf[i] == '>' && i > 1:
			name := buf[1:i]
			if canon, ok := CanonicalName(name); ok {
				switch canon {
				case "Space":
					return " ", i + 1
				case "lt":
					// <lt> is how bindings spell the literal bracket.
					return "<", i + 1
				}
				return "<" + canon + ">", i + 1
			}
			if actions != nil && actions.Has(name) {
				return "<" + name + ">", i + 1
			}
			return "<", 1
		case i >= len(buf) && i <= maxNameLen && couldBeName(buf[1:], actions):
			return "", 0
		default:
			return "<", 1
		}
	}

	if !utf8.FullRuneInString(buf) {
		return "", 0
	}
	_, size := utf8.DecodeRuneInString(buf)
	return buf[:size], size
}

// Split tokenizes s completely. Incomplete trailing input is dropped.
func Split(s string, actions ActionSet) []string {
	var keys []string
	for s != "" {
		k, size := Next(s, actions)
		if size == 0 {
			break
		}
		keys = append(keys, k)
		s = s[size:]
	}
	return keys
}

// Normalize rewrites a binding key string into canonical tokenized form,
// so "<esc>" and "<Escape>" bind the same entry.
func Normalize(s string, actions ActionSet) string {
	return strings.Join(Split(s, actions), "")
}
