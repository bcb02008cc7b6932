// Package key tokenizes the editor's textual key syntax.
//
// A key is either a single UTF-8 codepoint ("a", "é") or an
// angle-bracketed name ("<Enter>", "<C-a>", "<S-Tab>"). Next splits the
// first key off a raw input buffer; a '<' that does not introduce a known
// name (or a registered editor action) is the literal one-byte key "<".
// Names are normalized so that "<Esc>" and "<Escape>" resolve to the same
// binding entry.
package key
