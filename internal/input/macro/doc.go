// Package macro stores raw-keystroke recordings. A Macro is an opaque
// byte buffer of keys in the editor's textual syntax; the Store holds the
// named slots a-z and 0-9 plus two anonymous slots: the operator macro
// auto-recorded around insert-mode edits, and the repeat buffer the dot
// command replays from.
package macro
