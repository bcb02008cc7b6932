// Package keymap stores the key-to-binding tables attached to editor
// modes. A binding is either an action handler or an alias keystring that
// is re-fed to the interpreter. Lookup distinguishes exact matches from
// partial prefixes so the interpreter can hold incomplete input.
package keymap
