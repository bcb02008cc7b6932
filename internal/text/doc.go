// Package text provides the buffer primitive consumed by the editor core.
//
// The Text interface is the only surface the core depends on: byte-offset
// insert/delete, line navigation, stable marks that track edits, regex
// search, and snapshot-based history identified by revision tokens.
//
// Buffer is the in-memory implementation shipped with the editor. It favors
// simplicity over asymptotic cleverness: content is a flat byte slice and
// history keeps full snapshots. Positions are byte offsets; EPOS marks an
// invalid position.
package text
