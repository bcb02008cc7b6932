// Package ui abstracts the rendering surface. The editor core only
// pushes frames (visible lines, cursor, status, prompt, info message) and
// pulls events (keys in textual syntax, resizes). Terminal implements the
// interface over tcell; Noop discards everything and is used by headless
// tests and pipelines.
package ui
