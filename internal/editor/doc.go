// Package editor implements the command-interpretation core: the mode
// graph and key interpreter, the pending-action parser, motions, text
// objects and operators, the multi-cursor executor, and the per-window
// jump and change lists. It edits buffers through the text.Text
// collaborator and renders through ui.UI.
package editor
