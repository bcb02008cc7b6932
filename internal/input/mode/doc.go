// Package mode implements the editor's mode graph: a statically
// enumerated set of nodes, each with a binding table and a mutable parent
// edge. Key lookup walks the parent chain; entering and leaving a mode
// runs its hooks, which may retarget parent edges (the OPERATOR node does
// so to expose text objects while an operator is pending).
package mode
