package core

import "strings"

// Phase is the lifecycle moment at which a check runs relative to a file
// write/edit operation. Before-phases run path/name rules only; after-phases
// run the full content-dependent rule set.
type Phase int

// Check phases.
const (
	// PhaseBeforeWrite runs before a new file is written.
	PhaseBeforeWrite Phase = iota
	// PhaseBeforeEdit runs before an existing file is edited.
	PhaseBeforeEdit
	// PhaseAfterWrite runs after a new file has been written.
	PhaseAfterWrite
	// PhaseAfterEdit runs after an existing file has been edited.
	PhaseAfterEdit
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseBeforeWrite:
		return "before-write"
	case PhaseBeforeEdit:
		return "before-edit"
	case PhaseAfterWrite:
		return "after-write"
	case PhaseAfterEdit:
		return "after-edit"
	default:
		return "unknown"
	}
}

// Before reports whether the phase runs before the file operation.
// Before-phases never require parsed content.
func (p Phase) Before() bool {
	return p == PhaseBeforeWrite || p == PhaseBeforeEdit
}

// ParsePhase converts a string to a Phase.
// Returns the phase and true if valid, or PhaseAfterWrite and false.
func ParsePhase(s string) (Phase, bool) {
	switch strings.ToLower(s) {
	case "before-write", "beforewrite":
		return PhaseBeforeWrite, true
	case "before-edit", "beforeedit":
		return PhaseBeforeEdit, true
	case "after-write", "afterwrite":
		return PhaseAfterWrite, true
	case "after-edit", "afteredit":
		return PhaseAfterEdit, true
	default:
		return PhaseAfterWrite, false
	}
}
