// Package nmd classifies premature stop codons as predicted to trigger or
// escape nonsense-mediated decay.
package nmd

import "fmt"

// Edit is a coding-sequence edit: the inclusive 1-based range
// [Start, End] is replaced by Replacement. An empty Replacement is a pure
// deletion; a Replacement longer than the removed span is an insertion or
// duplication. Start = End+1 denotes a pure insertion (empty removed
// range). A zero Start or End means the variant's effect on the coding
// sequence could not be resolved, and the caller must decline annotation
// instead of applying the edit.
type Edit struct {
	Start       int64
	End         int64
	Replacement string
}

// Defined returns true when both coordinates are present.
func (e Edit) Defined() bool {
	return e.Start > 0 && e.End > 0
}

// Apply replaces the edit's range within the coding sequence and returns
// the mutated sequence. The length law always holds:
//
//	len(mutated) = len(cds) - (End-Start+1) + len(Replacement)
func (e Edit) Apply(cds string) (string, error) {
	if !e.Defined() {
		return "", fmt.Errorf("edit coordinates undefined (start=%d end=%d)", e.Start, e.End)
	}
	if e.Start > e.End+1 {
		return "", fmt.Errorf("edit start %d after end %d", e.Start, e.End)
	}
	if e.End > int64(len(cds)) {
		return "", fmt.Errorf("edit end %d beyond coding sequence length %d", e.End, len(cds))
	}
	return cds[:e.Start-1] + e.Replacement + cds[e.End:], nil
}
