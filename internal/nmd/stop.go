package nmd

import (
	"errors"
	"strings"

	"github.com/varnote/nmdscan/internal/gencode"
)

// ErrNoStopCodon indicates that the mutated translation contains no stop
// symbol even though the variant's protein notation promised one. This is
// an inconsistency between caller-provided notation and sequence data and
// is surfaced as an explicit failure, distinct from a declined annotation.
var ErrNoStopCodon = errors.New("no stop codon in translated sequence")

// LocateStop scans a translated sequence 5'->3' for the first stop symbol.
// It returns the 0-based index of the stop in the protein and the 1-based
// nucleotide position of the last base of the stop codon in the underlying
// DNA sequence, which is 3*(index+1).
func LocateStop(protein string) (index int, ntPos int64, err error) {
	index = strings.IndexByte(protein, gencode.Stop)
	if index < 0 {
		return 0, 0, ErrNoStopCodon
	}
	return index, 3 * (int64(index) + 1), nil
}
