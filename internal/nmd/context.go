package nmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/varnote/nmdscan/internal/gencode"
)

// NoMet is the sentinel reported when no downstream Methionine exists
// before the end of the translated sequence.
const NoMet = "NoMet"

// StopContext describes the sequence context around a premature stop
// codon: the stop codon and the two codons preceding it, their amino acid
// names, the single nucleotide following the stop codon, and the distance
// to a potential translation re-initiation codon.
type StopContext struct {
	Minus2Codon string // bases [P-8, P-6], empty when P < 9
	Minus1Codon string // bases [P-5, P-3], empty when P < 6
	StopCodon   string // bases [P-2, P]
	Minus2AA    string // three-letter name, empty when codon is empty
	Minus1AA    string
	StopAA      string

	FourthLetter byte // base at P+1, 'N' when the sequence ends at P
	MetDistance  int  // amino acids from stop (counted as 1) to first Met, 0 = none
}

// ExtractContext builds the stop-codon context for a mutated coding+UTR
// sequence. protein must be the translation of seq under table, and
// stopIdx the 0-based index of the first stop symbol within protein.
func ExtractContext(seq, protein string, stopIdx int, table *gencode.Table) StopContext {
	p := 3 * (stopIdx + 1) // last base of the stop codon, 1-based

	ctx := StopContext{
		StopCodon: seq[p-3 : p],
	}
	ctx.StopAA = gencode.ThreeLetter(table.Translate(ctx.StopCodon))

	if p >= 6 {
		ctx.Minus1Codon = seq[p-6 : p-3]
		ctx.Minus1AA = gencode.ThreeLetter(table.Translate(ctx.Minus1Codon))
	}
	if p >= 9 {
		ctx.Minus2Codon = seq[p-9 : p-6]
		ctx.Minus2AA = gencode.ThreeLetter(table.Translate(ctx.Minus2Codon))
	}

	ctx.FourthLetter = 'N'
	if p < len(seq) {
		ctx.FourthLetter = seq[p]
	}

	// Re-initiation distance: the stop symbol counts as position 1, the
	// first downstream Met is included in the count.
	if rel := strings.IndexByte(protein[stopIdx:], gencode.Met); rel >= 0 {
		ctx.MetDistance = rel + 1
	}

	return ctx
}

// String renders the codon context in the fixed annotation grammar,
// e.g. "GCC(Ala)CTG(Leu)TGA(Stop)C". Missing codons render as empty
// strings inside the fixed parentheses, never as omitted groups.
func (c StopContext) String() string {
	return fmt.Sprintf("%s(%s)%s(%s)%s(%s)%c",
		c.Minus2Codon, c.Minus2AA,
		c.Minus1Codon, c.Minus1AA,
		c.StopCodon, c.StopAA,
		c.FourthLetter)
}

// MetDistanceString renders the re-initiation distance, or the NoMet
// sentinel when no downstream Met exists.
func (c StopContext) MetDistanceString() string {
	if c.MetDistance == 0 {
		return NoMet
	}
	return strconv.Itoa(c.MetDistance)
}
