package gencode

import "strings"

// Symbols appearing in translated sequences.
const (
	Stop    = '*'
	Unknown = 'X'
	Met     = 'M'
)

// Translate translates a DNA codon to its amino acid under this table.
// Returns 'X' for codons that do not resolve to exactly one amino acid
// (wrong length, ambiguity codes, non-standard bases) and '*' for stop
// codons. CDS data is already uppercase, so no ToUpper conversion is needed.
func (t *Table) Translate(codon string) byte {
	if len(codon) != 3 {
		return Unknown
	}
	if aa, ok := t.codons[codon]; ok {
		return aa
	}
	return Unknown
}

// IsStopCodon returns true if the codon is a stop codon under this table.
func (t *Table) IsStopCodon(codon string) bool {
	return t.Translate(codon) == Stop
}

// TranslateSequence translates a DNA sequence to amino acids, reading
// consecutive non-overlapping triplets from offset 0. A trailing partial
// codon is not translated. Translation is total: it completes for any
// finite input, mapping unresolvable triplets to 'X'.
func (t *Table) TranslateSequence(seq string) string {
	n := len(seq)
	if n%3 != 0 {
		// Truncate to complete codons
		n = (n / 3) * 3
	}

	var result strings.Builder
	result.Grow(n / 3)

	for i := 0; i < n; i += 3 {
		result.WriteByte(t.Translate(seq[i : i+3]))
	}

	return result.String()
}

// GetCodon extracts a codon from a sequence at a given codon number.
// Codon numbers are 1-based (codon 1 is positions 1-3). Returns an empty
// string when the codon does not lie fully within the sequence.
func GetCodon(seq string, codonNumber int64) string {
	if codonNumber < 1 {
		return ""
	}
	startIdx := (codonNumber - 1) * 3
	endIdx := startIdx + 3
	if endIdx > int64(len(seq)) {
		return ""
	}
	return seq[startIdx:endIdx]
}
