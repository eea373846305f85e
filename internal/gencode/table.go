// Package gencode provides NCBI genetic code tables and DNA translation.
package gencode

import "fmt"

// Table is an immutable genetic code: an NCBI translation table id plus
// a codon to single-letter amino acid mapping. Tables are built once at
// package init and shared read-only, so they are safe for concurrent use.
type Table struct {
	id     int
	codons map[string]byte
}

// NCBI translation table ids.
// https://www.ncbi.nlm.nih.gov/Taxonomy/Utils/wprintgc.cgi
const (
	Standard                            = 1
	VertebrateMitochondrial             = 2
	YeastMitochondrial                  = 3
	MoldProtozoanMitochondrial          = 4
	InvertebrateMitochondrial           = 5
	CiliateNuclear                      = 6
	EchinodermFlatwormMitochondrial     = 9
	EuplotidNuclear                     = 10
	BacterialPlantPlastid               = 11
	AlternativeYeastNuclear             = 12
	AscidianMitochondrial               = 13
	AlternativeFlatwormMitochondrial    = 14
	ChlorophyceanMitochondrial          = 16
	TrematodeMitochondrial              = 21
	ScenedesmusObliquusMitochondrial    = 22
	ThraustochytriumMitochondrial       = 23
	PterobranchiaMitochondrial          = 24
	CandidateDivisionSR1Gracilibacteria = 25
	PachysolenTannophilusNuclear        = 26
	MesodiniumNuclear                   = 29
	PeritrichNuclear                    = 30
)

// Standard genetic code: DNA codon to amino acid (single letter).
var standardCodons = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',

	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',

	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',

	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// Per-table reassignments relative to the standard code. Table 11
// (bacterial/plant plastid) differs from the standard code only in its
// start codons, which do not matter for translation here.
var tableDiffs = map[int]map[string]byte{
	Standard:                        {},
	VertebrateMitochondrial:         {"AGA": '*', "AGG": '*', "ATA": 'M', "TGA": 'W'},
	YeastMitochondrial:              {"ATA": 'M', "CTT": 'T', "CTC": 'T', "CTA": 'T', "CTG": 'T', "TGA": 'W'},
	MoldProtozoanMitochondrial:      {"TGA": 'W'},
	InvertebrateMitochondrial:       {"AGA": 'S', "AGG": 'S', "ATA": 'M', "TGA": 'W'},
	CiliateNuclear:                  {"TAA": 'Q', "TAG": 'Q'},
	EchinodermFlatwormMitochondrial: {"AAA": 'N', "AGA": 'S', "AGG": 'S', "TGA": 'W'},
	EuplotidNuclear:                 {"TGA": 'C'},
	BacterialPlantPlastid:           {},
	AlternativeYeastNuclear:         {"CTG": 'S'},
	AscidianMitochondrial:           {"AGA": 'G', "AGG": 'G', "ATA": 'M', "TGA": 'W'},
	AlternativeFlatwormMitochondrial: {
		"AAA": 'N', "AGA": 'S', "AGG": 'S', "TAA": 'Y', "TGA": 'W',
	},
	ChlorophyceanMitochondrial:          {"TAG": 'L'},
	TrematodeMitochondrial:              {"TGA": 'W', "ATA": 'M', "AGA": 'S', "AGG": 'S', "AAA": 'N'},
	ScenedesmusObliquusMitochondrial:    {"TCA": '*', "TAG": 'L'},
	ThraustochytriumMitochondrial:       {"TTA": '*'},
	PterobranchiaMitochondrial:          {"AGA": 'S', "AGG": 'K', "TGA": 'W'},
	CandidateDivisionSR1Gracilibacteria: {"TGA": 'G'},
	PachysolenTannophilusNuclear:        {"CTG": 'A'},
	MesodiniumNuclear:                   {"TAA": 'Y', "TAG": 'Y'},
	PeritrichNuclear:                    {"TAA": 'E', "TAG": 'E'},
}

// tables holds one immutable Table per recognized NCBI id, built at init.
var tables = func() map[int]*Table {
	out := make(map[int]*Table, len(tableDiffs))
	for id, diff := range tableDiffs {
		codons := make(map[string]byte, len(standardCodons))
		for codon, aa := range standardCodons {
			codons[codon] = aa
		}
		for codon, aa := range diff {
			codons[codon] = aa
		}
		out[id] = &Table{id: id, codons: codons}
	}
	return out
}()

// ForID returns the genetic code table with the given NCBI id.
// An id of 0 selects the standard code.
func ForID(id int) (*Table, error) {
	if id == 0 {
		id = Standard
	}
	t, ok := tables[id]
	if !ok {
		return nil, fmt.Errorf("unknown genetic code table id %d", id)
	}
	return t, nil
}

// MustForID is ForID for table ids known to be valid (e.g. the constants
// above). It panics on an unknown id.
func MustForID(id int) *Table {
	t, err := ForID(id)
	if err != nil {
		panic(err)
	}
	return t
}

// ID returns the NCBI translation table id.
func (t *Table) ID() int {
	return t.id
}

// AminoAcidSingleToThree converts single letter amino acid to three letter code.
var AminoAcidSingleToThree = map[byte]string{
	'A': "Ala", 'C': "Cys", 'D': "Asp", 'E': "Glu",
	'F': "Phe", 'G': "Gly", 'H': "His", 'I': "Ile",
	'K': "Lys", 'L': "Leu", 'M': "Met", 'N': "Asn",
	'P': "Pro", 'Q': "Gln", 'R': "Arg", 'S': "Ser",
	'T': "Thr", 'V': "Val", 'W': "Trp", 'Y': "Tyr",
	'*': "Stop", 'X': "Xaa",
}

// ThreeLetter converts a single-letter amino acid code to its three-letter
// name. Returns "Xaa" for unknown amino acids.
func ThreeLetter(aa byte) string {
	if three, ok := AminoAcidSingleToThree[aa]; ok {
		return three
	}
	return "Xaa"
}
