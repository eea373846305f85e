// Package transcript provides the transcript model used for annotation.
package transcript

import "fmt"

// Exon is a single exon within a transcript. Coordinates are 1-based and
// inclusive, in the transcript's exon coordinate space, ordered 5'->3' in
// transcript (not genomic) order.
type Exon struct {
	Rank  int   // Exon number (1-based, 5'->3')
	Start int64 // First position (1-based)
	End   int64 // Last position (1-based, inclusive)
}

// Length returns the exon length in nucleotides.
func (e Exon) Length() int64 {
	return e.End - e.Start + 1
}

// Contains returns true if the given position lies within the exon span.
func (e Exon) Contains(pos int64) bool {
	return pos >= e.Start && pos <= e.End
}

// Transcript holds the per-call transcript data: coding sequence, 3'UTR,
// genetic code table id, and the ordered exon structure. Instances are
// plain immutable values constructed fresh per annotation call; nothing
// back-references genes or shared caches.
type Transcript struct {
	ID           string // Transcript ID (e.g. NM_000278.5)
	CDSSequence  string // Coding sequence, start codon through native stop
	UTR3Sequence string // 3'UTR immediately following CDSSequence, possibly empty
	TableID      int    // NCBI genetic code table id, 0 selects the standard code
	CodingOffset int64  // Bases preceding the CDS in exon coordinate space (5'UTR length)
	Exons        []Exon // Ordered exons, rank 1 first
}

// IntronCount returns the number of introns, which for a valid transcript
// model equals exon count - 1.
func (t *Transcript) IntronCount() int {
	return len(t.Exons) - 1
}

// Validate checks the structural invariants the annotation engine relies
// on: a non-empty, rank-ordered, non-overlapping exon list with sane spans.
func (t *Transcript) Validate() error {
	if len(t.Exons) == 0 {
		return fmt.Errorf("transcript %s: no exons", t.ID)
	}
	if len(t.CDSSequence) == 0 {
		return fmt.Errorf("transcript %s: empty coding sequence", t.ID)
	}
	for i, e := range t.Exons {
		if e.Rank != i+1 {
			return fmt.Errorf("transcript %s: exon %d has rank %d", t.ID, i+1, e.Rank)
		}
		if e.Start > e.End {
			return fmt.Errorf("transcript %s: exon %d span [%d,%d] inverted", t.ID, e.Rank, e.Start, e.End)
		}
		if i > 0 && e.Start <= t.Exons[i-1].End {
			return fmt.Errorf("transcript %s: exon %d overlaps exon %d", t.ID, e.Rank, i)
		}
	}
	return nil
}
