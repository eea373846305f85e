package transcript

// ExonMap is a coding-sequence-space view of a transcript's exon
// structure. Exon spans are translated into coding coordinates by
// subtracting the transcript's coding-start offset, so position 1 is the
// first base of the CDS.
type ExonMap struct {
	exons []Exon
}

// NewExonMap builds the coding-space exon view for a transcript.
// The transcript must have passed Validate.
func NewExonMap(t *Transcript) *ExonMap {
	exons := make([]Exon, len(t.Exons))
	for i, e := range t.Exons {
		exons[i] = Exon{
			Rank:  e.Rank,
			Start: e.Start - t.CodingOffset,
			End:   e.End - t.CodingOffset,
		}
	}
	return &ExonMap{exons: exons}
}

// Len returns the exon count.
func (m *ExonMap) Len() int {
	return len(m.exons)
}

// IntronCount returns exon count - 1.
func (m *ExonMap) IntronCount() int {
	return len(m.exons) - 1
}

// Last returns the 3'-most exon.
func (m *ExonMap) Last() Exon {
	return m.exons[len(m.exons)-1]
}

// Penultimate returns the second-to-last exon. The second return value is
// false when the transcript has fewer than two exons.
func (m *ExonMap) Penultimate() (Exon, bool) {
	if len(m.exons) < 2 {
		return Exon{}, false
	}
	return m.exons[len(m.exons)-2], true
}

// ExonAt returns the exon whose span contains the given coding-sequence
// position. Exons never overlap, so a linear scan over the ordered list
// is sufficient.
func (m *ExonMap) ExonAt(pos int64) (Exon, bool) {
	for _, e := range m.exons {
		if e.Contains(pos) {
			return e, true
		}
	}
	return Exon{}, false
}
