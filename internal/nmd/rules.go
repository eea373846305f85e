package nmd

import "github.com/varnote/nmdscan/internal/transcript"

// Classification families.
const (
	FamilyCanonicalEscape    = "canonical_NMD_escaping"
	FamilyNoncanonicalEscape = "noncanonical_NMD_escaping"
	FamilyTriggering         = "putative_NMD_triggering"
)

// Escape rule tags, in evaluation priority order. The triggering case
// carries no rule tag.
const (
	RuleIntronless        = "intronless"
	RuleLastExon          = "last_exon"
	RulePenultimateWindow = "50bp_penult_exon"
	RuleFirst150          = "first_150bp"
	RuleLargeExon         = "lt_407bp_exon"
)

const (
	penultimateWindowSize = 50
	first150Limit         = 151
	largeExonThreshold    = 407
)

// Evaluation holds the outcome of the rule evaluation: the selected
// family/rule pair plus every individual predicate. All five predicates
// are computed before selection so callers can inspect them, but only the
// first true one in priority order determines the label.
type Evaluation struct {
	Family string
	Rule   string // empty for the triggering case

	Intronless          bool
	InLastExon          bool
	InPenultimateWindow bool
	InFirst150          bool
	InLargeExon         bool
}

// EvaluateRules classifies a premature stop codon. stopPos is the
// nucleotide position of the stop codon's last base in mutated
// coding+UTR coordinates; variantEnd is the unedited variant's
// coding-sequence end position. The 150bp rule tests variantEnd, not
// the stop position.
func EvaluateRules(m *transcript.ExonMap, stopPos, variantEnd int64) Evaluation {
	ev := Evaluation{}

	ev.Intronless = m.IntronCount() == 0

	last := m.Last()
	ev.InLastExon = last.Contains(stopPos)

	// The 50bp window hangs off the penultimate exon's 3' end. Its lower
	// bound is not clamped to the exon's start, so for exons shorter than
	// 50nt the window can reach into the preceding exon or intron.
	if penult, ok := m.Penultimate(); ok {
		ev.InPenultimateWindow = stopPos >= penult.End-penultimateWindowSize &&
			stopPos <= penult.End
	}

	ev.InFirst150 = variantEnd <= first150Limit

	if exon, ok := m.ExonAt(stopPos); ok {
		ev.InLargeExon = exon.Length() > largeExonThreshold
	}

	switch {
	case ev.Intronless:
		ev.Family, ev.Rule = FamilyCanonicalEscape, RuleIntronless
	case ev.InLastExon:
		ev.Family, ev.Rule = FamilyCanonicalEscape, RuleLastExon
	case ev.InPenultimateWindow:
		ev.Family, ev.Rule = FamilyCanonicalEscape, RulePenultimateWindow
	case ev.InFirst150:
		ev.Family, ev.Rule = FamilyNoncanonicalEscape, RuleFirst150
	case ev.InLargeExon:
		ev.Family, ev.Rule = FamilyNoncanonicalEscape, RuleLargeExon
	default:
		ev.Family, ev.Rule = FamilyTriggering, ""
	}

	return ev
}
