package nmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/varnote/nmdscan/internal/transcript"
)

func exonMap(exons ...transcript.Exon) *transcript.ExonMap {
	return transcript.NewExonMap(&transcript.Transcript{Exons: exons})
}

func TestEvaluateRulesIntronless(t *testing.T) {
	m := exonMap(transcript.Exon{Rank: 1, Start: 1, End: 900})

	// Single-exon transcripts always resolve to intronless, regardless
	// of where the stop lands.
	for _, stopPos := range []int64{3, 150, 500, 899} {
		ev := EvaluateRules(m, stopPos, 500)
		assert.Equal(t, FamilyCanonicalEscape, ev.Family, "stop at %d", stopPos)
		assert.Equal(t, RuleIntronless, ev.Rule, "stop at %d", stopPos)
	}
}

func TestEvaluateRulesPriority(t *testing.T) {
	// Three exons; penultimate ends at 500, last spans [501, 900].
	m := exonMap(
		transcript.Exon{Rank: 1, Start: 1, End: 200},
		transcript.Exon{Rank: 2, Start: 201, End: 500},
		transcript.Exon{Rank: 3, Start: 501, End: 900},
	)

	tests := []struct {
		name       string
		stopPos    int64
		variantEnd int64
		wantFamily string
		wantRule   string
	}{
		{"stop in last exon", 600, 590, FamilyCanonicalEscape, RuleLastExon},
		{"stop at last exon start", 501, 490, FamilyCanonicalEscape, RuleLastExon},
		{"stop in penultimate window", 480, 470, FamilyCanonicalEscape, RulePenultimateWindow},
		{"stop at window lower bound", 450, 440, FamilyCanonicalEscape, RulePenultimateWindow},
		{"stop at penultimate end", 500, 490, FamilyCanonicalEscape, RulePenultimateWindow},
		{"variant in first 150bp", 300, 100, FamilyNoncanonicalEscape, RuleFirst150},
		{"variant end exactly 151", 300, 151, FamilyNoncanonicalEscape, RuleFirst150},
		{"variant end 152 is too far", 300, 152, FamilyTriggering, ""},
		{"stop before window", 449, 440, FamilyTriggering, ""},

		// Priority: last exon beats the first-150bp rule even when both hold.
		{"last exon wins over first 150bp", 600, 100, FamilyCanonicalEscape, RuleLastExon},
		// Priority: penultimate window beats the first-150bp rule.
		{"window wins over first 150bp", 470, 100, FamilyCanonicalEscape, RulePenultimateWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := EvaluateRules(m, tt.stopPos, tt.variantEnd)
			assert.Equal(t, tt.wantFamily, ev.Family)
			assert.Equal(t, tt.wantRule, ev.Rule)
		})
	}
}

func TestEvaluateRulesLargeExon(t *testing.T) {
	// Middle exon is 500nt long (> 407); neither last-exon, window, nor
	// first-150bp applies for a stop inside it.
	m := exonMap(
		transcript.Exon{Rank: 1, Start: 1, End: 200},
		transcript.Exon{Rank: 2, Start: 201, End: 700},
		transcript.Exon{Rank: 3, Start: 701, End: 760},
		transcript.Exon{Rank: 4, Start: 761, End: 900},
	)

	ev := EvaluateRules(m, 400, 400)
	assert.Equal(t, FamilyNoncanonicalEscape, ev.Family)
	assert.Equal(t, RuleLargeExon, ev.Rule)
	assert.True(t, ev.InLargeExon)

	// Exactly 407nt does not count as large.
	m = exonMap(
		transcript.Exon{Rank: 1, Start: 1, End: 407},
		transcript.Exon{Rank: 2, Start: 408, End: 500},
		transcript.Exon{Rank: 3, Start: 501, End: 900},
	)
	ev = EvaluateRules(m, 200, 400)
	assert.False(t, ev.InLargeExon)
	assert.Equal(t, FamilyTriggering, ev.Family)
	assert.Equal(t, "", ev.Rule)
}

func TestEvaluateRulesWindowNotClamped(t *testing.T) {
	// Penultimate exon is only 20nt long; the 50bp window still extends
	// below its start and can match positions in the exon before it.
	m := exonMap(
		transcript.Exon{Rank: 1, Start: 1, End: 480},
		transcript.Exon{Rank: 2, Start: 481, End: 500},
		transcript.Exon{Rank: 3, Start: 501, End: 900},
	)

	// 460 sits in exon 1, below penultimate start 481, but inside
	// [500-50, 500]. Exon 1 is 480nt (> 407), so without the window the
	// large-exon rule would have fired; the window matches first.
	ev := EvaluateRules(m, 460, 400)
	assert.True(t, ev.InPenultimateWindow)
	assert.Equal(t, RulePenultimateWindow, ev.Rule)
}

func TestEvaluateRulesAllPredicatesComputed(t *testing.T) {
	m := exonMap(
		transcript.Exon{Rank: 1, Start: 1, End: 500},
		transcript.Exon{Rank: 2, Start: 501, End: 600},
		transcript.Exon{Rank: 3, Start: 601, End: 1100},
	)

	// The last-exon rule wins, but the later predicates are still filled in.
	ev := EvaluateRules(m, 700, 100)
	assert.Equal(t, RuleLastExon, ev.Rule)
	assert.False(t, ev.Intronless)
	assert.True(t, ev.InLastExon)
	assert.False(t, ev.InPenultimateWindow)
	assert.True(t, ev.InFirst150)
	assert.True(t, ev.InLargeExon) // last exon is 500nt
}

func TestEvaluateRulesStopOutsideAnyExon(t *testing.T) {
	// A frameshift can push the stop past the CDS into the 3'UTR, where
	// no exon span contains it. The large-exon predicate is then false.
	m := exonMap(
		transcript.Exon{Rank: 1, Start: 1, End: 500},
		transcript.Exon{Rank: 2, Start: 501, End: 1000},
	)
	ev := EvaluateRules(m, 1200, 990)
	assert.False(t, ev.InLargeExon)
	assert.Equal(t, FamilyTriggering, ev.Family)
}
