package nmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/varnote/nmdscan/internal/gencode"
	"github.com/varnote/nmdscan/internal/transcript"
)

// Variant is a protein-truncating variant in the coordinate space of a
// transcript's coding sequence. Start/End/Replacement define the edit;
// ProteinNotation is the HGVS-style protein change used only as a
// pre-filter.
type Variant struct {
	ProteinNotation string
	Start           int64 // 1-based inclusive CDS position, 0 = undefined
	End             int64 // 1-based inclusive CDS position, 0 = undefined
	Replacement     string
}

// Edit returns the coding-sequence edit for the variant.
func (v *Variant) Edit() Edit {
	return Edit{Start: v.Start, End: v.End, Replacement: v.Replacement}
}

// Predictor classifies premature stop codons as NMD-triggering or
// NMD-escaping. It holds no mutable per-call state, so a single Predictor
// may be shared across concurrent callers.
type Predictor struct {
	logger *zap.Logger
}

// NewPredictor creates a predictor with logging disabled.
func NewPredictor() *Predictor {
	return &Predictor{logger: zap.NewNop()}
}

// SetLogger sets the logger used for per-call diagnostics.
func (p *Predictor) SetLogger(l *zap.Logger) {
	p.logger = l
}

// Annotate classifies the premature stop codon produced by applying the
// variant to the transcript and returns the annotation string.
//
// The second return value is false when the call declines annotation:
// the protein notation fails the pre-filter or the coding coordinates are
// undefined. Declining is not an error. A non-nil error indicates
// inconsistent input, such as a translation with no stop codon despite a
// notation that promised one (ErrNoStopCodon).
func (p *Predictor) Annotate(t *transcript.Transcript, v *Variant) (string, bool, error) {
	if !ShouldAnnotate(v.ProteinNotation) {
		p.logger.Debug("declined by protein-notation pre-filter",
			zap.String("transcript", t.ID),
			zap.String("notation", v.ProteinNotation))
		return "", false, nil
	}

	edit := v.Edit()
	if !edit.Defined() {
		p.logger.Debug("declined: coding coordinates undefined",
			zap.String("transcript", t.ID),
			zap.String("notation", v.ProteinNotation))
		return "", false, nil
	}

	if err := t.Validate(); err != nil {
		return "", false, err
	}

	table, err := gencode.ForID(t.TableID)
	if err != nil {
		return "", false, fmt.Errorf("transcript %s: %w", t.ID, err)
	}

	mutatedCDS, err := edit.Apply(t.CDSSequence)
	if err != nil {
		return "", false, fmt.Errorf("transcript %s: %w", t.ID, err)
	}

	// The sequence used for stop scanning extends through the 3'UTR:
	// a frameshifted stop frequently lands past the native stop codon.
	seq := mutatedCDS + t.UTR3Sequence
	protein := table.TranslateSequence(seq)

	stopIdx, stopPos, err := LocateStop(protein)
	if err != nil {
		return "", false, fmt.Errorf("transcript %s (%s): %w", t.ID, v.ProteinNotation, err)
	}

	ev := EvaluateRules(transcript.NewExonMap(t), stopPos, v.End)
	ctx := ExtractContext(seq, protein, stopIdx, table)

	p.logger.Debug("classified premature stop",
		zap.String("transcript", t.ID),
		zap.String("notation", v.ProteinNotation),
		zap.Int64("stop_pos", stopPos),
		zap.String("family", ev.Family),
		zap.String("rule", ev.Rule),
		zap.Bool("intronless", ev.Intronless),
		zap.Bool("in_last_exon", ev.InLastExon),
		zap.Bool("in_penultimate_window", ev.InPenultimateWindow),
		zap.Bool("in_first_150bp", ev.InFirst150),
		zap.Bool("in_large_exon", ev.InLargeExon))

	annotation := ev.Family + ":" + ev.Rule + ":" + ctx.String() + ":" + ctx.MetDistanceString()
	return annotation, true, nil
}
