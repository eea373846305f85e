package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/varnote/nmdscan/internal/nmd"
	"github.com/varnote/nmdscan/internal/store"
)

// variantRecord is one parsed input line: a variant identifier, the
// transcript it applies to, and the fields the predictor needs.
type variantRecord struct {
	VariantID    string
	TranscriptID string
	Variant      *nmd.Variant
}

func newAnnotateCmd() *cobra.Command {
	var (
		cacheDir string
		workers  int
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "annotate <variants.tsv>",
		Short: "Annotate protein-truncating variants from a TSV file",
		Long: `Annotate classifies each variant's premature stop codon as predicted to
trigger or escape nonsense-mediated decay.

Input is tab-separated with six columns:

  variant_id  transcript_id  protein_notation  cds_start  cds_end  replacement

Use "." for an undefined cds_start/cds_end and an empty replacement for a
pure deletion. Lines starting with # are skipped. Use '-' to read stdin.

Output is tab-separated: variant_id, transcript_id, annotation. Declined
variants report "-" in the annotation column.`,
		Example: `  nmdscan annotate variants.tsv
  cat variants.tsv | nmdscan annotate -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnnotate(args[0], cacheDir, workers, verbose)
		},
	}

	cmd.Flags().StringVar(&cacheDir, "cache-dir", defaultCacheDir(), "Directory containing transcripts.gob")
	cmd.Flags().IntVar(&workers, "workers", viper.GetInt("annotate.workers"), "Worker count (0 = all CPUs)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", viper.GetBool("log.verbose"), "Log per-variant rule diagnostics")

	return cmd
}

func runAnnotate(inputPath, cacheDir string, workers int, verbose bool) error {
	logger, err := newLogger(verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	transcripts, err := store.NewTranscriptCache(cacheDir).Load()
	if err != nil {
		return fmt.Errorf("load transcript cache (run 'nmdscan cache build' first): %w", err)
	}

	var in io.ReadCloser = os.Stdin
	if inputPath != "-" {
		f, err := os.Open(inputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	records, err := readVariants(in)
	if err != nil {
		return err
	}

	defaultTable := viper.GetInt("annotate.table")

	var work []nmd.WorkItem
	byID := make(map[int]variantRecord, len(records))
	for _, rec := range records {
		t, ok := transcripts[rec.TranscriptID]
		if !ok {
			logger.Warn("transcript not in cache, skipping",
				zap.String("variant", rec.VariantID),
				zap.String("transcript", rec.TranscriptID))
			continue
		}
		if t.TableID == 0 && defaultTable != 0 {
			tt := *t
			tt.TableID = defaultTable
			t = &tt
		}
		seq := len(work)
		byID[seq] = rec
		work = append(work, nmd.WorkItem{Seq: seq, Transcript: t, Variant: rec.Variant})
	}

	items := make(chan nmd.WorkItem, 64)
	go func() {
		defer close(items)
		for _, item := range work {
			items <- item
		}
	}()

	predictor := nmd.NewPredictor()
	predictor.SetLogger(logger)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	fmt.Fprintln(out, "#variant_id\ttranscript_id\tannotation")

	var stored []store.Result

	results := predictor.ParallelAnnotate(items, workers)
	if err := nmd.OrderedCollect(results, func(r nmd.WorkResult) error {
		rec := byID[r.Seq]
		if r.Err != nil {
			logger.Warn("failed to annotate variant",
				zap.String("variant", rec.VariantID),
				zap.String("transcript", rec.TranscriptID),
				zap.Error(r.Err))
			return nil
		}
		if !r.OK {
			fmt.Fprintf(out, "%s\t%s\t-\n", rec.VariantID, rec.TranscriptID)
			return nil
		}
		fmt.Fprintf(out, "%s\t%s\t%s\n", rec.VariantID, rec.TranscriptID, r.Annotation)

		family, rule := store.SplitAnnotation(r.Annotation)
		stored = append(stored, store.Result{
			VariantID:    rec.VariantID,
			TranscriptID: rec.TranscriptID,
			Notation:     rec.Variant.ProteinNotation,
			Family:       family,
			Rule:         rule,
			Annotation:   r.Annotation,
		})
		return nil
	}); err != nil {
		return err
	}

	if path := viper.GetString("store.path"); path != "" && len(stored) > 0 {
		s, err := store.Open(path)
		if err != nil {
			return fmt.Errorf("open result store: %w", err)
		}
		defer s.Close()
		if err := s.WriteResults(stored); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
		logger.Info("cached annotation results",
			zap.String("store", path),
			zap.Int("count", len(stored)))
	}

	return nil
}

// readVariants parses the six-column TSV input.
func readVariants(r io.Reader) ([]variantRecord, error) {
	var records []variantRecord

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 6 {
			return nil, fmt.Errorf("line %d: expected 6 tab-separated fields, got %d", lineNo, len(fields))
		}

		start, err := parseCoord(fields[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: cds_start: %w", lineNo, err)
		}
		end, err := parseCoord(fields[4])
		if err != nil {
			return nil, fmt.Errorf("line %d: cds_end: %w", lineNo, err)
		}

		records = append(records, variantRecord{
			VariantID:    fields[0],
			TranscriptID: fields[1],
			Variant: &nmd.Variant{
				ProteinNotation: fields[2],
				Start:           start,
				End:             end,
				Replacement:     fields[5],
			},
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read variants: %w", err)
	}

	return records, nil
}

// parseCoord parses a CDS coordinate; "." and "" mean undefined (0).
func parseCoord(s string) (int64, error) {
	if s == "" || s == "." {
		return 0, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if v < 1 {
		return 0, fmt.Errorf("coordinate %d out of range", v)
	}
	return v, nil
}

// newLogger builds the CLI logger. Verbose mode uses the development
// config so per-variant rule diagnostics are visible.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
