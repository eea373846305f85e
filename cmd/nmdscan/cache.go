package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/varnote/nmdscan/internal/store"
	"github.com/varnote/nmdscan/internal/transcript"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the transcript cache",
	}

	cmd.AddCommand(newCacheBuildCmd())
	cmd.AddCommand(newCacheClearCmd())

	return cmd
}

func newCacheBuildCmd() *cobra.Command {
	var cacheDir string

	cmd := &cobra.Command{
		Use:   "build <transcripts.json>",
		Short: "Build the transcript cache from a JSON transcript set",
		Long: `Build reads a JSON array of transcripts and writes the gob cache used
by 'nmdscan annotate'. Each transcript carries its coding sequence,
3'UTR sequence, genetic code table id, coding offset, and ordered exons:

  [{"id": "NM_000278.5",
    "cds_sequence": "ATG...",
    "utr3_sequence": "...",
    "table_id": 1,
    "coding_offset": 0,
    "exons": [{"rank": 1, "start": 1, "end": 200}, ...]}]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCacheBuild(args[0], cacheDir)
		},
	}

	cmd.Flags().StringVar(&cacheDir, "cache-dir", defaultCacheDir(), "Cache directory")

	return cmd
}

func newCacheClearCmd() *cobra.Command {
	var cacheDir string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the cached transcript file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store.NewTranscriptCache(cacheDir).Clear()
			return nil
		},
	}

	cmd.Flags().StringVar(&cacheDir, "cache-dir", defaultCacheDir(), "Cache directory")

	return cmd
}

// transcriptJSON mirrors transcript.Transcript for the JSON input format.
type transcriptJSON struct {
	ID           string     `json:"id"`
	CDSSequence  string     `json:"cds_sequence"`
	UTR3Sequence string     `json:"utr3_sequence"`
	TableID      int        `json:"table_id"`
	CodingOffset int64      `json:"coding_offset"`
	Exons        []exonJSON `json:"exons"`
}

type exonJSON struct {
	Rank  int   `json:"rank"`
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

func runCacheBuild(inputPath, cacheDir string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}

	var raw []transcriptJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse transcript set: %w", err)
	}
	if len(raw) == 0 {
		return fmt.Errorf("transcript set %s is empty", inputPath)
	}

	transcripts := make([]*transcript.Transcript, 0, len(raw))
	for _, tj := range raw {
		t := &transcript.Transcript{
			ID:           tj.ID,
			CDSSequence:  tj.CDSSequence,
			UTR3Sequence: tj.UTR3Sequence,
			TableID:      tj.TableID,
			CodingOffset: tj.CodingOffset,
			Exons:        make([]transcript.Exon, 0, len(tj.Exons)),
		}
		for _, e := range tj.Exons {
			t.Exons = append(t.Exons, transcript.Exon{Rank: e.Rank, Start: e.Start, End: e.End})
		}
		if err := t.Validate(); err != nil {
			return err
		}
		transcripts = append(transcripts, t)
	}

	if err := store.NewTranscriptCache(cacheDir).Write(transcripts); err != nil {
		return err
	}

	fmt.Printf("Cached %d transcripts in %s\n", len(transcripts), cacheDir)
	return nil
}
