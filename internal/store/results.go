package store

import (
	"context"
	"database/sql/driver"
	"fmt"
	"strings"

	goduckdb "github.com/marcboeker/go-duckdb"
)

// Result is one persisted annotation outcome.
type Result struct {
	VariantID    string // caller-supplied variant identifier
	TranscriptID string
	Notation     string // protein-change notation
	Family       string // classification family
	Rule         string // escape rule tag, empty for the triggering case
	Annotation   string // full annotation string
}

// SplitAnnotation extracts the family and rule fields from a full
// annotation string.
func SplitAnnotation(annotation string) (family, rule string) {
	parts := strings.SplitN(annotation, ":", 3)
	if len(parts) < 2 {
		return annotation, ""
	}
	return parts[0], parts[1]
}

// resultKey is the composite key for deduplicating results before writing.
type resultKey struct {
	variantID, transcriptID string
}

// WriteResults batch-inserts annotation results into DuckDB using the
// Appender API. Duplicate (variant_id, transcript_id) entries are
// deduplicated before writing.
func (s *Store) WriteResults(results []Result) error {
	if len(results) == 0 {
		return nil
	}

	seen := make(map[resultKey]bool, len(results))
	deduped := make([]Result, 0, len(results))
	for _, r := range results {
		k := resultKey{r.VariantID, r.TranscriptID}
		if !seen[k] {
			seen[k] = true
			deduped = append(deduped, r)
		}
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "nmd_results")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, r := range deduped {
		if err := appender.AppendRow(
			r.VariantID, r.TranscriptID, r.Notation,
			r.Family, r.Rule, r.Annotation,
		); err != nil {
			return fmt.Errorf("append result: %w", err)
		}
	}

	return appender.Flush()
}

// ClearResults removes all cached annotation results.
func (s *Store) ClearResults() error {
	_, err := s.db.Exec("DELETE FROM nmd_results")
	return err
}

// LookupVariant queries DuckDB for previously cached annotations of a
// specific variant.
func (s *Store) LookupVariant(variantID string) ([]Result, error) {
	rows, err := s.db.Query(`SELECT
		variant_id, transcript_id, notation, family, rule, annotation
		FROM nmd_results
		WHERE variant_id=?`, variantID)
	if err != nil {
		return nil, fmt.Errorf("query variant: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

// SearchByRule queries DuckDB for all cached results that matched a
// specific escape rule.
func (s *Store) SearchByRule(rule string) ([]Result, error) {
	rows, err := s.db.Query(`SELECT
		variant_id, transcript_id, notation, family, rule, annotation
		FROM nmd_results
		WHERE rule=?`, rule)
	if err != nil {
		return nil, fmt.Errorf("query by rule: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

// scanResults scans rows into Result slices.
func scanResults(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]Result, error) {
	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(
			&r.VariantID, &r.TranscriptID, &r.Notation,
			&r.Family, &r.Rule, &r.Annotation,
		); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return results, nil
}
