package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/varnote/nmdscan/internal/store"
)

func newResultsCmd() *cobra.Command {
	var (
		variantID string
		rule      string
		clear     bool
	)

	cmd := &cobra.Command{
		Use:   "results",
		Short: "Query stored annotation results",
		Long: `Results queries the DuckDB result store written by 'nmdscan annotate'
when store.path is configured. Filter by variant id or by escape rule.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := viper.GetString("store.path")
			if path == "" {
				return fmt.Errorf("store.path is not configured, set it with 'nmdscan config set store.path <file>'")
			}
			return runResults(path, variantID, rule, clear)
		},
	}

	cmd.Flags().StringVar(&variantID, "variant", "", "Look up results for a variant id")
	cmd.Flags().StringVar(&rule, "rule", "", "List results matching an escape rule")
	cmd.Flags().BoolVar(&clear, "clear", false, "Delete all stored results")

	return cmd
}

func runResults(path, variantID, rule string, clear bool) error {
	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()

	if clear {
		return s.ClearResults()
	}

	var results []store.Result
	switch {
	case variantID != "":
		results, err = s.LookupVariant(variantID)
	case rule != "":
		results, err = s.SearchByRule(rule)
	default:
		return fmt.Errorf("specify --variant, --rule, or --clear")
	}
	if err != nil {
		return err
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	fmt.Fprintln(w, "#variant_id\ttranscript_id\tfamily\trule\tannotation")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.VariantID, r.TranscriptID, r.Family, r.Rule, r.Annotation)
	}

	return nil
}
