package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/Tally/internal/matrix"
	"github.com/MikeSquared-Agency/Tally/internal/wpm"
)

// evalCmd scores a decision file locally.
func evalCmd() *cobra.Command {
	var file string
	var precision int
	var asJSON bool
	var pareto bool

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate a decision file",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := matrix.Load(file)
			if err != nil {
				return err
			}
			outcome, err := m.Evaluate()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(outcome)
			}

			printResults(out, outcome.Results, outcome.Best, outcome.HasBest(), precision)
			if pareto {
				fmt.Fprintf(out, "Pareto frontier: %v\n", wpm.Frontier(m.Alternatives, m.Types()))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "decision file (.yaml, .yml or .json)")
	cmd.Flags().IntVar(&precision, "precision", matrix.DefaultPrecision, "decimals shown for scores")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full outcome as JSON")
	cmd.Flags().BoolVar(&pareto, "pareto", false, "also print the non-dominated alternatives")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func printResults(out io.Writer, results []wpm.AlternativeResult, best string, hasBest bool, precision int) {
	if len(results) == 0 {
		fmt.Fprintln(out, "No alternatives to rank.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ALTERNATIVE\tSCORE\tRANK")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%d\n", r.Name, matrix.FormatScore(r.Score, precision), r.Rank)
	}
	w.Flush()

	if hasBest {
		for _, r := range results {
			if r.Name == best {
				fmt.Fprintf(out, "Best alternative: %s (score %s)\n", best, matrix.FormatScore(r.Score, precision))
				break
			}
		}
	}
}
