package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/dbi/internal/quiz"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closeStore, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		results := quiz.NewHistory(st).List(cmd.Context())
		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "Brak wyników.")
			return nil
		}

		sum := 0
		for _, r := range results {
			sum += r.Percentage
		}
		best, _ := quiz.BestOf(results)
		last := results[len(results)-1]

		fmt.Fprintf(out, "Rozwiązane quizy: %d\n", len(results))
		fmt.Fprintf(out, "Średni wynik:     %d%%\n", sum/len(results))
		fmt.Fprintf(out, "Najlepszy wynik:  %s\n", best.ScoreText())
		fmt.Fprintf(out, "Ostatni wynik:    %s\n", last.ScoreText())
		fmt.Fprintf(out, "Ocena:            %s\n", quiz.TierFor(last.Percentage).Message())
		return nil
	},
}
