package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/dbi/internal/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Inspect stored quiz results",
}

var quizHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored quiz results, newest first",
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

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATA\tWYNIK")
		for i := len(results) - 1; i >= 0; i-- {
			r := results[i]
			fmt.Fprintf(w, "%s\t%s\n", r.Timestamp, r.ScoreText())
		}
		return w.Flush()
	},
}

var quizBestCmd = &cobra.Command{
	Use:   "best",
	Short: "Print the best stored quiz result",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closeStore, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		best, ok := quiz.NewHistory(st).Best(cmd.Context())
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Brak wyników.")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Najlepszy wynik: %s (%s)\n", best.ScoreText(), best.Timestamp)
		return nil
	},
}

func init() {
	quizCmd.AddCommand(quizHistoryCmd)
	quizCmd.AddCommand(quizBestCmd)
}
