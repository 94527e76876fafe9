package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/dbi/internal/quiz"
	"github.com/abhisek/dbi/internal/themepref"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the stored theme preference and quiz results",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closeStore, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		onlyTheme, _ := cmd.Flags().GetBool("theme")
		onlyQuiz, _ := cmd.Flags().GetBool("quiz")
		all := !onlyTheme && !onlyQuiz

		if all || onlyTheme {
			if err := st.Delete(cmd.Context(), themepref.PreferenceKey); err != nil {
				return fmt.Errorf("delete theme preference: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Usunięto zapisany motyw.")
		}
		if all || onlyQuiz {
			if err := quiz.NewHistory(st).Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear quiz results: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Usunięto wyniki quizu.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("theme", false, "Only delete the theme preference")
	resetCmd.Flags().Bool("quiz", false, "Only delete quiz results")
}
