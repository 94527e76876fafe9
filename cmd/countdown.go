package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/dbi/internal/countdown"
)

// clock is replaced in tests.
var clock = time.Now

var countdownCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Print the time left until the next Safer Internet Day",
	Run: func(cmd *cobra.Command, args []string) {
		now := clock()
		target := countdown.NextOccurrence(now)
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Data: %s\n", countdown.FormatDate(target))
		fmt.Fprintf(out, "Pozostało: %s\n", countdown.Render(target, now).String())
		if countdown.IsTargetDay(target, now) {
			fmt.Fprintln(out, countdown.CelebrationTitle)
		}
	},
}
