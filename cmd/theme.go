package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/dbi/internal/themepref"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show the effective colour theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, closeStore, err := themeManager(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		out := cmd.OutOrStdout()
		if t, ok := mgr.Stored(cmd.Context()); ok {
			fmt.Fprintf(out, "%s (zapisany)\n", t)
			return nil
		}
		fmt.Fprintf(out, "%s (systemowy)\n", mgr.ResolveEffective(cmd.Context()))
		return nil
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between the light and dark theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, closeStore, err := themeManager(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		mgr.Load(cmd.Context())
		n, err := mgr.Toggle(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), n.Text)
		return nil
	},
}

var themeResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the stored theme and follow the system again",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, closeStore, err := themeManager(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		if err := mgr.ResetToSystemDefault(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (systemowy)\n", mgr.Effective())
		return nil
	},
}

// themeManager builds a Manager over the store. Outside the TUI there is no
// terminal background to query, so only a pinned system_theme counts.
func themeManager(cmd *cobra.Command) (*themepref.Manager, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, func() {}, err
	}
	st, closeStore, err := openStoreFor(cmd, cfg)
	if err != nil {
		return nil, closeStore, err
	}
	dark, _ := cfg.PinnedDark()
	return themepref.NewManager(st, nil, dark), closeStore, nil
}

func init() {
	themeCmd.AddCommand(themeToggleCmd)
	themeCmd.AddCommand(themeResetCmd)
}
