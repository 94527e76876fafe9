package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/dbi/internal/config"
	"github.com/abhisek/dbi/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "dbi",
	Short: "Safer Internet Day in the terminal",
	Long:  "dbi (Dzień Bezpiecznego Internetu): countdown, safety tips and a quiz in your terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DBI_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/dbi/config.yml)")
	rootCmd.Flags().String("page", "", "Page to open at start (index.html, porady.html, quiz.html, historia.html)")

	rootCmd.AddCommand(countdownCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfigPath returns the --config flag or the default config path.
func resolveConfigPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p, nil
	}
	return config.DefaultPath()
}

// loadConfig loads and validates the configuration.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := resolveConfigPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path (which DBI_DB overrides), then the default XDG
// path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// openStore opens the key/value store for a CLI subcommand. The returned
// close function is always safe to call.
func openStore(cmd *cobra.Command) (*store.Store, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, func() {}, err
	}
	return openStoreFor(cmd, cfg)
}

func openStoreFor(cmd *cobra.Command, cfg *config.Config) (*store.Store, func(), error) {
	st, err := openRunStore(cmd, cfg)
	if err != nil {
		return nil, func() {}, err
	}
	return st, func() {
		if err := st.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: close store: %v\n", err)
		}
	}, nil
}
