package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/config"
	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "traittune",
	Short: "Adaptive personality assessment engine",
	Long: "TraitTune runs IRT-based computerized adaptive personality assessments: " +
		"it picks the most informative question for the current trait estimate, " +
		"re-estimates after every answer, and stops as soon as the estimate is " +
		"confident enough.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TRAITTUNE_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides TRAITTUNE_CONFIG env var)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// loadConfig reads the config file named by --config, TRAITTUNE_CONFIG,
// or the default location.
func loadConfig(cmd *cobra.Command) (*config.File, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the TRAITTUNE_DB env var, then the config file, then
// the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.File) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := os.Getenv("TRAITTUNE_DB"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// newLogger builds the CLI logger: silent by default, debug console
// output with --verbose.
func newLogger(cmd *cobra.Command) *zap.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
