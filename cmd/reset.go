package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/engine"
	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/itembank"
	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset a session's dimension state to allow a retake",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		bank := itembank.Default()
		svc := engine.NewService(bank, s.StateRepo(),
			engine.WithConfig(cfg.EngineConfig()),
			engine.WithLogger(newLogger(cmd)))

		userID, _ := cmd.Flags().GetString("user")
		sessionID, _ := cmd.Flags().GetString("session")
		if sessionID == "" {
			return fmt.Errorf("--session is required")
		}

		dims := bank.Dimensions()
		if only, _ := cmd.Flags().GetString("dimension"); only != "" {
			dim := bank.Dimension(only)
			if dim == nil {
				return fmt.Errorf("unknown dimension %q", only)
			}
			dims = []itembank.Dimension{*dim}
		}

		ctx := cmd.Context()
		for _, dim := range dims {
			key := engine.Key{UserID: userID, SessionID: sessionID, DimensionID: dim.ID}
			if err := svc.ResetDimension(ctx, key); err != nil {
				return fmt.Errorf("reset %s: %w", dim.ID, err)
			}
		}
		fmt.Printf("Reset %d dimension(s) for session %s.\n", len(dims), sessionID)
		return nil
	},
}

func init() {
	resetCmd.Flags().String("user", "local", "User identifier")
	resetCmd.Flags().String("session", "", "Session identifier (required)")
	resetCmd.Flags().String("dimension", "", "Reset a single dimension instead of all")
}
