package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/itembank"
	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show assessment statistics",
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

		ctx := cmd.Context()
		bank := itembank.Default()

		userID, _ := cmd.Flags().GetString("user")
		sessionID, _ := cmd.Flags().GetString("session")
		if sessionID != "" {
			states, err := s.StateRepo().BySession(ctx, userID, sessionID)
			if err != nil {
				return fmt.Errorf("load session: %w", err)
			}
			if len(states) == 0 {
				fmt.Println("No dimensions recorded for this session.")
				return nil
			}
			fmt.Printf("%-20s  %-7s  %-6s  %-10s  %-5s  %s\n",
				"Dimension", "Answers", "Theta", "Confidence", "Done", "Reason")
			for _, st := range states {
				name := st.DimensionID
				if dim := bank.Dimension(st.DimensionID); dim != nil {
					name = dim.NameEn
				}
				done := "no"
				if st.Completed {
					done = "yes"
				}
				fmt.Printf("%-20s  %-7d  %+.2f  %9.0f%%  %-5s  %s\n",
					name, len(st.AnsweredItemIDs), st.Theta, st.Confidence*100, done, st.CompletionReason)
			}
			return nil
		}

		stats, err := s.EventRepo().AnswerStats(ctx)
		if err != nil {
			return fmt.Errorf("query answer stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No answers recorded yet.")
			return nil
		}

		fmt.Printf("%-20s  %-8s  %-8s  %s\n", "Dimension", "Answers", "Keyed", "Keyed %")
		for _, row := range stats {
			name := row.DimensionID
			if dim := bank.Dimension(row.DimensionID); dim != nil {
				name = dim.NameEn
			}
			pct := 0.0
			if row.Total > 0 {
				pct = float64(row.Keyed) / float64(row.Total) * 100
			}
			fmt.Printf("%-20s  %-8d  %-8d  %5.1f%%\n", name, row.Total, row.Keyed, pct)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("user", "local", "User identifier")
	statsCmd.Flags().String("session", "", "Show per-dimension results for one session")
}
