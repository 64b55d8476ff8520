package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/llm"
	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM provider configuration and usage",
}

var llmCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the configured LLM provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		llmCfg := cfg.LLMConfig()
		if err := llmCfg.Validate(); err != nil {
			return err
		}

		provider, err := llm.NewProvider(cmd.Context(), llmCfg, nil)
		if err != nil {
			return fmt.Errorf("create provider: %w", err)
		}
		fmt.Printf("Provider: %s\nModel:    %s\n", llmCfg.Provider, provider.ModelID())
		return nil
	},
}

var llmUsageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show per-model LLM request accounting",
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

		usage, err := s.EventRepo().LLMUsage(cmd.Context())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(usage) == 0 {
			fmt.Println("No LLM requests recorded yet.")
			return nil
		}

		fmt.Printf("%-36s  %-8s  %-8s  %-10s  %-10s  %s\n",
			"Model", "Requests", "Failed", "In", "Out", "Est. cost")
		for _, row := range usage {
			cost := "n/a"
			if mc := llm.LookupCost(row.Model); mc != nil {
				cost = fmt.Sprintf("$%.4f", mc.Cost(row.InputTokens, row.OutputTokens))
			}
			fmt.Printf("%-36s  %-8d  %-8d  %-10d  %-10d  %s\n",
				row.Model, row.Requests, row.Failures, row.InputTokens, row.OutputTokens, cost)
		}
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmCheckCmd)
	llmCmd.AddCommand(llmUsageCmd)
}
