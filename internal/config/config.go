package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/engine"
	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/llm"
)

// File is the on-disk TOML configuration. Every field is optional; zero
// values fall back to built-in defaults, and environment variables win
// over the file.
type File struct {
	// DBPath overrides the default database location.
	DBPath string `toml:"db_path"`

	Engine Engine `toml:"engine"`
	LLM    LLM    `toml:"llm"`
}

// Engine holds the assessment tuning knobs.
type Engine struct {
	MaxQuestionsPerDimension       int     `toml:"max_questions_per_dimension"`
	MinQuestionsForConfidenceCheck int     `toml:"min_questions_for_confidence_check"`
	TargetConfidence               float64 `toml:"target_confidence"`
	MaxExpectedSE                  float64 `toml:"max_expected_se"`
	GridPoints                     int     `toml:"grid_points"`
	BlendBaseWeight                float64 `toml:"blend_base_weight"`
	BlendDecay                     float64 `toml:"blend_decay"`
}

// LLM selects the free-text analysis provider when the environment does
// not.
type LLM struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
}

// DefaultPath returns the config file location: TRAITTUNE_CONFIG, then
// $XDG_CONFIG_HOME/traittune/config.toml, then ~/.config/traittune/config.toml.
func DefaultPath() string {
	if p := os.Getenv("TRAITTUNE_CONFIG"); p != "" {
		return p
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "traittune", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "traittune", "config.toml")
	}
	return filepath.Join(home, ".config", "traittune", "config.toml")
}

// Load reads the TOML file at path. A missing file is not an error; the
// returned File then carries only defaults.
func Load(path string) (*File, error) {
	var f File
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &f, nil
}

// EngineConfig merges the file's tuning over the engine defaults.
func (f *File) EngineConfig() engine.Config {
	cfg := engine.DefaultConfig()
	if f.Engine.MaxQuestionsPerDimension > 0 {
		cfg.MaxQuestionsPerDimension = f.Engine.MaxQuestionsPerDimension
	}
	if f.Engine.MinQuestionsForConfidenceCheck > 0 {
		cfg.MinQuestionsForConfidenceCheck = f.Engine.MinQuestionsForConfidenceCheck
	}
	if f.Engine.TargetConfidence > 0 {
		cfg.TargetConfidence = f.Engine.TargetConfidence
	}
	if f.Engine.MaxExpectedSE > 0 {
		cfg.MaxExpectedSE = f.Engine.MaxExpectedSE
	}
	if f.Engine.GridPoints > 0 {
		cfg.Estimator.GridPoints = f.Engine.GridPoints
	}
	if f.Engine.BlendBaseWeight > 0 {
		cfg.BlendBaseWeight = f.Engine.BlendBaseWeight
	}
	if f.Engine.BlendDecay > 0 {
		cfg.BlendDecay = f.Engine.BlendDecay
	}
	return cfg
}

// LLMConfig builds the provider config with the usual precedence:
// environment variables, then this file, then built-in defaults.
func (f *File) LLMConfig() llm.Config {
	cfg := llm.ConfigFromEnv()
	if os.Getenv("TRAITTUNE_LLM_PROVIDER") == "" && f.LLM.Provider != "" {
		cfg.Provider = f.LLM.Provider
	}
	if f.LLM.Model != "" {
		switch cfg.Provider {
		case "anthropic":
			if os.Getenv("TRAITTUNE_ANTHROPIC_MODEL") == "" {
				cfg.Anthropic.Model = f.LLM.Model
			}
		case "openai":
			if os.Getenv("TRAITTUNE_OPENAI_MODEL") == "" {
				cfg.OpenAI.Model = f.LLM.Model
			}
		case "gemini":
			if os.Getenv("TRAITTUNE_GEMINI_MODEL") == "" {
				cfg.Gemini.Model = f.LLM.Model
			}
		case "openrouter":
			if os.Getenv("TRAITTUNE_OPENROUTER_MODEL") == "" {
				cfg.OpenRouter.Model = f.LLM.Model
			}
		}
	}
	return cfg
}
