package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cfg := f.EngineConfig()
	if cfg.MaxQuestionsPerDimension != 10 {
		t.Errorf("max questions = %d, want default 10", cfg.MaxQuestionsPerDimension)
	}
	if cfg.TargetConfidence != 0.80 {
		t.Errorf("target confidence = %f, want default 0.80", cfg.TargetConfidence)
	}
}

func TestLoad_FileOverridesEngineDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
db_path = "/tmp/tt.db"

[engine]
max_questions_per_dimension = 7
target_confidence = 0.9

[llm]
provider = "mock"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if f.DBPath != "/tmp/tt.db" {
		t.Errorf("db_path = %q", f.DBPath)
	}

	cfg := f.EngineConfig()
	if cfg.MaxQuestionsPerDimension != 7 {
		t.Errorf("max questions = %d, want 7", cfg.MaxQuestionsPerDimension)
	}
	if cfg.TargetConfidence != 0.9 {
		t.Errorf("target confidence = %f, want 0.9", cfg.TargetConfidence)
	}
	// Untouched knobs keep their defaults.
	if cfg.MinQuestionsForConfidenceCheck != 3 {
		t.Errorf("min questions = %d, want default 3", cfg.MinQuestionsForConfidenceCheck)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("engine = not toml"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLLMConfig_FileProviderUsedWhenEnvUnset(t *testing.T) {
	t.Setenv("TRAITTUNE_LLM_PROVIDER", "")
	f := &File{LLM: LLM{Provider: "mock"}}

	cfg := f.LLMConfig()
	if cfg.Provider != "mock" {
		t.Errorf("provider = %q, want mock from file", cfg.Provider)
	}
}

func TestLLMConfig_EnvWinsOverFile(t *testing.T) {
	t.Setenv("TRAITTUNE_LLM_PROVIDER", "openai")
	f := &File{LLM: LLM{Provider: "mock"}}

	cfg := f.LLMConfig()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want openai from environment", cfg.Provider)
	}
}
