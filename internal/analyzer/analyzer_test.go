package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/llm"
)

func TestAnalyze_ParsesEstimate(t *testing.T) {
	resp := json.RawMessage(`{"theta":1.2,"confidence":0.7,"rationale":"Describes seeking out novel experiences"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	s := New(mock, DefaultConfig())

	req := Request{
		DimensionID:   "openness",
		DimensionName: "Openness to Experience",
		Question:      "Describe a time you tried something completely new.",
		Text:          "Last year I moved abroad on a whim and loved every minute.",
	}

	est, err := s.Analyze(context.Background(), req)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if est.Theta != 1.2 {
		t.Errorf("theta = %f, want 1.2", est.Theta)
	}
	if est.Confidence != 0.7 {
		t.Errorf("confidence = %f, want 0.7", est.Confidence)
	}
	if est.Rationale == "" {
		t.Error("rationale should not be empty")
	}
}

func TestAnalyze_ClampsOutOfRangeValues(t *testing.T) {
	resp := json.RawMessage(`{"theta":7.5,"confidence":1.4,"rationale":"overconfident"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	s := New(mock, DefaultConfig())

	est, err := s.Analyze(context.Background(), Request{
		DimensionID:   "extraversion",
		DimensionName: "Extraversion",
		Question:      "q",
		Text:          "t",
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if est.Theta != 3.0 {
		t.Errorf("theta = %f, want clamped to 3.0", est.Theta)
	}
	if est.Confidence != 1.0 {
		t.Errorf("confidence = %f, want clamped to 1.0", est.Confidence)
	}
}

func TestAnalyze_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("rate limited")})
	s := New(mock, DefaultConfig())

	_, err := s.Analyze(context.Background(), Request{
		DimensionID:   "neuroticism",
		DimensionName: "Neuroticism",
		Question:      "q",
		Text:          "t",
	})
	if err == nil {
		t.Fatal("expected error from failing provider")
	}
}

func TestBuildAnalysisMessage(t *testing.T) {
	msg, err := buildAnalysisMessage(Request{
		DimensionID:   "agreeableness",
		DimensionName: "Agreeableness",
		Question:      "How do you handle disagreements?",
		Text:          "I usually look for common ground first.",
	})
	if err != nil {
		t.Fatalf("buildAnalysisMessage failed: %v", err)
	}
	for _, want := range []string{"Agreeableness", "agreeableness", "How do you handle disagreements?", "common ground"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}
