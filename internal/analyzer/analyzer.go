package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/irt"
	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/llm"
)

// Config holds configuration for the LLM trait analyzer.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.3,
	}
}

// Service performs LLM-based trait estimation over free-text answers.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// New creates an LLM-based trait analyzer.
func New(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Request is the input for free-text trait analysis.
type Request struct {
	DimensionID   string
	DimensionName string
	Question      string
	Text          string
}

// Estimate is a trait estimate derived from free text. Theta is on the
// standard latent scale, Confidence on [0, 1].
type Estimate struct {
	Theta      float64
	Confidence float64
	Rationale  string
}

// analysisOutput is the raw LLM response.
type analysisOutput struct {
	Theta      float64 `json:"theta"`
	Confidence float64 `json:"confidence"`
	Rationale  string  `json:"rationale"`
}

// Analyze sends a free-text answer to the LLM for trait estimation.
// The returned theta and confidence are clamped to their valid ranges
// regardless of what the model produced.
func (s *Service) Analyze(ctx context.Context, req Request) (Estimate, error) {
	ctx = llm.WithPurpose(ctx, "trait-analysis")

	userMsg, err := buildAnalysisMessage(req)
	if err != nil {
		return Estimate{}, fmt.Errorf("build analysis prompt: %w", err)
	}

	llmReq := llm.Request{
		System: analysisSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      AnalysisSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, llmReq)
	if err != nil {
		return Estimate{}, fmt.Errorf("LLM trait analysis failed: %w", err)
	}

	var raw analysisOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return Estimate{}, fmt.Errorf("failed to parse analysis response: %w", err)
	}

	est := Estimate{
		Theta:      irt.Clamp(raw.Theta),
		Confidence: raw.Confidence,
		Rationale:  raw.Rationale,
	}
	if est.Confidence < 0 {
		est.Confidence = 0
	}
	if est.Confidence > 1 {
		est.Confidence = 1
	}
	return est, nil
}

const analysisSystemPrompt = `You are an expert personality psychologist. A respondent answered an open-ended question in a personality assessment. Your job is to estimate where the respondent falls on one specific trait dimension based solely on what they wrote.

Instructions:
- Estimate theta on a standard scale from -3.0 (extremely low on the trait) to +3.0 (extremely high), where 0.0 is the population average.
- Judge only the named dimension. Ignore evidence about other traits.
- Provide a confidence score (0.0-1.0) reflecting how much trait-relevant signal the text contains. Short, evasive, or off-topic answers warrant low confidence.
- Keep the rationale to one or two sentences.`

var analysisUserTemplate = template.Must(template.New("analysis").Parse(`Dimension: {{.DimensionName}} ({{.DimensionID}})
Question: {{.Question}}

Respondent's answer:
{{.Text}}`))

func buildAnalysisMessage(req Request) (string, error) {
	var buf bytes.Buffer
	if err := analysisUserTemplate.Execute(&buf, req); err != nil {
		return "", err
	}
	return buf.String(), nil
}
