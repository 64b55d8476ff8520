package analyzer

import "github.com/maxzemtsov/TraitTune-v1-sub000/internal/llm"

// AnalysisSchema defines the JSON schema for LLM trait analysis responses.
var AnalysisSchema = &llm.Schema{
	Name:        "trait-analysis",
	Description: "Trait estimate for one personality dimension derived from a free-text answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"theta": map[string]any{
				"type":        "number",
				"minimum":     -3.0,
				"maximum":     3.0,
				"description": "Estimated trait level on the standard latent scale; 0.0 is the population average",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0.0,
				"maximum":     1.0,
				"description": "Confidence score (0.0-1.0) reflecting how much trait-relevant signal the text contains",
			},
			"rationale": map[string]any{
				"type":        "string",
				"description": "Brief one or two sentence explanation of the estimate",
			},
		},
		"required":             []any{"theta", "confidence", "rationale"},
		"additionalProperties": false,
	},
}
