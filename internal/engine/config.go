package engine

import "github.com/maxzemtsov/TraitTune-v1-sub000/internal/irt"

// Config holds the engine's tuning constants.
type Config struct {
	// MaxQuestionsPerDimension hard-stops a dimension regardless of
	// confidence.
	MaxQuestionsPerDimension int

	// MinQuestionsForConfidenceCheck is the number of answers required
	// before the confidence threshold may complete a dimension.
	MinQuestionsForConfidenceCheck int

	// TargetConfidence completes the dimension once reached (after the
	// minimum question count).
	TargetConfidence float64

	// MaxExpectedSE calibrates the standard-error-to-confidence mapping.
	// Roughly the prior's spread; see irt.Confidence.
	MaxExpectedSE float64

	// Estimator configures the EAP quadrature grid.
	Estimator irt.EstimatorConfig

	// BlendBaseWeight scales the influence of an external free-text
	// estimate against accumulated closed-item evidence.
	BlendBaseWeight float64

	// BlendDecay multiplies the external weight per prior blend, so
	// repeated free-text contributions to one dimension matter less
	// each time.
	BlendDecay float64
}

// DefaultConfig returns the production tuning.
func DefaultConfig() Config {
	return Config{
		MaxQuestionsPerDimension:       10,
		MinQuestionsForConfidenceCheck: 3,
		TargetConfidence:               0.80,
		MaxExpectedSE:                  irt.DefaultMaxExpectedSE,
		Estimator:                      irt.DefaultEstimatorConfig(),
		BlendBaseWeight:                2.5,
		BlendDecay:                     0.85,
	}
}
