package engine

import (
	"math"

	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/irt"
)

// blendExternal folds an externally produced trait estimate into the state.
// Each successive external adjustment carries less weight so the behavioral
// evidence from answered items cannot be drowned out by repeated free-text
// analyses. With no prior evidence at all the external estimate is adopted
// outright.
func blendExternal(st *DimensionState, theta, confidence float64, cfg Config) {
	theta = irt.Clamp(theta)
	confidence = clamp01(confidence)

	if len(st.Responses) == 0 && st.LLMAdjustments == 0 {
		st.Theta = theta
		st.Confidence = confidence
		st.LLMAdjustments++
		return
	}

	existingWeight := float64(len(st.Responses)) + 2*float64(st.LLMAdjustments)
	externalWeight := cfg.BlendBaseWeight * confidence * math.Pow(cfg.BlendDecay, float64(st.LLMAdjustments))

	total := existingWeight + externalWeight
	if total <= 0 {
		return
	}

	st.Theta = irt.Clamp((st.Theta*existingWeight + theta*externalWeight) / total)
	st.Confidence = clamp01((st.Confidence*existingWeight + confidence*externalWeight) / total)
	st.LLMAdjustments++
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
