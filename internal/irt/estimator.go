package irt

import "math"

// Estimator computes EAP (Expected a Posteriori) theta estimates over a
// fixed quadrature grid with a standard-normal prior truncated to the
// theta range. Re-estimating from the full response history each time
// makes the result independent of answer order.
type Estimator struct {
	grid    []float64
	prior   []float64
	seFloor float64
}

// EstimatorConfig tunes the quadrature grid and the standard-error floor.
type EstimatorConfig struct {
	// GridPoints is the number of quadrature points across the theta
	// range. 121 points gives 0.05 spacing over [-3, 3].
	GridPoints int

	// SEFloor is the minimum reported standard error. With very few
	// items the posterior can look deceptively tight; the floor keeps
	// confidence honest.
	SEFloor float64
}

// DefaultEstimatorConfig returns the production grid settings.
func DefaultEstimatorConfig() EstimatorConfig {
	return EstimatorConfig{GridPoints: 121, SEFloor: 0.1}
}

// NewEstimator precomputes the grid and prior weights.
func NewEstimator(cfg EstimatorConfig) *Estimator {
	if cfg.GridPoints < 2 {
		cfg.GridPoints = 121
	}
	if cfg.SEFloor <= 0 {
		cfg.SEFloor = 0.1
	}

	e := &Estimator{
		grid:    make([]float64, cfg.GridPoints),
		prior:   make([]float64, cfg.GridPoints),
		seFloor: cfg.SEFloor,
	}
	step := (ThetaMax - ThetaMin) / float64(cfg.GridPoints-1)
	for i := range e.grid {
		theta := ThetaMin + float64(i)*step
		e.grid[i] = theta
		e.prior[i] = math.Exp(-theta * theta / 2)
	}
	return e
}

// Estimate returns the EAP theta and its posterior standard error for the
// given response history. With an empty history it returns the prior mean
// and the prior's (truncated) spread.
//
// theta is clamped to [ThetaMin, ThetaMax]; the standard error never drops
// below the configured floor.
func (e *Estimator) Estimate(responses []Response) (theta, standardError float64) {
	n := len(e.grid)
	weights := make([]float64, n)

	var total float64
	for i, g := range e.grid {
		w := e.prior[i]
		for _, r := range responses {
			p := PKeyed(g, r.A, r.B, r.C)
			if r.Keyed {
				w *= p
			} else {
				w *= 1 - p
			}
		}
		weights[i] = w
		total += w
	}

	// A degenerate posterior (all likelihoods underflowed) falls back to
	// the prior alone.
	if total <= 0 || math.IsNaN(total) {
		copy(weights, e.prior)
		total = 0
		for _, w := range weights {
			total += w
		}
	}

	var mean float64
	for i, g := range e.grid {
		mean += g * weights[i] / total
	}

	var variance float64
	for i, g := range e.grid {
		d := g - mean
		variance += d * d * weights[i] / total
	}

	theta = Clamp(mean)
	standardError = math.Max(e.seFloor, math.Sqrt(variance))
	return theta, standardError
}
