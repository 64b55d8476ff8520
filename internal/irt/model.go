// Package irt implements the item-response-theory scoring model: the
// 2PL/3PL keyed-response probability, an EAP theta estimator, and the
// standard-error-to-confidence mapping.
package irt

import "math"

// Theta bounds. Estimates are hard-clamped to this range.
const (
	ThetaMin = -3.0
	ThetaMax = 3.0
)

// Response is one scored answer: the administering item's IRT parameters
// and the observed dichotomous outcome.
type Response struct {
	A     float64
	B     float64
	C     float64
	Keyed bool
}

// PKeyed returns the probability of a keyed response at ability theta for
// an item with discrimination a, difficulty b and guessing c:
//
//	p = c + (1-c) / (1 + exp(-a*(theta-b)))
//
// The function is total: NaN parameters (an uncalibrated item) yield 0.5,
// maximally uninformative, rather than an error. Callers are expected to
// keep such items out of selection in the first place.
func PKeyed(theta, a, b, c float64) float64 {
	if math.IsNaN(a) || math.IsNaN(b) {
		return 0.5
	}
	return c + (1-c)/(1+math.Exp(-a*(theta-b)))
}

// Clamp bounds theta to [ThetaMin, ThetaMax].
func Clamp(theta float64) float64 {
	return math.Max(ThetaMin, math.Min(ThetaMax, theta))
}
