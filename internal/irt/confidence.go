package irt

// DefaultMaxExpectedSE is the standard error treated as "no information":
// roughly the spread of the truncated standard-normal prior, before any
// item has been answered. The exact calibration against real item-bank
// statistics is an open tuning point; it is exposed through the engine
// configuration rather than hardcoded at call sites.
const DefaultMaxExpectedSE = 1.5

// Confidence maps a standard error to a score in [0, 1], monotone
// non-increasing in the error: 1 - se/maxExpectedSE, clamped. A continuous
// mapping avoids the discontinuities of threshold tables.
func Confidence(standardError, maxExpectedSE float64) float64 {
	if maxExpectedSE <= 0 {
		maxExpectedSE = DefaultMaxExpectedSE
	}
	c := 1 - standardError/maxExpectedSE
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
