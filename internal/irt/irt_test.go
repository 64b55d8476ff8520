package irt

import (
	"math"
	"math/rand"
	"testing"
)

func TestPKeyed_HalfAtDifficulty(t *testing.T) {
	for _, b := range []float64{-2, -0.5, 0, 1.3, 3} {
		p := PKeyed(b, 1.7, b, 0)
		if math.Abs(p-0.5) > 1e-12 {
			t.Errorf("PKeyed(b=%v at theta=b) = %v, want 0.5", b, p)
		}
	}
}

func TestPKeyed_StrictlyIncreasingInTheta(t *testing.T) {
	prev := -1.0
	for theta := -3.0; theta <= 3.0; theta += 0.1 {
		p := PKeyed(theta, 1.2, 0.4, 0)
		if p <= prev {
			t.Fatalf("PKeyed not strictly increasing at theta=%v: %v <= %v", theta, p, prev)
		}
		prev = p
	}
}

func TestPKeyed_GuessingFloor(t *testing.T) {
	p := PKeyed(-3, 2.0, 3, 0.25)
	if p < 0.25 {
		t.Errorf("3PL probability %v below guessing floor 0.25", p)
	}
	if p > 0.26 {
		t.Errorf("3PL probability %v should be near the floor at low theta", p)
	}
}

func TestPKeyed_MissingParamsReturnHalf(t *testing.T) {
	if p := PKeyed(1.0, math.NaN(), 0, 0); p != 0.5 {
		t.Errorf("NaN discrimination: p = %v, want 0.5", p)
	}
	if p := PKeyed(1.0, 1.5, math.NaN(), 0); p != 0.5 {
		t.Errorf("NaN difficulty: p = %v, want 0.5", p)
	}
}

func responsesNear(theta float64, n int, rng *rand.Rand) []Response {
	out := make([]Response, 0, n)
	for i := 0; i < n; i++ {
		b := -2.0 + 4.0*rng.Float64()
		a := 0.8 + rng.Float64()
		p := PKeyed(theta, a, b, 0)
		out = append(out, Response{A: a, B: b, Keyed: rng.Float64() < p})
	}
	return out
}

func TestEstimate_OrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	e := NewEstimator(DefaultEstimatorConfig())
	responses := responsesNear(1.0, 8, rng)

	theta1, se1 := e.Estimate(responses)

	shuffled := make([]Response, len(responses))
	copy(shuffled, responses)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	theta2, se2 := e.Estimate(shuffled)

	// The likelihood product commutes, but floating-point multiplication
	// does not, so allow a few ulps of drift.
	if math.Abs(theta1-theta2) > 1e-12 || math.Abs(se1-se2) > 1e-12 {
		t.Errorf("estimate depends on response order: (%v, %v) vs (%v, %v)", theta1, se1, theta2, se2)
	}
}

func TestEstimate_TracksKeyedResponses(t *testing.T) {
	e := NewEstimator(DefaultEstimatorConfig())

	allKeyed := []Response{
		{A: 1.5, B: -1, Keyed: true},
		{A: 1.5, B: 0, Keyed: true},
		{A: 1.5, B: 1, Keyed: true},
	}
	thetaHigh, _ := e.Estimate(allKeyed)
	if thetaHigh <= 0.5 {
		t.Errorf("all-keyed theta = %v, want well above 0", thetaHigh)
	}

	noneKeyed := make([]Response, len(allKeyed))
	copy(noneKeyed, allKeyed)
	for i := range noneKeyed {
		noneKeyed[i].Keyed = false
	}
	thetaLow, _ := e.Estimate(noneKeyed)
	if thetaLow >= -0.5 {
		t.Errorf("none-keyed theta = %v, want well below 0", thetaLow)
	}
}

func TestEstimate_SEShrinksWithEvidence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	e := NewEstimator(DefaultEstimatorConfig())
	responses := responsesNear(0.5, 12, rng)

	_, seFew := e.Estimate(responses[:2])
	_, seMany := e.Estimate(responses)
	if seMany >= seFew {
		t.Errorf("SE with 12 responses (%v) not below SE with 2 (%v)", seMany, seFew)
	}
}

func TestEstimate_SEFloor(t *testing.T) {
	e := NewEstimator(EstimatorConfig{GridPoints: 121, SEFloor: 0.1})

	// Many highly discriminating items pin the posterior very tightly;
	// the floor must still hold.
	var responses []Response
	for i := 0; i < 60; i++ {
		responses = append(responses, Response{A: 3.0, B: 0, Keyed: i%2 == 0})
	}
	_, se := e.Estimate(responses)
	if se < 0.1 {
		t.Errorf("SE %v below configured floor 0.1", se)
	}
}

func TestEstimate_EmptyHistoryReturnsPrior(t *testing.T) {
	e := NewEstimator(DefaultEstimatorConfig())
	theta, se := e.Estimate(nil)
	if math.Abs(theta) > 1e-9 {
		t.Errorf("prior theta = %v, want 0", theta)
	}
	if se < 0.9 || se > 1.1 {
		t.Errorf("prior SE = %v, want near 1 (truncated normal spread)", se)
	}
}

func TestEstimate_ClampedToRange(t *testing.T) {
	e := NewEstimator(DefaultEstimatorConfig())
	var responses []Response
	for i := 0; i < 30; i++ {
		responses = append(responses, Response{A: 2.5, B: 2.8, Keyed: true})
	}
	theta, _ := e.Estimate(responses)
	if theta < ThetaMin || theta > ThetaMax {
		t.Errorf("theta %v outside [%v, %v]", theta, ThetaMin, ThetaMax)
	}
}

func TestConfidence_Mapping(t *testing.T) {
	tests := []struct {
		se   float64
		want float64
	}{
		{0, 1},
		{0.75, 0.5},
		{1.5, 0},
		{2.5, 0},
	}
	for _, tt := range tests {
		got := Confidence(tt.se, 1.5)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Confidence(%v) = %v, want %v", tt.se, got, tt.want)
		}
	}
}

func TestConfidence_MonotoneNonIncreasing(t *testing.T) {
	prev := 2.0
	for se := 0.0; se <= 2.0; se += 0.05 {
		c := Confidence(se, 1.5)
		if c > prev {
			t.Fatalf("confidence increased at se=%v: %v > %v", se, c, prev)
		}
		prev = c
	}
}
