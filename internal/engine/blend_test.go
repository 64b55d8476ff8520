package engine

import (
	"math"
	"testing"
)

func TestBlendExternal_AdoptsDirectlyWithNoEvidence(t *testing.T) {
	st := newState(testKey())
	blendExternal(st, 2.0, 0.9, DefaultConfig())

	if st.Theta != 2.0 {
		t.Errorf("theta = %f, want 2.0", st.Theta)
	}
	if st.Confidence != 0.9 {
		t.Errorf("confidence = %f, want 0.9", st.Confidence)
	}
	if st.LLMAdjustments != 1 {
		t.Errorf("adjustments = %d, want 1", st.LLMAdjustments)
	}
}

func TestBlendExternal_WeightedAverage(t *testing.T) {
	cfg := DefaultConfig()
	st := newState(testKey())
	st.Theta = 0.0
	st.Confidence = 0.5
	st.Responses = []ResponseRecord{
		{ItemID: "x1", Keyed: true, A: 1.0, B: 0.0},
		{ItemID: "x2", Keyed: true, A: 1.0, B: 0.5},
	}

	blendExternal(st, 2.0, 0.8, cfg)

	// existing weight 2, external weight 2.5 * 0.8 * 0.85^0 = 2.0
	wantTheta := (0.0*2 + 2.0*2.0) / 4.0
	if math.Abs(st.Theta-wantTheta) > 1e-9 {
		t.Errorf("theta = %f, want %f", st.Theta, wantTheta)
	}
	wantConf := (0.5*2 + 0.8*2.0) / 4.0
	if math.Abs(st.Confidence-wantConf) > 1e-9 {
		t.Errorf("confidence = %f, want %f", st.Confidence, wantConf)
	}
	if st.LLMAdjustments != 1 {
		t.Errorf("adjustments = %d, want 1", st.LLMAdjustments)
	}
}

func TestBlendExternal_RepeatedBlendsLoseInfluence(t *testing.T) {
	cfg := DefaultConfig()
	st := newState(testKey())
	st.Responses = []ResponseRecord{{ItemID: "x1", Keyed: true, A: 1.0, B: 0.0}}
	st.Theta = 0

	blendExternal(st, 3.0, 1.0, cfg)
	firstShift := st.Theta

	blendExternal(st, 3.0, 1.0, cfg)
	secondShift := st.Theta - firstShift

	if secondShift >= firstShift {
		t.Errorf("second blend shifted %f, want less than first shift %f", secondShift, firstShift)
	}
	if st.LLMAdjustments != 2 {
		t.Errorf("adjustments = %d, want 2", st.LLMAdjustments)
	}
}

func TestBlendExternal_ClampsInputs(t *testing.T) {
	st := newState(testKey())
	blendExternal(st, 9.0, 1.7, DefaultConfig())

	if st.Theta != 3.0 {
		t.Errorf("theta = %f, want clamped to 3.0", st.Theta)
	}
	if st.Confidence != 1.0 {
		t.Errorf("confidence = %f, want clamped to 1.0", st.Confidence)
	}
}

func TestBlendExternal_DoesNotTouchResponseHistory(t *testing.T) {
	st := newState(testKey())
	st.Responses = []ResponseRecord{{ItemID: "x1", Keyed: true, A: 1.0, B: 0.0}}
	st.AnsweredItemIDs = []string{"x1"}

	blendExternal(st, 1.0, 0.5, DefaultConfig())

	if len(st.Responses) != 1 || len(st.AnsweredItemIDs) != 1 {
		t.Error("blend must not alter the closed response history")
	}
}
