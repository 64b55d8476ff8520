package engine

import (
	"testing"

	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/itembank"
)

func likertPool(params ...[2]float64) []*itembank.Item {
	items := make([]*itembank.Item, len(params))
	for i, p := range params {
		a, b := p[0], p[1]
		items[i] = &itembank.Item{
			ID:             string(rune('a' + i)),
			DimensionID:    "d",
			Type:           itembank.TypeLikert,
			Discrimination: fv(a),
			Difficulty:     fv(b),
		}
	}
	return items
}

func TestSelectNext_ClosestDifficulty(t *testing.T) {
	pool := likertPool([2]float64{1.0, -1.5}, [2]float64{1.0, 0.2}, [2]float64{1.0, 1.8})

	got := selectNext(0.0, pool)
	if got == nil || got.ID != "b" {
		t.Fatalf("selected %v, want item b (closest difficulty)", got)
	}

	got = selectNext(2.5, pool)
	if got == nil || got.ID != "c" {
		t.Fatalf("selected %v, want item c for high theta", got)
	}
}

func TestSelectNext_TieBreaksOnDiscrimination(t *testing.T) {
	pool := likertPool([2]float64{0.8, 1.0}, [2]float64{1.6, -1.0})

	got := selectNext(0.0, pool)
	if got == nil || got.ID != "b" {
		t.Fatalf("selected %v, want the higher-discrimination item b", got)
	}
}

func TestSelectNext_TieBreaksOnID(t *testing.T) {
	pool := likertPool([2]float64{1.0, 0.5}, [2]float64{1.0, 0.5})

	got := selectNext(0.0, pool)
	if got == nil || got.ID != "a" {
		t.Fatalf("selected %v, want deterministic lexical winner a", got)
	}
}

func TestSelectNext_EmptyPool(t *testing.T) {
	if got := selectNext(0.0, nil); got != nil {
		t.Errorf("selected %v from empty pool, want nil", got)
	}
}

func TestSelectNext_SkipsUncalibratedItems(t *testing.T) {
	pool := []*itembank.Item{
		{ID: "open-1", DimensionID: "d", Type: itembank.TypeOpen},
	}
	if got := selectNext(0.0, pool); got != nil {
		t.Errorf("selected %v, want nil when no item carries parameters", got)
	}
}

func TestResolveSegment_ContainingBand(t *testing.T) {
	segs := []itembank.Segment{
		{Level: 1, ThetaMin: -2, ThetaMax: 0},
		{Level: 2, ThetaMin: 0, ThetaMax: 1.5},
		{Level: 3, ThetaMin: 1.5, ThetaMax: 3},
	}

	if got := resolveSegment(segs, 0.7); got == nil || got.Level != 2 {
		t.Errorf("theta 0.7 resolved to %v, want level 2", got)
	}
	if got := resolveSegment(segs, 0.0); got == nil || got.Level != 2 {
		t.Errorf("theta 0.0 resolved to %v, want level 2 (half-open bands)", got)
	}
}

func TestResolveSegment_ClampsBelowLowestBand(t *testing.T) {
	segs := []itembank.Segment{
		{Level: 1, ThetaMin: -2, ThetaMax: 0},
		{Level: 2, ThetaMin: 0, ThetaMax: 3},
	}

	if got := resolveSegment(segs, -3.0); got == nil || got.Level != 1 {
		t.Errorf("theta -3.0 resolved to %v, want clamp to level 1", got)
	}
}

func TestResolveSegment_ClampsAboveHighestBand(t *testing.T) {
	segs := []itembank.Segment{
		{Level: 1, ThetaMin: -2, ThetaMax: 0},
		{Level: 2, ThetaMin: 0, ThetaMax: 3},
	}

	if got := resolveSegment(segs, 3.0); got == nil || got.Level != 2 {
		t.Errorf("theta 3.0 resolved to %v, want clamp to level 2", got)
	}
}

func TestResolveSegment_Empty(t *testing.T) {
	if got := resolveSegment(nil, 0); got != nil {
		t.Errorf("resolved %v from empty table, want nil", got)
	}
}
