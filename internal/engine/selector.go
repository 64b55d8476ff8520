package engine

import (
	"math"

	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/itembank"
)

// selectNext picks the next item to administer: the eligible item whose
// difficulty is closest to the current theta, which approximates maximum
// Fisher information under 2PL when discriminations are comparable. Ties
// break toward the higher discrimination, then lexicographically by ID so
// selection is deterministic. Returns nil when the pool is exhausted.
func selectNext(theta float64, eligible []*itembank.Item) *itembank.Item {
	var best *itembank.Item
	var bestDist, bestA float64

	for _, it := range eligible {
		a, b, _, ok := it.IRTParams()
		if !ok {
			continue
		}
		dist := math.Abs(b - theta)

		switch {
		case best == nil,
			dist < bestDist,
			dist == bestDist && a > bestA,
			dist == bestDist && a == bestA && it.ID < best.ID:
			best = it
			bestDist = dist
			bestA = a
		}
	}
	return best
}

// resolveSegment locates the band whose [min, max) range contains theta.
// A theta outside all bands clamps to the nearest extreme band; the result
// is never nil for a non-empty, ordered band table.
func resolveSegment(segments []itembank.Segment, theta float64) *itembank.Segment {
	if len(segments) == 0 {
		return nil
	}
	if theta < segments[0].ThetaMin {
		seg := segments[0]
		return &seg
	}
	for i := range segments {
		if theta >= segments[i].ThetaMin && theta < segments[i].ThetaMax {
			seg := segments[i]
			return &seg
		}
	}
	seg := segments[len(segments)-1]
	return &seg
}
