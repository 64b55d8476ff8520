package itembank

import (
	"fmt"
	"math"
)

// validate checks the structural invariants of the bank: unique IDs,
// positive discriminations, in-range difficulties, option codes unique
// within their item, and ordered, gap-free segment bands per dimension.
func (b *MemoryBank) validate() error {
	if len(b.dimensions) == 0 {
		return fmt.Errorf("no dimensions defined")
	}

	seenDim := make(map[string]bool, len(b.dimensions))
	for i := range b.dimensions {
		d := &b.dimensions[i]
		if d.ID == "" {
			return fmt.Errorf("dimension %d has empty ID", i)
		}
		if seenDim[d.ID] {
			return fmt.Errorf("duplicate dimension ID %q", d.ID)
		}
		seenDim[d.ID] = true
		if err := validateSegments(d); err != nil {
			return err
		}
	}

	seenItem := make(map[string]bool, len(b.items))
	for i := range b.items {
		it := &b.items[i]
		if it.ID == "" {
			return fmt.Errorf("item %d has empty ID", i)
		}
		if seenItem[it.ID] {
			return fmt.Errorf("duplicate item ID %q", it.ID)
		}
		seenItem[it.ID] = true

		if !seenDim[it.DimensionID] {
			return fmt.Errorf("item %s references unknown dimension %q", it.ID, it.DimensionID)
		}
		if err := validateItem(it); err != nil {
			return err
		}
	}

	// Every dimension needs at least one administrable item.
	for id := range seenDim {
		if len(b.EligibleItems(id, nil)) == 0 {
			return fmt.Errorf("dimension %q has no eligible items", id)
		}
	}
	return nil
}

func validateItem(it *Item) error {
	a, _, c, ok := it.IRTParams()
	if it.Type.Closed() {
		if !ok {
			return fmt.Errorf("item %s: closed-type item missing IRT parameters", it.ID)
		}
		if a <= 0 || math.IsNaN(a) {
			return fmt.Errorf("item %s: discrimination must be > 0, got %v", it.ID, a)
		}
		if c < 0 || c >= 1 {
			return fmt.Errorf("item %s: guessing must be in [0,1), got %v", it.ID, c)
		}
	}

	switch it.Type {
	case TypeForcedChoice, TypeScenario:
		if len(it.Options) < 2 {
			return fmt.Errorf("item %s: %s item needs at least 2 options", it.ID, it.Type)
		}
		seen := make(map[string]bool, len(it.Options))
		hasKeyed := false
		for _, opt := range it.Options {
			if opt.Code == "" {
				return fmt.Errorf("item %s: option with empty code", it.ID)
			}
			if seen[opt.Code] {
				return fmt.Errorf("item %s: duplicate option code %q", it.ID, opt.Code)
			}
			seen[opt.Code] = true
			if opt.Keyed < -1 || opt.Keyed > 1 {
				return fmt.Errorf("item %s option %s: keyed score must be -1, 0 or 1", it.ID, opt.Code)
			}
			if opt.Keyed != 0 {
				hasKeyed = true
			}
		}
		if !hasKeyed {
			return fmt.Errorf("item %s: no keyed option", it.ID)
		}
	case TypeLikert:
		if len(it.Options) != 0 {
			return fmt.Errorf("item %s: likert items use the 1-5 scale, not options", it.ID)
		}
	}
	return nil
}

func validateSegments(d *Dimension) error {
	if len(d.Segments) == 0 {
		return fmt.Errorf("dimension %q has no segments", d.ID)
	}
	prev := math.Inf(-1)
	for i, seg := range d.Segments {
		if i > 0 && seg.Level <= d.Segments[i-1].Level {
			return fmt.Errorf("dimension %q: segment levels not ascending at index %d", d.ID, i)
		}
		if seg.ThetaMax <= seg.ThetaMin {
			return fmt.Errorf("dimension %q segment %d: empty theta range", d.ID, seg.Level)
		}
		if i > 0 && seg.ThetaMin != prev {
			return fmt.Errorf("dimension %q: gap before segment %d", d.ID, seg.Level)
		}
		prev = seg.ThetaMax
	}
	return nil
}
