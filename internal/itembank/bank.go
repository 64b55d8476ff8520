package itembank

import (
	"fmt"
	"sort"
)

// Bank provides read-only access to items and dimension metadata. The bank
// is reference data: implementations must be safe for concurrent use
// without synchronization.
type Bank interface {
	// Item resolves an item by ID, or nil if unknown.
	Item(id string) *Item

	// Dimension resolves a dimension by ID, or nil if unknown.
	Dimension(id string) *Dimension

	// Dimensions returns all dimensions in display order.
	Dimensions() []Dimension

	// EligibleItems returns the dimension's closed-type items with IRT
	// parameters, excluding the given already-administered IDs.
	EligibleItems(dimensionID string, exclude map[string]bool) []*Item

	// AnchorItems returns the dimension's designated starting items,
	// ordered by descending discrimination.
	AnchorItems(dimensionID string) []*Item

	// Segments returns the dimension's interpretation bands ordered by
	// level ascending, or nil if the dimension is unknown.
	Segments(dimensionID string) []Segment
}

// MemoryBank is an in-memory Bank with precomputed indices.
type MemoryBank struct {
	dimensions []Dimension
	items      []Item
	byID       map[string]*Item
	byDim      map[string][]*Item
	dimByID    map[string]*Dimension
	anchors    map[string][]*Item
}

// NewMemoryBank builds a bank from dimensions and items and validates it.
func NewMemoryBank(dimensions []Dimension, items []Item) (*MemoryBank, error) {
	b := &MemoryBank{
		dimensions: dimensions,
		items:      items,
		byID:       make(map[string]*Item, len(items)),
		byDim:      make(map[string][]*Item),
		dimByID:    make(map[string]*Dimension, len(dimensions)),
		anchors:    make(map[string][]*Item),
	}

	for i := range b.dimensions {
		d := &b.dimensions[i]
		b.dimByID[d.ID] = d
	}

	for i := range b.items {
		it := &b.items[i]
		b.byID[it.ID] = it
		b.byDim[it.DimensionID] = append(b.byDim[it.DimensionID], it)
		if it.Anchor {
			b.anchors[it.DimensionID] = append(b.anchors[it.DimensionID], it)
		}
	}

	// Anchor lists are served highest discrimination first.
	for dim := range b.anchors {
		anchors := b.anchors[dim]
		sort.SliceStable(anchors, func(i, j int) bool {
			ai, _, _, iok := anchors[i].IRTParams()
			aj, _, _, jok := anchors[j].IRTParams()
			if iok != jok {
				return iok
			}
			return ai > aj
		})
	}

	if err := b.validate(); err != nil {
		return nil, fmt.Errorf("item bank validation: %w", err)
	}
	return b, nil
}

// Default returns a bank seeded with the built-in Big Five item pool.
// The seed data is validated at build time, so construction cannot fail.
func Default() *MemoryBank {
	b, err := NewMemoryBank(seedDimensions(), seedItems())
	if err != nil {
		panic(err)
	}
	return b
}

func (b *MemoryBank) Item(id string) *Item {
	return b.byID[id]
}

func (b *MemoryBank) Dimension(id string) *Dimension {
	return b.dimByID[id]
}

func (b *MemoryBank) Dimensions() []Dimension {
	out := make([]Dimension, len(b.dimensions))
	copy(out, b.dimensions)
	return out
}

func (b *MemoryBank) EligibleItems(dimensionID string, exclude map[string]bool) []*Item {
	var out []*Item
	for _, it := range b.byDim[dimensionID] {
		if !it.Type.Closed() {
			continue
		}
		if _, _, _, ok := it.IRTParams(); !ok {
			continue
		}
		if exclude[it.ID] {
			continue
		}
		out = append(out, it)
	}
	return out
}

// DimensionItems returns every item of a dimension, including the open
// and consistency-check types the selector never picks.
func (b *MemoryBank) DimensionItems(dimensionID string) []*Item {
	items := b.byDim[dimensionID]
	out := make([]*Item, len(items))
	copy(out, items)
	return out
}

func (b *MemoryBank) AnchorItems(dimensionID string) []*Item {
	return b.anchors[dimensionID]
}

func (b *MemoryBank) Segments(dimensionID string) []Segment {
	d := b.dimByID[dimensionID]
	if d == nil {
		return nil
	}
	return d.Segments
}
