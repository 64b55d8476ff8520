package itembank

import (
	"strings"
	"testing"
)

func TestDefault_SeedIsValid(t *testing.T) {
	b := Default()
	if len(b.Dimensions()) != 5 {
		t.Fatalf("Dimensions() = %d, want 5", len(b.Dimensions()))
	}
	for _, d := range b.Dimensions() {
		if len(b.AnchorItems(d.ID)) == 0 {
			t.Errorf("dimension %s has no anchor items", d.ID)
		}
		if len(b.EligibleItems(d.ID, nil)) == 0 {
			t.Errorf("dimension %s has no eligible items", d.ID)
		}
	}
}

func TestEligibleItems_ExcludesNonClosedAndAnswered(t *testing.T) {
	b := Default()

	all := b.EligibleItems("openness", nil)
	for _, it := range all {
		if !it.Type.Closed() {
			t.Errorf("eligible item %s has non-closed type %s", it.ID, it.Type)
		}
		if _, _, _, ok := it.IRTParams(); !ok {
			t.Errorf("eligible item %s has no IRT parameters", it.ID)
		}
	}

	exclude := map[string]bool{all[0].ID: true}
	remaining := b.EligibleItems("openness", exclude)
	if len(remaining) != len(all)-1 {
		t.Fatalf("after exclusion got %d items, want %d", len(remaining), len(all)-1)
	}
	for _, it := range remaining {
		if it.ID == all[0].ID {
			t.Errorf("excluded item %s still eligible", it.ID)
		}
	}
}

func TestAnchorItems_OrderedByDiscrimination(t *testing.T) {
	d := Dimension{
		ID: "grit", NameEn: "Grit", NameRu: "Упорство",
		Segments: []Segment{{Level: 1, NameEn: "Low", NameRu: "Низкий", ThetaMin: -3, ThetaMax: 3}},
	}
	items := []Item{
		likert("g-1", "grit", 1.0, 0, false, "one"),
		likert("g-2", "grit", 2.0, 0, false, "two"),
		likert("g-3", "grit", 1.5, 0, false, "three"),
	}
	for i := range items {
		items[i].Anchor = true
	}

	b, err := NewMemoryBank([]Dimension{d}, items)
	if err != nil {
		t.Fatalf("NewMemoryBank: %v", err)
	}

	anchors := b.AnchorItems("grit")
	if len(anchors) != 3 {
		t.Fatalf("got %d anchors, want 3", len(anchors))
	}
	wantOrder := []string{"g-2", "g-3", "g-1"}
	for i, want := range wantOrder {
		if anchors[i].ID != want {
			t.Errorf("anchors[%d] = %s, want %s", i, anchors[i].ID, want)
		}
	}
}

func TestValidate_Failures(t *testing.T) {
	dim := func() Dimension {
		return Dimension{
			ID: "d", NameEn: "D", NameRu: "Д",
			Segments: []Segment{{Level: 1, NameEn: "All", NameRu: "Все", ThetaMin: -3, ThetaMax: 3}},
		}
	}

	tests := []struct {
		name    string
		dims    []Dimension
		items   []Item
		wantErr string
	}{
		{
			name: "duplicate item id",
			dims: []Dimension{dim()},
			items: []Item{
				likert("x", "d", 1, 0, false, "a"),
				likert("x", "d", 1, 0, false, "b"),
			},
			wantErr: "duplicate item ID",
		},
		{
			name:    "unknown dimension",
			dims:    []Dimension{dim()},
			items:   []Item{likert("x", "other", 1, 0, false, "a")},
			wantErr: "unknown dimension",
		},
		{
			name:    "non-positive discrimination",
			dims:    []Dimension{dim()},
			items:   []Item{likert("x", "d", 0, 0, false, "a")},
			wantErr: "discrimination",
		},
		{
			name: "no eligible items",
			dims: []Dimension{dim()},
			items: []Item{
				{ID: "x", DimensionID: "d", Type: TypeOpen, Text: "tell me"},
			},
			wantErr: "no eligible items",
		},
		{
			name: "segment gap",
			dims: []Dimension{{
				ID: "d", NameEn: "D", NameRu: "Д",
				Segments: []Segment{
					{Level: 1, NameEn: "Lo", NameRu: "Н", ThetaMin: -3, ThetaMax: 0},
					{Level: 2, NameEn: "Hi", NameRu: "В", ThetaMin: 1, ThetaMax: 3},
				},
			}},
			items:   []Item{likert("x", "d", 1, 0, false, "a")},
			wantErr: "gap before segment",
		},
		{
			name: "duplicate option code",
			dims: []Dimension{dim()},
			items: []Item{{
				ID: "x", DimensionID: "d", Type: TypeForcedChoice, Text: "pick",
				Discrimination: fp(1), Difficulty: fp(0),
				Options: []AnswerOption{
					{Code: "a", Keyed: 1},
					{Code: "a", Keyed: -1},
				},
			}},
			wantErr: "duplicate option code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMemoryBank(tt.dims, tt.items)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}
