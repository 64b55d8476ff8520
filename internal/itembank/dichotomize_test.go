package itembank

import (
	"errors"
	"testing"
)

func likertItem(reversed bool) *Item {
	return &Item{
		ID: "t-1", DimensionID: "extraversion", Type: TypeLikert,
		Discrimination: fp(1.5), Difficulty: fp(0), Reversed: reversed,
	}
}

func TestDichotomize_Likert(t *testing.T) {
	tests := []struct {
		name     string
		reversed bool
		scale    int
		want     int
	}{
		{"agree keyed", false, 5, 1},
		{"disagree non-keyed", false, 1, 0},
		{"midpoint keyed", false, 3, 1},
		{"boundary 2 non-keyed", false, 2, 0},
		{"reversed agree non-keyed", true, 5, 0},
		{"reversed disagree keyed", true, 1, 1},
		{"reversed midpoint keyed", true, 3, 1},
		{"reversed boundary 4 non-keyed", true, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dichotomize(likertItem(tt.reversed), Answer{Scale: tt.scale})
			if err != nil {
				t.Fatalf("Dichotomize error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Dichotomize(scale=%d, reversed=%v) = %d, want %d", tt.scale, tt.reversed, got, tt.want)
			}
		})
	}
}

func TestDichotomize_LikertOutOfRange(t *testing.T) {
	for _, scale := range []int{0, 6, -1, 100} {
		_, err := Dichotomize(likertItem(false), Answer{Scale: scale})
		if !errors.Is(err, ErrInvalidAnswer) {
			t.Errorf("scale %d: err = %v, want ErrInvalidAnswer", scale, err)
		}
	}
}

func TestDichotomize_ForcedChoice(t *testing.T) {
	item := &Item{
		ID: "t-fc", DimensionID: "extraversion", Type: TypeForcedChoice,
		Discrimination: fp(1.5), Difficulty: fp(0),
		Options: []AnswerOption{
			{Code: "a", Keyed: 1},
			{Code: "b", Keyed: -1},
			{Code: "c", Keyed: 0},
		},
	}

	tests := []struct {
		code     string
		reversed bool
		want     int
	}{
		{"a", false, 1},
		{"b", false, 0},
		{"c", false, 0},
		{"a", true, 0},
		{"b", true, 1},
		{"c", true, 0}, // neutral maps to 0 in both directions
	}
	for _, tt := range tests {
		item.Reversed = tt.reversed
		got, err := Dichotomize(item, Answer{Code: tt.code})
		if err != nil {
			t.Fatalf("Dichotomize(%q): %v", tt.code, err)
		}
		if got != tt.want {
			t.Errorf("Dichotomize(code=%q, reversed=%v) = %d, want %d", tt.code, tt.reversed, got, tt.want)
		}
	}

	if _, err := Dichotomize(item, Answer{Code: "zzz"}); !errors.Is(err, ErrInvalidAnswer) {
		t.Errorf("unknown code: err = %v, want ErrInvalidAnswer", err)
	}
}

func TestDichotomize_NonClosedTypes(t *testing.T) {
	for _, typ := range []ItemType{TypeOpen, TypeConsistencyCheck} {
		item := &Item{ID: "t-x", DimensionID: "extraversion", Type: typ}
		if _, err := Dichotomize(item, Answer{Text: "whatever"}); !errors.Is(err, ErrInvalidAnswer) {
			t.Errorf("type %s: err = %v, want ErrInvalidAnswer", typ, err)
		}
	}
}
