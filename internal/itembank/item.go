package itembank

// ItemType is the closed set of question types in the bank.
type ItemType string

const (
	TypeLikert           ItemType = "likert"
	TypeForcedChoice     ItemType = "forced_choice"
	TypeScenario         ItemType = "scenario"
	TypeOpen             ItemType = "open"
	TypeConsistencyCheck ItemType = "consistency_check"
)

// AllItemTypes returns every item type, in display order.
func AllItemTypes() []ItemType {
	return []ItemType{
		TypeLikert,
		TypeForcedChoice,
		TypeScenario,
		TypeOpen,
		TypeConsistencyCheck,
	}
}

// Closed reports whether the type produces a dichotomizable answer.
// Open and consistency-check items are handled outside the scoring path.
func (t ItemType) Closed() bool {
	switch t {
	case TypeLikert, TypeForcedChoice, TypeScenario:
		return true
	}
	return false
}

// AnswerOption is one selectable answer for a forced-choice or scenario item.
// Keyed is the trait score of the option: 1 keyed, -1 anti-keyed, 0 neutral.
type AnswerOption struct {
	Code  string
	Text  string
	Keyed int
}

// Item is one question in the bank. Items are immutable reference data;
// the engine never mutates them.
type Item struct {
	ID          string
	DimensionID string
	Type        ItemType
	Text        string

	// Discrimination (a) and Difficulty (b) are the 2PL parameters.
	// Non-parameterized items (open, consistency_check) leave them nil.
	Discrimination *float64
	Difficulty     *float64

	// Guessing is the 3PL lower asymptote (c). Zero for most items.
	Guessing float64

	// Reversed flags reverse-scored items: agreeing indicates the low
	// pole of the trait.
	Reversed bool

	// Anchor marks a preferred starting item for its dimension.
	Anchor bool

	Options []AnswerOption
}

// IRTParams returns the item's (a, b, c) parameters. ok is false when the
// item carries no IRT calibration and must be excluded from selection.
func (it *Item) IRTParams() (a, b, c float64, ok bool) {
	if it.Discrimination == nil || it.Difficulty == nil {
		return 0, 0, 0, false
	}
	return *it.Discrimination, *it.Difficulty, it.Guessing, true
}

// Option returns the answer option with the given code, or nil.
func (it *Item) Option(code string) *AnswerOption {
	for i := range it.Options {
		if it.Options[i].Code == code {
			return &it.Options[i]
		}
	}
	return nil
}

// Segment is one interpretation band of a dimension's theta scale.
// Bands are ordered by Level and cover [ThetaMin, ThetaMax).
type Segment struct {
	Level    int
	NameEn   string
	NameRu   string
	ThetaMin float64
	ThetaMax float64
}

// Dimension is one trait scale the assessment measures.
type Dimension struct {
	ID       string
	NameEn   string
	NameRu   string
	Segments []Segment
}
