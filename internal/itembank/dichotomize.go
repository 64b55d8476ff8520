package itembank

import (
	"errors"
	"fmt"
)

// ErrInvalidAnswer marks an answer that cannot be scored for its item:
// a Likert value outside 1-5, an unknown option code, or an answer kind
// that does not match the item type. Callers reject the submission; the
// dichotomizer never silently defaults to a keyed value.
var ErrInvalidAnswer = errors.New("invalid answer")

// Answer is a raw submitted answer. Exactly one field is meaningful for a
// given item type: Scale for likert, Code for forced_choice and scenario,
// Text for open items (which are not dichotomized).
type Answer struct {
	Scale int
	Code  string
	Text  string
}

// Dichotomize converts a raw answer into a binary keyed (1) / non-keyed (0)
// response, honoring the item's reverse-scoring flag.
//
// Likert uses the midpoint-keyed convention: on a non-reversed item, 3-5
// counts as keyed; on a reversed item, 1-3 counts as keyed. Forced-choice
// and scenario answers key off the selected option's score. Open and
// consistency-check items are not dichotomizable through this path.
func Dichotomize(item *Item, ans Answer) (int, error) {
	switch item.Type {
	case TypeLikert:
		if ans.Scale < 1 || ans.Scale > 5 {
			return 0, fmt.Errorf("%w: likert value %d out of range 1-5", ErrInvalidAnswer, ans.Scale)
		}
		if item.Reversed {
			if ans.Scale <= 3 {
				return 1, nil
			}
			return 0, nil
		}
		if ans.Scale >= 3 {
			return 1, nil
		}
		return 0, nil

	case TypeForcedChoice, TypeScenario:
		opt := item.Option(ans.Code)
		if opt == nil {
			return 0, fmt.Errorf("%w: option %q not defined for item %s", ErrInvalidAnswer, ans.Code, item.ID)
		}
		keyed := 1
		if item.Reversed {
			keyed = -1
		}
		if opt.Keyed == keyed {
			return 1, nil
		}
		return 0, nil

	default:
		return 0, fmt.Errorf("%w: item type %q is not dichotomizable", ErrInvalidAnswer, item.Type)
	}
}
