package engine

import (
	"errors"

	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/itembank"
)

// Failure kinds returned by the engine. All are value-level results meant
// to be matched with errors.Is and translated by the calling layer into a
// transport response; none of them indicates engine corruption.
var (
	// ErrNotStarted: no state exists for the (user, session, dimension).
	ErrNotStarted = errors.New("dimension assessment has not been started")

	// ErrAlreadyCompleted: the dimension is finished; it must be
	// explicitly reset before accepting further answers.
	ErrAlreadyCompleted = errors.New("dimension assessment is already completed")

	// ErrUnknownDimension: the dimension ID is not in the item bank.
	ErrUnknownDimension = errors.New("unknown dimension")

	// ErrUnknownItem: the item ID cannot be resolved in the bank, or it
	// does not belong to the addressed dimension.
	ErrUnknownItem = errors.New("unknown item")

	// ErrUnexpectedItem: the submission targets an item other than the
	// one currently awaiting an answer. Enforces strict one-at-a-time
	// sequencing; duplicate and out-of-order submissions land here.
	ErrUnexpectedItem = errors.New("submitted item is not the current question")

	// ErrInvalidAnswer: the raw answer cannot be scored for its item.
	// Aliased from the dichotomizer so errors.Is matches across layers.
	ErrInvalidAnswer = itembank.ErrInvalidAnswer

	// ErrNoEligibleItems is an internal signal: the dimension's item pool
	// is exhausted. Callers normally never see it; the engine converts it
	// into an item_exhausted completion.
	ErrNoEligibleItems = errors.New("no eligible items remain")

	// ErrAnalysisUnavailable: the free-text analyzer failed or is not
	// configured. Recoverable; closed-item evidence remains valid.
	ErrAnalysisUnavailable = errors.New("free-text analysis unavailable")
)
