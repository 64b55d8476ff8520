package engine

import (
	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/irt"
	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/itembank"
	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/store"
)

// Key addresses one dimension's scoring state within one user's session.
type Key struct {
	UserID      string
	SessionID   string
	DimensionID string
}

func (k Key) String() string {
	return k.UserID + "/" + k.SessionID + "/" + k.DimensionID
}

// CompletionReason records why a dimension stopped.
type CompletionReason string

const (
	// ReasonMaxQuestions: the question cap was hit.
	ReasonMaxQuestions CompletionReason = "max_questions"
	// ReasonTargetConfidence: enough evidence accumulated early.
	ReasonTargetConfidence CompletionReason = "target_confidence"
	// ReasonItemExhausted: no more suitable questions remain.
	ReasonItemExhausted CompletionReason = "item_exhausted"
)

// ResponseRecord is one dichotomized answer with the administering item's
// parameters frozen at answer time, so re-estimation never depends on
// later bank edits.
type ResponseRecord struct {
	ItemID string
	Keyed  bool
	A      float64
	B      float64
	C      float64
}

// DimensionState is the engine's in-memory scoring state for one key.
// It is mutated only while the key's lock is held and persisted as a
// whole on every successful operation.
type DimensionState struct {
	Key Key

	Theta         float64
	StandardError float64
	Confidence    float64

	AnsweredItemIDs []string
	Responses       []ResponseRecord

	CurrentItemID    string
	Completed        bool
	CompletionReason CompletionReason
	Segment          *itembank.Segment

	// LLMAdjustments counts external-signal blends applied so far; it
	// dampens the weight of each further blend.
	LLMAdjustments int
}

// newState returns the initial state for a key: theta at the prior mean,
// standard error at the prior spread, confidence at the midpoint.
func newState(key Key) *DimensionState {
	return &DimensionState{
		Key:           key,
		Theta:         0,
		StandardError: 1.0,
		Confidence:    0.5,
	}
}

// answered reports whether the item was already administered.
func (st *DimensionState) answered(itemID string) bool {
	for _, id := range st.AnsweredItemIDs {
		if id == itemID {
			return true
		}
	}
	return false
}

// answeredSet returns the answered IDs as a membership set for the bank.
func (st *DimensionState) answeredSet() map[string]bool {
	set := make(map[string]bool, len(st.AnsweredItemIDs))
	for _, id := range st.AnsweredItemIDs {
		set[id] = true
	}
	return set
}

// irtResponses converts the history into the estimator's input form.
func (st *DimensionState) irtResponses() []irt.Response {
	out := make([]irt.Response, len(st.Responses))
	for i, r := range st.Responses {
		out[i] = irt.Response{A: r.A, B: r.B, C: r.C, Keyed: r.Keyed}
	}
	return out
}

// toData converts the state to its persistent form.
func (st *DimensionState) toData() *store.DimensionStateData {
	data := &store.DimensionStateData{
		UserID:           st.Key.UserID,
		SessionID:        st.Key.SessionID,
		DimensionID:      st.Key.DimensionID,
		Theta:            st.Theta,
		StandardError:    st.StandardError,
		Confidence:       st.Confidence,
		AnsweredItemIDs:  append([]string(nil), st.AnsweredItemIDs...),
		CurrentItemID:    st.CurrentItemID,
		Completed:        st.Completed,
		CompletionReason: string(st.CompletionReason),
		LLMAdjustments:   st.LLMAdjustments,
	}
	data.Responses = make([]store.ResponseData, len(st.Responses))
	for i, r := range st.Responses {
		keyed := 0
		if r.Keyed {
			keyed = 1
		}
		data.Responses[i] = store.ResponseData{ItemID: r.ItemID, Keyed: keyed, A: r.A, B: r.B, C: r.C}
	}
	if st.Segment != nil {
		level := st.Segment.Level
		data.SegmentLevel = &level
	}
	return data
}

// stateFromData rebuilds the in-memory state, resolving the terminal
// segment against the bank's current band table.
func stateFromData(data *store.DimensionStateData, segments []itembank.Segment) *DimensionState {
	st := &DimensionState{
		Key: Key{
			UserID:      data.UserID,
			SessionID:   data.SessionID,
			DimensionID: data.DimensionID,
		},
		Theta:            data.Theta,
		StandardError:    data.StandardError,
		Confidence:       data.Confidence,
		AnsweredItemIDs:  append([]string(nil), data.AnsweredItemIDs...),
		CurrentItemID:    data.CurrentItemID,
		Completed:        data.Completed,
		CompletionReason: CompletionReason(data.CompletionReason),
		LLMAdjustments:   data.LLMAdjustments,
	}
	st.Responses = make([]ResponseRecord, len(data.Responses))
	for i, r := range data.Responses {
		st.Responses[i] = ResponseRecord{ItemID: r.ItemID, Keyed: r.Keyed == 1, A: r.A, B: r.B, C: r.C}
	}
	if data.SegmentLevel != nil {
		for i := range segments {
			if segments[i].Level == *data.SegmentLevel {
				seg := segments[i]
				st.Segment = &seg
				break
			}
		}
	}
	return st
}
