package store

import (
	"context"
	"fmt"

	"github.com/maxzemtsov/TraitTune-v1-sub000/ent"
	"github.com/maxzemtsov/TraitTune-v1-sub000/ent/answerevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetSessionID(data.SessionID).
		SetDimensionID(data.DimensionID).
		SetItemID(data.ItemID).
		SetItemType(data.ItemType).
		SetRawAnswer(data.RawAnswer).
		SetKeyed(data.Keyed).
		SetTheta(data.Theta).
		SetStandardError(data.StandardError).
		SetConfidence(data.Confidence).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AnswerStats(ctx context.Context) ([]DimensionAnswerStats, error) {
	events, err := r.client.AnswerEvent.Query().
		Order(ent.Asc(answerevent.FieldDimensionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	byDim := make(map[string]*DimensionAnswerStats)
	var order []string
	for _, ev := range events {
		stats := byDim[ev.DimensionID]
		if stats == nil {
			stats = &DimensionAnswerStats{DimensionID: ev.DimensionID}
			byDim[ev.DimensionID] = stats
			order = append(order, ev.DimensionID)
		}
		stats.Total++
		if ev.Keyed == 1 {
			stats.Keyed++
		}
	}

	out := make([]DimensionAnswerStats, 0, len(order))
	for _, dim := range order {
		out = append(out, *byDim[dim])
	}
	return out, nil
}
