package store

import (
	"context"
	"fmt"

	"github.com/maxzemtsov/TraitTune-v1-sub000/ent"
	"github.com/maxzemtsov/TraitTune-v1-sub000/ent/llmrequestevent"
)

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) LLMUsage(ctx context.Context) ([]LLMModelUsage, error) {
	events, err := r.client.LLMRequestEvent.Query().
		Order(ent.Asc(llmrequestevent.FieldModel)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	byModel := make(map[string]*LLMModelUsage)
	var order []string
	for _, ev := range events {
		usage := byModel[ev.Model]
		if usage == nil {
			usage = &LLMModelUsage{Model: ev.Model}
			byModel[ev.Model] = usage
			order = append(order, ev.Model)
		}
		usage.Requests++
		if !ev.Success {
			usage.Failures++
		}
		usage.InputTokens += ev.InputTokens
		usage.OutputTokens += ev.OutputTokens
	}

	out := make([]LLMModelUsage, 0, len(order))
	for _, model := range order {
		out = append(out, *byModel[model])
	}
	return out, nil
}
