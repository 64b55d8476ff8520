package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/maxzemtsov/TraitTune-v1-sub000/ent"
	"github.com/maxzemtsov/TraitTune-v1-sub000/ent/dimensionstate"
)

// stateRepo implements StateRepo using the ent client.
type stateRepo struct {
	client *ent.Client
}

func (r *stateRepo) Load(ctx context.Context, userID, sessionID, dimensionID string) (*DimensionStateData, error) {
	row, err := r.client.DimensionState.Query().
		Where(
			dimensionstate.UserID(userID),
			dimensionstate.SessionID(sessionID),
			dimensionstate.DimensionID(dimensionID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query dimension state: %w", err)
	}
	return entStateToData(row)
}

func (r *stateRepo) Save(ctx context.Context, data *DimensionStateData) error {
	responses, err := responsesToMaps(data.Responses)
	if err != nil {
		return fmt.Errorf("marshal responses: %w", err)
	}

	existing, err := r.client.DimensionState.Query().
		Where(
			dimensionstate.UserID(data.UserID),
			dimensionstate.SessionID(data.SessionID),
			dimensionstate.DimensionID(data.DimensionID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query dimension state: %w", err)
	}

	if existing == nil {
		builder := r.client.DimensionState.Create().
			SetUserID(data.UserID).
			SetSessionID(data.SessionID).
			SetDimensionID(data.DimensionID).
			SetTheta(data.Theta).
			SetStandardError(data.StandardError).
			SetConfidence(data.Confidence).
			SetAnsweredItems(data.AnsweredItemIDs).
			SetResponses(responses).
			SetCurrentItemID(data.CurrentItemID).
			SetCompleted(data.Completed).
			SetCompletionReason(data.CompletionReason).
			SetBlendCount(data.LLMAdjustments)
		if data.SegmentLevel != nil {
			builder = builder.SetSegmentLevel(*data.SegmentLevel)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("create dimension state: %w", err)
		}
		return nil
	}

	builder := existing.Update().
		SetTheta(data.Theta).
		SetStandardError(data.StandardError).
		SetConfidence(data.Confidence).
		SetAnsweredItems(data.AnsweredItemIDs).
		SetResponses(responses).
		SetCurrentItemID(data.CurrentItemID).
		SetCompleted(data.Completed).
		SetCompletionReason(data.CompletionReason).
		SetBlendCount(data.LLMAdjustments)
	if data.SegmentLevel != nil {
		builder = builder.SetSegmentLevel(*data.SegmentLevel)
	} else {
		builder = builder.ClearSegmentLevel()
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("update dimension state: %w", err)
	}
	return nil
}

func (r *stateRepo) BySession(ctx context.Context, userID, sessionID string) ([]*DimensionStateData, error) {
	rows, err := r.client.DimensionState.Query().
		Where(
			dimensionstate.UserID(userID),
			dimensionstate.SessionID(sessionID),
		).
		Order(ent.Asc(dimensionstate.FieldDimensionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session states: %w", err)
	}

	out := make([]*DimensionStateData, 0, len(rows))
	for _, row := range rows {
		data, err := entStateToData(row)
		if err != nil {
			return nil, err
		}
		out = append(out, data)
	}
	return out, nil
}

// responsesToMaps converts response history for ent JSON storage.
func responsesToMaps(responses []ResponseData) ([]map[string]any, error) {
	b, err := json.Marshal(responses)
	if err != nil {
		return nil, err
	}
	var out []map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// entStateToData converts an ent row to the repo's data form.
func entStateToData(row *ent.DimensionState) (*DimensionStateData, error) {
	b, err := json.Marshal(row.Responses)
	if err != nil {
		return nil, fmt.Errorf("marshal ent responses: %w", err)
	}
	var responses []ResponseData
	if err := json.Unmarshal(b, &responses); err != nil {
		return nil, fmt.Errorf("unmarshal responses: %w", err)
	}

	return &DimensionStateData{
		UserID:           row.UserID,
		SessionID:        row.SessionID,
		DimensionID:      row.DimensionID,
		Theta:            row.Theta,
		StandardError:    row.StandardError,
		Confidence:       row.Confidence,
		AnsweredItemIDs:  row.AnsweredItems,
		Responses:        responses,
		CurrentItemID:    row.CurrentItemID,
		Completed:        row.Completed,
		CompletionReason: row.CompletionReason,
		SegmentLevel:     row.SegmentLevel,
		LLMAdjustments:   row.BlendCount,
		UpdatedAt:        row.UpdatedAt,
	}, nil
}
