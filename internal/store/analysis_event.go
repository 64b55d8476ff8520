package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAnalysis(ctx context.Context, data AnalysisEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnalysisEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetSessionID(data.SessionID).
		SetDimensionID(data.DimensionID).
		SetItemID(data.ItemID).
		SetExternalTheta(data.ExternalTheta).
		SetExternalConfidence(data.ExternalConfidence).
		SetThetaBefore(data.ThetaBefore).
		SetThetaAfter(data.ThetaAfter).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save analysis event: %w", err)
	}
	return nil
}
