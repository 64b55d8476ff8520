package store

import (
	"context"
	"time"
)

// ResponseData is one dichotomized answer in a dimension's history, with
// the administering item's IRT parameters frozen at answer time.
type ResponseData struct {
	ItemID string  `json:"item_id"`
	Keyed  int     `json:"keyed"`
	A      float64 `json:"a"`
	B      float64 `json:"b"`
	C      float64 `json:"c"`
}

// DimensionStateData is the persistent form of one (user, session,
// dimension) scoring state. The engine converts to and from its own
// in-memory representation; the store treats Save as a whole-row replace.
type DimensionStateData struct {
	UserID      string
	SessionID   string
	DimensionID string

	Theta          float64
	StandardError  float64
	Confidence     float64
	AnsweredItemIDs []string
	Responses      []ResponseData
	CurrentItemID  string
	Completed      bool
	CompletionReason string
	SegmentLevel   *int
	LLMAdjustments int

	UpdatedAt time.Time
}

// StateRepo persists dimension scoring states. Load returns (nil, nil)
// when no state exists for the key.
type StateRepo interface {
	Load(ctx context.Context, userID, sessionID, dimensionID string) (*DimensionStateData, error)
	Save(ctx context.Context, data *DimensionStateData) error

	// BySession returns all states recorded for a (user, session) pair.
	BySession(ctx context.Context, userID, sessionID string) ([]*DimensionStateData, error)
}

// AnswerEventData captures one scored answer for the append-only event log.
type AnswerEventData struct {
	UserID        string
	SessionID     string
	DimensionID   string
	ItemID        string
	ItemType      string
	RawAnswer     string
	Keyed         int
	Theta         float64
	StandardError float64
	Confidence    float64
}

// AnalysisEventData captures one free-text analysis blend.
type AnalysisEventData struct {
	UserID             string
	SessionID          string
	DimensionID        string
	ItemID             string
	ExternalTheta      float64
	ExternalConfidence float64
	ThetaBefore        float64
	ThetaAfter         float64
}

// LLMRequestEventData captures a single LLM API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// DimensionAnswerStats aggregates the answer log for one dimension.
type DimensionAnswerStats struct {
	DimensionID string
	Total       int
	Keyed       int
}

// LLMModelUsage aggregates LLM request accounting per model.
type LLMModelUsage struct {
	Model        string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and aggregate access to domain events.
type EventRepo interface {
	AppendAnswer(ctx context.Context, data AnswerEventData) error
	AppendAnalysis(ctx context.Context, data AnalysisEventData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AnswerStats returns per-dimension totals over the whole answer log.
	AnswerStats(ctx context.Context) ([]DimensionAnswerStats, error)

	// LLMUsage returns per-model request accounting.
	LLMUsage(ctx context.Context) ([]LLMModelUsage, error)
}
