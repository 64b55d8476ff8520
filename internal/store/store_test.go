package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful for file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func sampleState() *DimensionStateData {
	return &DimensionStateData{
		UserID:        "u1",
		SessionID:     "s1",
		DimensionID:   "openness",
		Theta:         0.42,
		StandardError: 0.7,
		Confidence:    0.53,
		AnsweredItemIDs: []string{"opn-01", "opn-03"},
		Responses: []ResponseData{
			{ItemID: "opn-01", Keyed: 1, A: 1.8, B: -0.2},
			{ItemID: "opn-03", Keyed: 0, A: 1.1, B: 0.6},
		},
		CurrentItemID: "opn-05",
	}
}

func TestStateRepo_LoadAbsent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	data, err := s.StateRepo().Load(ctx, "u1", "s1", "openness")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if data != nil {
		t.Fatal("expected nil for absent state")
	}
}

func TestStateRepo_SaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, sampleState()); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx, "u1", "s1", "openness")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected state after save")
	}
	if got.Theta != 0.42 {
		t.Errorf("theta = %f, want 0.42", got.Theta)
	}
	if len(got.Responses) != 2 || got.Responses[0].ItemID != "opn-01" || got.Responses[0].Keyed != 1 {
		t.Errorf("responses round-trip failed: %+v", got.Responses)
	}
	if len(got.AnsweredItemIDs) != 2 {
		t.Errorf("answered = %v", got.AnsweredItemIDs)
	}
	if got.SegmentLevel != nil {
		t.Error("segment level should be nil before completion")
	}
}

func TestStateRepo_SaveReplacesWholeRow(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, sampleState()); err != nil {
		t.Fatalf("save: %v", err)
	}

	updated := sampleState()
	updated.Theta = 1.2
	updated.Completed = true
	updated.CompletionReason = "target_confidence"
	updated.CurrentItemID = ""
	level := 3
	updated.SegmentLevel = &level
	if err := repo.Save(ctx, updated); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := repo.Load(ctx, "u1", "s1", "openness")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Theta != 1.2 || !got.Completed || got.CompletionReason != "target_confidence" {
		t.Errorf("update not applied: %+v", got)
	}
	if got.SegmentLevel == nil || *got.SegmentLevel != 3 {
		t.Errorf("segment level = %v, want 3", got.SegmentLevel)
	}
	if got.CurrentItemID != "" {
		t.Errorf("current item = %q, want cleared", got.CurrentItemID)
	}
}

func TestStateRepo_BySession(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()
	ctx := context.Background()

	first := sampleState()
	second := sampleState()
	second.DimensionID = "neuroticism"
	other := sampleState()
	other.SessionID = "s2"
	for _, data := range []*DimensionStateData{first, second, other} {
		if err := repo.Save(ctx, data); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	rows, err := repo.BySession(ctx, "u1", "s1")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
}

func TestEventRepo_AnswerStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{UserID: "u1", SessionID: "s1", DimensionID: "openness", ItemID: "opn-01", ItemType: "likert", RawAnswer: "4", Keyed: 1},
		{UserID: "u1", SessionID: "s1", DimensionID: "openness", ItemID: "opn-02", ItemType: "likert", RawAnswer: "2", Keyed: 0},
		{UserID: "u1", SessionID: "s1", DimensionID: "neuroticism", ItemID: "neu-01", ItemType: "likert", RawAnswer: "5", Keyed: 1},
	}
	for _, e := range answers {
		if err := repo.AppendAnswer(ctx, e); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}

	stats, err := repo.AnswerStats(ctx)
	if err != nil {
		t.Fatalf("answer stats: %v", err)
	}
	byDim := make(map[string]DimensionAnswerStats)
	for _, row := range stats {
		byDim[row.DimensionID] = row
	}
	if row := byDim["openness"]; row.Total != 2 || row.Keyed != 1 {
		t.Errorf("openness stats = %+v", row)
	}
	if row := byDim["neuroticism"]; row.Total != 1 || row.Keyed != 1 {
		t.Errorf("neuroticism stats = %+v", row)
	}
}

func TestEventRepo_LLMUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	requests := []LLMRequestEventData{
		{Provider: "mock", Model: "mock-1", Purpose: "trait-analysis", InputTokens: 100, OutputTokens: 20, Success: true},
		{Provider: "mock", Model: "mock-1", Purpose: "trait-analysis", InputTokens: 50, OutputTokens: 10, Success: false, ErrorMessage: "timeout"},
		{Provider: "mock", Model: "mock-2", Purpose: "trait-analysis", InputTokens: 30, OutputTokens: 5, Success: true},
	}
	for _, e := range requests {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append request: %v", err)
		}
	}

	usage, err := repo.LLMUsage(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	byModel := make(map[string]LLMModelUsage)
	for _, row := range usage {
		byModel[row.Model] = row
	}
	if row := byModel["mock-1"]; row.Requests != 2 || row.Failures != 1 || row.InputTokens != 150 || row.OutputTokens != 30 {
		t.Errorf("mock-1 usage = %+v", row)
	}
	if row := byModel["mock-2"]; row.Requests != 1 || row.Failures != 0 {
		t.Errorf("mock-2 usage = %+v", row)
	}
}

func TestEventSequenceIncreases(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	second, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if second != first+1 {
		t.Errorf("sequence %d then %d, want consecutive", first, second)
	}
}
