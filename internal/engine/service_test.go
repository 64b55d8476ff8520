package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/analyzer"
	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/itembank"
	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/store"
)

// memStateRepo implements store.StateRepo in memory.
type memStateRepo struct {
	mu   sync.Mutex
	rows map[string]*store.DimensionStateData
}

func newMemStateRepo() *memStateRepo {
	return &memStateRepo{rows: make(map[string]*store.DimensionStateData)}
}

func stateKey(userID, sessionID, dimensionID string) string {
	return userID + "/" + sessionID + "/" + dimensionID
}

func (m *memStateRepo) Load(_ context.Context, userID, sessionID, dimensionID string) (*store.DimensionStateData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows[stateKey(userID, sessionID, dimensionID)], nil
}

func (m *memStateRepo) Save(_ context.Context, data *store.DimensionStateData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[stateKey(data.UserID, data.SessionID, data.DimensionID)] = data
	return nil
}

func (m *memStateRepo) BySession(_ context.Context, userID, sessionID string) ([]*store.DimensionStateData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*store.DimensionStateData
	for _, row := range m.rows {
		if row.UserID == userID && row.SessionID == sessionID {
			out = append(out, row)
		}
	}
	return out, nil
}

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	answers  int
	analyses int
}

func (m *mockEventRepo) AppendAnswer(_ context.Context, _ store.AnswerEventData) error {
	m.answers++
	return nil
}
func (m *mockEventRepo) AppendAnalysis(_ context.Context, _ store.AnalysisEventData) error {
	m.analyses++
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) AnswerStats(_ context.Context) ([]store.DimensionAnswerStats, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsage(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

type mockAnalyzer struct {
	est   analyzer.Estimate
	err   error
	calls int
}

func (m *mockAnalyzer) Analyze(_ context.Context, _ analyzer.Request) (analyzer.Estimate, error) {
	m.calls++
	if m.err != nil {
		return analyzer.Estimate{}, m.err
	}
	return m.est, nil
}

func fv(v float64) *float64 { return &v }

// testBank builds a single-dimension bank with n likert items (the first
// is the anchor with the highest discrimination) and one open item.
func testBank(t *testing.T, n int) itembank.Bank {
	t.Helper()
	dim := itembank.Dimension{
		ID:     "grit",
		NameEn: "Grit",
		NameRu: "Упорство",
		Segments: []itembank.Segment{
			{Level: 1, NameEn: "Low", NameRu: "Низкий", ThetaMin: -2, ThetaMax: 0},
			{Level: 2, NameEn: "Medium", NameRu: "Средний", ThetaMin: 0, ThetaMax: 1.5},
			{Level: 3, NameEn: "High", NameRu: "Высокий", ThetaMin: 1.5, ThetaMax: 3},
		},
	}

	items := make([]itembank.Item, 0, n+1)
	for i := 0; i < n; i++ {
		a := 1.2
		anchor := false
		if i == 0 {
			a = 1.8
			anchor = true
		}
		b := -2.0 + float64(i)*(4.0/float64(n))
		items = append(items, itembank.Item{
			ID:             fmt.Sprintf("grit-%02d", i+1),
			DimensionID:    "grit",
			Type:           itembank.TypeLikert,
			Text:           fmt.Sprintf("Statement %d about persistence.", i+1),
			Discrimination: fv(a),
			Difficulty:     fv(b),
			Anchor:         anchor,
		})
	}
	items = append(items, itembank.Item{
		ID:          "grit-open",
		DimensionID: "grit",
		Type:        itembank.TypeOpen,
		Text:        "Tell me about a goal you kept working toward despite setbacks.",
	})

	bank, err := itembank.NewMemoryBank([]itembank.Dimension{dim}, items)
	if err != nil {
		t.Fatalf("NewMemoryBank failed: %v", err)
	}
	return bank
}

func testKey() Key {
	return Key{UserID: "u1", SessionID: "s1", DimensionID: "grit"}
}

func TestStartDimension_PicksAnchor(t *testing.T) {
	svc := NewService(testBank(t, 6), newMemStateRepo())

	st, err := svc.StartDimension(context.Background(), testKey())
	if err != nil {
		t.Fatalf("StartDimension failed: %v", err)
	}
	if st.CurrentItemID != "grit-01" {
		t.Errorf("current item = %q, want anchor grit-01", st.CurrentItemID)
	}
	if st.Completed {
		t.Error("fresh start must not be completed")
	}
	if st.Theta != 0 || st.Confidence != 0.5 {
		t.Errorf("initial state = (theta %f, conf %f), want (0, 0.5)", st.Theta, st.Confidence)
	}
}

func TestStartDimension_Idempotent(t *testing.T) {
	svc := NewService(testBank(t, 6), newMemStateRepo())
	key := testKey()
	ctx := context.Background()

	first, err := svc.StartDimension(ctx, key)
	if err != nil {
		t.Fatalf("first start failed: %v", err)
	}
	second, err := svc.StartDimension(ctx, key)
	if err != nil {
		t.Fatalf("second start failed: %v", err)
	}
	if first.CurrentItemID != second.CurrentItemID {
		t.Errorf("repeated start changed current item: %q then %q", first.CurrentItemID, second.CurrentItemID)
	}
}

func TestStartDimension_UnknownDimension(t *testing.T) {
	svc := NewService(testBank(t, 6), newMemStateRepo())

	_, err := svc.StartDimension(context.Background(), Key{UserID: "u1", SessionID: "s1", DimensionID: "charisma"})
	if !errors.Is(err, ErrUnknownDimension) {
		t.Errorf("err = %v, want ErrUnknownDimension", err)
	}
}

// answerAll drives the session with agree answers until completion or the
// given limit, returning the final state.
func answerAll(t *testing.T, svc *Service, key Key, limit int) *DimensionState {
	t.Helper()
	ctx := context.Background()
	st, err := svc.StartDimension(ctx, key)
	if err != nil {
		t.Fatalf("StartDimension failed: %v", err)
	}
	for i := 0; i < limit && !st.Completed; i++ {
		st, err = svc.SubmitAnswer(ctx, key, st.CurrentItemID, itembank.Answer{Scale: 4})
		if err != nil {
			t.Fatalf("SubmitAnswer %d failed: %v", i+1, err)
		}
	}
	return st
}

func TestSubmitAnswer_MaxQuestionsStop(t *testing.T) {
	cfg := DefaultConfig()
	// Unreachable threshold so only the question cap can fire.
	cfg.TargetConfidence = 0.99
	svc := NewService(testBank(t, 15), newMemStateRepo(), WithConfig(cfg))

	st := answerAll(t, svc, testKey(), 20)

	if !st.Completed {
		t.Fatal("dimension should be completed")
	}
	if st.CompletionReason != ReasonMaxQuestions {
		t.Errorf("reason = %q, want %q", st.CompletionReason, ReasonMaxQuestions)
	}
	if len(st.AnsweredItemIDs) != cfg.MaxQuestionsPerDimension {
		t.Errorf("answered = %d, want %d", len(st.AnsweredItemIDs), cfg.MaxQuestionsPerDimension)
	}
	if st.CurrentItemID != "" {
		t.Errorf("current item = %q, want cleared", st.CurrentItemID)
	}
	if st.Segment == nil {
		t.Error("completed dimension must resolve a segment")
	}
}

func TestSubmitAnswer_ConfidenceStopOnThirdAnswer(t *testing.T) {
	cfg := DefaultConfig()
	// Any confidence passes; the minimum answer count gates the stop.
	cfg.TargetConfidence = 0.05
	svc := NewService(testBank(t, 15), newMemStateRepo(), WithConfig(cfg))
	key := testKey()
	ctx := context.Background()

	st, err := svc.StartDimension(ctx, key)
	if err != nil {
		t.Fatalf("StartDimension failed: %v", err)
	}
	for i := 1; i <= 3; i++ {
		st, err = svc.SubmitAnswer(ctx, key, st.CurrentItemID, itembank.Answer{Scale: 4})
		if err != nil {
			t.Fatalf("SubmitAnswer %d failed: %v", i, err)
		}
		if i < 3 && st.Completed {
			t.Fatalf("completed after %d answers, want exactly 3", i)
		}
	}
	if !st.Completed {
		t.Fatal("dimension should complete on the third answer")
	}
	if st.CompletionReason != ReasonTargetConfidence {
		t.Errorf("reason = %q, want %q", st.CompletionReason, ReasonTargetConfidence)
	}
}

func TestSubmitAnswer_ItemExhaustion(t *testing.T) {
	svc := NewService(testBank(t, 2), newMemStateRepo())

	st := answerAll(t, svc, testKey(), 5)

	if !st.Completed {
		t.Fatal("dimension should be completed")
	}
	if st.CompletionReason != ReasonItemExhausted {
		t.Errorf("reason = %q, want %q", st.CompletionReason, ReasonItemExhausted)
	}
	if len(st.AnsweredItemIDs) != 2 {
		t.Errorf("answered = %d, want 2", len(st.AnsweredItemIDs))
	}
}

func TestSubmitAnswer_StaleSubmissionRejected(t *testing.T) {
	svc := NewService(testBank(t, 6), newMemStateRepo())
	key := testKey()
	ctx := context.Background()

	st, err := svc.StartDimension(ctx, key)
	if err != nil {
		t.Fatalf("StartDimension failed: %v", err)
	}
	current := st.CurrentItemID

	_, err = svc.SubmitAnswer(ctx, key, "grit-03", itembank.Answer{Scale: 4})
	if !errors.Is(err, ErrUnexpectedItem) {
		t.Fatalf("err = %v, want ErrUnexpectedItem", err)
	}

	after, err := svc.GetCurrentState(ctx, key)
	if err != nil {
		t.Fatalf("GetCurrentState failed: %v", err)
	}
	if after.CurrentItemID != current || len(after.AnsweredItemIDs) != 0 {
		t.Error("rejected submission must leave state unchanged")
	}
}

func TestSubmitAnswer_NotStarted(t *testing.T) {
	svc := NewService(testBank(t, 6), newMemStateRepo())

	_, err := svc.SubmitAnswer(context.Background(), testKey(), "grit-01", itembank.Answer{Scale: 4})
	if !errors.Is(err, ErrNotStarted) {
		t.Errorf("err = %v, want ErrNotStarted", err)
	}
}

func TestSubmitAnswer_UnknownItem(t *testing.T) {
	svc := NewService(testBank(t, 6), newMemStateRepo())
	key := testKey()
	ctx := context.Background()
	if _, err := svc.StartDimension(ctx, key); err != nil {
		t.Fatalf("StartDimension failed: %v", err)
	}

	_, err := svc.SubmitAnswer(ctx, key, "no-such-item", itembank.Answer{Scale: 4})
	if !errors.Is(err, ErrUnknownItem) {
		t.Errorf("err = %v, want ErrUnknownItem", err)
	}
}

func TestSubmitAnswer_StateErrorsOutrankUnknownItem(t *testing.T) {
	svc := NewService(testBank(t, 2), newMemStateRepo())
	key := testKey()
	ctx := context.Background()

	_, err := svc.SubmitAnswer(ctx, key, "no-such-item", itembank.Answer{Scale: 4})
	if !errors.Is(err, ErrNotStarted) {
		t.Errorf("never-started: err = %v, want ErrNotStarted", err)
	}

	done := answerAll(t, svc, key, 5)
	if !done.Completed {
		t.Fatal("setup: dimension should be completed")
	}
	_, err = svc.SubmitAnswer(ctx, key, "no-such-item", itembank.Answer{Scale: 4})
	if !errors.Is(err, ErrAlreadyCompleted) {
		t.Errorf("completed: err = %v, want ErrAlreadyCompleted", err)
	}
}

func TestSubmitAnswer_InvalidAnswerLeavesStateUnchanged(t *testing.T) {
	svc := NewService(testBank(t, 6), newMemStateRepo())
	key := testKey()
	ctx := context.Background()

	st, err := svc.StartDimension(ctx, key)
	if err != nil {
		t.Fatalf("StartDimension failed: %v", err)
	}

	_, err = svc.SubmitAnswer(ctx, key, st.CurrentItemID, itembank.Answer{Scale: 9})
	if !errors.Is(err, ErrInvalidAnswer) {
		t.Fatalf("err = %v, want ErrInvalidAnswer", err)
	}

	after, err := svc.GetCurrentState(ctx, key)
	if err != nil {
		t.Fatalf("GetCurrentState failed: %v", err)
	}
	if len(after.AnsweredItemIDs) != 0 || len(after.Responses) != 0 {
		t.Error("invalid answer must not be recorded")
	}
}

func TestSubmitAnswer_AlreadyCompleted(t *testing.T) {
	svc := NewService(testBank(t, 2), newMemStateRepo())
	key := testKey()

	answerAll(t, svc, key, 5)

	_, err := svc.SubmitAnswer(context.Background(), key, "grit-01", itembank.Answer{Scale: 4})
	if !errors.Is(err, ErrAlreadyCompleted) {
		t.Errorf("err = %v, want ErrAlreadyCompleted", err)
	}
}

func TestSubmitAnswer_EmitsAnswerEvents(t *testing.T) {
	events := &mockEventRepo{}
	svc := NewService(testBank(t, 2), newMemStateRepo(), WithEvents(events))

	answerAll(t, svc, testKey(), 5)

	if events.answers != 2 {
		t.Errorf("answer events = %d, want 2", events.answers)
	}
}

func TestOpenItem_BlendAdoptsExternalEstimateWithNoPriorEvidence(t *testing.T) {
	mock := &mockAnalyzer{est: analyzer.Estimate{Theta: 2.0, Confidence: 0.9}}
	events := &mockEventRepo{}
	svc := NewService(testBank(t, 6), newMemStateRepo(),
		WithAnalyzer(mock), WithEvents(events))
	key := testKey()
	ctx := context.Background()

	if _, err := svc.StartDimension(ctx, key); err != nil {
		t.Fatalf("StartDimension failed: %v", err)
	}
	if _, err := svc.AssignOpenItem(ctx, key, "grit-open"); err != nil {
		t.Fatalf("AssignOpenItem failed: %v", err)
	}

	st, err := svc.SubmitAnswer(ctx, key, "grit-open", itembank.Answer{Text: "I trained daily for two years to finish a marathon."})
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if st.Theta != 2.0 {
		t.Errorf("theta = %f, want external 2.0 adopted directly", st.Theta)
	}
	if st.Confidence != 0.9 {
		t.Errorf("confidence = %f, want 0.9", st.Confidence)
	}
	if st.LLMAdjustments != 1 {
		t.Errorf("llm adjustments = %d, want 1", st.LLMAdjustments)
	}
	if len(st.Responses) != 0 || len(st.AnsweredItemIDs) != 0 {
		t.Error("open answers must not extend the closed response history")
	}
	if st.Completed {
		t.Error("a blend alone must not complete the dimension")
	}
	if st.CurrentItemID == "" {
		t.Error("a closed item should be selected after the open answer")
	}
	if events.analyses != 1 {
		t.Errorf("analysis events = %d, want 1", events.analyses)
	}
	if mock.calls != 1 {
		t.Errorf("analyzer calls = %d, want 1", mock.calls)
	}
}

func TestOpenItem_BlendWeighsAgainstClosedEvidence(t *testing.T) {
	mock := &mockAnalyzer{est: analyzer.Estimate{Theta: 3.0, Confidence: 1.0}}
	svc := NewService(testBank(t, 8), newMemStateRepo(), WithAnalyzer(mock))
	key := testKey()
	ctx := context.Background()

	st, err := svc.StartDimension(ctx, key)
	if err != nil {
		t.Fatalf("StartDimension failed: %v", err)
	}
	st, err = svc.SubmitAnswer(ctx, key, st.CurrentItemID, itembank.Answer{Scale: 2})
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	thetaBefore := st.Theta

	if _, err := svc.AssignOpenItem(ctx, key, "grit-open"); err != nil {
		t.Fatalf("AssignOpenItem failed: %v", err)
	}
	st, err = svc.SubmitAnswer(ctx, key, "grit-open", itembank.Answer{Text: "some text"})
	if err != nil {
		t.Fatalf("open SubmitAnswer failed: %v", err)
	}

	if st.Theta <= thetaBefore {
		t.Errorf("theta = %f, want pulled above %f by the external estimate", st.Theta, thetaBefore)
	}
	if st.Theta >= 3.0 {
		t.Errorf("theta = %f, want below the raw external 3.0 (closed evidence must keep weight)", st.Theta)
	}
}

func TestOpenItem_AnalyzerFailureSkipsAndReports(t *testing.T) {
	mock := &mockAnalyzer{err: errors.New("timeout")}
	svc := NewService(testBank(t, 6), newMemStateRepo(), WithAnalyzer(mock))
	key := testKey()
	ctx := context.Background()

	if _, err := svc.StartDimension(ctx, key); err != nil {
		t.Fatalf("StartDimension failed: %v", err)
	}
	if _, err := svc.AssignOpenItem(ctx, key, "grit-open"); err != nil {
		t.Fatalf("AssignOpenItem failed: %v", err)
	}

	st, err := svc.SubmitAnswer(ctx, key, "grit-open", itembank.Answer{Text: "some text"})
	if !errors.Is(err, ErrAnalysisUnavailable) {
		t.Fatalf("err = %v, want ErrAnalysisUnavailable", err)
	}
	if st == nil {
		t.Fatal("state must be returned alongside the analysis failure")
	}
	if st.LLMAdjustments != 0 {
		t.Errorf("llm adjustments = %d, want 0 after failed analysis", st.LLMAdjustments)
	}
	if st.CurrentItemID == "" || st.CurrentItemID == "grit-open" {
		t.Errorf("current item = %q, want the next closed item", st.CurrentItemID)
	}
}

func TestOpenItem_NoAnalyzerConfigured(t *testing.T) {
	svc := NewService(testBank(t, 6), newMemStateRepo())
	key := testKey()
	ctx := context.Background()

	if _, err := svc.StartDimension(ctx, key); err != nil {
		t.Fatalf("StartDimension failed: %v", err)
	}
	if _, err := svc.AssignOpenItem(ctx, key, "grit-open"); err != nil {
		t.Fatalf("AssignOpenItem failed: %v", err)
	}

	_, err := svc.SubmitAnswer(ctx, key, "grit-open", itembank.Answer{Text: "some text"})
	if !errors.Is(err, ErrAnalysisUnavailable) {
		t.Errorf("err = %v, want ErrAnalysisUnavailable", err)
	}
}

func TestAssignOpenItem_RejectsClosedItem(t *testing.T) {
	svc := NewService(testBank(t, 6), newMemStateRepo())
	key := testKey()
	ctx := context.Background()
	if _, err := svc.StartDimension(ctx, key); err != nil {
		t.Fatalf("StartDimension failed: %v", err)
	}

	_, err := svc.AssignOpenItem(ctx, key, "grit-02")
	if !errors.Is(err, ErrUnknownItem) {
		t.Errorf("err = %v, want ErrUnknownItem", err)
	}
}

func TestResetDimension_AllowsRetake(t *testing.T) {
	svc := NewService(testBank(t, 2), newMemStateRepo())
	key := testKey()
	ctx := context.Background()

	done := answerAll(t, svc, key, 5)
	if !done.Completed {
		t.Fatal("setup: dimension should be completed")
	}

	if err := svc.ResetDimension(ctx, key); err != nil {
		t.Fatalf("ResetDimension failed: %v", err)
	}

	st, err := svc.StartDimension(ctx, key)
	if err != nil {
		t.Fatalf("restart failed: %v", err)
	}
	if st.Completed || len(st.AnsweredItemIDs) != 0 || st.LLMAdjustments != 0 {
		t.Error("reset must clear the state to initial defaults")
	}
	if st.CurrentItemID != "grit-01" {
		t.Errorf("current item = %q, want the anchor again", st.CurrentItemID)
	}
}

func TestGetCurrentState_NotStarted(t *testing.T) {
	svc := NewService(testBank(t, 6), newMemStateRepo())

	_, err := svc.GetCurrentState(context.Background(), testKey())
	if !errors.Is(err, ErrNotStarted) {
		t.Errorf("err = %v, want ErrNotStarted", err)
	}
}

func TestSessionStates_ReturnsAllDimensions(t *testing.T) {
	svc := NewService(testBank(t, 6), newMemStateRepo())
	ctx := context.Background()

	if _, err := svc.StartDimension(ctx, testKey()); err != nil {
		t.Fatalf("StartDimension failed: %v", err)
	}

	states, err := svc.SessionStates(ctx, "u1", "s1")
	if err != nil {
		t.Fatalf("SessionStates failed: %v", err)
	}
	if len(states) != 1 {
		t.Fatalf("states = %d, want 1", len(states))
	}
	if states[0].Key.DimensionID != "grit" {
		t.Errorf("dimension = %q, want grit", states[0].Key.DimensionID)
	}
}

func TestStatePersistsAcrossServiceInstances(t *testing.T) {
	repo := newMemStateRepo()
	bank := testBank(t, 6)
	key := testKey()
	ctx := context.Background()

	first := NewService(bank, repo)
	st, err := first.StartDimension(ctx, key)
	if err != nil {
		t.Fatalf("StartDimension failed: %v", err)
	}
	st, err = first.SubmitAnswer(ctx, key, st.CurrentItemID, itembank.Answer{Scale: 5})
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}

	second := NewService(bank, repo)
	resumed, err := second.StartDimension(ctx, key)
	if err != nil {
		t.Fatalf("resume failed: %v", err)
	}
	if resumed.CurrentItemID != st.CurrentItemID {
		t.Errorf("resumed item = %q, want %q", resumed.CurrentItemID, st.CurrentItemID)
	}
	if len(resumed.Responses) != 1 {
		t.Errorf("resumed responses = %d, want 1", len(resumed.Responses))
	}
	if resumed.Theta != st.Theta {
		t.Errorf("resumed theta = %f, want %f", resumed.Theta, st.Theta)
	}
}
