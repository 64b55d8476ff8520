package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/analyzer"
	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/irt"
	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/itembank"
	"github.com/maxzemtsov/TraitTune-v1-sub000/internal/store"
)

// Analyzer produces a trait estimate from a free-text answer. It is the
// only collaborator that performs network I/O; the engine calls it outside
// the per-key lock.
type Analyzer interface {
	Analyze(ctx context.Context, req analyzer.Request) (analyzer.Estimate, error)
}

// Service is the adaptive assessment engine. It owns the scoring loop for
// every (user, session, dimension) key: item selection, answer scoring,
// theta re-estimation, stopping, and external-signal blending. All
// mutations of one key are serialized; different keys proceed in parallel.
type Service struct {
	bank      itembank.Bank
	states    store.StateRepo
	events    store.EventRepo
	analyzer  Analyzer
	estimator *irt.Estimator
	cfg       Config
	logger    *zap.Logger
	locks     *keyedMutex
}

// Option configures a Service.
type Option func(*Service)

// WithConfig overrides the default tuning.
func WithConfig(cfg Config) Option {
	return func(s *Service) { s.cfg = cfg }
}

// WithEvents enables append-only event logging. Event failures never fail
// an operation; they are logged and dropped.
func WithEvents(events store.EventRepo) Option {
	return func(s *Service) { s.events = events }
}

// WithAnalyzer enables free-text analysis for open items.
func WithAnalyzer(a Analyzer) Option {
	return func(s *Service) { s.analyzer = a }
}

// WithLogger sets the structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// NewService creates the engine over an item bank and a state repository.
func NewService(bank itembank.Bank, states store.StateRepo, opts ...Option) *Service {
	s := &Service{
		bank:   bank,
		states: states,
		cfg:    DefaultConfig(),
		logger: zap.NewNop(),
		locks:  newKeyedMutex(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.estimator = irt.NewEstimator(s.cfg.Estimator)
	return s
}

// StartDimension begins, or resumes, the assessment of one dimension.
// If state already exists it is returned unchanged (idempotent resume),
// including completed states, which require an explicit ResetDimension
// before a retake. A fresh start picks the dimension's anchor item, or
// falls back to difficulty-based selection from theta 0.
func (s *Service) StartDimension(ctx context.Context, key Key) (*DimensionState, error) {
	dim := s.bank.Dimension(key.DimensionID)
	if dim == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDimension, key.DimensionID)
	}

	unlock := s.locks.lock(key)
	defer unlock()

	st, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}
	if st != nil && (st.Completed || st.CurrentItemID != "") {
		return st, nil
	}
	if st == nil {
		st = newState(key)
	}

	first := s.firstItem(key.DimensionID)
	if first == nil {
		s.complete(st, ReasonItemExhausted)
	} else {
		st.CurrentItemID = first.ID
	}

	if err := s.save(ctx, st); err != nil {
		return nil, err
	}
	s.logger.Debug("dimension started",
		zap.String("key", key.String()),
		zap.String("current_item", st.CurrentItemID))
	return st, nil
}

// SubmitAnswer applies one answer to the key's current item.
//
// Closed items are dichotomized, appended to the response history, and
// followed by re-estimation and the stopping rule. Open items are routed
// to the free-text analyzer and blended into theta without extending the
// response history; if the analyzer fails or is not configured, the open
// item is skipped, the session moves on to the next closed item, and the
// returned error wraps ErrAnalysisUnavailable alongside the advanced
// state.
func (s *Service) SubmitAnswer(ctx context.Context, key Key, itemID string, ans itembank.Answer) (*DimensionState, error) {
	if s.bank.Dimension(key.DimensionID) == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDimension, key.DimensionID)
	}
	item := s.bank.Item(itemID)
	if item == nil || item.DimensionID != key.DimensionID {
		return nil, s.rejectUnresolvedItem(ctx, key, itemID)
	}

	if item.Type == itembank.TypeOpen {
		return s.submitOpen(ctx, key, item, ans)
	}
	return s.submitClosed(ctx, key, item, ans)
}

func (s *Service) submitClosed(ctx context.Context, key Key, item *itembank.Item, ans itembank.Answer) (*DimensionState, error) {
	unlock := s.locks.lock(key)
	defer unlock()

	st, err := s.loadAwaiting(ctx, key, item.ID)
	if err != nil {
		return nil, err
	}

	keyed, err := itembank.Dichotomize(item, ans)
	if err != nil {
		return nil, err
	}

	a, b, c, ok := item.IRTParams()
	if !ok {
		return nil, fmt.Errorf("%w: item %s has no calibration", ErrInvalidAnswer, item.ID)
	}

	st.AnsweredItemIDs = append(st.AnsweredItemIDs, item.ID)
	st.Responses = append(st.Responses, ResponseRecord{
		ItemID: item.ID,
		Keyed:  keyed == 1,
		A:      a,
		B:      b,
		C:      c,
	})
	st.Theta, st.StandardError = s.estimator.Estimate(st.irtResponses())
	st.Confidence = irt.Confidence(st.StandardError, s.cfg.MaxExpectedSE)

	s.applyStoppingRule(st)

	if err := s.save(ctx, st); err != nil {
		return nil, err
	}
	s.appendAnswerEvent(ctx, st, item, ans, keyed)
	return st, nil
}

// applyStoppingRule evaluates the stopping conditions in their fixed
// order: question cap, confidence threshold, pool exhaustion. When none
// fires, the next item becomes current.
func (s *Service) applyStoppingRule(st *DimensionState) {
	if len(st.AnsweredItemIDs) >= s.cfg.MaxQuestionsPerDimension {
		s.complete(st, ReasonMaxQuestions)
		return
	}
	if len(st.AnsweredItemIDs) >= s.cfg.MinQuestionsForConfidenceCheck &&
		st.Confidence >= s.cfg.TargetConfidence {
		s.complete(st, ReasonTargetConfidence)
		return
	}
	s.advance(st)
}

// advance selects the next item, or completes on exhaustion.
func (s *Service) advance(st *DimensionState) {
	next := selectNext(st.Theta, s.bank.EligibleItems(st.Key.DimensionID, st.answeredSet()))
	if next == nil {
		s.complete(st, ReasonItemExhausted)
		return
	}
	st.CurrentItemID = next.ID
}

func (s *Service) complete(st *DimensionState, reason CompletionReason) {
	st.Completed = true
	st.CompletionReason = reason
	st.CurrentItemID = ""
	st.Segment = resolveSegment(s.bank.Segments(st.Key.DimensionID), st.Theta)
	s.logger.Info("dimension completed",
		zap.String("key", st.Key.String()),
		zap.String("reason", string(reason)),
		zap.Float64("theta", st.Theta),
		zap.Float64("confidence", st.Confidence),
		zap.Int("answers", len(st.AnsweredItemIDs)))
}

// submitOpen routes a free-text answer through the analyzer and blends
// the result. The analyzer call happens outside the per-key lock; the
// state is validated before the call and revalidated after relocking so
// a racing reset or competing submission is rejected, not clobbered.
func (s *Service) submitOpen(ctx context.Context, key Key, item *itembank.Item, ans itembank.Answer) (*DimensionState, error) {
	unlock := s.locks.lock(key)
	if _, err := s.loadAwaiting(ctx, key, item.ID); err != nil {
		unlock()
		return nil, err
	}
	unlock()

	var est analyzer.Estimate
	var analysisErr error
	if s.analyzer == nil {
		analysisErr = fmt.Errorf("%w: no analyzer configured", ErrAnalysisUnavailable)
	} else {
		dim := s.bank.Dimension(key.DimensionID)
		est, analysisErr = s.analyzer.Analyze(ctx, analyzer.Request{
			DimensionID:   dim.ID,
			DimensionName: dim.NameEn,
			Question:      item.Text,
			Text:          ans.Text,
		})
		if analysisErr != nil {
			analysisErr = fmt.Errorf("%w: %v", ErrAnalysisUnavailable, analysisErr)
		}
	}

	unlock = s.locks.lock(key)
	defer unlock()

	st, err := s.loadAwaiting(ctx, key, item.ID)
	if err != nil {
		return nil, err
	}

	if analysisErr == nil {
		before := st.Theta
		blendExternal(st, est.Theta, est.Confidence, s.cfg)
		s.appendAnalysisEvent(ctx, st, item, est, before)
	} else {
		s.logger.Warn("free-text analysis failed, skipping open item",
			zap.String("key", key.String()),
			zap.String("item", item.ID),
			zap.Error(analysisErr))
	}

	// A blend never completes a dimension on its own; only advance.
	s.advance(st)

	if err := s.save(ctx, st); err != nil {
		return nil, err
	}
	return st, analysisErr
}

// AssignOpenItem makes an open-type item the key's current question. The
// difficulty-based selector only ever picks closed items; open questions
// enter the flow through this explicit call from the conversational
// layer. Any pending closed item is displaced and becomes selectable
// again later.
func (s *Service) AssignOpenItem(ctx context.Context, key Key, itemID string) (*DimensionState, error) {
	item := s.bank.Item(itemID)
	if item == nil || item.DimensionID != key.DimensionID {
		return nil, fmt.Errorf("%w: %s", ErrUnknownItem, itemID)
	}
	if item.Type != itembank.TypeOpen {
		return nil, fmt.Errorf("%w: item %s is not open-ended", ErrUnknownItem, itemID)
	}

	unlock := s.locks.lock(key)
	defer unlock()

	st, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotStarted, key.String())
	}
	if st.Completed {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyCompleted, key.String())
	}
	if st.answered(itemID) {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedItem, itemID)
	}

	st.CurrentItemID = itemID
	if err := s.save(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// GetCurrentState returns the key's state, or ErrNotStarted.
func (s *Service) GetCurrentState(ctx context.Context, key Key) (*DimensionState, error) {
	unlock := s.locks.lock(key)
	defer unlock()

	st, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotStarted, key.String())
	}
	return st, nil
}

// SessionStates returns every dimension state recorded for the session.
func (s *Service) SessionStates(ctx context.Context, userID, sessionID string) ([]*DimensionState, error) {
	rows, err := s.states.BySession(ctx, userID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session states: %w", err)
	}
	out := make([]*DimensionState, 0, len(rows))
	for _, row := range rows {
		out = append(out, stateFromData(row, s.bank.Segments(row.DimensionID)))
	}
	return out, nil
}

// ResetDimension clears the key back to its initial defaults, allowing a
// retake. Resetting a key with no state is a no-op.
func (s *Service) ResetDimension(ctx context.Context, key Key) error {
	if s.bank.Dimension(key.DimensionID) == nil {
		return fmt.Errorf("%w: %s", ErrUnknownDimension, key.DimensionID)
	}

	unlock := s.locks.lock(key)
	defer unlock()

	st, err := s.load(ctx, key)
	if err != nil {
		return err
	}
	if st == nil {
		return nil
	}
	if err := s.save(ctx, newState(key)); err != nil {
		return err
	}
	s.logger.Info("dimension reset", zap.String("key", key.String()))
	return nil
}

// rejectUnresolvedItem reports why a submission with an unresolvable item
// id failed. State-level failures outrank the unknown item: a never-started
// dimension reports NotStarted and a finished one AlreadyCompleted.
func (s *Service) rejectUnresolvedItem(ctx context.Context, key Key, itemID string) error {
	unlock := s.locks.lock(key)
	defer unlock()

	st, err := s.load(ctx, key)
	if err != nil {
		return err
	}
	if st == nil {
		return fmt.Errorf("%w: %s", ErrNotStarted, key.String())
	}
	if st.Completed {
		return fmt.Errorf("%w: %s", ErrAlreadyCompleted, key.String())
	}
	return fmt.Errorf("%w: %s", ErrUnknownItem, itemID)
}

// loadAwaiting loads the key's state and verifies it is awaiting exactly
// the given item.
func (s *Service) loadAwaiting(ctx context.Context, key Key, itemID string) (*DimensionState, error) {
	st, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotStarted, key.String())
	}
	if st.Completed {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyCompleted, key.String())
	}
	if st.CurrentItemID != itemID {
		return nil, fmt.Errorf("%w: got %s, current is %s", ErrUnexpectedItem, itemID, st.CurrentItemID)
	}
	return st, nil
}

func (s *Service) load(ctx context.Context, key Key) (*DimensionState, error) {
	data, err := s.states.Load(ctx, key.UserID, key.SessionID, key.DimensionID)
	if err != nil {
		return nil, fmt.Errorf("load dimension state: %w", err)
	}
	if data == nil {
		return nil, nil
	}
	return stateFromData(data, s.bank.Segments(key.DimensionID)), nil
}

func (s *Service) save(ctx context.Context, st *DimensionState) error {
	if err := s.states.Save(ctx, st.toData()); err != nil {
		return fmt.Errorf("save dimension state: %w", err)
	}
	return nil
}

// firstItem picks a dimension's starting question: its strongest anchor,
// else the closest eligible item to the prior mean.
func (s *Service) firstItem(dimensionID string) *itembank.Item {
	if anchors := s.bank.AnchorItems(dimensionID); len(anchors) > 0 {
		return anchors[0]
	}
	return selectNext(0, s.bank.EligibleItems(dimensionID, nil))
}

func (s *Service) appendAnswerEvent(ctx context.Context, st *DimensionState, item *itembank.Item, ans itembank.Answer, keyed int) {
	if s.events == nil {
		return
	}
	raw := ans.Code
	if item.Type == itembank.TypeLikert {
		raw = fmt.Sprintf("%d", ans.Scale)
	}
	err := s.events.AppendAnswer(ctx, store.AnswerEventData{
		UserID:        st.Key.UserID,
		SessionID:     st.Key.SessionID,
		DimensionID:   st.Key.DimensionID,
		ItemID:        item.ID,
		ItemType:      string(item.Type),
		RawAnswer:     raw,
		Keyed:         keyed,
		Theta:         st.Theta,
		StandardError: st.StandardError,
		Confidence:    st.Confidence,
	})
	if err != nil {
		s.logger.Warn("answer event append failed", zap.Error(err))
	}
}

func (s *Service) appendAnalysisEvent(ctx context.Context, st *DimensionState, item *itembank.Item, est analyzer.Estimate, thetaBefore float64) {
	if s.events == nil {
		return
	}
	err := s.events.AppendAnalysis(ctx, store.AnalysisEventData{
		UserID:             st.Key.UserID,
		SessionID:          st.Key.SessionID,
		DimensionID:        st.Key.DimensionID,
		ItemID:             item.ID,
		ExternalTheta:      est.Theta,
		ExternalConfidence: est.Confidence,
		ThetaBefore:        thetaBefore,
		ThetaAfter:         st.Theta,
	})
	if err != nil {
		s.logger.Warn("analysis event append failed", zap.Error(err))
	}
}
