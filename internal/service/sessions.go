// internal/service/sessions.go
package service

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/voltlearn/backend/internal/content"
	"github.com/voltlearn/backend/internal/domain/inlinecheck"
	"github.com/voltlearn/backend/internal/domain/quizsession"
	"github.com/voltlearn/backend/internal/id"
	"github.com/voltlearn/backend/internal/store"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrCheckNotFound    = errors.New("check not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrNotCompleted     = errors.New("session not completed")
)

// liveSession pairs a session with the lock serialising its transitions.
type liveSession struct {
	mu      sync.Mutex
	session *quizsession.Session
	touched time.Time
}

type liveCheck struct {
	mu       sync.Mutex
	moduleID string
	check    *inlinecheck.Check
	touched  time.Time
}

// SessionService hosts the live quiz sessions and inline checks of every
// connected learner. Each instance is isolated: one learner's transitions
// never observe or block another's beyond the registry lookup.
type SessionService struct {
	catalog  *content.Catalog
	recorder *Recorder // nil disables persistence
	logger   *slog.Logger
	now      func() time.Time

	rngMu sync.Mutex
	rng   *rand.Rand

	mu       sync.RWMutex
	sessions map[string]*liveSession
	checks   map[string]*liveCheck
}

// NewSessionService creates a SessionService. recorder may be nil.
func NewSessionService(catalog *content.Catalog, recorder *Recorder, logger *slog.Logger) *SessionService {
	return &SessionService{
		catalog:  catalog,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		sessions: make(map[string]*liveSession),
		checks:   make(map[string]*liveCheck),
	}
}

// ── Quiz sessions ───────────────────────────────────────────────────────────

// CreateSession starts a knowledge-check quiz over a module.
func (s *SessionService) CreateSession(moduleID string, config quizsession.SessionConfig) (SessionView, error) {
	bank, err := s.catalog.Module(moduleID)
	if err != nil {
		return SessionView{}, err
	}

	s.rngMu.Lock()
	session, err := quizsession.NewWithConfig(bank, config, s.rng)
	s.rngMu.Unlock()
	if err != nil {
		return SessionView{}, err
	}

	s.mu.Lock()
	s.sessions[session.ID] = &liveSession{session: session, touched: s.now()}
	s.mu.Unlock()

	s.logger.Info("session started",
		"session_id", session.ID,
		"module_id", moduleID,
		"questions", session.Len(),
	)
	return sessionView(session), nil
}

func (s *SessionService) lookupSession(sessionID string) (*liveSession, error) {
	s.mu.RLock()
	live, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return live, nil
}

// apply runs one transition under the session's lock and returns the
// resulting snapshot.
func (s *SessionService) apply(sessionID string, fn func(*quizsession.Session) bool) (SessionView, bool, error) {
	live, err := s.lookupSession(sessionID)
	if err != nil {
		return SessionView{}, false, err
	}
	live.mu.Lock()
	defer live.mu.Unlock()

	applied := fn(live.session)
	live.touched = s.now()
	return sessionView(live.session), applied, nil
}

// Session returns the current snapshot of a session.
func (s *SessionService) Session(sessionID string) (SessionView, error) {
	v, _, err := s.apply(sessionID, func(*quizsession.Session) bool { return false })
	return v, err
}

// Select records an answer. A nil questionIndex answers the current question.
func (s *SessionService) Select(sessionID string, questionIndex *int, optionIndex int) (SessionView, bool, error) {
	return s.apply(sessionID, func(qs *quizsession.Session) bool {
		if questionIndex == nil {
			return qs.SelectCurrent(optionIndex)
		}
		return qs.Select(*questionIndex, optionIndex)
	})
}

func (s *SessionService) Next(sessionID string) (SessionView, bool, error) {
	return s.apply(sessionID, (*quizsession.Session).Next)
}

func (s *SessionService) Previous(sessionID string) (SessionView, bool, error) {
	return s.apply(sessionID, (*quizsession.Session).Previous)
}

// Submit completes the quiz when every question is answered and, if a
// recorder is configured, queues the attempt for persistence.
func (s *SessionService) Submit(sessionID string) (SessionView, bool, error) {
	var attempt *store.Attempt
	view, applied, err := s.apply(sessionID, func(qs *quizsession.Session) bool {
		if !qs.Submit() {
			return false
		}
		summary, _ := quizsession.Summarize(qs)
		attempt = attemptFromSummary(summary, s.now())
		return true
	})
	if err != nil || !applied {
		return view, applied, err
	}

	s.logger.Info("session submitted",
		"session_id", sessionID,
		"module_id", view.ModuleID,
		"score", attempt.Score,
		"total", attempt.Total,
		"passed", attempt.Passed,
	)
	if s.recorder != nil {
		if err := s.recorder.Record(attempt); err != nil {
			s.logger.Error("failed to queue attempt", "session_id", sessionID, "error", err)
		}
	}
	return view, true, nil
}

// Restart resets a session; it is always applied.
func (s *SessionService) Restart(sessionID string) (SessionView, bool, error) {
	return s.apply(sessionID, func(qs *quizsession.Session) bool {
		qs.Restart()
		return true
	})
}

// Summary returns the result view of a completed session.
func (s *SessionService) Summary(sessionID string) (quizsession.Summary, error) {
	live, err := s.lookupSession(sessionID)
	if err != nil {
		return quizsession.Summary{}, err
	}
	live.mu.Lock()
	defer live.mu.Unlock()

	summary, ok := quizsession.Summarize(live.session)
	if !ok {
		return quizsession.Summary{}, fmt.Errorf("%w: %s", ErrNotCompleted, sessionID)
	}
	return summary, nil
}

// Discard drops a session, as when the learner navigates away.
func (s *SessionService) Discard(sessionID string) error {
	s.mu.Lock()
	_, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if s.recorder != nil {
		s.recorder.Forget(sessionID)
	}
	return nil
}

// WaitForRecording blocks until attempts queued for a session are stored.
func (s *SessionService) WaitForRecording(sessionID string) {
	if s.recorder != nil {
		s.recorder.WaitForSession(sessionID)
	}
}

func attemptFromSummary(sum quizsession.Summary, completedAt time.Time) *store.Attempt {
	a := &store.Attempt{
		ID:          id.GenerateID(),
		SessionID:   sum.SessionID,
		BankID:      sum.BankID,
		Score:       sum.Score,
		Total:       sum.Total,
		Percentage:  sum.Percentage,
		Passed:      sum.Passed,
		Answers:     make([]store.AttemptAnswer, len(sum.Items)),
		CompletedAt: completedAt,
	}
	for i, item := range sum.Items {
		a.Answers[i] = store.AttemptAnswer{
			QuestionID: item.QuestionID,
			Chosen:     item.Chosen,
			Correct:    item.Correct,
		}
	}
	return a
}

// ── Inline checks ───────────────────────────────────────────────────────────

// CreateCheck starts a fresh, unanswered instance of one of a module's
// inline checks.
func (s *SessionService) CreateCheck(moduleID, questionID string) (CheckView, error) {
	bank, err := s.catalog.Module(moduleID)
	if err != nil {
		return CheckView{}, err
	}
	q, ok := bank.Check(questionID)
	if !ok {
		return CheckView{}, fmt.Errorf("%w: %s/%s", ErrQuestionNotFound, moduleID, questionID)
	}

	checkID := id.GenerateID()
	c := inlinecheck.New(q)

	s.mu.Lock()
	s.checks[checkID] = &liveCheck{moduleID: moduleID, check: c, touched: s.now()}
	s.mu.Unlock()

	return checkView(checkID, moduleID, c), nil
}

func (s *SessionService) lookupCheck(checkID string) (*liveCheck, error) {
	s.mu.RLock()
	live, ok := s.checks[checkID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCheckNotFound, checkID)
	}
	return live, nil
}

func (s *SessionService) Check(checkID string) (CheckView, error) {
	live, err := s.lookupCheck(checkID)
	if err != nil {
		return CheckView{}, err
	}
	live.mu.Lock()
	defer live.mu.Unlock()
	return checkView(checkID, live.moduleID, live.check), nil
}

// SelectCheck answers an inline check. Only the first selection is applied.
func (s *SessionService) SelectCheck(checkID string, optionIndex int) (CheckView, bool, error) {
	live, err := s.lookupCheck(checkID)
	if err != nil {
		return CheckView{}, false, err
	}
	live.mu.Lock()
	defer live.mu.Unlock()

	applied := live.check.Select(optionIndex)
	live.touched = s.now()
	return checkView(checkID, live.moduleID, live.check), applied, nil
}

// ── Housekeeping ────────────────────────────────────────────────────────────

// EvictIdle drops sessions and checks untouched for longer than maxIdle and
// returns how many were removed.
func (s *SessionService) EvictIdle(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	var evictedSessions []string
	for sid, live := range s.sessions {
		live.mu.Lock()
		idle := live.touched.Before(cutoff)
		live.mu.Unlock()
		if idle {
			delete(s.sessions, sid)
			evictedSessions = append(evictedSessions, sid)
		}
	}
	evicted := len(evictedSessions)
	for cid, live := range s.checks {
		live.mu.Lock()
		idle := live.touched.Before(cutoff)
		live.mu.Unlock()
		if idle {
			delete(s.checks, cid)
			evicted++
		}
	}
	s.mu.Unlock()

	if s.recorder != nil {
		for _, sid := range evictedSessions {
			s.recorder.Forget(sid)
		}
	}
	if evicted > 0 {
		s.logger.Info("evicted idle instances", "count", evicted)
	}
	return evicted
}
