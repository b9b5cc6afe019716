// internal/service/recorder.go
package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/voltlearn/backend/internal/store"
	"github.com/voltlearn/backend/internal/worker"
)

// Recorder persists submitted attempts asynchronously so that a learner's
// submit never waits on the database. It owns the per-session WaitGroups so
// the store stays a pure persistence layer.
type Recorder struct {
	store  store.Store
	pool   *worker.Pool[error]
	logger *slog.Logger
	done   chan struct{}

	mu      sync.Mutex
	pending map[string]*sync.WaitGroup // sessionID → WaitGroup
}

// NewRecorder starts workers goroutines writing to s.
// It uses context.Background because recording must not be cancelled when
// the originating HTTP request ends.
func NewRecorder(s store.Store, workers int, logger *slog.Logger) *Recorder {
	r := &Recorder{
		store:   s,
		pool:    worker.NewPool[error](context.Background(), workers, 64),
		logger:  logger,
		done:    make(chan struct{}),
		pending: make(map[string]*sync.WaitGroup),
	}
	go r.drain()
	return r
}

func (r *Recorder) drain() {
	defer close(r.done)
	for res := range r.pool.Results() {
		if res.Output != nil {
			r.logger.Error("failed to record attempt",
				"attempt_id", res.JobID,
				"error", res.Output,
			)
			continue
		}
		r.logger.Info("attempt recorded", "attempt_id", res.JobID)
	}
}

func (r *Recorder) waitGroup(sessionID string) *sync.WaitGroup {
	r.mu.Lock()
	defer r.mu.Unlock()
	wg, ok := r.pending[sessionID]
	if !ok {
		wg = &sync.WaitGroup{}
		r.pending[sessionID] = wg
	}
	return wg
}

// Record queues a for persistence.
func (r *Recorder) Record(a *store.Attempt) error {
	wg := r.waitGroup(a.SessionID)
	wg.Add(1)

	err := r.pool.Submit(a.ID, func(ctx context.Context) error {
		defer wg.Done()
		return r.store.SaveAttempt(ctx, a)
	})
	if err != nil {
		wg.Done()
		return err
	}
	return nil
}

// WaitForSession blocks until every attempt queued for a session is written.
func (r *Recorder) WaitForSession(sessionID string) {
	r.mu.Lock()
	wg, ok := r.pending[sessionID]
	r.mu.Unlock()

	if ok {
		wg.Wait()
	}
}

// Forget drops the WaitGroup of a discarded session.
func (r *Recorder) Forget(sessionID string) {
	r.WaitForSession(sessionID)
	r.mu.Lock()
	delete(r.pending, sessionID)
	r.mu.Unlock()
}

// Close flushes queued attempts and stops the workers.
func (r *Recorder) Close() {
	r.pool.Close()
	<-r.done
}
