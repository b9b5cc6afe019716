package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/voltlearn/backend/internal/service"
	"github.com/voltlearn/backend/internal/store"
	"github.com/voltlearn/backend/internal/worker"
)

func TestRecorder_WaitForSession(t *testing.T) {
	db := openStore(t)
	r := service.NewRecorder(db, 3, discardLogger())
	defer r.Close()

	for i := 0; i < 5; i++ {
		a := &store.Attempt{
			ID:          fmt.Sprintf("a%d", i),
			SessionID:   "s1",
			BankID:      "m1",
			Score:       i,
			Total:       5,
			CompletedAt: time.Now(),
		}
		if err := r.Record(a); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}
	r.WaitForSession("s1")

	attempts, err := db.ListAttempts(context.Background(), "m1", 0)
	if err != nil {
		t.Fatalf("list attempts: %v", err)
	}
	if len(attempts) != 5 {
		t.Errorf("expected 5 attempts after wait, got %d", len(attempts))
	}
}

func TestRecorder_WaitForUnknownSessionReturns(t *testing.T) {
	r := service.NewRecorder(openStore(t), 1, discardLogger())
	defer r.Close()

	done := make(chan struct{})
	go func() {
		r.WaitForSession("never-recorded")
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitForSession blocked on an unknown session")
	}
}

func TestRecorder_RecordAfterClose(t *testing.T) {
	r := service.NewRecorder(openStore(t), 1, discardLogger())
	r.Close()

	err := r.Record(&store.Attempt{ID: "late", SessionID: "s1", BankID: "m1", CompletedAt: time.Now()})
	if !errors.Is(err, worker.ErrPoolClosed) {
		t.Errorf("expected ErrPoolClosed, got %v", err)
	}
	// The failed submission must not leave the session waiting.
	r.WaitForSession("s1")
}
