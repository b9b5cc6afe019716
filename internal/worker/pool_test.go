package worker_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/voltlearn/backend/internal/worker"
)

func TestPool_RunsEveryJob(t *testing.T) {
	pool := worker.NewPool[int](context.Background(), 3, 4)

	done := make(chan []worker.Result[int])
	go func() {
		var got []worker.Result[int]
		for r := range pool.Results() {
			got = append(got, r)
		}
		done <- got
	}()

	for i := 0; i < 10; i++ {
		n := i
		if err := pool.Submit(fmt.Sprintf("job-%d", n), func(ctx context.Context) int { return n * n }); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	pool.Close()

	got := <-done
	if len(got) != 10 {
		t.Fatalf("expected 10 results, got %d", len(got))
	}
	outputs := make([]int, len(got))
	for i, r := range got {
		outputs[i] = r.Output
	}
	sort.Ints(outputs)
	if outputs[9] != 81 {
		t.Errorf("expected largest output 81, got %d", outputs[9])
	}
}

func TestPool_SubmitAfterClose(t *testing.T) {
	pool := worker.NewPool[int](context.Background(), 1, 1)
	pool.Close()
	pool.Close()

	err := pool.Submit("late", func(ctx context.Context) int { return 0 })
	if !errors.Is(err, worker.ErrPoolClosed) {
		t.Errorf("expected ErrPoolClosed, got %v", err)
	}
}

func TestPool_PassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "voltlearn")
	pool := worker.NewPool[string](ctx, 1, 1)

	pool.Submit("ctx", func(ctx context.Context) string {
		v, _ := ctx.Value(key{}).(string)
		return v
	})
	r := <-pool.Results()
	pool.Close()

	if r.JobID != "ctx" || r.Output != "voltlearn" {
		t.Errorf("unexpected result %+v", r)
	}
}
