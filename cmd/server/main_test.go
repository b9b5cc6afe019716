package main

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"
)

func TestServe_WaitsForInFlightRequests(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var finished atomic.Bool

	server := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		finished.Store(true)
		w.WriteHeader(http.StatusNoContent)
	})}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	served := make(chan error, 1)
	go func() { served <- serve(ctx, server, ln, 5*time.Second, logger) }()

	go func() {
		resp, err := http.Get("http://" + ln.Addr().String() + "/")
		if err == nil {
			resp.Body.Close()
		}
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("request never reached the handler")
	}

	cancel()
	select {
	case err := <-served:
		t.Fatalf("serve returned before the request finished: %v", err)
	case <-time.After(100 * time.Millisecond):
	}

	close(release)
	select {
	case err := <-served:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after shutdown")
	}
	if !finished.Load() {
		t.Error("expected the in-flight request to complete before serve returned")
	}
}

func TestSweepInterval(t *testing.T) {
	tests := []struct {
		idle time.Duration
		want time.Duration
	}{
		{time.Nanosecond, time.Second},
		{3 * time.Nanosecond, time.Second},
		{2 * time.Second, time.Second},
		{2 * time.Hour, 30 * time.Minute},
	}

	for _, tt := range tests {
		if got := sweepInterval(tt.idle); got != tt.want {
			t.Errorf("sweepInterval(%v) = %v, want %v", tt.idle, got, tt.want)
		}
	}
}
