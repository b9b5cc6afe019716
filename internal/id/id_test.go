package id_test

import (
	"testing"

	"github.com/voltlearn/backend/internal/id"
)

func TestGenerateID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		v := id.GenerateID()
		if len(v) != 32 {
			t.Fatalf("expected 32 characters, got %d (%q)", len(v), v)
		}
		if seen[v] {
			t.Fatalf("duplicate id %q", v)
		}
		seen[v] = true
	}
}
