package testutil

import (
	"testing"

	"github.com/fcosta/horas/internal/kvstore"
)

// NewTestKV creates a key-value store rooted in a per-test temp directory.
func NewTestKV(t *testing.T) *kvstore.Store {
	t.Helper()
	kv, err := kvstore.Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create test kv store: %v", err)
	}
	return kv
}
