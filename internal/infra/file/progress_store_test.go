package file

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"radio-quiz/internal/domain"
)

func TestLoadDefaultsWhenMissingOrCorrupt(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store := NewProgressStore(filepath.Join(dir, "absent.json"))
	if got := store.Load(ctx); got != (domain.ProgressState{}) {
		t.Fatalf("expected zero state for absent file, got %+v", got)
	}

	for name, content := range map[string]string{
		"empty.json":    "",
		"garbage.json":  "{not json",
		"string.json":   `{"current_question_index":"three","score":1}`,
		"negative.json": `{"current_question_index":-4,"score":1}`,
	} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		if got := NewProgressStore(path).Load(ctx); got != (domain.ProgressState{}) {
			t.Fatalf("%s: expected zero state, got %+v", name, got)
		}
	}
}

func TestLoadMissingKeysDefaultToZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	if err := os.WriteFile(path, []byte(`{"score":5}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got := NewProgressStore(path).Load(context.Background())
	if got.CurrentIndex != 0 || got.Score != 5 {
		t.Fatalf("unexpected state %+v", got)
	}
}

func TestSaveWritesWireFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	store := NewProgressStore(path)

	if err := store.Save(context.Background(), domain.ProgressState{CurrentIndex: 2, Score: 1}); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != `{"current_question_index":2,"score":1}` {
		t.Fatalf("unexpected file content %s", data)
	}
}

func TestSaveOfLoadIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), DefaultPath)
	store := NewProgressStore(path)
	if err := store.Save(ctx, domain.ProgressState{CurrentIndex: 7, Score: 3}); err != nil {
		t.Fatalf("save: %v", err)
	}
	before, _ := os.ReadFile(path)

	if err := store.Save(ctx, store.Load(ctx)); err != nil {
		t.Fatalf("save: %v", err)
	}
	after, _ := os.ReadFile(path)
	if !bytes.Equal(before, after) {
		t.Fatalf("expected identical content, got %s vs %s", before, after)
	}
}

func TestDefaultPath(t *testing.T) {
	if got := NewProgressStore("").Path(); got != DefaultPath {
		t.Fatalf("expected %s, got %s", DefaultPath, got)
	}
}
