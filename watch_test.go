package routegen_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/routegen"
)

func TestWatchRegeneratesOnWrite(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "app.routes")
	if err := os.WriteFile(src, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	regens := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- routegen.Watch(ctx, src, func() error {
			regens <- struct{}{}
			return nil
		})
	}()

	// Give the watcher a moment to register before touching the file.
	time.Sleep(200 * time.Millisecond)
	if err := os.WriteFile(src, []byte(`{ "/" index GET }`), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-regens:
	case <-ctx.Done():
		t.Fatal("no regeneration before timeout")
	}

	cancel()
	err := <-done
	assert.True(t, errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded))
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "app.routes")
	if err := os.WriteFile(src, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	regens := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- routegen.Watch(ctx, src, func() error {
			regens <- struct{}{}
			return nil
		})
	}()

	time.Sleep(200 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-regens:
		t.Fatal("regenerated for an unrelated file")
	case <-time.After(500 * time.Millisecond):
	}

	cancel()
	<-done
}
