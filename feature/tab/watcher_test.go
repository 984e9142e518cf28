package tab

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingReloader struct {
	calls atomic.Int32
}

func (r *countingReloader) Reload(ctx context.Context) ReloadReport {
	r.calls.Add(1)
	return ReloadReport{}
}

func TestWatcher_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("default: {}\n"), 0o644))

	reloader := &countingReloader{}
	w := NewWatcher(path, 50*time.Millisecond, reloader, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yml"), []byte("x"), 0o644))

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("default:\n  tabTitle: changed\n"), 0o644))
	}

	assert.Eventually(t, func() bool { return reloader.calls.Load() >= 1 }, 2*time.Second, 20*time.Millisecond)

	// The burst of writes is debounced into a single reload.
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), reloader.calls.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "missing", "config.yml"), 0, &countingReloader{}, zap.NewNop())
	err := w.Run(context.Background())
	assert.Error(t, err)
}
