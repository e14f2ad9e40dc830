package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/grovetools/navpanel/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *recorder) record(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

func (r *recorder) get() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func startWatcher(t *testing.T, files []string, rec *recorder) {
	t.Helper()
	testutil.IsolateHome(t)

	w, err := New(files, 50*time.Millisecond, rec.record)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
}

func TestWatcherReportsBurstOnce(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "navpanel.yml", testutil.ModulesYAML)

	rec := &recorder{}
	startWatcher(t, []string{path}, rec)

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte(testutil.ModulesYAMLFor("A", "A", "B")), 0644))
	}

	testutil.Eventually(t, 2*time.Second, func() bool { return len(rec.get()) > 0 }, "change reported")
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, []string{path}, rec.get())
}

func TestWatcherSeesAtomicSave(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "navpanel.yml", testutil.ModulesYAML)

	rec := &recorder{}
	startWatcher(t, []string{path}, rec)

	tmp := testutil.WriteFile(t, dir, ".navpanel.yml.swp", testutil.ModulesYAMLFor("B", "A", "B"))
	require.NoError(t, os.Rename(tmp, path))

	testutil.Eventually(t, 2*time.Second, func() bool { return len(rec.get()) > 0 }, "rename reported")
	assert.Equal(t, path, rec.get()[0])
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "navpanel.yml", testutil.ModulesYAML)

	rec := &recorder{}
	startWatcher(t, []string{path}, rec)

	testutil.WriteFile(t, dir, "notes.txt", "unrelated")
	time.Sleep(200 * time.Millisecond)
	assert.Empty(t, rec.get())
}

func TestNewFailsForMissingDirectory(t *testing.T) {
	testutil.IsolateHome(t)

	_, err := New([]string{filepath.Join(t.TempDir(), "missing", "navpanel.yml")}, 0, nil)
	assert.Error(t, err)
}
