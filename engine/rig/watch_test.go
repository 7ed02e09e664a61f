package rig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchConfigDeliversReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cam.yaml")
	require.NoError(t, os.WriteFile(path, []byte("zoom_init_distance: 30\n"), 0o644))

	w, err := WatchConfig(path)
	require.NoError(t, err)
	defer w.Close()

	time.Sleep(150 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("zoom_init_distance: 42\n"), 0o644))

	select {
	case cfg := <-w.Configs:
		assert.InDelta(t, 42.0, cfg.ZoomInitDistance, 1e-6)
	case err := <-w.Errors:
		t.Fatalf("unexpected watch error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatchConfigReportsInvalidReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cam.yaml")
	require.NoError(t, os.WriteFile(path, []byte("zoom_init_distance: 30\n"), 0o644))

	w, err := WatchConfig(path)
	require.NoError(t, err)
	defer w.Close()

	time.Sleep(150 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("zoom_max_in: -5\n"), 0o644))

	select {
	case err := <-w.Errors:
		assert.ErrorIs(t, err, ErrInvalidConfig)
	case cfg := <-w.Configs:
		t.Fatalf("invalid config delivered: %+v", cfg)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for error")
	}
}

func TestWatchConfigIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cam.yaml")
	require.NoError(t, os.WriteFile(path, []byte("zoom_init_distance: 30\n"), 0o644))

	w, err := WatchConfig(path)
	require.NoError(t, err)
	defer w.Close()

	time.Sleep(150 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("zoom_init_distance: 99\n"), 0o644))

	select {
	case cfg := <-w.Configs:
		t.Fatalf("unexpected config from sibling write: %+v", cfg)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatchConfigCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cam.yaml")
	require.NoError(t, os.WriteFile(path, []byte("zoom_init_distance: 30\n"), 0o644))

	w, err := WatchConfig(path)
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
