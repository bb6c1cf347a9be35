package storage_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kanechan25/fitness-challenge-backend/internal/storage"
)

func TestFlusherDebouncesAndWritesLatest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	fs := storage.NewFileStore(path)

	flusher := storage.NewFlusher(fs, 20*time.Millisecond)
	defer flusher.Close()

	// rafale de mutations : seul le dernier snapshot doit finir sur disque
	flusher.Queue(testSnapshot(100))
	flusher.Queue(testSnapshot(200))
	flusher.Queue(testSnapshot(300))

	require.Eventually(t, func() bool {
		snap, err := fs.Load(context.Background())
		return err == nil && snap != nil && snap.UserProgress["1"].TotalProgress == 300
	}, time.Second, 5*time.Millisecond)
}

func TestFlusherDiscardDropsPending(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	fs := storage.NewFileStore(path)

	flusher := storage.NewFlusher(fs, 10*time.Millisecond)
	defer flusher.Close()

	flusher.Queue(testSnapshot(100))
	flusher.Discard()

	// bien après le délai de debounce : rien ne doit avoir été écrit
	time.Sleep(50 * time.Millisecond)
	snap, err := fs.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, snap)
}

func TestFlusherDiscardThenQueueStillWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	fs := storage.NewFileStore(path)

	flusher := storage.NewFlusher(fs, 10*time.Millisecond)
	defer flusher.Close()

	flusher.Queue(testSnapshot(100))
	flusher.Discard()
	flusher.Queue(testSnapshot(200))

	require.Eventually(t, func() bool {
		snap, err := fs.Load(context.Background())
		return err == nil && snap != nil && snap.UserProgress["1"].TotalProgress == 200
	}, time.Second, 5*time.Millisecond)
}

func TestFlusherCloseFlushesPending(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	fs := storage.NewFileStore(path)

	// délai volontairement long : le flush ne peut venir que de Close
	flusher := storage.NewFlusher(fs, time.Hour)
	flusher.Queue(testSnapshot(7500))
	flusher.Close()

	snap, err := fs.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, snap)
	require.Equal(t, 7500.0, snap.UserProgress["1"].TotalProgress)
}
