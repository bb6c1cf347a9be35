package storage_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	model "github.com/kanechan25/fitness-challenge-backend/internal/models"
	"github.com/kanechan25/fitness-challenge-backend/internal/seed"
	"github.com/kanechan25/fitness-challenge-backend/internal/storage"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testSnapshot(total float64) model.Snapshot {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	user := seed.Users(now)[0]
	return model.Snapshot{
		User:        &user,
		IsOnboarded: true,
		UserProgress: map[string]*model.UserProgress{
			"1": {
				ChallengeID:   "1",
				UserID:        user.ID,
				DailyEntries:  []model.DailyProgress{{Date: "2024-06-01", Value: total}},
				TotalProgress: total,
				Joined:        now,
			},
		},
		Challenges: seed.Challenges(now),
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	fs := storage.NewFileStore(path)
	ctx := context.Background()

	// rien de persisté : (nil, nil), pas une erreur
	snap, err := fs.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, snap)

	want := testSnapshot(4200)
	require.NoError(t, fs.Save(ctx, want))

	got, err := fs.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.True(t, got.IsOnboarded)
	require.Equal(t, want.User.ID, got.User.ID)
	require.Equal(t, 4200.0, got.UserProgress["1"].TotalProgress)
	require.Len(t, got.Challenges, 5)
}

func TestFileStoreSaveReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	fs := storage.NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, fs.Save(ctx, testSnapshot(100)))
	require.NoError(t, fs.Save(ctx, testSnapshot(250)))

	got, err := fs.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 250.0, got.UserProgress["1"].TotalProgress)
}

func TestFileStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	fs := storage.NewFileStore(path)
	ctx := context.Background()

	// clear sans blob : silencieux
	require.NoError(t, fs.Clear(ctx))

	require.NoError(t, fs.Save(ctx, testSnapshot(100)))
	require.NoError(t, fs.Clear(ctx))

	snap, err := fs.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, snap)
}
