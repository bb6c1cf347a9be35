package store_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	model "github.com/kanechan25/fitness-challenge-backend/internal/models"
	"github.com/kanechan25/fitness-challenge-backend/internal/seed"
	"github.com/kanechan25/fitness-challenge-backend/internal/store"
)

func TestRecordProgressUpsertsByDate(t *testing.T) {
	st := newTestStore(t, 0)
	st.Seed(seed.Challenges(testTime))
	onboard(t, st)
	require.NoError(t, st.Join("1"))

	require.NoError(t, st.RecordProgress(model.ProgressInput{
		ChallengeID: "1", Date: "2024-01-01", Value: 100,
	}))
	require.NoError(t, st.RecordProgress(model.ProgressInput{
		ChallengeID: "1", Date: "2024-01-01", Value: 150, Notes: "corrected",
	}))

	progress, _ := st.Progress("1")
	require.Len(t, progress.DailyEntries, 1)
	require.Equal(t, "2024-01-01", progress.DailyEntries[0].Date)
	require.Equal(t, 150.0, progress.DailyEntries[0].Value)
	require.Equal(t, "corrected", progress.DailyEntries[0].Notes)
	require.Equal(t, 150.0, progress.TotalProgress)
}

func TestTotalAlwaysEqualsSumOfEntries(t *testing.T) {
	st := newTestStore(t, 0)
	st.Seed(seed.Challenges(testTime))
	onboard(t, st)
	require.NoError(t, st.Join("1"))

	inputs := []model.ProgressInput{
		{ChallengeID: "1", Date: "2024-01-01", Value: 100},
		{ChallengeID: "1", Date: "2024-01-02", Value: 250},
		{ChallengeID: "1", Date: "2024-01-03", Value: 0},
		{ChallengeID: "1", Date: "2024-01-02", Value: 50}, // remplacement
	}
	for _, in := range inputs {
		require.NoError(t, st.RecordProgress(in))

		progress, _ := st.Progress("1")
		sum := 0.0
		for _, e := range progress.DailyEntries {
			sum += e.Value
		}
		require.Equal(t, sum, progress.TotalProgress)
	}

	progress, _ := st.Progress("1")
	require.Len(t, progress.DailyEntries, 3)
	require.Equal(t, 150.0, progress.TotalProgress)
}

func TestRecordProgressRejectsBadInput(t *testing.T) {
	st := newTestStore(t, 0)
	st.Seed(seed.Challenges(testTime))
	onboard(t, st)
	require.NoError(t, st.Join("1"))

	cases := []struct {
		name  string
		input model.ProgressInput
		want  error
	}{
		{"negative", model.ProgressInput{ChallengeID: "1", Date: "2024-01-01", Value: -5}, store.ErrInvalidValue},
		{"nan", model.ProgressInput{ChallengeID: "1", Date: "2024-01-01", Value: math.NaN()}, store.ErrInvalidValue},
		{"inf", model.ProgressInput{ChallengeID: "1", Date: "2024-01-01", Value: math.Inf(1)}, store.ErrInvalidValue},
		{"bad date", model.ProgressInput{ChallengeID: "1", Date: "01/01/2024", Value: 10}, store.ErrInvalidDate},
		{"empty date", model.ProgressInput{ChallengeID: "1", Value: 10}, store.ErrInvalidDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, st.RecordProgress(tc.input), tc.want)

			progress, _ := st.Progress("1")
			require.Empty(t, progress.DailyEntries)
			require.Equal(t, 0.0, progress.TotalProgress)
		})
	}
}

func TestRecordProgressPreconditions(t *testing.T) {
	st := newTestStore(t, 0)
	st.Seed(seed.Challenges(testTime))

	require.ErrorIs(t, st.RecordProgress(model.ProgressInput{
		ChallengeID: "1", Date: "2024-01-01", Value: 10,
	}), store.ErrNotOnboarded)

	onboard(t, st)
	require.ErrorIs(t, st.RecordProgress(model.ProgressInput{
		ChallengeID: "nope", Date: "2024-01-01", Value: 10,
	}), store.ErrChallengeNotFound)

	// inscrit nulle part : la saisie est refusée sans toucher l'état
	require.ErrorIs(t, st.RecordProgress(model.ProgressInput{
		ChallengeID: "1", Date: "2024-01-01", Value: 10,
	}), store.ErrNotJoined)
	_, ok := st.Progress("1")
	require.False(t, ok)
}

func TestRecordProgressRefreshesLeaderboard(t *testing.T) {
	st := newTestStore(t, 0)
	st.Seed(seed.Challenges(testTime))
	user := onboard(t, st)
	require.NoError(t, st.Join("1"))

	// total énorme : l'utilisateur doit apparaître en tête dès la saisie
	require.NoError(t, st.RecordProgress(model.ProgressInput{
		ChallengeID: "1", Date: "2024-06-01", Value: 1e9,
	}))

	entries, ok := st.Leaderboard("1")
	require.True(t, ok)
	require.Equal(t, user.ID, entries[0].User.ID)
	require.Equal(t, 1e9, entries[0].Progress.TotalProgress)
	require.Equal(t, 1, entries[0].Progress.Rank)
}
