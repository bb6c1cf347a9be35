package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	model "github.com/kanechan25/fitness-challenge-backend/internal/models"
	"github.com/kanechan25/fitness-challenge-backend/internal/seed"
	"github.com/kanechan25/fitness-challenge-backend/internal/store"
)

func TestLeaderboardUnknownChallengeIsNoOp(t *testing.T) {
	st := newTestStore(t, 0)
	st.Seed(seed.Challenges(testTime))

	require.ErrorIs(t, st.GenerateLeaderboard("nope"), store.ErrChallengeNotFound)
	_, ok := st.Leaderboard("nope")
	require.False(t, ok)
}

func TestZeroProgressUserIsExcluded(t *testing.T) {
	st := newTestStore(t, 0)
	st.Seed(seed.Challenges(testTime))
	user := onboard(t, st)
	require.NoError(t, st.Join("1"))

	// inscrit mais sans progression : jamais classé
	require.NoError(t, st.GenerateLeaderboard("1"))
	entries, _ := st.Leaderboard("1")
	require.Len(t, entries, 5)
	for _, e := range entries {
		require.NotEqual(t, user.ID, e.User.ID)
	}
}

func TestLeaderboardSizeBoundedByRoster(t *testing.T) {
	roster := seed.Users(testTime)[:3]
	st := store.New(roster,
		store.WithRand(&fixedRand{vals: []float64{0}}),
		store.WithClock(func() time.Time { return testTime }),
	)
	st.Seed(seed.Challenges(testTime))

	require.NoError(t, st.GenerateLeaderboard("1"))
	entries, _ := st.Leaderboard("1")
	require.Len(t, entries, 3)
}

func TestDenseRanksAndBadges(t *testing.T) {
	st := newTestStore(t, 0)
	st.Seed(seed.Challenges(testTime))

	require.NoError(t, st.GenerateLeaderboard("1"))
	entries, _ := st.Leaderboard("1")
	require.Len(t, entries, 5)

	badges := []string{"🥇", "🥈", "🥉", "", ""}
	for i, e := range entries {
		require.Equal(t, i+1, e.Rank)
		require.Equal(t, i+1, e.Progress.Rank)
		require.Equal(t, badges[i], e.Badge)
	}
}

func TestTiesBreakByUserID(t *testing.T) {
	// roster inversé + shuffle identité : seuls des totaux égaux, l'ordre
	// final ne peut venir que du départage par identifiant
	roster := seed.Users(testTime)[:5]
	for i, j := 0, len(roster)-1; i < j; i, j = i+1, j-1 {
		roster[i], roster[j] = roster[j], roster[i]
	}
	st := store.New(roster,
		store.WithRand(&fixedRand{vals: []float64{0.5}}),
		store.WithClock(func() time.Time { return testTime }),
	)
	st.Seed(seed.Challenges(testTime))

	require.NoError(t, st.GenerateLeaderboard("1"))
	entries, _ := st.Leaderboard("1")
	require.Len(t, entries, 5)
	for i := 1; i < len(entries); i++ {
		require.Equal(t, entries[i-1].Progress.TotalProgress, entries[i].Progress.TotalProgress)
		require.Less(t, entries[i-1].User.ID, entries[i].User.ID)
	}
}

func TestPoolRestrictedToParticipants(t *testing.T) {
	st := newTestStore(t, 0)
	st.Seed(seed.Challenges(testTime))

	// le challenge 2 du seed compte exactement 5 membres du roster
	require.NoError(t, st.GenerateLeaderboard("2"))
	entries, _ := st.Leaderboard("2")
	require.Len(t, entries, 5)

	allowed := map[string]bool{"user2": true, "user4": true, "user6": true, "user8": true, "user10": true}
	for _, e := range entries {
		require.True(t, allowed[e.User.ID], "unexpected competitor %s", e.User.ID)
	}
}

func TestPoolFallsBackToFullRoster(t *testing.T) {
	st := newTestStore(t, 0)
	st.Seed(seed.Challenges(testTime))

	// le challenge 4 n'a que 3 membres du roster : vivier complet, et le
	// shuffle identité prend les 5 premiers
	require.NoError(t, st.GenerateLeaderboard("4"))
	entries, _ := st.Leaderboard("4")
	require.Len(t, entries, 5)

	ids := map[string]bool{}
	for _, e := range entries {
		ids[e.User.ID] = true
	}
	for _, want := range []string{"user1", "user2", "user3", "user4", "user5"} {
		require.True(t, ids[want], "expected %s in fallback pool", want)
	}
}

func TestSyntheticTotalsFollowUnitRanges(t *testing.T) {
	// rnd alternant 0 et ~1 : les totaux doivent rester dans la plage de l'unité
	cases := []struct {
		unit model.Unit
		lo   float64
		hi   float64
	}{
		{model.UnitSteps, 0.5, 1.3},
		{model.UnitMiles, 0.4, 1.0},
		{model.UnitCalories, 0.3, 1.2},
		{model.UnitPounds, 0.2, 0.9},
		{model.UnitMinutes, 0.3, 1.1}, // plage par défaut
	}
	for _, tc := range cases {
		t.Run(string(tc.unit), func(t *testing.T) {
			st := newTestStore(t, 0, 0.999999)
			challenge := st.CreateChallenge(model.CreateChallengeInput{
				Name: "n", Description: "d", Type: model.TypeSteps,
				Goal: 100, Unit: tc.unit, Duration: 10,
			})
			require.NoError(t, st.GenerateLeaderboard(challenge.ID))
			entries, _ := st.Leaderboard(challenge.ID)
			require.Len(t, entries, 5)
			for _, e := range entries {
				got := e.Progress.TotalProgress
				require.GreaterOrEqual(t, got, 100*10*tc.lo)
				require.Less(t, got, 100*10*tc.hi)
			}
		})
	}
}

func TestLeaderboardReplacedWholesale(t *testing.T) {
	st := newTestStore(t, 0)
	st.Seed(seed.Challenges(testTime))
	user := onboard(t, st)
	require.NoError(t, st.Join("1"))
	require.NoError(t, st.RecordProgress(model.ProgressInput{
		ChallengeID: "1", Date: "2024-06-01", Value: 1e9,
	}))

	entries, _ := st.Leaderboard("1")
	require.Equal(t, user.ID, entries[0].User.ID)

	// après le départ, la regénération remplace tout : plus aucune trace
	// de l'utilisateur réel
	require.NoError(t, st.Leave("1"))
	require.NoError(t, st.GenerateLeaderboard("1"))
	entries, _ = st.Leaderboard("1")
	require.Len(t, entries, 5)
	for _, e := range entries {
		require.NotEqual(t, user.ID, e.User.ID)
	}
}
