package store

import (
	"sort"

	model "github.com/kanechan25/fitness-challenge-backend/internal/models"
)

// GenerateLeaderboard recalcule en entier le top 5 d'un challenge en
// mélangeant des compétiteurs synthétiques du roster avec la progression
// réelle de l'utilisateur local. Le résultat remplace l'ancien leaderboard
// en bloc.
func (s *Store) GenerateLeaderboard(challengeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generateLeaderboardLocked(challengeID)
}

type candidate struct {
	user     model.User
	progress model.UserProgress
}

func (s *Store) generateLeaderboardLocked(challengeID string) error {
	challenge := s.findChallengeLocked(challengeID)
	if challenge == nil {
		return ErrChallengeNotFound
	}

	// vivier : le roster entier, sauf si au moins 5 membres du roster sont
	// déjà participants du challenge — dans ce cas on se restreint à eux
	pool := s.roster
	if len(challenge.Participants) > 0 {
		members := make(map[string]bool, len(challenge.Participants))
		for _, id := range challenge.Participants {
			members[id] = true
		}
		var participants []model.User
		for _, u := range s.roster {
			if members[u.ID] {
				participants = append(participants, u)
			}
		}
		if len(participants) >= 5 {
			pool = participants
		}
	}

	shuffled := make([]model.User, len(pool))
	copy(shuffled, pool)
	s.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if len(shuffled) > 5 {
		shuffled = shuffled[:5]
	}

	candidates := make([]candidate, 0, len(shuffled)+1)
	for _, u := range shuffled {
		total := challenge.Goal * float64(challenge.Duration) * s.multiplier(challenge.Unit)
		candidates = append(candidates, candidate{
			user: u,
			progress: model.UserProgress{
				ChallengeID:   challengeID,
				UserID:        u.ID,
				DailyEntries:  []model.DailyProgress{},
				TotalProgress: total,
				Joined:        s.now(),
			},
		})
	}

	// l'utilisateur local n'entre en compétition qu'avec une progression
	// strictement positive — un participant à zéro n'est jamais classé
	if s.user != nil {
		if up, joined := s.userProgress[challengeID]; joined && up.TotalProgress > 0 {
			cp := *up
			cp.DailyEntries = append([]model.DailyProgress(nil), up.DailyEntries...)
			candidates = append(candidates, candidate{user: *s.user, progress: cp})
		}
	}

	// tri décroissant par total ; égalité départagée par identifiant
	// croissant plutôt que par stabilité de tri
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].progress.TotalProgress != candidates[j].progress.TotalProgress {
			return candidates[i].progress.TotalProgress > candidates[j].progress.TotalProgress
		}
		return candidates[i].user.ID < candidates[j].user.ID
	})

	if len(candidates) > 5 {
		candidates = candidates[:5]
	}

	entries := make([]model.LeaderboardEntry, len(candidates))
	for i, c := range candidates {
		rank := i + 1
		c.progress.Rank = rank
		entries[i] = model.LeaderboardEntry{
			User:     c.user,
			Progress: c.progress,
			Rank:     rank,
			Badge:    badgeForRank(rank),
		}
	}
	s.leaderboards[challengeID] = entries
	return nil
}

func badgeForRank(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return ""
	}
}

// multiplier tire un multiplicateur plausible selon l'unité du challenge
func (s *Store) multiplier(unit model.Unit) float64 {
	switch unit {
	case model.UnitSteps:
		return 0.5 + s.rnd.Float64()*0.8 // 50-130%
	case model.UnitMiles:
		return 0.4 + s.rnd.Float64()*0.6 // 40-100%
	case model.UnitCalories:
		return 0.3 + s.rnd.Float64()*0.9 // 30-120%
	case model.UnitPounds:
		return 0.2 + s.rnd.Float64()*0.7 // 20-90%
	default:
		return 0.3 + s.rnd.Float64()*0.8
	}
}

// Leaderboard retourne le classement courant d'un challenge
func (s *Store) Leaderboard(challengeID string) ([]model.LeaderboardEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries, ok := s.leaderboards[challengeID]
	if !ok {
		return nil, false
	}
	out := make([]model.LeaderboardEntry, len(entries))
	copy(out, entries)
	return out, true
}
