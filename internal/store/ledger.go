package store

import (
	"math"
	"time"

	model "github.com/kanechan25/fitness-challenge-backend/internal/models"
)

const dayLayout = "2006-01-02"

// RecordProgress insère ou remplace la saisie du jour (une seule entrée par
// date calendaire) puis recalcule le total comme la somme de toutes les
// entrées. Le leaderboard du challenge est regénéré dans la foulée pour que
// la position de l'utilisateur reflète immédiatement le nouveau total.
//
// Les valeurs négatives ou non finies et les dates mal formées sont rejetées
// avant toute écriture ; une précondition manquante laisse l'état intact.
func (s *Store) RecordProgress(input model.ProgressInput) error {
	if math.IsNaN(input.Value) || math.IsInf(input.Value, 0) || input.Value < 0 {
		return ErrInvalidValue
	}
	day, err := time.Parse(dayLayout, input.Date)
	if err != nil {
		return ErrInvalidDate
	}
	date := day.Format(dayLayout)

	s.mu.Lock()

	if s.user == nil {
		s.mu.Unlock()
		return ErrNotOnboarded
	}
	if s.findChallengeLocked(input.ChallengeID) == nil {
		s.mu.Unlock()
		return ErrChallengeNotFound
	}
	progress, joined := s.userProgress[input.ChallengeID]
	if !joined {
		s.mu.Unlock()
		return ErrNotJoined
	}

	entry := model.DailyProgress{Date: date, Value: input.Value, Notes: input.Notes}
	updated := false
	for i := range progress.DailyEntries {
		if progress.DailyEntries[i].Date == date {
			progress.DailyEntries[i] = entry
			updated = true
			break
		}
	}
	if !updated {
		progress.DailyEntries = append(progress.DailyEntries, entry)
	}

	// recalcul complet, jamais de patch incrémental
	total := 0.0
	for _, e := range progress.DailyEntries {
		total += e.Value
	}
	progress.TotalProgress = total

	s.generateLeaderboardLocked(input.ChallengeID)
	s.mu.Unlock()

	s.notify()
	return nil
}
