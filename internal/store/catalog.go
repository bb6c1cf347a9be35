package store

import (
	"github.com/google/uuid"

	model "github.com/kanechan25/fitness-challenge-backend/internal/models"
)

// CreateChallenge assigne un identifiant frais, initialise une liste de
// participants vide et ajoute le challenge au catalogue. La date de fin est
// dérivée : début + durée en jours. La validation du formulaire (nom non
// vide, objectif et durée positifs) est un contrat de l'appelant.
func (s *Store) CreateChallenge(input model.CreateChallengeInput) model.Challenge {
	s.mu.Lock()

	start := input.StartDate
	if start.IsZero() {
		start = s.now()
	}

	creator := "FitnessApp"
	if s.user != nil {
		creator = s.user.Name
	}

	challenge := model.Challenge{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Description:  input.Description,
		Type:         input.Type,
		Goal:         input.Goal,
		Unit:         input.Unit,
		Duration:     input.Duration,
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, input.Duration),
		Participants: []string{},
		Creator:      creator,
		IsActive:     true,
		Icon:         input.Icon,
	}
	s.challenges = append(s.challenges, challenge)
	s.mu.Unlock()

	s.notify()
	return challenge
}

// Seed charge le catalogue de démonstration si le catalogue est vide (un
// snapshot restauré garde le sien), puis génère un leaderboard par challenge
func (s *Store) Seed(challenges []model.Challenge) {
	s.mu.Lock()
	if len(s.challenges) > 0 {
		s.mu.Unlock()
		return
	}
	s.challenges = make([]model.Challenge, len(challenges))
	for i, ch := range challenges {
		if ch.Participants == nil {
			ch.Participants = []string{}
		}
		s.challenges[i] = ch
	}
	for _, ch := range s.challenges {
		s.generateLeaderboardLocked(ch.ID)
	}
	s.mu.Unlock()

	s.notify()
}

// Challenges retourne une copie du catalogue
func (s *Store) Challenges() []model.Challenge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Challenge, len(s.challenges))
	for i, ch := range s.challenges {
		cp := ch
		cp.Participants = append([]string(nil), ch.Participants...)
		out[i] = cp
	}
	return out
}

// Challenge retourne un challenge du catalogue par identifiant
func (s *Store) Challenge(id string) (model.Challenge, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ch := s.findChallengeLocked(id)
	if ch == nil {
		return model.Challenge{}, false
	}
	cp := *ch
	cp.Participants = append([]string(nil), ch.Participants...)
	return cp, true
}

func (s *Store) findChallengeLocked(id string) *model.Challenge {
	for i := range s.challenges {
		if s.challenges[i].ID == id {
			return &s.challenges[i]
		}
	}
	return nil
}
