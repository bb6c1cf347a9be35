package store

import (
	model "github.com/kanechan25/fitness-challenge-backend/internal/models"
)

// Join inscrit l'utilisateur local au challenge : création d'un registre de
// progression vierge et ajout de son identifiant aux participants.
//
// Rejoindre un challenge déjà rejoint retourne ErrAlreadyJoined au lieu de
// réinitialiser silencieusement la progression — choix documenté dans
// DESIGN.md.
func (s *Store) Join(challengeID string) error {
	s.mu.Lock()

	if s.user == nil {
		s.mu.Unlock()
		return ErrNotOnboarded
	}
	challenge := s.findChallengeLocked(challengeID)
	if challenge == nil {
		s.mu.Unlock()
		return ErrChallengeNotFound
	}
	if _, joined := s.userProgress[challengeID]; joined {
		s.mu.Unlock()
		return ErrAlreadyJoined
	}

	s.userProgress[challengeID] = &model.UserProgress{
		ChallengeID:  challengeID,
		UserID:       s.user.ID,
		DailyEntries: []model.DailyProgress{},
		Joined:       s.now(),
	}
	challenge.Participants = append(challenge.Participants, s.user.ID)
	s.mu.Unlock()

	s.notify()
	return nil
}

// Leave supprime le registre de progression (l'historique est jeté, pas
// archivé) et retire l'identifiant de l'utilisateur des participants
func (s *Store) Leave(challengeID string) error {
	s.mu.Lock()

	if s.user == nil {
		s.mu.Unlock()
		return ErrNotOnboarded
	}
	challenge := s.findChallengeLocked(challengeID)
	if challenge == nil {
		s.mu.Unlock()
		return ErrChallengeNotFound
	}
	if _, joined := s.userProgress[challengeID]; !joined {
		s.mu.Unlock()
		return ErrNotJoined
	}

	delete(s.userProgress, challengeID)
	filtered := challenge.Participants[:0]
	for _, id := range challenge.Participants {
		if id != s.user.ID {
			filtered = append(filtered, id)
		}
	}
	challenge.Participants = filtered
	s.mu.Unlock()

	s.notify()
	return nil
}

// Progress retourne le registre de progression de l'utilisateur local pour
// un challenge
func (s *Store) Progress(challengeID string) (model.UserProgress, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	up, ok := s.userProgress[challengeID]
	if !ok {
		return model.UserProgress{}, false
	}
	cp := *up
	cp.DailyEntries = append([]model.DailyProgress(nil), up.DailyEntries...)
	return cp, true
}
