package store

import "errors"

// Erreurs de précondition. Aucune d'entre elles ne laisse une mutation
// partielle : catalogue, registre et leaderboard restent intacts
var (
	ErrNotOnboarded      = errors.New("no local user: onboarding not completed")
	ErrChallengeNotFound = errors.New("challenge not found")
	ErrNotJoined         = errors.New("user has not joined this challenge")
	ErrAlreadyJoined     = errors.New("user already joined this challenge")
	ErrInvalidValue      = errors.New("progress value must be finite and non-negative")
	ErrInvalidDate       = errors.New("progress date must be YYYY-MM-DD")
)
