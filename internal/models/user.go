package model

import (
	"time"
)

// UnitSystem est le système d'unités préféré de l'utilisateur
type UnitSystem string

const (
	UnitsMetric   UnitSystem = "metric"
	UnitsImperial UnitSystem = "imperial"
)

type User struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	Email                string          `json:"email"`
	Avatar               string          `json:"avatar,omitempty"`
	JoinedAt             time.Time       `json:"joinedAt"`
	FitnessGoals         []ChallengeType `json:"fitnessGoals"`
	PreferredUnits       UnitSystem      `json:"preferredUnits"`
	NotificationsEnabled bool            `json:"notificationsEnabled"`
}

// OnboardingInput contient les données saisies à la fin de l'onboarding
type OnboardingInput struct {
	Name                 string          `json:"name"`
	Email                string          `json:"email"`
	FitnessGoals         []ChallengeType `json:"fitnessGoals"`
	PreferredUnits       UnitSystem      `json:"preferredUnits"`
	NotificationsEnabled bool            `json:"notificationsEnabled"`
}
