package model

import (
	"time"
)

// ChallengeType est la catégorie d'activité d'un challenge
type ChallengeType string

const (
	TypeSteps       ChallengeType = "steps"
	TypeDistance    ChallengeType = "distance"
	TypeCalories    ChallengeType = "calories"
	TypeWeightLoss  ChallengeType = "weight_loss"
	TypeWorkoutTime ChallengeType = "workout_time"
)

// Unit est l'unité de mesure de l'objectif quotidien
type Unit string

const (
	UnitSteps    Unit = "steps"
	UnitMiles    Unit = "miles"
	UnitCalories Unit = "calories"
	UnitPounds   Unit = "lbs"
	UnitMinutes  Unit = "minutes"
)

type Challenge struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Type         ChallengeType `json:"type"`
	Goal         float64       `json:"goal"`
	Unit         Unit          `json:"unit"`
	Duration     int           `json:"duration"` // en jours
	StartDate    time.Time     `json:"startDate"`
	EndDate      time.Time     `json:"endDate"`
	Participants []string      `json:"participants"`
	Creator      string        `json:"creator"`
	IsActive     bool          `json:"isActive"`
	Icon         string        `json:"icon,omitempty"`
}

// CreateChallengeInput contient les champs du formulaire de création
type CreateChallengeInput struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Type        ChallengeType `json:"type"`
	Goal        float64       `json:"goal"`
	Unit        Unit          `json:"unit"`
	Duration    int           `json:"duration"`
	StartDate   time.Time     `json:"startDate"`
	Icon        string        `json:"icon,omitempty"`
}
