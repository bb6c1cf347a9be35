package model

import (
	"time"
)

// DailyProgress est une saisie quotidienne — une seule entrée par date
// (format YYYY-MM-DD) et par challenge
type DailyProgress struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
	Notes string  `json:"notes,omitempty"`
}

// UserProgress est le registre de progression d'un utilisateur sur un
// challenge. TotalProgress est toujours recalculé comme la somme des
// entrées, jamais patché
type UserProgress struct {
	ChallengeID   string          `json:"challengeId"`
	UserID        string          `json:"userId"`
	DailyEntries  []DailyProgress `json:"dailyEntries"`
	TotalProgress float64         `json:"totalProgress"`
	Rank          int             `json:"rank,omitempty"`
	Joined        time.Time       `json:"joined"`
	Completed     bool            `json:"completed"`
}

// ProgressInput contient une saisie de progression côté client
type ProgressInput struct {
	ChallengeID string  `json:"challengeId"`
	Date        string  `json:"date"`
	Value       float64 `json:"value"`
	Notes       string  `json:"notes,omitempty"`
}
