// Package seed fournit le catalogue de démonstration et le roster fixe
// d'utilisateurs. Ce sont des fixtures échangeables, pas un contrat du core :
// le store les reçoit en entrée.
package seed

import (
	"time"

	model "github.com/kanechan25/fitness-challenge-backend/internal/models"
)

// Challenges retourne le catalogue initial, avec des dates relatives à now
func Challenges(now time.Time) []model.Challenge {
	return []model.Challenge{
		{
			ID:           "1",
			Name:         "30-Day Step Challenge",
			Description:  "Walk 10,000 steps daily for 30 days. Join friends and track your progress!",
			Type:         model.TypeSteps,
			Goal:         10000,
			Unit:         model.UnitSteps,
			Duration:     30,
			StartDate:    now,
			EndDate:      now.AddDate(0, 0, 30),
			Participants: []string{"user1", "user2", "user3", "user4", "user5", "user6", "user7"},
			Creator:      "FitnessApp",
			IsActive:     true,
			Icon:         "🚶",
		},
		{
			ID:           "2",
			Name:         "Marathon Prep",
			Description:  "Run 5 miles daily building up to marathon distance",
			Type:         model.TypeDistance,
			Goal:         5,
			Unit:         model.UnitMiles,
			Duration:     21,
			StartDate:    now.AddDate(0, 0, -2),
			EndDate:      now.AddDate(0, 0, 21),
			Participants: []string{"user2", "user4", "user6", "user8", "user10"},
			Creator:      "RunClub",
			IsActive:     true,
			Icon:         "🏃",
		},
		{
			ID:           "3",
			Name:         "Calorie Crusher",
			Description:  "Burn 500 calories daily through any activity",
			Type:         model.TypeCalories,
			Goal:         500,
			Unit:         model.UnitCalories,
			Duration:     18,
			StartDate:    now.AddDate(0, 0, -1),
			EndDate:      now.AddDate(0, 0, 18),
			Participants: []string{"user1", "user3", "user5", "user7", "user9", "user10"},
			Creator:      "FitnessGuru",
			IsActive:     true,
			Icon:         "🔥",
		},
		{
			ID:           "4",
			Name:         "Weight Loss Journey",
			Description:  "Lose 1 pound per week in a supportive community",
			Type:         model.TypeWeightLoss,
			Goal:         1,
			Unit:         model.UnitPounds,
			Duration:     28,
			StartDate:    now.AddDate(0, 0, -5),
			EndDate:      now.AddDate(0, 0, 28),
			Participants: []string{"user3", "user6", "user9"},
			Creator:      "HealthCoach",
			IsActive:     true,
			Icon:         "⚖️",
		},
		{
			ID:           "5",
			Name:         "Workout Time",
			Description:  "Workout for 30 minutes daily for 21 days",
			Type:         model.TypeWorkoutTime,
			Goal:         30,
			Unit:         model.UnitMinutes,
			Duration:     21,
			StartDate:    now.AddDate(0, 0, -10),
			EndDate:      now.AddDate(0, 0, 21),
			Participants: []string{"user1", "user2", "user5", "user6", "user8", "user9", "user10"},
			Creator:      "FitnessApp",
			IsActive:     true,
			Icon:         "💪",
		},
	}
}

// Users retourne le roster fixe servant de vivier de compétiteurs
func Users(now time.Time) []model.User {
	return []model.User{
		{ID: "user1", Name: "Alex Johnson", Email: "alex@example.com", Avatar: "👨‍💼", JoinedAt: now,
			FitnessGoals: []model.ChallengeType{model.TypeSteps, model.TypeCalories}, PreferredUnits: model.UnitsImperial, NotificationsEnabled: true},
		{ID: "user2", Name: "Sarah Chen", Email: "sarah@example.com", Avatar: "👩‍🦳", JoinedAt: now,
			FitnessGoals: []model.ChallengeType{model.TypeDistance, model.TypeWorkoutTime}, PreferredUnits: model.UnitsMetric, NotificationsEnabled: true},
		{ID: "user3", Name: "Mike Rodriguez", Email: "mike@example.com", Avatar: "👨‍🎓", JoinedAt: now,
			FitnessGoals: []model.ChallengeType{model.TypeWeightLoss, model.TypeCalories}, PreferredUnits: model.UnitsImperial, NotificationsEnabled: false},
		{ID: "user4", Name: "Emma Davis", Email: "emma@example.com", Avatar: "👩‍💻", JoinedAt: now,
			FitnessGoals: []model.ChallengeType{model.TypeDistance, model.TypeSteps}, PreferredUnits: model.UnitsMetric, NotificationsEnabled: true},
		{ID: "user5", Name: "David Wilson", Email: "david@example.com", Avatar: "👨‍🔧", JoinedAt: now,
			FitnessGoals: []model.ChallengeType{model.TypeWorkoutTime, model.TypeCalories}, PreferredUnits: model.UnitsImperial, NotificationsEnabled: true},
		{ID: "user6", Name: "John Doe", Email: "john@example.com", Avatar: "👨‍💼", JoinedAt: now,
			FitnessGoals: []model.ChallengeType{model.TypeSteps, model.TypeWeightLoss}, PreferredUnits: model.UnitsMetric, NotificationsEnabled: false},
		{ID: "user7", Name: "Jane Smith", Email: "jane@example.com", Avatar: "👩‍💼", JoinedAt: now,
			FitnessGoals: []model.ChallengeType{model.TypeCalories, model.TypeWorkoutTime}, PreferredUnits: model.UnitsImperial, NotificationsEnabled: true},
		{ID: "user8", Name: "Michael Brown", Email: "michael@example.com", Avatar: "👨‍💼", JoinedAt: now,
			FitnessGoals: []model.ChallengeType{model.TypeDistance, model.TypeSteps}, PreferredUnits: model.UnitsMetric, NotificationsEnabled: true},
		{ID: "user9", Name: "Emily Johnson", Email: "emily@example.com", Avatar: "👩‍💼", JoinedAt: now,
			FitnessGoals: []model.ChallengeType{model.TypeWeightLoss, model.TypeWorkoutTime}, PreferredUnits: model.UnitsImperial, NotificationsEnabled: false},
		{ID: "user10", Name: "Robert Lee", Email: "robert@example.com", Avatar: "👨‍💼", JoinedAt: now,
			FitnessGoals: []model.ChallengeType{model.TypeSteps, model.TypeCalories, model.TypeDistance}, PreferredUnits: model.UnitsMetric, NotificationsEnabled: true},
	}
}
