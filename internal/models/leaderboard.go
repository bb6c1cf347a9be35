package model

type LeaderboardEntry struct {
	User     User         `json:"user"`
	Progress UserProgress `json:"progress"`
	Rank     int          `json:"rank"`
	Badge    string       `json:"badge,omitempty"`
}

// Snapshot est l'état persisté — les leaderboards n'en font pas partie,
// ils sont dérivés et regénérés à la demande
type Snapshot struct {
	User         *User                    `json:"user"`
	IsOnboarded  bool                     `json:"isOnboarded"`
	UserProgress map[string]*UserProgress `json:"userProgress"`
	Challenges   []Challenge              `json:"challenges"`
}
