// Package store est le conteneur d'état de l'application : catalogue de
// challenges, registre de progression, leaderboards dérivés. Toutes les
// mutations sont synchrones et atomiques sous un même verrou ; la persistance
// est déléguée à un hook observant les snapshots.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	model "github.com/kanechan25/fitness-challenge-backend/internal/models"
)

type Store struct {
	mu sync.RWMutex

	// notifyMu sérialise la prise de snapshot et sa livraison au hook :
	// deux écritures concurrentes livrent leurs snapshots dans l'ordre où
	// ils ont été pris, jamais croisés.
	notifyMu sync.Mutex

	user         *model.User
	isOnboarded  bool
	challenges   []model.Challenge
	userProgress map[string]*model.UserProgress
	leaderboards map[string][]model.LeaderboardEntry

	roster []model.User
	rnd    Rand
	now    func() time.Time

	// onChange reçoit un snapshot après chaque mutation persistable
	onChange func(model.Snapshot)
}

type Option func(*Store)

// WithRand remplace la source d'aléa du ranker (fixture dans les tests)
func WithRand(r Rand) Option {
	return func(s *Store) { s.rnd = r }
}

// WithClock remplace l'horloge (fixture dans les tests)
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New crée un store vide. Le roster est le vivier de compétiteurs du
// leaderboard — voir seed.Users pour le roster de démonstration.
func New(roster []model.User, opts ...Option) *Store {
	s := &Store{
		userProgress: make(map[string]*model.UserProgress),
		leaderboards: make(map[string][]model.LeaderboardEntry),
		roster:       roster,
		rnd:          defaultRand(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnChange enregistre le hook de persistance. Il est appelé hors verrou,
// avec un snapshot déjà copié.
func (s *Store) OnChange(fn func(model.Snapshot)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// CompleteOnboarding crée l'utilisateur local et lève le flag onboarded
func (s *Store) CompleteOnboarding(input model.OnboardingInput) model.User {
	s.mu.Lock()
	user := model.User{
		ID:                   uuid.NewString(),
		Name:                 input.Name,
		Email:                input.Email,
		Avatar:               "👤",
		JoinedAt:             s.now(),
		FitnessGoals:         input.FitnessGoals,
		PreferredUnits:       input.PreferredUnits,
		NotificationsEnabled: input.NotificationsEnabled,
	}
	s.user = &user
	s.isOnboarded = true
	s.mu.Unlock()

	s.notify()
	return user
}

// User retourne l'utilisateur local, s'il existe
func (s *Store) User() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

func (s *Store) IsOnboarded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isOnboarded
}

// Roster retourne le vivier de compétiteurs
func (s *Store) Roster() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, len(s.roster))
	copy(out, s.roster)
	return out
}

// Snapshot retourne une copie profonde de l'état persistable. Les
// leaderboards sont dérivés et ne font pas partie du snapshot.
func (s *Store) Snapshot() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() model.Snapshot {
	snap := model.Snapshot{
		IsOnboarded:  s.isOnboarded,
		UserProgress: make(map[string]*model.UserProgress, len(s.userProgress)),
		Challenges:   make([]model.Challenge, len(s.challenges)),
	}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	for id, up := range s.userProgress {
		cp := *up
		cp.DailyEntries = append([]model.DailyProgress(nil), up.DailyEntries...)
		snap.UserProgress[id] = &cp
	}
	for i, ch := range s.challenges {
		cp := ch
		cp.Participants = append([]string(nil), ch.Participants...)
		snap.Challenges[i] = cp
	}
	return snap
}

// Restore remplace l'état persistable par un snapshot restauré du stockage.
// Les listes de participants absentes sont normalisées en listes vides pour
// que le reste du code n'ait jamais à s'en défendre.
func (s *Store) Restore(snap model.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = snap.User
	s.isOnboarded = snap.IsOnboarded
	s.challenges = make([]model.Challenge, len(snap.Challenges))
	for i, ch := range snap.Challenges {
		if ch.Participants == nil {
			ch.Participants = []string{}
		}
		s.challenges[i] = ch
	}
	s.userProgress = make(map[string]*model.UserProgress, len(snap.UserProgress))
	for id, up := range snap.UserProgress {
		cp := *up
		if cp.DailyEntries == nil {
			cp.DailyEntries = []model.DailyProgress{}
		}
		s.userProgress[id] = &cp
	}
	s.leaderboards = make(map[string][]model.LeaderboardEntry)
}

// Reset ramène le store à son état initial. Aucun snapshot n'est émis : la
// suppression du blob persisté revient à l'adaptateur de stockage (Clear).
func (s *Store) Reset() {
	s.mu.Lock()
	s.user = nil
	s.isOnboarded = false
	s.challenges = nil
	s.userProgress = make(map[string]*model.UserProgress)
	s.leaderboards = make(map[string][]model.LeaderboardEntry)
	s.mu.Unlock()
}

// notify envoie un snapshot au hook de persistance, hors verrou d'état.
// notifyMu couvre la prise du snapshot et l'appel du hook, pour que l'ordre
// de livraison soit l'ordre des snapshots.
func (s *Store) notify() {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.RLock()
	fn := s.onChange
	var snap model.Snapshot
	if fn != nil {
		snap = s.snapshotLocked()
	}
	s.mu.RUnlock()

	if fn != nil {
		fn(snap)
	}
}
