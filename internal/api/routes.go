package api

import (
	"net/http"

	"github.com/fatih/color"
	"github.com/gorilla/mux"

	"github.com/kanechan25/fitness-challenge-backend/internal/handler"
	"github.com/kanechan25/fitness-challenge-backend/internal/middleware"
	"github.com/kanechan25/fitness-challenge-backend/internal/utils"
)

func SetupRouter(h *handler.Handler) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.LoggerMiddleware)

	// Les écritures passent derrière le garde d'onboarding ; l'onboarding
	// lui-même et les lectures restent ouverts
	onboardedRoutes := r.PathPrefix("/").Subrouter()
	onboardedRoutes.Use(middleware.RequireOnboarded(h.Store))

	// Root - API documentation
	r.HandleFunc("/", h.RootHandler).Methods(http.MethodGet)

	// Onboarding
	r.HandleFunc("/onboarding", h.CompleteOnboarding).Methods(http.MethodPost)
	r.HandleFunc("/me", h.Me).Methods(http.MethodGet)
	r.HandleFunc("/reset", h.Reset).Methods(http.MethodPost)

	// Challenges
	r.HandleFunc("/challenges", h.GetChallenges).Methods(http.MethodGet)
	r.HandleFunc("/challenges/{id}", h.GetChallengeById).Methods(http.MethodGet)
	onboardedRoutes.HandleFunc("/challenges", h.CreateChallenge).Methods(http.MethodPost)
	onboardedRoutes.HandleFunc("/challenges/{id}/join", h.JoinChallenge).Methods(http.MethodPost)
	onboardedRoutes.HandleFunc("/challenges/{id}/leave", h.LeaveChallenge).Methods(http.MethodPost)

	// Progress
	onboardedRoutes.HandleFunc("/challenges/{id}/progress", h.RecordProgress).Methods(http.MethodPost)
	r.HandleFunc("/challenges/{id}/progress", h.GetProgress).Methods(http.MethodGet)

	// Leaderboard
	r.HandleFunc("/challenges/{id}/leaderboard", h.GetChallengeLeaderboard).Methods(http.MethodGet)

	// Users
	r.HandleFunc("/users", h.GetUsers).Methods(http.MethodGet)

	// Health check
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
