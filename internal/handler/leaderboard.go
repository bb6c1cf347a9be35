package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kanechan25/fitness-challenge-backend/internal/utils"
)

// GetChallengeLeaderboard retourne le top 5 d'un challenge. Le classement
// est généré à la demande s'il n'existe pas encore (il n'est jamais
// persisté), puis resservi tel quel jusqu'à la prochaine saisie.
func (h *Handler) GetChallengeLeaderboard(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	challengeID := vars["id"]

	entries, ok := h.Store.Leaderboard(challengeID)
	if !ok {
		if err := h.Store.GenerateLeaderboard(challengeID); err != nil {
			storeError(w, err)
			return
		}
		entries, _ = h.Store.Leaderboard(challengeID)
	}

	utils.Success(w, entries)
}
