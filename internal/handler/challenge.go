package handler

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	model "github.com/kanechan25/fitness-challenge-backend/internal/models"
	"github.com/kanechan25/fitness-challenge-backend/internal/utils"
)

// GetChallenges retourne tout le catalogue
func (h *Handler) GetChallenges(w http.ResponseWriter, r *http.Request) {
	challenges := h.Store.Challenges()

	// filtre optionnel par type (?type=steps) ou actifs (?active=true)
	query := r.URL.Query()
	if t := query.Get("type"); t != "" {
		filtered := challenges[:0]
		for _, ch := range challenges {
			if string(ch.Type) == t {
				filtered = append(filtered, ch)
			}
		}
		challenges = filtered
	}
	if query.Get("active") == "true" {
		filtered := challenges[:0]
		for _, ch := range challenges {
			if ch.IsActive {
				filtered = append(filtered, ch)
			}
		}
		challenges = filtered
	}

	utils.Success(w, challenges)
}

// GetChallengeById retourne un challenge par identifiant
func (h *Handler) GetChallengeById(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	challenge, ok := h.Store.Challenge(vars["id"])
	if !ok {
		utils.Error(w, http.StatusNotFound, "challenge not found")
		return
	}
	utils.Success(w, challenge)
}

// CreateChallenge valide le formulaire puis ajoute le challenge au catalogue.
// La validation vit ici, pas dans le catalogue : contrat de l'appelant.
func (h *Handler) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	var input model.CreateChallengeInput
	if err := utils.DecodeJSON(r, &input); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(input.Name) == "" {
		utils.Error(w, http.StatusBadRequest, "name is required")
		return
	}
	if strings.TrimSpace(input.Description) == "" {
		utils.Error(w, http.StatusBadRequest, "description is required")
		return
	}
	if input.Goal <= 0 {
		utils.Error(w, http.StatusBadRequest, "goal must be positive")
		return
	}
	if input.Duration <= 0 {
		utils.Error(w, http.StatusBadRequest, "duration must be positive")
		return
	}

	challenge := h.Store.CreateChallenge(input)
	utils.Created(w, challenge)
}

// JoinChallenge inscrit l'utilisateur local au challenge
func (h *Handler) JoinChallenge(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.Store.Join(vars["id"]); err != nil {
		storeError(w, err)
		return
	}
	utils.Message(w, "challenge joined")
}

// LeaveChallenge désinscrit l'utilisateur local et jette sa progression
func (h *Handler) LeaveChallenge(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.Store.Leave(vars["id"]); err != nil {
		storeError(w, err)
		return
	}
	utils.Message(w, "challenge left")
}
