package handler

import (
	"context"
	"net/http"
	"strings"

	model "github.com/kanechan25/fitness-challenge-backend/internal/models"
	"github.com/kanechan25/fitness-challenge-backend/internal/utils"
)

// CompleteOnboarding crée l'utilisateur local et lève le flag onboarded
func (h *Handler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	var input model.OnboardingInput
	if err := utils.DecodeJSON(r, &input); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(input.Name) == "" {
		utils.Error(w, http.StatusBadRequest, "name is required")
		return
	}
	if strings.TrimSpace(input.Email) == "" {
		utils.Error(w, http.StatusBadRequest, "email is required")
		return
	}
	if input.PreferredUnits == "" {
		input.PreferredUnits = model.UnitsMetric
	}

	user := h.Store.CompleteOnboarding(input)
	utils.Created(w, user)
}

// Me retourne l'utilisateur local
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.Store.User()
	if !ok {
		utils.Error(w, http.StatusNotFound, "no local user")
		return
	}
	utils.Success(w, user)
}

// Reset vide le store et supprime le blob persisté. Le snapshot débouncé
// éventuellement en attente est abandonné avant le Clear, sinon un flush
// retardé recréerait le blob juste après sa suppression.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	h.Store.Reset()
	if h.Flusher != nil {
		h.Flusher.Discard()
	}
	if err := h.Storage.Clear(context.Background()); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not clear persisted state")
		return
	}
	utils.Message(w, "store reset")
}
