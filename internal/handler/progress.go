package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	model "github.com/kanechan25/fitness-challenge-backend/internal/models"
	"github.com/kanechan25/fitness-challenge-backend/internal/utils"
)

// RecordProgress upsert la saisie du jour puis retourne le registre à jour
func (h *Handler) RecordProgress(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var input model.ProgressInput
	if err := utils.DecodeJSON(r, &input); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	input.ChallengeID = vars["id"]

	if err := h.Store.RecordProgress(input); err != nil {
		storeError(w, err)
		return
	}

	progress, _ := h.Store.Progress(input.ChallengeID)
	utils.Success(w, progress)
}

// GetProgress retourne le registre de progression de l'utilisateur local
func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	progress, ok := h.Store.Progress(vars["id"])
	if !ok {
		utils.Error(w, http.StatusNotFound, "no progress for this challenge")
		return
	}
	utils.Success(w, progress)
}
