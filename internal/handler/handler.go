package handler

import (
	"errors"
	"net/http"

	"github.com/kanechan25/fitness-challenge-backend/internal/storage"
	"github.com/kanechan25/fitness-challenge-backend/internal/store"
	"github.com/kanechan25/fitness-challenge-backend/internal/utils"
)

// Discarder abandonne une écriture débouncée en attente — voir
// storage.Flusher.Discard
type Discarder interface {
	Discard()
}

// Handler relie la surface HTTP au store. Le contrat public est exactement
// les quatre écritures (join, leave, progress, create) plus l'onboarding, et
// les trois projections de lecture (catalogue, progression, leaderboard).
type Handler struct {
	Store   *store.Store
	Storage storage.Store
	Flusher Discarder
}

func New(st *store.Store, persist storage.Store, flusher Discarder) *Handler {
	return &Handler{Store: st, Storage: persist, Flusher: flusher}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}

// storeError traduit les erreurs de précondition du store en statut HTTP
func storeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotOnboarded):
		utils.Error(w, http.StatusForbidden, err.Error())
	case errors.Is(err, store.ErrChallengeNotFound):
		utils.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrAlreadyJoined), errors.Is(err, store.ErrNotJoined):
		utils.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrInvalidValue), errors.Is(err, store.ErrInvalidDate):
		utils.Error(w, http.StatusBadRequest, err.Error())
	default:
		utils.Error(w, http.StatusInternalServerError, err.Error())
	}
}
