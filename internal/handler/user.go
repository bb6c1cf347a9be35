package handler

import (
	"net/http"

	"github.com/kanechan25/fitness-challenge-backend/internal/utils"
)

// GetUsers retourne le roster de démonstration (le vivier de compétiteurs)
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, h.Store.Roster())
}
