package handler

import (
	"net/http"

	"github.com/kanechan25/fitness-challenge-backend/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func (h *Handler) RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "Fitness Challenge API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"onboarding": []map[string]string{
				{"method": "POST", "path": "/onboarding", "description": "Terminer l'onboarding et créer l'utilisateur local"},
				{"method": "GET", "path": "/me", "description": "Récupérer l'utilisateur local"},
				{"method": "POST", "path": "/reset", "description": "Réinitialiser le store et le blob persisté"},
			},
			"challenges": []map[string]string{
				{"method": "GET", "path": "/challenges", "description": "Récupérer le catalogue (filtres ?type= et ?active=true)"},
				{"method": "GET", "path": "/challenges/{id}", "description": "Récupérer un challenge par ID"},
				{"method": "POST", "path": "/challenges", "description": "Créer un challenge"},
				{"method": "POST", "path": "/challenges/{id}/join", "description": "Rejoindre un challenge"},
				{"method": "POST", "path": "/challenges/{id}/leave", "description": "Quitter un challenge (progression jetée)"},
			},
			"progress": []map[string]string{
				{"method": "POST", "path": "/challenges/{id}/progress", "description": "Enregistrer la saisie du jour (upsert par date)"},
				{"method": "GET", "path": "/challenges/{id}/progress", "description": "Récupérer la progression de l'utilisateur local"},
			},
			"leaderboard": []map[string]string{
				{"method": "GET", "path": "/challenges/{id}/leaderboard", "description": "Top 5 du challenge"},
			},
			"users": []map[string]string{
				{"method": "GET", "path": "/users", "description": "Roster de démonstration"},
			},
			"system": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check"},
			},
		},
	}

	utils.Success(w, routes)
}
