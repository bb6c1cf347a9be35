package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kanechan25/fitness-challenge-backend/internal/store"
	"github.com/kanechan25/fitness-challenge-backend/internal/utils"
)

// RequireOnboarded protège les routes d'écriture : sans utilisateur local,
// aucune mutation n'est acceptée. Il n'y a pas d'authentification au-delà de
// ce flag.
func RequireOnboarded(st *store.Store) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !st.IsOnboarded() {
				utils.Error(w, http.StatusForbidden, "onboarding not completed")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
