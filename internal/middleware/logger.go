package middleware

import (
	"net/http"
	"time"

	"github.com/kanechan25/fitness-challenge-backend/internal/logger"
	"github.com/kanechan25/fitness-challenge-backend/internal/utils"
)

// LoggerMiddleware log toutes les requêtes HTTP
func LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		utils.LogRequest(r.Method, r.URL.Path, r.RemoteAddr)

		// Wrapper pour capturer le status code
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		logger.Request(r.Method, r.URL.Path, wrapped.statusCode, time.Since(start))
	})
}

// responseWriter wrapper pour capturer le status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
