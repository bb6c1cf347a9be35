package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/kanechan25/fitness-challenge-backend/internal/api"
	"github.com/kanechan25/fitness-challenge-backend/internal/config"
	"github.com/kanechan25/fitness-challenge-backend/internal/database"
	"github.com/kanechan25/fitness-challenge-backend/internal/handler"
	"github.com/kanechan25/fitness-challenge-backend/internal/logger"
	"github.com/kanechan25/fitness-challenge-backend/internal/middleware"
	"github.com/kanechan25/fitness-challenge-backend/internal/seed"
	"github.com/kanechan25/fitness-challenge-backend/internal/storage"
	"github.com/kanechan25/fitness-challenge-backend/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Choisir l'adaptateur de persistance
	var persist storage.Store
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		pool, err := database.ConnectPostgres(cfg)
		if err != nil {
			logger.Error("Database connection failed: %v", err)
			os.Exit(1)
		}
		defer pool.Close()

		persist, err = storage.NewPostgresStore(context.Background(), pool)
		if err != nil {
			logger.Error("Could not init postgres state store: %v", err)
			os.Exit(1)
		}
	default:
		persist = storage.NewFileStore(cfg.StoreFile)
	}

	// Restaurer l'état persisté puis semer le catalogue de démo si besoin.
	// Le hook de persistance est branché avant le Seed pour que le catalogue
	// semé soit écrit sans attendre une première mutation.
	st := store.New(seed.Users(time.Now()))
	snap, err := persist.Load(context.Background())
	if err != nil {
		logger.Error("Could not restore persisted state: %v", err)
		os.Exit(1)
	}
	if snap != nil {
		st.Restore(*snap)
		logger.Info("Restored persisted state (%d challenges)", len(snap.Challenges))
	}

	// Persistance débouncée, fire-and-forget
	flusher := storage.NewFlusher(persist, 500*time.Millisecond)
	defer flusher.Close()
	st.OnChange(flusher.Queue)

	st.Seed(seed.Challenges(time.Now()))

	// Initialize routes
	h := handler.New(st, persist, flusher)
	router := api.SetupRouter(h)

	// Wrap router with CORS middleware
	srv := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, srv); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
