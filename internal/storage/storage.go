// Package storage persiste l'état de l'application sous forme de blob
// opaque, sous une clé fixe. Le core ne connaît pas le support de stockage :
// fichier JSON en local, table clé/valeur en Postgres.
package storage

import (
	"context"

	model "github.com/kanechan25/fitness-challenge-backend/internal/models"
)

// StateKey est la clé unique sous laquelle le snapshot est rangé
const StateKey = "fitness-challenge-store"

// envelopeVersion est incrémenté à chaque changement de format du blob
const envelopeVersion = 1

// envelope est le format sur disque / en base, versionné explicitement
type envelope struct {
	Version  int            `json:"version"`
	Snapshot model.Snapshot `json:"snapshot"`
}

type Store interface {
	// Save remplace le blob persisté par le snapshot donné
	Save(ctx context.Context, snap model.Snapshot) error
	// Load retourne le snapshot persisté, ou (nil, nil) s'il n'y en a pas
	Load(ctx context.Context) (*model.Snapshot, error)
	// Clear supprime le blob persisté
	Clear(ctx context.Context) error
}
