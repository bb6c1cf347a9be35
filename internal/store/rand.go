package store

import (
	"math/rand"
	"time"
)

// Rand est la source d'aléa du ranker. Les compétiteurs synthétiques sont du
// remplissage de présentation : l'injection permet de substituer une source
// déterministe dans les tests et d'asserter des classements exacts.
type Rand interface {
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

func defaultRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
