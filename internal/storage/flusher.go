package storage

import (
	"context"
	"sync"
	"time"

	"github.com/kanechan25/fitness-challenge-backend/internal/logger"
	model "github.com/kanechan25/fitness-challenge-backend/internal/models"
)

// Flusher écrit les snapshots en arrière-plan, avec debounce : une rafale de
// mutations ne déclenche qu'une écriture, après une petite fenêtre de calme.
// Un crash entre une mutation et le flush perd au plus cette mutation.
type Flusher struct {
	store Store
	delay time.Duration

	ch      chan model.Snapshot
	discard chan chan struct{}
	done    chan struct{}
	wg      sync.WaitGroup
}

func NewFlusher(store Store, delay time.Duration) *Flusher {
	f := &Flusher{
		store:   store,
		delay:   delay,
		ch:      make(chan model.Snapshot, 1),
		discard: make(chan chan struct{}),
		done:    make(chan struct{}),
	}
	f.wg.Add(1)
	go f.run()
	return f
}

// Queue dépose un snapshot à persister. Seul le plus récent compte : si un
// snapshot attend déjà, il est remplacé.
func (f *Flusher) Queue(snap model.Snapshot) {
	for {
		select {
		case f.ch <- snap:
			return
		default:
			select {
			case <-f.ch:
			default:
			}
		}
	}
}

// Discard abandonne le snapshot en attente et désarme le timer, de façon
// synchrone : au retour, plus aucune écriture débouncée antérieure à l'appel
// ne peut atteindre le stockage. Utilisé par le reset pour qu'un flush
// retardé ne ressuscite jamais le blob après sa suppression.
func (f *Flusher) Discard() {
	ack := make(chan struct{})
	select {
	case f.discard <- ack:
		<-ack
	case <-f.done:
	}
}

// Close vide ce qui reste en attente puis arrête la goroutine de flush
func (f *Flusher) Close() {
	close(f.done)
	f.wg.Wait()
}

func (f *Flusher) run() {
	defer f.wg.Done()

	var pending *model.Snapshot
	timer := time.NewTimer(f.delay)
	if !timer.Stop() {
		<-timer.C
	}
	var timerC <-chan time.Time

	flush := func() {
		if pending == nil {
			return
		}
		if err := f.store.Save(context.Background(), *pending); err != nil {
			logger.Error("Could not persist state: %v", err)
		}
		pending = nil
	}

	for {
		select {
		case snap := <-f.ch:
			pending = &snap
			if timerC != nil && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(f.delay)
			timerC = timer.C
		case <-timerC:
			timerC = nil
			flush()
		case ack := <-f.discard:
			select {
			case <-f.ch:
			default:
			}
			pending = nil
			if timerC != nil {
				if !timer.Stop() {
					<-timer.C
				}
				timerC = nil
			}
			close(ack)
		case <-f.done:
			// récupérer un éventuel snapshot déposé mais pas encore lu
			select {
			case snap := <-f.ch:
				pending = &snap
			default:
			}
			flush()
			return
		}
	}
}
