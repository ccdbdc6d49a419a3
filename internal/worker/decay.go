package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"petgame/pkg/contextx"
)

type PetRepository interface {
	DecayAll(ctx context.Context, hunger, happiness, energy int) (int64, error)
}

// DecayDeltas — на сколько проседают характеристики за один проход.
type DecayDeltas struct {
	Hunger    int
	Happiness int
	Energy    int
}

// DefaultDecayDeltas повторяет баланс фронтенда.
func DefaultDecayDeltas() DecayDeltas {
	return DecayDeltas{Hunger: 5, Happiness: 3, Energy: 4}
}

// StatDecay периодически применяет угасание ко всем питомцам.
type StatDecay struct {
	pets     PetRepository
	deltas   DecayDeltas
	interval time.Duration

	// Control fields
	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewStatDecay(pets PetRepository, interval time.Duration) *StatDecay {
	return &StatDecay{
		pets:     pets,
		deltas:   DefaultDecayDeltas(),
		interval: interval,
	}
}

func (w *StatDecay) WithDeltas(deltas DecayDeltas) *StatDecay {
	w.deltas = deltas
	return w
}

func (w *StatDecay) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return errors.New("decay worker is already running")
	}

	decayCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isRunning = true

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			w.isRunning = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()

		if err := w.Run(decayCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(decayCtx).Error("decay worker stopped", "error", err)
		}
	}()

	return nil
}

func (w *StatDecay) Stop() {
	w.mu.Lock()

	if !w.isRunning {
		w.mu.Unlock()
		return
	}

	if w.cancelFunc != nil {
		w.cancelFunc()
	}

	w.mu.Unlock()

	w.wg.Wait()
}

func (w *StatDecay) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.sweep(ctx); err != nil {
				// Одиночный сбой не роняет воркер.
				logger(ctx).Error("decay sweep failed", "error", err)
			}
		}
	}
}

func (w *StatDecay) sweep(ctx context.Context) error {
	affected, err := w.pets.DecayAll(ctx, w.deltas.Hunger, w.deltas.Happiness, w.deltas.Energy)
	if err != nil {
		return fmt.Errorf("pets.DecayAll: %w", err)
	}

	logger(ctx).Debug("decay sweep done", "pets", affected)

	return nil
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
