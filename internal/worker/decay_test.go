package worker_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"petgame/internal/worker"
)

type fakePetRepo struct {
	sweeps atomic.Int64

	lastHunger    atomic.Int64
	lastHappiness atomic.Int64
	lastEnergy    atomic.Int64
}

func (f *fakePetRepo) DecayAll(_ context.Context, hunger, happiness, energy int) (int64, error) {
	f.sweeps.Add(1)
	f.lastHunger.Store(int64(hunger))
	f.lastHappiness.Store(int64(happiness))
	f.lastEnergy.Store(int64(energy))

	return 3, nil
}

func TestStatDecaySweeps(t *testing.T) {
	rq := require.New(t)

	pets := &fakePetRepo{}
	decay := worker.NewStatDecay(pets, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())

	rq.NoError(decay.Start(ctx))

	rq.Eventually(func() bool {
		return pets.sweeps.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	decay.Stop()

	rq.EqualValues(5, pets.lastHunger.Load())
	rq.EqualValues(3, pets.lastHappiness.Load())
	rq.EqualValues(4, pets.lastEnergy.Load())
}

func TestStatDecayCustomDeltas(t *testing.T) {
	rq := require.New(t)

	pets := &fakePetRepo{}
	decay := worker.NewStatDecay(pets, 10*time.Millisecond).
		WithDeltas(worker.DecayDeltas{Hunger: 1, Happiness: 2, Energy: 3})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rq.NoError(decay.Start(ctx))

	rq.Eventually(func() bool {
		return pets.sweeps.Load() >= 1
	}, time.Second, 5*time.Millisecond)

	decay.Stop()

	rq.EqualValues(1, pets.lastHunger.Load())
	rq.EqualValues(2, pets.lastHappiness.Load())
	rq.EqualValues(3, pets.lastEnergy.Load())
}

func TestStatDecayDoubleStart(t *testing.T) {
	rq := require.New(t)

	decay := worker.NewStatDecay(&fakePetRepo{}, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rq.NoError(decay.Start(ctx))
	rq.Error(decay.Start(ctx))

	decay.Stop()

	// После остановки воркер можно запустить снова.
	rq.NoError(decay.Start(ctx))
	decay.Stop()
}
