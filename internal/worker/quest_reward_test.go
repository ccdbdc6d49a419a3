package worker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	"petgame/internal/worker"
)

type fakeProgressRepo struct {
	paid [][2]any
	err  error
}

func (f *fakeProgressRepo) PayQuestReward(_ context.Context, userID int64, questName string) error {
	if f.err != nil {
		return f.err
	}

	f.paid = append(f.paid, [2]any{userID, questName})

	return nil
}

func TestQuestRewardTaskRoundTrip(t *testing.T) {
	rq := require.New(t)

	task, err := worker.NewQuestRewardTask(42, "Покорми питомца 3 раза")
	rq.NoError(err)
	rq.Equal(worker.TaskTypeQuestReward, task.Type())

	progress := &fakeProgressRepo{}
	handler := worker.NewQuestRewardHandler(progress)

	rq.NoError(handler.ProcessTask(context.Background(), task))
	rq.Len(progress.paid, 1)
	rq.Equal([2]any{int64(42), "Покорми питомца 3 раза"}, progress.paid[0])
}

func TestQuestRewardHandlerBadPayload(t *testing.T) {
	rq := require.New(t)

	handler := worker.NewQuestRewardHandler(&fakeProgressRepo{})

	task := asynq.NewTask(worker.TaskTypeQuestReward, []byte("{broken"))

	err := handler.ProcessTask(context.Background(), task)
	rq.Error(err)
	// Мусорный payload не подлежит ретраю.
	rq.True(errors.Is(err, asynq.SkipRetry))
}

func TestQuestRewardHandlerRepoError(t *testing.T) {
	rq := require.New(t)

	progress := &fakeProgressRepo{err: errors.New("db down")}
	handler := worker.NewQuestRewardHandler(progress)

	task, err := worker.NewQuestRewardTask(42, "Поиграй 5 раз")
	rq.NoError(err)

	rq.Error(handler.ProcessTask(context.Background(), task))
}
