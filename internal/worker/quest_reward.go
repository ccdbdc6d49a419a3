package worker

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"
)

const TaskTypeQuestReward = "quest:reward"

type questRewardPayload struct {
	UserID    int64  `json:"user_id"`
	QuestName string `json:"quest_name"`
}

func NewQuestRewardTask(userID int64, questName string) (*asynq.Task, error) {
	payload, err := jsoniter.Marshal(questRewardPayload{UserID: userID, QuestName: questName})
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	return asynq.NewTask(TaskTypeQuestReward, payload, asynq.MaxRetry(5)), nil
}

type ProgressRepository interface {
	PayQuestReward(ctx context.Context, userID int64, questName string) error
}

// QuestRewardHandler начисляет монеты за выполненный квест.
// Повторная доставка безопасна: выплата помечается в той же транзакции.
type QuestRewardHandler struct {
	progress ProgressRepository
}

func NewQuestRewardHandler(progress ProgressRepository) *QuestRewardHandler {
	return &QuestRewardHandler{progress: progress}
}

func (h *QuestRewardHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var p questRewardPayload
	if err := jsoniter.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	if err := h.progress.PayQuestReward(ctx, p.UserID, p.QuestName); err != nil {
		return fmt.Errorf("progress.PayQuestReward: %w", err)
	}

	logger(ctx).Info("quest reward paid", "userID", p.UserID, "quest", p.QuestName)

	return nil
}

// QuestRewardEnqueuer кладёт задачу на выплату в очередь.
type QuestRewardEnqueuer struct {
	client *asynq.Client
}

func NewQuestRewardEnqueuer(client *asynq.Client) *QuestRewardEnqueuer {
	return &QuestRewardEnqueuer{client: client}
}

func (e *QuestRewardEnqueuer) EnqueueQuestReward(ctx context.Context, userID int64, questName string) error {
	task, err := NewQuestRewardTask(userID, questName)
	if err != nil {
		return err
	}

	if _, err := e.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("enqueue %s: %w", TaskTypeQuestReward, err)
	}

	return nil
}
