package pet

import (
	"context"
	"fmt"

	"petgame/internal/domain"
	"petgame/internal/domain/entity"
	"petgame/internal/infrastructure/persistence"
	"petgame/pkg/errcodes"
)

type PetRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*entity.Pet, error)
	ApplyAction(ctx context.Context, userID int64, change persistence.StatChange) (persistence.ActionResult, error)
}

type UserRepository interface {
	GetStats(ctx context.Context, userID int64) (*entity.User, error)
}

type InventoryRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]entity.InventoryItem, error)
}

type ProgressRepository interface {
	ListAchievements(ctx context.Context, userID int64) ([]entity.Achievement, error)
	ListQuests(ctx context.Context, userID int64) ([]entity.Quest, error)
}

// RewardEnqueuer ставит выплату квестовой награды в очередь. Выплата
// асинхронная, чтобы транзакция действия оставалась короткой.
type RewardEnqueuer interface {
	EnqueueQuestReward(ctx context.Context, userID int64, questName string) error
}

// State — консолидированный снимок для главного экрана. Четыре
// независимых чтения по user_id; сквозная консистентность между ними
// не гарантируется.
type State struct {
	Pet          entity.Pet
	User         entity.User
	Inventory    []entity.InventoryItem
	Achievements []entity.Achievement
	Quests       []entity.Quest
}

type Service struct {
	pets      PetRepository
	users     UserRepository
	inventory InventoryRepository
	progress  ProgressRepository
	rewards   RewardEnqueuer
}

func NewService(
	pets PetRepository,
	users UserRepository,
	inventory InventoryRepository,
	progress ProgressRepository,
	rewards RewardEnqueuer,
) *Service {
	return &Service{
		pets:      pets,
		users:     users,
		inventory: inventory,
		progress:  progress,
		rewards:   rewards,
	}
}

func (s *Service) GetState(ctx context.Context, userID int64) (*State, error) {
	pet, err := s.pets.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("pets.GetByUserID: %w", err)
	}

	user, err := s.users.GetStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("users.GetStats: %w", err)
	}

	inventory, err := s.inventory.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("inventory.ListByUser: %w", err)
	}

	achievements, err := s.progress.ListAchievements(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("progress.ListAchievements: %w", err)
	}

	quests, err := s.progress.ListQuests(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("progress.ListQuests: %w", err)
	}

	return &State{
		Pet:          *pet,
		User:         *user,
		Inventory:    inventory,
		Achievements: achievements,
		Quests:       quests,
	}, nil
}

const (
	ActionFeed = "feed"
	ActionPlay = "play"
	ActionHeal = "heal"
	ActionRest = "rest"
)

// changeByAction — дельты действий из оригинального баланса игры.
//
//nolint:gochecknoglobals
var changeByAction = map[string]persistence.StatChange{
	ActionFeed: {Hunger: 20, Happiness: 5, XP: 10, QuestName: entity.QuestFeedName},
	ActionPlay: {Happiness: 25, Energy: -15, XP: 15, QuestName: entity.QuestPlayName},
	ActionHeal: {Health: 30, XP: 5},
	ActionRest: {Energy: 40, XP: 5},
}

// ApplyAction применяет действие к питомцу. Если этим действием
// завершился квест, выплата награды уходит в очередь; сбой постановки
// не роняет уже состоявшееся действие.
func (s *Service) ApplyAction(ctx context.Context, userID int64, action string) (persistence.ActionResult, error) {
	change, ok := changeByAction[action]
	if !ok {
		return persistence.ActionResult{}, domain.NewError(errcodes.UnknownAction, "unknown action: "+action)
	}

	result, err := s.pets.ApplyAction(ctx, userID, change)
	if err != nil {
		return persistence.ActionResult{}, fmt.Errorf("pets.ApplyAction: %w", err)
	}

	if result.QuestCompleted {
		if err := s.rewards.EnqueueQuestReward(ctx, userID, change.QuestName); err != nil {
			logger(ctx).Error("rewards.EnqueueQuestReward", "error", err)
		}
	}

	return result, nil
}
