package pet_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"petgame/internal/domain"
	"petgame/internal/domain/entity"
	"petgame/internal/domain/service/pet"
	"petgame/internal/infrastructure/persistence"
	"petgame/pkg/errcodes"
)

type fakePetRepo struct {
	pet        *entity.Pet
	lastChange persistence.StatChange
	result     persistence.ActionResult
	applyErr   error
}

func (f *fakePetRepo) GetByUserID(_ context.Context, _ int64) (*entity.Pet, error) {
	if f.pet == nil {
		return nil, domain.NewError(errcodes.PetNotFound, "pet not found")
	}

	return f.pet, nil
}

func (f *fakePetRepo) ApplyAction(_ context.Context, _ int64, change persistence.StatChange) (persistence.ActionResult, error) {
	f.lastChange = change

	if f.applyErr != nil {
		return persistence.ActionResult{}, f.applyErr
	}

	return f.result, nil
}

type fakeUserRepo struct {
	user *entity.User
}

func (f *fakeUserRepo) GetStats(_ context.Context, _ int64) (*entity.User, error) {
	return f.user, nil
}

type fakeInventoryRepo struct {
	items []entity.InventoryItem
}

func (f *fakeInventoryRepo) ListByUser(_ context.Context, _ int64) ([]entity.InventoryItem, error) {
	return f.items, nil
}

type fakeProgressRepo struct {
	achievements []entity.Achievement
	quests       []entity.Quest
}

func (f *fakeProgressRepo) ListAchievements(_ context.Context, _ int64) ([]entity.Achievement, error) {
	return f.achievements, nil
}

func (f *fakeProgressRepo) ListQuests(_ context.Context, _ int64) ([]entity.Quest, error) {
	return f.quests, nil
}

type fakeEnqueuer struct {
	enqueued []string
	err      error
}

func (f *fakeEnqueuer) EnqueueQuestReward(_ context.Context, _ int64, questName string) error {
	if f.err != nil {
		return f.err
	}

	f.enqueued = append(f.enqueued, questName)

	return nil
}

type fixture struct {
	pets      *fakePetRepo
	users     *fakeUserRepo
	inventory *fakeInventoryRepo
	progress  *fakeProgressRepo
	rewards   *fakeEnqueuer
	svc       *pet.Service
}

func newFixture() *fixture {
	f := &fixture{
		pets: &fakePetRepo{
			pet: &entity.Pet{ID: 1, UserID: 42, Name: "Дружок", Type: "dog", Level: 1, Hunger: 75},
		},
		users:     &fakeUserRepo{user: &entity.User{ID: 42, Level: 1, Coins: 100}},
		inventory: &fakeInventoryRepo{items: []entity.InventoryItem{{Name: "Яблоко", Type: "food"}}},
		progress: &fakeProgressRepo{
			achievements: []entity.Achievement{{Name: "Первый друг", Completed: true}},
			quests:       []entity.Quest{{Name: entity.QuestFeedName, Goal: 3}},
		},
		rewards: &fakeEnqueuer{},
	}
	f.svc = pet.NewService(f.pets, f.users, f.inventory, f.progress, f.rewards)

	return f
}

func TestGetState(t *testing.T) {
	rq := require.New(t)

	f := newFixture()

	state, err := f.svc.GetState(context.Background(), 42)
	rq.NoError(err)
	rq.Equal("Дружок", state.Pet.Name)
	rq.EqualValues(100, state.User.Coins)
	rq.Len(state.Inventory, 1)
	rq.Len(state.Achievements, 1)
	rq.Len(state.Quests, 1)
}

func TestGetStateNoPet(t *testing.T) {
	rq := require.New(t)

	f := newFixture()
	f.pets.pet = nil

	_, err := f.svc.GetState(context.Background(), 42)
	rq.True(domain.IsCode(err, errcodes.PetNotFound))
}

func TestApplyActionDeltas(t *testing.T) {
	testCases := []struct {
		action string
		change persistence.StatChange
	}{
		{
			action: pet.ActionFeed,
			change: persistence.StatChange{Hunger: 20, Happiness: 5, XP: 10, QuestName: entity.QuestFeedName},
		},
		{
			action: pet.ActionPlay,
			change: persistence.StatChange{Happiness: 25, Energy: -15, XP: 15, QuestName: entity.QuestPlayName},
		},
		{
			action: pet.ActionHeal,
			change: persistence.StatChange{Health: 30, XP: 5},
		},
		{
			action: pet.ActionRest,
			change: persistence.StatChange{Energy: 40, XP: 5},
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.action, func(t *testing.T) {
			rq := require.New(t)

			f := newFixture()

			_, err := f.svc.ApplyAction(context.Background(), 42, tc.action)
			rq.NoError(err)
			rq.Equal(tc.change, f.pets.lastChange)
		})
	}
}

func TestApplyActionUnknown(t *testing.T) {
	rq := require.New(t)

	f := newFixture()

	_, err := f.svc.ApplyAction(context.Background(), 42, "dance")
	rq.True(domain.IsCode(err, errcodes.UnknownAction))
}

func TestApplyActionEnqueuesReward(t *testing.T) {
	rq := require.New(t)

	f := newFixture()
	f.pets.result = persistence.ActionResult{
		Pet:            *f.pets.pet,
		QuestCompleted: true,
		QuestReward:    50,
	}

	_, err := f.svc.ApplyAction(context.Background(), 42, pet.ActionFeed)
	rq.NoError(err)
	rq.Equal([]string{entity.QuestFeedName}, f.rewards.enqueued)
}

func TestApplyActionNoRewardWithoutQuest(t *testing.T) {
	rq := require.New(t)

	f := newFixture()

	_, err := f.svc.ApplyAction(context.Background(), 42, pet.ActionHeal)
	rq.NoError(err)
	rq.Empty(f.rewards.enqueued)
}

func TestApplyActionEnqueueFailureDoesNotFailAction(t *testing.T) {
	rq := require.New(t)

	f := newFixture()
	f.pets.result = persistence.ActionResult{Pet: *f.pets.pet, QuestCompleted: true}
	f.rewards.err = errors.New("queue down")

	result, err := f.svc.ApplyAction(context.Background(), 42, pet.ActionFeed)
	rq.NoError(err)
	rq.True(result.QuestCompleted)
}
