package account

import (
	"petgame/internal/domain/entity"
	"petgame/internal/infrastructure/persistence"
)

// Имя ачивки, которая выдаётся сразу завершённой.
const achievementFirstFriend = "Первый друг"

// StarterBundle — фиксированный набор нового игрока. Имена и цифры
// согласованы с фронтендом, менять без него нельзя.
func StarterBundle() persistence.StarterBundle {
	return persistence.StarterBundle{
		Pet: entity.Pet{
			Name:      "Дружок",
			Type:      "dog",
			Level:     1,
			XP:        0,
			Hunger:    75,
			Happiness: 80,
			Health:    90,
			Energy:    65,
		},
		Achievements: []entity.Achievement{
			{Name: achievementFirstFriend, Completed: true},
			{Name: "Заботливый"},
			{Name: "Богач"},
		},
		Quests: []entity.Quest{
			{Name: entity.QuestFeedName, Goal: 3, Reward: 50},
			{Name: entity.QuestPlayName, Goal: 5, Reward: 75},
		},
		Items: []entity.InventoryItem{
			{Name: "Яблоко", Type: "food", Effect: 15, Quantity: 1},
			{Name: "Мяч", Type: "toy", Effect: 20, Quantity: 1},
		},
	}
}
