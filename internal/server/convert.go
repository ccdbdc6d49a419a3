package server

import (
	"petgame/internal/domain/entity"
	"petgame/internal/domain/service/pet"
	"petgame/pkg/lox"
	"petgame/pkg/rest"
)

func newRESTUser(user entity.User) rest.User {
	return rest.User{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
		Level:    user.Level,
		Coins:    user.Coins,
		XP:       user.XP,
	}
}

func newRESTPet(p entity.Pet) rest.Pet {
	return rest.Pet{
		ID:        p.ID,
		Name:      p.Name,
		Type:      p.Type,
		Level:     p.Level,
		XP:        p.XP,
		Hunger:    p.Hunger,
		Happiness: p.Happiness,
		Health:    p.Health,
		Energy:    p.Energy,
	}
}

func newRESTPetState(state *pet.State) rest.PetStateResponse {
	return rest.PetStateResponse{
		Pet: newRESTPet(state.Pet),
		User: rest.UserStats{
			Level: state.User.Level,
			Coins: state.User.Coins,
			XP:    state.User.XP,
		},
		Inventory:    lox.Map(state.Inventory, newRESTInventoryItem),
		Achievements: lox.Map(state.Achievements, newRESTAchievement),
		Quests:       lox.Map(state.Quests, newRESTQuest),
	}
}

func newRESTInventoryItem(item entity.InventoryItem) rest.InventoryItem {
	return rest.InventoryItem{
		Name:     item.Name,
		Type:     item.Type,
		Effect:   item.Effect,
		Quantity: item.Quantity,
	}
}

func newRESTAchievement(a entity.Achievement) rest.Achievement {
	return rest.Achievement{
		Name:      a.Name,
		Completed: a.Completed,
	}
}

func newRESTQuest(q entity.Quest) rest.Quest {
	return rest.Quest{
		Name:      q.Name,
		Progress:  q.Progress,
		Goal:      q.Goal,
		Reward:    q.Reward,
		Completed: q.Completed,
	}
}

// newRESTPetAction отдаёт только те характеристики, которые трогает
// действие, как это делает фронтенд.
func newRESTPetAction(action string, p entity.Pet) rest.PetActionResponse {
	resp := rest.PetActionResponse{XP: &p.XP}

	switch action {
	case pet.ActionFeed:
		resp.Hunger = &p.Hunger
		resp.Happiness = &p.Happiness
	case pet.ActionPlay:
		resp.Happiness = &p.Happiness
		resp.Energy = &p.Energy
	case pet.ActionHeal:
		resp.Health = &p.Health
	case pet.ActionRest:
		resp.Energy = &p.Energy
	}

	return resp
}

func newRESTTradeOffer(offer entity.TradeOffer) rest.TradeOffer {
	return rest.TradeOffer{
		ID:         offer.ID,
		ItemName:   offer.ItemName,
		ItemType:   offer.ItemType,
		Effect:     offer.Effect,
		Price:      offer.Price,
		Status:     string(offer.Status),
		SellerName: offer.SellerName,
		SellerID:   offer.SellerID,
	}
}

func newRESTTradeList(offers []entity.TradeOffer) rest.TradeListResponse {
	return rest.TradeListResponse{Offers: lox.Map(offers, newRESTTradeOffer)}
}

func newRESTLeaderboardPlayer(user entity.User) rest.LeaderboardPlayer {
	return rest.LeaderboardPlayer{
		Username: user.Username,
		Level:    user.Level,
		XP:       user.XP,
	}
}

func newRESTLeaderboard(users []entity.User) rest.LeaderboardResponse {
	return rest.LeaderboardResponse{Players: lox.Map(users, newRESTLeaderboardPlayer)}
}
