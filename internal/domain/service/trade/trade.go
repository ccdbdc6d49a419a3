package trade

import (
	"context"
	"fmt"

	"petgame/internal/domain"
	"petgame/internal/domain/entity"
	"petgame/pkg/errcodes"
)

type OfferRepository interface {
	ListActive(ctx context.Context, excludeSellerID int64, limit int) ([]entity.TradeOffer, error)
	CreateEscrowed(ctx context.Context, offer *entity.TradeOffer) error
	Purchase(ctx context.Context, offerID, buyerID int64) error
	Cancel(ctx context.Context, offerID, sellerID int64) error
}

type UserRepository interface {
	PurchaseShopItem(ctx context.Context, userID int64, item entity.ShopItem) error
}

const offerPageSize = 20

// shopCatalog — фиксированный ассортимент магазина, как на фронтенде.
//
//nolint:gochecknoglobals
var shopCatalog = map[string]entity.ShopItem{
	"Пицца":    {Name: "Пицца", Type: "food", Effect: 30, Price: 35},
	"Кость":    {Name: "Кость", Type: "toy", Effect: 25, Price: 40},
	"Витамины": {Name: "Витамины", Type: "health", Effect: 40, Price: 50},
}

type Service struct {
	offers OfferRepository
	users  UserRepository
}

func NewService(offers OfferRepository, users UserRepository) *Service {
	return &Service{
		offers: offers,
		users:  users,
	}
}

// ListOffers показывает до 20 активных лотов, без лотов самого
// пользователя. Ноль — сентинел "смотрю без логина".
func (s *Service) ListOffers(ctx context.Context, userID int64) ([]entity.TradeOffer, error) {
	offers, err := s.offers.ListActive(ctx, userID, offerPageSize)
	if err != nil {
		return nil, fmt.Errorf("offers.ListActive: %w", err)
	}

	return offers, nil
}

// CreateOffer выставляет предмет на продажу, эскроуя его из инвентаря.
func (s *Service) CreateOffer(ctx context.Context, sellerID int64, itemName, itemType string, effect int, price int64) (*entity.TradeOffer, error) {
	if sellerID == 0 || itemName == "" {
		return nil, domain.NewError(errcodes.ValidationError, "user_id and item_name are required")
	}

	if price <= 0 {
		return nil, domain.NewError(errcodes.ValidationError, "price must be positive")
	}

	offer := &entity.TradeOffer{
		SellerID: sellerID,
		ItemName: itemName,
		ItemType: itemType,
		Effect:   effect,
		Price:    price,
	}

	if err := s.offers.CreateEscrowed(ctx, offer); err != nil {
		return nil, fmt.Errorf("offers.CreateEscrowed: %w", err)
	}

	return offer, nil
}

func (s *Service) Buy(ctx context.Context, buyerID, offerID int64) error {
	if buyerID == 0 || offerID == 0 {
		return domain.NewError(errcodes.ValidationError, "user_id and offer_id are required")
	}

	if err := s.offers.Purchase(ctx, offerID, buyerID); err != nil {
		return fmt.Errorf("offers.Purchase: %w", err)
	}

	return nil
}

func (s *Service) CancelOffer(ctx context.Context, sellerID, offerID int64) error {
	if sellerID == 0 || offerID == 0 {
		return domain.NewError(errcodes.ValidationError, "user_id and offer_id are required")
	}

	if err := s.offers.Cancel(ctx, offerID, sellerID); err != nil {
		return fmt.Errorf("offers.Cancel: %w", err)
	}

	return nil
}

// BuyShopItem — покупка из магазина с фиксированными ценами.
func (s *Service) BuyShopItem(ctx context.Context, userID int64, itemName string) error {
	if userID == 0 || itemName == "" {
		return domain.NewError(errcodes.ValidationError, "user_id and item_name are required")
	}

	item, ok := shopCatalog[itemName]
	if !ok {
		return domain.NewError(errcodes.UnknownShopItem, "unknown shop item: "+itemName)
	}

	if err := s.users.PurchaseShopItem(ctx, userID, item); err != nil {
		return fmt.Errorf("users.PurchaseShopItem: %w", err)
	}

	return nil
}
