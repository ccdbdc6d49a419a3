package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"petgame/internal/domain"
	"petgame/internal/domain/entity"
	"petgame/pkg/errcodes"
	"petgame/pkg/httpx/reply"
	"petgame/pkg/httpx/req"
	"petgame/pkg/rest"
)

type tradeService interface {
	ListOffers(ctx context.Context, userID int64) ([]entity.TradeOffer, error)
	CreateOffer(ctx context.Context, sellerID int64, itemName, itemType string, effect int, price int64) (*entity.TradeOffer, error)
	Buy(ctx context.Context, buyerID, offerID int64) error
	CancelOffer(ctx context.Context, sellerID, offerID int64) error
	BuyShopItem(ctx context.Context, userID int64, itemName string) error
}

type TradeServer struct {
	tradeService tradeService
}

func NewTradeServer(tradeService tradeService) TradeServer {
	return TradeServer{
		tradeService: tradeService,
	}
}

const (
	tradeActionCreateOffer = "create_offer"
	tradeActionBuy         = "buy"
	tradeActionCancelOffer = "cancel_offer"
	tradeActionBuyItem     = "buy_item"
)

func (s TradeServer) getV1Trade(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	// user_id в запросе списка опционален, ноль значит "без логина".
	var userID int64
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.NewError(errcodes.ValidationError, "user_id must be a number")
		}
		userID = parsed
	}

	offers, err := s.tradeService.ListOffers(ctx, userID)
	if err != nil {
		return fmt.Errorf("tradeService.ListOffers: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTTradeList(offers))

	return nil
}

func (s TradeServer) postV1Trade(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.TradeRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	if err := matchSessionUser(ctx, request.UserID); err != nil {
		return err
	}

	switch request.Action {
	case tradeActionCreateOffer:
		return s.createOffer(ctx, w, request)
	case tradeActionBuy:
		return s.buy(ctx, w, request)
	case tradeActionCancelOffer:
		return s.cancelOffer(ctx, w, request)
	case tradeActionBuyItem:
		return s.buyItem(ctx, w, request)
	default:
		return domain.NewError(errcodes.UnknownAction, "unknown action: "+request.Action)
	}
}

func (s TradeServer) createOffer(ctx context.Context, w http.ResponseWriter, request rest.TradeRequest) error {
	offer, err := s.tradeService.CreateOffer(
		ctx, request.UserID, request.ItemName, request.ItemType, request.Effect, request.Price,
	)
	if err != nil {
		return fmt.Errorf("tradeService.CreateOffer: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.CreateOfferResponse{
		Success: true,
		OfferID: offer.ID,
	})

	return nil
}

func (s TradeServer) buy(ctx context.Context, w http.ResponseWriter, request rest.TradeRequest) error {
	if err := s.tradeService.Buy(ctx, request.UserID, request.OfferID); err != nil {
		return fmt.Errorf("tradeService.Buy: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.TradeResultResponse{
		Success: true,
		Message: "Предмет куплен",
	})

	return nil
}

func (s TradeServer) cancelOffer(ctx context.Context, w http.ResponseWriter, request rest.TradeRequest) error {
	if err := s.tradeService.CancelOffer(ctx, request.UserID, request.OfferID); err != nil {
		return fmt.Errorf("tradeService.CancelOffer: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.TradeResultResponse{
		Success: true,
		Message: "Лот снят с продажи",
	})

	return nil
}

func (s TradeServer) buyItem(ctx context.Context, w http.ResponseWriter, request rest.TradeRequest) error {
	if err := s.tradeService.BuyShopItem(ctx, request.UserID, request.ItemName); err != nil {
		return fmt.Errorf("tradeService.BuyShopItem: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.TradeResultResponse{
		Success: true,
		Message: "Покупка совершена",
	})

	return nil
}
