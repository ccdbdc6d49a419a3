package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"petgame/internal/domain"
	"petgame/internal/domain/service/pet"
	"petgame/internal/infrastructure/persistence"
	"petgame/pkg/errcodes"
	"petgame/pkg/httpx/reply"
	"petgame/pkg/httpx/req"
	"petgame/pkg/rest"
)

type petService interface {
	GetState(ctx context.Context, userID int64) (*pet.State, error)
	ApplyAction(ctx context.Context, userID int64, action string) (persistence.ActionResult, error)
}

type PetServer struct {
	petService petService
}

func NewPetServer(petService petService) PetServer {
	return PetServer{
		petService: petService,
	}
}

func (s PetServer) getV1Pet(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, err := queryUserID(r)
	if err != nil {
		return err
	}

	state, err := s.petService.GetState(ctx, userID)
	if err != nil {
		return fmt.Errorf("petService.GetState: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTPetState(state))

	return nil
}

func (s PetServer) postV1Pet(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.PetActionRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	if err := matchSessionUser(ctx, request.UserID); err != nil {
		return err
	}

	result, err := s.petService.ApplyAction(ctx, request.UserID, request.Action)
	if err != nil {
		return fmt.Errorf("petService.ApplyAction: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTPetAction(request.Action, result.Pet))

	return nil
}

func queryUserID(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("user_id")
	if raw == "" {
		return 0, domain.NewError(errcodes.ValidationError, "user_id is required")
	}

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NewError(errcodes.ValidationError, "user_id must be a number")
	}

	return userID, nil
}
