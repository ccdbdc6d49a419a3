package server

import (
	"context"
	"fmt"
	"net/http"

	"petgame/internal/domain"
	"petgame/internal/domain/entity"
	"petgame/pkg/errcodes"
	"petgame/pkg/httpx/reply"
	"petgame/pkg/httpx/req"
	"petgame/pkg/rest"
)

type accountService interface {
	Register(ctx context.Context, email, password, username string) (*entity.User, string, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	Leaderboard(ctx context.Context) ([]entity.User, error)
}

type AuthServer struct {
	accountService accountService
}

func NewAuthServer(accountService accountService) AuthServer {
	return AuthServer{
		accountService: accountService,
	}
}

const (
	authActionRegister = "register"
	authActionLogin    = "login"
)

func (s AuthServer) postV1Auth(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.AuthRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	var (
		user  *entity.User
		token string
		err   error
	)

	switch request.Action {
	case authActionRegister:
		user, token, err = s.accountService.Register(ctx, request.Email, request.Password, request.Username)
	case authActionLogin:
		user, token, err = s.accountService.Login(ctx, request.Email, request.Password)
	default:
		return domain.NewError(errcodes.UnknownAction, "unknown action: "+request.Action)
	}

	if err != nil {
		return fmt.Errorf("accountService.%s: %w", request.Action, err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.AuthResponse{
		Success: true,
		Token:   token,
		User:    newRESTUser(*user),
	})

	return nil
}

func (s AuthServer) getV1Leaderboard(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	users, err := s.accountService.Leaderboard(ctx)
	if err != nil {
		return fmt.Errorf("accountService.Leaderboard: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTLeaderboard(users))

	return nil
}
