package server

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"petgame/internal/domain"
	"petgame/internal/domain/service/session"
	"petgame/pkg/contextx"
	"petgame/pkg/errcodes"
	"petgame/pkg/httpx/reply"
)

type tokenVerifier interface {
	Verify(ctx context.Context, token string) (int64, error)
}

// requireSession пускает дальше только запросы с живым bearer-токеном.
// Идентификатор владельца сессии кладётся в контекст.
func (s Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token := bearerToken(r)
		if token == "" {
			reply.Error(ctx, w, domain.NewError(errcodes.SessionInvalid, "missing bearer token"))
			return
		}

		userID, err := s.sessions.Verify(ctx, token)
		if err != nil {
			reply.Error(ctx, w, err)
			return
		}

		ctx = contextx.WithUserID(ctx, contextx.UserID(session.FormatUserID(userID)))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	const prefix = "Bearer "

	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}

	return strings.TrimPrefix(auth, prefix)
}

// matchSessionUser сверяет user_id из тела с владельцем сессии.
func matchSessionUser(ctx context.Context, bodyUserID int64) error {
	if bodyUserID == 0 {
		return domain.NewError(errcodes.ValidationError, "user_id is required")
	}

	raw, err := contextx.UserIDFromContext(ctx)
	if err != nil {
		return domain.NewError(errcodes.SessionInvalid, "no session in context")
	}

	sessionUserID, err := strconv.ParseInt(raw.String(), 10, 64)
	if err != nil {
		return domain.NewError(errcodes.SessionInvalid, "malformed session user id")
	}

	if sessionUserID != bodyUserID {
		return domain.NewError(errcodes.SessionMismatch, "user_id does not match session")
	}

	return nil
}
