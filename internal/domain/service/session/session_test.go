package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"petgame/internal/domain"
	"petgame/internal/domain/service/session"
	"petgame/pkg/errcodes"
)

type fakeStore struct {
	sessions map[string]int64
	saveErr  error
	getCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{sessions: map[string]int64{}}
}

func (f *fakeStore) Save(_ context.Context, token string, userID int64) error {
	if f.saveErr != nil {
		return f.saveErr
	}

	f.sessions[token] = userID

	return nil
}

func (f *fakeStore) Get(_ context.Context, token string) (int64, error) {
	f.getCalls++

	userID, ok := f.sessions[token]
	if !ok {
		return 0, domain.NewError(errcodes.SessionInvalid, "session not found")
	}

	return userID, nil
}

func (f *fakeStore) Delete(_ context.Context, token string) error {
	delete(f.sessions, token)

	return nil
}

func TestIssueAndVerify(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	store := newFakeStore()
	svc := session.NewService(store)

	token, err := svc.Issue(ctx, 42)
	rq.NoError(err)
	rq.NotEmpty(token)

	userID, err := svc.Verify(ctx, token)
	rq.NoError(err)
	rq.EqualValues(42, userID)

	// Токен должен отдаваться из горячего кэша без похода в хранилище.
	_, err = svc.Verify(ctx, token)
	rq.NoError(err)
	rq.Zero(store.getCalls)
}

func TestIssueUniqueTokens(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc := session.NewService(newFakeStore())

	first, err := svc.Issue(ctx, 1)
	rq.NoError(err)

	second, err := svc.Issue(ctx, 1)
	rq.NoError(err)

	rq.NotEqual(first, second)
}

func TestVerifyEmptyToken(t *testing.T) {
	rq := require.New(t)

	svc := session.NewService(newFakeStore())

	_, err := svc.Verify(context.Background(), "")
	rq.True(domain.IsCode(err, errcodes.SessionInvalid))
}

func TestVerifyUnknownToken(t *testing.T) {
	rq := require.New(t)

	svc := session.NewService(newFakeStore())

	_, err := svc.Verify(context.Background(), "no-such-token")
	rq.True(domain.IsCode(err, errcodes.SessionInvalid))
}

func TestRevoke(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	store := newFakeStore()
	svc := session.NewService(store)

	token, err := svc.Issue(ctx, 7)
	rq.NoError(err)

	rq.NoError(svc.Revoke(ctx, token))

	_, err = svc.Verify(ctx, token)
	rq.True(domain.IsCode(err, errcodes.SessionInvalid))
}
