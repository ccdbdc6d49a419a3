package account_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"petgame/internal/domain"
	"petgame/internal/domain/entity"
	"petgame/internal/domain/service/account"
	"petgame/internal/infrastructure/persistence"
	"petgame/pkg/errcodes"
)

type fakeUserRepo struct {
	created       *entity.User
	createdBundle persistence.StarterBundle
	createErr     error

	byEmail    map[string]*entity.User
	lastLogins []int64
	top        []entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (f *fakeUserRepo) CreateWithStarter(_ context.Context, user *entity.User, bundle persistence.StarterBundle) error {
	if f.createErr != nil {
		return f.createErr
	}

	user.ID = 1
	user.Level = 1
	user.Coins = 100
	f.created = user
	f.createdBundle = bundle

	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, domain.NewError(errcodes.NotFound, "user not found")
	}

	return user, nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, userID int64) error {
	f.lastLogins = append(f.lastLogins, userID)

	return nil
}

func (f *fakeUserRepo) Leaderboard(_ context.Context, limit int) ([]entity.User, error) {
	if len(f.top) > limit {
		return f.top[:limit], nil
	}

	return f.top, nil
}

type fakeSessions struct {
	issued []int64
}

func (f *fakeSessions) Issue(_ context.Context, userID int64) (string, error) {
	f.issued = append(f.issued, userID)

	return "test-token", nil
}

func newTestService(users *fakeUserRepo, sessions *fakeSessions) *account.Service {
	return account.NewService(users, sessions).WithBcryptCost(bcrypt.MinCost)
}

func TestRegister(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	users := newFakeUserRepo()
	sessions := &fakeSessions{}
	svc := newTestService(users, sessions)

	user, token, err := svc.Register(ctx, "player@example.com", "secret", "")
	rq.NoError(err)
	rq.Equal("test-token", token)
	rq.Equal("player", user.Username)
	rq.EqualValues(1, user.ID)
	rq.Equal([]int64{1}, sessions.issued)

	// Пароль хранится только как bcrypt-хэш.
	rq.NotEqual("secret", users.created.PasswordHash)
	rq.NoError(bcrypt.CompareHashAndPassword([]byte(users.created.PasswordHash), []byte("secret")))

	bundle := users.createdBundle
	rq.Equal("Дружок", bundle.Pet.Name)
	rq.Equal("dog", bundle.Pet.Type)
	rq.Equal(75, bundle.Pet.Hunger)
	rq.Equal(80, bundle.Pet.Happiness)
	rq.Equal(90, bundle.Pet.Health)
	rq.Equal(65, bundle.Pet.Energy)

	rq.Len(bundle.Achievements, 3)
	completed := 0
	for _, ach := range bundle.Achievements {
		if ach.Completed {
			completed++
			rq.Equal("Первый друг", ach.Name)
		}
	}
	rq.Equal(1, completed)

	rq.Len(bundle.Quests, 2)
	rq.Equal(3, bundle.Quests[0].Goal)
	rq.Equal(5, bundle.Quests[1].Goal)
	for _, quest := range bundle.Quests {
		rq.Zero(quest.Progress)
	}

	rq.Len(bundle.Items, 2)
}

func TestRegisterExplicitUsername(t *testing.T) {
	rq := require.New(t)

	users := newFakeUserRepo()
	svc := newTestService(users, &fakeSessions{})

	user, _, err := svc.Register(context.Background(), "player@example.com", "secret", "Vasya")
	rq.NoError(err)
	rq.Equal("Vasya", user.Username)
}

func TestRegisterValidation(t *testing.T) {
	testCases := []struct {
		name     string
		email    string
		password string
	}{
		{name: "no email", email: "", password: "secret"},
		{name: "no password", email: "player@example.com", password: ""},
		{name: "nothing at all", email: "", password: ""},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			svc := newTestService(newFakeUserRepo(), &fakeSessions{})

			_, _, err := svc.Register(context.Background(), tc.email, tc.password, "")
			rq.True(domain.IsCode(err, errcodes.ValidationError))
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	rq := require.New(t)

	users := newFakeUserRepo()
	users.createErr = domain.NewError(errcodes.EmailAlreadyInUse, "email already registered")
	svc := newTestService(users, &fakeSessions{})

	_, _, err := svc.Register(context.Background(), "player@example.com", "secret", "")
	rq.True(domain.IsCode(err, errcodes.EmailAlreadyInUse))
}

func TestLogin(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	rq.NoError(err)

	users := newFakeUserRepo()
	users.byEmail["player@example.com"] = &entity.User{
		ID:           3,
		Email:        "player@example.com",
		PasswordHash: string(hash),
		Username:     "player",
	}
	sessions := &fakeSessions{}
	svc := newTestService(users, sessions)

	user, token, err := svc.Login(ctx, "player@example.com", "secret")
	rq.NoError(err)
	rq.Equal("test-token", token)
	rq.EqualValues(3, user.ID)
	rq.Equal([]int64{3}, users.lastLogins)
	rq.Equal([]int64{3}, sessions.issued)
}

func TestLoginBadCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		email    string
		password string
	}{
		{name: "unknown email", email: "ghost@example.com", password: "secret"},
		{name: "wrong password", email: "player@example.com", password: "wrong"},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			users := newFakeUserRepo()
			users.byEmail["player@example.com"] = &entity.User{
				ID:           3,
				Email:        "player@example.com",
				PasswordHash: string(hash),
			}
			svc := newTestService(users, &fakeSessions{})

			_, _, err := svc.Login(context.Background(), tc.email, tc.password)
			rq.True(domain.IsCode(err, errcodes.CredentialsMismatch))
			rq.Empty(users.lastLogins)
		})
	}
}

func TestLoginValidation(t *testing.T) {
	rq := require.New(t)

	svc := newTestService(newFakeUserRepo(), &fakeSessions{})

	_, _, err := svc.Login(context.Background(), "", "secret")
	rq.True(domain.IsCode(err, errcodes.ValidationError))
}

func TestLeaderboard(t *testing.T) {
	rq := require.New(t)

	users := newFakeUserRepo()
	for i := 0; i < 15; i++ {
		users.top = append(users.top, entity.User{Username: "p", Level: 15 - i})
	}
	svc := newTestService(users, &fakeSessions{})

	top, err := svc.Leaderboard(context.Background())
	rq.NoError(err)
	rq.Len(top, 10)
}
