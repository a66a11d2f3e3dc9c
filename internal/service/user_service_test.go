package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nursery-api/internal/domain"
	"nursery-api/internal/repository"
)

// fakeUserRepo keeps users in a map, enforcing the unique-username constraint
// the way the sqlite repository does.
type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Init(ctx context.Context) error { return nil }

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) (int64, error) {
	if _, ok := f.users[user.Username]; ok {
		return 0, repository.ErrDuplicateUser
	}
	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.users[user.Username] = &stored
	return user.ID, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func TestRegisterThenAuthenticate(t *testing.T) {
	repo := newFakeUserRepo()
	users := NewUserService(repo)
	ctx := context.Background()

	registered, err := users.Register(ctx, "alice", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "alice", registered.Username)
	assert.Empty(t, registered.PasswordHash, "hash must never leave the service")

	authed, err := users.Authenticate(ctx, "alice", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "alice", authed.Username)
}

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	repo := newFakeUserRepo()
	users := NewUserService(repo)

	_, err := users.Register(context.Background(), "alice", "s3cret-pass")
	require.NoError(t, err)

	stored := repo.users["alice"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegisterDuplicate(t *testing.T) {
	repo := newFakeUserRepo()
	users := NewUserService(repo)
	ctx := context.Background()

	_, err := users.Register(ctx, "alice", "s3cret-pass")
	require.NoError(t, err)

	_, err = users.Register(ctx, "alice", "another-pass")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.Len(t, repo.users, 1)
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	repo := newFakeUserRepo()
	users := NewUserService(repo)
	ctx := context.Background()

	_, err := users.Register(ctx, "alice", "s3cret-pass")
	require.NoError(t, err)

	_, wrongPass := users.Authenticate(ctx, "alice", "wrong-pass")
	_, noUser := users.Authenticate(ctx, "bob", "s3cret-pass")

	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, noUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPass.Error(), noUser.Error())
}
