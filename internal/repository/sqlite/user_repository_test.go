package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nursery-api/internal/domain"
	"nursery-api/internal/repository"
)

func newUserTestRepo(t *testing.T) repository.UserRepository {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewUserRepository(db)
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func TestUserCreateAndGet(t *testing.T) {
	repo := newUserTestRepo(t)
	ctx := context.Background()

	user := domain.User{Username: "alice", PasswordHash: "hashed"}
	id, err := repo.Create(ctx, &user)
	require.NoError(t, err)
	assert.Positive(t, id)

	stored, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", stored.Username)
	assert.Equal(t, "hashed", stored.PasswordHash)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestUserCreateDuplicate(t *testing.T) {
	repo := newUserTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.User{Username: "alice", PasswordHash: "h1"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.User{Username: "alice", PasswordHash: "h2"})
	assert.ErrorIs(t, err, repository.ErrDuplicateUser)
}

func TestUserGetMissing(t *testing.T) {
	repo := newUserTestRepo(t)

	_, err := repo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
