package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsard/pulsard-api/internal/domain"
	"github.com/pulsard/pulsard-api/internal/store"
)

func TestUserStore_CreateAndGet(t *testing.T) {
	t.Parallel()

	s := NewUserStore()
	ctx := context.Background()

	user := &domain.User{Username: "john", HashedPassword: "digest"}
	require.NoError(t, s.Create(ctx, user))
	assert.Equal(t, int64(1), user.ID)

	byID, err := s.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "john", byID.Username)

	byName, err := s.GetByUsername(ctx, "john")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	_, err = s.GetByID(ctx, 99)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	_, err = s.GetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserStore_DuplicateUsername(t *testing.T) {
	t.Parallel()

	s := NewUserStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, &domain.User{Username: "john", HashedPassword: "digest"}))
	err := s.Create(ctx, &domain.User{Username: "john", HashedPassword: "digest"})
	assert.ErrorIs(t, err, store.ErrUsernameExists)
	assert.True(t, store.IsDuplicateError(err))
}

func TestUserStore_ValidatesOnCreate(t *testing.T) {
	t.Parallel()

	s := NewUserStore()
	err := s.Create(context.Background(), &domain.User{Username: ""})
	assert.ErrorIs(t, err, domain.ErrEmptyUsername)
}

func TestUserStore_List(t *testing.T) {
	t.Parallel()

	s := NewUserStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, &domain.User{Username: "a", HashedPassword: "d"}))
	require.NoError(t, s.Create(ctx, &domain.User{Username: "b", HashedPassword: "d"}))

	users, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a", users[0].Username)
	assert.Equal(t, "b", users[1].Username)
}

func TestUserStore_Delete(t *testing.T) {
	t.Parallel()

	s := NewUserStore()
	ctx := context.Background()

	user := &domain.User{Username: "john", HashedPassword: "digest"}
	require.NoError(t, s.Create(ctx, user))
	require.NoError(t, s.Delete(ctx, user.ID))

	_, err := s.GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	// Username is free again after deletion.
	assert.NoError(t, s.Create(ctx, &domain.User{Username: "john", HashedPassword: "digest"}))
	assert.ErrorIs(t, s.Delete(ctx, 42), store.ErrUserNotFound)
}

func TestUserStore_ReturnsCopies(t *testing.T) {
	t.Parallel()

	s := NewUserStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, &domain.User{Username: "john", HashedPassword: "digest"}))

	got, err := s.GetByUsername(ctx, "john")
	require.NoError(t, err)
	got.Username = "mutated"

	again, err := s.GetByID(ctx, got.ID)
	require.NoError(t, err)
	assert.Equal(t, "john", again.Username)
}
