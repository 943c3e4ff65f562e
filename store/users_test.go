package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser_AndLookup(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Queries().CreateUser(ctx, "alice", "alice@example.com", "hash")
	require.NoError(t, err)

	byName, err := s.Queries().UserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, id, byName.UserID)
	assert.Equal(t, "alice@example.com", byName.Email)
	assert.Equal(t, "hash", byName.PasswordHash)
	assert.Nil(t, byName.LastLogin)
	assert.False(t, byName.CreatedAt.IsZero())

	byID, err := s.Queries().UserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	_, err = s.Queries().UserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	createTestUser(t, s, "alice")

	_, err := s.Queries().CreateUser(ctx, "alice", "other@example.com", "hash")
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "This username is already taken.", conflict.Message)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_, err := s.Queries().CreateUser(ctx, "alice", "shared@example.com", "hash")
	require.NoError(t, err)

	_, err = s.Queries().CreateUser(ctx, "bob", "shared@example.com", "hash")
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "This email is already registered.", conflict.Message)
}

func TestUsernameAndEmailTaken(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	id := createTestUser(t, s, "alice")

	taken, err := s.Queries().UsernameTaken(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = s.Queries().UsernameTaken(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = s.Queries().EmailTaken(ctx, "alice@example.com", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	// A user keeping their own address is not a collision.
	taken, err = s.Queries().EmailTaken(ctx, "alice@example.com", id)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestTouchLastLogin(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	id := createTestUser(t, s, "alice")

	require.NoError(t, s.Queries().TouchLastLogin(ctx, id))

	user, err := s.Queries().UserByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, user.LastLogin)
}

func TestUpdateUserProfile(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	id := createTestUser(t, s, "alice")

	// Email only, hash untouched.
	require.NoError(t, s.Queries().UpdateUserProfile(ctx, id, "new@example.com", nil))
	user, err := s.Queries().UserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, "not-a-real-hash", user.PasswordHash)

	require.NoError(t, s.Queries().UpdateUserProfile(ctx, id, "new@example.com", strptr("fresh-hash")))
	user, err = s.Queries().UserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "fresh-hash", user.PasswordHash)
}
