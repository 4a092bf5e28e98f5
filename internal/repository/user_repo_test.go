package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"usedphoneshop/internal/model"
	"usedphoneshop/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(email string) *model.User {
	return &model.User{
		Email:        email,
		Role:         model.RoleUser,
		PasswordHash: "digest",
		FirstName:    "Test",
		LastName:     "User",
		CreatedAt:    time.Now(),
	}
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "user_create")
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := newTestUser("a@x.com")
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	byEmail, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "digest", byEmail.PasswordHash)
	assert.Equal(t, model.RoleUser, byEmail.Role)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "a@x.com", byID.Email)
}

func TestUserRepository_FindMissingReturnsNil(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "user_missing")
	repo := NewUserRepository(db)
	ctx := context.Background()

	byEmail, err := repo.FindByEmail(ctx, "nobody@x.com")
	assert.NoError(t, err)
	assert.Nil(t, byEmail)

	byID, err := repo.FindByID(ctx, 42)
	assert.NoError(t, err)
	assert.Nil(t, byID)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "user_duplicate")
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := newTestUser("a@x.com")
	require.NoError(t, repo.Create(ctx, first))

	second := newTestUser("a@x.com")
	second.FirstName = "Other"
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// the first row is unchanged
	stored, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, "Test", stored.FirstName)
}

func TestUserRepository_List(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "user_list")
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestUser("a@x.com")))
	require.NoError(t, repo.Create(ctx, newTestUser("b@x.com")))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	// insertion order
	assert.Equal(t, "a@x.com", users[0].Email)
	assert.Equal(t, "b@x.com", users[1].Email)
}

func TestUserRepository_Update(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "user_update")
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := newTestUser("a@x.com")
	require.NoError(t, repo.Create(ctx, user))

	user.Role = model.RoleAdmin
	user.Address = "1 Main Street"
	require.NoError(t, repo.Update(ctx, user))

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, stored.Role)
	assert.Equal(t, "1 Main Street", stored.Address)
}

func TestUserRepository_UpdateMissing(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "user_update_missing")
	repo := NewUserRepository(db)

	ghost := newTestUser("ghost@x.com")
	ghost.ID = 999
	err := repo.Update(context.Background(), ghost)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestUserRepository_Delete(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "user_delete")
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := newTestUser("a@x.com")
	require.NoError(t, repo.Create(ctx, user))
	require.NoError(t, repo.Delete(ctx, user.ID))

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	assert.ErrorIs(t, repo.Delete(ctx, user.ID), sql.ErrNoRows)
}

func TestUserRepository_IDsNotReusedAfterDelete(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "user_id_reuse")
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := newTestUser("a@x.com")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Delete(ctx, first.ID))

	second := newTestUser("b@x.com")
	require.NoError(t, repo.Create(ctx, second))
	assert.Greater(t, second.ID, first.ID)
}
