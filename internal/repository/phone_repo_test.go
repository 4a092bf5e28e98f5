package repository

import (
	"context"
	"database/sql"
	"testing"

	"usedphoneshop/internal/model"
	"usedphoneshop/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhoneRepository_CreateAndFind(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "phone_create")
	repo := NewPhoneRepository(db)
	ctx := context.Background()

	phone := &model.Phone{
		Brand:         "Apple",
		Model:         "iPhone 12",
		Price:         799.99,
		Description:   "Latest model with A14 Bionic chip",
		Condition:     "New",
		StockQuantity: 10,
	}
	require.NoError(t, repo.Create(ctx, phone))
	assert.NotZero(t, phone.ID)

	stored, err := repo.FindByID(ctx, phone.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Apple", stored.Brand)
	assert.Equal(t, 799.99, stored.Price)
	assert.Equal(t, 10, stored.StockQuantity)
}

func TestPhoneRepository_FindMissingReturnsNil(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "phone_missing")
	repo := NewPhoneRepository(db)

	phone, err := repo.FindByID(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, phone)
}

func TestPhoneRepository_ListUpdateDelete(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "phone_lifecycle")
	repo := NewPhoneRepository(db)
	ctx := context.Background()

	phone := &model.Phone{Brand: "Google", Model: "Pixel 5", Price: 599.99, Condition: "Used"}
	require.NoError(t, repo.Create(ctx, phone))

	phones, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, phones, 1)

	phone.Price = 549.99
	phone.StockQuantity = 3
	require.NoError(t, repo.Update(ctx, phone))

	stored, err := repo.FindByID(ctx, phone.ID)
	require.NoError(t, err)
	assert.Equal(t, 549.99, stored.Price)
	assert.Equal(t, 3, stored.StockQuantity)

	require.NoError(t, repo.Delete(ctx, phone.ID))
	assert.ErrorIs(t, repo.Delete(ctx, phone.ID), sql.ErrNoRows)
}
