package service

import (
	"context"
	"testing"

	"usedphoneshop/internal/model"
	"usedphoneshop/internal/repository"
	"usedphoneshop/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func TestPhoneService_Lifecycle(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "phone_service")
	svc := NewPhoneService(repository.NewPhoneRepository(db))
	ctx := context.Background()

	phone, err := svc.CreatePhone(ctx, model.CreatePhoneRequest{
		Brand:         "Samsung",
		Model:         "Galaxy S21",
		Price:         699.99,
		Condition:     "New",
		StockQuantity: 15,
	})
	require.NoError(t, err)
	assert.NotZero(t, phone.ID)

	phones, err := svc.ListPhones(ctx)
	require.NoError(t, err)
	require.Len(t, phones, 1)

	updated, err := svc.UpdatePhone(ctx, phone.ID, model.UpdatePhoneRequest{
		Price: floatPtr(649.99),
	})
	require.NoError(t, err)
	assert.Equal(t, 649.99, updated.Price)
	assert.Equal(t, "Galaxy S21", updated.Model)

	require.NoError(t, svc.DeletePhone(ctx, phone.ID))
	_, err = svc.GetPhoneByID(ctx, phone.ID)
	assert.ErrorIs(t, err, ErrPhoneNotFound)
}

func TestPhoneService_NotFound(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "phone_service_missing")
	svc := NewPhoneService(repository.NewPhoneRepository(db))
	ctx := context.Background()

	_, err := svc.GetPhoneByID(ctx, 42)
	assert.ErrorIs(t, err, ErrPhoneNotFound)

	_, err = svc.UpdatePhone(ctx, 42, model.UpdatePhoneRequest{Price: floatPtr(1)})
	assert.ErrorIs(t, err, ErrPhoneNotFound)

	assert.ErrorIs(t, svc.DeletePhone(ctx, 42), ErrPhoneNotFound)
}
