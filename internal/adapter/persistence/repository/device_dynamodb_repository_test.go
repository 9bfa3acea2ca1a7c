package repository

import (
	"context"
	"testing"
	"time"

	"bitcoinswitch/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDevice(id, wallet string) entities.Device {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return entities.Device{
		ID:        id,
		Title:     "Coffee machine",
		Wallet:    wallet,
		WalletKey: "invoice-key",
		Currency:  entities.CurrencySat,
		Switches: []entities.Switch{
			{Pin: 1, Amount: 100, Duration: 3000, LNURL: "LNURL1ABC"},
			{Pin: 3, Amount: 0.5, Duration: 1500, Comment: true, AcceptsAssets: true, AcceptedAssetIDs: []string{"asset-a"}},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestDeviceItem_RoundTrip(t *testing.T) {
	pw := "secret"
	d := newDevice("dev-1", "wal-1")
	d.Password = &pw

	got := fromDeviceItem(toDeviceItem(d))

	assert.Equal(t, d, got)
}

func TestDeviceRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewDeviceDynamoRepository(newFakeDynamo())

	_, err := repo.Create(ctx, newDevice("dev-1", "wal-1"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newDevice("dev-2", "wal-1"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newDevice("dev-3", "wal-2"))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "dev-1")
	require.NoError(t, err)
	require.Len(t, got.Switches, 2)
	assert.Equal(t, 0.5, got.Switches[1].Amount)
	assert.Equal(t, []string{"asset-a"}, got.Switches[1].AcceptedAssetIDs)

	list, err := repo.ListByWallet(ctx, "wal-1")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	got.Title = "Gate"
	updated, err := repo.Update(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, "Gate", updated.Title)

	require.NoError(t, repo.Delete(ctx, "dev-1"))
	gone, err := repo.GetByID(ctx, "dev-1")
	require.NoError(t, err)
	assert.Empty(t, gone.ID)

	stale, err := repo.Update(ctx, got)
	require.NoError(t, err)
	assert.Empty(t, stale.ID)
}

func TestDeviceRepository_ListByWalletEmpty(t *testing.T) {
	repo := NewDeviceDynamoRepository(newFakeDynamo())

	list, err := repo.ListByWallet(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
