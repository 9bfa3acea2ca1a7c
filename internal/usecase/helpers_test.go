package usecase

import (
	"testing"
	"time"

	"bitcoinswitch/internal/domain/entities"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func newTestLogger(t *testing.T) (*logrus.Logger, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return logger, hook
}

func strPtr(s string) *string { return &s }

func fixtureDevice() entities.Device {
	return entities.Device{
		ID:        "dev-1",
		Title:     "Coffee machine",
		Wallet:    "wal-1",
		WalletKey: "invoice-key",
		Currency:  entities.CurrencySat,
		Switches: []entities.Switch{
			{Pin: 1, Amount: 100, Duration: 3000},
			{Pin: 2, Amount: 10, Duration: 5000, Variable: true, Comment: true},
			{Pin: 3, Amount: 50, Duration: 1500, Comment: true, AcceptsAssets: true, AcceptedAssetIDs: []string{"asset-a", "asset-b"}},
			{Pin: 4, Amount: 50, Duration: 1000, Variable: true, AcceptsAssets: true, AcceptedAssetIDs: []string{"asset-a"}},
			{Pin: 5, Amount: 0, Duration: 1000, Variable: true},
		},
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func hasLogEntry(hook *test.Hook, level logrus.Level, msg string) bool {
	for _, e := range hook.AllEntries() {
		if e.Level == level && e.Message == msg {
			return true
		}
	}
	return false
}
