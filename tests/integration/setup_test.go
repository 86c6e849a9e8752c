package integration

import (
	"context"
	"testing"

	"github.com/dimitrije/sharevault/internal/services"
	"github.com/dimitrije/sharevault/pkg/vault"
	"github.com/dimitrije/sharevault/tests/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// setupTest starts a migrated PostgreSQL container for one test.
func setupTest(t *testing.T) *testutil.TestDB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	return testutil.SetupTestDB(t)
}

// ledger bundles the services an integration test drives.
type ledger struct {
	fixtures *testutil.Fixtures
	vaults   *services.VaultService
	coins    *services.CoinService
	shares   *services.ShareService
}

func newLedger(tdb *testutil.TestDB) *ledger {
	return &ledger{
		fixtures: testutil.NewFixtures(tdb.DB),
		vaults:   services.NewVaultService(tdb.DB, nil, nil),
		coins:    services.NewCoinService(tdb.DB),
		shares:   services.NewShareService(tdb.DB),
	}
}

func (l *ledger) requireValues(t *testing.T, vaultID uuid.UUID, base, shares uint64) {
	t.Helper()
	values, err := l.vaults.Values(context.Background(), vaultID)
	require.NoError(t, err)
	require.Equal(t, vault.Values{Base: base, Shares: shares}, values)
}
