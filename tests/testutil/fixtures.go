package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/dimitrije/sharevault/internal/database"
	"github.com/dimitrije/sharevault/internal/models"
	"github.com/dimitrije/sharevault/internal/services"
)

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	db      *database.DB
	counter int
}

func NewFixtures(db *database.DB) *Fixtures {
	return &Fixtures{db: db}
}

// CreateAccount creates an account named after a running counter
func (f *Fixtures) CreateAccount(t *testing.T) *models.Account {
	t.Helper()
	f.counter++

	account, err := services.NewAccountService(f.db).Create(context.Background(), fmt.Sprintf("account-%d", f.counter))
	if err != nil {
		t.Fatalf("failed to create account: %v", err)
	}
	return account
}

// CreateAsset registers a base asset with a unique symbol
func (f *Fixtures) CreateAsset(t *testing.T) *models.Asset {
	t.Helper()
	f.counter++

	asset, err := services.NewAssetService(f.db).Register(context.Background(), fmt.Sprintf("TST%d", f.counter), 6)
	if err != nil {
		t.Fatalf("failed to register asset: %v", err)
	}
	return asset
}

// MintCoin issues a coin of amount to owner
func (f *Fixtures) MintCoin(t *testing.T, asset *models.Asset, owner *models.Account, amount uint64) *models.Coin {
	t.Helper()

	coin, err := services.NewAssetService(f.db).Mint(context.Background(), asset.ID, owner.ID, amount)
	if err != nil {
		t.Fatalf("failed to mint coin: %v", err)
	}
	return coin
}
