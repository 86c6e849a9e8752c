package testutil

import (
	"context"

	"github.com/dimitrije/sharevault/internal/models"
	"github.com/dimitrije/sharevault/internal/services"
	"github.com/dimitrije/sharevault/pkg/vault"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccountService mocks the AccountService
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

// MockAssetService mocks the AssetService
type MockAssetService struct {
	mock.Mock
}

func (m *MockAssetService) List(ctx context.Context) ([]models.Asset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Asset), args.Error(1)
}

// MockHoldingService mocks CoinService and ShareService
type MockHoldingService[M any] struct {
	mock.Mock
}

type (
	MockCoinService  = MockHoldingService[models.Coin]
	MockShareService = MockHoldingService[models.ShareToken]
)

func (m *MockHoldingService[M]) List(ctx context.Context, ownerID uuid.UUID) ([]M, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]M), args.Error(1)
}

func (m *MockHoldingService[M]) Get(ctx context.Context, id, ownerID uuid.UUID) (*M, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*M), args.Error(1)
}

func (m *MockHoldingService[M]) Split(ctx context.Context, id, ownerID uuid.UUID, amount uint64) (*M, *M, error) {
	args := m.Called(ctx, id, ownerID, amount)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*M), args.Get(1).(*M), args.Error(2)
}

func (m *MockHoldingService[M]) Merge(ctx context.Context, id, otherID, ownerID uuid.UUID) (*M, error) {
	args := m.Called(ctx, id, otherID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*M), args.Error(1)
}

func (m *MockHoldingService[M]) Transfer(ctx context.Context, id, ownerID, to uuid.UUID) (*M, error) {
	args := m.Called(ctx, id, ownerID, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*M), args.Error(1)
}

// MockVaultService mocks the VaultService
type MockVaultService struct {
	mock.Mock
}

func (m *MockVaultService) Create(ctx context.Context, assetID, creatorID uuid.UUID) (*models.Vault, *models.AdminCap, error) {
	args := m.Called(ctx, assetID, creatorID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Vault), args.Get(1).(*models.AdminCap), args.Error(2)
}

func (m *MockVaultService) GetByID(ctx context.Context, vaultID uuid.UUID) (*models.Vault, error) {
	args := m.Called(ctx, vaultID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vault), args.Error(1)
}

func (m *MockVaultService) List(ctx context.Context) ([]models.Vault, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Vault), args.Error(1)
}

func (m *MockVaultService) Values(ctx context.Context, vaultID uuid.UUID) (vault.Values, error) {
	args := m.Called(ctx, vaultID)
	return args.Get(0).(vault.Values), args.Error(1)
}

func (m *MockVaultService) Deposit(ctx context.Context, vaultID, coinID, callerID uuid.UUID, amount uint64) (*services.DepositResult, error) {
	args := m.Called(ctx, vaultID, coinID, callerID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.DepositResult), args.Error(1)
}

func (m *MockVaultService) Withdraw(ctx context.Context, vaultID, shareID, callerID uuid.UUID, amount uint64) (*services.WithdrawResult, error) {
	args := m.Called(ctx, vaultID, shareID, callerID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.WithdrawResult), args.Error(1)
}

func (m *MockVaultService) ListEvents(ctx context.Context, vaultID uuid.UUID, limit int) ([]models.VaultEvent, error) {
	args := m.Called(ctx, vaultID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.VaultEvent), args.Error(1)
}

func (m *MockVaultService) GetAdminCaps(ctx context.Context, holderID uuid.UUID) ([]models.AdminCap, error) {
	args := m.Called(ctx, holderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AdminCap), args.Error(1)
}

func (m *MockVaultService) VerifyAdmin(ctx context.Context, capID, vaultID, holderID uuid.UUID) error {
	args := m.Called(ctx, capID, vaultID, holderID)
	return args.Error(0)
}

func (m *MockVaultService) ListHolders(ctx context.Context, vaultID uuid.UUID) ([]models.Holder, error) {
	args := m.Called(ctx, vaultID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Holder), args.Error(1)
}
