package services

import (
	"context"
	"errors"

	"github.com/dimitrije/sharevault/internal/database"
	"github.com/dimitrije/sharevault/internal/models"
	"github.com/google/uuid"
)

var (
	ErrCoinNotFound  = errors.New("coin not found")
	ErrAssetMismatch = errors.New("coin asset does not match")
)

type CoinService struct {
	store *holdingStore
}

func NewCoinService(db *database.DB) *CoinService {
	return &CoinService{store: newCoinStore(db)}
}

func newCoinStore(db *database.DB) *holdingStore {
	return &holdingStore{
		db:       db,
		table:    "coins",
		group:    "asset_id",
		notFound: ErrCoinNotFound,
		mismatch: ErrAssetMismatch,
	}
}

func (h holdingRow) coin() *models.Coin {
	return &models.Coin{
		ID:        h.ID,
		AssetID:   h.GroupID,
		OwnerID:   h.OwnerID,
		Value:     h.Value,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

func (s *CoinService) List(ctx context.Context, ownerID uuid.UUID) ([]models.Coin, error) {
	rows, err := s.store.list(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	coins := make([]models.Coin, 0, len(rows))
	for _, r := range rows {
		coins = append(coins, *r.coin())
	}
	return coins, nil
}

func (s *CoinService) Get(ctx context.Context, coinID, ownerID uuid.UUID) (*models.Coin, error) {
	row, err := s.store.get(ctx, coinID, ownerID)
	if err != nil {
		return nil, err
	}
	return row.coin(), nil
}

func (s *CoinService) Split(ctx context.Context, coinID, ownerID uuid.UUID, amount uint64) (*models.Coin, *models.Coin, error) {
	orig, part, err := s.store.split(ctx, coinID, ownerID, amount)
	if err != nil {
		return nil, nil, err
	}
	return orig.coin(), part.coin(), nil
}

func (s *CoinService) Merge(ctx context.Context, coinID, otherID, ownerID uuid.UUID) (*models.Coin, error) {
	row, err := s.store.merge(ctx, coinID, otherID, ownerID)
	if err != nil {
		return nil, err
	}
	return row.coin(), nil
}

func (s *CoinService) Transfer(ctx context.Context, coinID, ownerID, to uuid.UUID) (*models.Coin, error) {
	row, err := s.store.transfer(ctx, coinID, ownerID, to)
	if err != nil {
		return nil, err
	}
	return row.coin(), nil
}
