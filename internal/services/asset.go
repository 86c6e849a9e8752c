package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dimitrije/sharevault/internal/database"
	"github.com/dimitrije/sharevault/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrAssetNotFound      = errors.New("asset not found")
	ErrAssetAlreadyExists = errors.New("asset symbol already registered")
)

// AssetService is the registry of base assets and their issuer. Minting is
// the only way new base value enters the ledger.
type AssetService struct {
	db *database.DB
}

func NewAssetService(db *database.DB) *AssetService {
	return &AssetService{db: db}
}

func (s *AssetService) Register(ctx context.Context, symbol string, decimals int16) (*models.Asset, error) {
	var asset models.Asset
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO assets (symbol, decimals)
		VALUES ($1, $2)
		RETURNING id, symbol, decimals, created_at
	`, symbol, decimals).Scan(&asset.ID, &asset.Symbol, &asset.Decimals, &asset.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrAssetAlreadyExists
		}
		return nil, fmt.Errorf("failed to register asset: %w", err)
	}
	return &asset, nil
}

func (s *AssetService) GetByID(ctx context.Context, id uuid.UUID) (*models.Asset, error) {
	return s.getOne(ctx, `SELECT id, symbol, decimals, created_at FROM assets WHERE id = $1`, id)
}

func (s *AssetService) GetBySymbol(ctx context.Context, symbol string) (*models.Asset, error) {
	return s.getOne(ctx, `SELECT id, symbol, decimals, created_at FROM assets WHERE symbol = $1`, symbol)
}

func (s *AssetService) getOne(ctx context.Context, query string, arg any) (*models.Asset, error) {
	var asset models.Asset
	err := s.db.Pool.QueryRow(ctx, query, arg).Scan(&asset.ID, &asset.Symbol, &asset.Decimals, &asset.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}
	return &asset, nil
}

func (s *AssetService) List(ctx context.Context) ([]models.Asset, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, symbol, decimals, created_at
		FROM assets
		ORDER BY symbol
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []models.Asset
	for rows.Next() {
		var asset models.Asset
		if err := rows.Scan(&asset.ID, &asset.Symbol, &asset.Decimals, &asset.CreatedAt); err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}

// Mint creates a new coin of amount for owner.
func (s *AssetService) Mint(ctx context.Context, assetID, ownerID uuid.UUID, amount uint64) (*models.Coin, error) {
	value, err := toInt64(amount)
	if err != nil {
		return nil, err
	}

	var coin models.Coin
	err = s.db.Pool.QueryRow(ctx, `
		INSERT INTO coins (asset_id, owner_id, value)
		VALUES ($1, $2, $3)
		RETURNING id, asset_id, owner_id, value, created_at, updated_at
	`, assetID, ownerID, value).Scan(
		&coin.ID, &coin.AssetID, &coin.OwnerID, &coin.Value, &coin.CreatedAt, &coin.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			if pgErr.ConstraintName == "coins_owner_id_fkey" {
				return nil, ErrAccountNotFound
			}
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to mint coin: %w", err)
	}
	return &coin, nil
}
