package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dimitrije/sharevault/internal/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*database.DB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	return &database.DB{Pool: mock}, mock
}

func TestAccountService_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewAccountService(db)
	accountID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO accounts \(name\)`).
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "created_at"}).AddRow(accountID, "alice", now))

	account, err := svc.Create(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, accountID, account.ID)
	assert.Equal(t, "alice", account.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountService_Create_Error(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewAccountService(db)

	mock.ExpectQuery(`INSERT INTO accounts`).
		WithArgs("alice").
		WillReturnError(errors.New("connection reset"))

	_, err := svc.Create(context.Background(), "alice")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create account")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountService_GetByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewAccountService(db)
	accountID := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM accounts WHERE id`).
		WithArgs(accountID).
		WillReturnError(pgx.ErrNoRows)

	_, err := svc.GetByID(context.Background(), accountID)

	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssetService_Register(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewAssetService(db)
	assetID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO assets \(symbol, decimals\)`).
		WithArgs("USDC", int16(6)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "symbol", "decimals", "created_at"}).
			AddRow(assetID, "USDC", int16(6), now))

	asset, err := svc.Register(context.Background(), "USDC", 6)

	require.NoError(t, err)
	assert.Equal(t, assetID, asset.ID)
	assert.Equal(t, int16(6), asset.Decimals)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssetService_Register_Duplicate(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewAssetService(db)

	mock.ExpectQuery(`INSERT INTO assets`).
		WithArgs("USDC", int16(6)).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := svc.Register(context.Background(), "USDC", 6)

	assert.ErrorIs(t, err, ErrAssetAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssetService_GetBySymbol_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewAssetService(db)

	mock.ExpectQuery(`SELECT .+ FROM assets WHERE symbol`).
		WithArgs("NOPE").
		WillReturnError(pgx.ErrNoRows)

	_, err := svc.GetBySymbol(context.Background(), "NOPE")

	assert.ErrorIs(t, err, ErrAssetNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssetService_List(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewAssetService(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM assets ORDER BY symbol`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "symbol", "decimals", "created_at"}).
			AddRow(uuid.New(), "ETH", int16(18), now).
			AddRow(uuid.New(), "USDC", int16(6), now))

	assets, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, assets, 2)
	assert.Equal(t, "ETH", assets[0].Symbol)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssetService_Mint(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewAssetService(db)
	assetID := uuid.New()
	ownerID := uuid.New()
	coinID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO coins \(asset_id, owner_id, value\)`).
		WithArgs(assetID, ownerID, int64(100)).
		WillReturnRows(holdingRows().AddRow(coinID, assetID, ownerID, int64(100), now, now))

	coin, err := svc.Mint(context.Background(), assetID, ownerID, 100)

	require.NoError(t, err)
	assert.Equal(t, coinID, coin.ID)
	assert.Equal(t, int64(100), coin.Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssetService_Mint_UnknownAccount(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewAssetService(db)
	assetID := uuid.New()
	ownerID := uuid.New()

	mock.ExpectQuery(`INSERT INTO coins`).
		WithArgs(assetID, ownerID, int64(5)).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "coins_owner_id_fkey"})

	_, err := svc.Mint(context.Background(), assetID, ownerID, 5)

	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssetService_Mint_Overflow(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewAssetService(db)

	_, err := svc.Mint(context.Background(), uuid.New(), uuid.New(), 1<<63)

	assert.ErrorIs(t, err, ErrOverflow)
	assert.NoError(t, mock.ExpectationsWereMet())
}
