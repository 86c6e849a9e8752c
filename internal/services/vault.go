package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dimitrije/sharevault/internal/database"
	"github.com/dimitrije/sharevault/internal/models"
	"github.com/dimitrije/sharevault/pkg/vault"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrVaultNotFound      = errors.New("vault not found")
	ErrVaultAlreadyExists = errors.New("vault already exists for this asset")
	ErrAdminCapInvalid    = vault.ErrAdminCapInvalid
)

// EventPublisher receives journal entries after their transaction commits.
type EventPublisher interface {
	PublishVaultEvent(event *models.VaultEvent)
}

// DepositResult is what the caller holds after a deposit: the new share token
// and the remainder of the coin they paid from.
type DepositResult struct {
	Share  *models.ShareToken
	Coin   *models.Coin
	Values vault.Values
}

// WithdrawResult is the coin paid out and the remainder of the redeemed share
// token.
type WithdrawResult struct {
	Coin   *models.Coin
	Share  *models.ShareToken
	Values vault.Values
}

// VaultService runs the accounting engine against PostgreSQL. Every mutation
// locks the vault row first and then the caller's holding, so operations on
// one vault are totally ordered.
type VaultService struct {
	db        *database.DB
	coins     *holdingStore
	shares    *holdingStore
	publisher EventPublisher
	logger    *slog.Logger
}

func NewVaultService(db *database.DB, publisher EventPublisher, logger *slog.Logger) *VaultService {
	if logger == nil {
		logger = slog.Default()
	}
	return &VaultService{
		db:        db,
		coins:     newCoinStore(db),
		shares:    newShareStore(db),
		publisher: publisher,
		logger:    logger.With("component", "vault"),
	}
}

const vaultColumns = `v.id, v.asset_id, a.symbol, v.base_balance, v.share_supply, v.created_by, v.created_at, v.updated_at`

func scanVault(row pgx.Row) (*models.Vault, error) {
	var v models.Vault
	err := row.Scan(&v.ID, &v.AssetID, &v.AssetSymbol, &v.BaseBalance, &v.ShareSupply,
		&v.CreatedBy, &v.CreatedAt, &v.UpdatedAt)
	return &v, err
}

// Create publishes an empty vault for the asset and hands its one admin
// capability to the creator.
func (s *VaultService) Create(ctx context.Context, assetID, creatorID uuid.UUID) (*models.Vault, *models.AdminCap, error) {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var symbol string
	err = tx.QueryRow(ctx, `SELECT symbol FROM assets WHERE id = $1`, assetID).Scan(&symbol)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrAssetNotFound
		}
		return nil, nil, fmt.Errorf("failed to look up asset: %w", err)
	}

	var v models.Vault
	err = tx.QueryRow(ctx, `
		INSERT INTO vaults (asset_id, created_by)
		VALUES ($1, $2)
		RETURNING id, asset_id, base_balance, share_supply, created_by, created_at, updated_at
	`, assetID, creatorID).Scan(
		&v.ID, &v.AssetID, &v.BaseBalance, &v.ShareSupply, &v.CreatedBy, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, nil, ErrVaultAlreadyExists
		}
		return nil, nil, fmt.Errorf("failed to create vault: %w", err)
	}
	v.AssetSymbol = symbol

	var adminCap models.AdminCap
	err = tx.QueryRow(ctx, `
		INSERT INTO admin_caps (vault_id, holder_id)
		VALUES ($1, $2)
		RETURNING id, vault_id, holder_id, created_at
	`, v.ID, creatorID).Scan(&adminCap.ID, &adminCap.VaultID, &adminCap.HolderID, &adminCap.CreatedAt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to issue admin capability: %w", err)
	}

	event, err := s.appendEvent(ctx, tx, v.ID, models.EventCreated, creatorID, 0, v.Values())
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("vault created", "vault_id", v.ID, "asset", symbol, "creator", creatorID)
	s.publish(event)

	return &v, &adminCap, nil
}

func (s *VaultService) GetByID(ctx context.Context, vaultID uuid.UUID) (*models.Vault, error) {
	v, err := scanVault(s.db.Pool.QueryRow(ctx, `
		SELECT `+vaultColumns+`
		FROM vaults v
		JOIN assets a ON a.id = v.asset_id
		WHERE v.id = $1
	`, vaultID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVaultNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *VaultService) List(ctx context.Context) ([]models.Vault, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+vaultColumns+`
		FROM vaults v
		JOIN assets a ON a.id = v.asset_id
		ORDER BY v.created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vaults []models.Vault
	for rows.Next() {
		v, err := scanVault(rows)
		if err != nil {
			return nil, err
		}
		vaults = append(vaults, *v)
	}
	return vaults, rows.Err()
}

// Values returns the vault's base balance and total share supply.
func (s *VaultService) Values(ctx context.Context, vaultID uuid.UUID) (vault.Values, error) {
	var v models.Vault
	err := s.db.Pool.QueryRow(ctx, `
		SELECT base_balance, share_supply FROM vaults WHERE id = $1
	`, vaultID).Scan(&v.BaseBalance, &v.ShareSupply)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vault.Values{}, ErrVaultNotFound
		}
		return vault.Values{}, err
	}
	return v.Values(), nil
}

func (s *VaultService) lockVault(ctx context.Context, tx pgx.Tx, vaultID uuid.UUID) (*models.Vault, error) {
	var v models.Vault
	err := tx.QueryRow(ctx, `
		SELECT id, asset_id, base_balance, share_supply
		FROM vaults WHERE id = $1
		FOR UPDATE
	`, vaultID).Scan(&v.ID, &v.AssetID, &v.BaseBalance, &v.ShareSupply)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVaultNotFound
		}
		return nil, fmt.Errorf("failed to lock vault: %w", err)
	}
	return &v, nil
}

func (s *VaultService) storeValues(ctx context.Context, tx pgx.Tx, vaultID uuid.UUID, next vault.Values) error {
	base, err := toInt64(next.Base)
	if err != nil {
		return err
	}
	shares, err := toInt64(next.Shares)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `
		UPDATE vaults SET base_balance = $1, share_supply = $2, updated_at = NOW()
		WHERE id = $3
	`, base, shares, vaultID)
	if err != nil {
		return fmt.Errorf("failed to update vault: %w", err)
	}
	return nil
}

// Deposit moves amount from the caller's coin into the vault and mints a share
// token of the same value to the caller.
func (s *VaultService) Deposit(ctx context.Context, vaultID, coinID, callerID uuid.UUID, amount uint64) (*DepositResult, error) {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	v, err := s.lockVault(ctx, tx, vaultID)
	if err != nil {
		return nil, err
	}
	coin, err := s.coins.lock(ctx, tx, coinID, callerID)
	if err != nil {
		return nil, err
	}
	if coin.GroupID != v.AssetID {
		return nil, ErrAssetMismatch
	}

	next, err := vault.ApplyDeposit(v.Values(), uint64(coin.Value), amount)
	if err != nil {
		s.logger.Warn("deposit rejected", "vault_id", vaultID, "actor", callerID, "amount", amount, "error", err)
		return nil, err
	}
	if err := s.storeValues(ctx, tx, vaultID, next); err != nil {
		return nil, err
	}

	coin.Value -= int64(amount)
	if err := s.coins.setValue(ctx, tx, coin.ID, coin.Value); err != nil {
		return nil, err
	}

	share, err := s.shares.insert(ctx, tx, vaultID, callerID, int64(amount))
	if err != nil {
		return nil, err
	}

	event, err := s.appendEvent(ctx, tx, vaultID, models.EventDeposit, callerID, int64(amount), next)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("deposit", "vault_id", vaultID, "actor", callerID, "amount", amount,
		"base_balance", next.Base, "share_supply", next.Shares)
	s.publish(event)

	return &DepositResult{Share: share.share(), Coin: coin.coin(), Values: next}, nil
}

// Withdraw burns amount from the caller's share token and pays the same amount
// of base asset out as a new coin.
func (s *VaultService) Withdraw(ctx context.Context, vaultID, shareID, callerID uuid.UUID, amount uint64) (*WithdrawResult, error) {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	v, err := s.lockVault(ctx, tx, vaultID)
	if err != nil {
		return nil, err
	}
	share, err := s.shares.lock(ctx, tx, shareID, callerID)
	if err != nil {
		return nil, err
	}
	if share.GroupID != v.ID {
		return nil, ErrVaultMismatch
	}

	next, err := vault.ApplyWithdraw(v.Values(), uint64(share.Value), amount)
	if err != nil {
		s.logger.Warn("withdraw rejected", "vault_id", vaultID, "actor", callerID, "amount", amount, "error", err)
		return nil, err
	}
	if err := s.storeValues(ctx, tx, vaultID, next); err != nil {
		return nil, err
	}

	share.Value -= int64(amount)
	if err := s.shares.setValue(ctx, tx, share.ID, share.Value); err != nil {
		return nil, err
	}

	coin, err := s.coins.insert(ctx, tx, v.AssetID, callerID, int64(amount))
	if err != nil {
		return nil, err
	}

	event, err := s.appendEvent(ctx, tx, vaultID, models.EventWithdraw, callerID, int64(amount), next)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("withdraw", "vault_id", vaultID, "actor", callerID, "amount", amount,
		"base_balance", next.Base, "share_supply", next.Shares)
	s.publish(event)

	return &WithdrawResult{Coin: coin.coin(), Share: share.share(), Values: next}, nil
}

func (s *VaultService) appendEvent(ctx context.Context, tx pgx.Tx, vaultID uuid.UUID, kind string, actorID uuid.UUID, amount int64, values vault.Values) (*models.VaultEvent, error) {
	base, err := toInt64(values.Base)
	if err != nil {
		return nil, err
	}
	shares, err := toInt64(values.Shares)
	if err != nil {
		return nil, err
	}

	event := models.VaultEvent{
		VaultID:     vaultID,
		Kind:        kind,
		ActorID:     actorID,
		Amount:      amount,
		BaseBalance: base,
		ShareSupply: shares,
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO vault_events (vault_id, kind, actor_id, amount, base_balance, share_supply)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, vaultID, kind, actorID, amount, base, shares).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to record vault event: %w", err)
	}
	return &event, nil
}

func (s *VaultService) publish(event *models.VaultEvent) {
	if s.publisher != nil && event != nil {
		s.publisher.PublishVaultEvent(event)
	}
}

// ListEvents returns the vault's journal, newest first.
func (s *VaultService) ListEvents(ctx context.Context, vaultID uuid.UUID, limit int) ([]models.VaultEvent, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, vault_id, kind, actor_id, amount, base_balance, share_supply, created_at
		FROM vault_events
		WHERE vault_id = $1
		ORDER BY id DESC
		LIMIT $2
	`, vaultID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.VaultEvent
	for rows.Next() {
		var e models.VaultEvent
		if err := rows.Scan(&e.ID, &e.VaultID, &e.Kind, &e.ActorID, &e.Amount,
			&e.BaseBalance, &e.ShareSupply, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (s *VaultService) GetAdminCaps(ctx context.Context, holderID uuid.UUID) ([]models.AdminCap, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, vault_id, holder_id, created_at
		FROM admin_caps
		WHERE holder_id = $1
		ORDER BY created_at
	`, holderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var caps []models.AdminCap
	for rows.Next() {
		var c models.AdminCap
		if err := rows.Scan(&c.ID, &c.VaultID, &c.HolderID, &c.CreatedAt); err != nil {
			return nil, err
		}
		caps = append(caps, c)
	}
	return caps, rows.Err()
}

// VerifyAdmin returns ErrAdminCapInvalid unless capID was issued for vaultID
// and is held by holderID.
func (s *VaultService) VerifyAdmin(ctx context.Context, capID, vaultID, holderID uuid.UUID) error {
	var adminCap models.AdminCap
	err := s.db.Pool.QueryRow(ctx, `
		SELECT vault_id, holder_id FROM admin_caps WHERE id = $1
	`, capID).Scan(&adminCap.VaultID, &adminCap.HolderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrAdminCapInvalid
		}
		return err
	}
	if adminCap.VaultID != vaultID || adminCap.HolderID != holderID {
		return ErrAdminCapInvalid
	}
	return nil
}

// ListHolders aggregates outstanding share value per account. Accounts whose
// tokens are all empty are omitted.
func (s *VaultService) ListHolders(ctx context.Context, vaultID uuid.UUID) ([]models.Holder, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT s.owner_id, a.name, SUM(s.value)::BIGINT AS shares, COUNT(*) AS tokens
		FROM share_tokens s
		JOIN accounts a ON a.id = s.owner_id
		WHERE s.vault_id = $1
		GROUP BY s.owner_id, a.name
		HAVING SUM(s.value) > 0
		ORDER BY shares DESC
	`, vaultID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holders []models.Holder
	for rows.Next() {
		var h models.Holder
		if err := rows.Scan(&h.OwnerID, &h.AccountName, &h.Shares, &h.Tokens); err != nil {
			return nil, err
		}
		holders = append(holders, h)
	}
	return holders, rows.Err()
}
