package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/dimitrije/sharevault/internal/database"
	"github.com/dimitrije/sharevault/pkg/vault"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrInsufficientBalance = vault.ErrInsufficientBalance
	ErrOverflow            = vault.ErrOverflow
	ErrSelfMerge           = errors.New("cannot merge a holding into itself")
)

// holdingRow is the column layout shared by coins and share_tokens. groupID is
// the asset for a coin and the issuing vault for a share token.
type holdingRow struct {
	ID        uuid.UUID
	GroupID   uuid.UUID
	OwnerID   uuid.UUID
	Value     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// holdingStore implements the owned-container operations over one table.
// Splits, merges and transfers move value between rows of the same group and
// never change the group total.
type holdingStore struct {
	db       *database.DB
	table    string
	group    string
	notFound error
	mismatch error
}

func (s *holdingStore) columns() string {
	return "id, " + s.group + ", owner_id, value, created_at, updated_at"
}

func scanHolding(row pgx.Row) (holdingRow, error) {
	var h holdingRow
	err := row.Scan(&h.ID, &h.GroupID, &h.OwnerID, &h.Value, &h.CreatedAt, &h.UpdatedAt)
	return h, err
}

func (s *holdingStore) list(ctx context.Context, ownerID uuid.UUID) ([]holdingRow, error) {
	rows, err := s.db.Pool.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE owner_id = $1
		ORDER BY created_at
	`, s.columns(), s.table), ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []holdingRow
	for rows.Next() {
		h, err := scanHolding(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (s *holdingStore) get(ctx context.Context, id, ownerID uuid.UUID) (holdingRow, error) {
	h, err := scanHolding(s.db.Pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM %s WHERE id = $1 AND owner_id = $2
	`, s.columns(), s.table), id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holdingRow{}, s.notFound
		}
		return holdingRow{}, err
	}
	return h, nil
}

// lock selects the caller's row FOR UPDATE inside tx.
func (s *holdingStore) lock(ctx context.Context, tx pgx.Tx, id, ownerID uuid.UUID) (holdingRow, error) {
	h, err := scanHolding(tx.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM %s WHERE id = $1 AND owner_id = $2 FOR UPDATE
	`, s.columns(), s.table), id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holdingRow{}, s.notFound
		}
		return holdingRow{}, fmt.Errorf("failed to lock %s: %w", s.table, err)
	}
	return h, nil
}

func (s *holdingStore) setValue(ctx context.Context, tx pgx.Tx, id uuid.UUID, value int64) error {
	_, err := tx.Exec(ctx, fmt.Sprintf(`
		UPDATE %s SET value = $1, updated_at = NOW() WHERE id = $2
	`, s.table), value, id)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", s.table, err)
	}
	return nil
}

func (s *holdingStore) insert(ctx context.Context, tx pgx.Tx, groupID, ownerID uuid.UUID, value int64) (holdingRow, error) {
	h, err := scanHolding(tx.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO %s (%s, owner_id, value)
		VALUES ($1, $2, $3)
		RETURNING %s
	`, s.table, s.group, s.columns()), groupID, ownerID, value))
	if err != nil {
		return holdingRow{}, fmt.Errorf("failed to insert %s: %w", s.table, err)
	}
	return h, nil
}

// split moves amount out of the holding into a new one owned by the same
// account. It returns the updated original and the new holding.
func (s *holdingStore) split(ctx context.Context, id, ownerID uuid.UUID, amount uint64) (holdingRow, holdingRow, error) {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return holdingRow{}, holdingRow{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orig, err := s.lock(ctx, tx, id, ownerID)
	if err != nil {
		return holdingRow{}, holdingRow{}, err
	}
	if uint64(orig.Value) < amount {
		return holdingRow{}, holdingRow{}, ErrInsufficientBalance
	}

	orig.Value -= int64(amount)
	if err := s.setValue(ctx, tx, orig.ID, orig.Value); err != nil {
		return holdingRow{}, holdingRow{}, err
	}

	part, err := s.insert(ctx, tx, orig.GroupID, ownerID, int64(amount))
	if err != nil {
		return holdingRow{}, holdingRow{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return holdingRow{}, holdingRow{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return orig, part, nil
}

// merge adds other's value to id and deletes other. Both rows are locked in
// id order.
func (s *holdingStore) merge(ctx context.Context, id, otherID, ownerID uuid.UUID) (holdingRow, error) {
	if id == otherID {
		return holdingRow{}, ErrSelfMerge
	}

	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return holdingRow{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE id = ANY($1) AND owner_id = $2
		ORDER BY id
		FOR UPDATE
	`, s.columns(), s.table), []uuid.UUID{id, otherID}, ownerID)
	if err != nil {
		return holdingRow{}, fmt.Errorf("failed to lock %s: %w", s.table, err)
	}
	locked := make(map[uuid.UUID]holdingRow, 2)
	for rows.Next() {
		h, err := scanHolding(rows)
		if err != nil {
			rows.Close()
			return holdingRow{}, err
		}
		locked[h.ID] = h
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return holdingRow{}, err
	}

	target, ok := locked[id]
	if !ok {
		return holdingRow{}, s.notFound
	}
	other, ok := locked[otherID]
	if !ok {
		return holdingRow{}, s.notFound
	}
	if target.GroupID != other.GroupID {
		return holdingRow{}, s.mismatch
	}
	if target.Value > math.MaxInt64-other.Value {
		return holdingRow{}, ErrOverflow
	}

	target.Value += other.Value
	if err := s.setValue(ctx, tx, target.ID, target.Value); err != nil {
		return holdingRow{}, err
	}
	if _, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, s.table), other.ID); err != nil {
		return holdingRow{}, fmt.Errorf("failed to delete merged %s: %w", s.table, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return holdingRow{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return target, nil
}

func (s *holdingStore) transfer(ctx context.Context, id, ownerID, to uuid.UUID) (holdingRow, error) {
	var exists bool
	err := s.db.Pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM accounts WHERE id = $1)
	`, to).Scan(&exists)
	if err != nil {
		return holdingRow{}, err
	}
	if !exists {
		return holdingRow{}, ErrAccountNotFound
	}

	h, err := scanHolding(s.db.Pool.QueryRow(ctx, fmt.Sprintf(`
		UPDATE %s SET owner_id = $1, updated_at = NOW()
		WHERE id = $2 AND owner_id = $3
		RETURNING %s
	`, s.table, s.columns()), to, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holdingRow{}, s.notFound
		}
		return holdingRow{}, fmt.Errorf("failed to transfer %s: %w", s.table, err)
	}
	return h, nil
}

func toInt64(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, ErrOverflow
	}
	return int64(v), nil
}
