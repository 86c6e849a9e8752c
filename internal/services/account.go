package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dimitrije/sharevault/internal/database"
	"github.com/dimitrije/sharevault/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrAccountNotFound = errors.New("account not found")

type AccountService struct {
	db *database.DB
}

func NewAccountService(db *database.DB) *AccountService {
	return &AccountService{db: db}
}

func (s *AccountService) Create(ctx context.Context, name string) (*models.Account, error) {
	var account models.Account
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO accounts (name)
		VALUES ($1)
		RETURNING id, name, created_at
	`, name).Scan(&account.ID, &account.Name, &account.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return &account, nil
}

func (s *AccountService) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	var account models.Account
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, name, created_at
		FROM accounts WHERE id = $1
	`, id).Scan(&account.ID, &account.Name, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}
