package services

import (
	"context"
	"errors"

	"github.com/dimitrije/sharevault/internal/database"
	"github.com/dimitrije/sharevault/internal/models"
	"github.com/dimitrije/sharevault/pkg/vault"
	"github.com/google/uuid"
)

var (
	ErrShareNotFound = errors.New("share token not found")
	ErrVaultMismatch = vault.ErrVaultMismatch
)

type ShareService struct {
	store *holdingStore
}

func NewShareService(db *database.DB) *ShareService {
	return &ShareService{store: newShareStore(db)}
}

func newShareStore(db *database.DB) *holdingStore {
	return &holdingStore{
		db:       db,
		table:    "share_tokens",
		group:    "vault_id",
		notFound: ErrShareNotFound,
		mismatch: ErrVaultMismatch,
	}
}

func (h holdingRow) share() *models.ShareToken {
	return &models.ShareToken{
		ID:        h.ID,
		VaultID:   h.GroupID,
		OwnerID:   h.OwnerID,
		Value:     h.Value,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

func (s *ShareService) List(ctx context.Context, ownerID uuid.UUID) ([]models.ShareToken, error) {
	rows, err := s.store.list(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	shares := make([]models.ShareToken, 0, len(rows))
	for _, r := range rows {
		shares = append(shares, *r.share())
	}
	return shares, nil
}

func (s *ShareService) Get(ctx context.Context, shareID, ownerID uuid.UUID) (*models.ShareToken, error) {
	row, err := s.store.get(ctx, shareID, ownerID)
	if err != nil {
		return nil, err
	}
	return row.share(), nil
}

func (s *ShareService) Split(ctx context.Context, shareID, ownerID uuid.UUID, amount uint64) (*models.ShareToken, *models.ShareToken, error) {
	orig, part, err := s.store.split(ctx, shareID, ownerID, amount)
	if err != nil {
		return nil, nil, err
	}
	return orig.share(), part.share(), nil
}

func (s *ShareService) Merge(ctx context.Context, shareID, otherID, ownerID uuid.UUID) (*models.ShareToken, error) {
	row, err := s.store.merge(ctx, shareID, otherID, ownerID)
	if err != nil {
		return nil, err
	}
	return row.share(), nil
}

func (s *ShareService) Transfer(ctx context.Context, shareID, ownerID, to uuid.UUID) (*models.ShareToken, error) {
	row, err := s.store.transfer(ctx, shareID, ownerID, to)
	if err != nil {
		return nil, err
	}
	return row.share(), nil
}
