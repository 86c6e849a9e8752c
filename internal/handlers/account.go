package handlers

import (
	"time"

	"github.com/dimitrije/sharevault/internal/middleware"
	"github.com/dimitrije/sharevault/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

type AccountHandler struct {
	accountService AccountServiceInterface
	assetService   AssetServiceInterface
}

func NewAccountHandler(accountService AccountServiceInterface, assetService AssetServiceInterface) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		assetService:   assetService,
	}
}

func (h *AccountHandler) GetMe(c *drift.Context) {
	accountID := middleware.GetAccountID(c)
	if accountID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	account, err := h.accountService.GetByID(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err, "failed to get account")
		return
	}

	_ = c.JSON(200, dto.AccountResponse{
		ID:        account.ID,
		Name:      account.Name,
		CreatedAt: account.CreatedAt.Format(time.RFC3339),
	})
}

func (h *AccountHandler) ListAssets(c *drift.Context) {
	assets, err := h.assetService.List(c.Request.Context())
	if err != nil {
		c.InternalServerError("failed to list assets")
		return
	}

	response := make([]dto.AssetResponse, 0, len(assets))
	for _, a := range assets {
		response = append(response, dto.AssetResponse{
			ID:       a.ID,
			Symbol:   a.Symbol,
			Decimals: a.Decimals,
		})
	}
	_ = c.JSON(200, response)
}
