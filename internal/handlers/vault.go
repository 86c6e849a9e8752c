package handlers

import (
	"strconv"

	"github.com/dimitrije/sharevault/internal/middleware"
	"github.com/dimitrije/sharevault/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

const defaultEventsLimit = 50

type VaultHandler struct {
	vaultService VaultServiceInterface
	maxEvents    int
}

func NewVaultHandler(vaultService VaultServiceInterface, maxEvents int) *VaultHandler {
	if maxEvents <= 0 {
		maxEvents = 500
	}
	return &VaultHandler{
		vaultService: vaultService,
		maxEvents:    maxEvents,
	}
}

func vaultIDParam(c *drift.Context) (uuid.UUID, bool) {
	vaultID, err := uuid.Parse(c.Param("vaultId"))
	if err != nil {
		c.BadRequest("invalid vault id")
		return uuid.Nil, false
	}
	return vaultID, true
}

func (h *VaultHandler) Create(c *drift.Context) {
	accountID := middleware.GetAccountID(c)
	if accountID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.CreateVaultRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.AssetID == uuid.Nil {
		c.BadRequest("asset_id is required")
		return
	}

	v, adminCap, err := h.vaultService.Create(c.Request.Context(), req.AssetID, accountID)
	if err != nil {
		respondError(c, err, "failed to create vault")
		return
	}

	_ = c.JSON(201, dto.CreateVaultResponse{
		Vault:    vaultResponse(v),
		AdminCap: adminCapResponse(adminCap),
	})
}

func (h *VaultHandler) List(c *drift.Context) {
	vaults, err := h.vaultService.List(c.Request.Context())
	if err != nil {
		c.InternalServerError("failed to list vaults")
		return
	}

	response := make([]dto.VaultResponse, 0, len(vaults))
	for i := range vaults {
		response = append(response, vaultResponse(&vaults[i]))
	}
	_ = c.JSON(200, response)
}

func (h *VaultHandler) Get(c *drift.Context) {
	vaultID, ok := vaultIDParam(c)
	if !ok {
		return
	}

	v, err := h.vaultService.GetByID(c.Request.Context(), vaultID)
	if err != nil {
		respondError(c, err, "failed to get vault")
		return
	}
	_ = c.JSON(200, vaultResponse(v))
}

func (h *VaultHandler) Values(c *drift.Context) {
	vaultID, ok := vaultIDParam(c)
	if !ok {
		return
	}

	values, err := h.vaultService.Values(c.Request.Context(), vaultID)
	if err != nil {
		respondError(c, err, "failed to get vault values")
		return
	}
	_ = c.JSON(200, valuesResponse(vaultID, values))
}

func (h *VaultHandler) Deposit(c *drift.Context) {
	accountID := middleware.GetAccountID(c)
	if accountID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}
	vaultID, ok := vaultIDParam(c)
	if !ok {
		return
	}

	var req dto.DepositRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.CoinID == uuid.Nil {
		c.BadRequest("coin_id is required")
		return
	}

	res, err := h.vaultService.Deposit(c.Request.Context(), vaultID, req.CoinID, accountID, req.Amount)
	if err != nil {
		respondError(c, err, "failed to deposit")
		return
	}

	_ = c.JSON(201, dto.DepositResponse{
		Share:  shareResponse(res.Share),
		Coin:   coinResponse(res.Coin),
		Values: valuesResponse(vaultID, res.Values),
	})
}

func (h *VaultHandler) Withdraw(c *drift.Context) {
	accountID := middleware.GetAccountID(c)
	if accountID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}
	vaultID, ok := vaultIDParam(c)
	if !ok {
		return
	}

	var req dto.WithdrawRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.ShareID == uuid.Nil {
		c.BadRequest("share_id is required")
		return
	}

	res, err := h.vaultService.Withdraw(c.Request.Context(), vaultID, req.ShareID, accountID, req.Amount)
	if err != nil {
		respondError(c, err, "failed to withdraw")
		return
	}

	_ = c.JSON(200, dto.WithdrawResponse{
		Coin:   coinResponse(res.Coin),
		Share:  shareResponse(res.Share),
		Values: valuesResponse(vaultID, res.Values),
	})
}

func (h *VaultHandler) Events(c *drift.Context) {
	vaultID, ok := vaultIDParam(c)
	if !ok {
		return
	}

	limit := defaultEventsLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.BadRequest("limit must be a positive integer")
			return
		}
		limit = min(n, h.maxEvents)
	}

	ctx := c.Request.Context()
	if _, err := h.vaultService.GetByID(ctx, vaultID); err != nil {
		respondError(c, err, "failed to get vault")
		return
	}

	events, err := h.vaultService.ListEvents(ctx, vaultID, limit)
	if err != nil {
		c.InternalServerError("failed to list vault events")
		return
	}

	response := make([]dto.VaultEventResponse, 0, len(events))
	for i := range events {
		response = append(response, eventResponse(&events[i]))
	}
	_ = c.JSON(200, response)
}

// Holders runs behind middleware.AdminCap.
func (h *VaultHandler) Holders(c *drift.Context) {
	vaultID, ok := vaultIDParam(c)
	if !ok {
		return
	}

	holders, err := h.vaultService.ListHolders(c.Request.Context(), vaultID)
	if err != nil {
		c.InternalServerError("failed to list holders")
		return
	}

	response := make([]dto.HolderResponse, 0, len(holders))
	for _, holder := range holders {
		response = append(response, dto.HolderResponse{
			AccountID:   holder.OwnerID,
			AccountName: holder.AccountName,
			Shares:      uint64(holder.Shares),
			Tokens:      holder.Tokens,
		})
	}
	_ = c.JSON(200, response)
}

func (h *VaultHandler) AdminCaps(c *drift.Context) {
	accountID := middleware.GetAccountID(c)
	if accountID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	caps, err := h.vaultService.GetAdminCaps(c.Request.Context(), accountID)
	if err != nil {
		c.InternalServerError("failed to list admin capabilities")
		return
	}

	response := make([]dto.AdminCapResponse, 0, len(caps))
	for i := range caps {
		response = append(response, adminCapResponse(&caps[i]))
	}
	_ = c.JSON(200, response)
}
