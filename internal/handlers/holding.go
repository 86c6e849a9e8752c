package handlers

import (
	"github.com/dimitrije/sharevault/internal/middleware"
	"github.com/dimitrije/sharevault/internal/models"
	"github.com/dimitrije/sharevault/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

// HoldingHandler serves the owned-container routes for one kind of holding.
// M is the stored model and R its response body.
type HoldingHandler[M any, R any] struct {
	service HoldingServiceInterface[M]
	param   string
	noun    string
	convert func(*M) R
}

func NewCoinHandler(service HoldingServiceInterface[models.Coin]) *HoldingHandler[models.Coin, dto.CoinResponse] {
	return &HoldingHandler[models.Coin, dto.CoinResponse]{
		service: service,
		param:   "coinId",
		noun:    "coin",
		convert: coinResponse,
	}
}

func NewShareHandler(service HoldingServiceInterface[models.ShareToken]) *HoldingHandler[models.ShareToken, dto.ShareResponse] {
	return &HoldingHandler[models.ShareToken, dto.ShareResponse]{
		service: service,
		param:   "shareId",
		noun:    "share",
		convert: shareResponse,
	}
}

func (h *HoldingHandler[M, R]) caller(c *drift.Context) (uuid.UUID, bool) {
	accountID := middleware.GetAccountID(c)
	if accountID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return uuid.Nil, false
	}
	return accountID, true
}

func (h *HoldingHandler[M, R]) target(c *drift.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(h.param))
	if err != nil {
		c.BadRequest("invalid " + h.noun + " id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *HoldingHandler[M, R]) List(c *drift.Context) {
	accountID, ok := h.caller(c)
	if !ok {
		return
	}

	items, err := h.service.List(c.Request.Context(), accountID)
	if err != nil {
		c.InternalServerError("failed to list " + h.noun + "s")
		return
	}

	response := make([]R, 0, len(items))
	for i := range items {
		response = append(response, h.convert(&items[i]))
	}
	_ = c.JSON(200, response)
}

func (h *HoldingHandler[M, R]) Get(c *drift.Context) {
	accountID, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.target(c)
	if !ok {
		return
	}

	item, err := h.service.Get(c.Request.Context(), id, accountID)
	if err != nil {
		respondError(c, err, "failed to get "+h.noun)
		return
	}
	_ = c.JSON(200, h.convert(item))
}

func (h *HoldingHandler[M, R]) Split(c *drift.Context) {
	accountID, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.target(c)
	if !ok {
		return
	}

	var req dto.SplitRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	orig, part, err := h.service.Split(c.Request.Context(), id, accountID, req.Amount)
	if err != nil {
		respondError(c, err, "failed to split "+h.noun)
		return
	}

	_ = c.JSON(201, dto.SplitResponse[R]{
		Original: h.convert(orig),
		Split:    h.convert(part),
	})
}

func (h *HoldingHandler[M, R]) Merge(c *drift.Context) {
	accountID, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.target(c)
	if !ok {
		return
	}

	var req dto.MergeRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.OtherID == uuid.Nil {
		c.BadRequest("other_id is required")
		return
	}

	merged, err := h.service.Merge(c.Request.Context(), id, req.OtherID, accountID)
	if err != nil {
		respondError(c, err, "failed to merge "+h.noun)
		return
	}
	_ = c.JSON(200, h.convert(merged))
}

func (h *HoldingHandler[M, R]) Transfer(c *drift.Context) {
	accountID, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.target(c)
	if !ok {
		return
	}

	var req dto.TransferRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.To == uuid.Nil {
		c.BadRequest("to is required")
		return
	}

	moved, err := h.service.Transfer(c.Request.Context(), id, accountID, req.To)
	if err != nil {
		respondError(c, err, "failed to transfer "+h.noun)
		return
	}
	_ = c.JSON(200, h.convert(moved))
}
