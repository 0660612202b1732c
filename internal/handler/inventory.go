package handler

import (
	"stockroom/internal/config"
	"stockroom/internal/dto"
	"stockroom/internal/middleware"
	"stockroom/internal/respond"
	"stockroom/internal/service"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	inventory service.InventoryService
	cfg       *config.Config
}

func NewInventoryHandler(inventory service.InventoryService, cfg *config.Config) *InventoryHandler {
	return &InventoryHandler{inventory: inventory, cfg: cfg}
}

func (h *InventoryHandler) Record(c *gin.Context) {
	var req dto.RecordTransactionRequest
	if !bindAndValidate(c, &req) {
		return
	}

	actor := middleware.CurrentUser(c)
	txn, err := h.inventory.RecordTransaction(c.Request.Context(), actor.ID, req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Created(c, "transaction recorded", txn)
}

func (h *InventoryHandler) ListByProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	page, perPage := pageParams(c, h.cfg)
	txns, total, err := h.inventory.ListByProduct(c.Request.Context(), id, page, perPage)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Paginated(c, "transactions retrieved", txns, page, perPage, total)
}
