package handler

import (
	"stockroom/internal/config"
	"stockroom/internal/dto"
	"stockroom/internal/respond"
	"stockroom/internal/service"

	"github.com/gin-gonic/gin"
)

type SupplierHandler struct {
	suppliers service.SupplierService
	cfg       *config.Config
}

func NewSupplierHandler(suppliers service.SupplierService, cfg *config.Config) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers, cfg: cfg}
}

func (h *SupplierHandler) Create(c *gin.Context) {
	var req dto.CreateSupplierRequest
	if !bindAndValidate(c, &req) {
		return
	}
	supplier, err := h.suppliers.Create(c.Request.Context(), req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Created(c, "supplier created", supplier)
}

func (h *SupplierHandler) List(c *gin.Context) {
	page, perPage := pageParams(c, h.cfg)
	search := c.Query("search")
	suppliers, total, err := h.suppliers.List(c.Request.Context(), search, page, perPage)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Paginated(c, "suppliers retrieved", suppliers, page, perPage, total)
}

func (h *SupplierHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	supplier, err := h.suppliers.Get(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	if supplier == nil {
		respond.NotFound(c, "supplier")
		return
	}
	respond.OK(c, "supplier retrieved", supplier)
}

func (h *SupplierHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.UpdateSupplierRequest
	if !bindAndValidate(c, &req) {
		return
	}
	supplier, err := h.suppliers.Update(c.Request.Context(), id, req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	if supplier == nil {
		respond.NotFound(c, "supplier")
		return
	}
	respond.OK(c, "supplier updated", supplier)
}

func (h *SupplierHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	deleted, err := h.suppliers.Delete(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	if !deleted {
		respond.NotFound(c, "supplier")
		return
	}
	respond.OK(c, "supplier deleted", nil)
}
