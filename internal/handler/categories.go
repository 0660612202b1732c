package handler

import (
	"stockroom/internal/config"
	"stockroom/internal/dto"
	"stockroom/internal/respond"
	"stockroom/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categories service.CategoryService
	cfg        *config.Config
}

func NewCategoryHandler(categories service.CategoryService, cfg *config.Config) *CategoryHandler {
	return &CategoryHandler{categories: categories, cfg: cfg}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	category, err := h.categories.Create(c.Request.Context(), req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Created(c, "category created", category)
}

func (h *CategoryHandler) List(c *gin.Context) {
	page, perPage := pageParams(c, h.cfg)
	categories, total, err := h.categories.List(c.Request.Context(), page, perPage)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Paginated(c, "categories retrieved", categories, page, perPage, total)
}

func (h *CategoryHandler) Roots(c *gin.Context) {
	categories, err := h.categories.Roots(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, "root categories retrieved", categories)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	category, err := h.categories.Get(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	if category == nil {
		respond.NotFound(c, "category")
		return
	}
	respond.OK(c, "category retrieved", category)
}

func (h *CategoryHandler) Subcategories(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	categories, err := h.categories.Subcategories(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, "subcategories retrieved", categories)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.UpdateCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	category, err := h.categories.Update(c.Request.Context(), id, req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	if category == nil {
		respond.NotFound(c, "category")
		return
	}
	respond.OK(c, "category updated", category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	deleted, err := h.categories.Delete(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	if !deleted {
		respond.NotFound(c, "category")
		return
	}
	respond.OK(c, "category deleted", nil)
}
