package handler

import (
	"net/http"

	"stockroom/internal/config"
	"stockroom/internal/dto"
	"stockroom/internal/middleware"
	"stockroom/internal/repository"
	"stockroom/internal/respond"
	"stockroom/internal/service"

	"github.com/gin-gonic/gin"
)

type SalesHandler struct {
	sales service.SalesService
	cfg   *config.Config
}

func NewSalesHandler(sales service.SalesService, cfg *config.Config) *SalesHandler {
	return &SalesHandler{sales: sales, cfg: cfg}
}

func (h *SalesHandler) Create(c *gin.Context) {
	var req dto.CreateSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}

	actor := middleware.CurrentUser(c)
	sale, err := h.sales.CreateSale(c.Request.Context(), actor.ID, req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Created(c, "sale recorded", sale)
}

func (h *SalesHandler) List(c *gin.Context) {
	var q dto.SaleFilter
	if err := c.ShouldBindQuery(&q); err != nil {
		respond.Fail(c, http.StatusBadRequest, "invalid query parameters", nil)
		return
	}

	start, err := parseDateBound(q.StartDate, false)
	if err != nil {
		respond.Error(c, err)
		return
	}
	end, err := parseDateBound(q.EndDate, true)
	if err != nil {
		respond.Error(c, err)
		return
	}

	page, perPage := pageParams(c, h.cfg)
	f := repository.SaleFilter{
		Start:     start,
		End:       end,
		ProductID: q.ProductID,
		Page:      page,
		PerPage:   perPage,
	}

	sales, total, err := h.sales.ListSales(c.Request.Context(), f)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Paginated(c, "sales retrieved", sales, page, perPage, total)
}

func (h *SalesHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	sale, err := h.sales.GetSale(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	if sale == nil {
		respond.NotFound(c, "sale")
		return
	}
	respond.OK(c, "sale retrieved", sale)
}

// Delete reverses a sale: the sold quantity returns to stock and the row is
// removed.
func (h *SalesHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.sales.DeleteSale(c.Request.Context(), id); err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, "sale deleted", nil)
}

func (h *SalesHandler) Total(c *gin.Context) {
	start, err := parseDateBound(c.Query("start_date"), false)
	if err != nil {
		respond.Error(c, err)
		return
	}
	end, err := parseDateBound(c.Query("end_date"), true)
	if err != nil {
		respond.Error(c, err)
		return
	}

	total, err := h.sales.TotalSales(c.Request.Context(), start, end)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, "total sales computed", dto.TotalSalesResponse{TotalSales: total})
}
