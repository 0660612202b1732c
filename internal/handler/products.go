package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"stockroom/internal/config"
	"stockroom/internal/dto"
	"stockroom/internal/middleware"
	"stockroom/internal/respond"
	"stockroom/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const barcodeCacheTTL = 5 * time.Minute

type ProductHandler struct {
	products service.ProductService
	cache    *redis.Client
	cfg      *config.Config
}

// NewProductHandler wires the product endpoints. cache may be nil; barcode
// lookups then go straight to the database.
func NewProductHandler(products service.ProductService, cache *redis.Client, cfg *config.Config) *ProductHandler {
	return &ProductHandler{products: products, cache: cache, cfg: cfg}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}

	actor := middleware.CurrentUser(c)
	product, err := h.products.Create(c.Request.Context(), actor.ID, req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Created(c, "product created", product)
}

func (h *ProductHandler) List(c *gin.Context) {
	var f dto.ProductFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		respond.Fail(c, http.StatusBadRequest, "invalid query parameters", nil)
		return
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = h.cfg.DefaultPageSize
	}
	if f.PerPage > h.cfg.MaxPageSize {
		f.PerPage = h.cfg.MaxPageSize
	}

	products, total, err := h.products.List(c.Request.Context(), f)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Paginated(c, "products retrieved", products, f.Page, f.PerPage, total)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	if product == nil {
		respond.NotFound(c, "product")
		return
	}
	respond.OK(c, "product retrieved", product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.UpdateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}

	product, err := h.products.Update(c.Request.Context(), id, req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	if product == nil {
		respond.NotFound(c, "product")
		return
	}
	h.invalidateBarcode(c.Request.Context(), product.Barcode)
	respond.OK(c, "product updated", product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	if product == nil {
		respond.NotFound(c, "product")
		return
	}

	deleted, err := h.products.Delete(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	if !deleted {
		respond.NotFound(c, "product")
		return
	}
	h.invalidateBarcode(c.Request.Context(), product.Barcode)
	respond.OK(c, "product deleted", nil)
}

func (h *ProductHandler) LowStock(c *gin.Context) {
	products, err := h.products.LowStock(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, "low stock products retrieved", products)
}

func (h *ProductHandler) InventoryValue(c *gin.Context) {
	value, err := h.products.InventoryValue(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, "inventory value computed", gin.H{"inventory_value": value})
}

func (h *ProductHandler) AdjustStock(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.AdjustStockRequest
	if !bindAndValidate(c, &req) {
		return
	}

	actor := middleware.CurrentUser(c)
	product, err := h.products.AdjustStock(c.Request.Context(), actor.ID, id, req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	if product == nil {
		respond.NotFound(c, "product")
		return
	}
	h.invalidateBarcode(c.Request.Context(), product.Barcode)
	respond.OK(c, "stock adjusted", product)
}

// BarcodeLookup serves the point-of-sale scan path: read-through cache in
// front of the product table, keyed by barcode.
func (h *ProductHandler) BarcodeLookup(c *gin.Context) {
	barcode := c.Param("barcode")

	if h.cache != nil {
		if raw, err := h.cache.Get(c.Request.Context(), barcodeKey(barcode)).Result(); err == nil {
			var cached dto.BarcodeLookupResponse
			if json.Unmarshal([]byte(raw), &cached) == nil {
				respond.OK(c, "product retrieved", cached)
				return
			}
		}
	}

	product, err := h.products.GetByBarcode(c.Request.Context(), barcode)
	if err != nil {
		respond.Error(c, err)
		return
	}
	if product == nil {
		respond.NotFound(c, "product")
		return
	}

	resp := dto.BarcodeLookupResponse{
		ID:              product.ID,
		Name:            product.Name,
		SKU:             product.SKU,
		Price:           product.Price,
		QuantityInStock: product.QuantityInStock,
	}
	if h.cache != nil {
		if raw, err := json.Marshal(resp); err == nil {
			if err := h.cache.Set(c.Request.Context(), barcodeKey(barcode), raw, barcodeCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Str("barcode", barcode).Msg("barcode cache set failed")
			}
		}
	}
	respond.OK(c, "product retrieved", resp)
}

func (h *ProductHandler) invalidateBarcode(ctx context.Context, barcode *string) {
	if h.cache == nil || barcode == nil || *barcode == "" {
		return
	}
	if err := h.cache.Del(ctx, barcodeKey(*barcode)).Err(); err != nil {
		log.Warn().Err(err).Str("barcode", *barcode).Msg("barcode cache invalidation failed")
	}
}

func barcodeKey(barcode string) string { return "product:barcode:" + barcode }
