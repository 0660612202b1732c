package service

import (
	"context"

	"stockroom/internal/apierror"
	"stockroom/internal/dto"
	"stockroom/internal/model"
	"stockroom/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductService interface {
	Create(ctx context.Context, createdBy uint, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, id uint) (*dto.ProductResponse, error)
	GetByBarcode(ctx context.Context, barcode string) (*dto.ProductResponse, error)
	List(ctx context.Context, f dto.ProductFilter) ([]dto.ProductResponse, int64, error)
	Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uint) (bool, error)
	LowStock(ctx context.Context) ([]dto.ProductResponse, error)
	InventoryValue(ctx context.Context) (decimal.Decimal, error)
	AdjustStock(ctx context.Context, actingUserID, id uint, req dto.AdjustStockRequest) (*dto.ProductResponse, error)
}

type productService struct {
	products  repository.ProductRepository
	inventory repository.InventoryRepository
}

func NewProductService(products repository.ProductRepository, inventory repository.InventoryRepository) ProductService {
	return &productService{products: products, inventory: inventory}
}

func (s *productService) Create(ctx context.Context, createdBy uint, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !req.Price.IsPositive() {
		return nil, apierror.NewValidation("price must be greater than 0")
	}
	exists, err := s.products.SKUExists(ctx, req.SKU, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apierror.NewValidation("SKU already exists")
	}

	reorder := 10
	if req.ReorderLevel != nil {
		reorder = *req.ReorderLevel
	}
	creator := createdBy
	product := model.Product{
		Name:            req.Name,
		SKU:             req.SKU,
		Description:     req.Description,
		CategoryID:      req.CategoryID,
		Price:           req.Price,
		CostPrice:       req.CostPrice,
		QuantityInStock: req.QuantityInStock,
		ReorderLevel:    reorder,
		SupplierID:      req.SupplierID,
		Barcode:         req.Barcode,
		IsActive:        true,
		CreatedBy:       &creator,
	}
	if err := s.products.Create(ctx, &product); err != nil {
		return nil, err
	}
	return productToResponse(&product), nil
}

func (s *productService) Get(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil || product == nil {
		return nil, err
	}
	return productToResponse(product), nil
}

func (s *productService) GetByBarcode(ctx context.Context, barcode string) (*dto.ProductResponse, error) {
	product, err := s.products.FindByBarcode(ctx, barcode)
	if err != nil || product == nil {
		return nil, err
	}
	return productToResponse(product), nil
}

func (s *productService) List(ctx context.Context, f dto.ProductFilter) ([]dto.ProductResponse, int64, error) {
	var (
		products []model.Product
		total    int64
		err      error
	)

	switch {
	case f.Search != "":
		products, total, err = s.products.Search(ctx, f.Search, f.Page, f.PerPage)
	case f.Status == "low_stock":
		// Low stock is a computed predicate, paginated in memory.
		all, lowErr := s.products.LowStock(ctx)
		if lowErr != nil {
			return nil, 0, lowErr
		}
		total = int64(len(all))
		products = pageSlice(all, f.Page, f.PerPage)
	default:
		filter := map[string]any{}
		if f.CategoryID != nil {
			filter["category_id"] = *f.CategoryID
		}
		if f.SupplierID != nil {
			filter["supplier_id"] = *f.SupplierID
		}
		if f.ActiveOnly == nil || *f.ActiveOnly {
			filter["is_active"] = true
		}
		products, total, err = s.products.List(ctx, filter, f.Page, f.PerPage)
	}
	if err != nil {
		return nil, 0, err
	}

	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, *productToResponse(&products[i]))
	}
	return items, total, nil
}

func (s *productService) Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil || product == nil {
		return nil, err
	}

	if req.SKU != nil && *req.SKU != product.SKU {
		taken, err := s.products.SKUExists(ctx, *req.SKU, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apierror.NewValidation("SKU already exists")
		}
	}
	if req.Price != nil && !req.Price.IsPositive() {
		return nil, apierror.NewValidation("price must be greater than 0")
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.SKU != nil {
		fields["sku"] = *req.SKU
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.CategoryID != nil {
		fields["category_id"] = *req.CategoryID
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.CostPrice != nil {
		fields["cost_price"] = *req.CostPrice
	}
	if req.QuantityInStock != nil {
		fields["quantity_in_stock"] = *req.QuantityInStock
	}
	if req.ReorderLevel != nil {
		fields["reorder_level"] = *req.ReorderLevel
	}
	if req.SupplierID != nil {
		fields["supplier_id"] = *req.SupplierID
	}
	if req.Barcode != nil {
		fields["barcode"] = *req.Barcode
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	updated, err := s.products.Update(ctx, id, fields)
	if err != nil || updated == nil {
		return nil, err
	}
	return productToResponse(updated), nil
}

func (s *productService) Delete(ctx context.Context, id uint) (bool, error) {
	return s.products.Delete(ctx, id)
}

func (s *productService) LowStock(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.products.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, *productToResponse(&products[i]))
	}
	return items, nil
}

func (s *productService) InventoryValue(ctx context.Context) (decimal.Decimal, error) {
	return s.products.InventoryValue(ctx)
}

// AdjustStock applies a manual signed stock change and appends an ADJUSTMENT
// audit row in the same transaction.
func (s *productService) AdjustStock(ctx context.Context, actingUserID, id uint, req dto.AdjustStockRequest) (*dto.ProductResponse, error) {
	err := runTx(ctx, s.products.DB(), func(tx *gorm.DB) error {
		product, err := s.products.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return apierror.NewNotFound("product")
		}
		if product.QuantityInStock+req.QuantityChange < 0 {
			return apierror.NewInsufficientStock(product.QuantityInStock)
		}
		if err := s.products.AdjustStockTx(ctx, tx, id, req.QuantityChange); err != nil {
			return err
		}

		userID := actingUserID
		audit := model.InventoryTransaction{
			ProductID:       id,
			Type:            model.TransactionAdjustment,
			Quantity:        req.QuantityChange,
			TransactionDate: nowUTC(),
			UserID:          &userID,
			Notes:           req.Notes,
		}
		return s.inventory.CreateTx(ctx, tx, &audit)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func pageSlice(products []model.Product, page, perPage int) []model.Product {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}
	start := (page - 1) * perPage
	if start >= len(products) {
		return nil
	}
	end := start + perPage
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	resp := &dto.ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		SKU:             p.SKU,
		Description:     p.Description,
		CategoryID:      p.CategoryID,
		Price:           p.Price,
		CostPrice:       p.CostPrice,
		QuantityInStock: p.QuantityInStock,
		ReorderLevel:    p.ReorderLevel,
		SupplierID:      p.SupplierID,
		Barcode:         p.Barcode,
		IsActive:        p.IsActive,
		IsLowStock:      p.IsLowStock(),
		CreatedBy:       p.CreatedBy,
		CreatedAt:       fmtTime(p.CreatedAt),
		UpdatedAt:       fmtTime(p.UpdatedAt),
	}
	if p.Category != nil {
		resp.Category = &dto.CategoryBrief{ID: p.Category.ID, Name: p.Category.Name}
	}
	if p.Supplier != nil {
		resp.Supplier = &dto.SupplierBrief{ID: p.Supplier.ID, Name: p.Supplier.Name}
	}
	return resp
}
