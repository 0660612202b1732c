package service

import (
	"context"
	"fmt"
	"time"

	"stockroom/internal/apierror"
	"stockroom/internal/dto"
	"stockroom/internal/model"
	"stockroom/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SalesService interface {
	CreateSale(ctx context.Context, actingUserID uint, req dto.CreateSaleRequest) (*dto.SaleResponse, error)
	GetSale(ctx context.Context, id uint) (*dto.SaleResponse, error)
	ListSales(ctx context.Context, f repository.SaleFilter) ([]dto.SaleResponse, int64, error)
	DeleteSale(ctx context.Context, id uint) error
	TotalSales(ctx context.Context, start, end *time.Time) (decimal.Decimal, error)
}

type salesService struct {
	sales     repository.SaleRepository
	products  repository.ProductRepository
	inventory repository.InventoryRepository
}

func NewSalesService(
	sales repository.SaleRepository,
	products repository.ProductRepository,
	inventory repository.InventoryRepository,
) SalesService {
	return &salesService{sales: sales, products: products, inventory: inventory}
}

// CreateSale records a sale and decrements the product's stock in ONE
// transaction. The product row is locked FOR UPDATE before the stock check,
// so two concurrent sales against the same product cannot both pass the
// check and oversell.
func (s *salesService) CreateSale(ctx context.Context, actingUserID uint, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	var sale model.Sale

	err := runTx(ctx, s.sales.DB(), func(tx *gorm.DB) error {
		product, err := s.products.FindByIDForUpdate(ctx, tx, req.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return apierror.NewNotFound("product")
		}
		if product.QuantityInStock < req.QuantitySold {
			return apierror.NewInsufficientStock(product.QuantityInStock)
		}

		total := req.UnitPrice.Mul(decimal.NewFromInt(int64(req.QuantitySold)))
		if req.TotalAmount != nil && !req.TotalAmount.IsZero() {
			total = *req.TotalAmount
		}

		userID := actingUserID
		sale = model.Sale{
			ProductID:    req.ProductID,
			QuantitySold: req.QuantitySold,
			UnitPrice:    req.UnitPrice,
			TotalAmount:  total,
			SaleDate:     time.Now().UTC(),
			CustomerName: req.CustomerName,
			UserID:       &userID,
		}
		if err := s.sales.CreateTx(ctx, tx, &sale); err != nil {
			return err
		}

		if err := s.products.AdjustStockTx(ctx, tx, req.ProductID, -req.QuantitySold); err != nil {
			return err
		}

		ref := fmt.Sprintf("SALE-%d", sale.ID)
		audit := model.InventoryTransaction{
			ProductID:       req.ProductID,
			Type:            model.TransactionOut,
			Quantity:        req.QuantitySold,
			TransactionDate: sale.SaleDate,
			UserID:          &userID,
			ReferenceNumber: &ref,
		}
		return s.inventory.CreateTx(ctx, tx, &audit)
	})
	if err != nil {
		return nil, err
	}

	return saleToResponse(&sale), nil
}

func (s *salesService) GetSale(ctx context.Context, id uint) (*dto.SaleResponse, error) {
	sale, err := s.sales.FindByID(ctx, id)
	if err != nil || sale == nil {
		return nil, err
	}
	return saleToResponse(sale), nil
}

func (s *salesService) ListSales(ctx context.Context, f repository.SaleFilter) ([]dto.SaleResponse, int64, error) {
	sales, total, err := s.sales.ListFiltered(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		items = append(items, *saleToResponse(&sales[i]))
	}
	return items, total, nil
}

// DeleteSale restores the sold quantity to the product's stock and removes
// the sale row in one transaction. The row disappears with the first delete,
// so the restore cannot be applied twice.
func (s *salesService) DeleteSale(ctx context.Context, id uint) error {
	return runTx(ctx, s.sales.DB(), func(tx *gorm.DB) error {
		sale, err := s.sales.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if sale == nil {
			return apierror.NewNotFound("sale")
		}

		// Lock the product row so the restore and the audit row agree.
		if _, err := s.products.FindByIDForUpdate(ctx, tx, sale.ProductID); err != nil {
			return err
		}
		if err := s.products.AdjustStockTx(ctx, tx, sale.ProductID, sale.QuantitySold); err != nil {
			return err
		}

		ref := fmt.Sprintf("SALE-%d-REVERSAL", sale.ID)
		audit := model.InventoryTransaction{
			ProductID:       sale.ProductID,
			Type:            model.TransactionIn,
			Quantity:        sale.QuantitySold,
			TransactionDate: time.Now().UTC(),
			UserID:          sale.UserID,
			ReferenceNumber: &ref,
		}
		if err := s.inventory.CreateTx(ctx, tx, &audit); err != nil {
			return err
		}

		deleted, err := s.sales.DeleteTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return apierror.NewNotFound("sale")
		}
		return nil
	})
}

func (s *salesService) TotalSales(ctx context.Context, start, end *time.Time) (decimal.Decimal, error) {
	return s.sales.SumTotals(ctx, start, end)
}

func saleToResponse(sale *model.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:           sale.ID,
		ProductID:    sale.ProductID,
		QuantitySold: sale.QuantitySold,
		UnitPrice:    sale.UnitPrice,
		TotalAmount:  sale.TotalAmount,
		SaleDate:     fmtTime(sale.SaleDate),
		CustomerName: sale.CustomerName,
		UserID:       sale.UserID,
	}
	if sale.Product != nil {
		resp.Product = &dto.ProductBrief{ID: sale.Product.ID, Name: sale.Product.Name, SKU: sale.Product.SKU}
	}
	if sale.User != nil {
		resp.Salesperson = &dto.UserBrief{ID: sale.User.ID, Username: sale.User.Username}
	}
	return resp
}
