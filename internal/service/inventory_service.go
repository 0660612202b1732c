package service

import (
	"context"

	"stockroom/internal/apierror"
	"stockroom/internal/dto"
	"stockroom/internal/model"
	"stockroom/internal/repository"

	"gorm.io/gorm"
)

type InventoryService interface {
	RecordTransaction(ctx context.Context, actingUserID uint, req dto.RecordTransactionRequest) (*dto.TransactionResponse, error)
	ListByProduct(ctx context.Context, productID uint, page, perPage int) ([]dto.TransactionResponse, int64, error)
}

type inventoryService struct {
	inventory repository.InventoryRepository
	products  repository.ProductRepository
}

func NewInventoryService(inventory repository.InventoryRepository, products repository.ProductRepository) InventoryService {
	return &inventoryService{inventory: inventory, products: products}
}

// RecordTransaction applies the movement to the product's stock and appends
// the audit row in one transaction. IN adds, OUT subtracts, ADJUSTMENT takes
// the quantity as a signed delta.
func (s *inventoryService) RecordTransaction(ctx context.Context, actingUserID uint, req dto.RecordTransactionRequest) (*dto.TransactionResponse, error) {
	if !model.ValidTransactionType(req.Type) {
		return nil, apierror.NewValidation("transaction_type must be one of IN, OUT, ADJUSTMENT")
	}
	if req.Type != model.TransactionAdjustment && req.Quantity <= 0 {
		return nil, apierror.NewValidation("quantity must be greater than 0")
	}

	delta := req.Quantity
	if req.Type == model.TransactionOut {
		delta = -req.Quantity
	}

	var txn model.InventoryTransaction
	err := runTx(ctx, s.inventory.DB(), func(tx *gorm.DB) error {
		product, err := s.products.FindByIDForUpdate(ctx, tx, req.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return apierror.NewNotFound("product")
		}
		if product.QuantityInStock+delta < 0 {
			return apierror.NewInsufficientStock(product.QuantityInStock)
		}
		if err := s.products.AdjustStockTx(ctx, tx, req.ProductID, delta); err != nil {
			return err
		}

		userID := actingUserID
		txn = model.InventoryTransaction{
			ProductID:       req.ProductID,
			Type:            req.Type,
			Quantity:        req.Quantity,
			TransactionDate: nowUTC(),
			UserID:          &userID,
			Notes:           req.Notes,
			ReferenceNumber: req.ReferenceNumber,
		}
		return s.inventory.CreateTx(ctx, tx, &txn)
	})
	if err != nil {
		return nil, err
	}
	return transactionToResponse(&txn), nil
}

func (s *inventoryService) ListByProduct(ctx context.Context, productID uint, page, perPage int) ([]dto.TransactionResponse, int64, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, 0, err
	}
	if product == nil {
		return nil, 0, apierror.NewNotFound("product")
	}

	txns, total, err := s.inventory.ListByProduct(ctx, productID, page, perPage)
	if err != nil {
		return nil, 0, err
	}
	items := make([]dto.TransactionResponse, 0, len(txns))
	for i := range txns {
		items = append(items, *transactionToResponse(&txns[i]))
	}
	return items, total, nil
}

func transactionToResponse(t *model.InventoryTransaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:              t.ID,
		ProductID:       t.ProductID,
		Type:            t.Type,
		Quantity:        t.Quantity,
		TransactionDate: fmtTime(t.TransactionDate),
		UserID:          t.UserID,
		Notes:           t.Notes,
		ReferenceNumber: t.ReferenceNumber,
	}
}
