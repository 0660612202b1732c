package service

import (
	"context"
	"testing"

	"stockroom/internal/apierror"
	"stockroom/internal/dto"
	"stockroom/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInventoryFixture() (*memProducts, *memInventory, InventoryService) {
	products := newMemProducts()
	inventory := newMemInventory()
	return products, inventory, NewInventoryService(inventory, products)
}

func TestRecordTransactionInAddsStock(t *testing.T) {
	products, _, svc := newInventoryFixture()
	p := products.add(model.Product{Name: "Widget", SKU: "W", Price: decimal.NewFromInt(1), QuantityInStock: 5, IsActive: true})

	txn, err := svc.RecordTransaction(context.Background(), 1, dto.RecordTransactionRequest{
		ProductID: p.ID,
		Type:      model.TransactionIn,
		Quantity:  8,
	})
	require.NoError(t, err)
	assert.Equal(t, model.TransactionIn, txn.Type)

	after, _ := products.FindByID(context.Background(), p.ID)
	assert.Equal(t, 13, after.QuantityInStock)
}

func TestRecordTransactionOutGuardsStock(t *testing.T) {
	products, inventory, svc := newInventoryFixture()
	p := products.add(model.Product{Name: "Widget", SKU: "W", Price: decimal.NewFromInt(1), QuantityInStock: 3, IsActive: true})

	_, err := svc.RecordTransaction(context.Background(), 1, dto.RecordTransactionRequest{
		ProductID: p.ID,
		Type:      model.TransactionOut,
		Quantity:  5,
	})

	var stockErr *apierror.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 3, stockErr.Available)

	after, _ := products.FindByID(context.Background(), p.ID)
	assert.Equal(t, 3, after.QuantityInStock)
	assert.Empty(t, inventory.items)
}

func TestRecordTransactionAdjustmentSigned(t *testing.T) {
	products, _, svc := newInventoryFixture()
	p := products.add(model.Product{Name: "Widget", SKU: "W", Price: decimal.NewFromInt(1), QuantityInStock: 10, IsActive: true})

	_, err := svc.RecordTransaction(context.Background(), 1, dto.RecordTransactionRequest{
		ProductID: p.ID,
		Type:      model.TransactionAdjustment,
		Quantity:  -4,
	})
	require.NoError(t, err)

	after, _ := products.FindByID(context.Background(), p.ID)
	assert.Equal(t, 6, after.QuantityInStock)
}

func TestRecordTransactionInvalidType(t *testing.T) {
	products, _, svc := newInventoryFixture()
	p := products.add(model.Product{Name: "Widget", SKU: "W", Price: decimal.NewFromInt(1), QuantityInStock: 10, IsActive: true})

	_, err := svc.RecordTransaction(context.Background(), 1, dto.RecordTransactionRequest{
		ProductID: p.ID,
		Type:      "TRANSFER",
		Quantity:  1,
	})
	var verr *apierror.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestRecordTransactionRejectsNonPositiveInOut(t *testing.T) {
	products, _, svc := newInventoryFixture()
	p := products.add(model.Product{Name: "Widget", SKU: "W", Price: decimal.NewFromInt(1), QuantityInStock: 10, IsActive: true})

	_, err := svc.RecordTransaction(context.Background(), 1, dto.RecordTransactionRequest{
		ProductID: p.ID,
		Type:      model.TransactionIn,
		Quantity:  -2,
	})
	var verr *apierror.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestRecordTransactionUnknownProduct(t *testing.T) {
	_, _, svc := newInventoryFixture()

	_, err := svc.RecordTransaction(context.Background(), 1, dto.RecordTransactionRequest{
		ProductID: 99,
		Type:      model.TransactionIn,
		Quantity:  1,
	})
	var notFound *apierror.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestListByProductUnknownProduct(t *testing.T) {
	_, _, svc := newInventoryFixture()

	_, _, err := svc.ListByProduct(context.Background(), 99, 1, 20)
	var notFound *apierror.NotFoundError
	require.ErrorAs(t, err, &notFound)
}
