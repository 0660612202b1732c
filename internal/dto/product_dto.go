package dto

import "github.com/shopspring/decimal"

type CreateProductRequest struct {
	Name            string           `json:"product_name"      validate:"required,min=2,max=200"`
	SKU             string           `json:"sku"               validate:"required,min=2,max=50"`
	Description     *string          `json:"description"`
	CategoryID      *uint            `json:"category_id"`
	Price           decimal.Decimal  `json:"price"             validate:"required"`
	CostPrice       *decimal.Decimal `json:"cost_price"`
	QuantityInStock int              `json:"quantity_in_stock" validate:"min=0"`
	ReorderLevel    *int             `json:"reorder_level"     validate:"omitempty,min=0"`
	SupplierID      *uint            `json:"supplier_id"`
	Barcode         *string          `json:"barcode"`
}

type UpdateProductRequest struct {
	Name            *string          `json:"product_name"      validate:"omitempty,min=2,max=200"`
	SKU             *string          `json:"sku"               validate:"omitempty,min=2,max=50"`
	Description     *string          `json:"description"`
	CategoryID      *uint            `json:"category_id"`
	Price           *decimal.Decimal `json:"price"`
	CostPrice       *decimal.Decimal `json:"cost_price"`
	QuantityInStock *int             `json:"quantity_in_stock" validate:"omitempty,min=0"`
	ReorderLevel    *int             `json:"reorder_level"     validate:"omitempty,min=0"`
	SupplierID      *uint            `json:"supplier_id"`
	Barcode         *string          `json:"barcode"`
	IsActive        *bool            `json:"is_active"`
}

type AdjustStockRequest struct {
	// Positive adds stock, negative removes it.
	QuantityChange int     `json:"quantity_change" validate:"required"`
	Notes          *string `json:"notes"`
}

type ProductFilter struct {
	Search     string `form:"search"`
	CategoryID *uint  `form:"category_id"`
	SupplierID *uint  `form:"supplier_id"`
	Status     string `form:"status"`
	ActiveOnly *bool  `form:"active_only"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

type CategoryBrief struct {
	ID   uint   `json:"category_id"`
	Name string `json:"category_name"`
}

type SupplierBrief struct {
	ID   uint   `json:"supplier_id"`
	Name string `json:"supplier_name"`
}

type UserBrief struct {
	ID       uint   `json:"user_id"`
	Username string `json:"username"`
}

type ProductResponse struct {
	ID              uint             `json:"product_id"`
	Name            string           `json:"product_name"`
	SKU             string           `json:"sku"`
	Description     *string          `json:"description"`
	CategoryID      *uint            `json:"category_id"`
	Price           decimal.Decimal  `json:"price"`
	CostPrice       *decimal.Decimal `json:"cost_price"`
	QuantityInStock int              `json:"quantity_in_stock"`
	ReorderLevel    int              `json:"reorder_level"`
	SupplierID      *uint            `json:"supplier_id"`
	Barcode         *string          `json:"barcode"`
	IsActive        bool             `json:"is_active"`
	IsLowStock      bool             `json:"is_low_stock"`
	CreatedBy       *uint            `json:"created_by"`
	CreatedAt       string           `json:"created_at"`
	UpdatedAt       string           `json:"updated_at"`
	Category        *CategoryBrief   `json:"category,omitempty"`
	Supplier        *SupplierBrief   `json:"supplier,omitempty"`
}

// BarcodeLookupResponse is the cached shape served by the barcode lookup
// endpoint.
type BarcodeLookupResponse struct {
	ID              uint            `json:"product_id"`
	Name            string          `json:"product_name"`
	SKU             string          `json:"sku"`
	Price           decimal.Decimal `json:"price"`
	QuantityInStock int             `json:"quantity_in_stock"`
}
