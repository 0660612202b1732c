package dto

import "github.com/shopspring/decimal"

type CreateSaleRequest struct {
	ProductID    uint            `json:"product_id"    validate:"required"`
	QuantitySold int             `json:"quantity_sold" validate:"required,gt=0"`
	UnitPrice    decimal.Decimal `json:"unit_price"    validate:"required"`
	// TotalAmount overrides the computed quantity × unit_price when supplied.
	TotalAmount  *decimal.Decimal `json:"total_amount"`
	CustomerName *string          `json:"customer_name"`
}

type SaleFilter struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	ProductID *uint  `form:"product_id"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}

type ProductBrief struct {
	ID   uint   `json:"product_id"`
	Name string `json:"product_name"`
	SKU  string `json:"sku"`
}

type SaleResponse struct {
	ID           uint            `json:"sale_id"`
	ProductID    uint            `json:"product_id"`
	QuantitySold int             `json:"quantity_sold"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	SaleDate     string          `json:"sale_date"`
	CustomerName *string         `json:"customer_name"`
	UserID       *uint           `json:"user_id"`
	Product      *ProductBrief   `json:"product,omitempty"`
	Salesperson  *UserBrief      `json:"salesperson,omitempty"`
}

type TotalSalesResponse struct {
	TotalSales decimal.Decimal `json:"total_sales"`
}
