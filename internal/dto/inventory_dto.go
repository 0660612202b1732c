package dto

type RecordTransactionRequest struct {
	ProductID uint   `json:"product_id" validate:"required"`
	Type      string `json:"transaction_type" validate:"required"`
	// Quantity is positive for IN/OUT; ADJUSTMENT accepts a signed value.
	Quantity        int     `json:"quantity" validate:"required"`
	Notes           *string `json:"notes"`
	ReferenceNumber *string `json:"reference_number"`
}

type TransactionResponse struct {
	ID              uint    `json:"transaction_id"`
	ProductID       uint    `json:"product_id"`
	Type            string  `json:"transaction_type"`
	Quantity        int     `json:"quantity"`
	TransactionDate string  `json:"transaction_date"`
	UserID          *uint   `json:"user_id"`
	Notes           *string `json:"notes"`
	ReferenceNumber *string `json:"reference_number"`
}
