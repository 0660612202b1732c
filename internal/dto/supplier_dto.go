package dto

type CreateSupplierRequest struct {
	Name          string  `json:"supplier_name" validate:"required,min=2,max=150"`
	ContactPerson *string `json:"contact_person"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
}

type UpdateSupplierRequest struct {
	Name          *string `json:"supplier_name" validate:"omitempty,min=2,max=150"`
	ContactPerson *string `json:"contact_person"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
}

type SupplierResponse struct {
	ID            uint    `json:"supplier_id"`
	Name          string  `json:"supplier_name"`
	ContactPerson *string `json:"contact_person"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	CreatedAt     string  `json:"created_at"`
}
