package dto

type CreateCategoryRequest struct {
	Name             string  `json:"category_name" validate:"required,min=2,max=100"`
	Description      *string `json:"description"`
	ParentCategoryID *uint   `json:"parent_category_id"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"category_name" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description"`
}

type CategoryResponse struct {
	ID               uint           `json:"category_id"`
	Name             string         `json:"category_name"`
	Description      *string        `json:"description"`
	ParentCategoryID *uint          `json:"parent_category_id"`
	CreatedAt        string         `json:"created_at"`
	Parent           *CategoryBrief `json:"parent_category,omitempty"`
}
