package service

import (
	"context"

	"stockroom/internal/apierror"
	"stockroom/internal/dto"
	"stockroom/internal/model"
	"stockroom/internal/repository"
)

type CategoryService interface {
	Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	Get(ctx context.Context, id uint) (*dto.CategoryResponse, error)
	List(ctx context.Context, page, perPage int) ([]dto.CategoryResponse, int64, error)
	Roots(ctx context.Context) ([]dto.CategoryResponse, error)
	Subcategories(ctx context.Context, id uint) ([]dto.CategoryResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type categoryService struct {
	categories repository.CategoryRepository
}

func NewCategoryService(categories repository.CategoryRepository) CategoryService {
	return &categoryService{categories: categories}
}

func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	taken, err := s.categories.NameExists(ctx, req.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apierror.NewValidation("category name already exists")
	}

	if req.ParentCategoryID != nil {
		parent, err := s.categories.FindByID(ctx, *req.ParentCategoryID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, apierror.NewValidation("parent category not found")
		}
	}

	category := model.Category{
		Name:             req.Name,
		Description:      req.Description,
		ParentCategoryID: req.ParentCategoryID,
	}
	if err := s.categories.Create(ctx, &category); err != nil {
		return nil, err
	}
	return categoryToResponse(&category), nil
}

func (s *categoryService) Get(ctx context.Context, id uint) (*dto.CategoryResponse, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil || category == nil {
		return nil, err
	}
	resp := categoryToResponse(category)
	if category.ParentCategoryID != nil {
		if parent, err := s.categories.FindByID(ctx, *category.ParentCategoryID); err == nil && parent != nil {
			resp.Parent = &dto.CategoryBrief{ID: parent.ID, Name: parent.Name}
		}
	}
	return resp, nil
}

func (s *categoryService) List(ctx context.Context, page, perPage int) ([]dto.CategoryResponse, int64, error) {
	categories, total, err := s.categories.List(ctx, nil, page, perPage)
	if err != nil {
		return nil, 0, err
	}
	return categoriesToResponses(categories), total, nil
}

func (s *categoryService) Roots(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := s.categories.Roots(ctx)
	if err != nil {
		return nil, err
	}
	return categoriesToResponses(categories), nil
}

func (s *categoryService) Subcategories(ctx context.Context, id uint) ([]dto.CategoryResponse, error) {
	categories, err := s.categories.Subcategories(ctx, id)
	if err != nil {
		return nil, err
	}
	return categoriesToResponses(categories), nil
}

func (s *categoryService) Update(ctx context.Context, id uint, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil || category == nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != category.Name {
		taken, err := s.categories.NameExists(ctx, *req.Name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apierror.NewValidation("category name already exists")
		}
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}

	updated, err := s.categories.Update(ctx, id, fields)
	if err != nil || updated == nil {
		return nil, err
	}
	return categoryToResponse(updated), nil
}

// Delete refuses when any category still points at this one as its parent.
// The check enumerates children explicitly rather than relying on the FK's
// SET NULL action, which would silently orphan the subtree.
func (s *categoryService) Delete(ctx context.Context, id uint) (bool, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if category == nil {
		return false, nil
	}

	children, err := s.categories.Subcategories(ctx, id)
	if err != nil {
		return false, err
	}
	if len(children) > 0 {
		return false, apierror.NewValidation("cannot delete category with subcategories")
	}

	return s.categories.Delete(ctx, id)
}

func categoryToResponse(c *model.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:               c.ID,
		Name:             c.Name,
		Description:      c.Description,
		ParentCategoryID: c.ParentCategoryID,
		CreatedAt:        fmtTime(c.CreatedAt),
	}
}

func categoriesToResponses(categories []model.Category) []dto.CategoryResponse {
	items := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		items = append(items, *categoryToResponse(&categories[i]))
	}
	return items
}
