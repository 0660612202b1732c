package service

import (
	"context"

	"stockroom/internal/dto"
	"stockroom/internal/model"
	"stockroom/internal/repository"
)

// SupplierService is plain CRUD. Supplier names are intentionally not
// checked for uniqueness; distinct branches of the same vendor may share
// a name.
type SupplierService interface {
	Create(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error)
	Get(ctx context.Context, id uint) (*dto.SupplierResponse, error)
	List(ctx context.Context, search string, page, perPage int) ([]dto.SupplierResponse, int64, error)
	Update(ctx context.Context, id uint, req dto.UpdateSupplierRequest) (*dto.SupplierResponse, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type supplierService struct {
	suppliers repository.SupplierRepository
}

func NewSupplierService(suppliers repository.SupplierRepository) SupplierService {
	return &supplierService{suppliers: suppliers}
}

func (s *supplierService) Create(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier := model.Supplier{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
	}
	if err := s.suppliers.Create(ctx, &supplier); err != nil {
		return nil, err
	}
	return supplierToResponse(&supplier), nil
}

func (s *supplierService) Get(ctx context.Context, id uint) (*dto.SupplierResponse, error) {
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil || supplier == nil {
		return nil, err
	}
	return supplierToResponse(supplier), nil
}

func (s *supplierService) List(ctx context.Context, search string, page, perPage int) ([]dto.SupplierResponse, int64, error) {
	var (
		suppliers []model.Supplier
		total     int64
		err       error
	)
	if search != "" {
		suppliers, total, err = s.suppliers.Search(ctx, search, page, perPage)
	} else {
		suppliers, total, err = s.suppliers.List(ctx, nil, page, perPage)
	}
	if err != nil {
		return nil, 0, err
	}

	items := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		items = append(items, *supplierToResponse(&suppliers[i]))
	}
	return items, total, nil
}

func (s *supplierService) Update(ctx context.Context, id uint, req dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.ContactPerson != nil {
		fields["contact_person"] = *req.ContactPerson
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}

	updated, err := s.suppliers.Update(ctx, id, fields)
	if err != nil || updated == nil {
		return nil, err
	}
	return supplierToResponse(updated), nil
}

func (s *supplierService) Delete(ctx context.Context, id uint) (bool, error) {
	return s.suppliers.Delete(ctx, id)
}

func supplierToResponse(s *model.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       s.Address,
		CreatedAt:     fmtTime(s.CreatedAt),
	}
}
