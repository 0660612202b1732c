package service

import (
	"context"

	"stockroom/internal/apierror"
	"stockroom/internal/dto"
	"stockroom/internal/identity"
	"stockroom/internal/model"
	"stockroom/internal/repository"
)

// AuthService maps provider-verified identities to local user rows. It never
// sees passwords; the identity provider owns credentials end to end.
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.UserResponse, error)
	GetUser(ctx context.Context, id uint) (*dto.UserResponse, error)
	ListUsers(ctx context.Context, page, perPage int) ([]dto.UserResponse, int64, error)
	UpdateRole(ctx context.Context, id uint, role string) (*dto.UserResponse, error)
	SetActive(ctx context.Context, id uint, active bool) (*dto.UserResponse, error)
}

type authService struct {
	verifier identity.Verifier
	users    repository.UserRepository
}

func NewAuthService(verifier identity.Verifier, users repository.UserRepository) AuthService {
	return &authService{verifier: verifier, users: users}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	claims, err := s.verifier.Verify(ctx, req.IDToken)
	if err != nil {
		return nil, err
	}
	if claims.Email == "" {
		return nil, apierror.NewValidation("token carries no email claim")
	}

	if taken, err := s.users.EmailExists(ctx, claims.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, apierror.NewValidation("email already registered")
	}
	if taken, err := s.users.UsernameExists(ctx, req.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, apierror.NewValidation("username already taken")
	}

	role := req.Role
	if !model.ValidRole(role) {
		role = model.RoleStaff
	}

	user := model.User{
		IdentityUID: claims.SubjectID,
		Username:    req.Username,
		Email:       claims.Email,
		FullName:    req.FullName,
		Role:        role,
		IsActive:    true,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return nil, err
	}
	return userToResponse(&user), nil
}

// Login resolves a verified token to the local user row. A valid token whose
// subject has no row yields (nil, nil); an inactive account is rejected
// outright.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.UserResponse, error) {
	claims, err := s.verifier.Verify(ctx, req.IDToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByIdentityUID(ctx, claims.SubjectID)
	if err != nil || user == nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apierror.ErrAccountDeactivated
	}
	return userToResponse(user), nil
}

func (s *authService) GetUser(ctx context.Context, id uint) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil || user == nil {
		return nil, err
	}
	return userToResponse(user), nil
}

func (s *authService) ListUsers(ctx context.Context, page, perPage int) ([]dto.UserResponse, int64, error) {
	users, total, err := s.users.List(ctx, nil, page, perPage)
	if err != nil {
		return nil, 0, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, *userToResponse(&users[i]))
	}
	return items, total, nil
}

func (s *authService) UpdateRole(ctx context.Context, id uint, role string) (*dto.UserResponse, error) {
	if !model.ValidRole(role) {
		return nil, apierror.NewValidation("role must be one of admin, manager, staff")
	}
	updated, err := s.users.Update(ctx, id, map[string]any{"role": role})
	if err != nil || updated == nil {
		return nil, err
	}
	return userToResponse(updated), nil
}

func (s *authService) SetActive(ctx context.Context, id uint, active bool) (*dto.UserResponse, error) {
	updated, err := s.users.SetActive(ctx, id, active)
	if err != nil || updated == nil {
		return nil, err
	}
	return userToResponse(updated), nil
}

func userToResponse(u *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:          u.ID,
		IdentityUID: u.IdentityUID,
		Username:    u.Username,
		Email:       u.Email,
		FullName:    u.FullName,
		Role:        u.Role,
		IsActive:    u.IsActive,
		CreatedAt:   fmtTime(u.CreatedAt),
		UpdatedAt:   fmtTime(u.UpdatedAt),
	}
}
