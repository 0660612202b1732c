package repository

import (
	"context"
	"errors"

	"stockroom/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	CRUD[model.User]
	FindByIdentityUID(ctx context.Context, uid string) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	SetActive(ctx context.Context, id uint, active bool) (*model.User, error)
}

type userRepo struct{ *Repository[model.User] }

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{NewRepository[model.User](db)}
}

func (r *userRepo) FindByIdentityUID(ctx context.Context, uid string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("identity_uid = ?", uid).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.Exists(ctx, map[string]any{"email": email})
}

func (r *userRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	return r.Exists(ctx, map[string]any{"username": username})
}

func (r *userRepo) SetActive(ctx context.Context, id uint, active bool) (*model.User, error) {
	return r.Update(ctx, id, map[string]any{"is_active": active})
}
