package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bellasalon/booking-api/internal/httperr"
	"github.com/bellasalon/booking-api/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) Create(
	ctx context.Context,
	u *models.User,
) error {

	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness("email_taken")
		}
		return err
	}
	return nil
}

func (r *UserGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *UserGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *UserGormRepository) FindByVerifyToken(
	ctx context.Context,
	token string,
) (*models.User, error) {
	return r.first(ctx, "verify_token = ?", token)
}

func (r *UserGormRepository) FindByResetToken(
	ctx context.Context,
	token string,
) (*models.User, error) {
	return r.first(ctx, "reset_token = ?", token)
}

func (r *UserGormRepository) Update(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserGormRepository) first(
	ctx context.Context,
	query string,
	arg any,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("user_not_found")
		}
		return nil, err
	}
	return &user, nil
}
