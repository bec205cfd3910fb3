package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bellasalon/booking-api/internal/dto"
	"github.com/bellasalon/booking-api/internal/httperr"
	"github.com/bellasalon/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Catálogo
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}
	return &svc, nil
}

func (r *BookingGormRepository) ListServices(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Admissão
// --------------------------------------------------

func (r *BookingGormRepository) SlotTaken(
	ctx context.Context,
	serviceID uint,
	date string,
	timeOfDay string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"service_id = ? AND date = ? AND time = ?",
			serviceID, date, timeOfDay,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *BookingGormRepository) Create(
	ctx context.Context,
	b *models.Booking,
) error {

	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		// duas propostas concorrentes passaram pelo pre-check; o índice
		// único decide e o perdedor recebe o mesmo erro de conflito
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness("slot_taken")
		}
		return err
	}
	return nil
}

// --------------------------------------------------
// Cancelamento
// --------------------------------------------------

func (r *BookingGormRepository) Get(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Booking{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("booking_not_found")
	}
	return nil
}

// --------------------------------------------------
// Listagem
// --------------------------------------------------

const bookingViewSelect = `bookings.id, bookings.name, bookings.phone,
	bookings.service_id, bookings.date, bookings.time, bookings.created_at,
	bookings.user_id, services.name AS service_name, services.duration,
	services.price`

func (r *BookingGormRepository) ListAll(
	ctx context.Context,
) ([]dto.BookingView, error) {

	views := []dto.BookingView{}
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select(bookingViewSelect).
		Joins("LEFT JOIN services ON services.id = bookings.service_id").
		Order("bookings.date, bookings.time").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (r *BookingGormRepository) ListByUser(
	ctx context.Context,
	userID uint,
) ([]dto.BookingView, error) {

	views := []dto.BookingView{}
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select(bookingViewSelect).
		Joins("LEFT JOIN services ON services.id = bookings.service_id").
		Where("bookings.user_id = ?", userID).
		Order("bookings.date, bookings.time").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}
