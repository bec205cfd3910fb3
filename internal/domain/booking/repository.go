package booking

import (
	"context"

	"github.com/bellasalon/booking-api/internal/dto"
	"github.com/bellasalon/booking-api/internal/models"
)

type Repository interface {
	// -------- Catálogo --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	ListServices(
		ctx context.Context,
	) ([]models.Service, error)

	// -------- Admissão --------

	// SlotTaken é o pre-check de conflito; serve só para a mensagem
	// amigável. A palavra final é do índice único em Create.
	SlotTaken(
		ctx context.Context,
		serviceID uint,
		date string,
		timeOfDay string,
	) (bool, error)

	// Create insere a reserva; violação do índice único volta como
	// httperr.ErrBusiness("slot_taken").
	Create(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Cancelamento --------
	Get(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	Delete(
		ctx context.Context,
		id uint,
	) error

	// -------- Listagem (denormalizada, ordenada por date, time) --------
	ListAll(
		ctx context.Context,
	) ([]dto.BookingView, error)

	ListByUser(
		ctx context.Context,
		userID uint,
	) ([]dto.BookingView, error)
}
