package booking

import (
	"context"

	domain "github.com/bellasalon/booking-api/internal/domain/booking"
	"github.com/bellasalon/booking-api/internal/dto"
	"github.com/bellasalon/booking-api/internal/httperr"
	"github.com/bellasalon/booking-api/internal/models"
)

// Publisher recebe o aviso de que o ledger mudou e empurra o snapshot
// completo para os observadores; nunca devolve erro para o caller.
type Publisher interface {
	Publish()
}

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Requester domain.Identity

	Name  string
	Phone string

	ServiceID uint
	Date      string
	Time      string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo domain.Repository
	feed Publisher
}

func NewCreateBooking(
	repo domain.Repository,
	feed Publisher,
) *CreateBooking {
	return &CreateBooking{
		repo: repo,
		feed: feed,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*dto.BookingView, error) {

	// --------------------------------------------------
	// 1️⃣ Política: só conta verificada cria reserva
	// --------------------------------------------------
	if err := domain.CanCreate(in.Requester); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Validação antes de tocar o storage
	// --------------------------------------------------
	proposal := domain.Proposal{
		Name:      in.Name,
		Phone:     in.Phone,
		ServiceID: in.ServiceID,
		Date:      in.Date,
		Time:      in.Time,
	}
	if err := proposal.Validate(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Serviço (denormalização na resposta)
	// --------------------------------------------------
	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Pre-check de conflito (mensagem amigável)
	// --------------------------------------------------
	taken, err := uc.repo.SlotTaken(ctx, in.ServiceID, in.Date, in.Time)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	// --------------------------------------------------
	// 5️⃣ Inserção; o índice único é a palavra final
	// --------------------------------------------------
	b := &models.Booking{
		Name:      in.Name,
		Phone:     in.Phone,
		ServiceID: in.ServiceID,
		Date:      in.Date,
		Time:      in.Time,
		UserID:    in.Requester.ID,
	}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Snapshot para os observadores
	// --------------------------------------------------
	uc.feed.Publish()

	view := dto.BookingView{
		ID:          b.ID,
		Name:        b.Name,
		Phone:       b.Phone,
		ServiceID:   b.ServiceID,
		Date:        b.Date,
		Time:        b.Time,
		CreatedAt:   b.CreatedAt,
		UserID:      b.UserID,
		ServiceName: svc.Name,
		Duration:    svc.DurationMin,
		Price:       svc.Price,
	}
	return &view, nil
}
