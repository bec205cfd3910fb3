package booking

import (
	"context"

	domain "github.com/bellasalon/booking-api/internal/domain/booking"
	"github.com/bellasalon/booking-api/internal/dto"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute devolve a lista no escopo da política: staff/admin veem tudo,
// cliente vê só o que é dele. Sempre ordenada por (date, time).
func (uc *ListBookings) Execute(
	ctx context.Context,
	requester domain.Identity,
) ([]dto.BookingView, error) {

	if domain.CanViewAll(requester) {
		return uc.repo.ListAll(ctx)
	}
	return uc.repo.ListByUser(ctx, requester.ID)
}
