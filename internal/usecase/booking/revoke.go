package booking

import (
	"context"

	domain "github.com/bellasalon/booking-api/internal/domain/booking"
)

type RevokeBooking struct {
	repo domain.Repository
	feed Publisher
}

func NewRevokeBooking(
	repo domain.Repository,
	feed Publisher,
) *RevokeBooking {
	return &RevokeBooking{
		repo: repo,
		feed: feed,
	}
}

func (uc *RevokeBooking) Execute(
	ctx context.Context,
	requester domain.Identity,
	bookingID uint,
) error {

	// not-found antes da política: cancelar um id que já sumiu é 404,
	// não 403
	b, err := uc.repo.Get(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := domain.CanCancel(requester, b.UserID); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, bookingID); err != nil {
		return err
	}

	uc.feed.Publish()
	return nil
}
