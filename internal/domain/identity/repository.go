package identity

import (
	"context"

	"github.com/bellasalon/booking-api/internal/models"
)

type Repository interface {
	// Create insere o usuário; email duplicado volta como
	// httperr.ErrBusiness("email_taken").
	Create(
		ctx context.Context,
		u *models.User,
	) error

	FindByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	FindByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	// Busca por token é exact-match; token já consumido (limpo) nunca
	// encontra ninguém, o que torna os tokens single-use por construção.
	FindByVerifyToken(
		ctx context.Context,
		token string,
	) (*models.User, error)

	FindByResetToken(
		ctx context.Context,
		token string,
	) (*models.User, error)

	Update(
		ctx context.Context,
		u *models.User,
	) error
}
