package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	domain "github.com/bellasalon/booking-api/internal/domain/identity"
	"github.com/bellasalon/booking-api/internal/httperr"
	"github.com/bellasalon/booking-api/internal/models"
	"github.com/bellasalon/booking-api/internal/validators"
)

// Notifier entrega e-mail fire-and-forget: falha é logada lá dentro e
// nunca chega ao resultado de quem despachou.
type Notifier interface {
	Dispatch(to, subject, body string)
}

type Service struct {
	repo     domain.Repository
	notifier Notifier
	appURL   string
}

func NewService(
	repo domain.Repository,
	notifier Notifier,
	appURL string,
) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		appURL:   appURL,
	}
}

// ======================================================
// REGISTER
// ======================================================

func (s *Service) Register(
	ctx context.Context,
	name, email, password string,
) error {

	if !validators.IsEmailValid(email) {
		return httperr.ErrBusiness("invalid_email")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	token := uuid.NewString()
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         models.RoleCustomer,
		Verified:     false,
		VerifyToken:  &token,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return err
	}

	s.sendVerification(email, token)
	return nil
}

// ======================================================
// LOGIN
// ======================================================

func (s *Service) Login(
	ctx context.Context,
	email, password string,
) (*models.User, error) {

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(password),
	); err != nil {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	return user, nil
}

// ======================================================
// VERIFICATION
// ======================================================

func (s *Service) Verify(
	ctx context.Context,
	token string,
) error {

	// token consumido já foi limpo, então o replay cai aqui
	user, err := s.repo.FindByVerifyToken(ctx, token)
	if err != nil {
		return httperr.ErrBusiness("invalid_token")
	}

	domain.MarkVerified(user)
	return s.repo.Update(ctx, user)
}

func (s *Service) ResendVerification(
	ctx context.Context,
	email string,
) error {

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	token := uuid.NewString()
	if err := domain.StartVerification(user, token); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	s.sendVerification(email, token)
	return nil
}

// ======================================================
// PASSWORD RESET
// ======================================================

func (s *Service) RequestReset(
	ctx context.Context,
	email string,
) error {

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	token := uuid.NewString()
	domain.StartReset(user, token, time.Now())
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset.html?token=%s", s.appURL, token)
	s.notifier.Dispatch(
		email,
		"Password reset",
		fmt.Sprintf("Reset your password: %s\nThe link expires in 1 hour.", resetURL),
	)
	return nil
}

func (s *Service) CompleteReset(
	ctx context.Context,
	token, password string,
) error {

	// token errado e token expirado respondem igual: não vazamos se a
	// string existe no banco
	user, err := s.repo.FindByResetToken(ctx, token)
	if err != nil {
		return httperr.ErrBusiness("invalid_or_expired_token")
	}
	if domain.ResetExpired(user, time.Now()) {
		return httperr.ErrBusiness("invalid_or_expired_token")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	domain.CompleteReset(user, string(hashed))
	return s.repo.Update(ctx, user)
}

// ======================================================
// HELPERS
// ======================================================

func (s *Service) sendVerification(email, token string) {
	verifyURL := fmt.Sprintf("%s/api/verify?token=%s", s.appURL, token)
	s.notifier.Dispatch(
		email,
		"Verify your email",
		fmt.Sprintf("Please verify your account by visiting: %s", verifyURL),
	)
}
