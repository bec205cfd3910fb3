package identity

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bellasalon/booking-api/internal/httperr"
	infraRepo "github.com/bellasalon/booking-api/internal/infra/repository"
	"github.com/bellasalon/booking-api/internal/models"
)

type recordingNotifier struct {
	mu    sync.Mutex
	sends []string // "to|subject"
}

func (n *recordingNotifier) Dispatch(to, subject, body string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sends = append(n.sends, to+"|"+subject)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sends)
}

func newTestService() (*Service, *infraRepo.UserMemoryRepository, *recordingNotifier) {
	repo := infraRepo.NewUserMemoryRepository()
	notifier := &recordingNotifier{}
	return NewService(repo, notifier, "http://localhost:4000"), repo, notifier
}

func register(t *testing.T, s *Service, email string) {
	t.Helper()
	require.NoError(t, s.Register(context.Background(), "Alice", email, "pw1"))
}

func verifyTokenOf(t *testing.T, repo *infraRepo.UserMemoryRepository, email string) string {
	t.Helper()
	u, err := repo.FindByEmail(context.Background(), email)
	require.NoError(t, err)
	require.NotNil(t, u.VerifyToken)
	return *u.VerifyToken
}

func TestRegister(t *testing.T) {
	s, repo, notifier := newTestService()
	register(t, s, "alice@x.com")

	u, err := repo.FindByEmail(context.Background(), "alice@x.com")
	require.NoError(t, err)

	assert.False(t, u.Verified)
	assert.NotNil(t, u.VerifyToken)
	assert.Equal(t, models.RoleCustomer, u.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pw1")))
	assert.Equal(t, 1, notifier.count())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s, _, _ := newTestService()
	register(t, s, "alice@x.com")

	err := s.Register(context.Background(), "Other Alice", "alice@x.com", "pw2")
	assert.True(t, httperr.IsBusiness(err, "email_taken"))
}

func TestRegisterInvalidEmail(t *testing.T) {
	s, _, notifier := newTestService()

	err := s.Register(context.Background(), "Alice", "not-an-email", "pw1")
	assert.True(t, httperr.IsBusiness(err, "invalid_email"))
	assert.Equal(t, 0, notifier.count())
}

func TestLogin(t *testing.T) {
	s, _, _ := newTestService()
	register(t, s, "alice@x.com")

	// login funciona antes da verificação; o flag vem junto
	u, err := s.Login(context.Background(), "alice@x.com", "pw1")
	require.NoError(t, err)
	assert.False(t, u.Verified)

	_, err = s.Login(context.Background(), "alice@x.com", "wrong")
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))

	// e-mail desconhecido responde igual a senha errada
	_, err = s.Login(context.Background(), "nobody@x.com", "pw1")
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))
}

func TestVerifyTokenIsSingleUse(t *testing.T) {
	s, repo, _ := newTestService()
	register(t, s, "alice@x.com")
	token := verifyTokenOf(t, repo, "alice@x.com")

	require.NoError(t, s.Verify(context.Background(), token))

	u, err := repo.FindByEmail(context.Background(), "alice@x.com")
	require.NoError(t, err)
	assert.True(t, u.Verified)
	assert.Nil(t, u.VerifyToken)

	// replay do mesmo token falha: ele foi limpo ao ser consumido
	err = s.Verify(context.Background(), token)
	assert.True(t, httperr.IsBusiness(err, "invalid_token"))
}

func TestVerifyUnknownToken(t *testing.T) {
	s, _, _ := newTestService()
	err := s.Verify(context.Background(), "no-such-token")
	assert.True(t, httperr.IsBusiness(err, "invalid_token"))
}

func TestResendVerification(t *testing.T) {
	s, repo, notifier := newTestService()
	register(t, s, "alice@x.com")
	first := verifyTokenOf(t, repo, "alice@x.com")

	require.NoError(t, s.ResendVerification(context.Background(), "alice@x.com"))
	second := verifyTokenOf(t, repo, "alice@x.com")

	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, notifier.count())

	// o token antigo morreu junto com a reemissão
	err := s.Verify(context.Background(), first)
	assert.True(t, httperr.IsBusiness(err, "invalid_token"))

	require.NoError(t, s.Verify(context.Background(), second))

	err = s.ResendVerification(context.Background(), "alice@x.com")
	assert.True(t, httperr.IsBusiness(err, "already_verified"))
}

func TestResendVerificationUnknownEmail(t *testing.T) {
	s, _, _ := newTestService()
	err := s.ResendVerification(context.Background(), "nobody@x.com")
	assert.True(t, httperr.IsBusiness(err, "user_not_found"))
}

func TestPasswordReset(t *testing.T) {
	s, repo, notifier := newTestService()
	register(t, s, "alice@x.com")

	require.NoError(t, s.RequestReset(context.Background(), "alice@x.com"))
	assert.Equal(t, 2, notifier.count())

	u, err := repo.FindByEmail(context.Background(), "alice@x.com")
	require.NoError(t, err)
	require.NotNil(t, u.ResetToken)
	token := *u.ResetToken

	require.NoError(t, s.CompleteReset(context.Background(), token, "newpw"))

	_, err = s.Login(context.Background(), "alice@x.com", "newpw")
	assert.NoError(t, err)
	_, err = s.Login(context.Background(), "alice@x.com", "pw1")
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))

	// token consumido não vale duas vezes, mesmo num replay da request
	err = s.CompleteReset(context.Background(), token, "anotherpw")
	assert.True(t, httperr.IsBusiness(err, "invalid_or_expired_token"))
}

func TestPasswordResetExpired(t *testing.T) {
	s, repo, _ := newTestService()
	register(t, s, "alice@x.com")

	require.NoError(t, s.RequestReset(context.Background(), "alice@x.com"))

	u, err := repo.FindByEmail(context.Background(), "alice@x.com")
	require.NoError(t, err)
	token := *u.ResetToken

	// envelhece o reset pendente além da janela de 1 hora
	expired := time.Now().Add(-time.Minute)
	u.ResetExpires = &expired
	require.NoError(t, repo.Update(context.Background(), u))

	err = s.CompleteReset(context.Background(), token, "newpw")
	assert.True(t, httperr.IsBusiness(err, "invalid_or_expired_token"))

	// a senha antiga continua valendo
	_, err = s.Login(context.Background(), "alice@x.com", "pw1")
	assert.NoError(t, err)
}

func TestPasswordResetOnlyLatestTokenValid(t *testing.T) {
	s, repo, _ := newTestService()
	register(t, s, "alice@x.com")

	require.NoError(t, s.RequestReset(context.Background(), "alice@x.com"))
	u, err := repo.FindByEmail(context.Background(), "alice@x.com")
	require.NoError(t, err)
	first := *u.ResetToken

	require.NoError(t, s.RequestReset(context.Background(), "alice@x.com"))

	err = s.CompleteReset(context.Background(), first, "newpw")
	assert.True(t, httperr.IsBusiness(err, "invalid_or_expired_token"))
}

func TestRequestResetUnknownEmail(t *testing.T) {
	s, _, _ := newTestService()
	err := s.RequestReset(context.Background(), "nobody@x.com")
	assert.True(t, httperr.IsBusiness(err, "user_not_found"))
}
