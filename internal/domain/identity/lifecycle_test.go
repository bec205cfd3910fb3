package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bellasalon/booking-api/internal/httperr"
	"github.com/bellasalon/booking-api/internal/models"
)

func TestMarkVerifiedClearsToken(t *testing.T) {
	token := "abc"
	u := &models.User{Verified: false, VerifyToken: &token}

	MarkVerified(u)

	assert.True(t, u.Verified)
	assert.Nil(t, u.VerifyToken)
}

func TestStartVerification(t *testing.T) {
	u := &models.User{Verified: false}

	assert.NoError(t, StartVerification(u, "t1"))
	assert.Equal(t, "t1", *u.VerifyToken)

	// reemissão sobrescreve o token anterior
	assert.NoError(t, StartVerification(u, "t2"))
	assert.Equal(t, "t2", *u.VerifyToken)

	MarkVerified(u)
	err := StartVerification(u, "t3")
	assert.True(t, httperr.IsBusiness(err, "already_verified"))
	assert.Nil(t, u.VerifyToken)
}

func TestStartResetOverwritesPrevious(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	u := &models.User{}

	StartReset(u, "first", now)
	StartReset(u, "second", now.Add(time.Minute))

	assert.Equal(t, "second", *u.ResetToken)
	assert.Equal(t, now.Add(time.Minute).Add(ResetTTL), *u.ResetExpires)
}

func TestResetExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	u := &models.User{}
	StartReset(u, "tok", now)

	assert.False(t, ResetExpired(u, now))
	assert.False(t, ResetExpired(u, now.Add(ResetTTL-time.Second)))

	// a borda exata já conta como expirado
	assert.True(t, ResetExpired(u, now.Add(ResetTTL)))
	assert.True(t, ResetExpired(u, now.Add(2*time.Hour)))

	// sem expiry gravado nunca é aceito
	assert.True(t, ResetExpired(&models.User{}, now))
}

func TestCompleteResetIsAtomicOnTheRow(t *testing.T) {
	now := time.Now()
	u := &models.User{PasswordHash: "old"}
	StartReset(u, "tok", now)

	CompleteReset(u, "new")

	assert.Equal(t, "new", u.PasswordHash)
	assert.Nil(t, u.ResetToken)
	assert.Nil(t, u.ResetExpires)
}
