package identity

import (
	"time"

	"github.com/bellasalon/booking-api/internal/httperr"
	"github.com/bellasalon/booking-api/internal/models"
)

// ===============================
// Identity Lifecycle
// ===============================
//
// Transições de estado do usuário: unverified → verified (um sentido só)
// e o reset de senha pendente, representado pelo par token + expiry.

// ResetTTL é a janela fixa de validade do token de reset.
const ResetTTL = time.Hour

// MarkVerified consome o token de verificação: limpa e marca verificado
// na mesma transição, então um replay não encontra mais o token.
func MarkVerified(u *models.User) {
	u.Verified = true
	u.VerifyToken = nil
}

// StartVerification (re)emite o token de verificação. Falha se a conta
// já foi verificada; a transição é de um sentido só.
func StartVerification(u *models.User, token string) error {
	if u.Verified {
		return httperr.ErrBusiness("already_verified")
	}
	u.VerifyToken = &token
	return nil
}

// StartReset emite token + expiry sobrescrevendo qualquer reset pendente;
// só o mais recente vale.
func StartReset(u *models.User, token string, now time.Time) {
	expires := now.Add(ResetTTL)
	u.ResetToken = &token
	u.ResetExpires = &expires
}

// ResetExpired responde se o reset pendente já passou da janela. Usuário
// sem expiry armazenado conta como expirado.
func ResetExpired(u *models.User, now time.Time) bool {
	return u.ResetExpires == nil || !now.Before(*u.ResetExpires)
}

// CompleteReset troca a credencial e limpa token + expiry na mesma
// mutação, para o token consumido não valer duas vezes.
func CompleteReset(u *models.User, newHash string) {
	u.PasswordHash = newHash
	u.ResetToken = nil
	u.ResetExpires = nil
}
