package booking

import (
	"github.com/bellasalon/booking-api/internal/httperr"
	"github.com/bellasalon/booking-api/internal/models"
)

// ===============================
// Access Policy
// ===============================
//
// Decisão pura sobre fatos já carregados: nenhuma consulta acontece aqui.

// Identity é o requisitante autenticado visto pela política.
type Identity struct {
	ID       uint
	Role     string
	Verified bool
}

func (id Identity) IsStaff() bool {
	return id.Role == models.RoleStaff || id.Role == models.RoleAdmin
}

// CanViewAll decide o escopo da listagem: staff/admin enxergam tudo,
// cliente enxerga só as próprias reservas.
func CanViewAll(id Identity) bool {
	return id.IsStaff()
}

// CanCreate exige conta verificada; o erro é distinto de credencial
// inválida para o cliente poder oferecer o reenvio da verificação.
func CanCreate(id Identity) error {
	if !id.Verified {
		return httperr.ErrBusiness("not_verified")
	}
	return nil
}

// CanCancel exige conta verificada e (staff/admin ou dono da reserva).
// O dono é resolvido pela referência user_id gravada; nunca por nome.
func CanCancel(id Identity, ownerID uint) error {
	if !id.Verified {
		return httperr.ErrBusiness("not_verified")
	}
	if id.IsStaff() {
		return nil
	}
	if ownerID != id.ID {
		return httperr.ErrBusiness("not_owner")
	}
	return nil
}
