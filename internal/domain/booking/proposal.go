package booking

import (
	"strings"
	"time"

	"github.com/bellasalon/booking-api/internal/httperr"
)

// Proposal é o pedido de reserva antes de qualquer acesso ao storage.
type Proposal struct {
	Name      string
	Phone     string
	ServiceID uint
	Date      string
	Time      string
}

const dateLayout = "2006-01-02"

// Validate falha com erro de validação antes de tocar o banco: campos
// obrigatórios presentes e data no formato YYYY-MM-DD.
func (p Proposal) Validate() error {
	if strings.TrimSpace(p.Name) == "" ||
		p.ServiceID == 0 ||
		strings.TrimSpace(p.Date) == "" ||
		strings.TrimSpace(p.Time) == "" {
		return httperr.ErrBusiness("missing_fields")
	}

	if _, err := time.Parse(dateLayout, p.Date); err != nil {
		return httperr.ErrBusiness("invalid_date")
	}

	return nil
}
