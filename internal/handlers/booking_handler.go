package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/bellasalon/booking-api/internal/domain/booking"
	domainIdentity "github.com/bellasalon/booking-api/internal/domain/identity"
	"github.com/bellasalon/booking-api/internal/httperr"
	"github.com/bellasalon/booking-api/internal/httpresp"
	"github.com/bellasalon/booking-api/internal/middleware"
	ucBooking "github.com/bellasalon/booking-api/internal/usecase/booking"
)

type BookingHandler struct {
	createUC *ucBooking.CreateBooking
	revokeUC *ucBooking.RevokeBooking
	listUC   *ucBooking.ListBookings
	users    domainIdentity.Repository
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	revokeUC *ucBooking.RevokeBooking,
	listUC *ucBooking.ListBookings,
	users domainIdentity.Repository,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		revokeUC: revokeUC,
		listUC:   listUC,
		users:    users,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	ServiceID uint   `json:"service_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// ======================================================
// HELPERS
// ======================================================

// requester resolve a identidade fresca no banco: o flag verified do
// token pode estar defasado (verificação acontece depois do login).
func (h *BookingHandler) requester(c *gin.Context) (domain.Identity, bool) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	user, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		httperr.Unauthorized(c, "user_not_found", "Usuário não encontrado.")
		return domain.Identity{}, false
	}

	return domain.Identity{
		ID:       user.ID,
		Role:     user.Role,
		Verified: user.Verified,
	}, true
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	requester, ok := h.requester(c)
	if !ok {
		return
	}

	views, err := h.listUC.Execute(c.Request.Context(), requester)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar reservas.")
		return
	}

	httpresp.OK(c, views)
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	requester, ok := h.requester(c)
	if !ok {
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Dados inválidos.")
		return
	}

	view, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		Requester: requester,
		Name:      req.Name,
		Phone:     req.Phone,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
	})

	switch {
	case err == nil:
		httpresp.Created(c, view)
	case httperr.IsBusiness(err, "not_verified"):
		httperr.Forbidden(c, "not_verified", "E-mail não verificado.")
	case httperr.IsBusiness(err, "missing_fields"):
		httperr.BadRequest(c, "missing_fields", "Campos obrigatórios ausentes.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Serviço não encontrado.")
	case httperr.IsBusiness(err, "slot_taken"):
		httperr.Conflict(c, "slot_taken", "Horário já reservado.")
	default:
		httperr.Internal(c, "failed_to_create_booking", "Erro ao criar reserva.")
	}
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	requester, ok := h.requester(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "missing_id", "Id da reserva inválido.")
		return
	}

	err = h.revokeUC.Execute(c.Request.Context(), requester, uint(id))
	switch {
	case err == nil:
		httpresp.Success(c, "Booking cancelled")
	case httperr.IsBusiness(err, "booking_not_found"):
		httperr.NotFound(c, "booking_not_found", "Reserva não encontrada.")
	case httperr.IsBusiness(err, "not_verified"):
		httperr.Forbidden(c, "not_verified", "E-mail não verificado.")
	case httperr.IsBusiness(err, "not_owner"):
		httperr.Forbidden(c, "not_owner", "Sem permissão para cancelar esta reserva.")
	default:
		httperr.Internal(c, "failed_to_cancel_booking", "Erro ao cancelar reserva.")
	}
}
