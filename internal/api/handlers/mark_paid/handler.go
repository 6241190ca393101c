package mark_paid

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/afroconnect/booking-service/internal/api/handlers"
	"github.com/afroconnect/booking-service/internal/api/middleware"
	"github.com/afroconnect/booking-service/internal/domain"
	"github.com/afroconnect/booking-service/internal/service/appointments"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgBusinessOnly  = "отмечать оплату может только бизнес"
	msgNotFound      = "запись не найдена"
	msgForbidden     = "доступ запрещен"
	msgAlreadyPaid   = "запись уже оплачена"
	msgCannotPay     = "запись не может быть оплачена"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/paid
// Ручная отметка оплаты наличными; оплата in_app фиксируется при создании.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /appointments/{id}/paid - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if actor, ok := middleware.GetActor(r.Context()); !ok || actor != domain.ActorBusiness {
		h.logger.Warn("PATCH /appointments/{id}/paid - Non-business actor: user_id=%d", userID)
		handlers.RespondForbidden(w, msgBusinessOnly)
		return
	}

	appt, err := h.service.MarkPaid(r.Context(), appointmentID, userID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/paid - Not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{id}/paid - Access denied: appointment_id=%s, business_id=%d",
				appointmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrAlreadyPaid):
			h.logger.Warn("PATCH /appointments/{id}/paid - Already paid: appointment_id=%s", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyPaid)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/paid - Cannot pay: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondBadRequest(w, msgCannotPay)

		default:
			h.logger.Error("PATCH /appointments/{id}/paid - Failed to mark paid: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/paid - Appointment marked paid: appointment_id=%s, business_id=%d",
		appointmentID, userID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromAppointment(appt))
}
