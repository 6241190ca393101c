package create_appointment

import (
	"errors"
	"net/http"

	"github.com/afroconnect/booking-service/internal/api/handlers"
	"github.com/afroconnect/booking-service/internal/api/middleware"
	"github.com/afroconnect/booking-service/internal/domain"
	createAppointment "github.com/afroconnect/booking-service/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidParams       = "некорректные параметры записи"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgCustomersOnly       = "создавать записи может только клиент"
	msgSlotConflict        = "выбранный временной слот уже занят"
	msgServiceInactive     = "услуга недоступна для записи"
	msgDateInPast          = "нельзя записаться на прошедшую дату"
	msgDateBlocked         = "выбранная дата недоступна для записи"
	msgBusinessClosed      = "бизнес закрыт в выбранную дату"
	msgOutsideWorkingHours = "слот выходит за рабочие часы"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if actor, ok := middleware.GetActor(r.Context()); !ok || actor != domain.ActorCustomer {
		h.logger.Warn("POST /appointments - Non-customer actor attempted to book: user_id=%d", customerID)
		handlers.RespondForbidden(w, msgCustomersOnly)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot conflict: customer_id=%d, business_id=%d", customerID, req.BusinessID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createAppointment.ErrServiceInactive):
			h.logger.Warn("POST /appointments - Service inactive: customer_id=%d, business_id=%d", customerID, req.BusinessID)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, createAppointment.ErrDateInPast):
			h.logger.Warn("POST /appointments - Date in past: customer_id=%d, business_id=%d", customerID, req.BusinessID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createAppointment.ErrDateBlocked):
			h.logger.Warn("POST /appointments - Date blocked: customer_id=%d, business_id=%d", customerID, req.BusinessID)
			handlers.RespondBadRequest(w, msgDateBlocked)

		case errors.Is(err, createAppointment.ErrBusinessClosed):
			h.logger.Warn("POST /appointments - Business closed: customer_id=%d, business_id=%d", customerID, req.BusinessID)
			handlers.RespondBadRequest(w, msgBusinessClosed)

		case errors.Is(err, createAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("POST /appointments - Outside working hours: customer_id=%d, business_id=%d", customerID, req.BusinessID)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: customer_id=%d, business_id=%d, error=%v",
				customerID, req.BusinessID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: customer_id=%d, business_id=%d, error=%v",
				customerID, req.BusinessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%s, customer_id=%d, business_id=%d",
		result.ID, customerID, req.BusinessID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
