package get_customer_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/afroconnect/booking-service/internal/api/handlers"
	"github.com/afroconnect/booking-service/internal/api/middleware"
	"github.com/afroconnect/booking-service/internal/domain"
	"github.com/afroconnect/booking-service/internal/service/appointments"
	"github.com/afroconnect/booking-service/internal/service/appointments/models"
)

const (
	msgInvalidCustomerID = "некорректный ID клиента"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
	msgInvalidMode       = "некорректный режим фильтрации, ожидается upcoming|past|cancelled"
	msgInvalidToday      = "некорректная дата today, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/customers/{customerId}/appointments
// Query params: mode (upcoming|past|cancelled), today (YYYY-MM-DD, опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.ParseInt(mux.Vars(r)["customerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /customers/{id}/appointments - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /customers/{id}/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	actor, _ := middleware.GetActor(r.Context())
	if actor != domain.ActorCustomer || userID != customerID {
		h.logger.Warn("GET /customers/{id}/appointments - Access denied: customer_id=%d, user_id=%d", customerID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	mode := models.CustomerListMode(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = models.ModeUpcoming
	}
	if !mode.Valid() {
		h.logger.Warn("GET /customers/{id}/appointments - Invalid mode %q", mode)
		handlers.RespondBadRequest(w, msgInvalidMode)
		return
	}

	// "Сегодня" приходит от клиента (его часовой пояс), по умолчанию UTC
	today := time.Now().UTC()
	if todayStr := r.URL.Query().Get("today"); todayStr != "" {
		today, err = time.Parse(domain.DateFormat, todayStr)
		if err != nil {
			h.logger.Warn("GET /customers/{id}/appointments - Invalid today %q", todayStr)
			handlers.RespondBadRequest(w, msgInvalidToday)
			return
		}
	}

	result, err := h.service.GetCustomerAppointments(r.Context(), models.CustomerAppointmentsRequest{
		CustomerID: customerID,
		Mode:       mode,
		Today:      today,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /customers/{id}/appointments - Invalid input: customer_id=%d, error=%v", customerID, err)
			handlers.RespondBadRequest(w, msgInvalidMode)

		default:
			h.logger.Error("GET /customers/{id}/appointments - Failed to get appointments: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /customers/{id}/appointments - Appointments retrieved: customer_id=%d, mode=%s, count=%d",
		customerID, mode, len(result))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromAppointments(result))
}
