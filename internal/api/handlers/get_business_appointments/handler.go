package get_business_appointments

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
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
	msgInvalidTab        = "некорректная вкладка, ожидается all|pending|confirmed|completed"
	msgInvalidDateRange  = "некорректный диапазон дат, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/businesses/{businessId}/appointments
// Query params: tab (all|pending|confirmed|completed), from, to (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := strconv.ParseInt(mux.Vars(r)["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/appointments - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /businesses/{id}/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	actor, _ := middleware.GetActor(r.Context())
	if actor != domain.ActorBusiness || userID != businessID {
		h.logger.Warn("GET /businesses/{id}/appointments - Access denied: business_id=%d, user_id=%d", businessID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	tab := models.BusinessTab(r.URL.Query().Get("tab"))
	if tab == "" {
		tab = models.TabAll
	}
	if !tab.Valid() {
		h.logger.Warn("GET /businesses/{id}/appointments - Invalid tab %q", tab)
		handlers.RespondBadRequest(w, msgInvalidTab)
		return
	}

	var startDate, endDate *time.Time
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			h.logger.Warn("GET /businesses/{id}/appointments - Invalid from %q", fromStr)
			handlers.RespondBadRequest(w, msgInvalidDateRange)
			return
		}
		startDate = &from
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			h.logger.Warn("GET /businesses/{id}/appointments - Invalid to %q", toStr)
			handlers.RespondBadRequest(w, msgInvalidDateRange)
			return
		}
		endDate = &to
	}

	result, err := h.service.GetBusinessAppointments(r.Context(), models.BusinessAppointmentsRequest{
		BusinessID: businessID,
		Tab:        tab,
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{id}/appointments - Invalid input: business_id=%d, error=%v", businessID, err)
			handlers.RespondBadRequest(w, msgInvalidTab)

		default:
			h.logger.Error("GET /businesses/{id}/appointments - Failed to get appointments: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/appointments - Appointments retrieved: business_id=%d, tab=%s, count=%d",
		businessID, tab, len(result))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromAppointments(result))
}
