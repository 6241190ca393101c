package get_business_stats

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/afroconnect/booking-service/internal/api/handlers"
	"github.com/afroconnect/booking-service/internal/api/middleware"
	"github.com/afroconnect/booking-service/internal/domain"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
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

// Handle GET /api/v1/businesses/{businessId}/stats
// Query params: today (YYYY-MM-DD, опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := strconv.ParseInt(mux.Vars(r)["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/stats - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /businesses/{id}/stats - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	actor, _ := middleware.GetActor(r.Context())
	if actor != domain.ActorBusiness || userID != businessID {
		h.logger.Warn("GET /businesses/{id}/stats - Access denied: business_id=%d, user_id=%d", businessID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	today := time.Now().UTC()
	if todayStr := r.URL.Query().Get("today"); todayStr != "" {
		today, err = time.Parse(domain.DateFormat, todayStr)
		if err != nil {
			h.logger.Warn("GET /businesses/{id}/stats - Invalid today %q", todayStr)
			handlers.RespondBadRequest(w, msgInvalidToday)
			return
		}
	}

	stats, err := h.service.StatsForBusiness(r.Context(), businessID, today)
	if err != nil {
		h.logger.Error("GET /businesses/{id}/stats - Failed to get stats: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /businesses/{id}/stats - Stats retrieved: business_id=%d", businessID)
	handlers.RespondJSON(w, http.StatusOK, stats)
}
