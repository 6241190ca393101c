package get_availability_rules

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/afroconnect/booking-service/internal/api/handlers"
	"github.com/afroconnect/booking-service/internal/service/availability"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgNotFound          = "правила доступности не настроены"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/availability-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := strconv.ParseInt(mux.Vars(r)["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/availability-rules - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	rule, err := h.service.GetByBusinessID(r.Context(), businessID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrRuleNotFound):
			h.logger.Warn("GET /businesses/{id}/availability-rules - Not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /businesses/{id}/availability-rules - Failed to get rules: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/availability-rules - Rules retrieved: business_id=%d", businessID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(rule))
}
