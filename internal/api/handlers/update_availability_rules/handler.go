package update_availability_rules

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/afroconnect/booking-service/internal/api/handlers"
	"github.com/afroconnect/booking-service/internal/api/middleware"
	"github.com/afroconnect/booking-service/internal/domain"
	"github.com/afroconnect/booking-service/internal/service/availability"
)

const (
	msgInvalidBusinessID  = "некорректный ID бизнеса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgInvalidRule        = "некорректные правила доступности"
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

// Handle PUT /api/v1/businesses/{businessId}/availability-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := strconv.ParseInt(mux.Vars(r)["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /businesses/{id}/availability-rules - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /businesses/{id}/availability-rules - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	actor, _ := middleware.GetActor(r.Context())
	if actor != domain.ActorBusiness || userID != businessID {
		h.logger.Warn("PUT /businesses/{id}/availability-rules - Access denied: business_id=%d, user_id=%d",
			businessID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var req UpdateAvailabilityRulesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /businesses/{id}/availability-rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	rule, err := req.ToDomain(businessID)
	if err != nil {
		h.logger.Warn("PUT /businesses/{id}/availability-rules - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRule)
		return
	}

	updated, err := h.service.Update(r.Context(), rule)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidRule):
			h.logger.Warn("PUT /businesses/{id}/availability-rules - Invalid rule: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondBadRequest(w, msgInvalidRule)

		default:
			h.logger.Error("PUT /businesses/{id}/availability-rules - Failed to update rules: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /businesses/{id}/availability-rules - Rules updated: business_id=%d", businessID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}
