package update_availability_rules

import (
	"time"

	"github.com/afroconnect/booking-service/internal/domain"
)

// UpdateAvailabilityRulesRequest HTTP request model
type UpdateAvailabilityRulesRequest struct {
	WeeklyHours        domain.WeeklyHours `json:"weeklyHours"`
	BlockedDates       []string           `json:"blockedDates,omitempty"`
	GranularityMinutes int                `json:"granularityMinutes"`
}

// ToDomain конвертирует HTTP запрос в доменные правила
func (r *UpdateAvailabilityRulesRequest) ToDomain(businessID int64) (*domain.AvailabilityRule, error) {
	blocked := make([]time.Time, 0, len(r.BlockedDates))
	for _, s := range r.BlockedDates {
		d, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			return nil, err
		}
		blocked = append(blocked, d)
	}

	granularity := r.GranularityMinutes
	if granularity == 0 {
		granularity = domain.DefaultGranularityMinutes
	}

	return &domain.AvailabilityRule{
		BusinessID:         businessID,
		Hours:              r.WeeklyHours,
		BlockedDates:       blocked,
		GranularityMinutes: granularity,
	}, nil
}

// AvailabilityRuleResponse HTTP response model
type AvailabilityRuleResponse struct {
	BusinessID         int64              `json:"businessId"`
	WeeklyHours        domain.WeeklyHours `json:"weeklyHours"`
	BlockedDates       []string           `json:"blockedDates"`
	GranularityMinutes int                `json:"granularityMinutes"`
}

// FromDomain конвертирует доменные правила в HTTP response
func FromDomain(rule *domain.AvailabilityRule) *AvailabilityRuleResponse {
	blocked := make([]string, 0, len(rule.BlockedDates))
	for _, d := range rule.BlockedDates {
		blocked = append(blocked, d.Format(domain.DateFormat))
	}
	return &AvailabilityRuleResponse{
		BusinessID:         rule.BusinessID,
		WeeklyHours:        rule.Hours,
		BlockedDates:       blocked,
		GranularityMinutes: rule.GranularityMinutes,
	}
}
