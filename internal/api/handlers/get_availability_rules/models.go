package get_availability_rules

import (
	"github.com/afroconnect/booking-service/internal/domain"
)

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
