package get_available_slots

import (
	"github.com/afroconnect/booking-service/internal/domain"
	getAvailableSlots "github.com/afroconnect/booking-service/internal/usecase/get_available_slots"
)

// SlotResponse один доступный слот
type SlotResponse struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	BusinessID int64          `json:"businessId"`
	Date       string         `json:"date"`
	Slots      []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime:       s.StartTime.String(),
			DurationMinutes: s.DurationMinutes,
		})
	}
	return &AvailableSlotsResponse{
		BusinessID: resp.BusinessID,
		Date:       resp.Date.Format(domain.DateFormat),
		Slots:      slots,
	}
}
