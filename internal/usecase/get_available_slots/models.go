package get_available_slots

import (
	"time"

	"github.com/afroconnect/booking-service/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BusinessID      int64
	Date            time.Time // Дата (без времени)
	DurationMinutes int       // Длительность услуги — определяет длину слота
}

// Response модель ответа со списком доступных слотов.
// Пустой список — бизнес закрыт, дата заблокирована, дата в прошлом
// или всё занято; это не ошибка.
type Response struct {
	BusinessID int64
	Date       time.Time
	Slots      []domain.AvailableSlot
}
