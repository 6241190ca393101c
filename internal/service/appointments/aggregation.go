package appointments

import (
	"sort"
	"time"

	"github.com/afroconnect/booking-service/internal/domain"
	"github.com/afroconnect/booking-service/internal/service/appointments/models"
)

// Чистые read-side трансформации над списками записей.
// "Сегодня" всегда передаётся вызывающей стороной, чтобы фильтры
// оставались детерминированными и тестируемыми.

// FilterByTab фильтрует записи по вкладке бизнеса.
// Вкладка "all" возвращает список без изменений.
func FilterByTab(appts []*domain.Appointment, tab models.BusinessTab) []*domain.Appointment {
	if tab == models.TabAll {
		return appts
	}

	status := domain.AppointmentStatus(tab)
	out := make([]*domain.Appointment, 0, len(appts))
	for _, a := range appts {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out
}

// FilterForCustomer фильтрует записи клиента по режиму:
//   - upcoming: дата >= today и статус не терминальный, по возрастанию даты;
//   - past: дата < today или статус completed, по убыванию даты;
//   - cancelled: только отменённые.
func FilterForCustomer(appts []*domain.Appointment, mode models.CustomerListMode, today time.Time) []*domain.Appointment {
	day := truncateToDay(today)
	out := make([]*domain.Appointment, 0, len(appts))

	switch mode {
	case models.ModeUpcoming:
		for _, a := range appts {
			if !truncateToDay(a.Date).Before(day) && a.Status != domain.StatusCancelled && a.Status != domain.StatusCompleted {
				out = append(out, a)
			}
		}
		sortByDate(out, true)
	case models.ModePast:
		for _, a := range appts {
			if truncateToDay(a.Date).Before(day) || a.Status == domain.StatusCompleted {
				out = append(out, a)
			}
		}
		sortByDate(out, false)
	case models.ModeCancelled:
		for _, a := range appts {
			if a.Status == domain.StatusCancelled {
				out = append(out, a)
			}
		}
		sortByDate(out, false)
	}

	return out
}

// Stats считает агрегаты по записям бизнеса за один проход.
// todayRevenue учитывает только завершённые и оплаченные записи за today.
func Stats(appts []*domain.Appointment, today time.Time) models.BusinessStats {
	day := truncateToDay(today)

	var stats models.BusinessStats
	for _, a := range appts {
		isToday := truncateToDay(a.Date).Equal(day)
		if isToday {
			stats.TodayCount++
		}
		if a.Status == domain.StatusPending {
			stats.PendingCount++
		}
		if a.Status == domain.StatusCompleted {
			stats.TotalCompleted++
			if a.IsPaid && isToday {
				stats.TodayRevenue += a.Service.Price
			}
		}
	}
	return stats
}

func sortByDate(appts []*domain.Appointment, asc bool) {
	sort.SliceStable(appts, func(i, j int) bool {
		if !appts[i].Date.Equal(appts[j].Date) {
			if asc {
				return appts[i].Date.Before(appts[j].Date)
			}
			return appts[i].Date.After(appts[j].Date)
		}
		if asc {
			return appts[i].StartTime.IsBefore(appts[j].StartTime)
		}
		return appts[i].StartTime.IsAfter(appts[j].StartTime)
	})
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
