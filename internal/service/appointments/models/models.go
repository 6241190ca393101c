package models

import (
	"time"

	"github.com/afroconnect/booking-service/internal/domain"
)

// CustomerListMode режим фильтрации списка записей клиента
type CustomerListMode string

const (
	ModeUpcoming  CustomerListMode = "upcoming"
	ModePast      CustomerListMode = "past"
	ModeCancelled CustomerListMode = "cancelled"
)

// Valid проверяет, что режим входит в закрытый список
func (m CustomerListMode) Valid() bool {
	switch m {
	case ModeUpcoming, ModePast, ModeCancelled:
		return true
	}
	return false
}

// BusinessTab вкладка списка записей бизнеса
type BusinessTab string

const (
	TabAll       BusinessTab = "all"
	TabPending   BusinessTab = "pending"
	TabConfirmed BusinessTab = "confirmed"
	TabCompleted BusinessTab = "completed"
)

// Valid проверяет, что вкладка входит в закрытый список
func (t BusinessTab) Valid() bool {
	switch t {
	case TabAll, TabPending, TabConfirmed, TabCompleted:
		return true
	}
	return false
}

// TransitionRequest запрос на смену статуса записи
type TransitionRequest struct {
	AppointmentID string
	ActorID       int64
	Actor         domain.Actor
	ToStatus      domain.AppointmentStatus
}

// CancelRequest запрос на отмену записи
type CancelRequest struct {
	AppointmentID string
	ActorID       int64
	Actor         domain.Actor
	Reason        *string
}

// CustomerAppointmentsRequest запрос списка записей клиента
type CustomerAppointmentsRequest struct {
	CustomerID int64
	Mode       CustomerListMode
	Today      time.Time
}

// BusinessAppointmentsRequest запрос списка записей бизнеса
type BusinessAppointmentsRequest struct {
	BusinessID int64
	Tab        BusinessTab
	StartDate  *time.Time
	EndDate    *time.Time
}

// BusinessStats агрегированная статистика по записям бизнеса
type BusinessStats struct {
	TodayCount     int     `json:"todayCount"`
	PendingCount   int     `json:"pendingCount"`
	TodayRevenue   float64 `json:"todayRevenue"`
	TotalCompleted int     `json:"totalCompleted"`
}
