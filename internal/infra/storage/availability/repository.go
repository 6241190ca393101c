package availability

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/afroconnect/booking-service/internal/domain"
	"github.com/afroconnect/booking-service/pkg/dbmetrics"
	"github.com/afroconnect/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий правил доступности бизнеса.
// Недельное расписание хранится одной JSONB-колонкой, заблокированные
// даты — массивом date[].
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBusinessID получает правила доступности бизнеса
func (r *Repository) GetByBusinessID(ctx context.Context, businessID int64) (*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"weekly_hours",
		"blocked_dates",
		"granularity_minutes",
		"created_at",
		"updated_at",
	).
		From("availability_rules").
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessID - build select query: %v", ErrBuildQuery, err)
	}

	var rule domain.AvailabilityRule
	var hoursRaw []byte
	var blocked []time.Time
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rule.ID,
		&rule.BusinessID,
		&hoursRaw,
		pq.Array(&blocked),
		&rule.GranularityMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessID - scan rule: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(hoursRaw, &rule.Hours); err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessID - decode weekly hours: %v", ErrScanRow, err)
	}

	rule.BlockedDates = blocked
	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return &rule, nil
}

// Upsert создает или обновляет правила доступности бизнеса
func (r *Repository) Upsert(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	hoursRaw, err := json.Marshal(rule.Hours)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - encode weekly hours: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("availability_rules").
		Columns(
			"business_id",
			"weekly_hours",
			"blocked_dates",
			"granularity_minutes",
		).
		Values(
			rule.BusinessID,
			hoursRaw,
			pq.Array(rule.BlockedDates),
			rule.GranularityMinutes,
		).
		Suffix(`ON CONFLICT (business_id) DO UPDATE SET
			weekly_hours = EXCLUDED.weekly_hours,
			blocked_dates = EXCLUDED.blocked_dates,
			granularity_minutes = EXCLUDED.granularity_minutes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rule.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}
