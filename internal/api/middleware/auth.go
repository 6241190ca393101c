package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/afroconnect/booking-service/internal/api/handlers"
	"github.com/afroconnect/booking-service/internal/domain"
)

// Сервис стоит за API gateway, который проверяет токены и
// прокидывает идентификацию доверенными заголовками.
const (
	HeaderUserID    = "X-User-ID"
	HeaderActorRole = "X-Actor-Role"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	actorKey
)

// Auth извлекает X-User-ID и X-Actor-Role и кладет их в контекст.
// Запросы без валидных заголовков отклоняются с 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(HeaderUserID)
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок "+HeaderUserID)
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок "+HeaderUserID)
			return
		}

		actor, err := domain.ParseActor(r.Header.Get(HeaderActorRole))
		if err != nil {
			handlers.RespondUnauthorized(w, "некорректный заголовок "+HeaderActorRole)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, actorKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// GetActor возвращает роль актора из контекста
func GetActor(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	return actor, ok
}
