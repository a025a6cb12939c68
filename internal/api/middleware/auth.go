package middleware

import (
	"context"
	"net/http"
	"strconv"
)

type ctxKey string

const (
	userIDKey  ctxKey = "userID"
	isAdminKey ctxKey = "isAdmin"

	headerUserID = "X-User-ID"
	headerAdmin  = "X-User-Admin"
)

// Auth извлекает идентификацию пользователя из заголовков шлюза.
// Запросы без X-User-ID отклоняются с 401, признак администратора
// берется из X-User-Admin.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(headerUserID)
		if userIDStr == "" {
			respondUnauthorized(w)
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			respondUnauthorized(w)
			return
		}

		isAdmin := r.Header.Get(headerAdmin) == "true"

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, isAdminKey, isAdmin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// IsAdmin возвращает признак администратора из контекста запроса
func IsAdmin(ctx context.Context) bool {
	isAdmin, ok := ctx.Value(isAdminKey).(bool)
	return ok && isAdmin
}

func respondUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"message":"требуется аутентификация"}`))
}
