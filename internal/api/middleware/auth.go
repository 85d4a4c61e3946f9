package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strconv"
	"strings"

	"github.com/glammyapp/salon-service/internal/api/handlers"
)

type contextKey string

const customerIDKey contextKey = "customerID"

// CustomerIDHeader проставляется API-гейтвеем после проверки токена клиента
const CustomerIDHeader = "X-User-ID"

// Auth проверяет наличие идентификатора клиента в заголовке
// и кладет его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idStr := r.Header.Get(CustomerIDHeader)
		if idStr == "" {
			handlers.RespondUnauthorized(w, "missing customer ID")
			return
		}

		customerID, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || customerID <= 0 {
			handlers.RespondUnauthorized(w, "invalid customer ID")
			return
		}

		ctx := context.WithValue(r.Context(), customerIDKey, customerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetCustomerID возвращает идентификатор клиента из контекста
func GetCustomerID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(customerIDKey).(int64)
	return id, ok
}

// AdminAuth проверяет Bearer токен администратора
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				handlers.RespondUnauthorized(w, "missing admin token")
				return
			}

			provided := strings.TrimPrefix(header, "Bearer ")
			if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				handlers.RespondForbidden(w, "invalid admin token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
