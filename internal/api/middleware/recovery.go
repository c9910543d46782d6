package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/turfspot/TurfBookingService/internal/api/handlers"
)

// RecoveryLogger интерфейс логгера для middleware восстановления
type RecoveryLogger interface {
	Error(format string, v ...interface{})
}

// Recovery перехватывает панику в обработчике и возвращает 500
func Recovery(log RecoveryLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.Error("Panic recovered: method=%s, path=%s, error=%v\n%s",
						r.Method, r.URL.Path, err, debug.Stack())
					handlers.RespondInternalError(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
