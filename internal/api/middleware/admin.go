package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ResortService/internal/api/handlers"
	"github.com/m04kA/SMC-ResortService/internal/domain"
	userRepo "github.com/m04kA/SMC-ResortService/internal/infra/storage/user"
)

const msgAdminOnly = "доступ только для администратора"

// UserGetter источник ролей пользователей
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Admin пропускает только пользователей с ролью admin
// Должен стоять после Auth
func Admin(users UserGetter, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingUserID)
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, userRepo.ErrUserNotFound) {
					log.Warn("Admin - unknown user: user_id=%d", userID)
					handlers.RespondForbidden(w, msgAdminOnly)
					return
				}
				log.Error("Admin - failed to load user: user_id=%d, error=%v", userID, err)
				handlers.RespondInternalError(w)
				return
			}

			if !user.IsAdmin() {
				log.Warn("Admin - access denied: user_id=%d, role=%s", userID, user.Role)
				handlers.RespondForbidden(w, msgAdminOnly)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
