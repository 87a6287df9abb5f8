// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmpolyakov/todolist/internal/server/crypto"
	serr "github.com/dmpolyakov/todolist/internal/shared/errors"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// userIDKey — ключ контекста, под которым хранится ID аутентифицированного пользователя.
const userIDKey ctxKey = "user_id"

// sessionIDKey — ключ контекста с UUID текущей сессии (нужен logout-у).
const sessionIDKey ctxKey = "session_id"

// SessionsStore — минимум, который verifier-у нужен от репозитория сессий.
type SessionsStore interface {
	Get(ctx context.Context, id uuid.UUID) (userID int64, expiresAt time.Time, revokedAt *time.Time, err error)
}

// SessionVerifier проверяет cookie-сессии входящих запросов.
//
// Используется в HTTP middleware и page-хендлерах для:
//   - чтения сессионного cookie
//   - проверки подписи токена (HS256)
//   - загрузки серверной записи сессии и проверки срока/отзыва
type SessionVerifier struct {
	CookieName string
	token      crypto.SessionTokenConfig
	sessions   SessionsStore
}

// NewSessionVerifier создаёт новый SessionVerifier.
func NewSessionVerifier(cookieName, signingKey, issuer string, sessions SessionsStore) *SessionVerifier {
	return &SessionVerifier{
		CookieName: cookieName,
		token: crypto.SessionTokenConfig{
			Issuer:     issuer,
			SigningKey: signingKey,
		},
		sessions: sessions,
	}
}

// UserIDFromContext извлекает userID аутентифицированного пользователя из контекста.
//
// Возвращает:
//   - userID
//   - false, если пользователь не аутентифицирован
func UserIDFromContext(ctx context.Context) (int64, bool) {
	v := ctx.Value(userIDKey)
	id, ok := v.(int64)
	return id, ok
}

// SessionIDFromContext извлекает UUID текущей сессии из контекста.
func SessionIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	v := ctx.Value(sessionIDKey)
	id, ok := v.(uuid.UUID)
	return id, ok
}

// CurrentSession разбирает cookie запроса и возвращает пользователя и сессию.
//
// Шаги:
//   - достаём cookie с токеном
//   - проверяем подпись и exp токена
//   - загружаем запись сессии и проверяем revoked_at/expires_at
//
// Возвращает ErrUnauthorized на любом отказе: для клиента все причины
// неразличимы.
func (v *SessionVerifier) CurrentSession(r *http.Request) (int64, uuid.UUID, error) {
	c, err := r.Cookie(v.CookieName)
	if err != nil || c.Value == "" {
		return 0, uuid.Nil, serr.ErrUnauthorized
	}

	sessID, err := crypto.ParseSessionToken(c.Value, v.token)
	if err != nil {
		return 0, uuid.Nil, serr.ErrUnauthorized
	}

	userID, expiresAt, revokedAt, err := v.sessions.Get(r.Context(), sessID)
	if err != nil {
		return 0, uuid.Nil, err
	}
	if revokedAt != nil || time.Now().After(expiresAt) {
		return 0, uuid.Nil, serr.ErrUnauthorized
	}

	return userID, sessID, nil
}

// AuthMiddleware возвращает HTTP middleware для API-маршрутов.
//
// Middleware:
//   - проверяет cookie-сессию через CurrentSession
//   - сохраняет userID и sessionID в context.Context
//
// В случае ошибки возвращает HTTP 401 с JSON-телом
// {"error":"Not authenticated"} — как того ожидает фронтенд.
func (v *SessionVerifier) AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, sessID, err := v.CurrentSession(r)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Not authenticated"})
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, sessionIDKey, sessID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
