// Package crypto содержит криптографические примитивы сервера TodoList.
//
// Пакет отвечает за:
//   - хэширование и проверку паролей (argon2id);
//   - подпись и проверку сессионных cookie-токенов (HS256).
//
// Сессионный токен — это подписанная ссылка на серверную сессию:
// клиент получает в cookie JWT, в subject которого лежит UUID сессии.
// Сами данные сессии (user_id, срок жизни, отзыв) хранятся в БД,
// для клиента токен непрозрачен.
package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionTokenConfig описывает параметры подписи сессионного токена.
type SessionTokenConfig struct {
	// Issuer — значение поля iss (кто выдал токен).
	Issuer string
	// SigningKey — секретный ключ подписи (HS256).
	// Задаётся в конфиге при старте процесса, не глобальная переменная.
	SigningKey string
	// TTL — срок жизни токена; совпадает со сроком жизни сессии в БД.
	TTL time.Duration
}

// NewSessionToken подписывает ссылку на сессию sessionID.
//
// Токен содержит стандартные RegisteredClaims:
//   - iss (Issuer)
//   - sub (UUID сессии)
//   - iat (IssuedAt)
//   - exp (ExpiresAt)
//
// Используется алгоритм подписи HS256.
func NewSessionToken(sessionID uuid.UUID, cfg SessionTokenConfig) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Issuer:    cfg.Issuer,
		Subject:   sessionID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(cfg.SigningKey))
}

// ParseSessionToken проверяет подпись токена и возвращает UUID сессии.
//
// Проверяется:
//   - алгоритм подписи (только HS256);
//   - срок действия (exp);
//   - issuer, если задан;
//   - что subject парсится как UUID.
func ParseSessionToken(token string, cfg SessionTokenConfig) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	_, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(cfg.SigningKey), nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	if cfg.Issuer != "" && claims.Issuer != cfg.Issuer {
		return uuid.Nil, errors.New("invalid token issuer")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errors.New("invalid token subject")
	}
	return id, nil
}
