package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmpolyakov/todolist/internal/server/config"
	"github.com/dmpolyakov/todolist/internal/server/crypto"
	serr "github.com/dmpolyakov/todolist/internal/shared/errors"
)

// AuthService реализует бизнес-логику аутентификации и управления сессиями.
//
// Ответственность:
//   - регистрация пользователей
//   - аутентификация (логин)
//   - создание cookie-сессий (серверная запись + подписанный токен)
//   - завершение сессий (logout)
type AuthService struct {
	users    UsersRepo
	sessions SessionsRepo

	pass  crypto.Argon2Params
	token crypto.SessionTokenConfig
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, sessions SessionsRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,

		pass: crypto.Argon2Params{
			Time:      cfg.Password.Argon2.Time,
			MemoryKiB: cfg.Password.Argon2.MemoryKiB,
			Threads:   cfg.Password.Argon2.Threads,
			KeyLen:    cfg.Password.Argon2.KeyLen,
			SaltLen:   cfg.Password.Argon2.SaltLen,
		},
		token: crypto.SessionTokenConfig{
			Issuer:     cfg.Auth.Issuer,
			SigningKey: cfg.Auth.Signing.Key,
			TTL:        cfg.Auth.SessionTTL,
		},
	}
}

// validateCredentials — общая валидация полей signup/login.
//
// Формат email проверяется минимально: наличие "@" и ".".
// Ошибки различаются по полям, чтобы api мог вернуть точное сообщение.
func validateCredentials(email, password string) error {
	if email == "" {
		return serr.ErrEmailRequired
	}
	if password == "" {
		return serr.ErrPasswordRequired
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return serr.ErrInvalidEmail
	}
	return nil
}

// Register регистрирует нового пользователя.
//
// Возвращает:
//   - id пользователя
//   - ErrEmailRequired / ErrPasswordRequired / ErrInvalidEmail при некорректных данных
//   - ErrAlreadyExists если email уже зарегистрирован
func (s *AuthService) Register(ctx context.Context, email, password string) (int64, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	password = strings.TrimSpace(password)

	if err := validateCredentials(email, password); err != nil {
		return 0, err
	}

	hash, err := crypto.HashPassword(password, s.pass)
	if err != nil {
		return 0, serr.ErrInternal
	}
	return s.users.Create(ctx, email, hash)
}

// Login аутентифицирует пользователя.
//
// Поведение:
//   - не раскрывает факт существования email
//   - неверный email и неверный пароль дают одну и ту же ошибку
//
// Ошибки:
//   - ошибки валидации полей
//   - ErrInvalidCredentials
func (s *AuthService) Login(ctx context.Context, email, password string) (int64, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	password = strings.TrimSpace(password)

	if err := validateCredentials(email, password); err != nil {
		return 0, err
	}
	// получаем юзера по email
	userID, hash, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// не палим существование email
		if errors.Is(err, serr.ErrNotFound) {
			return 0, serr.ErrInvalidCredentials
		}
		return 0, err
	}
	// проверяем пароль
	ok, err := crypto.VerifyPassword(password, hash)
	if err != nil {
		return 0, serr.ErrInternal
	}
	if !ok {
		return 0, serr.ErrInvalidCredentials
	}

	return userID, nil
}

// StartSession создаёт серверную сессию пользователя и возвращает
// подписанный токен для cookie.
//
// Сессия живёт SessionTTL; срок зашит и в запись БД, и в exp токена.
func (s *AuthService) StartSession(ctx context.Context, userID int64) (string, error) {
	id := uuid.New()
	expiresAt := time.Now().Add(s.token.TTL)

	if err := s.sessions.Create(ctx, id, userID, expiresAt); err != nil {
		return "", err
	}

	token, err := crypto.NewSessionToken(id, s.token)
	if err != nil {
		return "", serr.ErrInternal
	}
	return token, nil
}

// EndSession завершает сессию (logout).
//
// Отзыв уже отозванной или несуществующей сессии не считается ошибкой:
// logout должен работать из любого состояния.
func (s *AuthService) EndSession(ctx context.Context, sessionID uuid.UUID) error {
	return s.sessions.Revoke(ctx, sessionID)
}
