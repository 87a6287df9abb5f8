// Package repository содержит реализации слоя доступа к данным (Repository layer).
//
// Репозитории инкапсулируют работу с БД и не содержат бизнес-логики.
// Все ошибки приводятся к доменным ошибкам из internal/shared/errors.
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	serr "github.com/dmpolyakov/todolist/internal/shared/errors"
	"github.com/dmpolyakov/todolist/internal/shared/utils"
)

// SessionsRepository отвечает за хранение серверных cookie-сессий.
//
// Используется для:
//   - привязки клиента к пользователю (cookie хранит только подписанную ссылку)
//   - завершения сессии при logout (revoked_at)
//   - проверки срока жизни сессии
type SessionsRepository struct {
	db *sql.DB
}

// NewSessionsRepository создает новый SessionsRepository.
func NewSessionsRepository(db *sql.DB) *SessionsRepository {
	return &SessionsRepository{db: db}
}

// Create создает новую сессию пользователя с заранее выданным UUID.
//
// Ошибки БД превращаются в ErrInternal.
func (r *SessionsRepository) Create(ctx context.Context, id uuid.UUID, userID int64, expiresAt time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, user_id, expires_at)
		 VALUES ($1,$2,$3)`,
		id, userID, expiresAt,
	)
	if err != nil {
		return serr.ErrInternal
	}
	return nil
}

// Get возвращает сессию по её UUID.
//
// Возвращает:
//   - id пользователя
//   - expiresAt
//   - revokedAt (nil если сессия активна)
//
// Ошибки:
//   - ErrUnauthorized если сессия не найдена или ErrInternal при ошибке БД
func (r *SessionsRepository) Get(ctx context.Context, id uuid.UUID) (int64, time.Time, *time.Time, error) {
	var (
		userID    int64
		expiresAt time.Time
		revokedAt sql.NullTime
	)

	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, expires_at, revoked_at
		   FROM sessions
		  WHERE id=$1`,
		id,
	).Scan(&userID, &expiresAt, &revokedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return 0, time.Time{}, nil, serr.ErrUnauthorized
		}
		return 0, time.Time{}, nil, serr.ErrInternal
	}

	var revokedPtr *time.Time
	if revokedAt.Valid {
		revokedPtr = utils.Ptr(revokedAt.Time)
	}

	return userID, expiresAt, revokedPtr, nil
}

// Revoke помечает сессию завершённой.
//
// Используется при logout. Повторный вызов по уже отозванной сессии — no-op.
func (r *SessionsRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE sessions
		    SET revoked_at = now()
		  WHERE id = $1
		    AND revoked_at IS NULL`,
		id,
	)
	if err != nil {
		return serr.ErrInternal
	}
	return nil
}
