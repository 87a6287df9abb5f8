package repository

import (
	"context"
	"database/sql"

	"github.com/jackc/pgconn"

	serr "github.com/dmpolyakov/todolist/internal/shared/errors"
)

type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// Create вставляет нового пользователя и возвращает его id.
//
// Уникальность email обеспечивает индекс в БД: нарушение (23505)
// превращается в ErrAlreadyExists, остальные ошибки — в ErrInternal.
func (r *UsersRepository) Create(ctx context.Context, email, passwordHash string) (int64, error) {
	var id int64

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (email, password_hash)
		 VALUES ($1,$2)
		 RETURNING id`,
		email, passwordHash,
	).Scan(&id)

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" { // unique_violation
				return 0, serr.ErrAlreadyExists
			}
		}
		return 0, serr.ErrInternal
	}

	return id, nil
}

func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (int64, string, error) {
	var (
		id   int64
		hash string
	)

	err := r.db.QueryRowContext(ctx,
		`SELECT id, password_hash FROM users WHERE email=$1`,
		email,
	).Scan(&id, &hash)

	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", serr.ErrNotFound
		}
		return 0, "", serr.ErrInternal
	}

	return id, hash, nil
}
