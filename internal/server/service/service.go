// Package service содержит бизнес-логику приложения (todolist).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmpolyakov/todolist/internal/server/config"
	"github.com/dmpolyakov/todolist/internal/server/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users    UsersRepo
	Sessions SessionsRepo
	Todos    TodosRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth  *AuthService
	Todos *TodosService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (параметры хеширования пароля и подписи сессий).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:  NewAuthService(repos.Users, repos.Sessions, cfg),
		Todos: NewTodosService(repos.Todos),
	}
}

// UsersRepo — репозиторий пользователей (нужен для signup/login).
type UsersRepo interface {
	Create(ctx context.Context, email, passwordHash string) (int64, error)
	GetByEmail(ctx context.Context, email string) (int64, string, error)
}

// SessionsRepo — репозиторий cookie-сессий.
type SessionsRepo interface {
	Create(ctx context.Context, id uuid.UUID, userID int64, expiresAt time.Time) error
	Get(ctx context.Context, id uuid.UUID) (userID int64, expiresAt time.Time, revokedAt *time.Time, err error)
	Revoke(ctx context.Context, id uuid.UUID) error
}

// TodosRepo — репозиторий задач (CRUD, всё в рамках одного владельца).
type TodosRepo interface {
	Create(ctx context.Context, userID int64, title string) (models.Todo, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Todo, error)
	Delete(ctx context.Context, userID, todoID int64) error
	Toggle(ctx context.Context, userID, todoID int64) (models.Todo, error)
}
