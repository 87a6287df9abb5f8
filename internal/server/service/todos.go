package service

import (
	"context"
	"strings"

	"github.com/dmpolyakov/todolist/internal/server/models"
	serr "github.com/dmpolyakov/todolist/internal/shared/errors"
)

// TodosService реализует бизнес-логику работы с задачами пользователя.
// Сервис:
//   - валидирует входные данные;
//   - не знает о HTTP и БД напрямую.
//
// Владелец (userID) приходит из middleware и передаётся в каждый вызов —
// никакого неявного контекста владения нет.
type TodosService struct {
	repo TodosRepo
}

// NewTodosService создаёт новый TodosService.
func NewTodosService(repo TodosRepo) *TodosService {
	return &TodosService{repo: repo}
}

// List возвращает все задачи пользователя, новые сверху.
func (s *TodosService) List(ctx context.Context, userID int64) ([]models.Todo, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Create создаёт новую задачу.
//
// Ошибки:
//   - ErrTitleRequired — пустой заголовок;
//   - ErrInternal — ошибка хранилища.
func (s *TodosService) Create(ctx context.Context, userID int64, title string) (models.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Todo{}, serr.ErrTitleRequired
	}
	return s.repo.Create(ctx, userID, title)
}

// Delete удаляет задачу пользователя.
//
// Ошибки:
//   - ErrNotFound — задачи нет или она принадлежит другому пользователю.
func (s *TodosService) Delete(ctx context.Context, userID, todoID int64) error {
	return s.repo.Delete(ctx, userID, todoID)
}

// Toggle переключает флаг completed и возвращает обновлённую задачу.
//
// Два вызова подряд возвращают задачу в исходное состояние.
//
// Ошибки:
//   - ErrNotFound — задачи нет или она чужая.
func (s *TodosService) Toggle(ctx context.Context, userID, todoID int64) (models.Todo, error) {
	return s.repo.Toggle(ctx, userID, todoID)
}
