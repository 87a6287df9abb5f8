package repository

import (
	"context"
	"database/sql"

	"github.com/dmpolyakov/todolist/internal/server/models"
	serr "github.com/dmpolyakov/todolist/internal/shared/errors"
)

// TodosRepository реализует доступ к задачам пользователя (PostgreSQL).
//
// Каждый запрос фильтруется по user_id: чужая задача для репозитория
// неотличима от несуществующей.
type TodosRepository struct {
	db *sql.DB
}

// NewTodosRepository создаёт новый экземпляр TodosRepository.
func NewTodosRepository(db *sql.DB) *TodosRepository {
	return &TodosRepository{db: db}
}

// Create сохраняет новую задачу и возвращает её целиком
// (id и created_at выдаёт БД).
func (r *TodosRepository) Create(ctx context.Context, userID int64, title string) (models.Todo, error) {
	t := models.Todo{
		UserID: userID,
		Title:  title,
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO todos (user_id, title)
		VALUES ($1, $2)
		RETURNING id, completed, created_at
	`,
		userID,
		title,
	).Scan(&t.ID, &t.Completed, &t.CreatedAt)

	if err != nil {
		return models.Todo{}, serr.ErrInternal
	}

	return t, nil
}

// ListByUser возвращает все задачи пользователя, новые сверху.
//
// id в ORDER BY нужен для стабильного порядка задач,
// созданных в одну миллисекунду.
func (r *TodosRepository) ListByUser(ctx context.Context, userID int64) ([]models.Todo, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, title, completed, created_at
		  FROM todos
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	todos := make([]models.Todo, 0)
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Completed, &t.CreatedAt); err != nil {
			return nil, serr.ErrInternal
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return todos, nil
}

// Delete удаляет задачу пользователя.
//
// Возвращает ErrNotFound, если задачи нет или она принадлежит другому
// пользователю.
func (r *TodosRepository) Delete(ctx context.Context, userID, todoID int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM todos
		 WHERE id = $1
		   AND user_id = $2
	`, todoID, userID)
	if err != nil {
		return serr.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		return serr.ErrInternal
	}
	if n == 0 {
		return serr.ErrNotFound
	}
	return nil
}

// Toggle переключает флаг completed одним UPDATE и возвращает обновлённую
// запись. Один statement — одна транзакция, промежуточных состояний нет.
//
// Возвращает ErrNotFound, если задачи нет или она чужая.
func (r *TodosRepository) Toggle(ctx context.Context, userID, todoID int64) (models.Todo, error) {
	var t models.Todo

	err := r.db.QueryRowContext(ctx, `
		UPDATE todos
		   SET completed = NOT completed
		 WHERE id = $1
		   AND user_id = $2
		RETURNING id, user_id, title, completed, created_at
	`, todoID, userID).Scan(&t.ID, &t.UserID, &t.Title, &t.Completed, &t.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.Todo{}, serr.ErrNotFound
		}
		return models.Todo{}, serr.ErrInternal
	}

	return t, nil
}
