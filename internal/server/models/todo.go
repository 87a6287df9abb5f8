// Серверная модель задачи
package models

import "time"

// Todo — запись списка дел одного пользователя.
//
// Поля:
//   - ID: идентификатор задачи (выдаёт БД)
//   - UserID: владелец задачи; все запросы к БД фильтруются по этому полю
//   - Title: заголовок задачи, непустой
//   - Completed: выполнена ли задача
//   - CreatedAt: серверное время создания, неизменяемое
type Todo struct {
	ID        int64
	UserID    int64
	Title     string
	Completed bool
	CreatedAt time.Time
}
