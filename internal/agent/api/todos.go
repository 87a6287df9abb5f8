// Методы клиента для работы с задачами пользователя.
package api

import "fmt"

// CreateTodoRequest описывает тело запроса создания задачи.
type CreateTodoRequest struct {
	Title string `json:"title"`
}

// Todo — задача в том виде, в котором её отдаёт сервер.
//
// CreatedAt приходит уже отформатированным ("2024-03-14 02:30 PM").
type Todo struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"created_at"`
}

// ListTodos возвращает все задачи пользователя, новые сверху.
func (c *Client) ListTodos(sessionToken string) ([]Todo, error) {
	var todos []Todo
	err := c.GetJSON("/api/todos", &todos, sessionToken)
	return todos, err
}

// AddTodo создаёт новую задачу и возвращает её.
func (c *Client) AddTodo(title string, sessionToken string) (Todo, error) {
	var todo Todo
	err := c.PostJSON("/api/todos", CreateTodoRequest{Title: title}, &todo, sessionToken)
	return todo, err
}

// ToggleTodo переключает флаг completed и возвращает обновлённую задачу.
func (c *Client) ToggleTodo(id int64, sessionToken string) (Todo, error) {
	var todo Todo
	err := c.PutJSON(fmt.Sprintf("/api/todos/%d", id), nil, &todo, sessionToken)
	return todo, err
}

// DeleteTodo удаляет задачу по id.
func (c *Client) DeleteTodo(id int64, sessionToken string) error {
	return c.DeleteJSON(fmt.Sprintf("/api/todos/%d", id), sessionToken)
}
