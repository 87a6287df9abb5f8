package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmpolyakov/todolist/internal/server/middleware"
	"github.com/dmpolyakov/todolist/internal/server/models"
	serr "github.com/dmpolyakov/todolist/internal/shared/errors"
)

// createdAtLayout — формат created_at в ответах API.
// Пример: "2024-03-14 02:30 PM". Формат зашит в фронтенд.
const createdAtLayout = "2006-01-02 03:04 PM"

// CreateTodoRequest тело запроса создания задачи.
type CreateTodoRequest struct {
	Title string `json:"title"`
}

// TodoResponse — задача в том виде, в котором её видит клиент.
type TodoResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"created_at"`
}

func toTodoResponse(t models.Todo) TodoResponse {
	return TodoResponse{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt.Format(createdAtLayout),
	}
}

// todoIDFromURL разбирает {id} из URL.
func todoIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// ListTodos возвращает все задачи текущего пользователя, новые сверху.
//
// Пользователь определяется по cookie-сессии (middleware).
//
// @Summary      List todos
// @Description  Returns all todos belonging to the authenticated user, newest first.
// @Tags         todos
// @Produce      json
// @Success      200 {array} TodoResponse
// @Failure      401 {object} ErrorResponse "Not authenticated"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/todos [get]
func (h *Handler) ListTodos(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	todos, err := h.Svc.Todos.List(r.Context(), userID)
	if err != nil {
		h.Log.Logger.Sugar().Errorw("list todos failed", "error", err, "user_id", userID)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	// фронт ждёт плоский массив, даже пустой
	resp := make([]TodoResponse, 0, len(todos))
	for _, t := range todos {
		resp = append(resp, toTodoResponse(t))
	}

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(resp)
}

// AddTodo создаёт новую задачу текущего пользователя.
//
// @Summary      Create todo
// @Description  Creates a new todo for the authenticated user.
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        request body CreateTodoRequest true "Create todo request"
// @Success      201 {object} TodoResponse
// @Failure      400 {object} ErrorResponse "Missing title or bad JSON"
// @Failure      401 {object} ErrorResponse "Not authenticated"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/todos [post]
func (h *Handler) AddTodo(w http.ResponseWriter, r *http.Request) {
	var req CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	todo, err := h.Svc.Todos.Create(r.Context(), userID, req.Title)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrTitleRequired):
			WriteError(w, http.StatusBadRequest, err)
		default:
			h.Log.Logger.Sugar().Errorw("create todo failed", "error", err, "user_id", userID)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toTodoResponse(todo))
}

// DeleteTodo удаляет задачу по id.
//
// Чужая задача неотличима от несуществующей: в обоих случаях 404.
//
// @Summary      Delete todo
// @Description  Deletes a todo owned by the authenticated user.
// @Tags         todos
// @Param        id path int true "Todo ID"
// @Success      204 {string} string "deleted"
// @Failure      400 {object} ErrorResponse "Bad id"
// @Failure      401 {object} ErrorResponse "Not authenticated"
// @Failure      404 {object} ErrorResponse "Not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/todos/{id} [delete]
func (h *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	todoID, err := todoIDFromURL(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	if err := h.Svc.Todos.Delete(r.Context(), userID, todoID); err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, err)
		default:
			h.Log.Logger.Sugar().Errorw("delete todo failed", "error", err, "user_id", userID, "todo_id", todoID)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ToggleTodo переключает флаг completed и возвращает обновлённую задачу.
//
// @Summary      Toggle todo
// @Description  Flips the completed flag of a todo owned by the authenticated user.
// @Tags         todos
// @Produce      json
// @Param        id path int true "Todo ID"
// @Success      200 {object} TodoResponse
// @Failure      400 {object} ErrorResponse "Bad id"
// @Failure      401 {object} ErrorResponse "Not authenticated"
// @Failure      404 {object} ErrorResponse "Not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/todos/{id} [put]
func (h *Handler) ToggleTodo(w http.ResponseWriter, r *http.Request) {
	todoID, err := todoIDFromURL(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	todo, err := h.Svc.Todos.Toggle(r.Context(), userID, todoID)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, err)
		default:
			h.Log.Logger.Sugar().Errorw("toggle todo failed", "error", err, "user_id", userID, "todo_id", todoID)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(toTodoResponse(todo))
}
