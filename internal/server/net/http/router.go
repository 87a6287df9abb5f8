// Package http реализует маршрутизацию HTTP-слоя сервера TodoList.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - логирование выполнения HTTP-запросов;
//   - проверку cookie-сессий на API-маршрутах.
package http

import (
	"net/http"

	"github.com/dmpolyakov/todolist/internal/server/api"
	"github.com/dmpolyakov/todolist/internal/server/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - страницы и публичные эндпоинты аутентификации;
//   - middleware логирования для всех запросов;
//   - группу /api/todos за проверкой cookie-сессии.
func NewRouter(h *api.Handler) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware())

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Страницы и аутентификация
	r.Get("/", h.Index)
	r.Get("/login", h.LoginPage)
	r.Post("/login", h.Login)
	r.Get("/signup", h.SignupPage)
	r.Post("/signup", h.Signup)
	r.Get("/logout", h.Logout)

	// защищённые пути
	r.Group(func(r chi.Router) {
		// проверка cookie-сессии
		r.Use(h.Verifier.AuthMiddleware())
		// CRUD запросы для задач
		r.Route("/api/todos", func(r chi.Router) {
			r.Get("/", h.ListTodos)             // Все задачи пользователя
			r.Post("/", h.AddTodo)              // Создание задачи
			r.Put("/{id}", h.ToggleTodo)        // Переключаем completed
			r.Delete("/{id}", h.DeleteTodo)     // Удаляем задачу по id
		})
	})

	return r
}
