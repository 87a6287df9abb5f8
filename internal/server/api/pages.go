// Страничные хендлеры: оболочка приложения и формы входа/регистрации.
//
// Рендеринг нормальных HTML-шаблонов — вне зоны ответственности сервера:
// фронтенд живёт отдельно. Здесь отдаются минимальные статические страницы,
// чтобы сервис был самодостаточным при локальной разработке.
package api

import "net/http"

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>TodoList</title></head>
<body>
<h1>TodoList</h1>
<p>API: GET/POST /api/todos, PUT/DELETE /api/todos/{id}. <a href="/logout">Logout</a></p>
</body>
</html>
`

const loginHTML = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>TodoList — Login</title></head>
<body>
<h1>Login</h1>
<p>POST /login with JSON {"email":"...","password":"..."}. <a href="/signup">Sign up</a></p>
</body>
</html>
`

const signupHTML = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>TodoList — Signup</title></head>
<body>
<h1>Sign up</h1>
<p>POST /signup with JSON {"email":"...","password":"..."}. <a href="/login">Login</a></p>
</body>
</html>
`

// Index отдаёт оболочку приложения аутентифицированному пользователю.
// Без валидной сессии — редирект на /login.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	if _, _, err := h.Verifier.CurrentSession(r); err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	w.Header().Set(ContentType, "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

// LoginPage отдаёт форму входа.
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(ContentType, "text/html; charset=utf-8")
	w.Write([]byte(loginHTML))
}

// SignupPage отдаёт форму регистрации.
func (h *Handler) SignupPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(ContentType, "text/html; charset=utf-8")
	w.Write([]byte(signupHTML))
}
