// Package api реализует HTTP-слой сервера TodoList.
//
// Пакет отвечает за:
//   - обработку входящих запросов и формирование ответов (JSON, статусы, редиректы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения;
//   - установку и сброс сессионного cookie;
//   - подключение middleware (логирование, проверка сессии).
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dmpolyakov/todolist/internal/server/middleware"
	"github.com/dmpolyakov/todolist/internal/server/service"
	"github.com/dmpolyakov/todolist/internal/shared/logger"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// CookieConfig описывает параметры сессионного cookie.
type CookieConfig struct {
	// Name — имя cookie (auth.cookie_name из конфига).
	Name string
	// Secure — выставлять ли флаг Secure (true при включённом TLS).
	Secure bool
	// TTL — срок жизни cookie; совпадает с auth.session_ttl.
	TTL time.Duration
}

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - Verifier: проверка cookie-сессий и middleware авторизации;
//   - Cookies: параметры сессионного cookie.
type Handler struct {
	Svc      *service.Services
	Log      *logger.HTTPLogger
	Verifier *middleware.SessionVerifier
	Cookies  CookieConfig
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, verifier *middleware.SessionVerifier, cookies CookieConfig) *Handler {
	return &Handler{
		Svc:      svc,
		Log:      log,
		Verifier: verifier,
		Cookies:  cookies,
	}
}

// ErrorResponse стандартный формат ошибки API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AuthResponse — формат ответов /login и /signup.
//
// Message заполняется только при неуспехе и никогда не уточняет,
// какое именно из полей email/password не подошло.
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Вспомогательная функция вывода ошибки
func WriteError(w http.ResponseWriter, status int, err error) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: err.Error(),
	})
}

// writeAuthFailure пишет ответ-неудачу /login и /signup в формате
// {"success":false,"message":...}.
func writeAuthFailure(w http.ResponseWriter, status int, message string) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(AuthResponse{
		Success: false,
		Message: message,
	})
}

// setSessionCookie выставляет cookie с подписанным токеном сессии.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.Cookies.Name,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.Cookies.TTL),
		HttpOnly: true,
		Secure:   h.Cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie сбрасывает сессионный cookie у клиента.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.Cookies.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
