// HTTP-хендлеры регистрации, логина и выхода
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	serr "github.com/dmpolyakov/todolist/internal/shared/errors"
)

// SignupRequest описывает тело запроса регистрации пользователя.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Сообщения валидации для /login и /signup.
// Тексты — часть контракта с фронтендом, не менять без него.
const (
	msgNoData           = "No data received"
	msgEmailRequired    = "Email is required"
	msgPasswordRequired = "Password is required"
	msgInvalidEmail     = "Invalid email format"
	msgEmailTaken       = "Email already registered"
	msgBadCredentials   = "Invalid email or password"
	msgLoginFailed      = "An error occurred during login"
	msgSignupFailed     = "An error occurred during signup"
)

// credentialsFailure переводит доменную ошибку валидации полей
// в пару (HTTP-статус, сообщение). Возвращает ok=false, если ошибка
// не про валидацию.
func credentialsFailure(err error) (int, string, bool) {
	switch {
	case errors.Is(err, serr.ErrEmailRequired):
		return http.StatusBadRequest, msgEmailRequired, true
	case errors.Is(err, serr.ErrPasswordRequired):
		return http.StatusBadRequest, msgPasswordRequired, true
	case errors.Is(err, serr.ErrInvalidEmail):
		return http.StatusBadRequest, msgInvalidEmail, true
	}
	return 0, "", false
}

// Signup обрабатывает регистрацию пользователя.
//
// При успехе сразу открывает сессию (cookie) — отдельный login не нужен.
//
// Ответы:
//   - 200 OK: {"success":true};
//   - 400 Bad Request: неверный JSON, невалидные поля или email уже занят;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Sign up
// @Description  Creates a new user and starts a session (sets session cookie).
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body SignupRequest true "Signup request"
// @Success      200 {object} AuthResponse
// @Failure      400 {object} AuthResponse "Invalid input or email already registered"
// @Failure      500 {object} AuthResponse "Internal server error"
// @Router       /signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthFailure(w, http.StatusBadRequest, msgNoData)
		return
	}

	userID, err := h.Svc.Auth.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if status, msg, ok := credentialsFailure(err); ok {
			writeAuthFailure(w, status, msg)
			return
		}
		if errors.Is(err, serr.ErrAlreadyExists) {
			writeAuthFailure(w, http.StatusBadRequest, msgEmailTaken)
			return
		}
		h.Log.Logger.Sugar().Errorw("signup failed", "error", err)
		writeAuthFailure(w, http.StatusInternalServerError, msgSignupFailed)
		return
	}

	token, err := h.Svc.Auth.StartSession(r.Context(), userID)
	if err != nil {
		h.Log.Logger.Sugar().Errorw("start session failed", "error", err, "user_id", userID)
		writeAuthFailure(w, http.StatusInternalServerError, msgSignupFailed)
		return
	}

	h.setSessionCookie(w, token)
	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(AuthResponse{Success: true})
}

// Login обрабатывает вход пользователя.
//
// Ответы:
//   - 200 OK: {"success":true}, cookie установлен;
//   - 400 Bad Request: неверный JSON или невалидные поля;
//   - 401 Unauthorized: неверные учётные данные (без уточнения, что именно);
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Log in
// @Description  Authenticates a user and starts a session (sets session cookie).
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request"
// @Success      200 {object} AuthResponse
// @Failure      400 {object} AuthResponse "Invalid input"
// @Failure      401 {object} AuthResponse "Invalid email or password"
// @Failure      500 {object} AuthResponse "Internal server error"
// @Router       /login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthFailure(w, http.StatusBadRequest, msgNoData)
		return
	}

	userID, err := h.Svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if status, msg, ok := credentialsFailure(err); ok {
			writeAuthFailure(w, status, msg)
			return
		}
		if errors.Is(err, serr.ErrInvalidCredentials) {
			writeAuthFailure(w, http.StatusUnauthorized, msgBadCredentials)
			return
		}
		h.Log.Logger.Sugar().Errorw("login failed", "error", err)
		writeAuthFailure(w, http.StatusInternalServerError, msgLoginFailed)
		return
	}

	token, err := h.Svc.Auth.StartSession(r.Context(), userID)
	if err != nil {
		h.Log.Logger.Sugar().Errorw("start session failed", "error", err, "user_id", userID)
		writeAuthFailure(w, http.StatusInternalServerError, msgLoginFailed)
		return
	}

	h.setSessionCookie(w, token)
	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(AuthResponse{Success: true})
}

// Logout завершает сессию и отправляет клиента на страницу логина.
//
// Работает из любого состояния: без cookie, с просроченной или уже
// отозванной сессией — всё равно редирект на /login.
//
// @Summary      Log out
// @Description  Revokes the current session, clears the cookie and redirects to /login.
// @Tags         auth
// @Success      303 {string} string "redirect to /login"
// @Router       /logout [get]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if _, sessID, err := h.Verifier.CurrentSession(r); err == nil {
		if err := h.Svc.Auth.EndSession(r.Context(), sessID); err != nil {
			// сессию не отозвали, но cookie всё равно сбрасываем
			h.Log.Logger.Sugar().Errorw("end session failed", "error", err, "session_id", sessID.String())
		}
	}

	h.clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
