package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/dmpolyakov/todolist/internal/server/api"
	"github.com/dmpolyakov/todolist/internal/server/config"
	"github.com/dmpolyakov/todolist/internal/server/crypto"
	"github.com/dmpolyakov/todolist/internal/server/middleware"
	"github.com/dmpolyakov/todolist/internal/server/models"
	"github.com/dmpolyakov/todolist/internal/server/service"
	svcmocks "github.com/dmpolyakov/todolist/internal/server/service/mocks"
	"github.com/dmpolyakov/todolist/internal/shared/logger"
)

func routerConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			Issuer:     "todolist",
			CookieName: "todolist_session",
			SessionTTL: 24 * time.Hour,
			Signing: config.SigningConfig{
				Algorithm: "HS256",
				Key:       "supersecretkeysupersecretkey123456", // >= 32
			},
		},
		Password: config.PasswordConfig{
			Hasher: "argon2id",
			Argon2: config.Argon2Config{
				Time:      1,
				MemoryKiB: 64 * 1024,
				Threads:   1,
				KeyLen:    32,
				SaltLen:   16,
			},
		},
	}
}

func newTestRouter(t *testing.T) (http.Handler, *svcmocks.MockUsersRepo, *svcmocks.MockSessionsRepo, *svcmocks.MockTodosRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	users := svcmocks.NewMockUsersRepo(ctrl)
	sessions := svcmocks.NewMockSessionsRepo(ctrl)
	todos := svcmocks.NewMockTodosRepo(ctrl)

	cfg := routerConfig()

	svc := service.NewServices(service.Repositories{
		Users:    users,
		Sessions: sessions,
		Todos:    todos,
	}, cfg)

	verifier := middleware.NewSessionVerifier(
		cfg.Auth.CookieName,
		cfg.Auth.Signing.Key,
		cfg.Auth.Issuer,
		sessions,
	)

	h := api.NewHandler(svc, logger.NewHTTPLogger(), verifier, api.CookieConfig{
		Name: cfg.Auth.CookieName,
		TTL:  cfg.Auth.SessionTTL,
	})

	return NewRouter(h), users, sessions, todos
}

func authedCookie(t *testing.T, sessions *svcmocks.MockSessionsRepo, userID int64) *http.Cookie {
	t.Helper()

	cfg := routerConfig()
	sessID := uuid.New()

	token, err := crypto.NewSessionToken(sessID, crypto.SessionTokenConfig{
		Issuer:     cfg.Auth.Issuer,
		SigningKey: cfg.Auth.Signing.Key,
		TTL:        cfg.Auth.SessionTTL,
	})
	if err != nil {
		t.Fatalf("sign session token: %v", err)
	}

	sessions.EXPECT().
		Get(gomock.Any(), sessID).
		Return(userID, time.Now().Add(time.Hour), nil, nil)

	return &http.Cookie{Name: cfg.Auth.CookieName, Value: token}
}

// полный проход signup через роутер: пользователь создан, cookie выдан
func TestRouter_Signup_OK(t *testing.T) {
	r, users, sessions, _ := newTestRouter(t)

	users.EXPECT().
		Create(gomock.Any(), "test@example.com", gomock.Any()).
		Return(int64(7), nil)

	sessions.EXPECT().
		Create(gomock.Any(), gomock.Any(), int64(7), gomock.Any()).
		Return(nil)

	body, _ := json.Marshal(api.SignupRequest{Email: "test@example.com", Password: "StrongPass123"})
	req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}

	res := rec.Result()
	defer res.Body.Close()

	var sessionSet bool
	for _, c := range res.Cookies() {
		if c.Name == "todolist_session" && c.Value != "" {
			sessionSet = true
		}
	}
	if !sessionSet {
		t.Fatalf("expected session cookie on signup")
	}
}

// корень без сессии отправляет на /login
func TestRouter_Index_RedirectsAnonymous(t *testing.T) {
	r, _, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

// /api/todos без cookie — 401
func TestRouter_Todos_Unauthorized(t *testing.T) {
	r, _, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

// {id} доезжает до хендлера через chi
func TestRouter_ToggleTodo_RoutesID(t *testing.T) {
	r, _, sessions, todos := newTestRouter(t)

	todos.EXPECT().
		Toggle(gomock.Any(), int64(7), int64(42)).
		Return(models.Todo{ID: 42, UserID: 7, Title: "buy milk", Completed: true, CreatedAt: time.Now()}, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/todos/42", nil)
	req.AddCookie(authedCookie(t, sessions, 7))
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}
}

// DELETE без тела ответа
func TestRouter_DeleteTodo_NoContent(t *testing.T) {
	r, _, sessions, todos := newTestRouter(t)

	todos.EXPECT().
		Delete(gomock.Any(), int64(7), int64(42)).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/todos/42", nil)
	req.AddCookie(authedCookie(t, sessions, 7))
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected %d, got %d", http.StatusNoContent, rec.Code)
	}
}

// logout доступен без сессии и всегда редиректит
func TestRouter_Logout_Anonymous(t *testing.T) {
	r, _, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected %d, got %d", http.StatusSeeOther, rec.Code)
	}
}
