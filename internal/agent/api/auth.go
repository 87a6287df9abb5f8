// Методы клиента для работы с эндпоинтами аутентификации:
// регистрация, вход и выход.
package api

import (
	"errors"
	"net/http"
)

// SignupRequest описывает тело запроса регистрации пользователя.
//
// Email и Password передаются в JSON формате в эндпоинт /signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse описывает ответ сервера на /login и /signup.
//
// При неуспехе Message содержит причину отказа.
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// authCall выполняет POST на auth-эндпоинт и достаёт сессионный cookie
// из ответа сервера.
//
// Возвращает значение cookie (сессионный токен). Если сервер ответил
// неуспехом — возвращает ошибку с сообщением сервера.
func (c *Client) authCall(path string, req any) (string, error) {
	res, err := c.doJSON(http.MethodPost, path, req, "")
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var body AuthResponse
		if decodeErr := decodeJSONOrOK(res.Body, &body); decodeErr == nil && body.Message != "" {
			return "", errors.New(body.Message)
		}
		return "", errors.New(res.Status)
	}

	for _, cookie := range res.Cookies() {
		if cookie.Name == SessionCookieName && cookie.Value != "" {
			return cookie.Value, nil
		}
	}
	return "", errors.New("server did not set a session cookie")
}

// Signup выполняет регистрацию пользователя на сервере.
//
// При успехе сервер сразу открывает сессию; метод возвращает сессионный токен.
func (c *Client) Signup(email, password string) (string, error) {
	return c.authCall("/signup", SignupRequest{Email: email, Password: password})
}

// Login выполняет вход пользователя.
//
// При успехе возвращает сессионный токен для последующих запросов.
func (c *Client) Login(email, password string) (string, error) {
	return c.authCall("/login", LoginRequest{Email: email, Password: password})
}

// Logout завершает сессию на сервере.
//
// Сервер отвечает редиректом на /login — клиент за ним не следует,
// любой ответ < 400 считается успехом.
func (c *Client) Logout(sessionToken string) error {
	res, err := c.doJSON(http.MethodGet, "/logout", nil, sessionToken)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return readAPIErrorBody(res)
	}
	return nil
}
