// Package api содержит HTTP-клиент для взаимодействия с сервером TodoList.
//
// Клиент инкапсулирует базовый URL сервера и настроенный http.Client,
// предоставляя удобные методы для отправки JSON-запросов (POST/GET/PUT/DELETE)
// с авторизацией через сессионный cookie.
//
// Особенности:
//   - baseURL нормализуется (обрезаются завершающие "/").
//   - По умолчанию добавляется заголовок Accept: application/json.
//   - Заголовок Content-Type: application/json добавляется только при наличии тела запроса.
//   - При ответах 204 No Content тело не читается и это считается успехом.
//   - Пустое тело ответа (EOF при декодировании) не считается ошибкой.
//   - При ошибочных ответах (не 2xx) возвращается ошибка с текстом тела ответа
//     (если тело пустое — используется res.Status).
//
// ВНИМАНИЕ: NewClient включает InsecureSkipVerify=true (TLS сертификат не проверяется).
// Это допустимо только для разработки и локального окружения. Для production следует
// включать проверку сертификата и/или использовать доверенный CA/сертификаты.
package api

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

// SessionCookieName — имя сессионного cookie, ожидаемое сервером.
// Должно совпадать с auth.cookie_name в конфиге сервера.
const SessionCookieName = "todolist_session"

// Client реализует HTTP-клиент для общения с сервером TodoList.
//
// Поля:
//   - baseURL: базовый адрес сервера без завершающего слэша.
//   - http: настроенный http.Client (таймаут, транспорт, TLS).
//
// Client предоставляет методы PostJSON/GetJSON/PutJSON/DeleteJSON,
// которые отправляют HTTP-запросы и (при необходимости) декодируют JSON-ответ.
// Авторизация выполняется сессионным cookie, значение которого передаётся
// в каждый метод параметром sessionToken.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient создаёт новый HTTP-клиент для общения с сервером.
//
// Параметры:
//   - baseURL: базовый адрес сервера (например: "http://127.0.0.1:8080").
//
// Поведение:
//   - обрезает завершающий "/" у baseURL;
//   - создаёт http.Client с таймаутом 10 секунд;
//   - не следует за редиректами (нужно для /logout).
func NewClient(baseURL string) *Client {
	tr := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // только для dev
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   10 * time.Second,
			Transport: tr,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// readAPIErrorBody читает тело ответа сервера и возвращает ошибку с текстом тела.
//
// Используется в случае HTTP-ошибок (не 2xx).
func readAPIErrorBody(res *http.Response) error {
	raw, _ := io.ReadAll(res.Body)
	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		msg = res.Status
	}
	return errors.New(msg)
}

// decodeJSONOrOK декодирует JSON из r в resp.
//
// Если resp == nil — функция ничего не делает и возвращает nil.
// Пустое тело ответа (io.EOF) не считается ошибкой.
func decodeJSONOrOK(r io.Reader, resp any) error {
	if resp == nil {
		return nil
	}
	err := json.NewDecoder(r).Decode(resp)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// doJSON выполняет HTTP-запрос с JSON-телом и возвращает ответ.
//
// Вызывающий обязан закрыть res.Body. Статус ответа здесь не проверяется:
// это делают обёртки, которым может быть важен и не-2xx ответ (cookie, редирект).
func (c *Client) doJSON(method, path string, req any, sessionToken string) (*http.Response, error) {
	var body io.Reader
	if req != nil {
		raw, err := json.Marshal(req)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Accept", "application/json")
	if req != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if sessionToken != "" {
		httpReq.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionToken})
	}

	return c.http.Do(httpReq)
}

// callJSON — общий путь для методов, которым нужен только JSON-результат.
//
// Поведение:
//   - 2xx: декодирует тело в resp (204 и пустое тело — успех без декодирования);
//   - иначе: возвращает ошибку с текстом тела ответа.
func (c *Client) callJSON(method, path string, req, resp any, sessionToken string) error {
	res, err := c.doJSON(method, path, req, sessionToken)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return readAPIErrorBody(res)
	}
	if res.StatusCode == http.StatusNoContent {
		return nil
	}
	return decodeJSONOrOK(res.Body, resp)
}

// PostJSON выполняет POST-запрос к серверу, сериализуя req в JSON.
func (c *Client) PostJSON(path string, req, resp any, sessionToken string) error {
	return c.callJSON(http.MethodPost, path, req, resp, sessionToken)
}

// GetJSON выполняет GET-запрос к серверу.
func (c *Client) GetJSON(path string, resp any, sessionToken string) error {
	return c.callJSON(http.MethodGet, path, nil, resp, sessionToken)
}

// PutJSON выполняет PUT-запрос к серверу.
func (c *Client) PutJSON(path string, req, resp any, sessionToken string) error {
	return c.callJSON(http.MethodPut, path, req, resp, sessionToken)
}

// DeleteJSON выполняет DELETE-запрос к серверу.
func (c *Client) DeleteJSON(path string, sessionToken string) error {
	return c.callJSON(http.MethodDelete, path, nil, nil, sessionToken)
}
