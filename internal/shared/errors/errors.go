// Package errors содержит общие доменные ошибки приложения.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы и сообщения в api слое.
package errors

import "errors"

var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Неверные учётные данные
	ErrInvalidCredentials = errors.New("invalid credentials")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Неавторизован
	ErrUnauthorized = errors.New("unauthorized")
	// Ресурс уже существует (например email уже занят)
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
)

// ошибки валидации полей signup/login и задач
var (
	// email не передан или пустой
	ErrEmailRequired = errors.New("email required")
	// пароль не передан или пустой
	ErrPasswordRequired = errors.New("password required")
	// email не похож на email
	ErrInvalidEmail = errors.New("invalid email format")
	// заголовок задачи пустой
	ErrTitleRequired = errors.New("title required")
)
