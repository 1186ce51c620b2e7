// apierrors стандартизирует ответы об ошибках HTTP-слоя.
// На вход он принимает ошибку доменного слоя (service), а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей;
//   - имя поля для ошибок, привязанных к конкретному полю ввода.
//
// Чисто авторизационные отказы (401/403/404) поля не несут и деталей
// не раскрывают: клиент не должен узнать, какая именно проверка не прошла.
package apierrors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pribylovaa/go-blogger-platform/internal/service"
)

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// Field — имя поля ввода, к которому относится ошибка (только для 400).
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Field     string `json:"field,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// mapping — таблица маппинга сентинелов сервиса.
type mapping struct {
	status  int
	code    string
	message string
	field   string
}

// Порядок не важен: сентинелы не пересекаются по errors.Is.
var table = []struct {
	err error
	m   mapping
}{
	{service.ErrInvalidCredentials, mapping{http.StatusUnauthorized, "unauthorized", "unauthorized", ""}},
	{service.ErrInvalidToken, mapping{http.StatusUnauthorized, "unauthorized", "unauthorized", ""}},
	{service.ErrTokenExpired, mapping{http.StatusUnauthorized, "unauthorized", "unauthorized", ""}},
	{service.ErrForeignDevice, mapping{http.StatusForbidden, "forbidden", "forbidden", ""}},
	{service.ErrDeviceNotFound, mapping{http.StatusNotFound, "not_found", "not found", ""}},
	{service.ErrInvalidLogin, mapping{http.StatusBadRequest, "invalid_argument", "login must be 3-30 characters of a-z, A-Z, 0-9, ._-", "login"}},
	{service.ErrInvalidEmail, mapping{http.StatusBadRequest, "invalid_argument", "invalid email format", "email"}},
	{service.ErrInvalidPassword, mapping{http.StatusBadRequest, "invalid_argument", "password must be 6-20 characters", "password"}},
	{service.ErrInvalidLoginOrEmail, mapping{http.StatusBadRequest, "invalid_argument", "loginOrEmail must be 3-100 characters", "loginOrEmail"}},
	{service.ErrLoginTaken, mapping{http.StatusBadRequest, "already_exists", "login already taken", "login"}},
	{service.ErrEmailTaken, mapping{http.StatusBadRequest, "already_exists", "email already taken", "email"}},
	{service.ErrCodeIncorrect, mapping{http.StatusBadRequest, "code_incorrect", "confirmation code is incorrect", "code"}},
	{service.ErrCodeExpired, mapping{http.StatusBadRequest, "code_expired", "confirmation code is expired", "code"}},
	{service.ErrAlreadyConfirmed, mapping{http.StatusBadRequest, "already_confirmed", "email is already confirmed", "code"}},
	{service.ErrEmailUnknown, mapping{http.StatusBadRequest, "email_unknown", "email is not registered", "email"}},
	{service.ErrRecoveryCodeIncorrect, mapping{http.StatusBadRequest, "recovery_code_incorrect", "recovery code is incorrect", "recoveryCode"}},
}

// ToHTTP конвертирует ошибку доменного слоя в HTTP-статус и
// унифицированный ответ для фронта.
//
// Поведение:
//   - err == nil - это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг;
//   - неизвестная ошибка - 500/internal (без утечки деталей).
func ToHTTP(err error) (int, ErrorResponse) {
	if err != nil {
		for _, e := range table {
			if errors.Is(err, e.err) {
				return e.m.status, ErrorResponse{Error: APIError{
					Code:    e.m.code,
					Message: e.m.message,
					Field:   e.m.field,
				}}
			}
		}
	}

	return http.StatusInternalServerError, ErrorResponse{
		Error: APIError{
			Code:    "internal",
			Message: "internal error",
		},
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	// Прокидываем request_id для фронта, чтобы он мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	writeStatus(w, status, resp)
}

// WriteStatus пишет произвольный статус с унифицированным телом ошибки.
func WriteStatus(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	resp := ErrorResponse{Error: APIError{Code: code, Message: message}}
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	writeStatus(w, status, resp)
}

func writeStatus(w http.ResponseWriter, status int, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
