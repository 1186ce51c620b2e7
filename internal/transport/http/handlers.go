// http содержит REST-слой auth-сервиса.
// Здесь выполняется только разбор ввода, транспорт токенов и маппинг
// ошибок доменного слоя в HTTP. Вся бизнес-логика находится в пакете service.
//
// Транспорт токенов — внешний контракт, двухканальный:
//   - access-токен ходит в заголовке Authorization: Bearer;
//   - refresh-токен ходит исключительно в HTTP-only SameSite cookie
//     и недоступен скриптам на клиенте.
package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pribylovaa/go-blogger-platform/internal/service"
)

// refreshCookie — имя cookie с refresh-токеном.
const refreshCookie = "refreshToken"

// Handlers агрегирует зависимости REST-слоя.
type Handlers struct {
	svc        *service.Service
	refreshTTL time.Duration
	secure     bool // Secure-флаг cookie; выключается только в local-окружении
}

// NewHandlers создаёт обработчики поверх сервисного слоя.
func NewHandlers(svc *service.Service, refreshTTL time.Duration, secure bool) *Handlers {
	return &Handlers{
		svc:        svc,
		refreshTTL: refreshTTL,
		secure:     secure,
	}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// setRefreshCookie кладёт refresh-токен в HTTP-only cookie.
// Path покрывает и /auth, и /security: список устройств тоже
// авторизуется refresh-токеном.
func (h *Handlers) setRefreshCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.refreshTTL / time.Second),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// clearRefreshCookie гасит cookie с refresh-токеном.
func (h *Handlers) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// refreshFromCookie достаёт refresh-токен из cookie запроса.
func refreshFromCookie(r *http.Request) (string, bool) {
	c, err := r.Cookie(refreshCookie)
	if err != nil || c.Value == "" {
		return "", false
	}

	return c.Value, true
}
