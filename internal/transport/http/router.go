package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-blogger-platform/internal/ratelimit"
	"github.com/pribylovaa/go-blogger-platform/internal/service"
	"github.com/pribylovaa/go-blogger-platform/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger     *slog.Logger
	Timeout    time.Duration
	BasePath   string // например, "/api"; если пустой — роуты регистрируются на корне.
	RefreshTTL time.Duration
	Secure     bool // Secure-флаг refresh-cookie; false только для local.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, limiter ratelimit.Limiter, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.AuthBearer(),         // вынимаем Bearer токен в контекст для сервисного слоя
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := NewHandlers(svc, opts.RefreshTTL, opts.Secure)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h, limiter)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h, limiter)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
// Лимитером прикрыты только маршруты восстановления пароля: они
// триггерят отправку писем и подбор одноразовых кодов.
func registerRoutes(r chi.Router, h *Handlers, limiter ratelimit.Limiter) {
	// auth
	r.Post("/auth/registration", h.Registration)
	r.Post("/auth/registration-confirmation", h.RegistrationConfirmation)
	r.Post("/auth/registration-email-resending", h.RegistrationEmailResending)
	r.Post("/auth/login", h.Login)
	r.Post("/auth/refresh-token", h.RefreshToken)
	r.Post("/auth/logout", h.Logout)
	r.Get("/auth/me", h.Me)
	r.With(middleware.RateLimit(limiter)).Post("/auth/password-recovery", h.PasswordRecovery)
	r.With(middleware.RateLimit(limiter)).Post("/auth/new-password", h.NewPassword)

	// security
	r.Get("/security/devices", h.Devices)
	r.Delete("/security/devices", h.DeleteOtherDevices)
	r.Delete("/security/devices/{deviceId}", h.DeleteDevice)
}
