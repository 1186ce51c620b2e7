package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-blogger-platform/internal/service"
	"github.com/pribylovaa/go-blogger-platform/internal/transport/http/apierrors"
	"github.com/pribylovaa/go-blogger-platform/internal/transport/http/middleware"
)

// registrationRequest — тело POST /auth/registration.
type registrationRequest struct {
	Login    string `json:"login"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration регистрирует нового пользователя и отправляет
// письмо с кодом подтверждения.
//
// POST /auth/registration -> 204.
func (h *Handlers) Registration(w http.ResponseWriter, r *http.Request) {
	var req registrationRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidLogin)
		return
	}

	if err := h.svc.Register(r.Context(), req.Login, req.Email, req.Password); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// confirmationRequest — тело POST /auth/registration-confirmation.
type confirmationRequest struct {
	Code string `json:"code"`
}

// RegistrationConfirmation подтверждает аккаунт по коду из письма.
//
// POST /auth/registration-confirmation -> 204.
func (h *Handlers) RegistrationConfirmation(w http.ResponseWriter, r *http.Request) {
	var req confirmationRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, service.ErrCodeIncorrect)
		return
	}

	code, err := uuid.Parse(req.Code)
	if err != nil {
		// Нечитаемый код неотличим от несуществующего.
		apierrors.WriteError(w, r, service.ErrCodeIncorrect)
		return
	}

	if err := h.svc.Confirm(r.Context(), code); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// resendingRequest — тело POST /auth/registration-email-resending.
type resendingRequest struct {
	Email string `json:"email"`
}

// RegistrationEmailResending перевыпускает код подтверждения
// для ещё не подтверждённого аккаунта.
//
// POST /auth/registration-email-resending -> 204.
func (h *Handlers) RegistrationEmailResending(w http.ResponseWriter, r *http.Request) {
	var req resendingRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidEmail)
		return
	}

	if err := h.svc.ResendConfirmation(r.Context(), req.Email); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// loginRequest — тело POST /auth/login.
type loginRequest struct {
	LoginOrEmail string `json:"loginOrEmail"`
	Password     string `json:"password"`
}

// accessResponse — ответ с новым access-токеном.
type accessResponse struct {
	AccessToken string `json:"accessToken"`
}

// Login аутентифицирует пользователя и открывает новую сессию устройства.
// Access-токен возвращается в теле, refresh — в HTTP-only cookie.
//
// POST /auth/login -> 200 {"accessToken": "..."}.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidLoginOrEmail)
		return
	}

	deviceTitle := r.UserAgent()
	if deviceTitle == "" {
		deviceTitle = "unknown device"
	}

	pair, err := h.svc.Login(r.Context(), req.LoginOrEmail, req.Password, deviceTitle, middleware.ClientIP(r))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	h.setRefreshCookie(w, pair.RefreshToken)
	writeJSON(w, http.StatusOK, accessResponse{AccessToken: pair.AccessToken})
}

// RefreshToken ротирует пару токенов по refresh-токену из cookie.
// Старый refresh-токен после успешной ротации недействителен.
//
// POST /auth/refresh-token -> 200 {"accessToken": "..."}.
func (h *Handlers) RefreshToken(w http.ResponseWriter, r *http.Request) {
	token, ok := refreshFromCookie(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	pair, err := h.svc.Refresh(r.Context(), token, middleware.ClientIP(r))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	h.setRefreshCookie(w, pair.RefreshToken)
	writeJSON(w, http.StatusOK, accessResponse{AccessToken: pair.AccessToken})
}

// Logout завершает текущую сессию устройства и гасит cookie.
//
// POST /auth/logout -> 204.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := refreshFromCookie(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	if err := h.svc.Logout(r.Context(), token); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	h.clearRefreshCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// meResponse — профиль текущего пользователя.
type meResponse struct {
	Email  string `json:"email"`
	Login  string `json:"login"`
	UserID string `json:"userId"`
}

// Me возвращает профиль владельца access-токена.
//
// GET /auth/me -> 200.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.TokenFromCtx(r.Context())
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	user, err := h.svc.CurrentUser(r.Context(), token)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, meResponse{
		Email:  user.Email,
		Login:  user.Login,
		UserID: user.UserID.String(),
	})
}

// recoveryRequest — тело POST /auth/password-recovery.
type recoveryRequest struct {
	Email string `json:"email"`
}

// PasswordRecovery запускает восстановление пароля. Для незнакомого
// email ответ неотличим от успешного: перебор адресов не должен
// раскрывать базу пользователей.
//
// POST /auth/password-recovery -> 204.
func (h *Handlers) PasswordRecovery(w http.ResponseWriter, r *http.Request) {
	var req recoveryRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidEmail)
		return
	}

	if err := h.svc.RequestRecovery(r.Context(), req.Email); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// newPasswordRequest — тело POST /auth/new-password.
type newPasswordRequest struct {
	NewPassword  string `json:"newPassword"`
	RecoveryCode string `json:"recoveryCode"`
}

// NewPassword завершает восстановление: устанавливает новый пароль
// по одноразовому коду из письма.
//
// POST /auth/new-password -> 204.
func (h *Handlers) NewPassword(w http.ResponseWriter, r *http.Request) {
	var req newPasswordRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, service.ErrRecoveryCodeIncorrect)
		return
	}

	code, err := uuid.Parse(req.RecoveryCode)
	if err != nil {
		apierrors.WriteError(w, r, service.ErrRecoveryCodeIncorrect)
		return
	}

	if err := h.svc.SetNewPassword(r.Context(), code, req.NewPassword); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
