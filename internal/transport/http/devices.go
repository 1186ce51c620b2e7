package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pribylovaa/go-blogger-platform/internal/service"
	"github.com/pribylovaa/go-blogger-platform/internal/transport/http/apierrors"
)

// Devices возвращает все активные сессии владельца refresh-токена.
//
// GET /security/devices -> 200 [{deviceId, title, ip, lastActiveDate}].
func (h *Handlers) Devices(w http.ResponseWriter, r *http.Request) {
	token, ok := refreshFromCookie(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	devices, err := h.svc.ListDevices(r.Context(), token)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, devices)
}

// DeleteOtherDevices завершает все сессии пользователя, кроме текущей.
//
// DELETE /security/devices -> 204.
func (h *Handlers) DeleteOtherDevices(w http.ResponseWriter, r *http.Request) {
	token, ok := refreshFromCookie(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	if err := h.svc.DeleteOtherDevices(r.Context(), token); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteDevice завершает сессию конкретного устройства.
// Чужое устройство удалить нельзя; несуществующее — 404.
//
// DELETE /security/devices/{deviceId} -> 204.
func (h *Handlers) DeleteDevice(w http.ResponseWriter, r *http.Request) {
	token, ok := refreshFromCookie(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	deviceID, err := uuid.Parse(chi.URLParam(r, "deviceId"))
	if err != nil {
		// Нечитаемый идентификатор неотличим от несуществующего устройства.
		apierrors.WriteError(w, r, service.ErrDeviceNotFound)
		return
	}

	if err := h.svc.DeleteDevice(r.Context(), token, deviceID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
