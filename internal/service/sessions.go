package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-blogger-platform/internal/models"
	"github.com/pribylovaa/go-blogger-platform/internal/storage"
)

// ListDevices возвращает все активные сессии пользователя (не только
// устройство, с которого сделан запрос) в виде устройств.
func (s *Service) ListDevices(ctx context.Context, refreshToken string) ([]models.Device, error) {
	const op = "service.sessions.ListDevices"

	session, err := s.sessionForRefresh(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sessions, err := s.storage.SessionsByUser(ctx, session.UserID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	devices := make([]models.Device, 0, len(sessions))
	for _, sess := range sessions {
		devices = append(devices, models.Device{
			DeviceID:       sess.DeviceID,
			Title:          sess.DeviceTitle,
			IP:             sess.IP,
			LastActiveDate: sess.LastActiveAt,
		})
	}

	return devices, nil
}

// DeleteOtherDevices удаляет все сессии пользователя, кроме вызывающего
// устройства. Фильтрация по deviceID выполняется одним DELETE на стороне
// хранилища: конкурентные логины/ротации не оставляют окна, в котором
// чужая сессия переживёт удаление или пропадёт собственная.
func (s *Service) DeleteOtherDevices(ctx context.Context, refreshToken string) error {
	const op = "service.sessions.DeleteOtherDevices"

	session, err := s.sessionForRefresh(ctx, refreshToken)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.DeleteOtherSessions(ctx, session.UserID, session.DeviceID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteDevice удаляет сессию устройства targetDeviceID.
//
// Порядок проверок фиксирован: существование раньше принадлежности.
// Несуществующий deviceID всегда даёт ErrDeviceNotFound, даже если,
// существуй он у другого пользователя, ответ был бы ErrForeignDevice.
// Пользователь может удалить и собственное текущее устройство.
func (s *Service) DeleteDevice(ctx context.Context, refreshToken string, targetDeviceID uuid.UUID) error {
	const op = "service.sessions.DeleteDevice"

	session, err := s.sessionForRefresh(ctx, refreshToken)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	target, err := s.storage.SessionByDeviceID(ctx, targetDeviceID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrDeviceNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if target.UserID != session.UserID {
		return fmt.Errorf("%s: %w", op, ErrForeignDevice)
	}

	if err := s.storage.DeleteSessionByDeviceID(ctx, targetDeviceID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrDeviceNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
