package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-blogger-platform/internal/mail"
	"github.com/pribylovaa/go-blogger-platform/internal/pkg/log"
	"github.com/pribylovaa/go-blogger-platform/internal/pkg/redact"
	"github.com/pribylovaa/go-blogger-platform/internal/storage"
)

// RequestRecovery выпускает код восстановления пароля и отправляет письмо.
//
// Неизвестный e-mail — тоже успех: ответ не должен раскрывать, зарегистрирован
// ли адрес. Новый код перезаписывает предыдущий (overwrite, не append).
func (s *Service) RequestRecovery(ctx context.Context, email string) error {
	const op = "service.recovery.RequestRecovery"

	normEmail, err := validateEmail(email)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.storage.UserByEmail(ctx, normEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.From(ctx).Info("recovery_unknown_email",
				slog.String("op", op),
				slog.String("email", redact.Email(normEmail)),
			)
			return nil
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	code := uuid.New()
	if err := s.storage.SetRecoveryCode(ctx, user.ID, code, time.Now().UTC().Add(s.cfg.CodeTTL)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.sendLetter(ctx, normEmail, mail.RecoveryLetter(code.String()))

	return nil
}

// SetNewPassword заменяет пароль по коду восстановления.
// Несуществующий и просроченный коды наружу неотличимы: единый
// ErrRecoveryCodeIncorrect. Хранилище гасит код тем же запросом,
// которым пишет новый хэш.
func (s *Service) SetNewPassword(ctx context.Context, code uuid.UUID, newPassword string) error {
	const op = "service.recovery.SetNewPassword"

	if err := validatePassword(newPassword); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.storage.UserByRecoveryCode(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrRecoveryCodeIncorrect)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if user.Recovery.ExpiresAt == nil || time.Now().UTC().After(*user.Recovery.ExpiresAt) {
		return fmt.Errorf("%s: %w", op, ErrRecoveryCodeIncorrect)
	}

	hashedPassword, err := hashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
