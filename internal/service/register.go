package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-blogger-platform/internal/mail"
	"github.com/pribylovaa/go-blogger-platform/internal/models"
	"github.com/pribylovaa/go-blogger-platform/internal/pkg/log"
	"github.com/pribylovaa/go-blogger-platform/internal/pkg/redact"
	"github.com/pribylovaa/go-blogger-platform/internal/storage"
)

// Register создаёт неподтверждённого пользователя и отправляет письмо
// с кодом подтверждения.
func (s *Service) Register(ctx context.Context, login, email, password string) error {
	const op = "service.register.Register"

	if err := validateLogin(login); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	normEmail, err := validateEmail(email)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := validatePassword(password); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	// Предварительные проверки уникальности дают осмысленное поле в ответе;
	// гонку закрывает уникальный индекс при вставке.
	if _, err := s.storage.UserByLoginOrEmail(ctx, login); err == nil {
		return fmt.Errorf("%s: %w", op, ErrLoginTaken)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.storage.UserByEmail(ctx, normEmail); err == nil {
		return fmt.Errorf("%s: %w", op, ErrEmailTaken)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, err)
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	code := uuid.New()
	codeExpiresAt := now.Add(s.cfg.CodeTTL)

	user := &models.User{
		ID:           uuid.New(),
		Login:        login,
		Email:        normEmail,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		Confirmation: models.Confirmation{
			Code:      &code,
			ExpiresAt: &codeExpiresAt,
			Confirmed: false,
		},
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	s.sendLetter(ctx, normEmail, mail.ConfirmationLetter(code.String()))

	return nil
}

// Confirm подтверждает e-mail по одноразовому коду.
//
// Причины отказа различимы для клиента: неверный код, уже использованный
// код (учётная запись подтверждена) и просроченный код. Код после
// подтверждения сохраняется в записи, иначе повторную попытку нельзя
// было бы отличить от неверного кода.
func (s *Service) Confirm(ctx context.Context, code uuid.UUID) error {
	const op = "service.register.Confirm"

	user, err := s.storage.UserByConfirmationCode(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrCodeIncorrect)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if user.Confirmation.Confirmed {
		return fmt.Errorf("%s: %w", op, ErrAlreadyConfirmed)
	}

	if user.Confirmation.ExpiresAt == nil || time.Now().UTC().After(*user.Confirmation.ExpiresAt) {
		return fmt.Errorf("%s: %w", op, ErrCodeExpired)
	}

	if err := s.storage.ConfirmUser(ctx, user.ID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ResendConfirmation выпускает новый код подтверждения (перезаписывая
// предыдущий) и отправляет письмо повторно.
func (s *Service) ResendConfirmation(ctx context.Context, email string) error {
	const op = "service.register.ResendConfirmation"

	normEmail, err := validateEmail(email)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.storage.UserByEmail(ctx, normEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrEmailUnknown)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if user.Confirmation.Confirmed {
		return fmt.Errorf("%s: %w", op, ErrAlreadyConfirmed)
	}

	code := uuid.New()
	if err := s.storage.SetConfirmationCode(ctx, user.ID, code, time.Now().UTC().Add(s.cfg.CodeTTL)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.sendLetter(ctx, normEmail, mail.ConfirmationLetter(code.String()))

	return nil
}

// sendLetter отправляет письмо fire-and-forget: ошибка логируется и не
// влияет на результат операции. Контекст запроса к этому моменту может
// быть уже отменён, поэтому отправка живёт на context.WithoutCancel.
func (s *Service) sendLetter(ctx context.Context, email string, letter mail.Letter) {
	if s.mailer == nil {
		return
	}

	lg := log.From(ctx)
	sendCtx := context.WithoutCancel(ctx)

	go func() {
		sendCtx, cancel := context.WithTimeout(sendCtx, 30*time.Second)
		defer cancel()

		if err := s.mailer.Send(sendCtx, email, letter.Subject, letter.HTML); err != nil {
			lg.Error("mail_send_failed",
				slog.String("email", redact.Email(email)),
				slog.String("err", err.Error()),
			)
		}
	}()
}
